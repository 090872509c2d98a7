package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katebianchi/mealweek/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the mealweek version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "mealweek "+version.Info())
			return nil
		},
	}
}
