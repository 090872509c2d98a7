package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katebianchi/mealweek/internal/domain"
)

func newDaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the planning week's day identifiers in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range domain.Week() {
				fmt.Fprintln(cmd.OutOrStdout(), string(d))
			}
			return nil
		},
	}
}
