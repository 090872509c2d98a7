package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katebianchi/mealweek/internal/cli/formatter"
	"github.com/katebianchi/mealweek/internal/domain"
)

// newCalcCmd builds the one-shot aggregation command: it runs the same
// macro-to-calorie math as the planner, without touching any ledger.
func newCalcCmd() *cobra.Command {
	var protein, carbs, fat float64

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute calories and macro split for a single macro triple",
		Example: `  mealweek calc --protein 50 --carbs 50 --fat 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum := domain.Summarize([]domain.MealRecord{{
				Name:    "ad hoc",
				Protein: protein,
				Carbs:   carbs,
				Fat:     fat,
			}})
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMacroSplit(sum))
			return nil
		},
	}

	cmd.Flags().Var(newMacroValue(&protein), "protein", "Protein in grams")
	cmd.Flags().Var(newMacroValue(&carbs), "carbs", "Carbohydrate in grams")
	cmd.Flags().Var(newMacroValue(&fat), "fat", "Fat in grams")

	return cmd
}
