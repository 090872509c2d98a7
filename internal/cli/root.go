package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katebianchi/mealweek/internal/cli/formatter"
	"github.com/katebianchi/mealweek/internal/domain"
	"github.com/katebianchi/mealweek/internal/logger"
	"github.com/katebianchi/mealweek/internal/service"
)

// App holds the service references and environment probes the CLI commands
// need. Wiring happens in cmd/mealweek.
type App struct {
	Planner service.Planner

	// IsInteractive reports whether stdin is an interactive terminal.
	// The bare command only launches the TUI when it returns true.
	IsInteractive func() bool

	// LogDir is where --debug re-initializes the logger. Empty disables
	// the flag's effect, which is what tests want.
	LogDir string
}

// NewRootCmd creates the top-level "mealweek" command. Run bare on a
// terminal it starts the interactive weekly planner; on a non-terminal it
// prints the current week summary instead. With a day argument it prints
// that day's detail and exits.
func NewRootCmd(app *App) *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "mealweek [day]",
		Short:         "Weekly meal planner with per-day calorie and macro breakdowns",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug && app.LogDir != "" {
				return logger.Init(logger.Config{Debug: true, Dir: app.LogDir})
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return printDaySummary(cmd, app, args[0])
			}
			if app.IsInteractive != nil && app.IsInteractive() {
				if _, err := tea.NewProgram(newAppModel(app), tea.WithAltScreen()).Run(); err != nil {
					return fmt.Errorf("running planner TUI: %w", err)
				}
				return nil
			}
			return printWeekSummary(cmd, app)
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging, teed to stderr")

	root.AddCommand(
		newCalcCmd(),
		newDaysCmd(),
		newVersionCmd(),
	)

	return root
}

func printDaySummary(cmd *cobra.Command, app *App, arg string) error {
	day, err := domain.ParseDay(arg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	sum, err := app.Planner.DaySummary(ctx, day)
	if err != nil {
		return err
	}
	meals, err := app.Planner.MealsFor(ctx, day)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatter.FormatDaySummary(sum))
	if len(meals) > 0 {
		fmt.Fprintln(out)
		fmt.Fprint(out, formatter.RenderTable(formatter.MealTableHeaders, formatter.FormatMealRows(meals)))
	}
	return nil
}

func printWeekSummary(cmd *cobra.Command, app *App) error {
	summaries, err := app.Planner.WeekSummary(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeekTable(summaries, -1))
	fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Run mealweek in a terminal for the interactive planner."))
	return nil
}
