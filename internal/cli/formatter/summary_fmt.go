package formatter

import (
	"fmt"
	"strings"

	"github.com/katebianchi/mealweek/internal/domain"
)

// Display rounding lives here, not in the aggregator: summaries carry
// unrounded values and the formatter renders them to one decimal place.

// FormatKcal renders a calorie total, e.g. "580 kcal".
func FormatKcal(kcal float64) string {
	return fmt.Sprintf("%.0f kcal", kcal)
}

// FormatGrams renders a gram value to one decimal place, e.g. "50.0 g".
func FormatGrams(g float64) string {
	return fmt.Sprintf("%.1f g", g)
}

// FormatPct renders a percentage to one decimal place, e.g. "34.5%".
func FormatPct(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// macroBarWidth is the bar width used in the day summary block.
const macroBarWidth = 14

// FormatDaySummary renders the full nutrition breakdown block for one day:
// a calorie headline plus one line per macro with grams, share bar, and
// percentage.
func FormatDaySummary(s domain.DaySummary) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(s.Day.Title()))
	meals := "meals"
	if s.Meals == 1 {
		meals = "meal"
	}
	b.WriteString(Dim(fmt.Sprintf("  %d %s", s.Meals, meals)))
	b.WriteString("\n")
	b.WriteString(StyleBold.Render(FormatKcal(s.Calories)))
	b.WriteString("\n")

	lines := []struct {
		label string
		grams float64
		pct   float64
	}{
		{"protein", s.ProteinG, s.ProteinPct},
		{"carbs", s.CarbsG, s.CarbsPct},
		{"fat", s.FatG, s.FatPct},
	}
	for _, l := range lines {
		style := MacroStyle(l.label)
		b.WriteString(fmt.Sprintf("%s %8s  %s\n",
			style.Render(fmt.Sprintf("%-8s", l.label)),
			FormatGrams(l.grams),
			RenderMacroBar(style, l.pct, macroBarWidth),
		))
	}

	return b.String()
}

// FormatMealRows converts a day's meals into table rows for RenderTable.
func FormatMealRows(meals []domain.MealRecord) [][]string {
	rows := make([][]string, 0, len(meals))
	for i := range meals {
		m := &meals[i]
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			m.Name,
			FormatGrams(m.Protein),
			FormatGrams(m.Carbs),
			FormatGrams(m.Fat),
			FormatKcal(m.Calories()),
		})
	}
	return rows
}

// MealTableHeaders are the column headers matching FormatMealRows.
var MealTableHeaders = []string{"#", "Meal", "Protein", "Carbs", "Fat", "Energy"}

// FormatWeekTable renders the week dashboard table: one row per day with
// meal count, calories, and the macro percentage split. selected highlights
// that day's row; pass a negative index for no highlight.
func FormatWeekTable(summaries []domain.DaySummary, selected int) string {
	headers := []string{"Day", "Meals", "Energy", "Protein", "Carbs", "Fat"}
	rows := make([][]string, 0, len(summaries))
	for i, s := range summaries {
		day := s.Day.Title()
		if i == selected {
			day = StyleHeader.Render("▸ " + day)
		} else {
			day = StyleFg.Render("  " + day)
		}
		rows = append(rows, []string{
			day,
			fmt.Sprintf("%d", s.Meals),
			FormatKcal(s.Calories),
			MacroStyle("protein").Render(FormatPct(s.ProteinPct)),
			MacroStyle("carbs").Render(FormatPct(s.CarbsPct)),
			MacroStyle("fat").Render(FormatPct(s.FatPct)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatMacroSplit renders the one-shot calc output: calories plus the
// percentage split for a single macro triple.
func FormatMacroSplit(s domain.DaySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s = %s protein + %s carbs + %s fat\n",
		FormatKcal(s.Calories),
		FormatGrams(s.ProteinG),
		FormatGrams(s.CarbsG),
		FormatGrams(s.FatG),
	)
	for _, l := range []struct {
		label string
		pct   float64
	}{
		{"protein", s.ProteinPct},
		{"carbs", s.CarbsPct},
		{"fat", s.FatPct},
	} {
		fmt.Fprintf(&b, "%-8s %s\n", l.label, RenderMacroBar(MacroStyle(l.label), l.pct, macroBarWidth))
	}
	return b.String()
}
