package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katebianchi/mealweek/internal/domain"
)

func TestFormatKcal(t *testing.T) {
	assert.Equal(t, "580 kcal", FormatKcal(580))
	assert.Equal(t, "0 kcal", FormatKcal(0))
	assert.Equal(t, "171 kcal", FormatKcal(170.6), "display rounding only")
}

func TestFormatGramsAndPct(t *testing.T) {
	assert.Equal(t, "50.0 g", FormatGrams(50))
	assert.Equal(t, "12.3 g", FormatGrams(12.34))
	assert.Equal(t, "34.5%", FormatPct(34.4827586))
	assert.Equal(t, "0.0%", FormatPct(0))
}

func TestFormatDaySummary(t *testing.T) {
	s := domain.Summarize([]domain.MealRecord{{Name: "bowl", Protein: 50, Carbs: 50, Fat: 20}})
	s.Day = domain.Monday

	out := FormatDaySummary(s)
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "580 kcal")
	assert.Contains(t, out, "34.5%")
	assert.Contains(t, out, "31.0%")
	assert.Contains(t, out, "1 meal")
}

func TestFormatDaySummary_EmptyDay(t *testing.T) {
	s := domain.Summarize(nil)
	s.Day = domain.Sunday

	out := FormatDaySummary(s)
	assert.Contains(t, out, "Sunday")
	assert.Contains(t, out, "0 kcal")
	assert.Contains(t, out, "0 meals")
	assert.NotContains(t, out, "NaN")
}

func TestFormatMealRows(t *testing.T) {
	meals := []domain.MealRecord{
		{Name: "eggs", Protein: 12, Carbs: 1, Fat: 10},
		{Name: "toast", Protein: 4, Carbs: 30, Fat: 2},
	}
	rows := FormatMealRows(meals)
	require.Len(t, rows, 2)
	require.Len(t, rows[0], len(MealTableHeaders))
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, "eggs", rows[0][1])
	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "toast", rows[1][1])
}

func TestFormatWeekTable_HighlightsSelection(t *testing.T) {
	summaries := make([]domain.DaySummary, 0, 7)
	for _, d := range domain.Week() {
		s := domain.Summarize(nil)
		s.Day = d
		summaries = append(summaries, s)
	}

	out := FormatWeekTable(summaries, 2)
	assert.Contains(t, out, "▸ Wednesday")
	for _, d := range domain.Week() {
		assert.Contains(t, out, d.Title())
	}

	none := FormatWeekTable(summaries, -1)
	assert.NotContains(t, none, "▸")
}

func TestFormatMacroSplit(t *testing.T) {
	s := domain.Summarize([]domain.MealRecord{{Name: "adhoc", Protein: 50, Carbs: 50, Fat: 20}})
	out := FormatMacroSplit(s)
	assert.Contains(t, out, "580 kcal")
	assert.Contains(t, out, "protein")
	assert.Contains(t, out, "34.5%")
}
