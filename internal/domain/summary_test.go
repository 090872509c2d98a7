package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const pctTolerance = 1e-9

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Calories)
	assert.Zero(t, s.ProteinPct)
	assert.Zero(t, s.CarbsPct)
	assert.Zero(t, s.FatPct)
	assert.Zero(t, s.Meals)
}

func TestSummarize_AllZeroMacros(t *testing.T) {
	meals := []MealRecord{
		{Name: "black coffee"},
		{Name: "water"},
	}
	s := Summarize(meals)
	assert.Equal(t, 2, s.Meals)
	assert.Zero(t, s.Calories)
	assert.Zero(t, s.ProteinPct, "zero total must be normalized, not NaN")
	assert.Zero(t, s.CarbsPct)
	assert.Zero(t, s.FatPct)
}

func TestSummarize_AtwaterFactors(t *testing.T) {
	s := Summarize([]MealRecord{{Name: "bowl", Protein: 50, Carbs: 50, Fat: 20}})
	assert.InDelta(t, 580.0, s.Calories, pctTolerance, "50*4 + 50*4 + 20*9")
	assert.InDelta(t, 200.0/580.0*100, s.ProteinPct, pctTolerance)
	assert.InDelta(t, 200.0/580.0*100, s.CarbsPct, pctTolerance)
	assert.InDelta(t, 180.0/580.0*100, s.FatPct, pctTolerance)
	assert.InDelta(t, 34.48, s.ProteinPct, 0.01)
	assert.InDelta(t, 31.03, s.FatPct, 0.01)
}

func TestSummarize_PercentagesSumToHundred(t *testing.T) {
	cases := []struct {
		name    string
		protein float64
		carbs   float64
		fat     float64
	}{
		{"balanced", 50, 50, 20},
		{"protein only", 30, 0, 0},
		{"fat only", 0, 0, 11},
		{"carbs only", 0, 200, 0},
		{"tiny values", 0.001, 0.002, 0.003},
		{"large values", 12345, 6789, 321},
		{"fractional", 12.7, 33.3, 9.9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Summarize([]MealRecord{{Name: "m", Protein: tc.protein, Carbs: tc.carbs, Fat: tc.fat}})
			sum := s.ProteinPct + s.CarbsPct + s.FatPct
			assert.InDelta(t, 100.0, sum, 1e-9)
		})
	}
}

func TestSummarize_CombinesMeals(t *testing.T) {
	meals := []MealRecord{
		{Name: "breakfast", Protein: 10, Carbs: 10, Fat: 10},
		{Name: "snack", Protein: 0, Carbs: 0, Fat: 0},
	}
	s := Summarize(meals)
	assert.Equal(t, 2, s.Meals)
	assert.InDelta(t, 10.0, s.ProteinG, pctTolerance)
	assert.InDelta(t, 10.0, s.CarbsG, pctTolerance)
	assert.InDelta(t, 10.0, s.FatG, pctTolerance)
	assert.InDelta(t, 170.0, s.Calories, pctTolerance, "40 + 40 + 90")
}

func TestMealRecordCalories(t *testing.T) {
	m := MealRecord{Protein: 50, Carbs: 50, Fat: 20}
	assert.InDelta(t, 580.0, m.Calories(), pctTolerance)

	zero := MealRecord{}
	assert.Zero(t, zero.Calories())
}
