package domain

// Atwater energy factors, kcal per gram.
const (
	KcalPerGramProtein = 4.0
	KcalPerGramCarbs   = 4.0
	KcalPerGramFat     = 9.0
)

// DaySummary is the derived nutrition breakdown for one day's meals: gram
// totals, total calories, and each macro's share of those calories. It is
// computed on demand and never stored.
type DaySummary struct {
	Day   Day
	Meals int

	ProteinG float64
	CarbsG   float64
	FatG     float64

	Calories   float64
	ProteinPct float64
	CarbsPct   float64
	FatPct     float64
}

// Summarize folds a day's meals into a DaySummary. Percentages are unrounded;
// display rounding belongs to the presentation layer. A zero-calorie input
// (empty ledger day, or all-zero macros) yields zero percentages — the
// division is guarded so no NaN ever escapes to a consumer.
func Summarize(meals []MealRecord) DaySummary {
	var s DaySummary
	s.Meals = len(meals)
	for i := range meals {
		s.ProteinG += meals[i].Protein
		s.CarbsG += meals[i].Carbs
		s.FatG += meals[i].Fat
	}

	proteinKcal := s.ProteinG * KcalPerGramProtein
	carbsKcal := s.CarbsG * KcalPerGramCarbs
	fatKcal := s.FatG * KcalPerGramFat
	s.Calories = proteinKcal + carbsKcal + fatKcal

	if s.Calories == 0 {
		return s
	}

	s.ProteinPct = proteinKcal / s.Calories * 100
	s.CarbsPct = carbsKcal / s.Calories * 100
	s.FatPct = fatKcal / s.Calories * 100
	return s
}
