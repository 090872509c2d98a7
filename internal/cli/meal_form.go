package cli

import (
	"github.com/charmbracelet/huh"

	"github.com/katebianchi/mealweek/internal/domain"
)

// mealForm collects one candidate meal. The field validators mirror the
// ledger's per-field rules, so a completed form always yields a candidate
// that passes domain.ValidateMeal.
type mealForm struct {
	form *huh.Form

	day     string
	name    string
	protein string
	carbs   string
	fat     string
}

// newMealForm builds an add-meal form preselecting the given day.
func newMealForm(day domain.Day) *mealForm {
	f := &mealForm{day: string(day)}

	options := make([]huh.Option[string], 0, len(domain.Week()))
	for _, d := range domain.Week() {
		options = append(options, huh.NewOption(d.Title(), string(d)))
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Day").
				Options(options...).
				Value(&f.day),
			huh.NewInput().
				Title("Meal").
				Placeholder("Oatmeal with berries").
				Value(&f.name).
				Validate(validateMealName),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Protein (g)").
				Placeholder("0").
				Value(&f.protein).
				Validate(validateMacroInput),
			huh.NewInput().
				Title("Carbs (g)").
				Placeholder("0").
				Value(&f.carbs).
				Validate(validateMacroInput),
			huh.NewInput().
				Title("Fat (g)").
				Placeholder("0").
				Value(&f.fat).
				Validate(validateMacroInput),
		),
	).WithTheme(mealweekHuhTheme()).WithShowHelp(false)

	return f
}

// candidate converts the completed form into a meal candidate for the
// planner. Blank macro inputs mean zero grams.
func (f *mealForm) candidate() domain.MealRecord {
	return domain.MealRecord{
		Day:     domain.Day(f.day),
		Name:    f.name,
		Protein: parseMacro(f.protein),
		Carbs:   parseMacro(f.carbs),
		Fat:     parseMacro(f.fat),
	}
}
