package domain

import "time"

// MealRecord is one logged meal in the weekly ledger. Macro values are in
// grams. ID is a storage key assigned when the record is appended; a day's
// ordering comes from insertion order, never from the ID.
type MealRecord struct {
	ID       string
	Day      Day
	Name     string
	Protein  float64
	Carbs    float64
	Fat      float64
	LoggedAt time.Time
}

// Calories returns the energy content of this meal per the Atwater factors.
func (m *MealRecord) Calories() float64 {
	return m.Protein*KcalPerGramProtein + m.Carbs*KcalPerGramCarbs + m.Fat*KcalPerGramFat
}
