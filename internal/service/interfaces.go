package service

import (
	"context"

	"github.com/katebianchi/mealweek/internal/domain"
)

// Planner is the in-process contract the presentation layer talks to: submit
// candidate meals, read a day's ledger, and fetch derived summaries. All
// operations run to completion synchronously.
type Planner interface {
	// AddMeal validates the candidate, appends it to the ledger, and
	// notifies subscribers. On validation failure it returns a
	// *domain.ValidationError and leaves the ledger untouched.
	AddMeal(ctx context.Context, m domain.MealRecord) (*domain.MealRecord, error)

	// MealsFor returns the day's meals in insertion order.
	MealsFor(ctx context.Context, day domain.Day) ([]domain.MealRecord, error)

	// DaySummary recomputes the nutrition breakdown for one day.
	DaySummary(ctx context.Context, day domain.Day) (domain.DaySummary, error)

	// WeekSummary recomputes every day's breakdown, Monday first.
	WeekSummary(ctx context.Context) ([]domain.DaySummary, error)

	// Subscribe registers fn to run after every committed append, with the
	// day that changed. Subscribers let the presentation layer recompute
	// displayed summaries reactively; the only guarantee is that a
	// notification follows each committed mutation.
	Subscribe(fn func(domain.Day))
}
