package repository

import (
	"context"

	"github.com/katebianchi/mealweek/internal/domain"
)

// MealRepo is the weekly ledger: an append-only store of validated meal
// records grouped by day. Implementations preserve per-day insertion order
// and return defensive copies — callers can never mutate stored records
// through a returned slice. Records are assumed pre-validated; passing an
// unvalidated record is a caller bug.
type MealRepo interface {
	Add(ctx context.Context, m *domain.MealRecord) error
	ListByDay(ctx context.Context, day domain.Day) ([]domain.MealRecord, error)
	CountByDay(ctx context.Context) (map[domain.Day]int, error)
}
