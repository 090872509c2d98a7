package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/katebianchi/mealweek/internal/domain"
)

// MemoryMealRepo keeps the ledger in process memory. This is the default
// backend: all seven days are present from construction with empty lists,
// and Add is the only mutation. Reads and writes arrive from separate
// goroutines (every tea.Cmd runs on its own), so access is guarded.
type MemoryMealRepo struct {
	mu    sync.RWMutex
	meals map[domain.Day][]domain.MealRecord
}

// NewMemoryMealRepo creates an empty ledger covering the full week.
func NewMemoryMealRepo() *MemoryMealRepo {
	meals := make(map[domain.Day][]domain.MealRecord, len(domain.Week()))
	for _, d := range domain.Week() {
		meals[d] = []domain.MealRecord{}
	}
	return &MemoryMealRepo{meals: meals}
}

func (r *MemoryMealRepo) Add(ctx context.Context, m *domain.MealRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.meals[m.Day]; !ok {
		return fmt.Errorf("appending meal: unknown day %q", m.Day)
	}
	r.meals[m.Day] = append(r.meals[m.Day], *m)
	return nil
}

// ListByDay returns the day's records in insertion order. The returned slice
// is a copy; mutating it does not touch the ledger.
func (r *MemoryMealRepo) ListByDay(ctx context.Context, day domain.Day) ([]domain.MealRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list, ok := r.meals[day]
	if !ok {
		return nil, fmt.Errorf("listing meals: unknown day %q", day)
	}
	out := make([]domain.MealRecord, len(list))
	copy(out, list)
	return out, nil
}

func (r *MemoryMealRepo) CountByDay(ctx context.Context) (map[domain.Day]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[domain.Day]int, len(r.meals))
	for _, d := range domain.Week() {
		counts[d] = len(r.meals[d])
	}
	return counts, nil
}
