package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katebianchi/mealweek/internal/domain"
)

// TestConcurrentAccess_MemoryReadDuringWrite verifies that the in-memory
// ledger tolerates reads while appends are in progress. Every tea.Cmd runs
// on its own goroutine, so an add-meal command and a dashboard refresh can
// hit the store at the same time; that must never fault or corrupt data.
func TestConcurrentAccess_MemoryReadDuringWrite(t *testing.T) {
	repo := NewMemoryMealRepo()
	ctx := context.Background()

	const appends = 200
	var wg sync.WaitGroup

	// Writer goroutine: append meals sequentially, alternating days.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < appends; i++ {
			day := domain.Week()[i%7]
			m := testMeal(fmt.Sprintf("id-%d", i), day, fmt.Sprintf("meal %03d", i))
			if err := repo.Add(ctx, m); err != nil {
				t.Errorf("writer: add meal %d: %v", i, err)
				return
			}
		}
	}()

	// Reader goroutines: list and count repeatedly while writes happen.
	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				day := domain.Week()[i%7]
				meals, err := repo.ListByDay(ctx, day)
				if err != nil {
					t.Errorf("reader %d: list %s: %v", reader, day, err)
					return
				}
				// Each record is a consistent snapshot, never half-written.
				for _, m := range meals {
					if m.ID == "" || m.Name == "" {
						t.Errorf("reader %d: got record with empty fields", reader)
					}
				}

				counts, err := repo.CountByDay(ctx)
				if err != nil {
					t.Errorf("reader %d: count: %v", reader, err)
					return
				}
				if len(counts) != 7 {
					t.Errorf("reader %d: expected 7 day counts, got %d", reader, len(counts))
				}
			}
		}(r)
	}

	wg.Wait()

	// Final check: every append landed, per-day order intact.
	counts, err := repo.CountByDay(ctx)
	require.NoError(t, err)
	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, appends, total)

	monday, err := repo.ListByDay(ctx, domain.Monday)
	require.NoError(t, err)
	for i := 1; i < len(monday); i++ {
		assert.Less(t, monday[i-1].Name, monday[i].Name, "per-day insertion order preserved")
	}
}
