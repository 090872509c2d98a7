package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katebianchi/mealweek/internal/domain"
	"github.com/katebianchi/mealweek/internal/repository"
	"github.com/katebianchi/mealweek/internal/testutil"
)

func newTestPlanner(t *testing.T, backend string) Planner {
	t.Helper()
	switch backend {
	case "memory":
		return NewPlannerService(repository.NewMemoryMealRepo())
	case "sqlite":
		return NewPlannerService(repository.NewSQLiteMealRepo(testutil.NewTestDB(t)))
	default:
		t.Fatalf("unknown backend %q", backend)
		return nil
	}
}

func plannerBackends(t *testing.T) map[string]Planner {
	return map[string]Planner{
		"memory": newTestPlanner(t, "memory"),
		"sqlite": newTestPlanner(t, "sqlite"),
	}
}

func TestAddMeal_AssignsIDAndTimestamp(t *testing.T) {
	p := newTestPlanner(t, "memory")
	rec, err := p.AddMeal(context.Background(), domain.MealRecord{
		Day: domain.Monday, Name: "Oatmeal", Protein: 12, Carbs: 54, Fat: 6,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.LoggedAt.IsZero())
	assert.Equal(t, domain.Monday, rec.Day)
}

func TestAddMeal_InvalidNeverTouchesLedger(t *testing.T) {
	for name, p := range plannerBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := p.AddMeal(ctx, domain.MealRecord{Day: domain.Monday, Name: "A", Protein: -1})
			require.Error(t, err)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			_, hasName := verr.ByField("name")
			_, hasProtein := verr.ByField("protein")
			assert.True(t, hasName)
			assert.True(t, hasProtein)

			meals, err := p.MealsFor(ctx, domain.Monday)
			require.NoError(t, err)
			assert.Empty(t, meals, "rejected candidate must not be stored")
		})
	}
}

func TestAddMeal_AppendOnlyOrdering(t *testing.T) {
	for name, p := range plannerBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			names := []string{"eggs", "toast", "yogurt"}
			for _, n := range names {
				_, err := p.AddMeal(ctx, domain.MealRecord{Day: domain.Thursday, Name: n})
				require.NoError(t, err)
			}

			meals, err := p.MealsFor(ctx, domain.Thursday)
			require.NoError(t, err)
			require.Len(t, meals, len(names))
			for i, m := range meals {
				assert.Equal(t, names[i], m.Name, "position %d", i)
			}
		})
	}
}

func TestSubscribe_FiresOncePerCommittedAdd(t *testing.T) {
	p := newTestPlanner(t, "memory")
	var notified []domain.Day
	p.Subscribe(func(d domain.Day) { notified = append(notified, d) })

	ctx := context.Background()
	_, err := p.AddMeal(ctx, domain.MealRecord{Day: domain.Monday, Name: "eggs"})
	require.NoError(t, err)
	_, err = p.AddMeal(ctx, domain.MealRecord{Day: domain.Friday, Name: "fish"})
	require.NoError(t, err)

	// Rejected candidates never notify.
	_, err = p.AddMeal(ctx, domain.MealRecord{Day: domain.Friday, Name: "x"})
	require.Error(t, err)

	assert.Equal(t, []domain.Day{domain.Monday, domain.Friday}, notified)
}

func TestDaySummary_ReflectsLedger(t *testing.T) {
	for name, p := range plannerBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := p.AddMeal(ctx, domain.MealRecord{Day: domain.Monday, Name: "breakfast", Protein: 10, Carbs: 10, Fat: 10})
			require.NoError(t, err)
			_, err = p.AddMeal(ctx, domain.MealRecord{Day: domain.Monday, Name: "water", Protein: 0, Carbs: 0, Fat: 0})
			require.NoError(t, err)

			sum, err := p.DaySummary(ctx, domain.Monday)
			require.NoError(t, err)
			assert.Equal(t, domain.Monday, sum.Day)
			assert.Equal(t, 2, sum.Meals)
			assert.InDelta(t, 170.0, sum.Calories, 1e-9)
		})
	}
}

func TestDaySummary_EmptyDayIsZeroNotError(t *testing.T) {
	p := newTestPlanner(t, "memory")
	sum, err := p.DaySummary(context.Background(), domain.Sunday)
	require.NoError(t, err)
	assert.Zero(t, sum.Calories)
	assert.Zero(t, sum.ProteinPct)
	assert.Zero(t, sum.CarbsPct)
	assert.Zero(t, sum.FatPct)
}

func TestWeekSummary_CoversAllDaysInOrder(t *testing.T) {
	p := newTestPlanner(t, "sqlite")
	ctx := context.Background()
	_, err := p.AddMeal(ctx, domain.MealRecord{Day: domain.Wednesday, Name: "stew", Protein: 30, Carbs: 20, Fat: 15})
	require.NoError(t, err)

	summaries, err := p.WeekSummary(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 7)
	for i, d := range domain.Week() {
		assert.Equal(t, d, summaries[i].Day, "position %d", i)
	}
	assert.InDelta(t, 30*4+20*4+15*9, summaries[domain.Wednesday.Index()].Calories, 1e-9)
	assert.Zero(t, summaries[domain.Sunday.Index()].Calories)
}
