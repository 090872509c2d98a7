package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katebianchi/mealweek/internal/domain"
	"github.com/katebianchi/mealweek/internal/logger"
	"github.com/katebianchi/mealweek/internal/repository"
)

type plannerService struct {
	meals repository.MealRepo
	now   func() time.Time
	subs  []func(domain.Day)
}

// NewPlannerService creates a Planner backed by the given ledger store.
func NewPlannerService(meals repository.MealRepo) Planner {
	return &plannerService{meals: meals, now: time.Now}
}

func (s *plannerService) AddMeal(ctx context.Context, m domain.MealRecord) (*domain.MealRecord, error) {
	if err := domain.ValidateMeal(&m); err != nil {
		logger.Debug("meal rejected", "day", m.Day, "name", m.Name, "error", err)
		return nil, err
	}

	m.ID = uuid.New().String()
	m.LoggedAt = s.now().UTC()

	if err := s.meals.Add(ctx, &m); err != nil {
		return nil, fmt.Errorf("appending meal: %w", err)
	}
	if counts, err := s.meals.CountByDay(ctx); err == nil {
		logger.Debug("meal appended", "day", m.Day, "name", m.Name, "kcal", m.Calories(), "day_total", counts[m.Day])
	}

	for _, fn := range s.subs {
		fn(m.Day)
	}
	return &m, nil
}

func (s *plannerService) MealsFor(ctx context.Context, day domain.Day) ([]domain.MealRecord, error) {
	return s.meals.ListByDay(ctx, day)
}

func (s *plannerService) DaySummary(ctx context.Context, day domain.Day) (domain.DaySummary, error) {
	meals, err := s.meals.ListByDay(ctx, day)
	if err != nil {
		return domain.DaySummary{}, fmt.Errorf("summarizing %s: %w", day, err)
	}
	sum := domain.Summarize(meals)
	sum.Day = day
	return sum, nil
}

func (s *plannerService) WeekSummary(ctx context.Context) ([]domain.DaySummary, error) {
	summaries := make([]domain.DaySummary, 0, len(domain.Week()))
	for _, d := range domain.Week() {
		sum, err := s.DaySummary(ctx, d)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}

func (s *plannerService) Subscribe(fn func(domain.Day)) {
	s.subs = append(s.subs, fn)
}
