package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/katebianchi/mealweek/internal/domain"
)

// SQLiteMealRepo implements MealRepo over the session's in-memory SQLite
// database. Per-day insertion order is preserved by the monotonic seq column.
type SQLiteMealRepo struct {
	db *sql.DB
}

// NewSQLiteMealRepo creates a new SQLiteMealRepo.
func NewSQLiteMealRepo(db *sql.DB) *SQLiteMealRepo {
	return &SQLiteMealRepo{db: db}
}

func (r *SQLiteMealRepo) Add(ctx context.Context, m *domain.MealRecord) error {
	query := `INSERT INTO meals (id, day, name, protein, carbs, fat, logged_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		string(m.Day),
		m.Name,
		m.Protein,
		m.Carbs,
		m.Fat,
		m.LoggedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting meal: %w", err)
	}
	return nil
}

func (r *SQLiteMealRepo) ListByDay(ctx context.Context, day domain.Day) ([]domain.MealRecord, error) {
	query := `SELECT id, day, name, protein, carbs, fat, logged_at
		FROM meals WHERE day = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, string(day))
	if err != nil {
		return nil, fmt.Errorf("listing meals for %s: %w", day, err)
	}
	defer rows.Close()
	return scanMeals(rows)
}

func (r *SQLiteMealRepo) CountByDay(ctx context.Context) (map[domain.Day]int, error) {
	counts := make(map[domain.Day]int, len(domain.Week()))
	for _, d := range domain.Week() {
		counts[d] = 0
	}

	rows, err := r.db.QueryContext(ctx, `SELECT day, COUNT(*) FROM meals GROUP BY day`)
	if err != nil {
		return nil, fmt.Errorf("counting meals by day: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var day string
		var n int
		if err := rows.Scan(&day, &n); err != nil {
			return nil, fmt.Errorf("scanning meal count: %w", err)
		}
		counts[domain.Day(day)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("counting meals by day: %w", err)
	}
	return counts, nil
}

func scanMeals(rows *sql.Rows) ([]domain.MealRecord, error) {
	meals := []domain.MealRecord{}
	for rows.Next() {
		var m domain.MealRecord
		var day, loggedAtStr string
		if err := rows.Scan(&m.ID, &day, &m.Name, &m.Protein, &m.Carbs, &m.Fat, &loggedAtStr); err != nil {
			return nil, fmt.Errorf("scanning meal: %w", err)
		}
		m.Day = domain.Day(day)
		loggedAt, err := time.Parse(time.RFC3339Nano, loggedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing meal logged_at %q: %w", loggedAtStr, err)
		}
		m.LoggedAt = loggedAt
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating meals: %w", err)
	}
	return meals, nil
}
