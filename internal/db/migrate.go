package db

import (
	"database/sql"
	"fmt"
)

// migrations holds the schema statements, applied in order. The seq column
// is the per-session append counter; a day's meals are always read back in
// seq order so insertion order is preserved.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS meals (
		seq       INTEGER PRIMARY KEY AUTOINCREMENT,
		id        TEXT NOT NULL UNIQUE,
		day       TEXT NOT NULL
		          CHECK(day IN ('monday','tuesday','wednesday','thursday','friday','saturday','sunday')),
		name      TEXT NOT NULL,
		protein   REAL NOT NULL CHECK(protein >= 0),
		carbs     REAL NOT NULL CHECK(carbs >= 0),
		fat       REAL NOT NULL CHECK(fat >= 0),
		logged_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_meals_day ON meals(day)`,
}

// Migrate applies all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
