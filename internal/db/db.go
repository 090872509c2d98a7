package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// OpenMemoryDB opens the session-scoped in-memory SQLite database and applies
// the schema. The ledger lives and dies with the process; nothing is ever
// written to disk.
func OpenMemoryDB() (*sql.DB, error) {
	database, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Each :memory: connection is its own database, so the pool must be
	// pinned to a single connection.
	database.SetMaxOpenConns(1)

	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		database.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return database, nil
}
