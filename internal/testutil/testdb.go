package testutil

import (
	"database/sql"
	"testing"

	"github.com/katebianchi/mealweek/internal/db"
)

// NewTestDB opens a fresh in-memory ledger database with the schema applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenMemoryDB()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
