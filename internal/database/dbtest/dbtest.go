// Package dbtest opens throwaway in-memory stores for package tests.
package dbtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/selmane/retailpos/internal/database"
)

// Open returns a migrated in-memory store scoped to the test. A single pool
// connection keeps SQLite's shared-cache locking out of the picture;
// concurrent transactions serialize at the pool instead.
func Open(t *testing.T) *sqlx.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", name)

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test store: %v", err)
	}
	return db
}
