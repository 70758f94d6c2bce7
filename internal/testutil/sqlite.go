// Package testutil holds helpers shared by database-backed tests.
package testutil

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophtodo/internal/dbx"
	"github.com/dmitrijs2005/gophtodo/internal/server/migrations"
)

// MemoryDSN returns a shared-cache in-memory SQLite DSN unique to t.
func MemoryDSN(t testing.TB) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return '_'
	}, t.Name())
	return "file:" + name + "?mode=memory&cache=shared"
}

// NewSQLiteDB opens a migrated in-memory database that is closed with the test.
func NewSQLiteDB(t testing.TB) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, dialect, err := dbx.Open(ctx, MemoryDSN(t))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := migrations.Up(ctx, db, dialect); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}
