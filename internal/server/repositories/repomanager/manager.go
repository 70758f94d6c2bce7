package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophtodo/internal/dbx"
	"github.com/dmitrijs2005/gophtodo/internal/server/migrations"
	"github.com/dmitrijs2005/gophtodo/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/gophtodo/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a *sql.DB or *sql.Tx and
// owns the schema for its dialect.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}

// New returns the manager for dialect.
func New(dialect dbx.Dialect) (RepositoryManager, error) {
	switch dialect {
	case dbx.DialectPostgres:
		return NewPostgresRepositoryManager(), nil
	case dbx.DialectSQLite:
		return NewSQLiteRepositoryManager(), nil
	}
	return nil, fmt.Errorf("unsupported dialect %q", dialect)
}

// runMigrations is a seam for testing migrations.Up.
var runMigrations = migrations.Up
