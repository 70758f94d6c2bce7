package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect names the SQL flavour behind a *sql.DB.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// ParseDSN picks the database/sql driver for dsn.
//
// postgres:// and postgresql:// URLs go to pgx; everything else is treated
// as a SQLite path or file: URI. SQLite connections always get foreign keys
// enabled because task ownership relies on them.
func ParseDSN(dsn string) (driver string, source string, dialect Dialect) {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return "pgx", dsn, DialectPostgres
	}

	source = dsn
	if !strings.HasPrefix(lower, "file:") {
		source = "file:" + dsn
	}
	if !strings.Contains(source, "_pragma=foreign_keys") {
		sep := "?"
		if strings.Contains(source, "?") {
			sep = "&"
		}
		source += sep + "_pragma=foreign_keys(1)"
	}
	return "sqlite", source, DialectSQLite
}

// ErrUnreachable is returned by Open, together with a usable *sql.DB, when
// the initial ping fails.
var ErrUnreachable = errors.New("database unreachable")

// Open opens and pings the database described by dsn. A failed ping still
// yields the pool; the error then wraps ErrUnreachable.
func Open(ctx context.Context, dsn string) (*sql.DB, Dialect, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, "", fmt.Errorf("database dsn is required")
	}

	driver, source, dialect := ParseDSN(dsn)

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, "", fmt.Errorf("db open error: %w", err)
	}

	if dialect == DialectSQLite {
		// SQLite allows a single writer; serialising through one connection
		// avoids SQLITE_BUSY under concurrent requests.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		return db, dialect, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	return db, dialect, nil
}
