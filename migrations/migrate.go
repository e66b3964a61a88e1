// Package migrations holds the embedded goose migrations of the
// configuration server. The same SQL runs on PostgreSQL and SQLite.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Dialects accepted by Migrate.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

var errNilDB = errors.New("db is nil")

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies every pending migration to db using the goose dialect.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect %q for db: %w", dialect, err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
