// Package migrations embeds the SQL schema migrations and applies them with
// goose. PostgreSQL and SQLite need different DDL for identity columns, so
// each dialect keeps its own migration directory.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations for the given driver name
// ("pgx" or "sqlite3") against db.
func Migrate(db *sql.DB, driverName string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir := "postgres"
	if driverName == "sqlite3" {
		dir = "sqlite"
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(driverName); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
