package store

import (
	"database/sql"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/migrations"
	"github.com/jackc/pgerrcode"
)

// DB wraps *sql.DB with the driver name it was opened with, so that
// repositories and migrations can branch on backend-specific behaviour
// (placeholder dialects are shared; error codes are not).
type DB struct {
	*sql.DB
	driverName         string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for this database's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driverName)
}

// isUniqueViolation reports whether err is a unique-constraint violation for
// the backend this DB was opened with.
func (db *DB) isUniqueViolation(err error) bool {
	if db.driverName == "sqlite3" {
		return sqliteUniqueViolation(err)
	}

	return postgresError(err) == pgerrcode.UniqueViolation
}
