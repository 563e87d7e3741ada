package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-course-api/internal/config"
	"github.com/MKhiriev/go-course-api/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
// Handlers and services receive it explicitly; there is no package-level
// registry of models or connections.
type Storages struct {
	UserRepository   UserRepository
	CourseRepository CourseRepository
}

// NewStorages connects to the database selected by the DSN scheme
// ("postgres://" or "postgresql://" for PostgreSQL, anything else is treated
// as a SQLite file path), applies pending migrations, and wires all
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Msg("error migrating database schema")
		return nil, err
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		CourseRepository: NewCourseRepository(db, log),
	}, nil
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}
