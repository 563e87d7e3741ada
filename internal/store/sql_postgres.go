package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-course-api/internal/config"
	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewConnectPostgres opens a PostgreSQL connection via the pgx stdlib driver,
// configures the connection pool, and verifies reachability with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	classifier := NewPostgresErrorClassifier()

	// ping database, retrying transient connection failures
	if err = pingWithRetry(ctx, conn, classifier, log); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		driverName:         "pgx",
		logger:             log,
		errorClassificator: classifier,
	}

	return db, nil
}

// pingWithRetry verifies database reachability. Errors the classifier marks
// as retryable (connection loss, deadlock rollback, server starting up) are
// retried with a flat delay; anything else fails immediately.
func pingWithRetry(ctx context.Context, conn *sql.DB, classifier ErrorClassificator, log *logger.Logger) error {
	const attempts = 3
	const delay = time.Second

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = conn.PingContext(ctx)
		if err == nil {
			return nil
		}

		if classifier.Classify(err) != Retryable {
			return err
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("database not reachable yet, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return err
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
