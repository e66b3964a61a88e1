package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"
)

// DB is an open SQL connection together with its dialect specifics.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	maxRetries         uint64
	retryDelay         time.Duration
	logger             *logger.Logger
}

// Migrate applies the embedded goose migrations for the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs fn and repeats it with a constant delay while the error is
// classified as [Retryable].
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	if db.maxRetries == 0 || db.errorClassificator == nil {
		return fn(ctx)
	}

	delay := db.retryDelay
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}
	backoff := retry.WithMaxRetries(db.maxRetries, retry.NewConstant(delay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Str("func", "DB.withRetry").Msg("retrying database operation")
			return retry.RetryableError(err)
		}
		return err
	})
}

// isNoRows reports whether err is sql.ErrNoRows.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
