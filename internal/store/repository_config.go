package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/models"
)

// sqlConfigRepository is the SQL implementation of [ConfigRepository] over
// the admin_config table.
type sqlConfigRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLConfigRepository constructs a [ConfigRepository] on an open DB.
func NewSQLConfigRepository(db *DB, logger *logger.Logger) ConfigRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating sql config repository")
	return &sqlConfigRepository{
		db:     db,
		now:    time.Now,
		logger: logger,
	}
}

func (r *sqlConfigRepository) GetAll(ctx context.Context) (models.GlobalConfig, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllConfigsQuery(r.db.placeholder)
	if err != nil {
		log.Err(err).Str("func", "*sqlConfigRepository.GetAll").Msg("error building query")
		return models.GlobalConfig{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var cfg models.GlobalConfig
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		cfg = models.GlobalConfig{}

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var domain, payload string
			if err = rows.Scan(&domain, &payload); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			cfg.Set(models.Domain(domain), json.RawMessage(payload))
		}
		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlConfigRepository.GetAll").Str("pg_code", postgresError(err)).Msg("error loading configuration")
		return models.GlobalConfig{}, err
	}

	return cfg, nil
}

func (r *sqlConfigRepository) Get(ctx context.Context, domain models.Domain) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectConfigQuery(r.db.placeholder, domain)
	if err != nil {
		log.Err(err).Str("func", "*sqlConfigRepository.Get").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload string
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	})
	if isNoRows(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, domain)
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlConfigRepository.Get").Str("domain", domain.String()).Msg("error loading domain")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return json.RawMessage(payload), nil
}

func (r *sqlConfigRepository) Save(ctx context.Context, domain models.Domain, payload json.RawMessage) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertConfigQuery(r.db.placeholder, domain, payload, r.now())
	if err != nil {
		log.Err(err).Str("func", "*sqlConfigRepository.Save").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "*sqlConfigRepository.Save").
			Str("domain", domain.String()).
			Str("pg_code", postgresError(err)).
			Msg("failed to upsert configuration")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sqlConfigRepository) Delete(ctx context.Context, domains ...models.Domain) error {
	if len(domains) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteConfigsQuery(r.db.placeholder, domains)
	if err != nil {
		log.Err(err).Str("func", "*sqlConfigRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlConfigRepository.Delete").Msg("failed to delete configuration")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sqlConfigRepository) Close() error {
	return r.db.Close()
}
