package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/logger"
)

// Backend names resolved from a DSN.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendBadger   = "badger"
)

// badgerMemory is the badger DSN location that selects in-memory mode.
const badgerMemory = "memory"

// ParseDSN returns the backend a DSN selects and the location handed to it.
//
//	postgres://... | postgresql://...  -> postgres, the DSN itself
//	sqlite://path  | file:path         -> sqlite, path
//	badger://dir   | badger://memory   -> badger, dir or "memory"
func ParseDSN(dsn string) (backend, location string, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		location = strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "file:"):
		location = strings.TrimPrefix(dsn, "file:")
	case strings.HasPrefix(dsn, "badger://"):
		location = strings.TrimPrefix(dsn, "badger://")
		if location == "" {
			return "", "", fmt.Errorf("%w: badger DSN needs a directory or %q", ErrUnsupportedDSN, badgerMemory)
		}
		return BackendBadger, location, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}

	if location == "" {
		return "", "", fmt.Errorf("%w: sqlite DSN needs a path", ErrUnsupportedDSN)
	}
	return BackendSQLite, location, nil
}

// NewConfigRepository connects the backend selected by cfg.DSN. SQL backends
// are migrated before the repository is returned.
func NewConfigRepository(ctx context.Context, cfg config.ServerStorage, log *logger.Logger) (ConfigRepository, error) {
	backend, location, err := ParseDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}
	log.Info().Str("func", "NewConfigRepository").Str("backend", backend).Msg("opening configuration storage")

	if backend == BackendBadger {
		return NewBadgerConfigRepository(location, location == badgerMemory, log)
	}

	var db *DB
	if backend == BackendPostgres {
		db, err = NewConnectPostgres(ctx, cfg, log)
	} else {
		db, err = NewConnectSQLite(ctx, location, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewConfigRepository").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return NewSQLConfigRepository(db, log), nil
}
