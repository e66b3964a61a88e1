package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/models"
	"github.com/dgraph-io/badger/v4"
)

// badgerKeyPrefix namespaces configuration keys inside the badger database.
const badgerKeyPrefix = "config/"

// badgerConfigRepository is the embedded key-value implementation of
// [ConfigRepository]. One key per domain holds the JSON payload.
type badgerConfigRepository struct {
	db     *badger.DB
	mu     sync.RWMutex
	closed bool
	logger *logger.Logger
}

// NewBadgerConfigRepository opens a badger database in dir, or an in-memory
// one when inMemory is set.
func NewBadgerConfigRepository(dir string, inMemory bool, log *logger.Logger) (ConfigRepository, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		log.Err(err).Str("func", "NewBadgerConfigRepository").Msg("failed to open badger")
		return nil, fmt.Errorf("failed to open BadgerDB: %w", err)
	}
	log.Info().Str("func", "NewBadgerConfigRepository").Bool("in_memory", inMemory).Msg("badger storage opened")

	return &badgerConfigRepository{db: db, logger: log}, nil
}

func badgerKey(domain models.Domain) []byte {
	return []byte(badgerKeyPrefix + string(domain))
}

func (b *badgerConfigRepository) ensureOpen() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrStorageClosed
	}
	return nil
}

func (b *badgerConfigRepository) GetAll(ctx context.Context) (models.GlobalConfig, error) {
	if err := b.ensureOpen(); err != nil {
		return models.GlobalConfig{}, err
	}

	var cfg models.GlobalConfig
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(badgerKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			domain := models.Domain(item.Key()[len(badgerKeyPrefix):])
			payload, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			cfg.Set(domain, json.RawMessage(payload))
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*badgerConfigRepository.GetAll").Msg("error iterating configuration")
		return models.GlobalConfig{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cfg, nil
}

func (b *badgerConfigRepository) Get(ctx context.Context, domain models.Domain) (json.RawMessage, error) {
	if err := b.ensureOpen(); err != nil {
		return nil, err
	}

	var payload []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(domain))
		if err != nil {
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, domain)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*badgerConfigRepository.Get").Msg("error reading domain")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return payload, nil
}

func (b *badgerConfigRepository) Save(ctx context.Context, domain models.Domain, payload json.RawMessage) error {
	if err := b.ensureOpen(); err != nil {
		return err
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(domain), append([]byte(nil), payload...))
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*badgerConfigRepository.Save").Msg("error writing domain")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (b *badgerConfigRepository) Delete(ctx context.Context, domains ...models.Domain) error {
	if err := b.ensureOpen(); err != nil {
		return err
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		for _, d := range domains {
			if err := txn.Delete(badgerKey(d)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*badgerConfigRepository.Delete").Msg("error deleting domains")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (b *badgerConfigRepository) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	return b.db.Close()
}
