// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the configuration domains of the server.
//
// One payload is kept per domain. [NewConfigRepository] picks the backend
// from the DSN: PostgreSQL through pgx, SQLite through go-sqlite3, or an
// embedded badger key-value store. SQL backends are migrated with goose on
// connect and retry transient failures classified by [ErrorClassificator].
package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-admin-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_repository_mock.go -package=mock

// ConfigRepository stores the normalized payload of each domain.
type ConfigRepository interface {
	// GetAll returns every stored domain. Domains never saved are nil.
	GetAll(ctx context.Context) (models.GlobalConfig, error)

	// Get returns the payload stored for domain or [ErrConfigNotFound].
	Get(ctx context.Context, domain models.Domain) (json.RawMessage, error)

	// Save inserts or replaces the payload of domain.
	Save(ctx context.Context, domain models.Domain, payload json.RawMessage) error

	// Delete removes the given domains. Missing domains are not an error.
	Delete(ctx context.Context, domains ...models.Domain) error

	// Close releases the underlying connection or database.
	Close() error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
