// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the admin console and
// the remote configuration API.
//
// [ConfigStore] decouples the service layer from the protocol. Two
// implementations ship: HTTP/REST over resty ([NewHTTPConfigStore]) and gRPC
// with a JSON codec ([NewGRPCConfigStore]). [New] picks one from the client
// configuration.
//
// Failures are typed: [*TransportError] when no answer arrived,
// [*ServerError] when the server rejected the request, and
// [ErrMalformedResponse] when the answer is not an envelope. HTTP status
// sentinels ([ErrBadRequest], [ErrNotFound], ...) are reachable through
// [errors.Is] on a ServerError.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-admin-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_store_mock.go -package=mock

// ConfigStore is the remote configuration API as seen by the console.
type ConfigStore interface {
	// GetGlobalConfig fetches every stored domain. Absent domains are left
	// nil in the result.
	GetGlobalConfig(ctx context.Context) (models.GlobalConfig, error)

	// UpdateDomain replaces one domain with payload and returns what the
	// server stored.
	UpdateDomain(ctx context.Context, domain models.Domain, payload json.RawMessage) (models.GlobalConfig, error)

	// UpdateConfigField sets a single "<domain>.<path>" field.
	UpdateConfigField(ctx context.Context, field string, value any) (models.GlobalConfig, error)

	// ResetConfig drops the stored domains of scope so defaults apply again.
	ResetConfig(ctx context.Context, scope models.ResetScope) (models.GlobalConfig, error)
}
