// Package service holds the business logic of both sides of the admin
// configuration system.
//
// On the server, [ConfigService] normalizes and stores configuration domains
// in a store.ConfigRepository. On the console, [ConfigPanel] keeps the
// working copy of one domain and runs the load, edit and save protocol
// against an adapter.ConfigStore.
package service

import (
	"context"

	"github.com/MKhiriev/go-admin-config/models"
)

// ConfigService serves the configuration API. Every operation answers with
// the whole stored configuration.
type ConfigService interface {
	GetGlobalConfig(ctx context.Context) (models.GlobalConfig, error)

	// UpdateConfig replaces every domain present in update. Absent domains
	// are left as they are.
	UpdateConfig(ctx context.Context, update models.GlobalConfig) (models.GlobalConfig, error)
	UpdateDomain(ctx context.Context, req models.DomainUpdateRequest) (models.GlobalConfig, error)

	UpdateField(ctx context.Context, req models.FieldPatchRequest) (models.GlobalConfig, error)
	Reset(ctx context.Context, req models.ResetRequest) (models.GlobalConfig, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ConfigServiceWrapper defines middleware composition for ConfigService.
// Implementations wrap an existing ConfigService to add behavior such as
// logging or validating.
type ConfigServiceWrapper interface {
	Wrap(ConfigService) ConfigService // returns a decorated ConfigService applying additional behavior
}

// Panel is the domain-independent view of a [ConfigPanel] used by hosts that
// handle both screens alike.
type Panel interface {
	Domain() models.Domain
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	ApplyPatch(path string, value any) error
	ResetToDefaults() error

	LoadStatus() LoadStatus
	SaveStatus() SaveStatus
	Notice() Notice
	DismissNotice()
}
