package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-admin-config/internal/configmodel"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/store"
	"github.com/MKhiriev/go-admin-config/models"
)

type configService struct {
	configRepository store.ConfigRepository

	logger *logger.Logger
}

func NewConfigService(configRepository store.ConfigRepository, logger *logger.Logger) ConfigService {
	return &configService{
		configRepository: configRepository,
		logger:           logger,
	}
}

func (c *configService) GetGlobalConfig(ctx context.Context) (models.GlobalConfig, error) {
	return c.configRepository.GetAll(ctx)
}

// UpdateConfig normalizes every supplied domain before storing any of them,
// so one bad payload leaves the stored configuration untouched.
func (c *configService) UpdateConfig(ctx context.Context, update models.GlobalConfig) (models.GlobalConfig, error) {
	log := logger.FromContext(ctx)

	normalized := make(map[models.Domain]json.RawMessage, len(models.Domains))
	for _, domain := range models.Domains {
		payload := update.Domain(domain)
		if !supplied(payload) {
			continue
		}

		data, dropped, err := configmodel.Normalize(domain, payload)
		if err != nil {
			return models.GlobalConfig{}, fmt.Errorf("%w: %s: %w", ErrInvalidPayload, domain, err)
		}
		if len(dropped) > 0 {
			log.Warn().Str("domain", domain.String()).Strs("dropped_keys", dropped).Msg("payload keys replaced by defaults")
		}
		normalized[domain] = data
	}
	if len(normalized) == 0 {
		return models.GlobalConfig{}, ErrNoDomainSupplied
	}

	for _, domain := range models.Domains {
		data, ok := normalized[domain]
		if !ok {
			continue
		}
		if err := c.configRepository.Save(ctx, domain, data); err != nil {
			log.Err(err).Str("func", "configService.UpdateConfig").Str("domain", domain.String()).Msg("error saving domain")
			return models.GlobalConfig{}, err
		}
	}

	return c.configRepository.GetAll(ctx)
}

func (c *configService) UpdateDomain(ctx context.Context, req models.DomainUpdateRequest) (models.GlobalConfig, error) {
	var update models.GlobalConfig
	switch req.Domain {
	case models.DomainIDCard, models.DomainNotifications:
		update.Set(req.Domain, req.Payload)
	default:
		return models.GlobalConfig{}, fmt.Errorf("%w: %q", ErrInvalidDomain, req.Domain)
	}
	if !supplied(req.Payload) {
		return models.GlobalConfig{}, ErrInvalidPayload
	}

	return c.UpdateConfig(ctx, update)
}

// UpdateField patches one leaf of a stored domain. A domain never stored is
// patched starting from its defaults.
func (c *configService) UpdateField(ctx context.Context, req models.FieldPatchRequest) (models.GlobalConfig, error) {
	domain, path, err := configmodel.SplitDomainPath(req.Field)
	if err != nil {
		return models.GlobalConfig{}, fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	stored, err := c.configRepository.Get(ctx, domain)
	if err != nil && !errors.Is(err, store.ErrConfigNotFound) {
		return models.GlobalConfig{}, err
	}

	patched, err := configmodel.PatchDomain(domain, stored, path, req.Value)
	switch {
	case errors.Is(err, configmodel.ErrInvalidKeyPath):
		return models.GlobalConfig{}, fmt.Errorf("%w: %w", ErrInvalidField, err)
	case errors.Is(err, configmodel.ErrPatchTypeMismatch):
		return models.GlobalConfig{}, fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	case err != nil:
		return models.GlobalConfig{}, err
	}

	if err = c.configRepository.Save(ctx, domain, patched); err != nil {
		return models.GlobalConfig{}, err
	}
	return c.configRepository.GetAll(ctx)
}

// Reset forgets the stored domains of the scope; readers then fall back to
// their defaults.
func (c *configService) Reset(ctx context.Context, req models.ResetRequest) (models.GlobalConfig, error) {
	domains := req.Scope.Domains()
	if len(domains) == 0 {
		return models.GlobalConfig{}, fmt.Errorf("%w: %q", ErrInvalidResetScope, req.Scope)
	}

	if err := c.configRepository.Delete(ctx, domains...); err != nil {
		return models.GlobalConfig{}, err
	}
	logger.FromContext(ctx).Info().Str("scope", string(req.Scope)).Msg("configuration reset")

	return c.configRepository.GetAll(ctx)
}

// supplied reports whether a domain is present in a request body. JSON null
// counts as absent.
func supplied(payload json.RawMessage) bool {
	trimmed := bytes.TrimSpace(payload)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
