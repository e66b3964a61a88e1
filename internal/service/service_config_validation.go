package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-admin-config/internal/validators"
	"github.com/MKhiriev/go-admin-config/models"
)

type ConfigValidationService struct {
	inner     ConfigService
	validator validators.Validator
}

func NewConfigValidationService() ConfigServiceWrapper {
	return &ConfigValidationService{
		validator: validators.NewConfigRequestValidator(),
	}
}

func (v *ConfigValidationService) GetGlobalConfig(ctx context.Context) (models.GlobalConfig, error) {
	return v.inner.GetGlobalConfig(ctx)
}

func (v *ConfigValidationService) UpdateConfig(ctx context.Context, update models.GlobalConfig) (models.GlobalConfig, error) {
	found := false
	for _, domain := range models.Domains {
		payload := update.Domain(domain)
		if !supplied(payload) {
			continue
		}
		found = true

		req := models.DomainUpdateRequest{Domain: domain, Payload: payload}
		if err := v.validator.Validate(ctx, req, validators.FieldPayload); err != nil {
			return models.GlobalConfig{}, fmt.Errorf("error validating %s: %w", domain, mapValidationError(err))
		}
	}
	if !found {
		return models.GlobalConfig{}, ErrNoDomainSupplied
	}

	return v.inner.UpdateConfig(ctx, update)
}

func (v *ConfigValidationService) UpdateDomain(ctx context.Context, req models.DomainUpdateRequest) (models.GlobalConfig, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.GlobalConfig{}, fmt.Errorf("error validating domain update: %w", mapValidationError(err))
	}

	return v.inner.UpdateDomain(ctx, req)
}

func (v *ConfigValidationService) UpdateField(ctx context.Context, req models.FieldPatchRequest) (models.GlobalConfig, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.GlobalConfig{}, fmt.Errorf("error validating field patch: %w", mapValidationError(err))
	}

	return v.inner.UpdateField(ctx, req)
}

func (v *ConfigValidationService) Reset(ctx context.Context, req models.ResetRequest) (models.GlobalConfig, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.GlobalConfig{}, fmt.Errorf("error validating reset: %w", mapValidationError(err))
	}

	return v.inner.Reset(ctx, req)
}

func (v *ConfigValidationService) Wrap(wrapper ConfigService) ConfigService {
	v.inner = wrapper
	return v
}

// mapValidationError translates validator errors into service errors.
func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrInvalidDomain):
		return errors.Join(ErrInvalidDomain, err)
	case errors.Is(err, validators.ErrInvalidPayload):
		return errors.Join(ErrInvalidPayload, err)
	case errors.Is(err, validators.ErrEmptyField), errors.Is(err, validators.ErrInvalidField):
		return errors.Join(ErrInvalidField, err)
	case errors.Is(err, validators.ErrUnsupportedValue):
		return errors.Join(ErrInvalidPatch, err)
	case errors.Is(err, validators.ErrInvalidScope):
		return errors.Join(ErrInvalidResetScope, err)
	}
	return err
}
