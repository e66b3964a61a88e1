package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-admin-config/internal/configmodel"
	"github.com/MKhiriev/go-admin-config/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldField targets the "<domain>.<path>" of a field patch.
	FieldField = "field"
	// FieldValue targets the value of a field patch.
	FieldValue = "value"
	// FieldScope targets the "tipo" of a reset request.
	FieldScope = "tipo"
	// FieldDomain targets the domain of a domain update.
	FieldDomain = "domain"
	// FieldPayload targets the payload of a domain update.
	FieldPayload = "payload"
)

// ConfigRequestValidator checks inbound configuration API requests.
// Struct tags are enforced with validator/v10; the field path and payload
// shape are checked against the configuration model.
type ConfigRequestValidator struct {
	tags *validator.Validate
}

func NewConfigRequestValidator() Validator {
	return &ConfigRequestValidator{
		tags: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *ConfigRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FieldPatchRequest:
		return v.validateFieldPatch(ctx, value, fields...)
	case *models.FieldPatchRequest:
		return v.validateFieldPatch(ctx, *value, fields...)

	case models.ResetRequest:
		return v.validateReset(ctx, value, fields...)
	case *models.ResetRequest:
		return v.validateReset(ctx, *value, fields...)

	case models.DomainUpdateRequest:
		return v.validateDomainUpdate(ctx, value, fields...)
	case *models.DomainUpdateRequest:
		return v.validateDomainUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ConfigRequestValidator) validateFieldPatch(_ context.Context, req models.FieldPatchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldField, FieldValue}
	}

	for _, field := range fields {
		switch field {
		case FieldField:
			if err := v.tags.Var(req.Field, "required"); err != nil {
				return ErrEmptyField
			}
			if _, _, err := configmodel.SplitDomainPath(req.Field); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidField, err)
			}
		case FieldValue:
			switch req.Value.(type) {
			case nil, bool, string, float64, int, int64:
			default:
				return fmt.Errorf("%w: got %T", ErrUnsupportedValue, req.Value)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *ConfigRequestValidator) validateReset(_ context.Context, req models.ResetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldScope}
	}

	for _, field := range fields {
		if field != FieldScope {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err := v.tags.Struct(req); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				return fmt.Errorf("%w: %q", ErrInvalidScope, req.Scope)
			}
			return err
		}
	}
	return nil
}

func (v *ConfigRequestValidator) validateDomainUpdate(_ context.Context, req models.DomainUpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDomain, FieldPayload}
	}

	for _, field := range fields {
		switch field {
		case FieldDomain:
			if req.Domain != models.DomainIDCard && req.Domain != models.DomainNotifications {
				return fmt.Errorf("%w: %q", ErrInvalidDomain, req.Domain)
			}
		case FieldPayload:
			if !configmodel.IsObject(req.Payload) {
				return ErrInvalidPayload
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}
