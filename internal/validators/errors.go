package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyField       = errors.New("field is required")
	ErrInvalidField     = errors.New("invalid field path")
	ErrInvalidScope     = errors.New("invalid reset scope")
	ErrInvalidDomain    = errors.New("invalid configuration domain")
	ErrInvalidPayload   = errors.New("payload must be a JSON object")
	ErrUnsupportedValue = errors.New("patch value must be a scalar")
)
