package service

import "errors"

// Server-side errors. Handlers map them to HTTP status codes.
var (
	ErrInvalidDomain     = errors.New("invalid configuration domain")
	ErrInvalidPayload    = errors.New("invalid configuration payload")
	ErrNoDomainSupplied  = errors.New("no configuration domain supplied")
	ErrInvalidField      = errors.New("invalid configuration field")
	ErrInvalidPatch      = errors.New("patch value does not fit the field")
	ErrInvalidResetScope = errors.New("invalid reset scope")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Console errors.
var (
	// ErrSaveInProgress is returned when Save or ApplyPatch is called while a
	// save of the same panel is in flight.
	ErrSaveInProgress = errors.New("save already in progress")
)
