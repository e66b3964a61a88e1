package config

import "errors"

// Validation errors returned when a configuration view is incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, unknown transport or missing address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid repository settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid listen addresses or timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidConsoleConfigs indicates invalid console settings.
	ErrInvalidConsoleConfigs = errors.New("invalid console configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
