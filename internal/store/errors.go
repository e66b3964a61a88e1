package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrConfigNotFound is returned when no payload is stored for a domain.
	ErrConfigNotFound = errors.New("configuration is not found")

	// ErrUnsupportedDSN is returned by [NewConfigRepository] when the DSN
	// scheme matches no backend.
	ErrUnsupportedDSN = errors.New("unsupported storage DSN")

	// ErrStorageClosed is returned by the badger repository after Close.
	ErrStorageClosed = errors.New("storage is closed")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan configuration row")

	// ErrScanningRows is returned when iterating a result set fails midway.
	ErrScanningRows = errors.New("failed to scan configuration rows")
)
