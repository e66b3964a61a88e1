package configmodel

import "errors"

var (
	ErrInvalidKeyPath    = errors.New("invalid key path")
	ErrPatchTypeMismatch = errors.New("patch value does not fit the target field")
	ErrUnknownDomain     = errors.New("unknown configuration domain")
	ErrNotAnObject       = errors.New("payload is not a JSON object")
)
