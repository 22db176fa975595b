package validator

import "errors"

var (
	// ErrValidationFailed is matched by any non-empty ValidationErrors.
	ErrValidationFailed = errors.New("validation failed")
)
