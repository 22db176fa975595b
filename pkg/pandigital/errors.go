package pandigital

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBase is matched by every *ConfigError.
	ErrInvalidBase = errors.New("pandigital: base must be between 1 and 10, or 16")

	ErrTooShort          = errors.New("pandigital: value is shorter than the minimum length")
	ErrLengthMismatch    = errors.New("pandigital: value length must equal the minimum length")
	ErrInvalidCharacters = errors.New("pandigital: value contains characters outside the alphabet")
	ErrRepeatedDigit     = errors.New("pandigital: value repeats a digit")
	ErrMissingDigits     = errors.New("pandigital: value does not contain every digit")

	ErrInvalidWorkers = errors.New("pandigital: workers must be positive")
)

// ConfigError reports a configuration rejected at construction time.
type ConfigError struct {
	Base int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("pandigital: invalid base %d: must be between 1 and 10, or 16", e.Base)
}

// Is makes errors.Is(err, ErrInvalidBase) hold for any ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidBase
}
