package validator

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/pandigital/pkg/pandigital"
)

// DigitsOnly validates that every character of value is a digit of the given
// base. Hex letters are accepted in either case. Bases outside 1..16 never pass.
func DigitsOnly(field, value string, base int) Rule {
	return Rule{
		Check: func() bool {
			if base < 1 || base > 16 {
				return false
			}
			digits := "0123456789ABCDEF"[:base]
			for _, r := range strings.ToUpper(value) {
				if !strings.ContainsRune(digits, r) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain only base %d digits", base),
			TranslationKey: "validation.digits_only",
			TranslationValues: map[string]any{
				"field": field,
				"base":  base,
			},
		},
	}
}

// MinDigits validates that value has at least n characters.
func MinDigits(field, value string, n int) Rule {
	return Rule{
		Check: func() bool {
			return len([]rune(value)) >= n
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must have at least %d digits", n),
			TranslationKey: "validation.min_digits",
			TranslationValues: map[string]any{
				"field": field,
				"min":   n,
			},
		},
	}
}

// Pandigital validates value with v. The reported message names the gate that
// rejected the value, which is resolved when the error is built.
func Pandigital(field, value string, v *pandigital.Validator) Rule {
	reason := v.Check(value)
	message := "must be pandigital"
	if reason != nil {
		message = pandigitalMessage(reason, v)
	}

	cfg := v.Config()
	return Rule{
		Check: func() bool {
			return reason == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.pandigital",
			TranslationValues: map[string]any{
				"field":        field,
				"base":         cfg.Base,
				"unique":       cfg.Unique,
				"require_zero": cfg.RequireZero,
				"min_length":   v.MinLength(),
				"missing":      v.Missing(value),
			},
		},
	}
}

func pandigitalMessage(reason error, v *pandigital.Validator) string {
	switch reason {
	case pandigital.ErrTooShort:
		return fmt.Sprintf("must be pandigital: needs at least %d digits", v.MinLength())
	case pandigital.ErrLengthMismatch:
		return fmt.Sprintf("must be pandigital: needs exactly %d digits", v.MinLength())
	case pandigital.ErrInvalidCharacters:
		return fmt.Sprintf("must be pandigital: only %s allowed", v.Alphabet())
	case pandigital.ErrRepeatedDigit:
		return "must be pandigital: digits must not repeat"
	default:
		return "must be pandigital: not every digit is present"
	}
}
