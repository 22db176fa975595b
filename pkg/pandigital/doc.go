// Package pandigital checks whether a string of digits is pandigital under a
// configurable numbering base: every digit valid in that base must appear at
// least once.
//
// The input is always treated as a sequence of characters. Callers must pass
// strings, never numbers, so leading zeros and long values survive intact.
//
// # Configuration
//
// A Validator is built from three parameters:
//
//   - Base: 1 through 10, or 16 for hexadecimal (default: 10)
//   - Unique: forbid repeated digits, which also forces an exact length (default: false)
//   - RequireZero: include zero in the alphabet; when false zero is excluded
//     and must not appear for bases up to 10 (default: true)
//
// Construction validates eagerly and fails with a *ConfigError for any other
// base. The digit alphabet, the minimum length and the matching pattern are
// derived once at construction and never change afterwards.
//
// # Usage
//
//	import "github.com/dmitrymomot/pandigital/pkg/pandigital"
//
//	v, err := pandigital.New()
//	if err != nil {
//		return err
//	}
//	v.IsPandigital("1234567890") // true
//	v.IsPandigital("123456")     // false, too short
//
//	hex := pandigital.MustNew(pandigital.WithBase(16))
//	hex.IsPandigital("1234567890abcdef") // true, hex digits are case-insensitive
//
//	strict := pandigital.MustNew(pandigital.WithBase(4), pandigital.WithUnique(true))
//	strict.IsPandigital("1230")  // true
//	strict.IsPandigital("12330") // false
//
// # Pipeline
//
// Every call runs three gates and stops at the first failure:
//
//  1. length: shorter than the minimum length fails; in unique mode any
//     length other than the minimum fails
//  2. pattern: every character must belong to the alphabet
//  3. coverage: the number of distinct digits must equal the minimum length,
//     and in unique mode no digit may occur twice
//
// Check runs the same pipeline and reports which gate rejected the value.
//
// # Hexadecimal and zero
//
// For base 16 the alphabet is always 0-9 and A-F, whatever RequireZero says.
// With RequireZero disabled the minimum length drops to 15, so exactly one
// hex digit, zero or any other, must be absent.
//
// # Thread Safety
//
// A Validator holds only immutable derived state and is safe for concurrent
// use without additional locking. CheckAll evaluates large batches on a
// bounded set of goroutines.
package pandigital
