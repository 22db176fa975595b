package pandigital_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pandigital/pkg/pandigital"
)

func TestValidator_DerivedState(t *testing.T) {
	tests := []struct {
		name      string
		opts      []pandigital.Option
		alphabet  string
		minLength int
		pattern   string
	}{
		{
			name:      "default base 10",
			alphabet:  "0123456789",
			minLength: 10,
			pattern:   "(?i)^[0123456789]{10,}$",
		},
		{
			name:      "base 10 without zero",
			opts:      []pandigital.Option{pandigital.WithRequireZero(false)},
			alphabet:  "123456789",
			minLength: 9,
			pattern:   "(?i)^[123456789]{9,}$",
		},
		{
			name:      "base 4 unique",
			opts:      []pandigital.Option{pandigital.WithBase(4), pandigital.WithUnique(true)},
			alphabet:  "0123",
			minLength: 4,
			pattern:   "(?i)^[0123]{4}$",
		},
		{
			name:      "base 1",
			opts:      []pandigital.Option{pandigital.WithBase(1)},
			alphabet:  "0",
			minLength: 1,
			pattern:   "(?i)^[0]{1,}$",
		},
		{
			name:      "base 1 without zero",
			opts:      []pandigital.Option{pandigital.WithBase(1), pandigital.WithRequireZero(false)},
			alphabet:  "",
			minLength: 0,
			pattern:   "^$",
		},
		{
			name:      "hex",
			opts:      []pandigital.Option{pandigital.WithBase(16)},
			alphabet:  "0123456789ABCDEF",
			minLength: 16,
			pattern:   "(?i)^[0123456789ABCDEF]{16,}$",
		},
		{
			name:      "hex ignores require zero in alphabet",
			opts:      []pandigital.Option{pandigital.WithBase(16), pandigital.WithRequireZero(false)},
			alphabet:  "0123456789ABCDEF",
			minLength: 15,
			pattern:   "(?i)^[0123456789ABCDEF]{15,}$",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := pandigital.New(tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.alphabet, v.Alphabet())
			assert.Equal(t, tt.minLength, v.MinLength())
			assert.Equal(t, tt.pattern, v.Pattern())
		})
	}
}

func TestValidator_IsPandigital(t *testing.T) {
	tests := []struct {
		name     string
		opts     []pandigital.Option
		input    string
		expected bool
	}{
		{name: "default all digits", input: "1234567890", expected: true},
		{name: "default too short", input: "123456", expected: false},
		{name: "default empty", input: "", expected: false},
		{name: "default with repeats", input: "11234567890", expected: true},
		{name: "default missing digit", input: "1234567899", expected: false},
		{name: "default foreign character", input: "123456789O", expected: false},
		{name: "default whitespace", input: " 1234567890", expected: false},
		{name: "default leading zero kept", input: "0123456789", expected: true},
		{name: "default unicode digit", input: "123456789٠", expected: false},

		{name: "no zero rejects zero", opts: noZero(), input: "1234567890", expected: false},
		{name: "no zero all digits", opts: noZero(), input: "123456789", expected: true},
		{name: "no zero repeats allowed", opts: noZero(), input: "1234567899", expected: true},
		{name: "no zero missing digit", opts: noZero(), input: "123456788", expected: false},

		{name: "base 4 unique exact", opts: base4Unique(), input: "1230", expected: true},
		{name: "base 4 unique extra length", opts: base4Unique(), input: "12330", expected: false},
		{name: "base 4 unique repeat at exact length", opts: base4Unique(), input: "1231", expected: false},
		{name: "base 4 unique short", opts: base4Unique(), input: "123", expected: false},
		{name: "base 4 unique out of base digit", opts: base4Unique(), input: "1234", expected: false},

		{name: "hex upper", opts: hex(), input: "1234567890ABCDEF", expected: true},
		{name: "hex lower", opts: hex(), input: "1234567890abcdef", expected: true},
		{name: "hex mixed case", opts: hex(), input: "1234567890aBcDeF", expected: true},
		{name: "hex duplicate instead of F", opts: hex(), input: "1234567890ABCDEE", expected: false},
		{name: "hex non hex letter", opts: hex(), input: "1234567890ABCDEG", expected: false},
		{name: "hex case duplicates do not count twice", opts: hex(), input: "1234567890ABCDEe", expected: false},

		{name: "hex no zero covers fifteen", opts: hexNoZero(), input: "123456789ABCDEF", expected: true},
		{name: "hex no zero with all sixteen", opts: hexNoZero(), input: "1234567890ABCDEF", expected: false},
		{name: "hex no zero zero allowed in alphabet", opts: hexNoZero(), input: "023456789ABCDEF", expected: true},

		{name: "base 1 zero", opts: []pandigital.Option{pandigital.WithBase(1)}, input: "000", expected: true},
		{name: "base 1 other digit", opts: []pandigital.Option{pandigital.WithBase(1)}, input: "01", expected: false},
		{name: "base 1 no zero empty", opts: []pandigital.Option{pandigital.WithBase(1), pandigital.WithRequireZero(false)}, input: "", expected: true},
		{name: "base 1 no zero non empty", opts: []pandigital.Option{pandigital.WithBase(1), pandigital.WithRequireZero(false)}, input: "1", expected: false},

		{name: "base 2 unique", opts: []pandigital.Option{pandigital.WithBase(2), pandigital.WithUnique(true)}, input: "10", expected: true},
		{name: "base 2 long", opts: []pandigital.Option{pandigital.WithBase(2)}, input: strings.Repeat("01", 500), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := pandigital.New(tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.IsPandigital(tt.input))
		})
	}
}

func TestValidator_Check(t *testing.T) {
	tests := []struct {
		name  string
		opts  []pandigital.Option
		input string
		err   error
	}{
		{name: "passes", input: "9876543210", err: nil},
		{name: "too short", input: "123", err: pandigital.ErrTooShort},
		{name: "empty", input: "", err: pandigital.ErrTooShort},
		{name: "unique length mismatch", opts: base4Unique(), input: "01230", err: pandigital.ErrLengthMismatch},
		{name: "invalid characters", input: "12345-7890", err: pandigital.ErrInvalidCharacters},
		{name: "unique repeated digit", opts: base4Unique(), input: "0012", err: pandigital.ErrRepeatedDigit},
		{name: "missing digits", input: "1111111111", err: pandigital.ErrMissingDigits},
		{name: "length gate runs before pattern gate", input: "abc", err: pandigital.ErrTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := pandigital.MustNew(tt.opts...)
			err := v.Check(tt.input)
			if tt.err == nil {
				assert.NoError(t, err)
				assert.True(t, v.IsPandigital(tt.input))
				return
			}
			assert.ErrorIs(t, err, tt.err)
			assert.False(t, v.IsPandigital(tt.input))
		})
	}
}

func TestValidator_Missing(t *testing.T) {
	v := pandigital.MustNew()
	assert.Equal(t, "", v.Missing("1234567890"))
	assert.Equal(t, "05", v.Missing("12346789"))
	assert.Equal(t, "0123456789", v.Missing("xyz"))

	hexV := pandigital.MustNew(pandigital.WithBase(16))
	assert.Equal(t, "F", hexV.Missing("1234567890abcde"))
}

func TestValidator_Properties(t *testing.T) {
	inputs := []string{
		"", "0", "01", "0123", "1230", "3210", "00112233", "0123456789",
		"123456789", "0123456789ABCDEF", "fedcba9876543210", "1111", "12a4",
	}

	for _, base := range []int{1, 2, 3, 4, 7, 10, 16} {
		for _, unique := range []bool{false, true} {
			for _, zero := range []bool{false, true} {
				v := pandigital.MustNew(
					pandigital.WithBase(base),
					pandigital.WithUnique(unique),
					pandigital.WithRequireZero(zero),
				)
				for _, in := range inputs {
					got := v.IsPandigital(in)
					assert.Equal(t, got, v.IsPandigital(in), "deterministic")
					if !got {
						continue
					}
					assert.GreaterOrEqual(t, len(in), v.MinLength())
					if unique {
						assert.Len(t, in, v.MinLength())
					}
					assert.Len(t, distinctUpper(in), v.MinLength())
				}
			}
		}
	}
}

func TestValidator_ConcurrentUse(t *testing.T) {
	v := pandigital.MustNew(pandigital.WithBase(16))
	done := make(chan bool, 50)
	for range 50 {
		go func() {
			done <- v.IsPandigital("1234567890abcdef") && !v.IsPandigital("1234567890abcdee")
		}()
	}
	for range 50 {
		assert.True(t, <-done)
	}
}

func distinctUpper(s string) map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, r := range strings.ToUpper(s) {
		set[r] = struct{}{}
	}
	return set
}

func noZero() []pandigital.Option {
	return []pandigital.Option{pandigital.WithRequireZero(false)}
}

func base4Unique() []pandigital.Option {
	return []pandigital.Option{pandigital.WithBase(4), pandigital.WithUnique(true)}
}

func hex() []pandigital.Option {
	return []pandigital.Option{pandigital.WithBase(16)}
}

func hexNoZero() []pandigital.Option {
	return []pandigital.Option{pandigital.WithBase(16), pandigital.WithRequireZero(false)}
}
