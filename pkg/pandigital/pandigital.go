package pandigital

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validator tests digit strings against a fixed Config. All derived state is
// computed in the constructor, so a Validator is immutable and safe for
// concurrent use.
type Validator struct {
	cfg       Config
	alphabet  string
	minLength int
	pattern   *regexp.Regexp
}

// New builds a Validator from DefaultConfig with the given options applied.
// It returns a *ConfigError, and no Validator, when the base is invalid.
func New(opts ...Option) (*Validator, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewFromConfig(cfg)
}

// NewFromConfig builds a Validator from an explicit Config.
func NewFromConfig(cfg Config) (*Validator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	alphabet := buildAlphabet(cfg)
	minLen := minLength(cfg)

	return &Validator{
		cfg:       cfg,
		alphabet:  alphabet,
		minLength: minLen,
		pattern:   compilePattern(alphabet, minLen, cfg.Unique),
	}, nil
}

// MustNew works like New but panics on an invalid configuration.
func MustNew(opts ...Option) *Validator {
	v, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("pandigital: %v", err))
	}
	return v
}

// Config returns a copy of the validator's configuration.
func (v *Validator) Config() Config { return v.cfg }

// Alphabet returns the ordered digits valid for the configured base.
func (v *Validator) Alphabet() string { return v.alphabet }

// MinLength returns the fewest characters a qualifying value can have.
func (v *Validator) MinLength() int { return v.minLength }

// Pattern returns the source of the compiled character-class pre-filter.
func (v *Validator) Pattern() string { return v.pattern.String() }

// IsPandigital reports whether value is pandigital for the configuration.
// It never fails: empty strings, foreign characters and wrong lengths all
// yield false.
func (v *Validator) IsPandigital(value string) bool {
	return v.Check(value) == nil
}

// Check runs the length, pattern and coverage gates in order and returns nil
// when value passes all of them, or the sentinel of the first gate it fails.
func (v *Validator) Check(value string) error {
	n := utf8.RuneCountInString(value)
	if n < v.minLength {
		return ErrTooShort
	}
	if v.cfg.Unique && n != v.minLength {
		return ErrLengthMismatch
	}

	if !v.pattern.MatchString(value) {
		return ErrInvalidCharacters
	}

	// The pattern admits ASCII only, so byte indexing is safe from here on.
	var counts [utf8.RuneSelf]int
	distinct := 0
	for i := 0; i < len(value); i++ {
		c := toUpper(value[i])
		counts[c]++
		if counts[c] == 1 {
			distinct++
			continue
		}
		if v.cfg.Unique {
			return ErrRepeatedDigit
		}
	}

	if distinct != v.minLength {
		return ErrMissingDigits
	}
	return nil
}

// Missing returns the alphabet digits that do not occur in value, in
// alphabet order. Characters outside the alphabet are ignored.
func (v *Validator) Missing(value string) string {
	upper := strings.ToUpper(value)
	var b strings.Builder
	for i := 0; i < len(v.alphabet); i++ {
		if strings.IndexByte(upper, v.alphabet[i]) < 0 {
			b.WriteByte(v.alphabet[i])
		}
	}
	return b.String()
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
