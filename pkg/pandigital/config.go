package pandigital

const (
	DefaultBase = 10
	HexBase     = 16
)

// Config holds the parameters of a Validator. The env tags let the struct be
// filled from the environment; a Validator keeps its own copy, so changing a
// Config after construction has no effect on validators built from it.
type Config struct {
	Base        int  `env:"BASE" envDefault:"10"`
	Unique      bool `env:"UNIQUE" envDefault:"false"`
	RequireZero bool `env:"REQUIRE_ZERO" envDefault:"true"`
}

// DefaultConfig returns base 10 with repeats allowed and zero required.
func DefaultConfig() Config {
	return Config{
		Base:        DefaultBase,
		Unique:      false,
		RequireZero: true,
	}
}

// Validate reports a *ConfigError when Base is not in {1..10, 16}.
func (c Config) Validate() error {
	if (c.Base >= 1 && c.Base <= 10) || c.Base == HexBase {
		return nil
	}
	return &ConfigError{Base: c.Base}
}

// Option configures a Validator.
type Option func(*Config)

// WithBase sets the numbering base. Invalid bases are rejected by New.
func WithBase(base int) Option {
	return func(c *Config) {
		c.Base = base
	}
}

// WithUnique forbids repeated digits and forces an exact length match.
func WithUnique(unique bool) Option {
	return func(c *Config) {
		c.Unique = unique
	}
}

// WithRequireZero controls whether zero is part of the alphabet.
// Default is true.
func WithRequireZero(required bool) Option {
	return func(c *Config) {
		c.RequireZero = required
	}
}
