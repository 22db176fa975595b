// Package commands contains the CLI command implementations.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/pandigital/pkg/config"
	"github.com/dmitrymomot/pandigital/pkg/logger"
	"github.com/dmitrymomot/pandigital/pkg/pandigital"
)

// ErrNotPandigital is returned by RunCheck when at least one value fails.
var ErrNotPandigital = errors.New("one or more values are not pandigital")

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// Settings is the environment-derived configuration. Command-line flags
// take their defaults from it.
type Settings struct {
	Pandigital pandigital.Config `envPrefix:"PANDIGITAL_"`
	Workers    int               `env:"PANDIGITAL_WORKERS" envDefault:"4"`
	LogLevel   string            `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string            `env:"LOG_FORMAT" envDefault:"text"`
}

// LoadSettings reads Settings from the environment and an optional .env file.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := config.Load(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return s, nil
}

// NewLogger builds the command logger from Settings, writing to w.
func NewLogger(s Settings, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(s.LogFormat)
	if err != nil {
		return nil, err
	}

	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithAttr(logger.Component("pandigital")),
	), nil
}

// configAttrs groups the validator configuration for log records.
func configAttrs(cfg pandigital.Config) slog.Attr {
	return logger.Group("config",
		logger.Base(cfg.Base),
		logger.Unique(cfg.Unique),
		logger.RequireZero(cfg.RequireZero),
	)
}

// validateFormat checks the output format flag.
func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}
