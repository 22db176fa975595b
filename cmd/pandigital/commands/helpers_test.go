package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pandigital/pkg/config"
	"github.com/dmitrymomot/pandigital/pkg/pandigital"
)

func TestLoadSettings(t *testing.T) {
	t.Setenv("PANDIGITAL_BASE", "16")
	t.Setenv("PANDIGITAL_UNIQUE", "true")
	t.Setenv("PANDIGITAL_REQUIRE_ZERO", "false")
	t.Setenv("PANDIGITAL_WORKERS", "8")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, pandigital.Config{Base: 16, Unique: true, RequireZero: false}, s.Pandigital)
	assert.Equal(t, 8, s.Workers)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "json", s.LogFormat)
}

func TestNewLogger(t *testing.T) {
	t.Run("valid settings", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := NewLogger(Settings{LogLevel: "warn", LogFormat: "text"}, &buf)
		require.NoError(t, err)

		log.Info("hidden")
		log.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "component=pandigital")
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := NewLogger(Settings{LogLevel: "loud", LogFormat: "text"}, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := NewLogger(Settings{LogLevel: "info", LogFormat: "xml"}, &bytes.Buffer{})
		assert.Error(t, err)
	})
}
