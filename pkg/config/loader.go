package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration copies keyed by type name.
type configCache struct {
	mu     sync.Mutex
	values map[string]any
}

var (
	globalCache = &configCache{values: make(map[string]any)}

	defaultEnvMu     sync.Mutex
	defaultEnvLoaded bool
)

// Load parses environment variables into v according to its `env` tags.
// The first call for a given type parses the environment and caches a copy;
// later calls for the same type are served from the cache.
//
// The default .env file in the working directory is loaded once, if present,
// before the first parse. Missing .env files are not an error.
//
// Example:
//
//	type Settings struct {
//		Base   int  `env:"PANDIGITAL_BASE" envDefault:"10"`
//		Unique bool `env:"PANDIGITAL_UNIQUE"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDefaultEnv()

	typeName := getTypeName[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		return nil
	}

	return parseAndStore(typeName, v)
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig parses the environment again for v's type and replaces
// the cached copy, ignoring anything loaded earlier.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	delete(globalCache.values, typeName)
	return parseAndStore(typeName, v)
}

// LoadEnv loads the given .env files into the process environment, later
// files overriding earlier ones and any variables already set. With no
// paths it loads the default .env file and does not override.
func LoadEnv(paths ...string) error {
	defaultEnvMu.Lock()
	defer defaultEnvMu.Unlock()
	defaultEnvLoaded = true

	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}

	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// ResetCache drops every cached configuration so the next Load parses the
// environment again.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.mu.Unlock()
}

// parseAndStore must be called with globalCache.mu held.
func parseAndStore[T any](typeName string, v *T) error {
	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	globalCache.values[typeName] = parsed
	*v = parsed
	return nil
}

func loadDefaultEnv() {
	defaultEnvMu.Lock()
	defer defaultEnvMu.Unlock()
	if defaultEnvLoaded {
		return
	}
	defaultEnvLoaded = true
	// The .env file is optional.
	_ = godotenv.Load()
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
