// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//     Later files override earlier ones; variables already exported by the
//     process always win.
//   - Load parses the environment into any struct using `env` field tags and
//     caches the result per type, so each configuration type is parsed once.
//   - MustLoad and MustLoadEnv panic on failure for start-up code paths.
//   - ResetCache and ForceReloadConfig are meant for tests.
//
// # Usage
//
//	type Config struct {
//	    Port     int    `env:"PORT" envDefault:"8000"`
//	    LogLevel string `env:"LOGGER_LEVEL" envDefault:"log"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is: ErrParsingConfig,
// ErrConfigNotLoaded, ErrNilPointer and ErrLoadingEnvFile. A failed parse is
// not cached, so a later call can succeed once the environment is fixed.
package config
