package apikit

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/apikit/pkg/cors"
	"github.com/dmitrymomot/apikit/pkg/environment"
	"github.com/dmitrymomot/apikit/pkg/httpserver"
	"github.com/dmitrymomot/apikit/pkg/logger"
	"github.com/dmitrymomot/apikit/pkg/validator"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOGGER_LEVEL" envDefault:"log"`
	// LogFormat overrides the environment's default format (json, text or color).
	LogFormat string `env:"LOGGER_FORMAT"`
	// ServiceName is attached to every log line.
	ServiceName string `env:"SERVICE_NAME" envDefault:"apikit"`

	CORS CORSConfig
	HTTP httpserver.Config
}

// CORSConfig holds the raw comma-separated CORS settings.
type CORSConfig struct {
	Origin         string `env:"CORS_ORIGIN" envDefault:"*"`
	Methods        string `env:"CORS_METHODS" envDefault:"GET,HEAD,PUT,PATCH,POST,DELETE"`
	AllowedHeaders string `env:"CORS_ALLOWED_HEADERS" envDefault:"Content-Type,Authorization,Time-Zone"`
	Credentials    bool   `env:"CORS_CREDENTIALS" envDefault:"false"`
}

// Policy parses the settings into a cors.Config.
func (c CORSConfig) Policy() cors.Config {
	return cors.Parse(c.Origin, c.Methods, c.AllowedHeaders, c.Credentials)
}

// Environment returns the parsed APP_ENV.
func (c Config) Environment() environment.Environment {
	return environment.Parse(c.Env)
}

// Validate checks field values and the CORS policy. Field problems are
// reported as validator.ValidationErrors; a wildcard origin combined with
// credentials is reported as cors.ErrWildcardCredentials.
func (c Config) Validate() error {
	policy := c.CORS.Policy()
	if err := validator.Apply(
		validator.InListCaseInsensitive("APP_ENV", c.Env, environment.Names),
		validator.InListCaseInsensitive("LOGGER_LEVEL", c.LogLevel, logger.LevelNames),
		validator.Check("LOGGER_FORMAT", c.LogFormat == "" || slices.Contains(logger.Formats, c.LogFormat),
			fmt.Sprintf("must be one of: %v", logger.Formats)),
		validator.InRange("PORT", c.HTTP.Port, 0, 65535),
		validator.Check("CORS_ORIGIN", len(policy.Origins) > 0, "at least one origin is required"),
		validator.Check("CORS_METHODS", len(policy.Methods) > 0, "at least one method is required"),
	); err != nil {
		return err
	}
	return policy.Validate()
}
