package config

import (
	"errors"
	"fmt"
	"maps"

	"github.com/roach88/sqlmean/internal/output"
	"github.com/roach88/sqlmean/internal/query"
	"github.com/roach88/sqlmean/internal/session"
)

// EnvDatabase names the environment variable holding the default database.
const EnvDatabase = "SQLMEAN_DATABASE"

// ValidLogLevels and ValidLogFormats list accepted logging settings.
var (
	ValidLogLevels  = []string{"debug", "info", "warn", "error"}
	ValidLogFormats = []string{"text", "json"}
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds everything a run needs besides its two arguments.
type Config struct {
	Database         string
	Catalogs         map[string]string
	EnableCatalogs   bool
	QualifiedColumns bool
	ColumnPrefix     string
	Output           string
	LogLevel         string
	LogFormat        string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Database:       session.DefaultDatabase,
		EnableCatalogs: true,
		ColumnPrefix:   query.DefaultPrefix,
		Output:         output.DefaultPath,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// ApplyEnv overlays environment defaults read through getenv.
func (c Config) ApplyEnv(getenv func(string) string) Config {
	if db := getenv(EnvDatabase); db != "" {
		c.Database = db
	}
	return c
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.ColumnPrefix == "" {
		return fmt.Errorf("%w: column prefix is empty", ErrInvalid)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalid)
	}
	if !contains(ValidLogLevels, c.LogLevel) {
		return fmt.Errorf("%w: log level %q: must be one of %v", ErrInvalid, c.LogLevel, ValidLogLevels)
	}
	if !contains(ValidLogFormats, c.LogFormat) {
		return fmt.Errorf("%w: log format %q: must be one of %v", ErrInvalid, c.LogFormat, ValidLogFormats)
	}
	if err := c.SessionSettings().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// SessionSettings returns the engine part of the config.
func (c Config) SessionSettings() session.Settings {
	return session.Settings{
		Database:         c.Database,
		Catalogs:         maps.Clone(c.Catalogs),
		EnableCatalogs:   c.EnableCatalogs,
		QualifiedColumns: c.QualifiedColumns,
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
