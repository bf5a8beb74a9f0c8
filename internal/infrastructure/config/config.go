package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/palette/internal/util"
)

// Database holds the palette store configuration. Path defaults to
// palettes.db under the XDG data directory. SyncURL turns the local file
// into an embedded replica of a remote Turso database.
type Database struct {
	Path      string `envconfig:"PALETTE_DB"`
	SyncURL   string `envconfig:"PALETTE_SYNC_URL"`
	AuthToken string `envconfig:"PALETTE_AUTH_TOKEN"`
}

// Log holds logger settings.
type Log struct {
	Level  string `envconfig:"PALETTE_LOG_LEVEL" default:"warn"`
	Format string `envconfig:"PALETTE_LOG_FORMAT" default:"text"`
}

// OTEL holds metrics exporter settings.
type OTEL struct {
	Enabled  bool   `envconfig:"PALETTE_OTEL_ENABLED" default:"false"`
	Endpoint string `envconfig:"PALETTE_OTEL_ENDPOINT"`
	Insecure bool   `envconfig:"PALETTE_OTEL_INSECURE" default:"false"`
}

// Config is the full CLI configuration.
type Config struct {
	Database  Database
	Log       Log
	OTEL      OTEL
	CSSPrefix string `envconfig:"PALETTE_CSS_PREFIX" default:"palette"`
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.Database.Path == "" {
		path, err := util.DataFile("palettes.db")
		if err != nil {
			return nil, err
		}
		cfg.Database.Path = path
	}

	return &cfg, nil
}
