// Package config loads alertbanner settings from a YAML file and
// ALERTBANNER_* environment variables.
package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/ngmaloney/alert-banner/internal/database"
)

// ErrInvalid marks a configuration value that failed validation
var ErrInvalid = errors.New("invalid configuration")

// Config holds all alertbanner configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Snapshots SnapshotsConfig `mapstructure:"snapshots"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Gallery   GalleryConfig   `mapstructure:"gallery"`
}

// ServerConfig defines the preview server listener.
type ServerConfig struct {
	Listen       string        `mapstructure:"listen"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// SnapshotsConfig defines where snapshots are recorded.
type SnapshotsConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GalleryConfig defines terminal gallery settings.
type GalleryConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

// Load reads configuration from file and environment variables. An empty
// cfgFile looks for alertbanner.yaml in the working directory and carries
// on with defaults when there is none.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("alertbanner")
		v.SetConfigType("yaml")
	}

	// Defaults
	v.SetDefault("server.listen", "127.0.0.1:6006")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("snapshots.path", database.DBPath())
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("gallery.alt_screen", true)

	// Environment variables
	v.SetEnvPrefix("ALERTBANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every value Load could not type-check
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Listen) == "" {
		return errors.Wrap(ErrInvalid, "server.listen is empty")
	}
	if c.Server.ReadTimeout <= 0 {
		return errors.Wrapf(ErrInvalid, "server.read_timeout must be positive, got %s", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return errors.Wrapf(ErrInvalid, "server.write_timeout must be positive, got %s", c.Server.WriteTimeout)
	}
	if strings.TrimSpace(c.Snapshots.Path) == "" {
		return errors.Wrap(ErrInvalid, "snapshots.path is empty")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrInvalid, "logging.level %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return errors.Wrapf(ErrInvalid, "logging.format %q", c.Logging.Format)
	}
	return nil
}
