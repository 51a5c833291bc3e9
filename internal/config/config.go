// Package config loads the backend configuration from defaults, an
// optional TOML file and environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Time zones must be available in minimal containers
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

// EnvConfigFile is the environment variable holding the config file path.
const EnvConfigFile = "CONFIG_FILE"

// Config holds all backend configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Log      LogConfig      `toml:"log"`
	Database DatabaseConfig `toml:"database"`
	Locale   LocaleConfig   `toml:"locale"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port             string   `toml:"port"`
	APIURL           string   `toml:"api_url"`
	GinMode          string   `toml:"gin_mode,omitempty"`
	CORSAllowOrigins []string `toml:"cors_allow_origins,omitempty"`
	EnablePprof      bool     `toml:"enable_pprof"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// "human" or "json". If empty, human readable logs are written in
	// debug mode and JSON otherwise.
	Format string `toml:"format,omitempty"`
}

// DatabaseConfig holds the storage settings.
type DatabaseConfig struct {
	DataDir string `toml:"data_dir"`
}

// LocaleConfig holds time zone and language settings.
type LocaleConfig struct {
	Timezone        string `toml:"timezone"`
	DefaultLanguage string `toml:"default_language"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:   "8080",
			APIURL: "http://localhost:8080",
		},
		Database: DatabaseConfig{
			DataDir: "data",
		},
		Locale: LocaleConfig{
			Timezone:        "Europe/Berlin",
			DefaultLanguage: "de",
		},
	}
}

// Load returns the configuration.
//
// If path is empty, the path is read from CONFIG_FILE. Without a path,
// only defaults and environment variables are used.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}

		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("PORT"); ok {
		cfg.Server.Port = v
	}

	if v, ok := os.LookupEnv("API_URL"); ok {
		cfg.Server.APIURL = v
	}

	if v, ok := os.LookupEnv("GIN_MODE"); ok {
		cfg.Server.GinMode = v
	}

	if v, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		cfg.Server.CORSAllowOrigins = strings.Fields(v)
	}

	if v, ok := os.LookupEnv("ENABLE_PPROF"); ok {
		cfg.Server.EnablePprof = v == "true"
	}

	if v, ok := os.LookupEnv("LOG_FORMAT"); ok {
		cfg.Log.Format = v
	}

	if v, ok := os.LookupEnv("DATA_DIR"); ok {
		cfg.Database.DataDir = v
	}

	if v, ok := os.LookupEnv("TIMEZONE"); ok {
		cfg.Locale.Timezone = v
	}

	if v, ok := os.LookupEnv("DEFAULT_LANGUAGE"); ok {
		cfg.Locale.DefaultLanguage = v
	}
}

// Validate checks the values that can be checked without side effects.
func (c Config) Validate() error {
	var errs []error

	if _, err := c.URL(); err != nil {
		errs = append(errs, err)
	}

	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}

	if c.Log.Format != "" && c.Log.Format != "human" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log format must be \"human\" or \"json\", got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// URL returns the parsed base URL of the API.
func (c Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.Server.APIURL)
	if err != nil {
		return nil, fmt.Errorf("api url is not a valid URL: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api url %q must be absolute", c.Server.APIURL)
	}

	return u, nil
}

// Location returns the time zone that determines the current day.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Locale.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", c.Locale.Timezone, err)
	}

	return loc, nil
}

// DSN returns the data source name of the SQLite database.
func (c Config) DSN() string {
	return filepath.Join(c.Database.DataDir, "weekbudget.db") + "?_pragma=busy_timeout(5000)"
}
