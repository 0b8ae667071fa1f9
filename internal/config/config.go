// Package config loads the console configuration.
//
// Precedence: environment variables (SMT_ prefix) > config file > defaults.
// A .env file in the working directory is loaded into the environment first.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/light-bringer/smt-console/internal/pkg/clock"
)

// Backend names.
const (
	BackendGoogle = "google"
	BackendXLSX   = "xlsx"
	BackendMemory = "memory"
)

// Config is the application configuration.
type Config struct {
	Backend         string     `mapstructure:"backend"`
	WorkbookName    string     `mapstructure:"workbook_name"`
	SpreadsheetID   string     `mapstructure:"spreadsheet_id"`
	Credentials     string     `mapstructure:"credentials"`
	CredentialsFile string     `mapstructure:"credentials_file"`
	XLSXPath        string     `mapstructure:"xlsx_path"`
	CacheTTLSeconds int        `mapstructure:"cache_ttl_seconds"`
	Timezone        string     `mapstructure:"timezone"`
	HTTP            PortConfig `mapstructure:"http"`
	GRPC            PortConfig `mapstructure:"grpc"`
	Log             LogConfig  `mapstructure:"log"`
}

// PortConfig is a listener port.
type PortConfig struct {
	Port int `mapstructure:"port"`
}

// LogConfig configures the root logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Env   string `mapstructure:"env"` // "production" selects JSON output
}

// Load reads the configuration. An empty path searches for config.yaml in
// ./config and the working directory; a missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("backend", BackendGoogle)
	v.SetDefault("workbook_name", "")
	v.SetDefault("spreadsheet_id", "")
	v.SetDefault("credentials", "")
	v.SetDefault("credentials_file", "")
	v.SetDefault("xlsx_path", "")
	v.SetDefault("cache_ttl_seconds", 5)
	v.SetDefault("timezone", "Asia/Seoul")
	v.SetDefault("http.port", 8080)
	v.SetDefault("grpc.port", 9090)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.env", "production")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("SMT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings a backend needs.
func (c *Config) Validate() error {
	if c.CacheTTLSeconds < 0 {
		return fmt.Errorf("invalid config: cache_ttl_seconds must not be negative")
	}

	switch c.Backend {
	case BackendGoogle:
		if c.WorkbookName == "" && c.SpreadsheetID == "" {
			return fmt.Errorf("invalid config: workbook_name or spreadsheet_id is required for the google backend")
		}
		if c.Credentials == "" && c.CredentialsFile == "" {
			return fmt.Errorf("invalid config: credentials or credentials_file is required for the google backend")
		}
	case BackendXLSX:
		if c.XLSXPath == "" {
			return fmt.Errorf("invalid config: xlsx_path is required for the xlsx backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("invalid config: unknown backend %q", c.Backend)
	}

	if _, err := clock.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for name, port := range map[string]int{"http.port": c.HTTP.Port, "grpc.port": c.GRPC.Port} {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("invalid config: %s must be between 1 and 65535", name)
		}
	}
	return nil
}

// CacheTTL returns the read cache lifetime. Zero disables caching.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Location returns the configured shop floor time zone.
func (c *Config) Location() (*time.Location, error) {
	return clock.LoadLocation(c.Timezone)
}

// CredentialsJSON returns the service account blob, reading credentials_file
// when no inline credentials are set.
func (c *Config) CredentialsJSON() ([]byte, error) {
	if c.Credentials != "" {
		return []byte(c.Credentials), nil
	}
	if c.CredentialsFile == "" {
		return nil, errors.New("no credentials configured")
	}
	b, err := os.ReadFile(c.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return b, nil
}
