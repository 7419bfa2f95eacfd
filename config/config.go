// Package config loads the prysm configuration.
//
// Values are resolved with priority: defaults -> TOML file -> .env file ->
// PRYSM_* environment variables -> command line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Logging LoggingConfig `toml:"logging"`
	Market  MarketConfig  `toml:"market"`
	Upload  UploadConfig  `toml:"upload"`
	CSV     CSVConfig     `toml:"csv"`
}

// StorageConfig selects the key-value store of the snapshot.
type StorageConfig struct {
	Driver string `toml:"driver"` // memory, dir or sqlite
	Path   string `toml:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // console or json
}

// MarketConfig contains the static market data settings.
type MarketConfig struct {
	PricesFile string `toml:"prices_file"` // JSONL price table, empty for the demo table
	Currency   string `toml:"currency"`
}

// UploadConfig constrains imported trade files.
type UploadConfig struct {
	MaxSize int64    `toml:"max_size"`
	Formats []string `toml:"formats"`
}

// CSVConfig contains CSV parsing settings.
type CSVConfig struct {
	HeaderColumns bool `toml:"header_columns"` // map fields by header position
}

// NewDefaultConfig returns the configuration used without any file or environment.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{Driver: "dir", Path: ".prysm"},
		Logging: LoggingConfig{Level: "warn", Format: "console"},
		Market:  MarketConfig{Currency: "USD"},
		Upload:  UploadConfig{MaxSize: 10 << 20, Formats: []string{".csv"}},
	}
}

// Load loads the configuration from an optional TOML file and an optional .env file.
// Missing files are ignored, unreadable ones are an error.
func Load(path, envFile string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	env := make(map[string]string)
	if envFile != "" {
		dotenv, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
		for k, v := range dotenv {
			env[k] = v
		}
	}
	// the process environment wins over the .env file, empty variables are unset.
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && v != "" && strings.HasPrefix(k, "PRYSM_") {
			env[k] = v
		}
	}
	if err := applyEnvOverrides(config, env); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies PRYSM_* variables to config.
func applyEnvOverrides(config *Config, env map[string]string) error {
	if v, ok := env["PRYSM_STORAGE_DRIVER"]; ok && v != "" {
		config.Storage.Driver = v
	}
	if v, ok := env["PRYSM_STORAGE_PATH"]; ok && v != "" {
		config.Storage.Path = v
	}
	if v, ok := env["PRYSM_LOG_LEVEL"]; ok && v != "" {
		config.Logging.Level = v
	}
	if v, ok := env["PRYSM_LOG_FORMAT"]; ok && v != "" {
		config.Logging.Format = v
	}
	if v, ok := env["PRYSM_PRICES_FILE"]; ok && v != "" {
		config.Market.PricesFile = v
	}
	if v, ok := env["PRYSM_CURRENCY"]; ok && v != "" {
		config.Market.Currency = strings.ToUpper(v)
	}
	if v, ok := env["PRYSM_UPLOAD_MAX_SIZE"]; ok && v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid PRYSM_UPLOAD_MAX_SIZE %q: %w", v, err)
		}
		config.Upload.MaxSize = size
	}
	if v, ok := env["PRYSM_CSV_HEADER_COLUMNS"]; ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid PRYSM_CSV_HEADER_COLUMNS %q: %w", v, err)
		}
		config.CSV.HeaderColumns = b
	}
	return nil
}
