// Package file loads the fino configuration from a TOML file.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/fino-labs/fino-cli/internal/core/domain"
)

// Config is the full application configuration.
type Config struct {
	EDINET  EDINETConfig  `toml:"edinet"`
	Storage StorageConfig `toml:"storage"`
	Collect CollectConfig `toml:"collect"`
}

// EDINETConfig holds EDINET API settings.
type EDINETConfig struct {
	// APIKey is the EDINET v2 subscription key. Required for any
	// source operation. May also come from the FINO_EDINET_API_KEY
	// environment variable, which takes precedence.
	APIKey string `toml:"api_key"`

	// BaseURL overrides the API endpoint. Empty means the default.
	BaseURL string `toml:"base_url"`

	// RequestsPerSecond caps the API request rate. Zero means the
	// default.
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// StorageConfig selects and configures the blob storage backend.
type StorageConfig struct {
	// Backend is "local" or "s3". Defaults to "local".
	Backend string `toml:"backend"`

	// Dir is the local backend root. Defaults to ~/.fino/data.
	Dir string `toml:"dir"`

	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	UseSSL    bool   `toml:"use_ssl"`
	Region    string `toml:"region"`
	Bucket    string `toml:"bucket"`
	Prefix    string `toml:"prefix"`
}

// CollectConfig tunes the collection run.
type CollectConfig struct {
	// Workers bounds concurrent downloads. Zero means the default.
	Workers int `toml:"workers"`

	// ListWorkers bounds concurrent day listings. Zero means the
	// default.
	ListWorkers int `toml:"list_workers"`

	// HistoryPath is the run history database file. Defaults to
	// ~/.fino/history.db. "off" disables run history.
	HistoryPath string `toml:"history_path"`
}

// DefaultPath returns the default config file location,
// ~/.fino/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".fino", "config.toml"), nil
}

// Load reads the config file at path. A missing file yields the
// defaults; a present but malformed file is an error. Values from the
// environment are applied last.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyDefaults(filepath.Dir(path))
	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults(baseDir string) {
	if c.Storage.Backend == "" {
		c.Storage.Backend = "local"
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = filepath.Join(baseDir, "data")
	}
	if c.Collect.HistoryPath == "" {
		c.Collect.HistoryPath = filepath.Join(baseDir, "history.db")
	}
}

func (c *Config) applyEnv() {
	if key := os.Getenv("FINO_EDINET_API_KEY"); key != "" {
		c.EDINET.APIKey = key
	}
}

func (c *Config) validate() error {
	if c.Storage.Backend != "local" && c.Storage.Backend != "s3" {
		return fmt.Errorf("%w: storage backend %q", domain.ErrUnsupportedType, c.Storage.Backend)
	}
	if c.Storage.Backend == "s3" && c.Storage.Bucket == "" {
		return fmt.Errorf("%w: s3 backend requires storage.bucket", domain.ErrInvalidInput)
	}
	if c.EDINET.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: edinet.requests_per_second cannot be negative", domain.ErrInvalidInput)
	}
	if c.Collect.Workers < 0 || c.Collect.ListWorkers < 0 {
		return fmt.Errorf("%w: collect worker counts cannot be negative", domain.ErrInvalidInput)
	}
	return nil
}

// Save writes the config to path, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	// Restricted permissions: the file may hold credentials.
	return os.WriteFile(path, data, 0600)
}
