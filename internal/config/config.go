package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rogersnm/teamboard/internal/debounce"
	"github.com/rogersnm/teamboard/internal/kv"
	"github.com/rogersnm/teamboard/internal/query"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Backend        string        `yaml:"backend,omitempty"`
	PageSize       int           `yaml:"page_size,omitempty"`
	SearchDebounce time.Duration `yaml:"search_debounce,omitempty"`
}

// Keys lists the settings accepted by Set, in display order.
var Keys = []string{"backend", "page_size", "search_debounce"}

func Load(dataDir string) (*Config, error) {
	path := filepath.Join(dataDir, "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func Save(dataDir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	path := filepath.Join(dataDir, "config.yaml")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// BackendKind returns the configured storage backend, file by default.
func (c *Config) BackendKind() string {
	if c.Backend == "" {
		return kv.KindFile
	}
	return c.Backend
}

func (c *Config) PerPage() int {
	if c.PageSize <= 0 {
		return query.DefaultPerPage
	}
	return c.PageSize
}

func (c *Config) Debounce() time.Duration {
	if c.SearchDebounce <= 0 {
		return debounce.DefaultWait
	}
	return c.SearchDebounce
}

// Get returns the effective value of key as text.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "backend":
		return c.BackendKind(), nil
	case "page_size":
		return strconv.Itoa(c.PerPage()), nil
	case "search_debounce":
		return c.Debounce().String(), nil
	}
	return "", fmt.Errorf("unknown config key %q", key)
}

// Set parses value for key. The config is unchanged on error.
func (c *Config) Set(key, value string) error {
	switch key {
	case "backend":
		if value != kv.KindFile && value != kv.KindSQLite {
			return fmt.Errorf("invalid backend %q: must be %s or %s", value, kv.KindFile, kv.KindSQLite)
		}
		c.Backend = value
	case "page_size":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid page_size %q: must be a positive integer", value)
		}
		c.PageSize = n
	case "search_debounce":
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid search_debounce %q: must be a positive duration like 300ms", value)
		}
		c.SearchDebounce = d
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
