// Package config handles the dashboard server configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"gapminder/internal/models"
)

// Config represents the contents of a dashboard.yaml (or .toml) file.
type Config struct {
	Addr      string          `yaml:"addr" toml:"addr"`
	Dataset   string          `yaml:"dataset,omitempty" toml:"dataset"`
	LogLevel  string          `yaml:"log_level" toml:"log_level"`
	LogFormat string          `yaml:"log_format" toml:"log_format"`
	RateLimit float64         `yaml:"rate_limit,omitempty" toml:"rate_limit"`
	H2C       bool            `yaml:"h2c,omitempty" toml:"h2c"`
	TLS       TLSConfig       `yaml:"tls,omitempty" toml:"tls"`
	Defaults  models.Defaults `yaml:"defaults" toml:"defaults"`
}

// TLSConfig enables automatic certificates for the listed hosts.
type TLSConfig struct {
	AutocertHosts []string `yaml:"autocert_hosts,omitempty" toml:"autocert_hosts"`
	CacheDir      string   `yaml:"cache_dir,omitempty" toml:"cache_dir"`
}

func (t TLSConfig) Enabled() bool { return len(t.AutocertHosts) > 0 }

// FileName is the default config file name.
const FileName = "dashboard.yaml"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:      ":8050",
		LogLevel:  "info",
		LogFormat: "auto",
		Defaults: models.Defaults{
			Continent:   "Asia",
			Year:        1952,
			TopN:        15,
			Orientation: models.Vertical,
			Variable:    "Life Expectancy",
			MapYear:     1952,
			Theme:       "light",
		},
	}
}

// Load reads the config file at path over the defaults. A missing file
// yields the defaults and nil error. Files ending in .toml are decoded as
// TOML, anything else as YAML.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // operator-provided path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"auto", "text", "json"}
	topNs      = []int{5, 10, 15, 20, 25}
)

// Validate checks value domains that do not depend on the dataset.
func (c *Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr must not be empty"))
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level %q must be one of %s", c.LogLevel, strings.Join(logLevels, ", ")))
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf("log_format %q must be one of %s", c.LogFormat, strings.Join(logFormats, ", ")))
	}
	if c.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("rate_limit must not be negative, got %v", c.RateLimit))
	}
	if c.TLS.Enabled() && c.TLS.CacheDir == "" {
		errs = append(errs, errors.New("tls.cache_dir is required with tls.autocert_hosts"))
	}
	if c.TLS.Enabled() && c.H2C {
		errs = append(errs, errors.New("h2c and tls cannot both be enabled"))
	}

	d := c.Defaults
	if !slices.Contains(topNs, d.TopN) {
		errs = append(errs, fmt.Errorf("defaults.top_n %d must be one of 5, 10, 15, 20, 25", d.TopN))
	}
	if d.Orientation != models.Vertical && d.Orientation != models.Horizontal {
		errs = append(errs, fmt.Errorf("defaults.orientation %q must be v or h", d.Orientation))
	}
	if d.Theme != "light" && d.Theme != "dark" {
		errs = append(errs, fmt.Errorf("defaults.theme %q must be light or dark", d.Theme))
	}
	return errors.Join(errs...)
}
