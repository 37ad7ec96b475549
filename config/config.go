package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSkipLabel is the label key that exempts a resource from deletion.
const DefaultSkipLabel = "please-do-not-kill-me"

// DefaultMaxAge is how old a resource must be before it counts as stale.
const DefaultMaxAge = 24 * time.Hour

// Config represents the main configuration
type Config struct {
	Version string `yaml:"version"`
	Project string `yaml:"project,omitempty"`
	Rules   Rules  `yaml:"rules,omitempty"`
}

// Rules defines sweep behavior rules
type Rules struct {
	SkipLabel string   `yaml:"skip_label"`
	MaxAge    Duration `yaml:"max_age"`
	DryRun    bool     `yaml:"dry_run"`
}

// Duration wraps time.Duration so YAML accepts "24h" style values.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{Version: "v1"}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Validate ensures config has required fields
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("version is required")
	}
	if c.Rules.MaxAge < 0 {
		return fmt.Errorf("max_age must not be negative")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Rules.SkipLabel == "" {
		c.Rules.SkipLabel = DefaultSkipLabel
	}
	if c.Rules.MaxAge == 0 {
		c.Rules.MaxAge = Duration(DefaultMaxAge)
	}
}
