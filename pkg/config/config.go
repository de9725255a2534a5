// Package config provides tool configuration file support for jobmill.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jobmill-project/jobmill/pkg/recovery"
)

// Config represents the jobmill tool configuration. It configures the CLI
// surface only; the restore settings data contract itself is owned by
// pkg/recovery.
type Config struct {
	Logging         LoggingConfig         `yaml:"logging"`
	OutputFormat    string                `yaml:"output_format"` // text, json
	RestoreDefaults RestoreDefaultsConfig `yaml:"restore_defaults"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, text
}

// RestoreDefaultsConfig pre-populates the restore flags of the CLI. The
// declared option defaults apply when a field is unset.
type RestoreDefaultsConfig struct {
	AllowNonRestoredState *bool  `yaml:"allow_non_restored_state,omitempty"`
	ClaimMode             string `yaml:"claim_mode,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		OutputFormat: "text",
	}
}

// AllowNonRestoredState resolves the configured flag default.
func (c *Config) AllowNonRestoredState() bool {
	if c.RestoreDefaults.AllowNonRestoredState != nil {
		return *c.RestoreDefaults.AllowNonRestoredState
	}
	return recovery.IgnoreUnclaimedStateOption.Default()
}

// ClaimMode resolves the configured claim-mode default.
func (c *Config) ClaimMode() recovery.ClaimMode {
	if c.RestoreDefaults.ClaimMode == "" {
		return recovery.ClaimModeOption.Default()
	}
	mode, err := recovery.ParseClaimMode(c.RestoreDefaults.ClaimMode)
	if err != nil {
		return recovery.ClaimModeOption.Default()
	}
	return mode
}

// Load loads configuration from <dir>/.jobmill/config.yaml.
// Returns default config if the file doesn't exist.
func Load(dir string) (*Config, error) {
	cfg := Default()
	cfgPath := filepath.Join(dir, ".jobmill", "config.yaml")

	data, err := os.ReadFile(cfgPath)
	if os.IsNotExist(err) {
		return cfg, nil // No config file is OK, use defaults
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to <dir>/.jobmill/config.yaml.
func Save(dir string, cfg *Config) error {
	cfgPath := filepath.Join(dir, ".jobmill", "config.yaml")

	if err := os.MkdirAll(filepath.Dir(cfgPath), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(cfgPath, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
