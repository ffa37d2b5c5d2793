package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcncl/pjson/internal/errors"
	"gopkg.in/yaml.v3"
)

// Duplicate key policies
const (
	DuplicateLastWins = "last_wins"
	DuplicateReject   = "reject"
)

// DefaultMaxDepth bounds container nesting when no config says otherwise
const DefaultMaxDepth = 512

// Config represents the complete configuration for decoding JSON into values
type Config struct {
	Decode DecodeConfig `yaml:"decode"`
	Dev    DevConfig    `yaml:"dev"`
}

// DecodeConfig controls how JSON text is accepted. A nil field is unset
// and falls back to its default.
type DecodeConfig struct {
	MaxDepth      *int    `yaml:"max_depth"`
	DuplicateKeys *string `yaml:"duplicate_keys"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Decode: DecodeConfig{
			MaxDepth:      ptr(DefaultMaxDepth),
			DuplicateKeys: ptr(DuplicateLastWins),
		},
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file. Keys the file leaves out
// stay unset, so the result can be merged over other settings.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	cfg := &Config{}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file '%s'", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".pjson.yml", ".pjson.yaml", "pjson.yml", "pjson.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks that every option holds a usable value
func (c *Config) Validate() error {
	if d := c.Decode.MaxDepth; d != nil && *d < 0 {
		return errors.NewConfigError(
			fmt.Sprintf("decode.max_depth must not be negative, got %d", *d),
			errors.ErrInvalidConfig,
		)
	}
	if p := c.Decode.DuplicateKeys; p != nil {
		switch *p {
		case DuplicateLastWins, DuplicateReject:
		default:
			return errors.NewConfigError(
				fmt.Sprintf("decode.duplicate_keys must be %q or %q, got %q", DuplicateLastWins, DuplicateReject, *p),
				errors.ErrInvalidConfig,
			)
		}
	}
	return nil
}

// MaxDepth returns the nesting limit, 0 meaning unlimited
func (c *Config) MaxDepth() int {
	if c.Decode.MaxDepth == nil {
		return DefaultMaxDepth
	}
	return *c.Decode.MaxDepth
}

// DuplicateKeys returns the duplicate key policy
func (c *Config) DuplicateKeys() string {
	if c.Decode.DuplicateKeys == nil {
		return DuplicateLastWins
	}
	return *c.Decode.DuplicateKeys
}

// RejectDuplicates reports whether repeated object keys are an error
func (c *Config) RejectDuplicates() bool {
	return c.DuplicateKeys() == DuplicateReject
}

// SetMaxDepth sets decode.max_depth
func (c *Config) SetMaxDepth(depth int) {
	c.Decode.MaxDepth = ptr(depth)
}

// SetDuplicateKeys sets decode.duplicate_keys
func (c *Config) SetDuplicateKeys(policy string) {
	c.Decode.DuplicateKeys = ptr(policy)
}

func ptr[T any](v T) *T {
	return &v
}

// MergeConfigs merges overrides into a base config.
// Values set in override take precedence over base values
func MergeConfigs(base, override *Config) *Config {
	merged := *base // Start with a copy of base

	if override.Decode.MaxDepth != nil {
		merged.Decode.MaxDepth = ptr(*override.Decode.MaxDepth)
	}
	if override.Decode.DuplicateKeys != nil {
		merged.Decode.DuplicateKeys = ptr(*override.Decode.DuplicateKeys)
	}

	// Booleans can't be "empty", so a set flag always wins
	merged.Dev.Debug = base.Dev.Debug || override.Dev.Debug
	merged.Dev.Verbose = base.Dev.Verbose || override.Dev.Verbose

	return &merged
}
