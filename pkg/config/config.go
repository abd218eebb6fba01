// Package config loads and saves the persistent mem configuration.
//
// Configuration lives in config.toml inside the data directory. Loading
// goes through viper so environment variables (MEM_ prefix) and defaults
// layer under the file; saving writes the file directly with the TOML
// encoder.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/papercomputeco/mem/pkg/datadir"
)

const (
	configFile = "config.toml"

	// v0 is the alpha version of the config
	v0 = 0

	// CurrentV is the currently supported version, points to v0
	CurrentV = v0
)

type Configer struct {
	dataDir    string
	targetPath string
}

// NewConfiger creates a Configer rooted at the resolved data directory.
// If override is non-empty it is used as the data directory; otherwise the
// standard datadir resolution applies.
func NewConfiger(override string) (*Configer, error) {
	ddm := datadir.NewManager()
	target, err := ddm.Target(override)
	if err != nil {
		return nil, err
	}

	return &Configer{
		dataDir:    target,
		targetPath: filepath.Join(target, configFile),
	}, nil
}

// DataDir returns the resolved data directory.
func (c *Configer) DataDir() string {
	return c.dataDir
}

// GetTarget returns the config file path.
func (c *Configer) GetTarget() string {
	return c.targetPath
}

// LoadConfig returns the effective configuration: defaults, overlaid by
// config.toml (if present), overlaid by MEM_ environment variables.
func (c *Configer) LoadConfig() (*Config, error) {
	v, err := initViper(c.dataDir)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Version: v.GetInt("version"),
		Embedding: EmbeddingConfig{
			Provider:   v.GetString("embedding.provider"),
			Model:      v.GetString("embedding.model"),
			Dimensions: v.GetInt("embedding.dimensions"),
		},
		Serve: ServeConfig{
			Listen: v.GetString("serve.listen"),
		},
	}

	if cfg.Version != CurrentV {
		return nil, fmt.Errorf("unsupported config version %d (expected %d)", cfg.Version, CurrentV)
	}

	return cfg, nil
}

// SaveConfig persists the configuration to config.toml in the data directory.
func (c *Configer) SaveConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("cannot save nil config")
	}

	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(c.targetPath, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// SetConfigValue loads the config, sets the given key to the given value,
// and saves it. Returns an error if the key is not a valid config key.
func (c *Configer) SetConfigValue(key string, value string) error {
	info, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key: %q", key)
	}

	cfg, err := c.LoadConfig()
	if err != nil {
		return err
	}

	if err := info.set(cfg, value); err != nil {
		return err
	}

	return c.SaveConfig(cfg)
}

// GetConfigValue loads the config and returns the string representation of
// the given key. Returns an error if the key is not a valid config key.
func (c *Configer) GetConfigValue(key string) (string, error) {
	info, ok := configKeys[key]
	if !ok {
		return "", fmt.Errorf("unknown config key: %q", key)
	}

	cfg, err := c.LoadConfig()
	if err != nil {
		return "", err
	}

	return info.get(cfg), nil
}

// ValidConfigKeys returns the list of all supported configuration key names
// in a stable order matching the TOML section layout.
func ValidConfigKeys() []string {
	ordered := []string{
		"embedding.provider",
		"embedding.model",
		"embedding.dimensions",
		"serve.listen",
	}

	result := make([]string, 0, len(ordered))
	for _, k := range ordered {
		if _, ok := configKeys[k]; ok {
			result = append(result, k)
		}
	}

	return result
}

// IsValidConfigKey returns true if the given key is a supported configuration key.
func IsValidConfigKey(key string) bool {
	_, ok := configKeys[key]
	return ok
}
