package config

import (
	"fmt"
	"strconv"
)

// Config represents the persistent mem configuration stored as config.toml
// in the data directory. The TOML layout uses sections for logical grouping.
type Config struct {
	Version   int             `toml:"version"`
	Embedding EmbeddingConfig `toml:"embedding"`
	Serve     ServeConfig     `toml:"serve"`
}

// EmbeddingConfig holds embedding provider settings. Dimensions is fixed for
// the lifetime of a data file: changing it against an existing store makes
// every load fail the shape check.
type EmbeddingConfig struct {
	Provider   string `toml:"provider,omitempty"`
	Model      string `toml:"model,omitempty"`
	Dimensions int    `toml:"dimensions,omitempty"`
}

// ServeConfig holds MCP server settings.
type ServeConfig struct {
	Listen string `toml:"listen,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"embedding.provider": {
		get: func(c *Config) string { return c.Embedding.Provider },
		set: func(c *Config, v string) error { c.Embedding.Provider = v; return nil },
	},
	"embedding.model": {
		get: func(c *Config) string { return c.Embedding.Model },
		set: func(c *Config, v string) error { c.Embedding.Model = v; return nil },
	},
	"embedding.dimensions": {
		get: func(c *Config) string { return strconv.Itoa(c.Embedding.Dimensions) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("embedding.dimensions must be an integer: %w", err)
			}
			if n <= 0 {
				return fmt.Errorf("embedding.dimensions must be positive, got %d", n)
			}
			c.Embedding.Dimensions = n
			return nil
		},
	},
	"serve.listen": {
		get: func(c *Config) string { return c.Serve.Listen },
		set: func(c *Config, v string) error { c.Serve.Listen = v; return nil },
	},
}
