// Package config loads the YAML build configuration a caller hands to the
// iris command line: which SDL files make up a schema, which overlay files
// annotate it, and the per-build flags (AssumeValid, AssumeValidSDL,
// NoLocation) that control how much of internal/validate and
// internal/parser's location tracking a build pays for. Grounded on the
// teacher's config.go, adapted from a code-generator's format/output
// settings to Iris's own build surface.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is a complete build configuration.
type Config struct {
	// Version this config file is written against.
	Version string `yaml:"version"`

	// Input configuration
	Input InputConfig `yaml:"input"`

	// Build holds per-build flags.
	Build BuildOptions `yaml:"build,omitempty"`
}

// InputConfig defines input sources.
type InputConfig struct {
	// Schema files, concatenated in order before parsing (required, at
	// least one entry).
	Schema []string `yaml:"schema"`

	// Overlay files merged onto the parsed document before the schema is
	// built (internal/overlay).
	Overlay []string `yaml:"overlay,omitempty"`
}

// BuildOptions mirrors the flags internal/schema and internal/validate
// accept directly.
type BuildOptions struct {
	// AssumeValid skips both SDL and schema-shape validation entirely.
	AssumeValid bool `yaml:"assume_valid,omitempty"`

	// AssumeValidSDL skips only document-shape SDL validation (duplicate
	// names, unknown type references, required directive arguments); schema
	// validation still runs.
	AssumeValidSDL bool `yaml:"assume_valid_sdl,omitempty"`

	// NoLocation disables source position tracking during parsing
	// (parser.Options.NoLocation), trading error location info for a
	// smaller, faster parse.
	NoLocation bool `yaml:"no_location,omitempty"`

	// Introspection grafts internal/introspection's fixed schema onto the
	// built document's Query type before the schema is built.
	Introspection bool `yaml:"introspection,omitempty"`
}

// NewConfig returns a Config with defaults applied and no input configured.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads and parses a configuration file, resolving relative input
// paths against the config file's own directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := LoadFromBytes(data)
	if err != nil {
		return nil, err
	}

	if err := cfg.ResolvePaths(filepath.Dir(path)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromBytes parses configuration from an in-memory YAML document. Paths
// are left as written; call ResolvePaths separately to resolve them against
// a base directory.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}

// Validate checks that the configuration is well-formed.
func (c *Config) Validate() error {
	if len(c.Input.Schema) == 0 {
		return fmt.Errorf("input.schema must list at least one schema file")
	}
	if c.Build.AssumeValid && c.Build.AssumeValidSDL {
		return fmt.Errorf("build.assume_valid already implies build.assume_valid_sdl")
	}
	return nil
}

// ResolvePaths converts relative input paths to absolute paths based on
// baseDir.
func (c *Config) ResolvePaths(baseDir string) error {
	for i, p := range c.Input.Schema {
		if !filepath.IsAbs(p) {
			c.Input.Schema[i] = filepath.Join(baseDir, p)
		}
	}
	for i, p := range c.Input.Overlay {
		if !filepath.IsAbs(p) {
			c.Input.Overlay[i] = filepath.Join(baseDir, p)
		}
	}
	return nil
}

// ApplyDefaults sets default values for optional fields.
func (c *Config) ApplyDefaults() {
	if c.Version == "" {
		c.Version = "1.0.0"
	}
}

// ConfigBuilder builds a Config fluently, for callers assembling one
// programmatically rather than from a YAML file.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder starts a ConfigBuilder with defaults applied.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: NewConfig()}
}

func (b *ConfigBuilder) WithSchema(paths ...string) *ConfigBuilder {
	b.cfg.Input.Schema = append(b.cfg.Input.Schema, paths...)
	return b
}

func (b *ConfigBuilder) WithOverlay(paths ...string) *ConfigBuilder {
	b.cfg.Input.Overlay = append(b.cfg.Input.Overlay, paths...)
	return b
}

func (b *ConfigBuilder) WithAssumeValid(v bool) *ConfigBuilder {
	b.cfg.Build.AssumeValid = v
	return b
}

func (b *ConfigBuilder) WithAssumeValidSDL(v bool) *ConfigBuilder {
	b.cfg.Build.AssumeValidSDL = v
	return b
}

func (b *ConfigBuilder) WithNoLocation(v bool) *ConfigBuilder {
	b.cfg.Build.NoLocation = v
	return b
}

func (b *ConfigBuilder) WithIntrospection(v bool) *ConfigBuilder {
	b.cfg.Build.Introspection = v
	return b
}

// Build returns the assembled Config after validating it.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}
