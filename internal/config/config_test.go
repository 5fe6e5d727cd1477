package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "iris.config.yaml")

	configContent := `version: "1.0.0"
input:
  schema:
    - schema.iris
    - extra.iris
  overlay:
    - overlay.yaml
build:
  assume_valid_sdl: true
  no_location: true
  introspection: true
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Version != "1.0.0" {
		t.Errorf("Expected version 1.0.0, got %s", cfg.Version)
	}

	if len(cfg.Input.Schema) != 2 {
		t.Fatalf("Expected 2 schema files, got %d", len(cfg.Input.Schema))
	}
	if cfg.Input.Schema[0] != filepath.Join(tmpDir, "schema.iris") {
		t.Errorf("Expected resolved schema path, got %s", cfg.Input.Schema[0])
	}
	if cfg.Input.Schema[1] != filepath.Join(tmpDir, "extra.iris") {
		t.Errorf("Expected resolved schema path, got %s", cfg.Input.Schema[1])
	}

	if len(cfg.Input.Overlay) != 1 {
		t.Fatalf("Expected 1 overlay file, got %d", len(cfg.Input.Overlay))
	}
	if cfg.Input.Overlay[0] != filepath.Join(tmpDir, "overlay.yaml") {
		t.Errorf("Expected resolved overlay path, got %s", cfg.Input.Overlay[0])
	}

	if !cfg.Build.AssumeValidSDL {
		t.Error("Expected AssumeValidSDL to be true")
	}
	if !cfg.Build.NoLocation {
		t.Error("Expected NoLocation to be true")
	}
	if !cfg.Build.Introspection {
		t.Error("Expected Introspection to be true")
	}
	if cfg.Build.AssumeValid {
		t.Error("Expected AssumeValid to default to false")
	}
}

func TestValidateMissingSchema(t *testing.T) {
	cfg := &Config{}

	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for missing schema")
	}
}

func TestValidateRejectsRedundantFlags(t *testing.T) {
	cfg := &Config{
		Input: InputConfig{Schema: []string{"schema.iris"}},
		Build: BuildOptions{AssumeValid: true, AssumeValidSDL: true},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for redundant assume_valid/assume_valid_sdl combination")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Input: InputConfig{Schema: []string{"schema.iris"}}}
	cfg.ApplyDefaults()

	if cfg.Version != "1.0.0" {
		t.Errorf("Expected default version 1.0.0, got %s", cfg.Version)
	}
}

func TestResolvePaths(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &Config{
		Input: InputConfig{
			Schema:  []string{"schema.iris"},
			Overlay: []string{"ann1.yaml", "ann2.yaml"},
		},
	}

	if err := cfg.ResolvePaths(tmpDir); err != nil {
		t.Fatalf("ResolvePaths failed: %v", err)
	}

	expectedSchema := filepath.Join(tmpDir, "schema.iris")
	if cfg.Input.Schema[0] != expectedSchema {
		t.Errorf("Expected schema %s, got %s", expectedSchema, cfg.Input.Schema[0])
	}

	for i, ann := range cfg.Input.Overlay {
		expected := filepath.Join(tmpDir, filepath.Base(ann))
		if ann != expected {
			t.Errorf("Expected overlay[%d] %s, got %s", i, expected, ann)
		}
	}
}

func TestResolvePathsLeavesAbsolutePathsAlone(t *testing.T) {
	abs := filepath.Join(string(filepath.Separator), "abs", "schema.iris")
	cfg := &Config{Input: InputConfig{Schema: []string{abs}}}

	if err := cfg.ResolvePaths("/some/other/dir"); err != nil {
		t.Fatalf("ResolvePaths failed: %v", err)
	}
	if cfg.Input.Schema[0] != abs {
		t.Errorf("Expected absolute path left unchanged, got %s", cfg.Input.Schema[0])
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidContent := `
input:
  schema: test
  invalid yaml here:::
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadNonExistentFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/config.yaml"); err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestConfigBuilder(t *testing.T) {
	cfg, err := NewConfigBuilder().
		WithSchema("schema.iris").
		WithOverlay("overlay.yaml").
		WithAssumeValidSDL(true).
		WithNoLocation(true).
		WithIntrospection(true).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(cfg.Input.Schema) != 1 || cfg.Input.Schema[0] != "schema.iris" {
		t.Errorf("Expected schema [schema.iris], got %v", cfg.Input.Schema)
	}
	if len(cfg.Input.Overlay) != 1 || cfg.Input.Overlay[0] != "overlay.yaml" {
		t.Errorf("Expected overlay [overlay.yaml], got %v", cfg.Input.Overlay)
	}
	if !cfg.Build.AssumeValidSDL || !cfg.Build.NoLocation || !cfg.Build.Introspection {
		t.Error("Expected all build flags set")
	}
}

func TestConfigBuilderRejectsMissingSchema(t *testing.T) {
	if _, err := NewConfigBuilder().Build(); err == nil {
		t.Error("Expected error for missing schema")
	}
}
