package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Terrain defaults
	if cfg.Terrain.HeightResolution != 513 {
		t.Errorf("expected height resolution 513, got %d", cfg.Terrain.HeightResolution)
	}
	if cfg.Terrain.SizeX != 500 || cfg.Terrain.SizeZ != 500 {
		t.Errorf("expected 500x500 footprint, got %vx%v", cfg.Terrain.SizeX, cfg.Terrain.SizeZ)
	}
	if cfg.Terrain.AlphaLayers != 4 {
		t.Errorf("expected 4 alpha layers, got %d", cfg.Terrain.AlphaLayers)
	}

	// Sculpt defaults
	if !cfg.Sculpt.DeferredSync {
		t.Error("expected deferred sync enabled by default")
	}
	if cfg.Sculpt.SmoothIterations != 2 {
		t.Errorf("expected 2 smoothing iterations, got %d", cfg.Sculpt.SmoothIterations)
	}
	if len(cfg.Sculpt.Brushes) == 0 {
		t.Error("expected default brush presets")
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "terracarve.yaml")

	yamlContent := `
terrain:
  size_x: 1000
  size_y: 800
  size_z: 1000
  height_resolution: 1025
  alpha_layers: 8

sculpt:
  smooth_iterations: 5
  smooth_strength: 0.75
  deferred_sync: false
  brushes:
    - name: crater
      radius_x: 30
      radius_z: 15
      amount: -0.05
      stamp: stamps/crater.png
      rotation: 1.57

logging:
  level: "debug"
  log_file: "sculpt.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Terrain.SizeX != 1000 {
		t.Errorf("expected size_x 1000, got %v", cfg.Terrain.SizeX)
	}
	if cfg.Terrain.HeightResolution != 1025 {
		t.Errorf("expected height resolution 1025, got %d", cfg.Terrain.HeightResolution)
	}
	if cfg.Terrain.AlphaLayers != 8 {
		t.Errorf("expected 8 alpha layers, got %d", cfg.Terrain.AlphaLayers)
	}
	// Values absent from the file keep their defaults.
	if cfg.Terrain.DetailResolution != 256 {
		t.Errorf("expected default detail resolution 256, got %d", cfg.Terrain.DetailResolution)
	}

	if cfg.Sculpt.SmoothIterations != 5 {
		t.Errorf("expected 5 smoothing iterations, got %d", cfg.Sculpt.SmoothIterations)
	}
	if cfg.Sculpt.SmoothStrength != 0.75 {
		t.Errorf("expected smoothing strength 0.75, got %v", cfg.Sculpt.SmoothStrength)
	}
	if cfg.Sculpt.DeferredSync {
		t.Error("expected deferred sync disabled")
	}
	if len(cfg.Sculpt.Brushes) != 1 || cfg.Sculpt.Brushes[0].Name != "crater" {
		t.Errorf("expected single 'crater' brush, got %+v", cfg.Sculpt.Brushes)
	}
	if cfg.Sculpt.Brushes[0].Stamp != "stamps/crater.png" {
		t.Errorf("expected stamp path, got %s", cfg.Sculpt.Brushes[0].Stamp)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "sculpt.log" {
		t.Errorf("expected log file 'sculpt.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
terrain:
  height_resolution: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/terracarve.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestSaveToRoundtrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "terracarve.yaml")

	cfg := Default()
	cfg.Sculpt.SmoothIterations = 9
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Sculpt.SmoothIterations != 9 {
		t.Errorf("roundtrip lost value: got %d, want 9", loaded.Sculpt.SmoothIterations)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}
