package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Graphics defaults mirror the original 700x700 demo window
	if cfg.Graphics.Width != 700 {
		t.Errorf("expected width 700, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 700 {
		t.Errorf("expected height 700, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Ocean defaults
	if cfg.Ocean.Width != 50 || cfg.Ocean.Length != 50 {
		t.Errorf("expected 50x50 ocean extent, got %gx%g", cfg.Ocean.Width, cfg.Ocean.Length)
	}
	if cfg.Ocean.Cols != 500 || cfg.Ocean.Rows != 500 {
		t.Errorf("expected 500x500 grid, got %dx%d", cfg.Ocean.Cols, cfg.Ocean.Rows)
	}
	if cfg.Ocean.MaxAmplitude != 0.1 {
		t.Errorf("expected max amplitude 0.1, got %f", cfg.Ocean.MaxAmplitude)
	}
	if cfg.Ocean.WaveCount != 20 {
		t.Errorf("expected 20 waves, got %d", cfg.Ocean.WaveCount)
	}
	if cfg.Ocean.Variant != "directional-rounded" {
		t.Errorf("expected variant directional-rounded, got %s", cfg.Ocean.Variant)
	}
	if cfg.Ocean.Animated {
		t.Error("expected animated to be false by default")
	}
	if cfg.Ocean.CorrectedSpeedBias {
		t.Error("expected corrected_speed_bias to be false by default")
	}

	// Bake defaults
	if cfg.Bake.Size != 500 {
		t.Errorf("expected bake size 500, got %d", cfg.Bake.Size)
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
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.yaml")

	yamlData := `
graphics:
  width: 1024
  height: 768
  wireframe: true
ocean:
  wave_count: 5
  animated: true
  seed: 12345
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yamlData), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	// Overridden values
	if cfg.Graphics.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 768 {
		t.Errorf("expected height 768, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Wireframe {
		t.Error("expected wireframe true")
	}
	if cfg.Ocean.WaveCount != 5 {
		t.Errorf("expected 5 waves, got %d", cfg.Ocean.WaveCount)
	}
	if !cfg.Ocean.Animated {
		t.Error("expected animated true")
	}
	if cfg.Ocean.Seed != 12345 {
		t.Errorf("expected seed 12345, got %d", cfg.Ocean.Seed)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Logging.Level)
	}

	// Values absent from the file keep their defaults
	if cfg.Ocean.Cols != 500 {
		t.Errorf("expected default cols 500, got %d", cfg.Ocean.Cols)
	}
	if cfg.Graphics.Title != "Caustica" {
		t.Errorf("expected default title, got %s", cfg.Graphics.Title)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("graphics: [not a map"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
