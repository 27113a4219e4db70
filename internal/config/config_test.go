package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/datascape/pkg/validate"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Terrain.Width != 8 || cfg.Terrain.Depth != 8 {
		t.Errorf("expected 8x8 terrain, got %dx%d", cfg.Terrain.Width, cfg.Terrain.Depth)
	}
	if cfg.Terrain.Scale != 10 {
		t.Errorf("expected scale 10, got %f", cfg.Terrain.Scale)
	}
	if cfg.Terrain.Thresholds.Peak != 0.8 {
		t.Errorf("expected peak threshold 0.8, got %f", cfg.Terrain.Thresholds.Peak)
	}

	if cfg.Growth.GrowthRate != 0.1 {
		t.Errorf("expected growth rate 0.1, got %f", cfg.Growth.GrowthRate)
	}
	if cfg.Growth.Amplitude != 0.2 {
		t.Errorf("expected amplitude 0.2, got %f", cfg.Growth.Amplitude)
	}

	if cfg.Skyline.Parallel {
		t.Error("expected parallel to be false by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
terrain:
  width: 16
  depth: 4
  scale: 20
  thresholds:
    mid: 0.3
    high: 0.5
    peak: 0.9

growth:
  growth_rate: 0.5
  amplitude: 0.1

skyline:
  tick_delta: 0.5
  max_ticks: 100
  parallel: true

data:
  dataset: "areas.yaml"

logging:
  level: "debug"
  log_file: "datascape.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Terrain.Width != 16 || cfg.Terrain.Depth != 4 {
		t.Errorf("expected 16x4 terrain, got %dx%d", cfg.Terrain.Width, cfg.Terrain.Depth)
	}
	if cfg.Terrain.Scale != 20 {
		t.Errorf("expected scale 20, got %f", cfg.Terrain.Scale)
	}
	if cfg.Terrain.Thresholds.Mid != 0.3 {
		t.Errorf("expected mid threshold 0.3, got %f", cfg.Terrain.Thresholds.Mid)
	}
	// Unset keys keep their defaults
	if cfg.Terrain.NoiseAmplitude != 0.5 {
		t.Errorf("expected default noise amplitude 0.5, got %f", cfg.Terrain.NoiseAmplitude)
	}

	if cfg.Growth.GrowthRate != 0.5 {
		t.Errorf("expected growth rate 0.5, got %f", cfg.Growth.GrowthRate)
	}
	if cfg.Growth.Epsilon != 0.1 {
		t.Errorf("expected default epsilon 0.1, got %f", cfg.Growth.Epsilon)
	}

	if !cfg.Skyline.Parallel || cfg.Skyline.MaxTicks != 100 {
		t.Errorf("unexpected skyline config %+v", cfg.Skyline)
	}

	if cfg.Data.Dataset != "areas.yaml" {
		t.Errorf("expected dataset areas.yaml, got %s", cfg.Data.Dataset)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "datascape.log" {
		t.Errorf("expected log file 'datascape.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
terrain:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/datascape.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Terrain.Width = 0 }},
		{"zero depth", func(c *Config) { c.Terrain.Depth = 0 }},
		{"zero scale", func(c *Config) { c.Terrain.Scale = 0 }},
		{"negative tick", func(c *Config) { c.Skyline.TickDelta = -1 }},
		{"negative max ticks", func(c *Config) { c.Skyline.MaxTicks = -1 }},
		{"unordered thresholds", func(c *Config) { c.Terrain.Thresholds.High = 0.95 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, validate.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestConversions(t *testing.T) {
	cfg := Default()

	grid := cfg.Terrain.Grid()
	if grid.Width != 8 || grid.Depth != 8 {
		t.Errorf("unexpected grid %+v", grid)
	}

	opts := cfg.Terrain.Options()
	if opts.Scale != 10 || opts.Thresholds != cfg.Terrain.Thresholds {
		t.Errorf("unexpected options %+v", opts)
	}

	a := cfg.Growth.Animator()
	if a.Config().GrowthRate != 0.1 {
		t.Errorf("expected animator growth rate 0.1, got %f", a.Config().GrowthRate)
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

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("terrain:\n  width: 4\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find datascape.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "dataset flag",
			setup: func() { *flagDataset = "custom.yaml" },
			verify: func(cfg *Config) {
				if cfg.Data.Dataset != "custom.yaml" {
					t.Errorf("expected dataset custom.yaml, got %s", cfg.Data.Dataset)
				}
			},
			teardown: func() { *flagDataset = "" },
		},
		{
			name: "grid flags",
			setup: func() {
				*flagWidth = 32
				*flagDepth = 12
			},
			verify: func(cfg *Config) {
				if cfg.Terrain.Width != 32 || cfg.Terrain.Depth != 12 {
					t.Errorf("expected 32x12 terrain, got %dx%d", cfg.Terrain.Width, cfg.Terrain.Depth)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagDepth = 0
			},
		},
		{
			name:  "parallel flag",
			setup: func() { *flagParallel = true },
			verify: func(cfg *Config) {
				if !cfg.Skyline.Parallel {
					t.Error("expected parallel to be enabled")
				}
			},
			teardown: func() { *flagParallel = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
terrain:
  width: 12
  depth: 6
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 20
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, depth from file
	if cfg.Terrain.Width != 20 {
		t.Errorf("expected width 20 from flag, got %d", cfg.Terrain.Width)
	}
	if cfg.Terrain.Depth != 6 {
		t.Errorf("expected depth 6 from file, got %d", cfg.Terrain.Depth)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, []byte("terrain:\n  scale: -2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, validate.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Terrain.Width = 24
	cfg.Data.Dataset = "mumbai.yaml"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.Terrain.Width != 24 || loaded.Data.Dataset != "mumbai.yaml" {
		t.Errorf("saved config not restored: %+v", loaded)
	}
}
