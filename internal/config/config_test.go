package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	// Test world defaults
	p := cfg.World.Plane
	if p.Width != 100 || p.Height != 100 {
		t.Errorf("expected plane 100x100, got %gx%g", p.Width, p.Height)
	}
	if p.WidthSegments != 50 || p.HeightSegments != 50 {
		t.Errorf("expected 50x50 segments, got %dx%d", p.WidthSegments, p.HeightSegments)
	}
	if cfg.World.BaseColor != 0x03254C {
		t.Errorf("expected base color #03254C, got %s", cfg.World.BaseColor)
	}
	if cfg.World.HoverColor != 0x2A9DF4 {
		t.Errorf("expected hover color #2A9DF4, got %s", cfg.World.HoverColor)
	}

	// Test animation defaults
	if cfg.Animation.PhaseStep != 0.01 {
		t.Errorf("expected phase step 0.01, got %f", cfg.Animation.PhaseStep)
	}
	if cfg.Glow.Duration != 500*time.Millisecond {
		t.Errorf("expected glow duration 500ms, got %v", cfg.Glow.Duration)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if !cfg.Logging.Console || cfg.Logging.Format != "console" {
		t.Errorf("expected console logging, got %+v", cfg.Logging)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

world:
  plane:
    width: 40
    height: 60
    width_segments: 12
    height_segments: 18
  base_color: "#FF0000"
  hover_color: 0x00ff00

displacement:
  mode: simplex
  seed: 42

glow:
  duration: 1500ms
  ease: linear

logging:
  level: "debug"
  log_file: "glowplane.log"
  format: json
  components:
    demo: debug
    window: warn
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.World.Plane.Width != 40 || cfg.World.Plane.HeightSegments != 18 {
		t.Errorf("unexpected plane %+v", cfg.World.Plane)
	}
	if cfg.World.BaseColor != 0xFF0000 {
		t.Errorf("expected base color #FF0000, got %s", cfg.World.BaseColor)
	}
	if cfg.World.HoverColor != 0x00FF00 {
		t.Errorf("expected hover color #00FF00, got %s", cfg.World.HoverColor)
	}
	if cfg.Displacement.Mode != "simplex" || cfg.Displacement.Seed != 42 {
		t.Errorf("unexpected displacement %+v", cfg.Displacement)
	}
	if cfg.Glow.Duration != 1500*time.Millisecond {
		t.Errorf("expected glow duration 1.5s, got %v", cfg.Glow.Duration)
	}

	// Untouched sections keep their defaults
	if cfg.Animation.PhaseStep != 0.01 {
		t.Errorf("expected default phase step, got %f", cfg.Animation.PhaseStep)
	}

	if cfg.Logging.LogFile != "glowplane.log" {
		t.Errorf("expected log file 'glowplane.log', got %s", cfg.Logging.LogFile)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Components["window"] != "warn" {
		t.Errorf("unexpected logging %+v", cfg.Logging)
	}
	if cfg.Logging.MaxSizeMB != 10 || !cfg.Logging.Console {
		t.Errorf("expected default rotation and console, got %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"syntax", "graphics:\n  width: not a number\n  invalid syntax here\n"},
		{"bad color", "world:\n  base_color: \"#12\"\n"},
		{"color mapping", "world:\n  base_color:\n    r: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(tt.yaml), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			cfg := Default()
			if err := loadFromFile(cfg, configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.World.Plane.Width = 0 }},
		{"zero segments", func(c *Config) { c.World.Plane.HeightSegments = 0 }},
		{"unknown displacement", func(c *Config) { c.Displacement.Mode = "perlin" }},
		{"zero phase step", func(c *Config) { c.Animation.PhaseStep = 0 }},
		{"zero glow duration", func(c *Config) { c.Glow.Duration = 0 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.01 }},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.World.Plane.WidthSegments = 33
	cfg.World.BaseColor = 0xFF0000

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved config: %v", err)
	}
	if !strings.Contains(string(data), "#FF0000") {
		t.Errorf("expected hex color in saved YAML, got:\n%s", data)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if loaded.World.Plane.WidthSegments != 33 {
		t.Errorf("expected 33 width segments, got %d", loaded.World.Plane.WidthSegments)
	}
	if loaded.World.BaseColor != 0xFF0000 {
		t.Errorf("expected base color #FF0000, got %s", loaded.World.BaseColor)
	}
	if loaded.Glow.Duration != cfg.Glow.Duration {
		t.Errorf("expected glow duration %v, got %v", cfg.Glow.Duration, loaded.Glow.Duration)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Isolate from any real user config
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create config.yaml in current directory
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "displacement flags",
			setup: func() {
				*flagSeed = 7
				*flagDisplacement = "simplex"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Displacement.Seed != 7 || cfg.Displacement.Mode != "simplex" {
					t.Errorf("unexpected displacement %+v", cfg.Displacement)
				}
			},
			teardown: func() {
				*flagSeed = 0
				*flagDisplacement = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}
