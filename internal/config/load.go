package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a config file on top of the defaults, ignoring CLI flags.
// Used when the user picks a settings file at runtime.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the program cannot run with.
func (c *Config) Validate() error {
	p := c.World.Plane
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("world.plane: width and height must be positive, got %gx%g", p.Width, p.Height)
	}
	if p.WidthSegments < 1 || p.HeightSegments < 1 {
		return fmt.Errorf("world.plane: segment counts must be at least 1, got %dx%d", p.WidthSegments, p.HeightSegments)
	}
	switch c.Displacement.Mode {
	case "random", "simplex":
	default:
		return fmt.Errorf("displacement.mode: unknown mode %q", c.Displacement.Mode)
	}
	if c.Animation.PhaseStep <= 0 {
		return fmt.Errorf("animation.phase_step must be positive, got %g", c.Animation.PhaseStep)
	}
	if c.Glow.Duration <= 0 {
		return fmt.Errorf("glow.duration must be positive, got %s", c.Glow.Duration)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera: need 0 < near < far, got near=%g far=%g", c.Camera.Near, c.Camera.Far)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "GlowPlane")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "GlowPlane")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "glowplane")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "glowplane")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
