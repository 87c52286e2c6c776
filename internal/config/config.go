// Package config handles application configuration loading and management.
package config

import "time"

// Config holds all application settings.
type Config struct {
	Graphics     GraphicsConfig     `yaml:"graphics"`
	World        WorldConfig        `yaml:"world"`
	Displacement DisplacementConfig `yaml:"displacement"`
	Animation    AnimationConfig    `yaml:"animation"`
	Glow         GlowConfig         `yaml:"glow"`
	Camera       CameraConfig       `yaml:"camera"`
	Debug        DebugConfig        `yaml:"debug"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// PlaneConfig holds the plane dimensions and grid resolution.
type PlaneConfig struct {
	Width          float32 `yaml:"width"`
	Height         float32 `yaml:"height"`
	WidthSegments  int     `yaml:"width_segments"`
	HeightSegments int     `yaml:"height_segments"`
}

// WorldConfig holds the values edited live from the parameter panel.
type WorldConfig struct {
	Plane      PlaneConfig `yaml:"plane"`
	BaseColor  HexColor    `yaml:"base_color"`
	HoverColor HexColor    `yaml:"hover_color"`
}

// DisplacementConfig controls the upward offset applied at mesh generation.
type DisplacementConfig struct {
	Mode      string  `yaml:"mode"` // "random" or "simplex"
	Seed      uint64  `yaml:"seed"` // 0 picks a time-based seed
	Frequency float64 `yaml:"frequency"`
}

// JitterConfig holds the per-axis perturbation scale.
type JitterConfig struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// AnimationConfig holds vertex animation settings.
type AnimationConfig struct {
	PhaseStep float32      `yaml:"phase_step"` // Phase advance per rendered frame
	Jitter    JitterConfig `yaml:"jitter"`
}

// GlowConfig holds hover glow fade settings.
type GlowConfig struct {
	Duration time.Duration `yaml:"duration"`
	Ease     string        `yaml:"ease"`
}

// CameraConfig holds the initial camera placement.
type CameraConfig struct {
	FOV      float32 `yaml:"fov"` // Vertical field of view, degrees
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Distance float32 `yaml:"distance"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ShowFPS       bool   `yaml:"show_fps"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string            `yaml:"level"`
	Components map[string]string `yaml:"components"` // Per-component level overrides, e.g. demo: debug
	Console    bool              `yaml:"console"`
	LogFile    string            `yaml:"log_file"`
	Format     string            `yaml:"format"` // File encoding: "console" or "json"
	MaxSizeMB  int               `yaml:"max_size_mb"`
	MaxBackups int               `yaml:"max_backups"`
	MaxAgeDays int               `yaml:"max_age_days"`
	Compress   bool              `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		World: WorldConfig{
			Plane: PlaneConfig{
				Width:          100,
				Height:         100,
				WidthSegments:  50,
				HeightSegments: 50,
			},
			BaseColor:  0x03254C,
			HoverColor: 0x2A9DF4,
		},
		Displacement: DisplacementConfig{
			Mode:      "random",
			Seed:      0,
			Frequency: 0.08,
		},
		Animation: AnimationConfig{
			PhaseStep: 0.01,
			Jitter:    JitterConfig{X: 0.005, Y: 0.008, Z: 0.005},
		},
		Glow: GlowConfig{
			Duration: 500 * time.Millisecond,
			Ease:     "outQuad",
		},
		Camera: CameraConfig{
			FOV:      75,
			Near:     0.1,
			Far:      1000,
			Distance: 20,
		},
		Debug: DebugConfig{
			ShowFPS:       false,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Console:    true,
			LogFile:    "",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}
