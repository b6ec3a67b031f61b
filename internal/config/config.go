// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings. The globe mapping assumes a square
// canvas.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ViewerConfig holds scene and interaction settings.
type ViewerConfig struct {
	Shape         string     `yaml:"shape"`          // cube, cone, cylinder, sphere or torus
	Segments      int        `yaml:"segments"`       // segments of cone, cylinder and sphere
	TorusSegments int        `yaml:"torus_segments"` // segments of the torus
	Spin          bool       `yaml:"spin"`           // start tilted and spinning
	Seed          int64      `yaml:"seed"`           // colour seed, 0 picks one from the clock
	Background    [4]float32 `yaml:"background"`
	ScreenshotDir string     `yaml:"screenshot_dir"` // where F12 captures are written
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      720,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Viewer: ViewerConfig{
			Shape:         "torus",
			Segments:      22,
			TorusSegments: 11,
			Spin:          true,
			Seed:          0,
			Background:    [4]float32{1, 1, 1, 1},
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
