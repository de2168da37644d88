// Package config loads the player configuration with viper.
package config

import "time"

// Config is the complete player configuration.
type Config struct {
	Fullscreen FullscreenConfig `mapstructure:"fullscreen"`
	Window     WindowConfig     `mapstructure:"window"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// FullscreenConfig tunes the fullscreen session.
type FullscreenConfig struct {
	// AutohideDelay is how long toolbar and cursor stay visible after the
	// pointer stops moving.
	AutohideDelay time.Duration `mapstructure:"autohide_delay"`
	// InhibitSleep keeps the display awake while fullscreen.
	InhibitSleep bool `mapstructure:"inhibit_sleep"`
	// InhibitReason is shown by the desktop next to the inhibition.
	InhibitReason string `mapstructure:"inhibit_reason"`
	// RestoreGeometry resizes the window back to its prior size on leave.
	RestoreGeometry bool `mapstructure:"restore_geometry"`
}

// WindowConfig holds the initial window size.
type WindowConfig struct {
	DefaultWidth  int `mapstructure:"default_width"`
	DefaultHeight int `mapstructure:"default_height"`
}

// LoggingConfig selects log level and output format.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Fullscreen: FullscreenConfig{
			AutohideDelay:   5 * time.Second,
			InhibitSleep:    true,
			InhibitReason:   "Glide full-screen",
			RestoreGeometry: true,
		},
		Window: WindowConfig{
			DefaultWidth:  640,
			DefaultHeight: 480,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
