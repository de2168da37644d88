package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	minAutohideDelay = time.Millisecond
	maxAutohideDelay = 10 * time.Minute
	minWindowSide    = 100
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateFullscreen(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateFullscreen(config *Config) []string {
	d := config.Fullscreen.AutohideDelay
	if d < minAutohideDelay || d > maxAutohideDelay {
		return []string{fmt.Sprintf("fullscreen.autohide_delay must be between %s and %s", minAutohideDelay, maxAutohideDelay)}
	}
	return nil
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.DefaultWidth < minWindowSide {
		validationErrors = append(validationErrors, fmt.Sprintf("window.default_width must be at least %d", minWindowSide))
	}
	if config.Window.DefaultHeight < minWindowSide {
		validationErrors = append(validationErrors, fmt.Sprintf("window.default_height must be at least %d", minWindowSide))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	if !validLogLevels[config.Logging.Level] {
		return []string{"logging.level must be one of trace, debug, info, warn, error"}
	}
	return nil
}
