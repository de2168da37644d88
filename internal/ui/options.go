package ui

import (
	"github.com/bnema/glide/internal/infrastructure/config"
	"github.com/bnema/glide/internal/infrastructure/platform"
	"github.com/bnema/glide/internal/ui/fullscreen"
	"github.com/bnema/glide/internal/ui/window"
)

// fullscreenOptions maps configuration onto controller options.
func fullscreenOptions(cfg *config.Config, caps platform.Capabilities) fullscreen.Options {
	return fullscreen.Options{
		InhibitSleep:    cfg.Fullscreen.InhibitSleep,
		InhibitReason:   cfg.Fullscreen.InhibitReason,
		RestoreGeometry: cfg.Fullscreen.RestoreGeometry,
		AutohideDelay:   cfg.Fullscreen.AutohideDelay,
		Capabilities:    caps,
	}
}

func windowSize(cfg *config.Config) window.Size {
	return window.Size{
		Width:  cfg.Window.DefaultWidth,
		Height: cfg.Window.DefaultHeight,
	}
}
