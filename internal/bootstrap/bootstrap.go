// Package bootstrap assembles the runtime services the player needs
// from the loaded configuration.
package bootstrap

import (
	"context"
	"io"

	"github.com/bnema/glide/internal/application/port"
	"github.com/bnema/glide/internal/infrastructure/config"
	"github.com/bnema/glide/internal/infrastructure/idle"
	"github.com/bnema/glide/internal/logging"
	"github.com/rs/zerolog"
)

// NewLogger builds the application logger from the logging section.
// A nil out means stderr.
func NewLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logCfg.Format = cfg.Logging.Format
	logCfg.TimeFormat = "15:04:05"
	if out != nil {
		logCfg.Output = out
	}
	return logging.New(logCfg)
}

// NewSleepInhibitor returns the platform inhibitor, or a no-op one when
// display-sleep inhibition is turned off.
func NewSleepInhibitor(ctx context.Context, cfg *config.Config) port.SleepInhibitor {
	log := logging.FromContext(ctx)

	if !cfg.Fullscreen.InhibitSleep {
		log.Debug().Msg("display-sleep inhibition disabled by config")
		return idle.NewNoopInhibitor()
	}
	return idle.New(ctx)
}
