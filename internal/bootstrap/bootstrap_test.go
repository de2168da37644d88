package bootstrap

import (
	"bytes"
	"context"
	"testing"

	"github.com/bnema/glide/internal/infrastructure/config"
	"github.com/bnema/glide/internal/infrastructure/idle"
	"github.com/bnema/glide/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_UsesConfiguredLevelAndFormat(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = "warn"
	cfg.Logging.Format = logging.FormatJSON

	var buf bytes.Buffer
	logger := NewLogger(cfg, &buf)

	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("dropped")
	logger.Warn().Msg("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"message":"kept"`)
}

func TestNewSleepInhibitor_DisabledReturnsNoop(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Fullscreen.InhibitSleep = false

	inhibitor := NewSleepInhibitor(context.Background(), cfg)

	assert.IsType(t, &idle.NoopInhibitor{}, inhibitor)
}
