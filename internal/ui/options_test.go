package ui

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/glide/internal/infrastructure/config"
	"github.com/bnema/glide/internal/infrastructure/idle"
	"github.com/bnema/glide/internal/infrastructure/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullscreenOptions_FromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Fullscreen.AutohideDelay = 2 * time.Second
	cfg.Fullscreen.InhibitSleep = false
	cfg.Fullscreen.InhibitReason = "Movie night"
	cfg.Fullscreen.RestoreGeometry = false
	caps := platform.ForOS("linux")

	opts := fullscreenOptions(cfg, caps)

	assert.Equal(t, 2*time.Second, opts.AutohideDelay)
	assert.False(t, opts.InhibitSleep)
	assert.Equal(t, "Movie night", opts.InhibitReason)
	assert.False(t, opts.RestoreGeometry)
	assert.Equal(t, caps, opts.Capabilities)
}

func TestWindowSize_FromConfig(t *testing.T) {
	size := windowSize(config.DefaultConfig())

	assert.Equal(t, 640, size.Width)
	assert.Equal(t, 480, size.Height)
}

func TestDependenciesValidate(t *testing.T) {
	tests := []struct {
		name    string
		deps    Dependencies
		missing string
	}{
		{name: "missing ctx", deps: Dependencies{}, missing: "Ctx"},
		{
			name:    "missing config",
			deps:    Dependencies{Ctx: context.Background()},
			missing: "Config",
		},
		{
			name:    "missing inhibitor",
			deps:    Dependencies{Ctx: context.Background(), Config: config.DefaultConfig()},
			missing: "Inhibitor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.deps.Validate()
			require.Error(t, err)
			assert.Equal(t, ErrMissingDependency(tt.missing), err)
		})
	}

	complete := Dependencies{
		Ctx:       context.Background(),
		Config:    config.DefaultConfig(),
		Inhibitor: idle.NewNoopInhibitor(),
	}
	assert.NoError(t, complete.Validate())
}
