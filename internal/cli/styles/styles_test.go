package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/glide/internal/cli/styles"
	"github.com/bnema/glide/internal/domain/build"
	"github.com/bnema/glide/internal/infrastructure/config"
)

func TestConfigRenderer_RenderConfig(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderConfig("/tmp/glide/config.toml", config.DefaultConfig())

	require.Contains(t, out, "config.toml")
	for _, want := range []string{
		"[fullscreen]", "autohide_delay", "5s",
		"inhibit_reason", `"Glide full-screen"`,
		"[window]", "640", "480",
		"[logging]", "info", "console",
	} {
		assert.Contains(t, out, want)
	}
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderError(errors.New("bad config"))

	assert.Contains(t, out, "bad config")
}

func TestVersionRenderer_Render(t *testing.T) {
	r := styles.NewVersionRenderer(styles.NewTheme())

	out := r.Render(build.Info{Version: "v1.2.3", Commit: "abc123", BuildDate: "2026-01-01", GoVersion: "go1.25.3"})

	for _, want := range []string{"v1.2.3", "abc123", "2026-01-01", "go1.25.3", build.RepoURL()} {
		assert.Contains(t, out, want)
	}
}
