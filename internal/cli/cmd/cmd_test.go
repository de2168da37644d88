package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/glide/internal/cli"
	"github.com/bnema/glide/internal/domain/build"
	"github.com/bnema/glide/internal/infrastructure/config"
)

func TestVersionCommand(t *testing.T) {
	SetBuildInfo(build.Info{Version: "v0.3.0", Commit: "deadbeef", BuildDate: "2026-02-01", GoVersion: "go1.25.3"})

	var out bytes.Buffer
	versionCmd.SetOut(&out)
	require.NoError(t, versionCmd.RunE(versionCmd, nil))

	assert.Contains(t, out.String(), "v0.3.0")
	assert.Contains(t, out.String(), "deadbeef")
}

func TestConfigCommand_PrintsResolvedConfig(t *testing.T) {
	loaded, err := cli.NewApp(config.WithFs(afero.NewMemMapFs()), config.WithConfigDir("/cfg/glide"))
	require.NoError(t, err)
	app = loaded
	t.Cleanup(func() { app = nil })

	var out bytes.Buffer
	configCmd.SetOut(&out)
	require.NoError(t, runConfigShow(configCmd, nil))

	assert.Contains(t, out.String(), "/cfg/glide/config.toml")
	assert.Contains(t, out.String(), "autohide_delay")

	out.Reset()
	configPathCmd.SetOut(&out)
	require.NoError(t, configPathCmd.RunE(configPathCmd, nil))
	assert.Equal(t, "/cfg/glide/config.toml\n", out.String())
}

func TestConfigCommand_WithoutAppFails(t *testing.T) {
	app = nil

	assert.Error(t, runConfigShow(configCmd, nil))
}
