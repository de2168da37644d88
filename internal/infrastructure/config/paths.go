package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appDirName     = "glide"
	configFileName = "config.toml"
	dirPerm        = 0o755
)

// GetConfigDir returns $XDG_CONFIG_HOME/glide.
func GetConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appDirName)
}

// GetConfigFile returns the default config file path.
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), configFileName)
}
