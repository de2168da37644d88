// Package cli holds the state shared by command line subcommands.
package cli

import (
	"fmt"

	"github.com/bnema/glide/internal/cli/styles"
	"github.com/bnema/glide/internal/domain/build"
	"github.com/bnema/glide/internal/infrastructure/config"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
}

// NewApp loads the configuration and prepares output styling.
func NewApp(opts ...config.Option) (*App, error) {
	manager, err := config.NewManager(opts...)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &App{
		Config:  manager.Get(),
		Manager: manager,
		Theme:   styles.NewTheme(),
	}, nil
}
