// Package ui provides the GTK4 presentation layer of the glide player.
package ui

import (
	"context"

	"github.com/bnema/glide/internal/application/port"
	"github.com/bnema/glide/internal/infrastructure/config"
	"github.com/bnema/glide/internal/infrastructure/platform"
	"github.com/jonboulle/clockwork"
)

// Dependencies holds all injected dependencies for the UI layer.
// This struct is created once at startup and passed to the App.
type Dependencies struct {
	Ctx    context.Context
	Config *config.Config
	// ConfigManager enables hot reload when set.
	ConfigManager *config.Manager

	Inhibitor    port.SleepInhibitor
	Capabilities platform.Capabilities

	// Player receives playback commands. Optional.
	Player port.PlayerCommands
	// Clock drives autohide delays. Defaults to wall time.
	Clock clockwork.Clock
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	if d.Inhibitor == nil {
		return ErrMissingDependency("Inhibitor")
	}
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
