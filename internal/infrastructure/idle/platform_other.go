//go:build !darwin

package idle

import (
	"context"

	"github.com/bnema/glide/internal/application/port"
)

// New returns the host's display-sleep inhibitor: the XDG Desktop Portal.
func New(ctx context.Context) port.SleepInhibitor {
	return NewPortalInhibitor(ctx)
}
