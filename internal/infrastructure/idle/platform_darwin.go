//go:build darwin

package idle

import (
	"context"

	"github.com/bnema/glide/internal/application/port"
)

// New returns the host's display-sleep inhibitor: IOKit power assertions.
func New(ctx context.Context) port.SleepInhibitor {
	return NewIOKitInhibitor(ctx)
}
