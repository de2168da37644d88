// Package port declares the interfaces the fullscreen core consumes from the
// windowing toolkit and the host platform.
package port

import (
	"context"

	"github.com/bnema/glide/internal/domain/entity"
)

// SleepInhibitor asks the host to keep the display awake.
// Each successful Inhibit returns a token that must be handed back to
// Uninhibit exactly once. Callers own call balance; implementations do not
// refcount.
type SleepInhibitor interface {
	// Inhibit prevents display and idle sleep for the given reason.
	Inhibit(ctx context.Context, reason string) (entity.SleepToken, error)

	// Uninhibit releases the inhibition identified by token.
	Uninhibit(ctx context.Context, token entity.SleepToken) error

	// Close releases any held resources. Call on application shutdown.
	Close() error
}
