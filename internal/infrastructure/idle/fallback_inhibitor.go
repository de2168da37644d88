package idle

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/glide/internal/application/port"
	"github.com/bnema/glide/internal/domain/entity"
	"github.com/bnema/glide/internal/logging"
	"github.com/bnema/glide/internal/syncutil"
)

// ErrUnavailable is returned when no host facility could inhibit sleep.
var ErrUnavailable = errors.New("sleep inhibition unavailable")

var _ port.SleepInhibitor = (*FallbackInhibitor)(nil)

// FallbackInhibitor tries each inhibitor in order and remembers which one
// issued a token so it is released by the same backend.
type FallbackInhibitor struct {
	mu         syncutil.Mutex
	inhibitors []port.SleepInhibitor
	owners     map[entity.SleepToken]port.SleepInhibitor
}

// NewFallbackInhibitor chains inhibitors, most preferred first. Nil entries
// are skipped.
func NewFallbackInhibitor(inhibitors ...port.SleepInhibitor) *FallbackInhibitor {
	f := &FallbackInhibitor{
		owners: make(map[entity.SleepToken]port.SleepInhibitor),
	}
	for _, inh := range inhibitors {
		if inh != nil {
			f.inhibitors = append(f.inhibitors, inh)
		}
	}
	return f
}

// Inhibit returns the first token any backend grants. When all of them
// refuse, the joined error wraps ErrUnavailable.
func (f *FallbackInhibitor) Inhibit(ctx context.Context, reason string) (entity.SleepToken, error) {
	log := logging.FromContext(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	errs := []error{ErrUnavailable}
	for i, inh := range f.inhibitors {
		token, err := inh.Inhibit(ctx, reason)
		if err != nil {
			log.Debug().Err(err).Int("backend", i).Msg("idle inhibitor: backend refused, trying next")
			errs = append(errs, err)
			continue
		}
		f.owners[token] = inh
		return token, nil
	}
	return "", errors.Join(errs...)
}

// Uninhibit releases token through the backend that issued it. Unknown
// tokens are ignored.
func (f *FallbackInhibitor) Uninhibit(ctx context.Context, token entity.SleepToken) error {
	f.mu.Lock()
	owner, ok := f.owners[token]
	delete(f.owners, token)
	f.mu.Unlock()

	if !ok {
		return nil
	}
	if err := owner.Uninhibit(ctx, token); err != nil {
		return fmt.Errorf("uninhibit %s: %w", token, err)
	}
	return nil
}

// Close closes every backend.
func (f *FallbackInhibitor) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var errs []error
	for _, inh := range f.inhibitors {
		if err := inh.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	clear(f.owners)
	return errors.Join(errs...)
}
