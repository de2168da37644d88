package fullscreen

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/bnema/glide/internal/domain/entity"
	"github.com/bnema/glide/internal/logging"
	"github.com/bnema/glide/internal/syncutil"
)

// ErrWindowRegistered is returned when a window ID already has a controller.
var ErrWindowRegistered = errors.New("window already has a fullscreen controller")

// Registry keeps one Controller per window.
type Registry struct {
	mu          syncutil.RWMutex
	controllers map[entity.WindowID]*Controller
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{controllers: make(map[entity.WindowID]*Controller)}
}

// Register attaches c to id.
func (r *Registry) Register(id entity.WindowID, c *Controller) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.controllers[id]; exists {
		return fmt.Errorf("%w: %s", ErrWindowRegistered, id)
	}
	r.controllers[id] = c
	return nil
}

// Get returns the controller of id.
func (r *Registry) Get(id entity.WindowID) (*Controller, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.controllers[id]
	return c, ok
}

// Remove ends any fullscreen session of id and forgets its controller.
func (r *Registry) Remove(ctx context.Context, id entity.WindowID) error {
	r.mu.Lock()
	c, ok := r.controllers[id]
	delete(r.controllers, id)
	r.mu.Unlock()

	if !ok {
		return nil
	}
	return c.Leave(logging.WithWindowID(ctx, string(id)))
}

// ForEach calls fn for every registered window in ID order.
func (r *Registry) ForEach(fn func(id entity.WindowID, c *Controller)) {
	r.mu.RLock()
	ids := make([]entity.WindowID, 0, len(r.controllers))
	for id := range r.controllers {
		ids = append(ids, id)
	}
	controllers := make(map[entity.WindowID]*Controller, len(r.controllers))
	for id, c := range r.controllers {
		controllers[id] = c
	}
	r.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		fn(id, controllers[id])
	}
}

// LeaveAll ends every fullscreen session, releasing all sleep tokens.
func (r *Registry) LeaveAll(ctx context.Context) error {
	var errs []error
	r.ForEach(func(id entity.WindowID, c *Controller) {
		if err := c.Leave(logging.WithWindowID(ctx, string(id))); err != nil {
			errs = append(errs, fmt.Errorf("window %s: %w", id, err))
		}
	})
	return errors.Join(errs...)
}
