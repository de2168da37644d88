// Package fullscreen drives a player window between windowed and
// fullscreen mode and owns the resources a fullscreen session holds:
// the display-sleep token, the prior geometry and the autohide observer.
package fullscreen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/glide/internal/application/port"
	"github.com/bnema/glide/internal/application/usecase"
	"github.com/bnema/glide/internal/domain/entity"
	"github.com/bnema/glide/internal/infrastructure/platform"
	"github.com/bnema/glide/internal/logging"
	"github.com/bnema/glide/internal/syncutil"
	"github.com/bnema/glide/internal/ui/autohide"
)

// DefaultInhibitReason is shown by the platform while sleep is inhibited.
const DefaultInhibitReason = "Glide full-screen"

// ErrEnterFailed wraps every failed Enter. The window is left windowed and
// nothing acquired during the attempt is kept.
var ErrEnterFailed = errors.New("enter fullscreen failed")

// Options tune a Controller.
type Options struct {
	// InhibitSleep acquires a display-sleep token for each session.
	InhibitSleep  bool
	InhibitReason string
	// RestoreGeometry hands the prior geometry back to surfaces that
	// implement port.GeometryRestorer when a session ends.
	RestoreGeometry bool
	AutohideDelay   time.Duration
	Capabilities    platform.Capabilities
}

// DefaultOptions returns options for the running host.
func DefaultOptions() Options {
	return Options{
		InhibitSleep:    true,
		InhibitReason:   DefaultInhibitReason,
		RestoreGeometry: true,
		AutohideDelay:   autohide.DefaultDelay,
		Capabilities:    platform.Detect(),
	}
}

// Controller is the windowed/fullscreen state machine of one window.
// Enter and Leave may be called from any goroutine; transitions are
// serialized.
type Controller struct {
	surface  port.WindowSurface
	toolbar  port.Toolbar
	sleep    *usecase.SleepInhibitUseCase
	geometry *usecase.GeometryMemory
	autohide *autohide.Timer
	opts     Options

	mu   syncutil.Mutex
	mode entity.Mode

	// Cursor changes are deferred until the surface is realized.
	cursorMu      syncutil.Mutex
	cursorPending bool
	cursorWanted  bool
}

// NewController wires a controller to a window, its toolbar, the platform
// sleep inhibitor and the UI-loop scheduler. The window starts windowed.
func NewController(
	surface port.WindowSurface,
	toolbar port.Toolbar,
	inhibitor port.SleepInhibitor,
	scheduler port.Scheduler,
	opts Options,
) *Controller {
	if opts.InhibitReason == "" {
		opts.InhibitReason = DefaultInhibitReason
	}

	c := &Controller{
		surface:  surface,
		toolbar:  toolbar,
		sleep:    usecase.NewSleepInhibitUseCase(inhibitor),
		geometry: usecase.NewGeometryMemory(),
		opts:     opts,
		mode:     entity.ModeWindowed,
	}
	c.autohide = autohide.New(autohide.Config{
		Surface:      surface,
		Toolbar:      toolbar,
		Scheduler:    scheduler,
		Delay:        opts.AutohideDelay,
		IsFullscreen: c.IsFullscreen,
		SetCursor:    c.setCursor,
	})
	return c
}

// Enter switches the window to fullscreen. Calling it while fullscreen
// does nothing. On failure every step already taken is undone and the
// returned error wraps ErrEnterFailed.
func (c *Controller) Enter(ctx context.Context) error {
	log := logging.FromContext(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == entity.ModeFullscreen {
		log.Debug().Msg("fullscreen: already fullscreen")
		return nil
	}

	if c.opts.InhibitSleep {
		if err := c.sleep.Acquire(ctx, c.opts.InhibitReason); err != nil {
			log.Warn().Err(err).Msg("fullscreen: sleep inhibition refused")
			return fmt.Errorf("%w: %w", ErrEnterFailed, err)
		}
	}

	prior := c.geometry.Snapshot(c.surface)
	c.surface.SetMenuBarVisible(false)
	c.toolbar.SetVisible(false)

	if err := c.surface.SetFullscreen(ctx, true); err != nil {
		log.Warn().Err(err).Msg("fullscreen: platform refused, rolling back")
		c.rollbackEnter(ctx)
		return fmt.Errorf("%w: %w", ErrEnterFailed, err)
	}

	c.mode = entity.ModeFullscreen
	c.setCursor(ctx, false)

	if c.opts.Capabilities.MotionAutohide {
		if err := c.autohide.Arm(ctx); err != nil {
			log.Warn().Err(err).Msg("fullscreen: autohide unavailable for this session")
		}
	}

	log.Info().
		Str("prior_geometry", prior.String()).
		Bool("sleep_inhibited", c.sleep.IsLive()).
		Bool("autohide", c.autohide.IsArmed()).
		Msg("fullscreen: entered")
	return nil
}

// rollbackEnter undoes the steps Enter took before the platform request.
// Must be called with c.mu held.
func (c *Controller) rollbackEnter(ctx context.Context) {
	log := logging.FromContext(ctx)

	c.toolbar.SetVisible(true)
	c.surface.SetMenuBarVisible(true)
	c.geometry.Clear()
	if err := c.sleep.Release(ctx); err != nil {
		log.Warn().Err(err).Msg("fullscreen: rollback could not release sleep inhibition")
	}
}

// Leave switches the window back to windowed mode. Calling it while
// windowed does nothing. The controller always ends windowed with toolbar,
// menu bar and cursor shown; platform errors met on the way are returned.
func (c *Controller) Leave(ctx context.Context) error {
	log := logging.FromContext(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != entity.ModeFullscreen {
		return nil
	}

	var errs []error
	if err := c.sleep.Release(ctx); err != nil {
		errs = append(errs, err)
	}
	c.autohide.Disarm(ctx)
	if err := c.surface.SetFullscreen(ctx, false); err != nil {
		log.Warn().Err(err).Msg("fullscreen: platform refused to leave fullscreen")
		errs = append(errs, fmt.Errorf("leave fullscreen: %w", err))
	}

	c.mode = entity.ModeWindowed
	c.toolbar.SetVisible(true)
	c.surface.SetMenuBarVisible(true)
	c.setCursor(ctx, true)

	c.restoreGeometry(ctx)
	c.geometry.Clear()

	log.Info().Msg("fullscreen: left")
	return errors.Join(errs...)
}

// Must be called with c.mu held.
func (c *Controller) restoreGeometry(ctx context.Context) {
	if !c.opts.RestoreGeometry {
		return
	}
	prior, ok := c.geometry.Read()
	if !ok || prior.IsZero() {
		return
	}
	restorer, ok := c.surface.(port.GeometryRestorer)
	if !ok {
		return
	}
	restorer.RestoreGeometry(prior)
	logging.FromContext(ctx).Debug().Str("geometry", prior.String()).Msg("fullscreen: geometry restored")
}

// Toggle enters fullscreen when windowed and leaves it otherwise.
func (c *Controller) Toggle(ctx context.Context) error {
	if c.IsFullscreen() {
		return c.Leave(ctx)
	}
	return c.Enter(ctx)
}

// OnRealized applies a cursor change deferred because the surface had no
// native handle yet. Wire it to the toolkit's realize notification.
func (c *Controller) OnRealized(ctx context.Context) {
	c.cursorMu.Lock()
	pending, wanted := c.cursorPending, c.cursorWanted
	c.cursorMu.Unlock()

	if pending {
		c.setCursor(ctx, wanted)
	}
}

func (c *Controller) setCursor(ctx context.Context, visible bool) {
	log := logging.FromContext(ctx)

	c.cursorMu.Lock()
	defer c.cursorMu.Unlock()

	err := c.surface.SetCursorVisible(visible)
	switch {
	case err == nil:
		c.cursorPending = false
	case errors.Is(err, port.ErrNotRealized):
		c.cursorPending = true
		c.cursorWanted = visible
		log.Debug().Bool("visible", visible).Msg("fullscreen: cursor change deferred until realize")
	default:
		log.Warn().Err(err).Bool("visible", visible).Msg("fullscreen: cursor change failed")
	}
}

// Mode returns the current mode.
func (c *Controller) Mode() entity.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// IsFullscreen reports whether a fullscreen session is active.
func (c *Controller) IsFullscreen() bool {
	return c.Mode() == entity.ModeFullscreen
}

// PriorGeometry returns the geometry captured when the current session
// started. ok is false while windowed.
func (c *Controller) PriorGeometry() (entity.Geometry, bool) {
	return c.geometry.Read()
}

// SleepInhibited reports whether a display-sleep token is held.
func (c *Controller) SleepInhibited() bool {
	return c.sleep.IsLive()
}

// OutstandingInhibitions is the number of tokens acquired and not yet released.
func (c *Controller) OutstandingInhibitions() int {
	return c.sleep.Outstanding()
}

// AutohideArmed reports whether the motion observer is registered.
func (c *Controller) AutohideArmed() bool {
	return c.autohide.IsArmed()
}

// SetAutohideDelay changes the autohide quiet period.
func (c *Controller) SetAutohideDelay(d time.Duration) {
	c.autohide.SetDelay(d)
}

// AutohideDelay returns the current autohide quiet period.
func (c *Controller) AutohideDelay() time.Duration {
	return c.autohide.Delay()
}
