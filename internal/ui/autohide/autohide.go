// Package autohide reveals the toolbar and cursor on pointer motion while a
// window is fullscreen and hides them again after a quiet period.
package autohide

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/glide/internal/application/port"
	"github.com/bnema/glide/internal/logging"
	"github.com/bnema/glide/internal/syncutil"
)

// DefaultDelay is how long the toolbar stays visible after the last motion.
const DefaultDelay = 5 * time.Second

// Config wires a Timer to its window.
type Config struct {
	Surface   port.WindowSurface
	Toolbar   port.Toolbar
	Scheduler port.Scheduler
	Delay     time.Duration

	// IsFullscreen is probed when a hide callback fires.
	IsFullscreen func() bool
	// SetCursor shows or hides the pointer. Defaults to Surface.SetCursorVisible.
	SetCursor func(ctx context.Context, visible bool)
}

// Timer owns the pointer-motion observer of one window.
//
// Every motion schedules its own hide callback; none is ever cancelled.
// A callback only hides when the window is still fullscreen, the timer is
// still armed and no motion happened after the one that scheduled it.
type Timer struct {
	surface      port.WindowSurface
	toolbar      port.Toolbar
	scheduler    port.Scheduler
	isFullscreen func() bool
	setCursor    func(ctx context.Context, visible bool)

	mu         syncutil.Mutex
	delay      time.Duration
	armed      bool
	handle     port.MotionHandle
	generation uint64
}

// New creates a disarmed Timer.
func New(cfg Config) *Timer {
	t := &Timer{
		surface:      cfg.Surface,
		toolbar:      cfg.Toolbar,
		scheduler:    cfg.Scheduler,
		isFullscreen: cfg.IsFullscreen,
		setCursor:    cfg.SetCursor,
		delay:        cfg.Delay,
	}
	if t.delay <= 0 {
		t.delay = DefaultDelay
	}
	if t.isFullscreen == nil {
		t.isFullscreen = cfg.Surface.IsFullscreen
	}
	if t.setCursor == nil {
		t.setCursor = func(ctx context.Context, visible bool) {
			if err := t.surface.SetCursorVisible(visible); err != nil {
				logging.FromContext(ctx).Debug().Err(err).Bool("visible", visible).Msg("autohide: cursor change skipped")
			}
		}
	}
	return t
}

// Arm registers the motion observer. Arming an armed timer does nothing.
func (t *Timer) Arm(ctx context.Context) error {
	log := logging.FromContext(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.armed {
		return nil
	}

	handle, err := t.surface.ConnectMotion(func() { t.HandleMotion(ctx) })
	if err != nil {
		return fmt.Errorf("connect motion observer: %w", err)
	}

	t.armed = true
	t.handle = handle
	t.generation++
	log.Debug().Uint64("handle", uint64(handle)).Msg("autohide armed")
	return nil
}

// Disarm removes the motion observer. Disarming a disarmed timer does nothing.
// Hide callbacks still pending become no-ops.
func (t *Timer) Disarm(ctx context.Context) {
	log := logging.FromContext(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.armed {
		return
	}

	t.surface.DisconnectMotion(t.handle)
	log.Debug().Uint64("handle", uint64(t.handle)).Msg("autohide disarmed")
	t.armed = false
	t.handle = 0
	t.generation++
}

// IsArmed reports whether the motion observer is registered.
func (t *Timer) IsArmed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.armed
}

// SetDelay changes the quiet period for motions that happen afterwards.
func (t *Timer) SetDelay(d time.Duration) {
	if d <= 0 {
		return
	}
	t.mu.Lock()
	t.delay = d
	t.mu.Unlock()
}

// Delay returns the current quiet period.
func (t *Timer) Delay() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delay
}

// HandleMotion reveals toolbar and cursor and schedules a hide.
// It is a no-op while disarmed.
func (t *Timer) HandleMotion(ctx context.Context) {
	t.mu.Lock()
	if !t.armed {
		t.mu.Unlock()
		return
	}
	t.generation++
	gen := t.generation
	delay := t.delay

	t.toolbar.SetVisible(true)
	t.setCursor(ctx, true)
	t.mu.Unlock()

	t.scheduler.ScheduleOnce(delay, func() {
		t.hideIfQuiet(ctx, gen)
	})
}

func (t *Timer) hideIfQuiet(ctx context.Context, gen uint64) {
	log := logging.FromContext(ctx)

	// Probe before taking t.mu: the probe may lock the owning controller.
	if !t.isFullscreen() {
		log.Trace().Msg("autohide: window left fullscreen, hide skipped")
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.armed || gen != t.generation {
		return
	}

	t.toolbar.SetVisible(false)
	t.setCursor(ctx, false)
	log.Trace().Msg("autohide: toolbar and cursor hidden")
}
