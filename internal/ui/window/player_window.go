// Package window provides the GTK player window.
package window

import (
	"context"

	"github.com/bnema/glide/internal/application/port"
	"github.com/bnema/glide/internal/domain/entity"
	"github.com/bnema/glide/internal/infrastructure/idle"
	"github.com/bnema/glide/internal/logging"
	"github.com/bnema/glide/internal/syncutil"
	"github.com/jwijenbergh/puregotk/v4/gio"
	"github.com/jwijenbergh/puregotk/v4/gtk"
	"github.com/rs/zerolog"
)

const windowTitle = "Glide"

// blankCursorName is the CSS cursor name GTK maps to an invisible pointer.
const blankCursorName = "none"

var (
	_ port.WindowSurface    = (*PlayerWindow)(nil)
	_ port.GeometryRestorer = (*PlayerWindow)(nil)
	_ idle.CookieSource     = (*PlayerWindow)(nil)
)

const sleepInhibitFlags = gtk.ApplicationInhibitIdleValue | gtk.ApplicationInhibitSuspendValue

type motionObserver struct {
	ctrl *gtk.EventControllerMotion
	cb   func(gtk.EventControllerMotion, float64, float64)
}

// PlayerWindow is the player's top-level window: a menu bar, the video
// area and the toolbar stacked vertically.
type PlayerWindow struct {
	app       *gtk.Application
	window    *gtk.ApplicationWindow
	rootBox   *gtk.Box
	menuBar   *gtk.PopoverMenuBar
	videoArea *gtk.Box
	toolbar   *Toolbar

	mu         syncutil.Mutex
	observers  map[port.MotionHandle]*motionObserver
	nextHandle port.MotionHandle

	// Signal callbacks are retained to prevent GC.
	realizeCbs []*func(gtk.Widget)

	logger zerolog.Logger
}

// Size is the initial window size.
type Size struct {
	Width  int
	Height int
}

// New creates the player window. menu becomes the menu bar model.
func New(ctx context.Context, app *gtk.Application, size Size, menu *gio.Menu, toolbar *Toolbar) (*PlayerWindow, error) {
	log := logging.FromContext(ctx)

	pw := &PlayerWindow{
		app:       app,
		toolbar:   toolbar,
		observers: make(map[port.MotionHandle]*motionObserver),
		logger:    log.With().Str("component", "player-window").Logger(),
	}

	pw.window = gtk.NewApplicationWindow(app)
	if pw.window == nil {
		return nil, ErrWindowCreationFailed
	}

	title := windowTitle
	pw.window.SetTitle(&title)
	pw.window.SetDefaultSize(size.Width, size.Height)

	pw.rootBox = gtk.NewBox(gtk.OrientationVerticalValue, 0)
	if pw.rootBox == nil {
		pw.window.Unref()
		return nil, ErrWidgetCreationFailed("rootBox")
	}
	pw.rootBox.SetHexpand(true)
	pw.rootBox.SetVexpand(true)

	pw.menuBar = gtk.NewPopoverMenuBarFromModel(&menu.MenuModel)
	if pw.menuBar == nil {
		pw.rootBox.Unref()
		pw.window.Unref()
		return nil, ErrWidgetCreationFailed("menuBar")
	}

	pw.videoArea = gtk.NewBox(gtk.OrientationVerticalValue, 0)
	if pw.videoArea == nil {
		pw.menuBar.Unref()
		pw.rootBox.Unref()
		pw.window.Unref()
		return nil, ErrWidgetCreationFailed("videoArea")
	}
	pw.videoArea.SetHexpand(true)
	pw.videoArea.SetVexpand(true)
	pw.videoArea.AddCssClass("video-area")

	pw.rootBox.Append(&pw.menuBar.Widget)
	pw.rootBox.Append(&pw.videoArea.Widget)
	if toolbar != nil {
		pw.rootBox.Append(toolbar.Widget())
	}
	pw.window.SetChild(&pw.rootBox.Widget)

	pw.logger.Debug().Int("width", size.Width).Int("height", size.Height).Msg("player window created")
	return pw, nil
}

// Show makes the window visible.
func (pw *PlayerWindow) Show() {
	pw.window.Present()
}

// Close closes the window.
func (pw *PlayerWindow) Close() {
	pw.window.Close()
}

// Window returns the underlying GTK window.
func (pw *PlayerWindow) Window() *gtk.ApplicationWindow {
	return pw.window
}

// Toolbar returns the playback toolbar.
func (pw *PlayerWindow) Toolbar() *Toolbar {
	return pw.toolbar
}

// ConnectRealize runs fn once the native surface exists.
func (pw *PlayerWindow) ConnectRealize(fn func()) {
	cb := func(_ gtk.Widget) {
		fn()
	}
	pw.mu.Lock()
	pw.realizeCbs = append(pw.realizeCbs, &cb)
	pw.mu.Unlock()

	pw.window.ConnectRealize(&cb)
}

// SetFullscreen asks the compositor to enter or leave fullscreen. GTK4
// applies the request asynchronously and reports no failure.
func (pw *PlayerWindow) SetFullscreen(_ context.Context, fullscreen bool) error {
	if fullscreen {
		pw.window.Fullscreen()
	} else {
		pw.window.Unfullscreen()
	}
	return nil
}

// IsFullscreen reports the compositor-confirmed state.
func (pw *PlayerWindow) IsFullscreen() bool {
	return pw.window.IsFullscreen()
}

// Size returns the allocated size, or the default size before the first
// allocation.
func (pw *PlayerWindow) Size() (width, height int) {
	width, height = pw.window.GetWidth(), pw.window.GetHeight()
	if width > 0 && height > 0 {
		return width, height
	}
	pw.window.GetDefaultSize(&width, &height)
	return width, height
}

// Position always returns 0,0: GTK4 does not expose window placement.
func (pw *PlayerWindow) Position() (x, y int) {
	return 0, 0
}

// RestoreGeometry puts the window back to a previous size. The position
// is left to the compositor.
func (pw *PlayerWindow) RestoreGeometry(geometry entity.Geometry) {
	pw.window.SetDefaultSize(geometry.Width, geometry.Height)
}

// SetCursorVisible shows the default pointer or a blank one over the window.
func (pw *PlayerWindow) SetCursorVisible(visible bool) error {
	if !pw.window.GetRealized() {
		return port.ErrNotRealized
	}
	if visible {
		pw.window.SetCursorFromName(nil)
		return nil
	}
	name := blankCursorName
	pw.window.SetCursorFromName(&name)
	return nil
}

// SetMenuBarVisible shows or hides the menu bar.
func (pw *PlayerWindow) SetMenuBarVisible(visible bool) {
	pw.menuBar.SetVisible(visible)
}

// ConnectMotion attaches a motion controller that calls fn on every
// pointer motion over the window.
func (pw *PlayerWindow) ConnectMotion(fn func()) (port.MotionHandle, error) {
	ctrl := gtk.NewEventControllerMotion()
	if ctrl == nil {
		return 0, ErrWidgetCreationFailed("motionController")
	}

	obs := &motionObserver{
		ctrl: ctrl,
		cb: func(_ gtk.EventControllerMotion, _ float64, _ float64) {
			fn()
		},
	}
	ctrl.ConnectMotion(&obs.cb)
	pw.window.AddController(&ctrl.EventController)

	pw.mu.Lock()
	pw.nextHandle++
	handle := pw.nextHandle
	pw.observers[handle] = obs
	pw.mu.Unlock()

	pw.logger.Debug().Uint64("handle", uint64(handle)).Msg("motion observer attached")
	return handle, nil
}

// DisconnectMotion removes a motion controller. Unknown handles are ignored.
func (pw *PlayerWindow) DisconnectMotion(handle port.MotionHandle) {
	pw.mu.Lock()
	obs, ok := pw.observers[handle]
	delete(pw.observers, handle)
	pw.mu.Unlock()

	if !ok {
		return
	}
	pw.window.RemoveController(&obs.ctrl.EventController)
	pw.logger.Debug().Uint64("handle", uint64(handle)).Msg("motion observer detached")
}

// InhibitSleep asks the session to keep idle and suspend off while this
// window is shown. Returns 0 when the session refuses.
func (pw *PlayerWindow) InhibitSleep(reason string) uint {
	if pw.app == nil || pw.window == nil {
		return 0
	}
	return pw.app.Inhibit(&pw.window.Window, sleepInhibitFlags, reason)
}

// UninhibitSleep drops a cookie returned by InhibitSleep.
func (pw *PlayerWindow) UninhibitSleep(cookie uint) {
	if pw.app == nil {
		return
	}
	pw.app.Uninhibit(cookie)
}

// Destroy cleans up window resources.
func (pw *PlayerWindow) Destroy() {
	pw.mu.Lock()
	for handle, obs := range pw.observers {
		pw.window.RemoveController(&obs.ctrl.EventController)
		delete(pw.observers, handle)
	}
	pw.mu.Unlock()

	if pw.window != nil {
		pw.window.Destroy()
		pw.window = nil
	}
}
