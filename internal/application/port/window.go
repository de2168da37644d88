package port

import (
	"context"
	"errors"

	"github.com/bnema/glide/internal/domain/entity"
)

// ErrNotRealized is returned by surface operations that need a native
// window handle before the toolkit has created one. It is recoverable:
// retry once the surface reports it is realized.
var ErrNotRealized = errors.New("window surface not realized")

// MotionHandle identifies a registered pointer-motion observer.
type MotionHandle uint64

// GeometrySource reports a window's current placement.
type GeometrySource interface {
	Size() (width, height int)
	// Position returns the window origin, or 0,0 where the windowing
	// system does not expose placement.
	Position() (x, y int)
}

// WindowSurface is the toolkit window the player draws into.
type WindowSurface interface {
	GeometrySource

	// SetFullscreen asks the platform to enter or leave fullscreen.
	SetFullscreen(ctx context.Context, fullscreen bool) error
	IsFullscreen() bool

	// SetCursorVisible shows the default pointer or a blank cursor.
	// Returns ErrNotRealized when no native handle exists yet.
	SetCursorVisible(visible bool) error
	SetMenuBarVisible(visible bool)

	// ConnectMotion registers fn to run on every pointer motion over the window.
	ConnectMotion(fn func()) (MotionHandle, error)
	// DisconnectMotion removes an observer. Unknown handles are ignored.
	DisconnectMotion(handle MotionHandle)
}

// GeometryRestorer is implemented by surfaces that can put a window back
// to a previous size and position after leaving fullscreen.
type GeometryRestorer interface {
	RestoreGeometry(geometry entity.Geometry)
}

// Toolbar is the playback controls region.
type Toolbar interface {
	SetVisible(visible bool)
	IsVisible() bool
}
