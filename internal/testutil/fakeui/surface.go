// Package fakeui provides in-memory stand-ins for the toolkit window,
// toolbar and timer so fullscreen behaviour can be tested without GTK.
package fakeui

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bnema/glide/internal/application/port"
	"github.com/bnema/glide/internal/domain/entity"
)

var (
	_ port.WindowSurface    = (*Surface)(nil)
	_ port.GeometryRestorer = (*Surface)(nil)
	_ port.Toolbar          = (*Toolbar)(nil)
	_ port.Scheduler        = (*Scheduler)(nil)
)

// Surface records every call the fullscreen core makes on a window.
type Surface struct {
	mu sync.Mutex

	Width, Height int
	X, Y          int

	fullscreen     bool
	cursorVisible  bool
	menuBarVisible bool
	realized       bool

	// FullscreenErr, when set, makes SetFullscreen(true) fail.
	FullscreenErr error
	// LeaveErr, when set, makes SetFullscreen(false) fail.
	LeaveErr error
	// ConnectErr, when set, makes ConnectMotion fail.
	ConnectErr error

	observers  map[port.MotionHandle]func()
	nextHandle port.MotionHandle

	ConnectCalls    int
	DisconnectCalls int
	Restored        []entity.Geometry
}

// NewSurface returns a realized windowed surface of the given geometry.
func NewSurface(width, height, x, y int) *Surface {
	return &Surface{
		Width:          width,
		Height:         height,
		X:              x,
		Y:              y,
		cursorVisible:  true,
		menuBarVisible: true,
		realized:       true,
		observers:      make(map[port.MotionHandle]func()),
	}
}

// NewUnrealizedSurface returns a surface with no native handle yet.
func NewUnrealizedSurface(width, height int) *Surface {
	s := NewSurface(width, height, 0, 0)
	s.realized = false
	return s
}

func (s *Surface) SetFullscreen(_ context.Context, fullscreen bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fullscreen && s.FullscreenErr != nil {
		return s.FullscreenErr
	}
	if !fullscreen && s.LeaveErr != nil {
		return s.LeaveErr
	}
	s.fullscreen = fullscreen
	return nil
}

func (s *Surface) IsFullscreen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fullscreen
}

func (s *Surface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Width, s.Height
}

func (s *Surface) Position() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.X, s.Y
}

func (s *Surface) SetCursorVisible(visible bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.realized {
		return port.ErrNotRealized
	}
	s.cursorVisible = visible
	return nil
}

func (s *Surface) SetMenuBarVisible(visible bool) {
	s.mu.Lock()
	s.menuBarVisible = visible
	s.mu.Unlock()
}

func (s *Surface) ConnectMotion(fn func()) (port.MotionHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ConnectCalls++
	if s.ConnectErr != nil {
		return 0, s.ConnectErr
	}
	s.nextHandle++
	s.observers[s.nextHandle] = fn
	return s.nextHandle, nil
}

func (s *Surface) DisconnectMotion(handle port.MotionHandle) {
	s.mu.Lock()
	s.DisconnectCalls++
	delete(s.observers, handle)
	s.mu.Unlock()
}

func (s *Surface) RestoreGeometry(g entity.Geometry) {
	s.mu.Lock()
	s.Restored = append(s.Restored, g)
	s.mu.Unlock()
}

// Realize marks the native handle as created.
func (s *Surface) Realize() {
	s.mu.Lock()
	s.realized = true
	s.mu.Unlock()
}

// Move simulates pointer motion over the window.
func (s *Surface) Move() {
	s.mu.Lock()
	observers := make([]func(), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}

// Observers returns how many motion observers are registered.
func (s *Surface) Observers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

func (s *Surface) CursorVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursorVisible
}

func (s *Surface) MenuBarVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.menuBarVisible
}

// Toolbar is a visibility flag.
type Toolbar struct {
	mu      sync.Mutex
	visible bool
}

// NewToolbar returns a visible toolbar.
func NewToolbar() *Toolbar {
	return &Toolbar{visible: true}
}

func (t *Toolbar) SetVisible(visible bool) {
	t.mu.Lock()
	t.visible = visible
	t.mu.Unlock()
}

func (t *Toolbar) IsVisible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

type scheduled struct {
	at  time.Duration
	seq int
	fn  func()
}

// Scheduler is a virtual-time port.Scheduler. Callbacks run synchronously
// from Advance, in deadline order.
type Scheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []scheduled
}

// NewScheduler returns a scheduler at virtual time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) ScheduleOnce(delay time.Duration, fn func()) {
	s.mu.Lock()
	s.seq++
	s.pending = append(s.pending, scheduled{at: s.now + delay, seq: s.seq, fn: fn})
	s.mu.Unlock()
}

// Advance moves virtual time forward and runs every callback now due.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	s.mu.Unlock()

	for {
		fn, ok := s.popDue()
		if !ok {
			return
		}
		fn()
	}
}

func (s *Scheduler) popDue() (func(), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].at == s.pending[j].at {
			return s.pending[i].seq < s.pending[j].seq
		}
		return s.pending[i].at < s.pending[j].at
	})
	if len(s.pending) == 0 || s.pending[0].at > s.now {
		return nil, false
	}
	next := s.pending[0]
	s.pending = s.pending[1:]
	return next.fn, true
}

// Pending returns how many callbacks have not fired yet.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// SetCursorVisibleForTest sets cursor state without the realize check.
func (s *Surface) SetCursorVisibleForTest(visible bool) {
	s.mu.Lock()
	s.cursorVisible = visible
	s.mu.Unlock()
}
