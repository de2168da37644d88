// Package mainloop schedules work back onto the UI thread.
package mainloop

import (
	"time"

	"github.com/bnema/glide/internal/application/port"
	"github.com/jonboulle/clockwork"
)

var _ port.Scheduler = (*ClockScheduler)(nil)

// ClockScheduler runs single-shot callbacks after a delay measured on a
// clockwork.Clock, then hands them to post so they execute on the UI loop.
type ClockScheduler struct {
	clock clockwork.Clock
	post  func(func())
}

// NewClockScheduler creates a scheduler. A nil clock means wall time.
func NewClockScheduler(clock clockwork.Clock, post func(func())) *ClockScheduler {
	if post == nil {
		panic("mainloop.NewClockScheduler: post function cannot be nil")
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ClockScheduler{clock: clock, post: post}
}

// ScheduleOnce posts fn to the UI loop once delay has elapsed.
// There is no cancellation; fn must re-validate state when it runs.
func (s *ClockScheduler) ScheduleOnce(delay time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	s.clock.AfterFunc(delay, func() {
		s.post(fn)
	})
}

// Immediate is a post function that runs fn on the calling goroutine.
// Use it where the caller already serializes access.
func Immediate(fn func()) {
	fn()
}
