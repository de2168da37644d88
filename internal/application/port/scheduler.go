package port

import "time"

// Scheduler runs single-shot callbacks on the UI loop after a delay.
// Scheduled callbacks are never cancelled; they must re-check state when
// they fire.
type Scheduler interface {
	ScheduleOnce(delay time.Duration, fn func())
}
