package fullscreen

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/glide/internal/testutil/fakeui"
	"github.com/bnema/glide/internal/ui/autohide"
	"github.com/bnema/glide/internal/ui/mainloop"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Hide callbacks arrive on the clock's goroutine here, as they would from a
// multi-threaded toolkit binding.
func TestAutohideWithClockScheduler(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	surface := fakeui.NewSurface(800, 600, 10, 10)
	toolbar := fakeui.NewToolbar()
	ctrl := NewController(surface, toolbar, newCountingInhibitor(),
		mainloop.NewClockScheduler(clock, mainloop.Immediate), linuxOptions())

	require.NoError(t, ctrl.Enter(ctx))
	surface.Move()
	assert.True(t, toolbar.IsVisible())

	clock.Advance(autohide.DefaultDelay)
	require.Eventually(t, func() bool {
		return !toolbar.IsVisible() && !surface.CursorVisible()
	}, time.Second, 5*time.Millisecond)

	surface.Move()
	require.NoError(t, ctrl.Leave(ctx))
	clock.Advance(autohide.DefaultDelay)

	// Give the stale callback time to run; it must not hide anything.
	time.Sleep(20 * time.Millisecond)
	assert.True(t, toolbar.IsVisible())
	assert.True(t, surface.CursorVisible())
}
