package fullscreen

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bnema/glide/internal/application/port/mocks"
	"github.com/bnema/glide/internal/domain/entity"
	"github.com/bnema/glide/internal/infrastructure/platform"
	"github.com/bnema/glide/internal/testutil/fakeui"
	"github.com/bnema/glide/internal/ui/autohide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// countingInhibitor hands out numbered tokens and tracks balance.
type countingInhibitor struct {
	next      int
	live      map[entity.SleepToken]bool
	inhibits  int
	releases  int
	inhibitEr error
}

func newCountingInhibitor() *countingInhibitor {
	return &countingInhibitor{live: make(map[entity.SleepToken]bool)}
}

func (i *countingInhibitor) Inhibit(_ context.Context, _ string) (entity.SleepToken, error) {
	if i.inhibitEr != nil {
		return "", i.inhibitEr
	}
	i.next++
	i.inhibits++
	token := entity.SleepToken(fmt.Sprintf("token-%d", i.next))
	i.live[token] = true
	return token, nil
}

func (i *countingInhibitor) Uninhibit(_ context.Context, token entity.SleepToken) error {
	if !i.live[token] {
		return fmt.Errorf("unknown token %q", token)
	}
	delete(i.live, token)
	i.releases++
	return nil
}

func (i *countingInhibitor) Close() error { return nil }

type harness struct {
	surface   *fakeui.Surface
	toolbar   *fakeui.Toolbar
	scheduler *fakeui.Scheduler
	inhibitor *countingInhibitor
	ctrl      *Controller
}

func linuxOptions() Options {
	return Options{
		InhibitSleep:    true,
		InhibitReason:   DefaultInhibitReason,
		RestoreGeometry: true,
		AutohideDelay:   autohide.DefaultDelay,
		Capabilities:    platform.ForOS("linux"),
	}
}

func newHarness(opts Options) *harness {
	h := &harness{
		surface:   fakeui.NewSurface(800, 600, 10, 10),
		toolbar:   fakeui.NewToolbar(),
		scheduler: fakeui.NewScheduler(),
		inhibitor: newCountingInhibitor(),
	}
	h.ctrl = NewController(h.surface, h.toolbar, h.inhibitor, h.scheduler, opts)
	return h
}

func (h *harness) assertWindowedUI(t *testing.T) {
	t.Helper()
	assert.Equal(t, entity.ModeWindowed, h.ctrl.Mode())
	assert.False(t, h.surface.IsFullscreen())
	assert.True(t, h.toolbar.IsVisible(), "toolbar visible")
	assert.True(t, h.surface.CursorVisible(), "cursor visible")
	assert.True(t, h.surface.MenuBarVisible(), "menu bar visible")
}

func TestFullSessionScenario(t *testing.T) {
	ctx := context.Background()
	h := newHarness(linuxOptions())

	require.NoError(t, h.ctrl.Enter(ctx))

	prior, ok := h.ctrl.PriorGeometry()
	require.True(t, ok)
	assert.Equal(t, entity.Geometry{Width: 800, Height: 600, X: 10, Y: 10}, prior)
	assert.True(t, h.ctrl.SleepInhibited())
	assert.True(t, h.surface.IsFullscreen())
	assert.False(t, h.toolbar.IsVisible())
	assert.False(t, h.surface.CursorVisible())
	assert.False(t, h.surface.MenuBarVisible())

	h.surface.Move()
	assert.True(t, h.toolbar.IsVisible())
	assert.True(t, h.surface.CursorVisible())

	h.scheduler.Advance(autohide.DefaultDelay)
	assert.False(t, h.toolbar.IsVisible())
	assert.False(t, h.surface.CursorVisible())

	require.NoError(t, h.ctrl.Leave(ctx))
	assert.False(t, h.ctrl.SleepInhibited())
	h.assertWindowedUI(t)

	_, ok = h.ctrl.PriorGeometry()
	assert.False(t, ok, "geometry must not outlive the session")
	assert.Equal(t, []entity.Geometry{{Width: 800, Height: 600, X: 10, Y: 10}}, h.surface.Restored)
}

func TestTokenBalanceOverSequences(t *testing.T) {
	tests := []struct {
		name  string
		steps string // e = enter, l = leave
	}{
		{"enter leave", "el"},
		{"double enter", "eel"},
		{"double leave", "ell"},
		{"leave first", "lel"},
		{"many sessions", "elelelel"},
		{"unbalanced tail", "elee"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			h := newHarness(linuxOptions())
			fullscreen := false

			for _, step := range tt.steps {
				switch step {
				case 'e':
					require.NoError(t, h.ctrl.Enter(ctx))
					fullscreen = true
				case 'l':
					require.NoError(t, h.ctrl.Leave(ctx))
					fullscreen = false
				}
				outstanding := h.ctrl.OutstandingInhibitions()
				assert.GreaterOrEqual(t, outstanding, 0)
				assert.LessOrEqual(t, outstanding, 1)
				assert.Equal(t, fullscreen, h.ctrl.SleepInhibited())
				assert.Len(t, h.inhibitor.live, outstanding)
			}
		})
	}
}

func TestLeaveWhileWindowedIsNoop(t *testing.T) {
	ctx := context.Background()
	h := newHarness(linuxOptions())
	h.toolbar.SetVisible(true)

	require.NoError(t, h.ctrl.Leave(ctx))

	assert.Equal(t, 0, h.inhibitor.releases)
	assert.Equal(t, 0, h.surface.DisconnectCalls)
	assert.Empty(t, h.surface.Restored)
	h.assertWindowedUI(t)
}

func TestLeaveWhileWindowedDoesNotTouchInhibitor(t *testing.T) {
	inhibitor := mocks.NewMockSleepInhibitor(t)
	ctrl := NewController(fakeui.NewSurface(640, 480, 0, 0), fakeui.NewToolbar(), inhibitor, fakeui.NewScheduler(), linuxOptions())

	require.NoError(t, ctrl.Leave(context.Background()))

	inhibitor.AssertNotCalled(t, "Uninhibit", mock.Anything, mock.Anything)
}

func TestEnterLeaveRestoresVisibilityRegardlessOfMotion(t *testing.T) {
	for _, moves := range []int{0, 1, 7} {
		t.Run(fmt.Sprintf("%d moves", moves), func(t *testing.T) {
			ctx := context.Background()
			h := newHarness(linuxOptions())

			require.NoError(t, h.ctrl.Enter(ctx))
			for i := 0; i < moves; i++ {
				h.surface.Move()
			}
			require.NoError(t, h.ctrl.Leave(ctx))

			h.assertWindowedUI(t)
		})
	}
}

func TestMotionWhileWindowedHasNoEffect(t *testing.T) {
	h := newHarness(linuxOptions())

	h.surface.Move()

	assert.Equal(t, 0, h.surface.Observers())
	assert.Equal(t, 0, h.scheduler.Pending())
	h.assertWindowedUI(t)
}

func TestPendingHideAfterLeaveIsNoop(t *testing.T) {
	ctx := context.Background()
	h := newHarness(linuxOptions())

	require.NoError(t, h.ctrl.Enter(ctx))
	h.surface.Move()
	require.NoError(t, h.ctrl.Leave(ctx))
	require.Equal(t, 1, h.scheduler.Pending())

	h.scheduler.Advance(autohide.DefaultDelay)

	h.assertWindowedUI(t)
}

func TestStaleHideAcrossSessionsIsIgnored(t *testing.T) {
	ctx := context.Background()
	h := newHarness(linuxOptions())

	require.NoError(t, h.ctrl.Enter(ctx))
	h.surface.Move()
	require.NoError(t, h.ctrl.Leave(ctx))
	require.NoError(t, h.ctrl.Enter(ctx))
	h.surface.Move()

	h.scheduler.Advance(autohide.DefaultDelay)
	assert.False(t, h.toolbar.IsVisible())
	assert.Equal(t, 0, h.scheduler.Pending())
}

func TestEnterRollsBackWhenPlatformRefuses(t *testing.T) {
	ctx := context.Background()
	h := newHarness(linuxOptions())
	platformErr := errors.New("compositor said no")
	h.surface.FullscreenErr = platformErr

	err := h.ctrl.Enter(ctx)

	require.ErrorIs(t, err, ErrEnterFailed)
	require.ErrorIs(t, err, platformErr)
	assert.Equal(t, entity.ModeWindowed, h.ctrl.Mode())
	assert.False(t, h.ctrl.SleepInhibited())
	assert.Equal(t, h.inhibitor.inhibits, h.inhibitor.releases)
	assert.Equal(t, 0, h.ctrl.OutstandingInhibitions())
	_, ok := h.ctrl.PriorGeometry()
	assert.False(t, ok)
	assert.False(t, h.ctrl.AutohideArmed())
	h.assertWindowedUI(t)

	// The controller recovers once the platform cooperates.
	h.surface.FullscreenErr = nil
	require.NoError(t, h.ctrl.Enter(ctx))
	assert.True(t, h.ctrl.IsFullscreen())
	assert.Equal(t, 1, h.ctrl.OutstandingInhibitions())
}

func TestEnterFailsWhenInhibitionRefused(t *testing.T) {
	h := newHarness(linuxOptions())
	h.inhibitor.inhibitEr = errors.New("portal unavailable")

	err := h.ctrl.Enter(context.Background())

	require.ErrorIs(t, err, ErrEnterFailed)
	assert.False(t, h.surface.IsFullscreen())
	_, ok := h.ctrl.PriorGeometry()
	assert.False(t, ok)
	h.assertWindowedUI(t)
}

func TestEnterWithoutInhibition(t *testing.T) {
	opts := linuxOptions()
	opts.InhibitSleep = false
	inhibitor := mocks.NewMockSleepInhibitor(t)
	ctrl := NewController(fakeui.NewSurface(640, 480, 0, 0), fakeui.NewToolbar(), inhibitor, fakeui.NewScheduler(), opts)

	require.NoError(t, ctrl.Enter(context.Background()))
	require.NoError(t, ctrl.Leave(context.Background()))

	inhibitor.AssertNotCalled(t, "Inhibit", mock.Anything, mock.Anything)
}

func TestEnterUsesConfiguredReason(t *testing.T) {
	opts := linuxOptions()
	opts.InhibitReason = "Watching a film"
	inhibitor := mocks.NewMockSleepInhibitor(t)
	inhibitor.EXPECT().Inhibit(mock.Anything, "Watching a film").Return(entity.SleepToken("t1"), nil).Once()
	inhibitor.EXPECT().Uninhibit(mock.Anything, entity.SleepToken("t1")).Return(nil).Once()

	ctrl := NewController(fakeui.NewSurface(640, 480, 0, 0), fakeui.NewToolbar(), inhibitor, fakeui.NewScheduler(), opts)

	require.NoError(t, ctrl.Enter(context.Background()))
	require.NoError(t, ctrl.Leave(context.Background()))
}

func TestNoAutohideWithoutMotionCapability(t *testing.T) {
	opts := linuxOptions()
	opts.Capabilities = platform.ForOS("darwin")
	h := newHarness(opts)

	require.NoError(t, h.ctrl.Enter(context.Background()))

	assert.False(t, h.ctrl.AutohideArmed())
	assert.Equal(t, 0, h.surface.ConnectCalls)

	h.surface.Move()
	assert.False(t, h.toolbar.IsVisible(), "toolbar stays hidden without autohide")
	assert.False(t, h.surface.CursorVisible())

	require.NoError(t, h.ctrl.Leave(context.Background()))
	assert.Equal(t, 0, h.surface.DisconnectCalls)
	h.assertWindowedUI(t)
}

func TestAutohideArmFailureDoesNotAbortSession(t *testing.T) {
	h := newHarness(linuxOptions())
	h.surface.ConnectErr = errors.New("no motion controller")

	require.NoError(t, h.ctrl.Enter(context.Background()))

	assert.True(t, h.ctrl.IsFullscreen())
	assert.False(t, h.ctrl.AutohideArmed())
}

func TestLeaveReportsPlatformErrorButEndsWindowed(t *testing.T) {
	ctx := context.Background()
	h := newHarness(linuxOptions())
	require.NoError(t, h.ctrl.Enter(ctx))

	h.surface.LeaveErr = errors.New("stuck")
	err := h.ctrl.Leave(ctx)

	require.Error(t, err)
	assert.Equal(t, entity.ModeWindowed, h.ctrl.Mode())
	assert.False(t, h.ctrl.SleepInhibited())
	assert.False(t, h.ctrl.AutohideArmed())
	assert.True(t, h.toolbar.IsVisible())
	assert.True(t, h.surface.CursorVisible())
}

func TestGeometryNotRestoredWhenDisabled(t *testing.T) {
	opts := linuxOptions()
	opts.RestoreGeometry = false
	h := newHarness(opts)

	require.NoError(t, h.ctrl.Enter(context.Background()))
	require.NoError(t, h.ctrl.Leave(context.Background()))

	assert.Empty(t, h.surface.Restored)
}

func TestGeometryOverwrittenEachSession(t *testing.T) {
	ctx := context.Background()
	h := newHarness(linuxOptions())

	require.NoError(t, h.ctrl.Enter(ctx))
	require.NoError(t, h.ctrl.Leave(ctx))

	h.surface.Width, h.surface.Height = 1024, 768
	require.NoError(t, h.ctrl.Enter(ctx))

	prior, ok := h.ctrl.PriorGeometry()
	require.True(t, ok)
	assert.Equal(t, entity.Geometry{Width: 1024, Height: 768, X: 10, Y: 10}, prior)
}

func TestCursorDeferredUntilRealized(t *testing.T) {
	ctx := context.Background()
	surface := fakeui.NewUnrealizedSurface(640, 480)
	surface.SetCursorVisibleForTest(true)
	ctrl := NewController(surface, fakeui.NewToolbar(), newCountingInhibitor(), fakeui.NewScheduler(), linuxOptions())

	require.NoError(t, ctrl.Enter(ctx), "an unrealized handle must not fail the transition")
	assert.True(t, surface.CursorVisible(), "cursor untouched before realize")

	surface.Realize()
	ctrl.OnRealized(ctx)
	assert.False(t, surface.CursorVisible())

	// Nothing pending anymore.
	require.NoError(t, surface.SetCursorVisible(true))
	ctrl.OnRealized(ctx)
	assert.True(t, surface.CursorVisible())
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	h := newHarness(linuxOptions())

	require.NoError(t, h.ctrl.Toggle(ctx))
	assert.True(t, h.ctrl.IsFullscreen())

	require.NoError(t, h.ctrl.Toggle(ctx))
	assert.False(t, h.ctrl.IsFullscreen())
	assert.Equal(t, 0, h.ctrl.OutstandingInhibitions())
}

func TestSetAutohideDelay(t *testing.T) {
	ctx := context.Background()
	h := newHarness(linuxOptions())
	h.ctrl.SetAutohideDelay(time.Second)

	require.NoError(t, h.ctrl.Enter(ctx))
	h.surface.Move()
	h.scheduler.Advance(time.Second)

	assert.False(t, h.toolbar.IsVisible())
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.InhibitSleep)
	assert.Equal(t, DefaultInhibitReason, opts.InhibitReason)
	assert.Equal(t, autohide.DefaultDelay, opts.AutohideDelay)
	assert.Equal(t, platform.Detect(), opts.Capabilities)
}
