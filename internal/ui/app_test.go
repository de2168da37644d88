package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/glide/internal/domain/entity"
	"github.com/bnema/glide/internal/infrastructure/config"
	"github.com/bnema/glide/internal/infrastructure/idle"
	"github.com/bnema/glide/internal/infrastructure/platform"
	"github.com/bnema/glide/internal/testutil/fakeui"
	"github.com/bnema/glide/internal/ui/fullscreen"
	"github.com/bnema/glide/internal/ui/mainloop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionCookies stands in for the window-bound toolkit inhibit call.
type sessionCookies struct {
	cookie   uint
	released []uint
}

func (s *sessionCookies) InhibitSleep(string) uint { return s.cookie }

func (s *sessionCookies) UninhibitSleep(cookie uint) {
	s.released = append(s.released, cookie)
}

// portalLess behaves like the portal inhibitor on a host without a portal.
func portalLess(t *testing.T) *idle.PortalInhibitor {
	t.Helper()
	p := &idle.PortalInhibitor{}
	_, err := p.Inhibit(context.Background(), "check")
	require.ErrorIs(t, err, idle.ErrUnavailable)
	return p
}

func newTestApp(cfg *config.Config, inhibitor *idle.PortalInhibitor) *App {
	return &App{
		deps: &Dependencies{
			Ctx:       context.Background(),
			Config:    cfg,
			Inhibitor: inhibitor,
		},
		registry: fullscreen.NewRegistry(),
		post:     mainloop.Immediate,
	}
}

func newTestController(a *App, session *sessionCookies) (*fullscreen.Controller, *fakeui.Surface) {
	surface := fakeui.NewSurface(800, 600, 10, 10)
	ctrl := fullscreen.NewController(
		surface,
		fakeui.NewToolbar(),
		a.sleepInhibitor(session),
		fakeui.NewScheduler(),
		fullscreenOptions(a.deps.Config, platform.ForOS("linux")),
	)
	return ctrl, surface
}

func TestSleepInhibitor_FallsBackToSessionCookie(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(config.DefaultConfig(), portalLess(t))
	session := &sessionCookies{cookie: 42}
	ctrl, _ := newTestController(a, session)

	require.NoError(t, ctrl.Enter(ctx))
	assert.True(t, ctrl.SleepInhibited())

	require.NoError(t, ctrl.Leave(ctx))
	assert.False(t, ctrl.SleepInhibited())
	assert.Equal(t, []uint{42}, session.released)
}

func TestSleepInhibitor_EnterFailsWhenNothingInhibits(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(config.DefaultConfig(), portalLess(t))
	ctrl, surface := newTestController(a, &sessionCookies{})

	err := ctrl.Enter(ctx)

	require.ErrorIs(t, err, fullscreen.ErrEnterFailed)
	require.ErrorIs(t, err, idle.ErrUnavailable)
	assert.Equal(t, entity.ModeWindowed, ctrl.Mode())
	assert.False(t, ctrl.SleepInhibited())
	assert.False(t, surface.IsFullscreen())
}

func TestSleepInhibitor_DisabledKeepsPlatformInhibitor(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Fullscreen.InhibitSleep = false
	portal := portalLess(t)
	a := newTestApp(cfg, portal)

	assert.Same(t, portal, a.sleepInhibitor(&sessionCookies{cookie: 1}))
}

func TestHandleConfigChange_AppliesDelay(t *testing.T) {
	a := newTestApp(config.DefaultConfig(), portalLess(t))
	ctrl, _ := newTestController(a, &sessionCookies{})
	require.NoError(t, a.registry.Register(entity.MainWindowID, ctrl))

	cfg := config.DefaultConfig()
	cfg.Fullscreen.AutohideDelay = 2 * time.Second
	a.handleConfigChange(context.Background(), cfg)

	assert.Equal(t, 2*time.Second, ctrl.AutohideDelay())
}

func TestHandleConfigChange_IgnoredAfterShutdown(t *testing.T) {
	a := newTestApp(config.DefaultConfig(), portalLess(t))
	ctrl, _ := newTestController(a, &sessionCookies{})
	require.NoError(t, a.registry.Register(entity.MainWindowID, ctrl))
	before := ctrl.AutohideDelay()

	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(errors.New("application shutdown"))

	cfg := config.DefaultConfig()
	cfg.Fullscreen.AutohideDelay = 2 * time.Second
	a.handleConfigChange(ctx, cfg)

	assert.Equal(t, before, ctrl.AutohideDelay())
}
