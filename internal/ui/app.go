package ui

import (
	"context"
	"errors"

	"github.com/bnema/glide/internal/application/port"
	"github.com/bnema/glide/internal/domain/entity"
	"github.com/bnema/glide/internal/infrastructure/config"
	"github.com/bnema/glide/internal/infrastructure/idle"
	"github.com/bnema/glide/internal/logging"
	"github.com/bnema/glide/internal/ui/dispatcher"
	"github.com/bnema/glide/internal/ui/fullscreen"
	"github.com/bnema/glide/internal/ui/input"
	"github.com/bnema/glide/internal/ui/mainloop"
	"github.com/bnema/glide/internal/ui/window"
	"github.com/jwijenbergh/puregotk/v4/gio"
	"github.com/jwijenbergh/puregotk/v4/gtk"
)

// App wraps the GTK Application and manages the player lifecycle.
type App struct {
	deps   *Dependencies
	gtkApp *gtk.Application

	playerWindow *window.PlayerWindow
	registry     *fullscreen.Registry
	controller   *fullscreen.Controller
	dispatcher   *dispatcher.PlayerDispatcher
	keyboard     *input.KeyboardHandler
	inhibitor    port.SleepInhibitor

	// post runs fn on the GTK main loop.
	post func(fn func())

	// Action callbacks are retained to prevent GC.
	actionCbs []*func(gio.SimpleAction, uintptr)

	cancel context.CancelCauseFunc
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &App{
		deps:     deps,
		registry: fullscreen.NewRegistry(),
		post:     mainloop.GlibPost,
	}, nil
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	ctx, a.cancel = context.WithCancelCause(ctx)
	defer a.cancel(errors.New("application exited"))

	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	// Unnamed: puregotk releases nullable strings before GTK copies the id.
	a.gtkApp = gtk.NewApplication(nil, gio.GApplicationFlagsNoneValue)
	if a.gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}
	defer a.gtkApp.Unref()

	activateCb := func(_ gio.Application) {
		a.onActivate(ctx)
	}
	a.gtkApp.ConnectActivate(&activateCb)

	shutdownCb := func(_ gio.Application) {
		a.onShutdown(ctx)
	}
	a.gtkApp.ConnectShutdown(&shutdownCb)

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(len(args), args)
}

// onActivate is called when the GTK application is activated.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	if a.playerWindow != nil {
		a.playerWindow.Show()
		return
	}

	winCtx := logging.WithWindowID(ctx, string(entity.MainWindowID))
	if err := a.createPlayerWindow(winCtx); err != nil {
		log.Error().Err(err).Msg("failed to create player window")
		return
	}

	a.initKeyboardHandler(logging.WithComponent(winCtx, "input"))
	a.initActions(logging.WithComponent(winCtx, "menu"))
	a.initConfigWatcher(logging.WithComponent(ctx, "config"))

	a.playerWindow.Show()
	log.Info().Msg("player window shown")
}

func (a *App) createPlayerWindow(ctx context.Context) error {
	cfg := a.deps.Config

	toolbar, err := window.NewToolbar(ctx, window.ToolbarHandlers{
		OnAction: a.dispatch,
		OnVolume: a.setVolume,
	})
	if err != nil {
		return err
	}

	pw, err := window.New(ctx, a.gtkApp, windowSize(cfg), window.NewMenuModel(), toolbar)
	if err != nil {
		return err
	}
	a.playerWindow = pw

	a.inhibitor = a.sleepInhibitor(pw)
	scheduler := mainloop.NewClockScheduler(a.deps.Clock, a.post)
	a.controller = fullscreen.NewController(
		pw,
		toolbar,
		a.inhibitor,
		scheduler,
		fullscreenOptions(cfg, a.deps.Capabilities),
	)
	if err := a.registry.Register(entity.MainWindowID, a.controller); err != nil {
		return err
	}

	a.dispatcher = dispatcher.NewPlayerDispatcher(ctx, a.controller, a.deps.Player)
	a.dispatcher.SetOnQuit(a.Quit)

	// Cursor changes requested before the native surface exists are
	// replayed here.
	fsCtx := logging.WithComponent(ctx, "fullscreen")
	pw.ConnectRealize(func() {
		a.controller.OnRealized(fsCtx)
	})
	return nil
}

// sleepInhibitor backs the platform inhibitor with the toolkit's
// window-bound session inhibit, so hosts without a portal still keep the
// display awake.
func (a *App) sleepInhibitor(session idle.CookieSource) port.SleepInhibitor {
	if !a.deps.Config.Fullscreen.InhibitSleep {
		return a.deps.Inhibitor
	}
	return idle.NewFallbackInhibitor(a.deps.Inhibitor, idle.NewSessionInhibitor(session))
}

func (a *App) dispatch(ctx context.Context, action input.Action) error {
	if a.dispatcher == nil {
		return nil
	}
	return a.dispatcher.Dispatch(ctx, action)
}

func (a *App) setVolume(ctx context.Context, volume float64) error {
	if a.dispatcher == nil {
		return nil
	}
	return a.dispatcher.SetVolume(ctx, volume)
}

func (a *App) initKeyboardHandler(ctx context.Context) {
	a.keyboard = input.NewKeyboardHandler(ctx, input.NewShortcutTable(ctx))
	a.keyboard.SetOnAction(a.dispatch)
	a.keyboard.AttachTo(a.playerWindow.Window())
}

// initActions registers the "app." actions the menu bar targets.
func (a *App) initActions(ctx context.Context) {
	actions := map[string]input.Action{
		window.ActionNameFullscreen:   input.ActionEnterFullscreen,
		window.ActionNamePause:        input.ActionPause,
		window.ActionNameSeekBackward: input.ActionSeekBackward,
		window.ActionNameSeekForward:  input.ActionSeekForward,
		window.ActionNameQuit:         input.ActionQuit,
	}

	for name, action := range actions {
		act := action
		simple := gio.NewSimpleAction(name, nil)
		cb := func(_ gio.SimpleAction, _ uintptr) {
			if err := a.dispatch(ctx, act); err != nil {
				logging.FromContext(ctx).Warn().Err(err).Str("action", string(act)).Msg("menu action failed")
			}
		}
		a.actionCbs = append(a.actionCbs, &cb)
		simple.ConnectActivate(&cb)
		a.gtkApp.AddAction(simple)
	}
}

func (a *App) initConfigWatcher(ctx context.Context) {
	log := logging.FromContext(ctx)

	manager := a.deps.ConfigManager
	if manager == nil {
		return
	}
	if err := manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("failed to start config watcher")
		return
	}

	manager.OnConfigChange(func(newCfg *config.Config) {
		a.handleConfigChange(ctx, newCfg)
	})

	log.Debug().Msg("config watcher initialized")
}

// handleConfigChange runs on the watcher goroutine. Changes arriving after
// shutdown began are dropped.
func (a *App) handleConfigChange(ctx context.Context, cfg *config.Config) {
	if ctx.Err() != nil {
		logging.FromContext(ctx).Debug().Err(context.Cause(ctx)).Msg("config change ignored")
		return
	}
	a.post(func() {
		a.applyConfig(ctx, cfg)
	})
}

// applyConfig hot-reloads what a running session can take. Inhibition and
// geometry settings apply from the next launch.
func (a *App) applyConfig(ctx context.Context, cfg *config.Config) {
	if cfg == nil {
		return
	}
	delay := cfg.Fullscreen.AutohideDelay
	a.registry.ForEach(func(_ entity.WindowID, c *fullscreen.Controller) {
		c.SetAutohideDelay(delay)
	})
	logging.FromContext(ctx).Info().Dur("autohide_delay", delay).Msg("config reloaded")
}

// onShutdown is called when the GTK application shuts down.
func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	// Release display-sleep tokens held by fullscreen sessions.
	if err := a.registry.LeaveAll(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to leave fullscreen on shutdown")
	}

	if a.cancel != nil {
		a.cancel(errors.New("application shutdown"))
	}

	if a.keyboard != nil {
		a.keyboard.Detach()
	}
	inhibitor := a.inhibitor
	if inhibitor == nil {
		inhibitor = a.deps.Inhibitor
	}
	if err := inhibitor.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close sleep inhibitor")
	}

	log.Info().Msg("application shutdown complete")
}

// Controller returns the main window's fullscreen controller.
func (a *App) Controller() *fullscreen.Controller {
	return a.controller
}

// Quit asks GTK to quit the application.
func (a *App) Quit() {
	if a.gtkApp != nil {
		a.gtkApp.Quit()
	}
}
