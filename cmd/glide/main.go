package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/bnema/glide/internal/bootstrap"
	"github.com/bnema/glide/internal/cli/cmd"
	"github.com/bnema/glide/internal/domain/build"
	"github.com/bnema/glide/internal/infrastructure/config"
	"github.com/bnema/glide/internal/infrastructure/platform"
	"github.com/bnema/glide/internal/logging"
	"github.com/bnema/glide/internal/syncutil"
	"github.com/bnema/glide/internal/ui"
	"github.com/bnema/glide/internal/ui/mainloop"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// No arguments, or "play", opens the player window.
	if len(os.Args) == 1 || os.Args[1] == "play" {
		os.Args = os.Args[:1]
		os.Exit(runGUI())
		return
	}

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}

func runGUI() int {
	// GTK must stay on the thread that initialized it.
	runtime.LockOSThread()

	manager, cfg, err := initConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize configuration: %v\n", err)
		return 1
	}

	logger := bootstrap.NewLogger(cfg, nil)
	logging.RouteGLibMessages(logger)
	ctx := logging.WithContext(context.Background(), logger)
	log := logging.FromContext(ctx)

	caps := platform.Detect()
	log.Debug().
		Str("os", caps.OS).
		Bool("motion_autohide", caps.MotionAutohide).
		Bool("deadlock_detection", syncutil.DeadlockEnabled).
		Str("config", manager.GetConfigFile()).
		Msg("starting glide")

	app, err := ui.New(&ui.Dependencies{
		Ctx:           ctx,
		Config:        cfg,
		ConfigManager: manager,
		Inhibitor:     bootstrap.NewSleepInhibitor(ctx, cfg),
		Capabilities:  caps,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}

	setupSignalHandler(ctx, app)

	return app.Run(ctx, os.Args)
}

func initConfig() (*config.Manager, *config.Config, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, nil, err
	}
	if err := manager.Load(); err != nil {
		return nil, nil, err
	}
	return manager, manager.Get(), nil
}

// setupSignalHandler quits through the main loop so shutdown releases any
// display-sleep inhibition still held.
func setupSignalHandler(ctx context.Context, app *ui.App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		mainloop.GlibPost(app.Quit)
	}()
}
