package logging

import (
	"sync"

	"github.com/jwijenbergh/puregotk/v4/glib"
	"github.com/rs/zerolog"
)

// The GLib callback cannot carry a Go pointer, so the target logger lives here.
var (
	glibLogger     zerolog.Logger
	glibLoggerOnce sync.Once
)

// RouteGLibMessages sends GTK/GDK/GLib log output to logger.
// Call it before the GTK application is created.
func RouteGLibMessages(logger zerolog.Logger) {
	glibLoggerOnce.Do(func() {
		glibLogger = logger.With().Str("component", "glib").Logger()
		if logger.GetLevel() <= zerolog.DebugLevel {
			glib.LogSetDebugEnabled(true)
		}
		handler := glib.LogFunc(forwardGLibMessage)
		glib.LogSetDefaultHandler(&handler, 0)
	})
}

func forwardGLibMessage(domain string, level glib.LogLevelFlags, message string, _ uintptr) {
	event := glibLogger.WithLevel(glibLevel(level))
	if domain != "" {
		event = event.Str("glib_domain", domain)
	}
	event.Msg(message)
}

func glibLevel(level glib.LogLevelFlags) zerolog.Level {
	switch {
	case level&(glib.GLogLevelErrorValue|glib.GLogLevelCriticalValue) != 0:
		return zerolog.ErrorLevel
	case level&glib.GLogLevelWarningValue != 0:
		return zerolog.WarnLevel
	case level&(glib.GLogLevelMessageValue|glib.GLogLevelInfoValue) != 0:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
