package entity

// Mode is the visual mode of a player window.
type Mode int

const (
	// ModeWindowed is the default mode; toolbar, menu bar and cursor are visible.
	ModeWindowed Mode = iota
	// ModeFullscreen covers the monitor; toolbar and cursor autohide.
	ModeFullscreen
)

func (m Mode) String() string {
	switch m {
	case ModeWindowed:
		return "windowed"
	case ModeFullscreen:
		return "fullscreen"
	default:
		return "unknown"
	}
}

// SleepToken is the opaque handle returned by the platform when display
// sleep inhibition is granted. The zero value means no inhibition is held.
type SleepToken string

// IsZero reports whether the token is absent.
func (t SleepToken) IsZero() bool {
	return t == ""
}

// WindowID identifies a player window for per-window fullscreen state.
type WindowID string

// MainWindowID is the identity of the single window the player opens.
const MainWindowID WindowID = "main"
