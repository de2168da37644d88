// Package input maps keyboard events to player actions.
package input

import (
	"context"
	"strings"

	"github.com/bnema/glide/internal/logging"
	"github.com/jwijenbergh/puregotk/v4/gdk"
)

// Modifier represents keyboard modifier flags.
type Modifier uint

const (
	// ModNone indicates no modifier is pressed.
	ModNone Modifier = 0
	// ModShift indicates the Shift key is pressed.
	ModShift Modifier = Modifier(gdk.ShiftMaskValue)
	// ModCtrl indicates the Control key is pressed.
	ModCtrl Modifier = Modifier(gdk.ControlMaskValue)
	// ModAlt indicates the Alt key is pressed.
	ModAlt Modifier = Modifier(gdk.AltMaskValue)
)

// modifierMask filters out non-standard modifiers from GDK state.
const modifierMask = ModCtrl | ModShift | ModAlt

var keyvalByName = map[string]uint{
	"escape":    uint(gdk.KEY_Escape),
	"esc":       uint(gdk.KEY_Escape),
	"return":    uint(gdk.KEY_Return),
	"enter":     uint(gdk.KEY_Return),
	"space":     uint(gdk.KEY_space),
	"left":      uint(gdk.KEY_Left),
	"right":     uint(gdk.KEY_Right),
	"up":        uint(gdk.KEY_Up),
	"down":      uint(gdk.KEY_Down),
	"f11":       uint(gdk.KEY_F11),
	"plus":      uint(gdk.KEY_plus),
	"+":         uint(gdk.KEY_plus),
	"minus":     uint(gdk.KEY_minus),
	"-":         uint(gdk.KEY_minus),
	"pageup":    uint(gdk.KEY_Page_Up),
	"pagedown":  uint(gdk.KEY_Page_Down),
	"page_up":   uint(gdk.KEY_Page_Up),
	"page_down": uint(gdk.KEY_Page_Down),
}

// KeyBinding represents a single key combination.
type KeyBinding struct {
	Keyval    uint     // GDK key value (e.g., gdk.KEY_F11)
	Modifiers Modifier // Combined modifiers
}

// Action represents what happens when a shortcut is triggered.
type Action string

const (
	ActionToggleFullscreen Action = "toggle_fullscreen"
	ActionEnterFullscreen  Action = "enter_fullscreen"
	ActionLeaveFullscreen  Action = "leave_fullscreen"

	ActionPause        Action = "pause"
	ActionSeekBackward Action = "seek_backward"
	ActionSeekForward  Action = "seek_forward"
	ActionVolumeUp     Action = "volume_up"
	ActionVolumeDown   Action = "volume_down"

	ActionQuit Action = "quit"
)

// DefaultBindings are the built-in shortcuts, keyed by key string.
var DefaultBindings = map[string]Action{
	"f11":    ActionToggleFullscreen,
	"f":      ActionToggleFullscreen,
	"escape": ActionLeaveFullscreen,
	"space":  ActionPause,
	"left":   ActionSeekBackward,
	"right":  ActionSeekForward,
	"up":     ActionVolumeUp,
	"down":   ActionVolumeDown,
	"ctrl+q": ActionQuit,
}

// ShortcutTable maps key bindings to actions.
type ShortcutTable map[KeyBinding]Action

// NewShortcutTable builds the table from DefaultBindings. Unparseable
// entries are logged and skipped.
func NewShortcutTable(ctx context.Context) ShortcutTable {
	return BuildShortcutTable(ctx, DefaultBindings)
}

// BuildShortcutTable builds a table from key strings such as "ctrl+q".
func BuildShortcutTable(ctx context.Context, bindings map[string]Action) ShortcutTable {
	log := logging.FromContext(ctx)

	table := make(ShortcutTable, len(bindings))
	for key, action := range bindings {
		binding, ok := ParseKeyString(key)
		if !ok {
			log.Warn().Str("key", key).Str("action", string(action)).Msg("invalid shortcut key, skipping")
			continue
		}
		table[binding] = action
	}
	return table
}

// Lookup returns the action bound to binding.
func (t ShortcutTable) Lookup(binding KeyBinding) (Action, bool) {
	action, ok := t[binding]
	return action, ok
}

// ParseKeyString parses strings such as "f11", "ctrl+q" or "shift+left".
func ParseKeyString(s string) (KeyBinding, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return KeyBinding{}, false
	}
	if s == "+" {
		return KeyBinding{Keyval: uint(gdk.KEY_plus), Modifiers: ModNone}, true
	}

	parts := strings.Split(s, "+")

	var modifiers Modifier
	var keyPart string

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		switch strings.ToLower(part) {
		case "ctrl", "control":
			modifiers |= ModCtrl
		case "shift":
			modifiers |= ModShift
		case "alt":
			modifiers |= ModAlt
		default:
			if keyPart != "" {
				return KeyBinding{}, false
			}
			keyPart = part
		}
	}

	// Allow parsing "ctrl++" where the key is "+".
	if keyPart == "" && strings.HasSuffix(s, "++") {
		keyPart = "+"
	}
	if keyPart == "" {
		return KeyBinding{}, false
	}

	// Treat uppercase single-letter keys as Shift+<letter>.
	if len(keyPart) == 1 && keyPart[0] >= 'A' && keyPart[0] <= 'Z' {
		modifiers |= ModShift
		keyPart = strings.ToLower(keyPart)
	}

	keyval, ok := stringToKeyval(keyPart)
	if !ok {
		return KeyBinding{}, false
	}

	return KeyBinding{Keyval: keyval, Modifiers: modifiers}, true
}

func stringToKeyval(s string) (uint, bool) {
	if keyval, ok := keyvalByName[strings.ToLower(s)]; ok {
		return keyval, true
	}

	// ASCII lowercase a=97, which matches gdk.KEY_a
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'z' {
		return uint(s[0]), true
	}

	return 0, false
}
