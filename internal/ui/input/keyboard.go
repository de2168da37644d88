package input

import (
	"context"
	"sync"

	"github.com/bnema/glide/internal/logging"
	"github.com/jwijenbergh/puregotk/v4/gdk"
	"github.com/jwijenbergh/puregotk/v4/gtk"
)

// ActionHandler is called when a shortcut triggers an action.
type ActionHandler func(ctx context.Context, action Action) error

// KeyboardHandler turns key presses on the player window into actions.
type KeyboardHandler struct {
	ctx       context.Context
	shortcuts ShortcutTable

	controller   *gtk.EventControllerKey
	keyPressedCb func(gtk.EventControllerKey, uint, uint, gdk.ModifierType) bool

	mu       sync.RWMutex
	onAction ActionHandler
}

// NewKeyboardHandler creates a handler using the given shortcut table.
func NewKeyboardHandler(ctx context.Context, shortcuts ShortcutTable) *KeyboardHandler {
	if shortcuts == nil {
		shortcuts = NewShortcutTable(ctx)
	}
	return &KeyboardHandler{
		ctx:       ctx,
		shortcuts: shortcuts,
	}
}

// SetOnAction sets the callback for triggered actions.
func (h *KeyboardHandler) SetOnAction(fn ActionHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onAction = fn
}

// AttachTo attaches the keyboard handler to a GTK window.
// Keys are intercepted in the capture phase so toolbar widgets with focus
// do not swallow them.
func (h *KeyboardHandler) AttachTo(window *gtk.ApplicationWindow) {
	log := logging.FromContext(h.ctx)

	if window == nil {
		log.Error().Msg("cannot attach keyboard handler to nil window")
		return
	}

	h.controller = gtk.NewEventControllerKey()
	if h.controller == nil {
		log.Error().Msg("failed to create event controller key")
		return
	}
	h.controller.SetPropagationPhase(gtk.PhaseCaptureValue)

	// Retain the callback to prevent GC.
	h.keyPressedCb = func(_ gtk.EventControllerKey, keyval uint, _ uint, state gdk.ModifierType) bool {
		return h.handleKeyPress(keyval, state)
	}
	h.controller.ConnectKeyPressed(&h.keyPressedCb)

	window.AddController(&h.controller.EventController)
	log.Debug().Msg("keyboard handler attached to window")
}

// Detach drops the controller reference. GTK frees the controller with
// the window.
func (h *KeyboardHandler) Detach() {
	h.controller = nil
	h.keyPressedCb = nil
}

// handleKeyPress returns true when the key was consumed.
func (h *KeyboardHandler) handleKeyPress(keyval uint, state gdk.ModifierType) bool {
	modifiers := Modifier(state) & modifierMask

	// GTK reports shifted letters as uppercase keyvals.
	if keyval >= uint('A') && keyval <= uint('Z') {
		keyval += uint('a') - uint('A')
	}

	action, found := h.shortcuts.Lookup(KeyBinding{Keyval: keyval, Modifiers: modifiers})
	if !found {
		return false
	}

	h.mu.RLock()
	handler := h.onAction
	h.mu.RUnlock()

	if handler != nil {
		if err := handler(h.ctx, action); err != nil {
			logging.FromContext(h.ctx).Error().
				Err(err).
				Str("action", string(action)).
				Msg("action handler error")
		}
	}
	return true
}
