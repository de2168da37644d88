package window

import "github.com/jwijenbergh/puregotk/v4/gio"

// Action names registered on the application and referenced by the menu.
const (
	ActionNameFullscreen   = "fullscreen"
	ActionNamePause        = "pause"
	ActionNameSeekBackward = "seek-backward"
	ActionNameSeekForward  = "seek-forward"
	ActionNameQuit         = "quit"
)

// NewMenuModel builds the menu bar model. Items target "app." actions.
func NewMenuModel() *gio.Menu {
	playback := gio.NewMenu()
	playback.Append("Pause", "app."+ActionNamePause)
	playback.Append("Seek Backward", "app."+ActionNameSeekBackward)
	playback.Append("Seek Forward", "app."+ActionNameSeekForward)
	playback.Append("Quit", "app."+ActionNameQuit)

	view := gio.NewMenu()
	view.Append("Enter Full Screen", "app."+ActionNameFullscreen)

	menu := gio.NewMenu()
	menu.AppendSubmenu("Playback", &playback.MenuModel)
	menu.AppendSubmenu("View", &view.MenuModel)
	return menu
}
