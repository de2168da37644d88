package window

import (
	"context"

	"github.com/bnema/glide/internal/application/port"
	"github.com/bnema/glide/internal/logging"
	"github.com/bnema/glide/internal/ui/input"
	"github.com/jwijenbergh/puregotk/v4/gtk"
)

var _ port.Toolbar = (*Toolbar)(nil)

// ToolbarHandlers receives toolbar interactions.
type ToolbarHandlers struct {
	OnAction func(ctx context.Context, action input.Action) error
	OnVolume func(ctx context.Context, volume float64) error
}

type toolbarButton struct {
	icon    string
	tooltip string
	action  input.Action
}

var toolbarButtons = []toolbarButton{
	{icon: "media-seek-backward-symbolic", tooltip: "Seek backward", action: input.ActionSeekBackward},
	{icon: "media-playback-pause-symbolic", tooltip: "Pause", action: input.ActionPause},
	{icon: "media-seek-forward-symbolic", tooltip: "Seek forward", action: input.ActionSeekForward},
}

// Toolbar is the playback controls row: transport buttons, the scrubber,
// the volume slider and the fullscreen toggle.
type Toolbar struct {
	ctx      context.Context
	handlers ToolbarHandlers

	box      *gtk.Box
	scrubber *gtk.Scale
	volume   *gtk.Scale

	// Signal callbacks are retained to prevent GC.
	clickedCbs []*func(gtk.Button)
	volumeCb   func(gtk.Range)
}

// NewToolbar builds the toolbar widgets.
func NewToolbar(ctx context.Context, handlers ToolbarHandlers) (*Toolbar, error) {
	tb := &Toolbar{ctx: ctx, handlers: handlers}

	tb.box = gtk.NewBox(gtk.OrientationHorizontalValue, 6)
	if tb.box == nil {
		return nil, ErrWidgetCreationFailed("toolbar")
	}
	tb.box.AddCssClass("player-toolbar")
	tb.box.SetHexpand(true)

	for _, spec := range toolbarButtons {
		if err := tb.appendButton(spec); err != nil {
			return nil, err
		}
	}

	tb.scrubber = gtk.NewScaleWithRange(gtk.OrientationHorizontalValue, 0, 1, 0.001)
	if tb.scrubber == nil {
		return nil, ErrWidgetCreationFailed("scrubber")
	}
	tb.scrubber.SetDrawValue(false)
	tb.scrubber.SetHexpand(true)
	tb.box.Append(&tb.scrubber.Widget)

	tb.volume = gtk.NewScaleWithRange(gtk.OrientationHorizontalValue, 0, 1, 0.05)
	if tb.volume == nil {
		return nil, ErrWidgetCreationFailed("volume")
	}
	tb.volume.SetDrawValue(false)
	tb.volume.SetSizeRequest(96, -1)
	tb.volume.SetValue(1)
	tb.volumeCb = func(r gtk.Range) {
		tb.onVolumeChanged(r.GetValue())
	}
	tb.volume.ConnectValueChanged(&tb.volumeCb)
	tb.box.Append(&tb.volume.Widget)

	if err := tb.appendButton(toolbarButton{
		icon:    "view-fullscreen-symbolic",
		tooltip: "Fullscreen",
		action:  input.ActionToggleFullscreen,
	}); err != nil {
		return nil, err
	}

	return tb, nil
}

func (tb *Toolbar) appendButton(spec toolbarButton) error {
	icon := spec.icon
	btn := gtk.NewButtonFromIconName(&icon)
	if btn == nil {
		return ErrWidgetCreationFailed(string(spec.action))
	}
	tooltip := spec.tooltip
	btn.SetTooltipText(&tooltip)
	btn.SetFocusOnClick(false)

	action := spec.action
	cb := func(_ gtk.Button) {
		tb.onAction(action)
	}
	tb.clickedCbs = append(tb.clickedCbs, &cb)
	btn.ConnectClicked(&cb)

	tb.box.Append(&btn.Widget)
	return nil
}

func (tb *Toolbar) onAction(action input.Action) {
	if tb.handlers.OnAction == nil {
		return
	}
	if err := tb.handlers.OnAction(tb.ctx, action); err != nil {
		logging.FromContext(tb.ctx).Warn().Err(err).Str("action", string(action)).Msg("toolbar action failed")
	}
}

func (tb *Toolbar) onVolumeChanged(value float64) {
	if tb.handlers.OnVolume == nil {
		return
	}
	if err := tb.handlers.OnVolume(tb.ctx, value); err != nil {
		logging.FromContext(tb.ctx).Warn().Err(err).Float64("volume", value).Msg("volume change failed")
	}
}

// SetVisible shows or hides the whole toolbar.
func (tb *Toolbar) SetVisible(visible bool) {
	tb.box.SetVisible(visible)
}

// IsVisible reports whether the toolbar is shown.
func (tb *Toolbar) IsVisible() bool {
	return tb.box.GetVisible()
}

// SetPosition moves the scrubber to fraction of the media duration.
func (tb *Toolbar) SetPosition(fraction float64) {
	tb.scrubber.SetValue(fraction)
}

// Widget returns the toolbar container.
func (tb *Toolbar) Widget() *gtk.Widget {
	return &tb.box.Widget
}
