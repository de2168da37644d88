// Package dispatcher routes player actions to the fullscreen controller
// and the playback command layer.
package dispatcher

import (
	"context"
	"math"

	"github.com/bnema/glide/internal/application/port"
	"github.com/bnema/glide/internal/logging"
	"github.com/bnema/glide/internal/syncutil"
	"github.com/bnema/glide/internal/ui/input"
)

// VolumeStep is the change applied by one volume up/down action.
const VolumeStep = 0.05

// FullscreenController is the part of fullscreen.Controller the dispatcher drives.
type FullscreenController interface {
	Enter(ctx context.Context) error
	Leave(ctx context.Context) error
	Toggle(ctx context.Context) error
}

// PlayerDispatcher routes actions from shortcuts, toolbar buttons and menu
// items. The player may be nil; playback actions are then dropped.
type PlayerDispatcher struct {
	fullscreen FullscreenController
	player     port.PlayerCommands
	onQuit     func()

	mu     syncutil.Mutex
	volume float64
}

// NewPlayerDispatcher creates a new PlayerDispatcher at full volume.
func NewPlayerDispatcher(
	ctx context.Context,
	fullscreen FullscreenController,
	player port.PlayerCommands,
) *PlayerDispatcher {
	log := logging.FromContext(ctx)
	log.Debug().Bool("player_attached", player != nil).Msg("creating player dispatcher")

	return &PlayerDispatcher{
		fullscreen: fullscreen,
		player:     player,
		volume:     1,
	}
}

// SetOnQuit sets the callback for the quit action.
func (d *PlayerDispatcher) SetOnQuit(fn func()) {
	d.onQuit = fn
}

// Dispatch runs action.
func (d *PlayerDispatcher) Dispatch(ctx context.Context, action input.Action) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("action", string(action)).Msg("dispatching player action")

	switch action {
	case input.ActionToggleFullscreen:
		return d.fullscreen.Toggle(ctx)
	case input.ActionEnterFullscreen:
		return d.fullscreen.Enter(ctx)
	case input.ActionLeaveFullscreen:
		return d.fullscreen.Leave(ctx)

	case input.ActionPause:
		if d.player == nil {
			break
		}
		return d.player.Pause(ctx)
	case input.ActionSeekBackward:
		if d.player == nil {
			break
		}
		return d.player.SeekBackward(ctx)
	case input.ActionSeekForward:
		if d.player == nil {
			break
		}
		return d.player.SeekForward(ctx)
	case input.ActionVolumeUp:
		return d.SetVolume(ctx, d.Volume()+VolumeStep)
	case input.ActionVolumeDown:
		return d.SetVolume(ctx, d.Volume()-VolumeStep)

	case input.ActionQuit:
		if d.onQuit != nil {
			d.onQuit()
		}

	default:
		log.Warn().Str("action", string(action)).Msg("unhandled player action")
	}

	return nil
}

// SetVolume clamps volume to [0, 1], rounds it to two decimals and
// forwards it to the player.
func (d *PlayerDispatcher) SetVolume(ctx context.Context, volume float64) error {
	volume = math.Round(math.Max(0, math.Min(1, volume))*100) / 100

	d.mu.Lock()
	d.volume = volume
	d.mu.Unlock()

	if d.player == nil {
		return nil
	}
	return d.player.SetVolume(ctx, volume)
}

// Volume returns the last volume set.
func (d *PlayerDispatcher) Volume() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.volume
}
