package port

import "context"

// PlayerCommands is the playback command layer the toolbar buttons and
// shortcuts drive. Decoding and timing live behind it.
type PlayerCommands interface {
	Pause(ctx context.Context) error
	SeekBackward(ctx context.Context) error
	SeekForward(ctx context.Context) error
	// SetVolume sets the output volume in the range [0, 1].
	SetVolume(ctx context.Context, volume float64) error
}
