package fullscreen

import (
	"context"
	"testing"

	"github.com/bnema/glide/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	h := newHarness(linuxOptions())

	require.NoError(t, r.Register(entity.MainWindowID, h.ctrl))
	err := r.Register(entity.MainWindowID, h.ctrl)
	require.ErrorIs(t, err, ErrWindowRegistered)

	got, ok := r.Get(entity.MainWindowID)
	require.True(t, ok)
	assert.Same(t, h.ctrl, got)

	_, ok = r.Get("other")
	assert.False(t, ok)
}

func TestRegistryRemoveLeavesFullscreen(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()
	h := newHarness(linuxOptions())
	require.NoError(t, r.Register(entity.MainWindowID, h.ctrl))
	require.NoError(t, h.ctrl.Enter(ctx))

	require.NoError(t, r.Remove(ctx, entity.MainWindowID))

	assert.False(t, h.ctrl.IsFullscreen())
	assert.Equal(t, 0, h.ctrl.OutstandingInhibitions())
	_, ok := r.Get(entity.MainWindowID)
	assert.False(t, ok)

	require.NoError(t, r.Remove(ctx, entity.MainWindowID), "removing an unknown window is a no-op")
}

func TestRegistryKeepsSessionsPerWindow(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()
	a := newHarness(linuxOptions())
	b := newHarness(linuxOptions())
	b.surface.Width, b.surface.Height = 1920, 1080
	require.NoError(t, r.Register("a", a.ctrl))
	require.NoError(t, r.Register("b", b.ctrl))

	require.NoError(t, a.ctrl.Enter(ctx))
	require.NoError(t, b.ctrl.Enter(ctx))

	ga, _ := a.ctrl.PriorGeometry()
	gb, _ := b.ctrl.PriorGeometry()
	assert.Equal(t, 800, ga.Width)
	assert.Equal(t, 1920, gb.Width)

	var visited []entity.WindowID
	r.ForEach(func(id entity.WindowID, _ *Controller) { visited = append(visited, id) })
	assert.Equal(t, []entity.WindowID{"a", "b"}, visited)

	require.NoError(t, r.LeaveAll(ctx))
	assert.False(t, a.ctrl.IsFullscreen())
	assert.False(t, b.ctrl.IsFullscreen())
	assert.False(t, a.ctrl.SleepInhibited())
	assert.False(t, b.ctrl.SleepInhibited())
}
