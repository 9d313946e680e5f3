package gui_test

import (
	"testing"

	"github.com/go-theft-auto/probe/gui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameStoreExpiresUntouchedEntries(t *testing.T) {
	store := gui.NewFrameStore[int](2)
	store.Set(1, 10)
	store.Set(2, 20)

	for range 3 {
		store.NextFrame()
		_, ok := store.Get(1)
		require.True(t, ok)
	}
	// Entry 2 has not been touched since it was set.
	store.NextFrame()
	_, ok := store.Get(2)
	assert.False(t, ok)
	assert.Equal(t, 1, store.Len())

	store.Clear()
	assert.Equal(t, 0, store.Len())
}

func TestFrameStoreAsStateStore(t *testing.T) {
	store := gui.NewFrameStore[any](0)
	ui := gui.New(&mockRenderer{}, gui.WithStateStore(store))
	input := gui.NewInputState()

	ctx := ui.Begin(input, displaySize, 0.016)
	id := ctx.GetID("kept")
	gui.SetState(ctx, id, 1)
	gui.SetState(ctx, ctx.GetID("dropped"), 2)
	require.NoError(t, ui.End())

	// With a ttl of 0 an entry survives exactly one frame without use.
	for range 3 {
		ctx = ui.Begin(input, displaySize, 0.016)
		assert.Equal(t, 1, gui.GetState(ctx, id, 0))
		require.NoError(t, ui.End())
	}
	assert.Equal(t, 1, store.Len())
	assert.Same(t, gui.StateStore(store), ctx.Memory())
}
