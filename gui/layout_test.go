package gui_test

import (
	"testing"

	"github.com/go-theft-auto/probe/gui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHeadless(t *testing.T) *gui.Context {
	t.Helper()
	ctx := gui.NewContext()
	ctx.Input = gui.NewInputState()
	ctx.BeginFrame(displaySize, 0.016)
	t.Cleanup(ctx.EndFrame)
	return ctx
}

func TestVStackHStack(t *testing.T) {
	ctx := newHeadless(t)

	var row gui.Rect
	outer := ctx.VStack(gui.Gap(10))(func() {
		row = ctx.HStack(gui.Gap(5))(func() {
			ctx.Text("Label:")
			ctx.Text("Value")
		})
		ctx.Text("Below")
	})

	// 6 + 5 cells of 8px and one 5px gap.
	assert.Equal(t, gui.Rect{W: 6*8 + 5 + 5*8, H: 8}, row)
	assert.Equal(t, gui.Rect{W: 93, H: 8 + 10 + 8}, outer)
}

func TestRegionDoesNotAdvanceParent(t *testing.T) {
	ctx := newHeadless(t)

	ctx.VStack(gui.Gap(0))(func() {
		start := ctx.CursorRect()
		used := ctx.Region(gui.Rect{X: start.X + 20, Y: start.Y, W: 100, H: 100}, ctx.GetID("r"), gui.Everything, func() {
			ctx.Text("one")
			ctx.Text("two")
		})
		assert.Equal(t, gui.Rect{X: 20, Y: 0, W: 24, H: 8 + 4 + 8}, used)
		assert.Equal(t, start, ctx.CursorRect(), "cursor is restored")

		ctx.AdvanceCursorAfter(used)
		after := ctx.CursorRect()
		assert.Equal(t, float32(20), after.Y)
		assert.Equal(t, float32(0), after.X, "vertical layouts return to their left edge")
	})
}

func TestRegionScopesIDAndClip(t *testing.T) {
	ctx := newHeadless(t)
	id := ctx.GetID("scope")
	clip := gui.Rect{X: 10, Y: 10, W: 50, H: 50}

	var inner gui.ID
	var innerClip gui.Rect
	ctx.Region(gui.Rect{W: 100, H: 100}, id, clip, func() {
		inner = ctx.GetID("x")
		innerClip = ctx.ClipRect()
	})
	assert.Equal(t, id.With("x"), inner)
	assert.Equal(t, clip, innerClip)
	assert.Equal(t, gui.Everything, ctx.ClipRect())
	assert.Equal(t, gui.ID(0), ctx.CurrentID())
}

func TestClippedWidgetIgnoresClicks(t *testing.T) {
	ctx := gui.NewContext()
	ctx.Input = gui.NewInputState()
	ctx.Input.SetMousePos(5, 5)
	ctx.Input.SetMouseButton(gui.MouseButtonLeft, true)
	ctx.BeginFrame(displaySize, 0.016)
	defer ctx.EndFrame()

	var clicked bool
	ctx.Region(gui.Rect{W: 100, H: 100}, ctx.GetID("r"), gui.EverythingBelow(50), func() {
		clicked = ctx.Button("hidden")
	})
	assert.False(t, clicked)
}

func TestMaxRectWithoutLayout(t *testing.T) {
	ctx := newHeadless(t)
	assert.Equal(t, gui.Rect{W: 800, H: 600}, ctx.MaxRect())

	ctx.VStack(gui.Width(200), gui.Height(100))(func() {
		assert.Equal(t, gui.Rect{W: 200, H: 100}, ctx.MaxRect())
		ctx.AddSpace(30)
		assert.Equal(t, gui.Rect{Y: 30, W: 200, H: 70}, ctx.CursorRect())
	})
}

func TestSeparatorInRowIsIndentMark(t *testing.T) {
	ctx := newHeadless(t)
	style := ctx.Style()

	row := ctx.HStack(gui.Gap(0))(func() {
		ctx.Separator()
		ctx.Separator()
	})
	require.Equal(t, 2*style.IndentWidth, row.W)
}

func TestRectHelpers(t *testing.T) {
	a := gui.Rect{X: 0, Y: 0, W: 10, H: 10}
	b := gui.Rect{X: 5, Y: 5, W: 10, H: 10}
	assert.Equal(t, gui.Rect{X: 5, Y: 5, W: 5, H: 5}, a.Intersect(b))
	assert.Equal(t, gui.Rect{W: 15, H: 15}, a.Union(b))
	assert.Equal(t, gui.Rect{X: 20, Y: 20}, a.Intersect(gui.Rect{X: 20, Y: 20, W: 1, H: 1}), "disjoint rects intersect to empty")
	assert.True(t, gui.EverythingBelow(3).Contains(gui.Vec2{X: -1e4, Y: 3}))
	assert.False(t, gui.EverythingBelow(3).Contains(gui.Vec2{Y: 2.9}))
	assert.True(t, gui.EverythingLeftOf(3).Contains(gui.Vec2{X: 2.9, Y: 1e4}))
	assert.False(t, gui.EverythingLeftOf(3).Contains(gui.Vec2{X: 3}))
}
