package gui_test

import (
	"testing"

	"github.com/go-theft-auto/probe/gui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
}

func (m *mockRenderer) Render(dl *gui.DrawList) error {
	m.renderCalls++
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

// mapClipboard is an in-memory clipboard.
type mapClipboard struct{ text string }

func (c *mapClipboard) GetText() string     { return c.text }
func (c *mapClipboard) SetText(text string) { c.text = text }

var displaySize = gui.Vec2{X: 800, Y: 600}

// nextFrame clears per-frame input events the way a backend does between
// frames.
func nextFrame(input *gui.InputState) {
	input.Reset()
}

func click(input *gui.InputState, x, y float32) {
	input.SetMousePos(x, y)
	input.SetMouseButton(gui.MouseButtonLeft, true)
}

func release(input *gui.InputState) {
	input.SetMouseButton(gui.MouseButtonLeft, false)
}

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.GTAStyle()))
	input := gui.NewInputState()

	ctx := ui.Begin(input, gui.Vec2{X: 1920, Y: 1080}, 0.016)
	require.NotNil(t, ctx)

	ctx.Text("Hello World")
	ctx.TextColored("Colored", gui.ColorYellow)

	require.NoError(t, ui.End())
	assert.Equal(t, 1, renderer.renderCalls)
	assert.Equal(t, uint32(1), ctx.FontTextureID)
}

func TestForegroundRenderedWhenPopupOpen(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	input := gui.NewInputState()

	id := gui.ID(1).With("combo")
	body := func() {}

	// Click the header to open, then render one frame with the popup.
	click(input, 5, 5)
	ctx := ui.Begin(input, displaySize, 0.016)
	ctx.ComboBox(id, "first", body)
	require.NoError(t, ui.End())

	nextFrame(input)
	release(input)
	renderer.renderCalls = 0
	ctx = ui.Begin(input, displaySize, 0.016)
	ctx.ComboBox(id, "first", body)
	require.NoError(t, ui.End())
	assert.Equal(t, 2, renderer.renderCalls)
}

func TestButtonWithClick(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	ctx := ui.Begin(input, displaySize, 0.016)
	assert.False(t, ctx.Button("Click Me"), "button clicked without mouse input")
	require.NoError(t, ui.End())

	// "Click Me" is 8 cells of 8px plus padding, drawn at the origin.
	click(input, 50, 10)
	ctx = ui.Begin(input, displaySize, 0.016)
	assert.True(t, ctx.Button("Click Me"))
	require.NoError(t, ui.End())

	// Holding the button is not another click.
	nextFrame(input)
	ctx = ui.Begin(input, displaySize, 0.016)
	assert.False(t, ctx.Button("Click Me"))
	require.NoError(t, ui.End())
}

func TestDisabledButton(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	click(input, 5, 5)

	ctx := ui.Begin(input, displaySize, 0.016)
	assert.False(t, ctx.Button("Nope", gui.WithDisabled(true)))
	require.NoError(t, ui.End())
}

func TestCheckboxToggles(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	checked := false
	ctx := ui.Begin(input, displaySize, 0.016)
	assert.False(t, ctx.Checkbox("Enable", &checked))
	require.NoError(t, ui.End())
	assert.False(t, checked)

	click(input, 2, 2)
	ctx = ui.Begin(input, displaySize, 0.016)
	assert.True(t, ctx.Checkbox("Enable", &checked))
	require.NoError(t, ui.End())
	assert.True(t, checked)
}

func TestToggleSwitchAnimates(t *testing.T) {
	style := gui.DefaultStyle()
	style.AnimationTime = 0.1
	ui := gui.New(&mockRenderer{}, gui.WithStyle(style))
	input := gui.NewInputState()
	id := gui.ID(0).With("switch")

	on := false
	ctx := ui.Begin(input, displaySize, 0.06)
	ctx.ToggleSwitch(id, &on)
	require.NoError(t, ui.End())
	assert.False(t, ui.NeedsRedraw())

	click(input, 2, 2)
	ctx = ui.Begin(input, displaySize, 0.06)
	assert.True(t, ctx.ToggleSwitch(id, &on))
	require.NoError(t, ui.End())
	assert.True(t, on)
	assert.True(t, ui.NeedsRedraw(), "knob is still sliding")

	nextFrame(input)
	release(input)
	ctx = ui.Begin(input, displaySize, 0.06)
	ctx.ToggleSwitch(id, &on)
	require.NoError(t, ui.End())
	assert.False(t, ui.NeedsRedraw(), "knob arrived after AnimationTime")
}

func TestTextEditTyping(t *testing.T) {
	clip := &mapClipboard{}
	ui := gui.New(&mockRenderer{}, gui.WithClipboard(clip))
	input := gui.NewInputState()
	id := gui.ID(0).With("name")
	value := ""

	frame := func() bool {
		ctx := ui.Begin(input, displaySize, 0.016)
		changed := ctx.TextEdit(id, &value)
		require.NoError(t, ui.End())
		nextFrame(input)
		return changed
	}

	// Typing without focus does nothing.
	input.AddInputChar('x')
	assert.False(t, frame())
	assert.Equal(t, "", value)

	click(input, 5, 5)
	frame()
	release(input)

	input.AddInputChar('H')
	input.AddInputChar('i')
	assert.True(t, frame())
	assert.Equal(t, "Hi", value)

	// Select all and copy.
	input.ModCtrl = true
	input.SetKey(gui.KeyA, true)
	frame()
	input.SetKey(gui.KeyA, false)
	input.SetKey(gui.KeyC, true)
	frame()
	input.SetKey(gui.KeyC, false)
	assert.Equal(t, "Hi", clip.text)

	// Undo the last typed character.
	input.SetKey(gui.KeyZ, true)
	assert.True(t, frame())
	input.SetKey(gui.KeyZ, false)
	input.ModCtrl = false
	assert.Equal(t, "H", value)

	// Enter leaves edit mode; later typing is ignored.
	input.SetKey(gui.KeyEnter, true)
	frame()
	input.SetKey(gui.KeyEnter, false)
	input.AddInputChar('!')
	assert.False(t, frame())
	assert.Equal(t, "H", value)
}

func TestMultilineTextEditEnterInsertsNewline(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	id := gui.ID(0).With("notes")
	value := "a"

	frame := func() {
		ctx := ui.Begin(input, displaySize, 0.016)
		ctx.TextEdit(id, &value, gui.Multiline())
		require.NoError(t, ui.End())
		nextFrame(input)
	}

	// Clicking far right of the text puts the cursor at the end.
	click(input, 100, 5)
	frame()
	release(input)

	input.SetKey(gui.KeyEnter, true)
	input.AddInputChar('b')
	frame()
	assert.Equal(t, "a\nb", value)
}

func TestDragValueDrag(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	id := gui.ID(0).With("speed")
	value := 5.0

	frame := func(opts ...gui.Option) bool {
		ctx := ui.Begin(input, displaySize, 0.016)
		changed := ctx.DragValue(id, &value, opts...)
		require.NoError(t, ui.End())
		nextFrame(input)
		return changed
	}

	click(input, 5, 5)
	frame(gui.WithRange(0, 10))

	// Drag 20px right at speed 1: clamped to the range maximum.
	input.SetMousePos(25, 5)
	assert.True(t, frame(gui.WithRange(0, 10)))
	assert.Equal(t, 10.0, value)

	release(input)
	frame(gui.WithRange(0, 10))
}

func TestDragValueOutOfRangeShownUnclamped(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	id := gui.ID(0).With("v")
	value := 42.0

	ctx := ui.Begin(input, displaySize, 0.016)
	assert.False(t, ctx.DragValue(id, &value, gui.WithRange(0, 10)))
	require.NoError(t, ui.End())
	assert.Equal(t, 42.0, value)
}

func TestDragValueClickToType(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	id := gui.ID(0).With("v")
	value := 1.0

	frame := func() bool {
		ctx := ui.Begin(input, displaySize, 0.016)
		changed := ctx.DragValue(id, &value, gui.WithStep(0.5))
		require.NoError(t, ui.End())
		nextFrame(input)
		return changed
	}

	click(input, 5, 5)
	frame()
	release(input)
	frame() // release without moving enters edit mode

	for _, r := range "0000" {
		input.AddInputChar(r)
	}
	input.SetKey(gui.KeyBackspace, true)
	frame()
	input.SetKey(gui.KeyBackspace, false)

	input.AddInputChar('.')
	input.AddInputChar('3')
	input.SetKey(gui.KeyEnter, true)
	assert.True(t, frame())
	// "1000.3" snapped to the 0.5 step.
	assert.Equal(t, 1000.5, value)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     string
	}{
		{1, -1, "1"},
		{1.25, -1, "1.25"},
		{1.0 / 3, -1, "0.333333"},
		{2, 2, "2.00"},
		{-0.5, 0, "-0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, gui.FormatNumber(tt.v, tt.decimals), "FormatNumber(%v, %d)", tt.v, tt.decimals)
	}
}

func TestComboBoxIndexSelects(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	id := gui.ID(0).With("quality")
	items := []string{"Low", "Medium", "High"}
	selected := 0

	frame := func() bool {
		ctx := ui.Begin(input, displaySize, 0.016)
		changed := ctx.ComboBoxIndex(id, &selected, items)
		require.NoError(t, ui.End())
		nextFrame(input)
		return changed
	}

	click(input, 5, 5)
	frame()
	release(input)
	frame() // popup measures its content

	// The header is 20px tall and the popup content starts 4px below it.
	// Items are 8px tall with 4px gaps, so "Medium" spans y 36..44.
	click(input, 10, 20+4+12+2)
	assert.True(t, frame())
	assert.Equal(t, 1, selected)

	// A click inside the popup closes it.
	release(input)
	ctx := ui.Begin(input, displaySize, 0.016)
	ctx.ComboBoxIndex(id, &selected, items)
	state := gui.GetState(ctx, id, gui.ComboBoxState{})
	require.NoError(t, ui.End())
	assert.False(t, state.Open)
}

func TestPopupBlocksClicksUnderneath(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	id := gui.ID(0).With("combo")
	var hit bool

	frame := func() {
		ctx := ui.Begin(input, displaySize, 0.016)
		ctx.VStack(gui.Gap(0))(func() {
			ctx.ComboBox(id, "pick", func() {
				ctx.Text("one")
				ctx.Text("two")
				ctx.Text("three")
			})
			hit = ctx.Button("under")
		})
		require.NoError(t, ui.End())
		nextFrame(input)
	}

	click(input, 5, 5)
	frame()
	release(input)
	frame()

	// The button sits right below the header, inside last frame's popup.
	click(input, 5, 25)
	frame()
	assert.False(t, hit)
}

func TestColorEditPopup(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	id := gui.ID(0).With("tint")
	rgba := [4]float32{1, 0, 0, 1}

	frame := func() bool {
		ctx := ui.Begin(input, displaySize, 0.016)
		changed := ctx.ColorEdit(id, &rgba, true)
		require.NoError(t, ui.End())
		nextFrame(input)
		return changed
	}

	click(input, 2, 2)
	frame()
	release(input)

	ctx := ui.Begin(input, displaySize, 0.016)
	ctx.ColorEdit(id, &rgba, true)
	assert.True(t, gui.GetState(ctx, id, gui.ColorEditState{}).Open)
	require.NoError(t, ui.End())
	nextFrame(input)

	// Escape closes without touching the color.
	input.SetKey(gui.KeyEscape, true)
	assert.False(t, frame())
	assert.Equal(t, [4]float32{1, 0, 0, 1}, rgba)
}

func TestSectionToggle(t *testing.T) {
	style := gui.DefaultStyle()
	style.AnimationTime = 0
	ui := gui.New(&mockRenderer{}, gui.WithStyle(style))
	input := gui.NewInputState()

	var drawn bool
	frame := func() {
		drawn = false
		ctx := ui.Begin(input, displaySize, 0.016)
		ctx.Section("Settings", false)(func() { drawn = true })
		require.NoError(t, ui.End())
		nextFrame(input)
	}

	frame()
	assert.False(t, drawn)

	click(input, 20, 2)
	frame()
	release(input)
	assert.False(t, drawn, "opening shows up next frame")

	frame()
	assert.True(t, drawn)

	ctx := ui.Begin(input, displaySize, 0.016)
	assert.True(t, gui.IsSectionOpen(ctx, "Settings"))
	require.NoError(t, ui.End())
}

func TestScrollableWheel(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	frame := func() gui.ScrollableState {
		ctx := ui.Begin(input, displaySize, 0.016)
		ctx.Scrollable("list", 50)(func() {
			for range 20 {
				ctx.Text("Line")
			}
		})
		state := gui.GetState(ctx, ctx.GetID("list"), gui.ScrollableState{})
		require.NoError(t, ui.End())
		nextFrame(input)
		return state
	}

	first := frame()
	assert.Equal(t, float32(0), first.ScrollY)
	// 20 lines of 8px with 19 gaps of 4px.
	assert.Equal(t, float32(20*8+19*4), first.ContentHeight)
	assert.True(t, ui.NeedsRedraw())

	input.SetMousePos(10, 10)
	input.SetMouseWheel(0, -2)
	assert.Equal(t, float32(40), frame().ScrollY)

	// Never scrolls past the content.
	input.SetMouseWheel(0, -100)
	assert.Equal(t, float32(20*8+19*4-50), frame().ScrollY)
}

func TestPanel(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	ctx := ui.Begin(input, displaySize, 0.016)
	ctx.Panel("Test Panel", gui.Gap(8), gui.Padding(12))(func() {
		ctx.Text("Line 1")
		ctx.Text("Line 2")
	})
	require.NoError(t, ui.End())
	assert.True(t, ui.NeedsRedraw(), "panel measured its size for the next frame")

	ctx = ui.Begin(input, displaySize, 0.016)
	ctx.Panel("Test Panel", gui.Gap(8), gui.Padding(12))(func() {
		ctx.Text("Line 1")
		ctx.Text("Line 2")
	})
	require.NoError(t, ui.End())
	assert.False(t, ui.NeedsRedraw())
}

func TestStateStore(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	ctx := ui.Begin(input, displaySize, 0.016)
	id := ctx.GetID("test_state")
	gui.SetState(ctx, id, float32(42.5))
	assert.Equal(t, float32(42.5), gui.GetState(ctx, id, float32(0)))
	assert.Equal(t, float32(99), gui.GetState(ctx, ctx.GetID("nonexistent"), float32(99)))

	// A different type under the same ID reads as missing.
	assert.Equal(t, "x", gui.GetState(ctx, id, "x"))

	gui.DeleteState(ctx, id)
	assert.Equal(t, float32(1), gui.GetState(ctx, id, float32(1)))
	require.NoError(t, ui.End())
}

func TestStyles(t *testing.T) {
	for _, name := range []string{"default", "gta", "light"} {
		style, ok := gui.StyleByName(name)
		require.True(t, ok, name)
		assert.NotZero(t, style.TextColor, name)
		assert.NotZero(t, style.CharWidth, name)
	}
	_, ok := gui.StyleByName("neon")
	assert.False(t, ok)
}

func TestColorFunctions(t *testing.T) {
	c := gui.RGBA(255, 128, 64, 200)
	r, g, b, a := gui.UnpackRGBA(c)
	assert.Equal(t, [4]uint8{255, 128, 64, 200}, [4]uint8{r, g, b, a})

	r, g, b, a = gui.UnpackRGBA(gui.RGBAf(1.0, 0.5, 0.25, 0.8))
	assert.Equal(t, [4]uint8{255, 128, 64, 204}, [4]uint8{r, g, b, a})
}

func TestDrawListPool(t *testing.T) {
	dl := gui.AcquireDrawList()
	require.NotNil(t, dl)
	dl.AddRect(gui.Rect{W: 100, H: 100}, gui.ColorWhite)
	gui.ReleaseDrawList(dl)

	dl = gui.AcquireDrawList()
	assert.Empty(t, dl.VtxBuffer, "reused DrawList should be cleared")
	gui.ReleaseDrawList(dl)
}

func TestDrawListClipBatches(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(gui.Rect{W: 10, H: 10}, gui.ColorWhite)
	dl.PushClipRect(gui.Rect{X: 5, Y: 5, W: 10, H: 10})
	dl.PushClipRect(gui.Rect{X: 0, Y: 0, W: 8, H: 8})
	assert.Equal(t, gui.Rect{X: 5, Y: 5, W: 3, H: 3}, dl.ClipRect(), "nested clips intersect")
	dl.AddRect(gui.Rect{W: 10, H: 10}, gui.ColorWhite)
	dl.PopClipRect()
	dl.PopClipRect()
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 2)
	assert.Equal(t, [4]float32{5, 5, 8, 8}, dl.CmdBuffer[1].ClipRect)
	// Transparent primitives are skipped.
	dl.AddRect(gui.Rect{W: 10, H: 10}, gui.ColorTransparent)
	assert.Len(t, dl.VtxBuffer, 8)
}

func BenchmarkDrawListAddText(b *testing.B) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	for i := 0; b.Loop(); i++ {
		dl.AddText(gui.Vec2{Y: float32(i % 100 * 10)}, "Hello World", gui.ColorWhite, gui.Vec2{X: 8, Y: 8})
	}
}

func BenchmarkFullFrame(b *testing.B) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	for b.Loop() {
		ctx := ui.Begin(input, gui.Vec2{X: 1920, Y: 1080}, 0.016)
		ctx.Panel("Menu", gui.Gap(8))(func() {
			ctx.Text("Title")
			for j := range 10 {
				ctx.Selectable("Item", false, gui.WithID(string(rune('a'+j))))
			}
		})
		_ = ui.End()
	}
}
