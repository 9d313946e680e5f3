package gui

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Layout tracks the current layout state.
type Layout struct {
	Type LayoutType

	// Position tracking
	StartX, StartY float32

	// Sizing
	Width, Height       float32 // Available size
	MaxWidth, MaxHeight float32 // Accumulated content size

	Gap     float32 // Space between children
	Padding float32 // Inner padding

	// State
	ItemCount int // For gap calculation
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets inner padding.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// Width sets a fixed width for the layout.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height sets a fixed height for the layout.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

// currentLayout returns the current layout or nil.
func (ctx *Context) currentLayout() *Layout {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1]
	}
	return nil
}

// currentLayoutWidth returns the available width in the current layout.
func (ctx *Context) currentLayoutWidth() float32 {
	if layout := ctx.currentLayout(); layout != nil {
		return layout.Width - layout.Padding*2
	}
	return ctx.DisplaySize.X
}

// currentLayoutHeight returns the available height in the current layout.
func (ctx *Context) currentLayoutHeight() float32 {
	if layout := ctx.currentLayout(); layout != nil {
		return layout.Height - layout.Padding*2
	}
	return ctx.DisplaySize.Y
}

// CurrentLayoutWidth returns the available width in the current layout (public API).
func (ctx *Context) CurrentLayoutWidth() float32 {
	return ctx.currentLayoutWidth()
}

// pendingGap is the offset the next item will get before it is placed.
func (ctx *Context) pendingGap() Vec2 {
	layout := ctx.currentLayout()
	if layout == nil || layout.ItemCount == 0 {
		return Vec2{}
	}
	if layout.Type == LayoutVertical {
		return Vec2{Y: layout.Gap}
	}
	return Vec2{X: layout.Gap}
}

// beginItem applies gap spacing before drawing an item.
func (ctx *Context) beginItem() {
	ctx.cursor = ctx.cursor.Add(ctx.pendingGap())
}

// ItemPos returns the position for the next widget with gap applied.
// This is the recommended way for widgets to get their drawing position.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// advanceCursor moves the cursor after drawing an item.
func (ctx *Context) advanceCursor(size Vec2) {
	ctx.AdvanceCursor(size)
}

// AdvanceCursor moves the cursor after drawing an item (public API).
func (ctx *Context) AdvanceCursor(size Vec2) {
	layout := ctx.currentLayout()
	if layout == nil {
		// No layout, just advance vertically
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}

	if layout.Type == LayoutVertical {
		layout.MaxWidth = maxf(layout.MaxWidth, ctx.cursor.X+size.X-layout.StartX)
		ctx.cursor.Y += size.Y
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X += size.X
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, ctx.cursor.Y+size.Y-layout.StartY)
	}

	layout.ItemCount++
}

// AdvanceCursorAfter marks r as used by the current layout and moves the
// cursor past it. Use it after drawing into a Region placed at the cursor.
func (ctx *Context) AdvanceCursorAfter(r Rect) {
	m := r.Max()
	layout := ctx.currentLayout()
	if layout == nil {
		ctx.cursor.Y = maxf(ctx.cursor.Y, m.Y) + ctx.style.ItemSpacing
		return
	}

	if layout.Type == LayoutVertical {
		ctx.cursor.X = layout.StartX + layout.Padding
		ctx.cursor.Y = maxf(ctx.cursor.Y, m.Y)
		layout.MaxWidth = maxf(layout.MaxWidth, m.X-layout.StartX)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X = maxf(ctx.cursor.X, m.X)
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, m.Y-layout.StartY)
	}
	layout.ItemCount++
}

// MaxRect returns the full area of the current layout.
func (ctx *Context) MaxRect() Rect {
	layout := ctx.currentLayout()
	if layout == nil {
		return Rect{W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y}
	}
	return Rect{X: layout.StartX, Y: layout.StartY, W: layout.Width, H: layout.Height}
}

// CursorRect returns the space still free in the current layout, starting
// where the next item would be placed.
func (ctx *Context) CursorRect() Rect {
	return RectFromMinMax(ctx.cursor.Add(ctx.pendingGap()), ctx.MaxRect().Max())
}

// ContentRect returns the area the current layout's items occupy so far.
func (ctx *Context) ContentRect() Rect {
	layout := ctx.currentLayout()
	if layout == nil {
		return Rect{X: 0, Y: 0, W: 0, H: ctx.cursor.Y}
	}
	return Rect{X: layout.StartX, Y: layout.StartY, W: layout.MaxWidth, H: layout.MaxHeight}
}

// pushLayoutWith pushes a layout starting at the cursor.
func (ctx *Context) pushLayoutWith(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	if layout.Width == 0 {
		layout.Width = maxf(0, ctx.MaxRect().Max().X-ctx.cursor.X)
	}
	if layout.Height == 0 {
		layout.Height = maxf(0, ctx.MaxRect().Max().Y-ctx.cursor.Y)
	}
	ctx.cursor.X += layout.Padding
	ctx.cursor.Y += layout.Padding
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout removes the current layout and reports it to the parent as a
// single item. Returns the layout's bounds.
func (ctx *Context) popLayout() Rect {
	bounds := ctx.dropLayout()
	if ctx.currentLayout() != nil {
		ctx.AdvanceCursorAfter(bounds)
	} else {
		ctx.cursor = Vec2{bounds.X, bounds.Max().Y}
	}
	return bounds
}

// dropLayout removes the current layout without touching the parent.
func (ctx *Context) dropLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}
	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]
	return Rect{
		X: layout.StartX,
		Y: layout.StartY,
		W: layout.MaxWidth + layout.Padding*2,
		H: layout.MaxHeight + layout.Padding*2,
	}
}

// Region runs contents in a vertical layout occupying rect, with drawing
// clipped to clip and id as the parent ID. The parent layout is left alone;
// pair with AdvanceCursorAfter to reserve the space that was used.
// Returns the rect actually used by contents.
func (ctx *Context) Region(rect Rect, id ID, clip Rect, contents func()) Rect {
	saved := ctx.cursor
	ctx.cursor = rect.Min()
	ctx.pushLayoutWith(&Layout{Type: LayoutVertical, Width: rect.W, Height: rect.H, Gap: ctx.style.ItemSpacing})
	ctx.PushID(id)
	ctx.PushClipRect(clip)

	contents()

	ctx.PopClipRect()
	ctx.PopID()
	used := ctx.dropLayout()
	ctx.cursor = saved
	return used
}

// VStack creates a vertical layout container.
//
// Usage:
//
//	ctx.VStack(Gap(8))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Text("Line 2")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) Rect {
	return ctx.stack(LayoutVertical, opts)
}

// HStack creates a horizontal layout container.
//
// Usage:
//
//	ctx.HStack(Gap(8))(func() {
//	    ctx.Text("Label:")
//	    ctx.TextEdit(id, &value)
//	})
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) Rect {
	return ctx.stack(LayoutHorizontal, opts)
}

func (ctx *Context) stack(t LayoutType, opts []LayoutOption) func(func()) Rect {
	return func(contents func()) Rect {
		ctx.beginItem()
		layout := &Layout{Type: t, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayoutWith(layout)
		contents()
		return ctx.popLayout()
	}
}

// Panel draws a panel background behind its contents. The background uses
// the size measured last frame, so a panel settles one frame after its
// contents change size.
//
//	ctx.Panel("inspector", Padding(8))(func() {
//	    probe.Show(surface, "player", &player)
//	})
func (ctx *Context) Panel(id string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		panelID := ctx.GetID(id)
		size := GetState(ctx, panelID, Vec2{})

		ctx.beginItem()
		pos := ctx.cursor
		ctx.addRect(Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}, ctx.style.PanelColor)

		layout := &Layout{Type: LayoutVertical, Padding: ctx.style.PanelPadding, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.PushID(panelID)
		ctx.pushLayoutWith(layout)
		contents()
		bounds := ctx.popLayout()
		ctx.PopID()

		if bounds.Size() != size {
			SetState(ctx, panelID, bounds.Size())
			ctx.RequestRedraw()
		}
		if ctx.isHovered(bounds) {
			ctx.WantCaptureMouse = true
		}
	}
}

// Frame fills the area its contents use with Style.ExtremeBgColor, padded
// by half the item spacing on every side. Unlike Panel the background fits
// the contents in the same frame.
func (ctx *Context) Frame(contents func()) Rect {
	dl := ctx.activeDrawList()
	bg := -1
	if dl != nil {
		bg = dl.AddRectPlaceholder(ctx.style.ExtremeBgColor)
	}
	r := ctx.VStack(Gap(0), Padding(ctx.style.ItemSpacing/2))(contents)
	if dl != nil {
		dl.SetRectAt(bg, r)
	}
	return r
}

// AddSpace adds space along the current layout direction.
func (ctx *Context) AddSpace(pixels float32) {
	layout := ctx.currentLayout()
	if layout != nil && layout.Type == LayoutHorizontal {
		ctx.cursor.X += pixels
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		return
	}
	ctx.cursor.Y += pixels
	if layout != nil {
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	}
}

// Separator draws a thin line across the layout direction: a horizontal
// line in vertical layouts and a short vertical mark in horizontal ones,
// where it doubles as an indent step.
func (ctx *Context) Separator() {
	pos := ctx.ItemPos()
	layout := ctx.currentLayout()
	if layout != nil && layout.Type == LayoutHorizontal {
		w := ctx.style.IndentWidth
		x := pos.X + w/2
		ctx.addLine(Vec2{x, pos.Y}, Vec2{x, pos.Y + ctx.lineHeight()}, ctx.style.SeparatorColor, 1)
		ctx.advanceCursor(Vec2{w, ctx.lineHeight()})
		return
	}
	w := ctx.currentLayoutWidth()
	y := pos.Y + 2
	ctx.addLine(Vec2{pos.X, y}, Vec2{pos.X + w, y}, ctx.style.SeparatorColor, 1)
	ctx.advanceCursor(Vec2{w, 4})
}

// Indent increases the cursor X position.
func (ctx *Context) Indent(pixels float32) {
	ctx.cursor.X += pixels
}

// Unindent decreases the cursor X position.
func (ctx *Context) Unindent(pixels float32) {
	ctx.cursor.X -= pixels
}
