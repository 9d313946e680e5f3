package gui

// ScrollableState holds the scroll position of a Scrollable and the content
// height it measured last frame.
type ScrollableState struct {
	ScrollY       float32
	ContentHeight float32
}

// scrollWheelStep is how far one wheel notch scrolls, in pixels.
const scrollWheelStep = 20

// Scrollable creates a vertically scrollable area of the given height that
// can wrap any content. The scrollbar appears when the content measured last
// frame is taller than the viewport.
//
// Usage:
//
//	ctx.Scrollable("inspector", 400)(func() {
//	    probe.Show(surface, "world", &world)
//	})
func (ctx *Context) Scrollable(id string, height float32, opts ...Option) func(func()) {
	return func(contents func()) {
		o := applyOptions(opts)
		scrollID := ctx.GetID(id)
		state := GetState(ctx, scrollID, ScrollableState{})

		pos := ctx.ItemPos()
		w := ctx.currentLayoutWidth()
		if width := GetOpt(o, OptWidth); width > 0 {
			w = width
		}
		viewport := Rect{X: pos.X, Y: pos.Y, W: w, H: height}

		maxScroll := maxf(0, state.ContentHeight-height)
		showScrollbar := maxScroll > 0
		contentW := w
		if showScrollbar {
			contentW -= ctx.style.ScrollbarSize
		}

		if ctx.Input != nil && ctx.isHovered(viewport) && ctx.Input.MouseWheelY != 0 {
			state.ScrollY -= ctx.Input.MouseWheelY * scrollWheelStep
			ctx.WantCaptureMouse = true
		}
		state.ScrollY = clampf(state.ScrollY, 0, maxScroll)

		content := Rect{X: pos.X, Y: pos.Y - state.ScrollY, W: contentW, H: Everything.H}
		clip := ctx.ClipRect().Intersect(Rect{X: pos.X, Y: pos.Y, W: contentW, H: height})
		used := ctx.Region(content, scrollID, clip, contents)

		if used.H != state.ContentHeight {
			state.ContentHeight = used.H
			ctx.RequestRedraw()
		}

		if showScrollbar {
			ctx.drawScrollbar(viewport, state.ScrollY, state.ContentHeight)
		}

		SetState(ctx, scrollID, state)
		ctx.advanceCursor(Vec2{w, height})
	}
}

// drawScrollbar draws a vertical scrollbar along the right edge of viewport.
func (ctx *Context) drawScrollbar(viewport Rect, scrollY, contentHeight float32) {
	size := ctx.style.ScrollbarSize
	track := Rect{X: viewport.X + viewport.W - size, Y: viewport.Y, W: size, H: viewport.H}
	ctx.addRect(track, ctx.style.ScrollbarBgColor)

	if contentHeight <= 0 {
		return
	}
	thumbH := maxf(size, viewport.H*viewport.H/contentHeight)
	travel := viewport.H - thumbH
	maxScroll := contentHeight - viewport.H
	thumbY := track.Y
	if maxScroll > 0 {
		thumbY += travel * scrollY / maxScroll
	}
	ctx.addRect(Rect{X: track.X + 1, Y: thumbY, W: size - 2, H: thumbH}, ctx.style.ScrollbarGrabColor)
}

// ScrollTo sets the scroll offset of the Scrollable id in the current scope.
// It takes effect next frame.
func ScrollTo(ctx *Context, id string, y float32) {
	scrollID := ctx.GetID(id)
	state := GetState(ctx, scrollID, ScrollableState{})
	state.ScrollY = maxf(0, y)
	SetState(ctx, scrollID, state)
	ctx.RequestRedraw()
}
