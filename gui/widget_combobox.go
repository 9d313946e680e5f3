package gui

// ComboBox draws a dropdown header showing selectedText. While open, body
// runs inside a popup drawn above everything else; a click inside the popup
// closes it. Returns true if the popup was clicked this frame.
//
// Usage:
//
//	ctx.ComboBox(id, qualities[q], func() {
//	    for i, name := range qualities {
//	        if ctx.Selectable(name, i == q) {
//	            q = i
//	        }
//	    }
//	})
func (ctx *Context) ComboBox(id ID, selectedText string, body func(), opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	state := GetState(ctx, id, ComboBoxState{})

	h := ctx.lineHeight() + ctx.style.ButtonPadding*2
	arrowSize := ctx.cellSize().X
	w := ctx.MeasureText(selectedText).X + ctx.style.ButtonPadding*3 + arrowSize
	if width := GetOpt(o, OptWidth); width > 0 {
		w = width
	}
	header := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	if ctx.isClicked(id, header) {
		state.Open = !state.Open
		state.ScrollY = 0
	}

	bgColor := ctx.style.ButtonColor
	if state.Open || ctx.isHovered(header) {
		bgColor = ctx.style.ButtonHoveredColor
	}
	ctx.addRect(header, bgColor)
	ctx.addRectOutline(header, ctx.style.InputBorderColor)
	ctx.AddText(Vec2{pos.X + ctx.style.ButtonPadding, pos.Y + ctx.style.ButtonPadding}, selectedText, ctx.style.TextColor)

	ax := pos.X + w - ctx.style.ButtonPadding - arrowSize
	ay := pos.Y + h/2
	if state.Open {
		ctx.addTriangle(Vec2{ax + arrowSize/2, ay - arrowSize/4}, Vec2{ax + arrowSize, ay + arrowSize/4}, Vec2{ax, ay + arrowSize/4}, ctx.style.ArrowColor)
	} else {
		ctx.addTriangle(Vec2{ax, ay - arrowSize/4}, Vec2{ax + arrowSize, ay - arrowSize/4}, Vec2{ax + arrowSize/2, ay + arrowSize/4}, ctx.style.ArrowColor)
	}
	ctx.advanceCursor(Vec2{w, h})

	interacted := false
	if state.Open {
		interacted = ctx.comboPopup(id, header, &state, body, GetOpt(o, OptMaxDropdownHeight))
	}

	SetState(ctx, id, state)
	return interacted
}

// comboPopup draws the open dropdown of a ComboBox below its header.
func (ctx *Context) comboPopup(id ID, header Rect, state *ComboBoxState, body func(), maxHeight float32) bool {
	ctx.WantCaptureKeyboard = true
	if maxHeight <= 0 {
		maxHeight = 200
	}

	popup := ctx.popupRegion(id.With("popup"), Vec2{header.X, header.Y + header.H}, header.W, maxHeight, state.ScrollY, &state.Size, body)

	input := ctx.Input
	if input == nil {
		return false
	}
	mouse := ctx.mousePos()
	if popup.Contains(mouse) && input.MouseWheelY != 0 {
		maxScroll := maxf(0, state.Size.Y+ctx.style.InputPadding*2-popup.H)
		state.ScrollY = clampf(state.ScrollY-input.MouseWheelY*20, 0, maxScroll)
	}

	clicked := input.MouseClicked(MouseButtonLeft) && popup.Contains(mouse)
	switch {
	case clicked:
		state.Open = false
	case input.MouseClicked(MouseButtonLeft) && !header.Contains(mouse):
		state.Open = false
	case input.KeyPressed(KeyEscape):
		state.Open = false
	}
	return clicked
}

// ComboBoxIndex is a ComboBox over a list of strings.
// Returns true if the selection changed.
//
//	items := []string{"Low", "Medium", "High"}
//	if ctx.ComboBoxIndex(ctx.GetID("quality"), &selectedIndex, items) {
//	    applyQuality(selectedIndex)
//	}
func (ctx *Context) ComboBoxIndex(id ID, selectedIndex *int, items []string, opts ...Option) bool {
	selected := ""
	if *selectedIndex >= 0 && *selectedIndex < len(items) {
		selected = items[*selectedIndex]
	}
	changed := false
	ctx.ComboBox(id, selected, func() {
		for i, item := range items {
			if ctx.Selectable(item, i == *selectedIndex, WithID(item)) && i != *selectedIndex {
				*selectedIndex = i
				changed = true
			}
		}
	}, opts...)
	return changed
}

// popupRegion draws a popup box at pos on the foreground layer and runs body
// inside it. The box is sized from *size, the content size measured last
// frame, which is updated for the next one. Returns the popup rect.
func (ctx *Context) popupRegion(id ID, pos Vec2, minWidth, maxHeight, scrollY float32, size *Vec2, body func()) Rect {
	pad := ctx.style.InputPadding
	popup := Rect{
		X: pos.X,
		Y: pos.Y,
		W: maxf(minWidth, size.X+pad*2),
		H: minf(maxf(size.Y+pad*2, ctx.lineHeight()), maxHeight),
	}

	ctx.inPopup++
	ctx.popupRects = append(ctx.popupRects, popup)
	ctx.addRect(popup, ctx.style.DropdownBgColor)
	ctx.addRectOutline(popup, ctx.style.InputBorderColor)

	inner := Rect{X: popup.X + pad, Y: popup.Y + pad - scrollY, W: popup.W - pad*2, H: Everything.H}
	used := ctx.Region(inner, id, popup, body)
	if used.Size() != *size {
		*size = used.Size()
		ctx.RequestRedraw()
	}
	ctx.inPopup--
	return popup
}
