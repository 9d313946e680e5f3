package gui

// ColorEdit draws a color swatch; clicking it opens a popup with one drag
// field per channel (0..1). Without alpha the fourth channel is left alone.
// Returns true if the color changed.
func (ctx *Context) ColorEdit(id ID, rgba *[4]float32, alpha bool) bool {
	pos := ctx.ItemPos()
	state := GetState(ctx, id, ColorEditState{})

	h := ctx.lineHeight() + ctx.style.InputPadding*2
	swatch := Rect{X: pos.X, Y: pos.Y, W: h * 2, H: h}

	if ctx.isClicked(id, swatch) {
		state.Open = !state.Open
	}

	shown := *rgba
	if !alpha {
		shown[3] = 1
	}
	// Checker behind translucent colors.
	if shown[3] < 1 {
		half := Rect{X: swatch.X, Y: swatch.Y, W: swatch.W / 2, H: swatch.H / 2}
		ctx.addRect(swatch, ColorWhite)
		ctx.addRect(half, ColorGray)
		ctx.addRect(Rect{X: half.X + half.W, Y: half.Y + half.H, W: half.W, H: half.H}, ColorGray)
	}
	ctx.addRect(swatch, RGBAf(shown[0], shown[1], shown[2], shown[3]))
	ctx.addRectOutline(swatch, ctx.style.InputBorderColor)
	ctx.advanceCursor(swatch.Size())

	changed := false
	if state.Open {
		channels := []string{"r: ", "g: ", "b: ", "a: "}
		if !alpha {
			channels = channels[:3]
		}
		popup := ctx.popupRegion(id.With("popup"), Vec2{swatch.X, swatch.Y + swatch.H}, swatch.W, Everything.H, 0, &state.Size, func() {
			for i, prefix := range channels {
				v := float64(rgba[i])
				if ctx.DragValue(id.With(i), &v, WithRange(0, 1), WithDragSpeed(0.005), WithDecimals(3), WithPrefix(prefix)) {
					rgba[i] = float32(v)
					changed = true
				}
			}
		})
		if input := ctx.Input; input != nil {
			m := ctx.mousePos()
			if input.MouseClicked(MouseButtonLeft) && !popup.Contains(m) && !swatch.Contains(m) || input.KeyPressed(KeyEscape) {
				state.Open = false
			}
		}
	}

	SetState(ctx, id, state)
	return changed
}
