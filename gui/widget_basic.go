package gui

import "math"

// textItem draws text at the next item position and returns its rect.
func (ctx *Context) textItem(text string, color uint32) Rect {
	pos := ctx.ItemPos()
	size := ctx.MeasureText(text)
	ctx.AddText(pos, text, color)
	ctx.advanceCursor(size)
	return Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	ctx.textItem(text, ctx.style.TextColor)
}

// Label draws text and returns the rect it occupies.
func (ctx *Context) Label(text string) Rect {
	return ctx.textItem(text, ctx.style.TextColor)
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	ctx.textItem(text, color)
}

// TextDisabled draws text with the disabled color. Used for hints and
// summaries that should not compete with editable values.
func (ctx *Context) TextDisabled(text string) {
	ctx.textItem(text, ctx.style.TextDisabledColor)
}

// Button draws a button and returns true if clicked.
func (ctx *Context) Button(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: textSize.Y + ctx.style.ButtonPadding*2,
	}
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		size.X = optWidth
	}
	if optHeight := GetOpt(o, OptHeight); optHeight > 0 {
		size.Y = optHeight
	}

	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	disabled := GetOpt(o, OptDisabled)

	bgColor := ctx.style.ButtonColor
	if !disabled && ctx.isHovered(rect) {
		bgColor = ctx.style.ButtonHoveredColor
	}
	if !disabled && ctx.isPressed(rect) {
		bgColor = ctx.style.ButtonActiveColor
	}
	if disabled {
		bgColor = ctx.style.ButtonDisabledColor
	}
	ctx.addRect(rect, bgColor)

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.AddText(Vec2{pos.X + (size.X-textSize.X)/2, pos.Y + (size.Y-textSize.Y)/2}, label, textColor)

	clicked := !disabled && ctx.isClicked(id, rect)
	ctx.advanceCursor(size)
	return clicked
}

// SmallButton draws a smaller button without extra padding.
func (ctx *Context) SmallButton(label string, opts ...Option) bool {
	saved := ctx.style.ButtonPadding
	ctx.style.ButtonPadding = 1
	clicked := ctx.Button(label, opts...)
	ctx.style.ButtonPadding = saved
	return clicked
}

// Selectable draws a label that highlights when selected or hovered.
// Returns true if clicked.
func (ctx *Context) Selectable(label string, selected bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	textSize := ctx.MeasureText(label)
	pad := ctx.style.ButtonPadding / 2
	size := Vec2{X: textSize.X + pad*2, Y: textSize.Y}
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		size.X = optWidth
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	disabled := GetOpt(o, OptDisabled)

	textColor := ctx.style.TextColor
	switch {
	case selected:
		ctx.addRect(rect, ctx.style.SelectedBgColor)
		textColor = ctx.style.SelectedTextColor
	case !disabled && ctx.isHovered(rect):
		ctx.addRect(rect, ctx.style.HoveredBgColor)
	}
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.AddText(Vec2{pos.X + pad, pos.Y}, label, textColor)

	clicked := !disabled && ctx.isClicked(id, rect)
	ctx.advanceCursor(size)
	return clicked
}

// Checkbox draws a checkbox with an optional label.
// Returns true if the value changed.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	boxSize := ctx.lineHeight()
	totalWidth := boxSize
	if label != "" {
		totalWidth += ctx.style.ItemSpacing + ctx.MeasureText(label).X
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: totalWidth, H: boxSize}
	box := Rect{X: pos.X, Y: pos.Y, W: boxSize, H: boxSize}
	disabled := GetOpt(o, OptDisabled)

	boxColor := ctx.style.InputBgColor
	if !disabled && ctx.isHovered(rect) {
		boxColor = ctx.style.InputFocusedBgColor
	}
	ctx.addRect(box, boxColor)
	ctx.addRectOutline(box, ctx.style.InputBorderColor)

	if *value {
		padding := boxSize * 0.2
		a := Vec2{pos.X + padding, pos.Y + padding}
		b := Vec2{pos.X + boxSize - padding, pos.Y + boxSize - padding}
		ctx.addLine(a, b, ctx.style.TextColor, 2)
		ctx.addLine(Vec2{a.X, b.Y}, Vec2{b.X, a.Y}, ctx.style.TextColor, 2)
	}

	if label != "" {
		textColor := ctx.style.TextColor
		if disabled {
			textColor = ctx.style.TextDisabledColor
		}
		ctx.AddText(Vec2{pos.X + boxSize + ctx.style.ItemSpacing, pos.Y}, label, textColor)
	}

	changed := false
	if !disabled && ctx.isClicked(id, rect) {
		*value = !*value
		changed = true
	}

	ctx.advanceCursor(Vec2{totalWidth, boxSize})
	return changed
}

// ToggleSwitch draws an on/off switch whose knob slides between states.
// Returns true if the value changed.
func (ctx *Context) ToggleSwitch(id ID, value *bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	h := ctx.lineHeight()
	w := h * 2
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}
	disabled := GetOpt(o, OptDisabled)

	changed := false
	if !disabled && ctx.isClicked(id, rect) {
		*value = !*value
		changed = true
	}

	t := ctx.AnimateBool(id, *value)
	bg := ctx.style.InputBgColor
	if *value {
		bg = ctx.style.ToggleOnColor
	}
	ctx.addRect(rect, bg)
	ctx.addRectOutline(rect, ctx.style.InputBorderColor)

	knob := h - 4
	x := pos.X + 2 + t*(w-knob-4)
	knobColor := ctx.style.TextColor
	if disabled {
		knobColor = ctx.style.TextDisabledColor
	}
	ctx.addRect(Rect{X: x, Y: pos.Y + 2, W: knob, H: knob}, knobColor)

	ctx.advanceCursor(Vec2{w, h})
	return changed
}

// CollapseIcon draws the disclosure triangle of a collapsible row. openness
// rotates it from pointing right (0) to pointing down (1).
// Returns true if clicked.
func (ctx *Context) CollapseIcon(id ID, openness float32) bool {
	pos := ctx.ItemPos()
	size := ctx.style.IconWidth
	h := maxf(size, ctx.lineHeight())
	rect := Rect{X: pos.X, Y: pos.Y, W: size, H: h}

	color := ctx.style.ArrowColor
	if ctx.isHovered(rect) {
		color = ctx.style.TextColor
	}

	c := rect.Center()
	r := size * 0.4
	angle := float64(openness) * math.Pi / 2
	sin, cos := float32(math.Sin(angle)), float32(math.Cos(angle))
	rot := func(x, y float32) Vec2 {
		return Vec2{c.X + x*cos - y*sin, c.Y + x*sin + y*cos}
	}
	ctx.addTriangle(rot(-r*0.6, -r), rot(r, 0), rot(-r*0.6, r), color)

	clicked := ctx.isClicked(id, rect)
	ctx.advanceCursor(Vec2{size, h})
	return clicked
}

// Tooltip shows a tooltip next to the mouse when rect is hovered.
func (ctx *Context) Tooltip(rect Rect, text string) {
	if !ctx.isHovered(rect) {
		return
	}
	m := ctx.mousePos()
	size := ctx.MeasureText(text)
	pad := ctx.style.InputPadding
	box := Rect{X: m.X + 12, Y: m.Y + 12, W: size.X + pad*2, H: size.Y + pad*2}

	ctx.inPopup++
	ctx.addRect(box, ctx.style.DropdownBgColor)
	ctx.addRectOutline(box, ctx.style.InputBorderColor)
	ctx.AddText(Vec2{box.X + pad, box.Y + pad}, text, ctx.style.TextColor)
	ctx.inPopup--
}
