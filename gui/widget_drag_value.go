package gui

import (
	"math"
	"strconv"
	"strings"
)

// DragValue draws a numeric field. Drag left/right to change the value, or
// click without moving to type a new one (Enter or clicking elsewhere
// commits, Escape cancels). The range option limits what dragging and
// typing can produce; a value already outside the range is shown as is.
// Returns true if the value was changed.
//
// Usage:
//
//	ctx.HStack()(func() {
//	    ctx.DragValue(ctx.GetID("x"), &pos.X, WithPrefix("x: "))
//	    ctx.DragValue(ctx.GetID("y"), &pos.Y, WithPrefix("y: "))
//	})
func (ctx *Context) DragValue(id ID, value *float64, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	prefix := GetOpt(o, OptPrefix)
	suffix := GetOpt(o, OptSuffix)
	decimals := GetOpt(o, OptDecimals)
	bounds := GetOpt(o, OptRange)
	step := GetOpt(o, OptStep)
	speed := GetOpt(o, OptDragSpeed)
	if speed == 0 {
		speed = 1
		if step > 0 {
			speed = step
		}
	}

	state := GetState(ctx, id, DragValueState{})

	text := prefix + FormatNumber(*value, decimals) + suffix
	w := maxf(ctx.MeasureText(text).X, ctx.cellSize().X*4) + ctx.style.InputPadding*2
	if width := GetOpt(o, OptWidth); width > 0 {
		w = width
	}
	h := ctx.lineHeight() + ctx.style.InputPadding*2
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	hovered := ctx.isHovered(rect)
	changed := false

	commit := func() {
		v, err := strconv.ParseFloat(strings.TrimSpace(state.EditText), 64)
		if err != nil {
			return
		}
		v = snap(bounds.Clamp(v), step)
		if v != *value {
			*value = v
			changed = true
		}
	}

	if input := ctx.Input; input != nil {
		switch {
		case state.Editing:
			ctx.WantCaptureKeyboard = true
			for _, ch := range input.InputChars {
				if (ch >= '0' && ch <= '9') || ch == '.' || ch == '-' || ch == 'e' || ch == '+' {
					state.EditText += string(ch)
				}
			}
			if input.KeyRepeated(KeyBackspace) && len(state.EditText) > 0 {
				state.EditText = state.EditText[:len(state.EditText)-1]
			}
			switch {
			case input.KeyPressed(KeyEnter):
				commit()
				state.Editing = false
			case input.KeyPressed(KeyEscape):
				state.Editing = false
			case input.MouseClicked(MouseButtonLeft) && !hovered:
				commit()
				state.Editing = false
			}
			if !state.Editing && ctx.IsFocused(id) {
				ctx.ClearFocus()
			}

		case ctx.isClicked(id, rect):
			state.Dragging = true
			state.DragStartX = input.MouseX
			state.DragStartValue = *value
			ctx.activeID = id

		case state.Dragging && input.MouseReleased(MouseButtonLeft):
			if absf(input.MouseX-state.DragStartX) < 3 {
				state.Editing = true
				state.EditText = FormatNumber(*value, decimals)
				ctx.SetFocused(id)
			}
			state.Dragging = false

		case state.Dragging && input.MouseDown(MouseButtonLeft):
			dx := float64(input.MouseX - state.DragStartX)
			v := state.DragStartValue + dx*speed
			if dx != 0 {
				v = snap(bounds.Clamp(v), step)
			}
			if v != *value {
				*value = v
				changed = true
			}
			ctx.WantCaptureMouse = true
		}
	}

	bgColor := ctx.style.InputBgColor
	if state.Editing || hovered || state.Dragging {
		bgColor = ctx.style.InputFocusedBgColor
	}
	ctx.addRect(rect, bgColor)
	ctx.addRectOutline(rect, ctx.style.InputBorderColor)

	textPos := Vec2{pos.X + ctx.style.InputPadding, pos.Y + ctx.style.InputPadding}
	if state.Editing {
		shown := prefix + state.EditText + suffix
		ctx.AddText(textPos, shown, ctx.style.TextColor)
		if (ctx.FrameCount/30)%2 == 0 {
			x := textPos.X + ctx.MeasureText(prefix+state.EditText).X
			ctx.addLine(Vec2{x, pos.Y + 2}, Vec2{x, pos.Y + h - 2}, ctx.style.TextColor, 1)
		}
	} else {
		ctx.AddText(textPos, prefix+FormatNumber(*value, decimals)+suffix, ctx.style.TextColor)
	}

	SetState(ctx, id, state)
	ctx.advanceCursor(Vec2{w, h})
	return changed
}

// snap rounds v to the nearest multiple of step. A zero step leaves v alone.
func snap(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}

// FormatNumber renders v with a fixed number of decimals, or with the
// shortest exact form (capped at 6 decimals) when decimals is negative.
func FormatNumber(v float64, decimals int) string {
	if decimals >= 0 {
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s)-dot-1 > 6 {
		s = strings.TrimRight(strconv.FormatFloat(v, 'f', 6, 64), "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
