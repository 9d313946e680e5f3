package gui

import "strings"

// TextEdit draws an editable text field bound to value.
// Features: cursor positioning, text selection, clipboard (Ctrl+C/V/X),
// undo/redo (Ctrl+Z/Y), and keyboard navigation (arrows, Home/End).
// With Multiline, Enter inserts a newline and the field grows with its
// content; Escape leaves edit mode.
// Returns true if the value changed.
func (ctx *Context) TextEdit(id ID, value *string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	multiline := GetOpt(o, OptMultiline)

	state := GetState(ctx, id, InputTextState{
		CursorPos:      len([]rune(*value)),
		SelectionStart: -1,
		SelectionEnd:   -1,
	})

	w := ctx.style.TextEditWidth
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		w = optWidth
	}
	lines := 1
	if multiline {
		lines = max(strings.Count(*value, "\n")+1, 2)
	}
	h := float32(lines)*ctx.lineHeight() + ctx.style.InputPadding*2
	if optHeight := GetOpt(o, OptHeight); optHeight > 0 {
		h = optHeight
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	runes := []rune(*value)
	state.CursorPos = min(max(state.CursorPos, 0), len(runes))
	if state.SelectionStart > len(runes) || state.SelectionEnd > len(runes) {
		state.ClearSelection()
	}

	textPos := Vec2{pos.X + ctx.style.InputPadding, pos.Y + ctx.style.InputPadding}
	maxWidth := w - ctx.style.InputPadding*2

	// Click to focus and place the cursor; click elsewhere to leave.
	if ctx.isClicked(id, rect) {
		ctx.SetFocused(id)
		state.Editing = true
		state.CursorBlinkTime = 0
		state.CursorPos = ctx.textIndexAt(runes, ctx.mousePos().Sub(textPos).Add(Vec2{X: state.ScrollOffset}))
		state.ClearSelection()
	} else if ctx.IsFocused(id) && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
		ctx.ClearFocus()
	}
	if state.Editing && !ctx.IsFocused(id) {
		state.Editing = false
		state.ClearSelection()
	}

	changed := false
	if state.Editing && ctx.Input != nil {
		ctx.WantCaptureKeyboard = true
		changed = ctx.processTextEditKeyboard(value, &state, &runes, multiline)
		if !state.Editing {
			ctx.ClearFocus()
		}
	}

	// Keep the cursor visible on long single lines.
	cursorLine, cursorCol := lineCol(runes, state.CursorPos)
	cursorX := ctx.MeasureText(string(cursorLine[:cursorCol])).X
	if !multiline {
		if cursorX-state.ScrollOffset > maxWidth {
			state.ScrollOffset = cursorX - maxWidth + ctx.cellSize().X
		}
		if cursorX < state.ScrollOffset {
			state.ScrollOffset = cursorX
		}
		state.ScrollOffset = maxf(0, state.ScrollOffset)
	} else {
		state.ScrollOffset = 0
	}

	bgColor := ctx.style.InputBgColor
	if state.Editing {
		bgColor = ctx.style.InputFocusedBgColor
	}
	ctx.addRect(rect, bgColor)
	ctx.addRectOutline(rect, ctx.style.InputBorderColor)

	ctx.PushClipRect(Rect{X: textPos.X, Y: pos.Y, W: maxWidth, H: h})
	origin := Vec2{textPos.X - state.ScrollOffset, textPos.Y}

	if state.Editing && state.HasSelection() {
		ctx.drawSelection(runes, &state, origin)
	}

	textColor := ctx.style.TextColor
	if c := GetOpt(o, OptTextColor); c != 0 {
		textColor = c
	}
	if *value == "" && !state.Editing {
		if hint := GetOpt(o, OptHint); hint != "" {
			ctx.AddText(origin, hint, ctx.style.TextDisabledColor)
		}
	}
	for i, line := range strings.Split(*value, "\n") {
		ctx.AddText(Vec2{origin.X, origin.Y + float32(i)*ctx.lineHeight()}, line, textColor)
	}

	if state.Editing {
		state.CursorBlinkTime += ctx.DeltaTime
		if int(state.CursorBlinkTime*2)%2 == 0 {
			row := float32(strings.Count(string(runes[:state.CursorPos]), "\n"))
			x := origin.X + cursorX
			y := origin.Y + row*ctx.lineHeight()
			ctx.addLine(Vec2{x, y}, Vec2{x, y + ctx.lineHeight()}, textColor, 1)
		}
	}
	ctx.PopClipRect()

	SetState(ctx, id, state)
	ctx.advanceCursor(Vec2{w, h})
	return changed
}

// lineCol returns the line containing rune index pos and the column of pos
// within it.
func lineCol(runes []rune, pos int) ([]rune, int) {
	start := pos
	for start > 0 && runes[start-1] != '\n' {
		start--
	}
	end := pos
	for end < len(runes) && runes[end] != '\n' {
		end++
	}
	return runes[start:end], pos - start
}

// textIndexAt maps a point relative to the text origin to a rune index.
func (ctx *Context) textIndexAt(runes []rune, p Vec2) int {
	row := int(p.Y / ctx.lineHeight())
	i := 0
	for row > 0 && i < len(runes) {
		if runes[i] == '\n' {
			row--
		}
		i++
	}
	line, _ := lineCol(runes, i)
	best := i
	for col := 0; col <= len(line); col++ {
		if ctx.MeasureText(string(line[:col])).X > p.X {
			break
		}
		best = i + col
	}
	return best
}

func (ctx *Context) drawSelection(runes []rune, state *InputTextState, origin Vec2) {
	start, end := state.SelectedRange()
	row := strings.Count(string(runes[:start]), "\n")
	for i := start; i < end; {
		line, col := lineCol(runes, i)
		lineEnd := i - col + len(line)
		segEnd := min(end, lineEnd)
		x0 := ctx.MeasureText(string(line[:col])).X
		x1 := ctx.MeasureText(string(line[:col+segEnd-i])).X
		y := origin.Y + float32(row)*ctx.lineHeight()
		ctx.addRect(Rect{X: origin.X + x0, Y: y, W: maxf(x1-x0, 2), H: ctx.lineHeight()}, ctx.style.SelectedBgColor)
		i = segEnd + 1
		row++
	}
}

// processTextEditKeyboard handles keyboard input for TextEdit.
// Returns true if the value changed.
func (ctx *Context) processTextEditKeyboard(value *string, state *InputTextState, runes *[]rune, multiline bool) bool {
	changed := false
	input := ctx.Input

	set := func(r []rune) {
		*runes = r
		*value = string(r)
		changed = true
	}
	insert := func(ins []rune) {
		out := make([]rune, 0, len(*runes)+len(ins))
		out = append(out, (*runes)[:state.CursorPos]...)
		out = append(out, ins...)
		out = append(out, (*runes)[state.CursorPos:]...)
		set(out)
		state.CursorPos += len(ins)
	}
	deleteSelection := func() bool {
		if !state.HasSelection() {
			return false
		}
		start, end := state.SelectedRange()
		state.PushUndo(*value)
		set(append((*runes)[:start:start], (*runes)[end:]...))
		state.CursorPos = start
		state.ClearSelection()
		return true
	}
	move := func(to int) {
		if input.ModShift {
			if state.SelectionStart < 0 {
				state.SelectionStart = state.CursorPos
			}
			state.SelectionEnd = to
		} else {
			state.ClearSelection()
		}
		state.CursorPos = to
		state.CursorBlinkTime = 0
	}

	if input.ModCtrl {
		switch {
		case input.KeyPressed(KeyA):
			state.SelectAll(len(*runes))
		case input.KeyPressed(KeyC):
			if state.HasSelection() {
				start, end := state.SelectedRange()
				ctx.clipboardSet(string((*runes)[start:end]))
			}
		case input.KeyPressed(KeyX):
			if state.HasSelection() {
				start, end := state.SelectedRange()
				ctx.clipboardSet(string((*runes)[start:end]))
				deleteSelection()
			}
		case input.KeyPressed(KeyV):
			if text := ctx.clipboardGet(); text != "" {
				if !multiline {
					text = strings.ReplaceAll(text, "\n", " ")
				}
				deleteSelection()
				state.PushUndo(*value)
				insert([]rune(text))
			}
		case input.KeyPressed(KeyZ) && !input.ModShift:
			if undone, ok := state.Undo(*value); ok {
				set([]rune(undone))
				state.CursorPos = len(*runes)
				state.ClearSelection()
			}
		case input.KeyPressed(KeyY), input.KeyPressed(KeyZ):
			if redone, ok := state.Redo(*value); ok {
				set([]rune(redone))
				state.CursorPos = len(*runes)
				state.ClearSelection()
			}
		}
		if input.KeyRepeated(KeyLeft) {
			move(findWordBoundaryLeft(*runes, state.CursorPos))
		}
		if input.KeyRepeated(KeyRight) {
			move(findWordBoundaryRight(*runes, state.CursorPos))
		}
		return changed
	}

	if input.KeyRepeated(KeyLeft) && state.CursorPos > 0 {
		move(state.CursorPos - 1)
	}
	if input.KeyRepeated(KeyRight) && state.CursorPos < len(*runes) {
		move(state.CursorPos + 1)
	}
	if multiline && (input.KeyRepeated(KeyUp) || input.KeyRepeated(KeyDown)) {
		line, col := lineCol(*runes, state.CursorPos)
		lineStart := state.CursorPos - col
		if input.KeyRepeated(KeyUp) && lineStart > 0 {
			prev, _ := lineCol(*runes, lineStart-1)
			move(lineStart - 1 - len(prev) + min(col, len(prev)))
		}
		if input.KeyRepeated(KeyDown) && lineStart+len(line) < len(*runes) {
			nextStart := lineStart + len(line) + 1
			next, _ := lineCol(*runes, nextStart)
			move(nextStart + min(col, len(next)))
		}
	}
	if input.KeyPressed(KeyHome) {
		_, col := lineCol(*runes, state.CursorPos)
		move(state.CursorPos - col)
	}
	if input.KeyPressed(KeyEnd) {
		line, col := lineCol(*runes, state.CursorPos)
		move(state.CursorPos - col + len(line))
	}

	if input.KeyRepeated(KeyBackspace) {
		if !deleteSelection() && state.CursorPos > 0 {
			state.PushUndo(*value)
			set(append((*runes)[:state.CursorPos-1:state.CursorPos-1], (*runes)[state.CursorPos:]...))
			state.CursorPos--
		}
		state.CursorBlinkTime = 0
	}
	if input.KeyRepeated(KeyDelete) {
		if !deleteSelection() && state.CursorPos < len(*runes) {
			state.PushUndo(*value)
			set(append((*runes)[:state.CursorPos:state.CursorPos], (*runes)[state.CursorPos+1:]...))
		}
		state.CursorBlinkTime = 0
	}

	if input.KeyPressed(KeyEscape) {
		state.Editing = false
		return changed
	}
	if input.KeyPressed(KeyEnter) {
		if !multiline {
			state.Editing = false
			return changed
		}
		deleteSelection()
		state.PushUndo(*value)
		insert([]rune{'\n'})
	}

	for _, ch := range input.InputChars {
		if ch >= 32 {
			deleteSelection()
			state.PushUndo(*value)
			insert([]rune{ch})
		}
	}
	return changed
}

// findWordBoundaryLeft finds the start of the word to the left of pos.
func findWordBoundaryLeft(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	pos--
	for pos > 0 && isWhitespace(runes[pos]) {
		pos--
	}
	for pos > 0 && !isWhitespace(runes[pos-1]) {
		pos--
	}
	return pos
}

// findWordBoundaryRight finds the end of the word to the right of pos.
func findWordBoundaryRight(runes []rune, pos int) int {
	n := len(runes)
	for pos < n && !isWhitespace(runes[pos]) {
		pos++
	}
	for pos < n && isWhitespace(runes[pos]) {
		pos++
	}
	return pos
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
