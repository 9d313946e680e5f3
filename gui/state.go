package gui

// StateStore persists widget state between frames.
// Lookups never fail; a missing entry is reported with ok == false and the
// caller falls back to its default.
type StateStore interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
	Delete(id ID)
}

// MapStateStore is a simple map-based state store that never forgets.
type MapStateStore map[ID]any

func (m MapStateStore) Get(id ID) (any, bool) {
	v, ok := m[id]
	return v, ok
}

func (m MapStateStore) Set(id ID, value any) {
	m[id] = value
}

func (m MapStateStore) Delete(id ID) {
	delete(m, id)
}

// Load returns the typed value stored under id, or defaultVal when the entry
// is missing or holds a different type.
func Load[T any](store StateStore, id ID, defaultVal T) T {
	if store == nil {
		return defaultVal
	}
	if v, ok := store.Get(id); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return defaultVal
}

// GetState retrieves typed state from the context's store.
func GetState[T any](ctx *Context, id ID, defaultVal T) T {
	return Load(ctx.stateStore, id, defaultVal)
}

// SetState stores typed state in the context's store.
func SetState[T any](ctx *Context, id ID, value T) {
	if ctx.stateStore != nil {
		ctx.stateStore.Set(id, value)
	}
}

// DeleteState removes state for an ID.
func DeleteState(ctx *Context, id ID) {
	if ctx.stateStore != nil {
		ctx.stateStore.Delete(id)
	}
}

// Common widget state types

// InputTextState holds state for text input widgets.
type InputTextState struct {
	Editing         bool
	CursorPos       int     // Cursor position in runes
	SelectionStart  int     // -1 when nothing is selected
	SelectionEnd    int     // -1 when nothing is selected
	ScrollOffset    float32 // Horizontal scroll for long text
	CursorBlinkTime float32

	UndoStack []string
	RedoStack []string
}

const maxUndoDepth = 50

// HasSelection returns true if there is an active selection.
func (s *InputTextState) HasSelection() bool {
	return s.SelectionStart >= 0 && s.SelectionEnd >= 0 && s.SelectionStart != s.SelectionEnd
}

// SelectedRange returns the normalized selection range (start < end).
func (s *InputTextState) SelectedRange() (start, end int) {
	if s.SelectionStart < s.SelectionEnd {
		return s.SelectionStart, s.SelectionEnd
	}
	return s.SelectionEnd, s.SelectionStart
}

// ClearSelection removes the selection.
func (s *InputTextState) ClearSelection() {
	s.SelectionStart = -1
	s.SelectionEnd = -1
}

// SelectAll selects all text.
func (s *InputTextState) SelectAll(textLen int) {
	s.SelectionStart = 0
	s.SelectionEnd = textLen
	s.CursorPos = textLen
}

// PushUndo saves the current text before a modification.
func (s *InputTextState) PushUndo(text string) {
	if n := len(s.UndoStack); n > 0 && s.UndoStack[n-1] == text {
		return
	}
	s.UndoStack = append(s.UndoStack, text)
	if len(s.UndoStack) > maxUndoDepth {
		s.UndoStack = s.UndoStack[1:]
	}
	s.RedoStack = s.RedoStack[:0]
}

// Undo restores the previous text.
func (s *InputTextState) Undo(current string) (string, bool) {
	n := len(s.UndoStack)
	if n == 0 {
		return current, false
	}
	prev := s.UndoStack[n-1]
	s.UndoStack = s.UndoStack[:n-1]
	s.RedoStack = append(s.RedoStack, current)
	return prev, true
}

// Redo re-applies the last undone change.
func (s *InputTextState) Redo(current string) (string, bool) {
	n := len(s.RedoStack)
	if n == 0 {
		return current, false
	}
	next := s.RedoStack[n-1]
	s.RedoStack = s.RedoStack[:n-1]
	s.UndoStack = append(s.UndoStack, current)
	return next, true
}

// ComboBoxState holds state for combo box widgets.
type ComboBoxState struct {
	Open    bool
	ScrollY float32
	Size    Vec2 // popup content size measured last frame
}

// DragValueState holds state for drag value widgets.
type DragValueState struct {
	Editing        bool
	EditText       string
	Dragging       bool
	DragStartX     float32
	DragStartValue float64
}

// ColorEditState holds state for the color editor popup.
type ColorEditState struct {
	Open bool
	Size Vec2 // popup content size measured last frame
}

// animState tracks an eased transition toward a boolean target.
type animState struct {
	Value  float32
	Target bool
}
