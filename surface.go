package probe

import "github.com/go-theft-auto/probe/gui"

// Types shared with the host toolkit.
type (
	ID         = gui.ID
	Rect       = gui.Rect
	Vec2       = gui.Vec2
	StateStore = gui.StateStore
)

// Everything is a clip rect that clips nothing.
var Everything = gui.Everything

// Spacing holds the metrics editors need to line things up.
type Spacing struct {
	ItemSpacing float32
	IndentWidth float32
	IconWidth   float32
	LineHeight  float32
}

// TextEditOptions configures Surface.TextEdit.
type TextEditOptions struct {
	Multiline bool
	Width     float32 // 0 uses the host default
	Error     bool    // draw the text in the error color
	Hint      string  // shown while the field is empty
}

// DragOptions configures Surface.DragValue. The range only limits what
// dragging and typing can produce.
type DragOptions struct {
	Min, Max       float64
	HasMin, HasMax bool
	Step           float64 // 0 means continuous
	Speed          float64 // value change per dragged pixel, 0 picks from Step
	Integer        bool    // no decimals
	Prefix, Suffix string
}

// Surface is everything probes need from the host toolkit: a place to draw
// primitives, an ID scope, persistent state and animation.
//
// Regions nest: Child, Horizontal and Frame run fn with a Surface scoped to
// the new region and return the rect its contents actually used.
type Surface interface {
	ID() ID
	MakeID(salt any) ID

	// Cursor is the free space where the next item goes.
	Cursor() Rect
	MaxRect() Rect
	// MinRect is the space used by items so far.
	MinRect() Rect
	ClipRect() Rect

	Child(rect Rect, id ID, clip Rect, fn func(Surface)) Rect
	Horizontal(fn func(Surface)) Rect
	Frame(fn func(Surface)) Rect
	AdvanceCursorAfter(r Rect)
	Separator()
	AddSpace(px float32)

	Label(text string) Rect
	WeakLabel(text string)
	ErrorLabel(text string)
	CollapseIcon(id ID, openness float32) bool
	SmallButton(text string) bool
	Selectable(selected bool, text string) bool
	Checkbox(value *bool) bool
	ToggleSwitch(id ID, value *bool) bool
	TextEdit(id ID, value *string, opts TextEditOptions) bool
	DragValue(id ID, value *float64, opts DragOptions) bool
	ColorEdit(id ID, rgba *[4]float32, alpha bool) bool
	// ComboBox runs body only while the dropdown is open and reports
	// whether the dropdown was clicked.
	ComboBox(id ID, selected string, body func(Surface)) bool

	Memory() StateStore
	RequestRedraw()
	AnimateBool(id ID, target bool) float32
	MeasureText(text string) Vec2
	Spacing() Spacing
}
