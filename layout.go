package probe

import "github.com/go-theft-auto/probe/gui"

// LayoutState is the persisted label column width of one probe tree.
type LayoutState struct {
	LabelsWidth float32
}

// Layout lines up the value column of every row in a probe tree.
//
// Rows are drawn before the widest label is known, so each frame places
// values after the width measured last frame and measures again. A column
// that grows settles in the next frame. So does one that shrinks.
type Layout struct {
	id             ID
	state          LayoutState
	minLabelsWidth float32
	indentSize     float32
	dirty          bool
}

// LoadLayoutState returns the layout state stored under id, or the zero
// state.
func LoadLayoutState(store StateStore, id ID) LayoutState {
	return gui.Load(store, id, LayoutState{})
}

func loadLayout(s Surface, id ID, style *Style) *Layout {
	return &Layout{
		id:         id,
		state:      LoadLayoutState(s.Memory(), id),
		indentSize: style.FieldIndentSize,
	}
}

// LabelsWidth is the column width this frame lays rows out with.
func (l *Layout) LabelsWidth() float32 { return l.state.LabelsWidth }

// MinLabelsWidth is the widest label measured so far this frame.
func (l *Layout) MinLabelsWidth() float32 { return l.minLabelsWidth }

func (l *Layout) bumpLabelsWidth(w float32) {
	if l.minLabelsWidth < w {
		l.minLabelsWidth = w
		l.dirty = true
	}
}

// store saves the width measured this frame for the next one.
func (l *Layout) store(s Surface) {
	if !l.dirty || l.minLabelsWidth == l.state.LabelsWidth {
		return
	}
	l.state.LabelsWidth = l.minLabelsWidth
	s.Memory().Set(l.id, l.state)
	s.RequestRedraw()
	l.dirty = false
}

// InnerLabelUI draws the label column of a row: indent marks followed by
// whatever fn draws, clipped to the column width.
func (l *Layout) InnerLabelUI(indent int, id ID, s Surface, fn func(Surface)) {
	labelsWidth := l.state.LabelsWidth
	cursor := s.Cursor()
	maxX := min(cursor.Max().X, cursor.X+labelsWidth)
	rect := gui.RectFromMinMax(cursor.Min(), Vec2{X: maxX, Y: cursor.Max().Y})
	clip := s.ClipRect().Intersect(gui.EverythingLeftOf(maxX))

	used := s.Child(rect.Intersect(s.MaxRect()), id, clip, func(c Surface) {
		c.Horizontal(func(row Surface) {
			for range indent {
				l.indentMark(row)
			}
			fn(row)
		})
	})

	l.bumpLabelsWidth(used.W)
	used.W = labelsWidth
	s.AdvanceCursorAfter(used)
}

// InnerValueUI draws the value column of a row in the space left of it.
func (l *Layout) InnerValueUI(id ID, s Surface, fn func(Surface)) {
	used := s.Child(s.Cursor().Intersect(s.MaxRect()), id, s.ClipRect(), fn)
	s.AdvanceCursorAfter(used)
}

func (l *Layout) indentMark(s Surface) {
	if l.indentSize > 0 {
		s.AddSpace(l.indentSize)
		return
	}
	s.Separator()
}
