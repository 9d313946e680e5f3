// Package probetest drives probes headlessly. A Harness runs frames on a
// gui.Context without a window, records every primitive the probes draw and
// replays scripted clicks and edits on the following frame, the way a user
// sees the result of a click one frame later.
package probetest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-theft-auto/probe"
	"github.com/go-theft-auto/probe/gui"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"
)

// Kind names a recorded primitive.
type Kind string

const (
	KindLabel      Kind = "label"
	KindWeakLabel  Kind = "weak"
	KindErrorLabel Kind = "error"
	KindCollapse   Kind = "collapse"
	KindButton     Kind = "button"
	KindSelectable Kind = "selectable"
	KindCheckbox   Kind = "checkbox"
	KindToggle     Kind = "toggle"
	KindTextEdit   Kind = "text"
	KindDrag       Kind = "drag"
	KindColor      Kind = "color"
	KindComboBox   Kind = "combobox"
)

// Widget is one recorded primitive.
type Widget struct {
	Kind  Kind
	Scope probe.ID // ID of the surface it was drawn on
	ID    probe.ID // zero for primitives without their own ID

	// Text is the label, button or selectable text, the contents of a
	// text edit or the selected name of a combobox.
	Text     string
	Checked  bool // checkbox, toggle and selectable state
	Value    float64
	Color    [4]float32
	Openness float32
	Rect     probe.Rect // labels only

	n int // occurrence among widgets with the same key
}

type widgetKey struct {
	kind  Kind
	scope probe.ID
	id    probe.ID
	text  string
	n     int
}

func (w Widget) key() widgetKey {
	if w.ID != 0 {
		return widgetKey{kind: w.Kind, id: w.ID}
	}
	return widgetKey{kind: w.Kind, scope: w.Scope, text: w.Text, n: w.n}
}

// Option configures a Harness.
type Option func(*Harness)

// WithDisplaySize sets the size of the headless display.
func WithDisplaySize(size probe.Vec2) Option {
	return func(h *Harness) { h.size = size }
}

// WithGUIStyle replaces the gui style. Animations are still disabled unless
// the style sets AnimationTime.
func WithGUIStyle(st gui.Style) Option {
	return func(h *Harness) { h.style = st }
}

// WithStore shares a state store between harnesses.
func WithStore(store gui.StateStore) Option {
	return func(h *Harness) { h.store = store }
}

// Harness runs headless frames.
type Harness struct {
	ctx   *gui.Context
	store gui.StateStore
	style gui.Style
	size  probe.Vec2
	dt    float32

	pending map[widgetKey]action
	last    *Frame
}

// New returns a harness with an empty state store and animations turned
// off, so openness jumps straight to its target.
func New(opts ...Option) *Harness {
	st := gui.DefaultStyle()
	st.AnimationTime = 0
	h := &Harness{
		store:   make(gui.MapStateStore),
		style:   st,
		size:    probe.Vec2{X: 800, Y: 600},
		dt:      1.0 / 60,
		pending: make(map[widgetKey]action),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.ctx = gui.NewContext()
	h.ctx.Input = gui.NewInputState()
	h.ctx.SetStateStore(h.store)
	h.ctx.SetStyle(h.style)
	return h
}

// Store returns the state store probes persist into.
func (h *Harness) Store() gui.StateStore { return h.store }

// Last returns the most recent frame, or nil before the first.
func (h *Harness) Last() *Frame { return h.last }

// Frame runs fn as one frame and returns what it drew. Actions queued
// since the previous frame are applied to matching widgets and dropped.
func (h *Harness) Frame(fn func(s probe.Surface)) *Frame {
	h.ctx.SetStyle(h.style)
	h.ctx.BeginFrame(h.size, h.dt)
	defer h.ctx.EndFrame()

	f := &Frame{counts: make(map[widgetKey]int)}
	fn(&recorder{inner: probe.NewSurface(h.ctx), h: h, f: f})
	f.Redraw = h.ctx.RedrawRequested()

	clear(h.pending)
	h.last = f
	return f
}

// Surface runs fn with the surface of a throwaway frame. It is handy for
// reading IDs and metrics outside a probe.
func (h *Harness) Surface(fn func(s probe.Surface)) {
	h.ctx.BeginFrame(h.size, h.dt)
	defer h.ctx.EndFrame()
	fn(probe.NewSurface(h.ctx))
}

type actionKind int

const (
	actClick actionKind = iota
	actText
	actValue
	actColor
	actSelect
)

type action struct {
	kind   actionKind
	text   string
	value  float64
	color  [4]float32
	choice string
}

func (h *Harness) queue(w Widget, a action) { h.pending[w.key()] = a }

// Click clicks w on the next frame. Checkboxes and toggles flip.
func (h *Harness) Click(w Widget) { h.queue(w, action{kind: actClick}) }

// SetText replaces the contents of a text edit on the next frame.
func (h *Harness) SetText(w Widget, text string) {
	h.queue(w, action{kind: actText, text: text})
}

// SetValue drags a value to v on the next frame.
func (h *Harness) SetValue(w Widget, v float64) {
	h.queue(w, action{kind: actValue, value: v})
}

// SetColor picks rgba in a color edit on the next frame.
func (h *Harness) SetColor(w Widget, rgba [4]float32) {
	h.queue(w, action{kind: actColor, color: rgba})
}

// Select opens the combobox w on the next frame and picks choice in it.
func (h *Harness) Select(w Widget, choice string) {
	h.queue(w, action{kind: actSelect, choice: choice})
}

// Frame is what one frame drew, in drawing order.
type Frame struct {
	Widgets []Widget
	Redraw  bool

	counts map[widgetKey]int
}

func (f *Frame) add(w Widget) Widget {
	if w.ID == 0 {
		k := w.key()
		w.n = f.counts[k]
		f.counts[k]++
	}
	f.Widgets = append(f.Widgets, w)
	return w
}

// All returns every widget of kind.
func (f *Frame) All(kind Kind) []Widget {
	var out []Widget
	for _, w := range f.Widgets {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}

// Find returns the first widget of kind with text.
func (f *Frame) Find(kind Kind, text string) (Widget, bool) {
	for _, w := range f.Widgets {
		if w.Kind == kind && w.Text == text {
			return w, true
		}
	}
	return Widget{}, false
}

// Widget is Find that fails the test when nothing matches.
func (f *Frame) Widget(t testing.TB, kind Kind, text string) Widget {
	t.Helper()
	w, ok := f.Find(kind, text)
	require.Truef(t, ok, "no %s %q in frame:\n%s", kind, text, f)
	return w
}

// Has reports whether a widget of kind with text was drawn.
func (f *Frame) Has(kind Kind, text string) bool {
	_, ok := f.Find(kind, text)
	return ok
}

// Row is the label cell of one table row.
type Row struct {
	Label    Widget
	Collapse Widget
	// HasArrow is false for rows without children.
	HasArrow bool
}

// Row finds the row labeled label.
func (f *Frame) Row(t testing.TB, label string) Row {
	t.Helper()
	lw := f.Widget(t, KindLabel, label)
	row := Row{Label: lw}
	for _, w := range f.Widgets {
		if w.Kind == KindCollapse && w.Scope == lw.Scope {
			row.Collapse, row.HasArrow = w, true
			break
		}
	}
	return row
}

// String lists the frame one widget per line, for failure messages.
func (f *Frame) String() string {
	width := 0
	for _, w := range f.Widgets {
		width = max(width, runewidth.StringWidth(string(w.Kind)))
	}
	var b strings.Builder
	for _, w := range f.Widgets {
		b.WriteString(runewidth.FillRight(string(w.Kind), width))
		fmt.Fprintf(&b, "  %q", w.Text)
		switch w.Kind {
		case KindCheckbox, KindToggle, KindSelectable:
			fmt.Fprintf(&b, " checked=%t", w.Checked)
		case KindDrag:
			fmt.Fprintf(&b, " value=%g", w.Value)
		case KindCollapse:
			fmt.Fprintf(&b, " openness=%g", w.Openness)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
