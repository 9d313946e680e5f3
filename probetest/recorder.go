package probetest

import (
	"fmt"

	"github.com/go-theft-auto/probe"
)

// recorder decorates the real surface: layout and measuring go to the gui
// context, interactive primitives are recorded and may be overridden by a
// queued action.
type recorder struct {
	inner probe.Surface
	h     *Harness
	f     *Frame

	// forced is a selectable click injected while a combobox is being
	// selected from.
	forced string
}

var _ probe.Surface = (*recorder)(nil)

func (r *recorder) wrap(inner probe.Surface) *recorder {
	return &recorder{inner: inner, h: r.h, f: r.f, forced: r.forced}
}

func (r *recorder) record(w Widget) (Widget, action, bool) {
	w.Scope = r.inner.ID()
	w = r.f.add(w)
	a, ok := r.h.pending[w.key()]
	return w, a, ok
}

func (r *recorder) ID() probe.ID             { return r.inner.ID() }
func (r *recorder) MakeID(salt any) probe.ID { return r.inner.MakeID(salt) }
func (r *recorder) Cursor() probe.Rect       { return r.inner.Cursor() }
func (r *recorder) MaxRect() probe.Rect      { return r.inner.MaxRect() }
func (r *recorder) MinRect() probe.Rect      { return r.inner.MinRect() }
func (r *recorder) ClipRect() probe.Rect     { return r.inner.ClipRect() }

func (r *recorder) Child(rect probe.Rect, id probe.ID, clip probe.Rect, fn func(probe.Surface)) probe.Rect {
	return r.inner.Child(rect, id, clip, func(s probe.Surface) { fn(r.wrap(s)) })
}

func (r *recorder) Horizontal(fn func(probe.Surface)) probe.Rect {
	return r.inner.Horizontal(func(s probe.Surface) { fn(r.wrap(s)) })
}

func (r *recorder) Frame(fn func(probe.Surface)) probe.Rect {
	return r.inner.Frame(func(s probe.Surface) { fn(r.wrap(s)) })
}

func (r *recorder) AdvanceCursorAfter(rect probe.Rect) { r.inner.AdvanceCursorAfter(rect) }
func (r *recorder) Separator()                         { r.inner.Separator() }
func (r *recorder) AddSpace(px float32)                { r.inner.AddSpace(px) }

func (r *recorder) Label(text string) probe.Rect {
	rect := r.inner.Label(text)
	r.record(Widget{Kind: KindLabel, Text: text, Rect: rect})
	return rect
}

func (r *recorder) WeakLabel(text string) {
	r.inner.WeakLabel(text)
	r.record(Widget{Kind: KindWeakLabel, Text: text})
}

func (r *recorder) ErrorLabel(text string) {
	r.inner.ErrorLabel(text)
	r.record(Widget{Kind: KindErrorLabel, Text: text})
}

func (r *recorder) CollapseIcon(id probe.ID, openness float32) bool {
	clicked := r.inner.CollapseIcon(id, openness)
	_, a, ok := r.record(Widget{Kind: KindCollapse, ID: id, Openness: openness})
	return clicked || ok && a.kind == actClick
}

func (r *recorder) SmallButton(text string) bool {
	clicked := r.inner.SmallButton(text)
	_, a, ok := r.record(Widget{Kind: KindButton, Text: text})
	return clicked || ok && a.kind == actClick
}

func (r *recorder) Selectable(selected bool, text string) bool {
	clicked := r.inner.Selectable(selected, text)
	_, a, ok := r.record(Widget{Kind: KindSelectable, Text: text, Checked: selected})
	if r.forced != "" && r.forced == text {
		return true
	}
	return clicked || ok && a.kind == actClick
}

func (r *recorder) Checkbox(value *bool) bool {
	changed := r.inner.Checkbox(value)
	_, a, ok := r.record(Widget{Kind: KindCheckbox, Checked: *value})
	if ok && a.kind == actClick {
		*value = !*value
		return true
	}
	return changed
}

func (r *recorder) ToggleSwitch(id probe.ID, value *bool) bool {
	changed := r.inner.ToggleSwitch(id, value)
	_, a, ok := r.record(Widget{Kind: KindToggle, ID: id, Checked: *value})
	if ok && a.kind == actClick {
		*value = !*value
		return true
	}
	return changed
}

func (r *recorder) TextEdit(id probe.ID, value *string, opts probe.TextEditOptions) bool {
	changed := r.inner.TextEdit(id, value, opts)
	_, a, ok := r.record(Widget{Kind: KindTextEdit, ID: id, Text: *value})
	if ok && a.kind == actText {
		*value = a.text
		return true
	}
	return changed
}

func (r *recorder) DragValue(id probe.ID, value *float64, opts probe.DragOptions) bool {
	changed := r.inner.DragValue(id, value, opts)
	_, a, ok := r.record(Widget{Kind: KindDrag, ID: id, Text: opts.Prefix + fmt.Sprint(*value) + opts.Suffix, Value: *value})
	if ok && a.kind == actValue {
		*value = a.value
		return true
	}
	return changed
}

func (r *recorder) ColorEdit(id probe.ID, rgba *[4]float32, alpha bool) bool {
	changed := r.inner.ColorEdit(id, rgba, alpha)
	_, a, ok := r.record(Widget{Kind: KindColor, ID: id, Color: *rgba})
	if ok && a.kind == actColor {
		*rgba = a.color
		if !alpha {
			rgba[3] = 1
		}
		return true
	}
	return changed
}

func (r *recorder) ComboBox(id probe.ID, selected string, body func(probe.Surface)) bool {
	_, a, ok := r.record(Widget{Kind: KindComboBox, ID: id, Text: selected})
	if !ok || a.kind != actSelect {
		return r.inner.ComboBox(id, selected, func(s probe.Surface) { body(r.wrap(s)) })
	}
	r.inner.ComboBox(id, selected, func(probe.Surface) {})
	open := r.wrap(r.inner)
	open.forced = a.choice
	body(open)
	return true
}

func (r *recorder) Memory() probe.StateStore { return r.inner.Memory() }
func (r *recorder) RequestRedraw()           { r.inner.RequestRedraw() }

func (r *recorder) AnimateBool(id probe.ID, target bool) float32 {
	return r.inner.AnimateBool(id, target)
}

func (r *recorder) MeasureText(text string) probe.Vec2 { return r.inner.MeasureText(text) }
func (r *recorder) Spacing() probe.Spacing             { return r.inner.Spacing() }
