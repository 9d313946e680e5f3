package probe

import (
	"fmt"

	"github.com/go-theft-auto/probe/gui"
)

// Vec2Probe edits both components of a gui.Vec2 on one row.
type Vec2Probe struct {
	value *gui.Vec2
}

// Vec2Of edits v.
func Vec2Of(v *gui.Vec2) Vec2Probe { return Vec2Probe{value: v} }

func (p Vec2Probe) Probe(s Surface, _ *Style) Response {
	changed := false
	s.Horizontal(func(row Surface) {
		changed = dragFloat32(row, "x", &p.value.X, DragOptions{Prefix: "x: "}) || changed
		changed = dragFloat32(row, "y", &p.value.Y, DragOptions{Prefix: "y: "}) || changed
	})
	return Response{Changed: changed}
}

func dragFloat32(s Surface, salt string, v *float32, opts DragOptions) bool {
	f := float64(*v)
	if !s.DragValue(s.MakeID(salt), &f, opts) {
		return false
	}
	*v = float32(f)
	return true
}

// RectProbe edits a gui.Rect through its corners. Moving one corner keeps
// the other in place.
type RectProbe struct {
	value *gui.Rect
}

// RectOf edits r.
func RectOf(r *gui.Rect) RectProbe { return RectProbe{value: r} }

func (p RectProbe) Probe(s Surface, _ *Style) Response {
	r := p.value
	s.WeakLabel(fmt.Sprintf("%gx%g at %g,%g", r.W, r.H, r.X, r.Y))
	return Response{}
}

func (p RectProbe) HasInner() bool { return true }

func (p RectProbe) IterateInner(s Surface, visit Visit) {
	r := p.value
	minCorner, maxCorner := r.Min(), r.Max()
	visit("min", s, With(&minCorner, func(v *gui.Vec2, s Surface, style *Style) Response {
		resp := Vec2Of(v).Probe(s, style)
		if resp.Changed {
			*r = gui.RectFromMinMax(*v, maxCorner)
		}
		return resp
	}))
	maxCorner = r.Max()
	visit("max", s, With(&maxCorner, func(v *gui.Vec2, s Surface, style *Style) Response {
		resp := Vec2Of(v).Probe(s, style)
		if resp.Changed {
			*r = gui.RectFromMinMax(r.Min(), *v)
		}
		return resp
	}))
}
