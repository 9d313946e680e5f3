package probe

import "math"

// AsProbe edits a number through another representation, e.g. radians as
// degrees. Every change is converted back right away.
type AsProbe[T Numeric] struct {
	value *T
	to    func(T) float64
	from  func(float64) T
	opts  DragOptions
}

// As edits v as to(v), writing from(edited) back on change.
func As[T Numeric](v *T, to func(T) float64, from func(float64) T, opts DragOptions) AsProbe[T] {
	return AsProbe[T]{value: v, to: to, from: from, opts: opts}
}

func (a AsProbe[T]) Probe(s Surface, _ *Style) Response {
	shown := a.to(*a.value)
	if !s.DragValue(s.MakeID("as"), &shown, a.opts) {
		return Response{}
	}
	*a.value = a.from(shown)
	return Response{Changed: true}
}

// Angle edits radians in degrees.
func Angle(v *float64) AsProbe[float64] {
	return As(v,
		func(r float64) float64 { return r * 180 / math.Pi },
		func(d float64) float64 { return d * math.Pi / 180 },
		DragOptions{Suffix: "°"},
	)
}

// Angle32 is Angle for float32.
func Angle32(v *float32) AsProbe[float32] {
	return As(v,
		func(r float32) float64 { return float64(r) * 180 / math.Pi },
		func(d float64) float32 { return float32(d * math.Pi / 180) },
		DragOptions{Suffix: "°"},
	)
}

// WithProbe draws a value with a custom function.
type WithProbe[T any] struct {
	value *T
	fn    func(*T, Surface, *Style) Response
}

// With edits v with fn.
func With[T any](v *T, fn func(v *T, s Surface, style *Style) Response) WithProbe[T] {
	return WithProbe[T]{value: v, fn: fn}
}

func (w WithProbe[T]) Probe(s Surface, style *Style) Response {
	return w.fn(w.value, s, style)
}
