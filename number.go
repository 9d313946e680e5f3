package probe

import (
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Numeric is any integer or float type.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// NumberProbe edits a number with a drag field.
type NumberProbe[T Numeric] struct {
	value  *T
	lo, hi T
	ranged bool
	step   float64
}

// Number returns a drag editor for v. Integers never leave the range of
// their type.
func Number[T Numeric](v *T) NumberProbe[T] {
	lo, hi := numericBounds[T]()
	return NumberProbe[T]{value: v, lo: lo, hi: hi}
}

// Range limits dragging to [lo, hi] and shows the range next to the field.
// A value set outside the range elsewhere is shown as is until edited.
func (n NumberProbe[T]) Range(lo, hi T) NumberProbe[T] {
	n.lo, n.hi, n.ranged = lo, hi, true
	return n
}

// RangeFrom limits dragging to lo and above.
func (n NumberProbe[T]) RangeFrom(lo T) NumberProbe[T] {
	_, hi := numericBounds[T]()
	return n.Range(lo, hi)
}

// RangeTo limits dragging to hi and below.
func (n NumberProbe[T]) RangeTo(hi T) NumberProbe[T] {
	lo, _ := numericBounds[T]()
	return n.Range(lo, hi)
}

// Step snaps edits to multiples of step.
func (n NumberProbe[T]) Step(step T) NumberProbe[T] {
	n.step = float64(step)
	return n
}

func (n NumberProbe[T]) Probe(s Surface, _ *Style) Response {
	opts := DragOptions{
		Min:     float64(n.lo),
		Max:     float64(n.hi),
		HasMin:  true,
		HasMax:  true,
		Step:    n.step,
		Integer: isInteger[T](),
	}
	v := float64(*n.value)
	changed := false
	if n.ranged {
		s.Horizontal(func(row Surface) {
			changed = row.DragValue(row.MakeID("number"), &v, opts)
			row.WeakLabel(fmt.Sprintf("%v..=%v", n.lo, n.hi))
		})
	} else {
		changed = s.DragValue(s.MakeID("number"), &v, opts)
	}
	if !changed {
		return Response{}
	}
	nv := fromFloat(v, n.lo, n.hi)
	if nv == *n.value {
		return Response{}
	}
	*n.value = nv
	return Response{Changed: true}
}

// NonNegative is Number limited to zero and above without the range hint.
func NonNegative[T Numeric](v *T) NumberProbe[T] {
	n := Number(v)
	n.lo = 0
	return n
}

func isInteger[T Numeric]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return false
	}
	return true
}

// numericBounds returns the smallest and largest value of T.
func numericBounds[T Numeric]() (lo, hi T) {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Float32:
		f := float64(math.MaxFloat32)
		return T(-f), T(f)
	case reflect.Float64:
		f := math.MaxFloat64
		return T(-f), T(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		top := int64(1)<<(t.Bits()-1) - 1
		return T(-top - 1), T(top)
	default:
		top := uint64(1)<<t.Bits() - 1
		return 0, T(top)
	}
}

// fromFloat converts v to T, clamped to [lo, hi] and rounded for integers.
func fromFloat[T Numeric](v float64, lo, hi T) T {
	if v <= float64(lo) {
		return lo
	}
	if v >= float64(hi) {
		return hi
	}
	if isInteger[T]() {
		v = math.Round(v)
	}
	return T(v)
}
