package probe

import "fmt"

// deleteMe puts a remove button after an element's editor. The element is
// removed by its container once iteration is done.
type deleteMe struct {
	value  Prober
	remove *bool
}

func (d deleteMe) Probe(s Surface, style *Style) Response {
	var resp Response
	s.Horizontal(func(row Surface) {
		resp = d.value.Probe(row, style)
		row.AddSpace(row.Spacing().ItemSpacing)
		if row.SmallButton(style.RemoveButtonText()) {
			*d.remove = true
			resp.Changed = true
		}
	})
	return resp
}

func (d deleteMe) HasInner() bool                      { return HasInner(d.value) && !*d.remove }
func (d deleteMe) IterateInner(s Surface, visit Visit) { IterateInner(d.value, s, visit) }

// SliceProbe edits a slice. Unless frozen, the slice's own row has a button
// that appends an element and every element row has a button removing it.
type SliceProbe[T any] struct {
	value   *[]T
	elem    func(*T) Prober
	newElem func() T
	frozen  bool
}

// Slice edits a growable slice. newElem makes appended elements; nil
// appends the zero value.
func Slice[T any](v *[]T, elem func(*T) Prober, newElem func() T) SliceProbe[T] {
	return SliceProbe[T]{value: v, elem: elem, newElem: newElem}
}

// FrozenSlice edits the elements of v in place without adding or removing.
func FrozenSlice[T any](v []T, elem func(*T) Prober) SliceProbe[T] {
	return SliceProbe[T]{value: &v, elem: elem, frozen: true}
}

// Array edits the elements of an array through a slice of it, e.g. arr[:].
func Array[T any](v []T, elem func(*T) Prober) SliceProbe[T] {
	return FrozenSlice(v, elem)
}

// Frozen returns a copy without add and remove buttons.
func (p SliceProbe[T]) Frozen() SliceProbe[T] {
	p.frozen = true
	return p
}

func (p SliceProbe[T]) Probe(s Surface, style *Style) Response {
	count := fmt.Sprintf("[%d]", len(*p.value))
	if p.frozen {
		s.WeakLabel(count)
		return Response{}
	}
	var resp Response
	s.Horizontal(func(row Surface) {
		row.WeakLabel(count)
		if row.SmallButton(style.AddButtonText()) {
			var elem T
			if p.newElem != nil {
				elem = p.newElem()
			}
			*p.value = append(*p.value, elem)
			resp.Changed = true
		}
	})
	return resp
}

func (p SliceProbe[T]) HasInner() bool { return len(*p.value) > 0 }

func (p SliceProbe[T]) IterateInner(s Surface, visit Visit) {
	items := *p.value
	if p.frozen {
		for i := range items {
			visit(fmt.Sprintf("[%d]", i), s, p.elem(&items[i]))
		}
		return
	}

	removed := make([]bool, len(items))
	anyRemoved := false
	for i := range items {
		visit(fmt.Sprintf("[%d]", i), s, deleteMe{value: p.elem(&items[i]), remove: &removed[i]})
		anyRemoved = anyRemoved || removed[i]
	}
	if !anyRemoved {
		return
	}
	kept := items[:0]
	for i, item := range items {
		if !removed[i] {
			kept = append(kept, item)
		}
	}
	clear(items[len(kept):])
	*p.value = kept
}
