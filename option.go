package probe

// OptionProbe edits an optional value held by a pointer: a None/Some pair
// followed by the value's editor while it is set.
type OptionProbe[T any] struct {
	value    **T
	elem     func(*T) Prober
	newValue func() T
}

// Option edits v. Picking Some sets it to the zero value.
func Option[T any](v **T, elem func(*T) Prober) OptionProbe[T] {
	return OptionProbe[T]{value: v, elem: elem}
}

// OptionDefault edits v. Picking Some sets it to a copy of def.
func OptionDefault[T any](v **T, elem func(*T) Prober, def T) OptionProbe[T] {
	return OptionProbe[T]{value: v, elem: elem, newValue: func() T { return def }}
}

func (o OptionProbe[T]) Probe(s Surface, style *Style) Response {
	var resp Response
	s.Horizontal(func(row Surface) {
		some := *o.value != nil
		if row.Selectable(!some, "None") {
			some = false
		}
		if row.Selectable(some, "Some") {
			some = true
		}

		switch {
		case some && *o.value == nil:
			var v T
			if o.newValue != nil {
				v = o.newValue()
			}
			*o.value = &v
			resp.Changed = true
		case !some && *o.value != nil:
			*o.value = nil
			resp.Changed = true
		}

		if *o.value != nil {
			resp = resp.Or(o.elem(*o.value).Probe(row, style))
		}
	})
	return resp
}

func (o OptionProbe[T]) HasInner() bool {
	return *o.value != nil && HasInner(o.elem(*o.value))
}

func (o OptionProbe[T]) IterateInner(s Surface, visit Visit) {
	if *o.value != nil {
		IterateInner(o.elem(*o.value), s, visit)
	}
}
