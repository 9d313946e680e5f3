package probe

import "github.com/cockroachdb/errors"

// SelectVariant draws a selector for one of names, current being the
// active one or -1 for none, and returns the picked index and whether it
// differs from current. The style's Variants setting picks between a
// dropdown and a row of selectable labels; a type-level override wins over
// it.
func SelectVariant(s Surface, style *Style, names []string, current int, override ...VariantsStyle) (int, bool) {
	vs := style.Variants
	if len(override) > 0 {
		vs = override[0]
	}
	if current < -1 || current >= len(names) {
		panic(errors.AssertionFailedf("variant %d out of range for %d variants", current, len(names)))
	}

	picked := current
	pick := func(row Surface) {
		for i, name := range names {
			if row.Selectable(i == current, name) && i != current {
				picked = i
			}
		}
	}
	switch vs {
	case VariantsInlined:
		s.Horizontal(pick)
	default:
		selected := ""
		if current >= 0 {
			selected = names[current]
		}
		s.ComboBox(s.MakeID("variant"), selected, pick)
	}
	return picked, picked != current
}

// EnumProbe edits a value that is one of a fixed list of constants.
type EnumProbe[T comparable] struct {
	value    *T
	names    []string
	values   []T
	override []VariantsStyle
}

// Enum edits v, which should be one of values. names labels each value.
// A value outside the list is shown with nothing selected until one of
// the names is picked.
func Enum[T comparable](v *T, names []string, values []T) EnumProbe[T] {
	if len(names) != len(values) || len(values) == 0 {
		panic(errors.AssertionFailedf("enum has %d names for %d values", len(names), len(values)))
	}
	return EnumProbe[T]{value: v, names: names, values: values}
}

// Inlined returns a copy that always shows every variant.
func (e EnumProbe[T]) Inlined() EnumProbe[T] {
	e.override = []VariantsStyle{VariantsInlined}
	return e
}

// ComboBox returns a copy that always shows a dropdown.
func (e EnumProbe[T]) ComboBox() EnumProbe[T] {
	e.override = []VariantsStyle{VariantsComboBox}
	return e
}

func (e EnumProbe[T]) Probe(s Surface, style *Style) Response {
	current := -1
	for i, v := range e.values {
		if v == *e.value {
			current = i
			break
		}
	}
	i, changed := SelectVariant(s, style, e.names, current, e.override...)
	if changed {
		*e.value = e.values[i]
	}
	return Response{Changed: changed}
}
