package probe

// StringProbe edits a string in a text field.
type StringProbe struct {
	value     *string
	multiline bool
}

// String edits v on a single line.
func String(v *string) StringProbe { return StringProbe{value: v} }

// Multiline edits v in a field that grows with its lines.
func Multiline(v *string) StringProbe { return StringProbe{value: v, multiline: true} }

func (p StringProbe) Probe(s Surface, _ *Style) Response {
	return Response{Changed: s.TextEdit(s.MakeID("text"), p.value, TextEditOptions{Multiline: p.multiline})}
}

// LabelProbe shows read-only text.
type LabelProbe string

// Label returns a probe that shows text and never changes.
func Label(text string) LabelProbe { return LabelProbe(text) }

func (l LabelProbe) Probe(s Surface, _ *Style) Response {
	s.Label(string(l))
	return Response{}
}
