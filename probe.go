package probe

// Response reports what happened to a value while it was probed.
type Response struct {
	Changed bool
}

// Or merges two responses.
func (r Response) Or(o Response) Response {
	return Response{Changed: r.Changed || o.Changed}
}

// Prober draws an editor for a value.
//
// Probe draws exactly one self-contained editor, or a summary for composite
// values, and reports whether the value changed. It never draws children;
// the tree renderer does that through Composite.
type Prober interface {
	Probe(s Surface, style *Style) Response
}

// Visit is called by Composite.IterateInner once per child.
type Visit func(label string, s Surface, child Prober)

// Composite is a Prober with children that can be expanded.
//
// IterateInner visits children in a fixed order: fields in declaration
// order, the active variant's fields for enums, elements by index and map
// entries sorted by key. Single-field transparent wrappers forward to their
// field instead of adding a level.
type Composite interface {
	Prober
	HasInner() bool
	IterateInner(s Surface, visit Visit)
}

// HasInner reports whether p has children to expand.
func HasInner(p Prober) bool {
	c, ok := p.(Composite)
	return ok && c.HasInner()
}

// IterateInner visits the children of p, if it has any.
func IterateInner(p Prober, s Surface, visit Visit) {
	if c, ok := p.(Composite); ok {
		c.IterateInner(s, visit)
	}
}

// ProbeFunc adapts a function to the Prober interface.
type ProbeFunc func(s Surface, style *Style) Response

// Probe calls f.
func (f ProbeFunc) Probe(s Surface, style *Style) Response {
	return f(s, style)
}

// Transparent wraps a Composite whose own row is hidden: its Probe is the
// inner value's Probe and its children are the inner value's children.
type Transparent struct {
	Inner Prober
}

func (t Transparent) Probe(s Surface, style *Style) Response { return t.Inner.Probe(s, style) }
func (t Transparent) HasInner() bool                         { return HasInner(t.Inner) }
func (t Transparent) IterateInner(s Surface, visit Visit)    { IterateInner(t.Inner, s, visit) }
