package probe_test

import (
	"testing"

	"github.com/go-theft-auto/probe"
	"github.com/go-theft-auto/probe/probetest"
)

type pet struct {
	Name  string
	Happy bool
}

func (p *pet) Probe(s probe.Surface, _ *probe.Style) probe.Response {
	s.WeakLabel("pet")
	return probe.Response{}
}

func (p *pet) HasInner() bool { return true }

func (p *pet) IterateInner(s probe.Surface, visit probe.Visit) {
	visit("name", s, probe.String(&p.Name))
	visit("happy", s, probe.Bool(&p.Happy))
}

type player struct {
	Name   string
	Health int
	Tags   []string
	Pet    pet
	Extra  bool // shows a field with a long label when set
}

func (p *player) Probe(s probe.Surface, _ *probe.Style) probe.Response {
	s.WeakLabel("player")
	return probe.Response{}
}

func (p *player) HasInner() bool { return true }

func (p *player) IterateInner(s probe.Surface, visit probe.Visit) {
	visit("name", s, probe.String(&p.Name))
	visit("health", s, probe.Number(&p.Health).Range(0, 100))
	visit("tags", s, probe.Slice(&p.Tags, func(v *string) probe.Prober { return probe.String(v) }, nil))
	visit("pet", s, &p.Pet)
	if p.Extra {
		visit("a rather long label for a field", s, probe.Bool(&p.Extra))
	}
}

// rootID returns the ID scope of a tree shown with salt on a fresh frame.
func rootID(h *probetest.Harness, salt any) probe.ID {
	var id probe.ID
	h.Surface(func(s probe.Surface) { id = probe.RootID(s, salt) })
	return id
}

// openRoot stores an open header for the tree labeled label, so its rows
// show from the first frame.
func openRoot(t *testing.T, h *probetest.Harness, label string) {
	t.Helper()
	h.Store().Set(rootID(h, label).With("probe_header"), probe.HeaderState{HasInner: true, Open: true})
}

// rowID returns the header ID of the row reached by following child
// indexes from the root of the tree shown with salt.
func rowID(root probe.ID, path ...int) probe.ID {
	id := root.With("table")
	for _, i := range path {
		id = id.With(i)
	}
	return id
}

func show(label string, value probe.Prober, opts ...probe.ProbeOption) func(probe.Surface) {
	return func(s probe.Surface) { probe.Show(s, label, value, opts...) }
}
