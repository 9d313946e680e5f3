package probe_test

import (
	"testing"

	"github.com/go-theft-auto/probe"
	"github.com/go-theft-auto/probe/probetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shape is a sum type with glue written the way probegen writes it.
type shape interface{ isShape() }

type circle struct{ Radius float64 }

type square struct{ Side, Angle float64 }

func (*circle) isShape() {}
func (*square) isShape() {}

func (c *circle) Probe(probe.Surface, *probe.Style) probe.Response { return probe.Response{} }
func (c *circle) HasInner() bool                                     { return true }
func (c *circle) IterateInner(s probe.Surface, visit probe.Visit) {
	visit("radius", s, probe.Number(&c.Radius))
}

func (q *square) Probe(probe.Surface, *probe.Style) probe.Response { return probe.Response{} }
func (q *square) HasInner() bool                                     { return true }
func (q *square) IterateInner(s probe.Surface, visit probe.Visit) {
	visit("side", s, probe.Number(&q.Side))
	visit("angle", s, probe.Angle(&q.Angle))
}

var shapeNames = []string{"circle", "square"}

type shapeProbe struct{ v *shape }

func (p shapeProbe) Probe(s probe.Surface, style *probe.Style) probe.Response {
	current := 0
	if _, ok := (*p.v).(*square); ok {
		current = 1
	}
	picked, changed := probe.SelectVariant(s, style, shapeNames, current)
	if !changed {
		return probe.Response{}
	}
	switch picked {
	case 0:
		*p.v = &circle{Radius: 1}
	case 1:
		*p.v = &square{}
	}
	return probe.Response{Changed: true}
}

func (p shapeProbe) variant() probe.Prober {
	switch v := (*p.v).(type) {
	case *circle:
		return v
	case *square:
		return v
	}
	return nil
}

func (p shapeProbe) HasInner() bool { return probe.HasInner(p.variant()) }

func (p shapeProbe) IterateInner(s probe.Surface, visit probe.Visit) {
	probe.IterateInner(p.variant(), s, visit)
}

func TestEnumSwitchResetsPayload(t *testing.T) {
	var v shape = &circle{Radius: 1}
	h := probetest.New()
	openRoot(t, h, "shape")
	fn := show("shape", shapeProbe{&v})

	f := h.Frame(fn)
	h.SetValue(f.Widget(t, probetest.KindDrag, "1"), 5)
	f = h.Frame(fn)
	require.Equal(t, &circle{Radius: 5}, v)

	h.Select(f.Widget(t, probetest.KindComboBox, "circle"), "square")
	h.Frame(fn)
	assert.Equal(t, &square{}, v)

	f = h.Frame(fn)
	assert.True(t, f.Has(probetest.KindLabel, "side"))
	assert.False(t, f.Has(probetest.KindLabel, "radius"))

	// Coming back starts from the default again; the edit is gone.
	h.Select(f.Widget(t, probetest.KindComboBox, "square"), "circle")
	h.Frame(fn)
	assert.Equal(t, &circle{Radius: 1}, v)
}

func TestSelectVariantPanicsOutOfRange(t *testing.T) {
	h := probetest.New()
	h.Surface(func(s probe.Surface) {
		assert.Panics(t, func() { probe.SelectVariant(s, &probe.Style{}, shapeNames, 2) })
		assert.Panics(t, func() { probe.SelectVariant(s, &probe.Style{}, shapeNames, -2) })
	})
}
