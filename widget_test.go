package probe_test

import (
	"testing"

	"github.com/go-theft-auto/probe"
	"github.com/go-theft-auto/probe/gui"
	"github.com/go-theft-auto/probe/probetest"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ids lists the IDs and scopes of everything a frame drew.
func ids(f *probetest.Frame) []probe.ID {
	var out []probe.ID
	for _, w := range f.Widgets {
		out = append(out, w.Scope, w.ID)
	}
	return out
}

// settle runs frames until one does not ask for a redraw and returns it
// with the number of frames it took.
func settle(t *testing.T, h *probetest.Harness, fn func(probe.Surface)) (*probetest.Frame, int) {
	t.Helper()
	for n := 1; n <= 10; n++ {
		if f := h.Frame(fn); !f.Redraw {
			return f, n
		}
	}
	t.Fatal("tree never settled")
	return nil, 0
}

func TestLeafValueHasNoHeader(t *testing.T) {
	h := probetest.New()
	name := "vice"
	f := h.Frame(show("name", probe.String(&name)))

	assert.Empty(t, f.All(probetest.KindCollapse))
	assert.False(t, f.Has(probetest.KindLabel, "name"))
	assert.Len(t, f.All(probetest.KindTextEdit), 1)
}

func TestIdentityStability(t *testing.T) {
	h := probetest.New()
	openRoot(t, h, "player")
	p := &player{Name: "tommy", Health: 80, Tags: []string{"a", "b"}}
	fn := show("player", p)

	first, _ := settle(t, h, fn)
	second := h.Frame(fn)
	if diff := cmp.Diff(ids(first), ids(second)); diff != "" {
		t.Fatalf("IDs moved between identical frames (-first +second):\n%s", diff)
	}

	// Editing a value leaves every ID where it was.
	h.SetText(second.Widget(t, probetest.KindTextEdit, "tommy"), "lance")
	h.Frame(fn)
	third := h.Frame(fn)
	require.Equal(t, "lance", p.Name)
	if diff := cmp.Diff(ids(second), ids(third)); diff != "" {
		t.Fatalf("IDs moved after an edit (-before +after):\n%s", diff)
	}
}

func TestIdentityScopedBySalt(t *testing.T) {
	h := probetest.New()
	a, b := &player{}, &player{}
	f := h.Frame(func(s probe.Surface) {
		probe.Show(s, "player", a, probe.WithIDSalt("left"))
		probe.Show(s, "player", b, probe.WithIDSalt("right"))
	})

	arrows := f.All(probetest.KindCollapse)
	require.Len(t, arrows, 2)
	assert.NotEqual(t, arrows[0].ID, arrows[1].ID)
	assert.Equal(t, rootID(h, "left"), arrows[0].Scope)
	assert.Equal(t, rootID(h, "right"), arrows[1].Scope)
}

func TestToggleLatency(t *testing.T) {
	h := probetest.New()
	p := &player{Name: "tommy"}
	fn := show("player", p)
	headerID := rootID(h, "player").With("probe_header")

	f := h.Frame(fn)
	assert.False(t, f.Has(probetest.KindLabel, "name"), "closed tree shows rows")
	assert.True(t, probe.LoadHeaderState(h.Store(), headerID).HasInner)

	h.Click(f.Row(t, "player").Collapse)
	f = h.Frame(fn)
	// The click lands in this frame but the rows follow in the next one.
	assert.False(t, f.Has(probetest.KindLabel, "name"))
	assert.True(t, probe.LoadHeaderState(h.Store(), headerID).Open)
	assert.True(t, f.Redraw)

	f = h.Frame(fn)
	assert.True(t, f.Has(probetest.KindLabel, "name"))
	assert.True(t, f.Has(probetest.KindLabel, "pet"))

	// A nested composite gets its arrow one frame after it first shows.
	pet := f.Row(t, "pet")
	assert.False(t, pet.HasArrow)
	assert.True(t, probe.LoadHeaderState(h.Store(), rowID(rootID(h, "player"), 3)).HasInner)
	f = h.Frame(fn)
	pet = f.Row(t, "pet")
	require.True(t, pet.HasArrow)

	h.Click(pet.Collapse)
	h.Frame(fn)
	f = h.Frame(fn)
	assert.True(t, f.Has(probetest.KindLabel, "happy"))

	// Closing follows the same path back.
	h.Click(f.Row(t, "player").Collapse)
	f = h.Frame(fn)
	assert.True(t, f.Has(probetest.KindLabel, "name"))
	f = h.Frame(fn)
	assert.False(t, f.Has(probetest.KindLabel, "name"))
	assert.False(t, probe.LoadHeaderState(h.Store(), headerID).Open)
}

func TestArrowFollowsChildren(t *testing.T) {
	h := probetest.New()
	openRoot(t, h, "player")
	p := &player{}
	fn := show("player", p)

	f, _ := settle(t, h, fn)
	assert.False(t, f.Row(t, "tags").HasArrow, "empty slice has an arrow")

	p.Tags = append(p.Tags, "x")
	h.Frame(fn)
	f = h.Frame(fn)
	assert.True(t, f.Row(t, "tags").HasArrow)

	p.Tags = nil
	h.Frame(fn)
	f = h.Frame(fn)
	assert.False(t, f.Row(t, "tags").HasArrow)
}

func TestLabelColumnConvergence(t *testing.T) {
	h := probetest.New()
	openRoot(t, h, "player")
	p := &player{}
	fn := show("player", p)
	layoutID := rootID(h, "player").With("probe_layout")

	f, n := settle(t, h, fn)
	assert.LessOrEqual(t, n, 3)
	width := probe.LoadLayoutState(h.Store(), layoutID).LabelsWidth
	for _, w := range f.All(probetest.KindLabel) {
		if w.Text == "player" {
			continue
		}
		assert.GreaterOrEqualf(t, width, w.Rect.W, "label %q sticks out of the column", w.Text)
	}

	// A wider label widens the column within two frames, then it settles.
	p.Extra = true
	f, n = settle(t, h, fn)
	assert.LessOrEqual(t, n, 3)
	wide := probe.LoadLayoutState(h.Store(), layoutID).LabelsWidth
	long := f.Widget(t, probetest.KindLabel, "a rather long label for a field")
	assert.Greater(t, wide, width)
	assert.GreaterOrEqual(t, wide, long.Rect.W)

	// And it shrinks back once the label is gone.
	p.Extra = false
	_, n = settle(t, h, fn)
	assert.LessOrEqual(t, n, 3)
	assert.Equal(t, width, probe.LoadLayoutState(h.Store(), layoutID).LabelsWidth)
}

func TestBodyHeightFollowsChildren(t *testing.T) {
	h := probetest.New()
	openRoot(t, h, "player")
	p := &player{}
	fn := show("player", p)
	headerID := rootID(h, "player").With("probe_header")

	f, _ := settle(t, h, fn)
	first := f.Widget(t, probetest.KindLabel, "name")
	last := f.Widget(t, probetest.KindLabel, "pet")
	span := last.Rect.Y + last.Rect.H - first.Rect.Y
	body := probe.LoadHeaderState(h.Store(), headerID).BodyHeight
	assert.InDelta(t, float64(span), float64(body), float64(first.Rect.H),
		"body %g does not cover rows spanning %g", body, span)

	// The frame that draws a new row measures it.
	p.Extra = true
	h.Frame(fn)
	grown := probe.LoadHeaderState(h.Store(), headerID).BodyHeight
	assert.Greater(t, grown, body)
	_, _ = settle(t, h, fn)
	assert.Equal(t, grown, probe.LoadHeaderState(h.Store(), headerID).BodyHeight)
}

func TestBodySlidesOpen(t *testing.T) {
	st := gui.DefaultStyle()
	st.AnimationTime = 0.1
	h := probetest.New(probetest.WithGUIStyle(st))
	openRoot(t, h, "player")
	p := &player{}
	fn := show("player", p)
	headerID := rootID(h, "player").With("probe_header")

	f, _ := settle(t, h, fn)
	rest := f.Widget(t, probetest.KindLabel, "name").Rect.Y
	body := probe.LoadHeaderState(h.Store(), headerID).BodyHeight
	require.Positive(t, body)

	h.Click(f.Row(t, "player").Collapse)
	f, _ = settle(t, h, fn)
	require.False(t, f.Has(probetest.KindLabel, "name"))

	// The click frame only flips the stored state.
	h.Click(f.Row(t, "player").Collapse)
	f = h.Frame(fn)
	require.False(t, f.Has(probetest.KindLabel, "name"))

	var ys []float32
	for range 20 {
		f = h.Frame(fn)
		ys = append(ys, f.Widget(t, probetest.KindLabel, "name").Rect.Y)
		if !f.Redraw {
			break
		}
	}
	require.Greater(t, len(ys), 2, "opening did not animate")
	// The rows start pulled up under the header by most of the body.
	assert.Less(t, ys[0], rest-body/2)
	for i := 1; i < len(ys); i++ {
		assert.Greater(t, ys[i], ys[i-1], "rows moved up while opening: %v", ys)
	}
	assert.Equal(t, rest, ys[len(ys)-1])
}

func TestTransparentWrapper(t *testing.T) {
	labels := func(p probe.Prober) []string {
		var out []string
		probe.IterateInner(p, nil, func(label string, _ probe.Surface, _ probe.Prober) {
			out = append(out, label)
		})
		return out
	}

	p := &player{}
	wrapped := probe.Transparent{Inner: p}
	assert.Equal(t, labels(p), labels(wrapped))
	assert.True(t, probe.HasInner(wrapped))

	// A leaf stays a leaf and edits go straight to the wrapped field.
	var meters float64
	leaf := probe.Transparent{Inner: probe.Number(&meters)}
	assert.False(t, probe.HasInner(leaf))
	assert.Empty(t, labels(leaf))

	h := probetest.New()
	f := h.Frame(show("meters", leaf))
	h.SetValue(f.All(probetest.KindDrag)[0], 12.5)
	h.Frame(show("meters", leaf))
	assert.Equal(t, 12.5, meters)
}

func TestShowReportsChanges(t *testing.T) {
	h := probetest.New()
	openRoot(t, h, "player")
	p := &player{Health: 10}
	var changed []bool
	fn := func(s probe.Surface) {
		changed = append(changed, probe.Show(s, "player", p).Changed)
	}

	f, _ := settle(t, h, fn)
	h.SetValue(f.Widget(t, probetest.KindDrag, "10"), 55)
	h.Frame(fn)
	h.Frame(fn)

	require.GreaterOrEqual(t, len(changed), 3)
	assert.Equal(t, []bool{true, false}, changed[len(changed)-2:])
	assert.Equal(t, 55, p.Health)
}
