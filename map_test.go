package probe_test

import (
	"net/netip"
	"testing"

	"github.com/cockroachdb/swiss"
	"github.com/go-theft-auto/probe"
	"github.com/go-theft-auto/probe/probetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intElem(v *int) probe.Prober { return probe.Number(v) }

// typeKey enters key into the new-key field and clicks add, one frame each.
func typeKey(t *testing.T, h *probetest.Harness, fn func(probe.Surface), key string) (probetest.Widget, *probetest.Frame) {
	t.Helper()
	f := h.Frame(fn)
	field := f.All(probetest.KindTextEdit)[0]
	h.SetText(field, key)
	f = h.Frame(fn)
	h.Click(f.Widget(t, probetest.KindButton, "+"))
	return field, h.Frame(fn)
}

func TestMapRejectsDuplicateKey(t *testing.T) {
	m := map[string]int{"a": 1}
	h := probetest.New()
	var resp probe.Response
	fn := func(s probe.Surface) {
		resp = probe.Show(s, "m", probe.Map(&m, probe.StringKeys(), intElem, func() int { return 7 }))
	}

	field, f := typeKey(t, h, fn, "a")
	assert.False(t, resp.Changed)
	assert.Equal(t, map[string]int{"a": 1}, m)
	state := probe.LoadMapState(h.Store(), field.Scope)
	assert.Equal(t, probe.MapState{NewKey: "a", Error: true}, state)
	assert.True(t, f.Redraw)

	// Editing the field clears the error; a fresh key goes in.
	_, _ = typeKey(t, h, fn, "b")
	assert.True(t, resp.Changed)
	assert.Equal(t, map[string]int{"a": 1, "b": 7}, m)
	assert.Equal(t, probe.MapState{}, probe.LoadMapState(h.Store(), field.Scope))
}

func TestMapRejectsUnparsableKey(t *testing.T) {
	m := map[int8]int{}
	h := probetest.New()
	fn := show("m", probe.Map(&m, probe.IntKeys[int8](), intElem, nil))

	for _, key := range []string{"x1", "300", ""} {
		field, _ := typeKey(t, h, fn, key)
		assert.Empty(t, m, "key %q", key)
		assert.True(t, probe.LoadMapState(h.Store(), field.Scope).Error, "key %q", key)
	}

	typeKey(t, h, fn, "-128")
	assert.Equal(t, map[int8]int{-128: 0}, m)
}

func TestMapInsertIntoNilMap(t *testing.T) {
	var m map[string]int
	h := probetest.New()
	typeKey(t, h, show("m", probe.Map(&m, probe.StringKeys(), intElem, nil)), "k")
	assert.Equal(t, map[string]int{"k": 0}, m)
}

func TestMapRowsSortedAndRemovable(t *testing.T) {
	m := map[int]int{10: 1, 9: 2, 100: 3}
	h := probetest.New()
	openRoot(t, h, "m")
	fn := show("m", probe.Map(&m, probe.IntKeys[int](), intElem, nil))

	f := h.Frame(fn)
	var rows []string
	for _, w := range f.All(probetest.KindLabel) {
		rows = append(rows, w.Text)
	}
	assert.Equal(t, []string{"m", "9", "10", "100"}, rows)

	removes := f.All(probetest.KindButton)
	require.Len(t, removes, 4, "frame:\n%s", f)
	h.Click(removes[2]) // row "10"
	h.SetValue(f.Widget(t, probetest.KindDrag, "3"), 30)
	h.Frame(fn)

	assert.Equal(t, map[int]int{9: 2, 100: 30}, m)
}

func TestFrozenMap(t *testing.T) {
	m := map[string]int{"a": 1}
	h := probetest.New()
	openRoot(t, h, "m")
	fn := show("m", probe.FrozenMap(m, probe.StringKeys(), intElem))

	f := h.Frame(fn)
	assert.Empty(t, f.All(probetest.KindButton))
	assert.Empty(t, f.All(probetest.KindTextEdit))
	h.SetValue(f.Widget(t, probetest.KindDrag, "1"), 5)
	h.Frame(fn)
	assert.Equal(t, map[string]int{"a": 5}, m)
}

func TestSwissMap(t *testing.T) {
	var m swiss.Map[string, int]
	m.Init(4)
	m.Put("b", 2)
	h := probetest.New()
	openRoot(t, h, "m")
	fn := show("m", probe.SwissMap(&m, probe.StringKeys(), intElem, nil))

	typeKey(t, h, fn, "a")
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 0, v)

	f := h.Frame(fn)
	assert.True(t, f.Row(t, "a").Label.Rect.Y < f.Row(t, "b").Label.Rect.Y)
}

func TestIntKeys(t *testing.T) {
	u := probe.IntKeys[uint8]()
	for _, bad := range []string{"256", "-1", "0x10"} {
		_, err := u.Parse(bad)
		assert.Error(t, err, bad)
	}
	k, err := u.Parse("255")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), k)
	assert.Equal(t, "255", u.Format(255))

	i := probe.IntKeys[int64]()
	assert.Equal(t, "-9223372036854775808", i.Format(-1<<63))
	_, err = i.Parse("9223372036854775808")
	assert.ErrorContains(t, err, "is not a valid key")
}

func TestTextKeys(t *testing.T) {
	c := probe.TextKeys[netip.Addr]()
	k, err := c.Parse("10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("10.0.0.1"), k)
	assert.Equal(t, "10.0.0.1", c.Format(k))

	_, err = c.Parse("nope")
	assert.ErrorContains(t, err, `parsing key "nope"`)
}
