package probe_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-theft-auto/probe"
	"github.com/go-theft-auto/probe/gui"
	"github.com/go-theft-auto/probe/probetest"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edit draws value once, applies act to what was drawn and draws again.
func edit(t *testing.T, value probe.Prober, act func(h *probetest.Harness, f *probetest.Frame), opts ...probe.ProbeOption) *probetest.Frame {
	t.Helper()
	h := probetest.New()
	fn := show("value", value, opts...)
	act(h, h.Frame(fn))
	return h.Frame(fn)
}

func onlyDrag(t *testing.T, f *probetest.Frame) probetest.Widget {
	t.Helper()
	drags := f.All(probetest.KindDrag)
	require.Len(t, drags, 1, "frame:\n%s", f)
	return drags[0]
}

func TestNumberClamps(t *testing.T) {
	tests := []struct {
		name string
		set  float64
		want int8
	}{
		{"inside", 7, 7},
		{"rounds", 3.6, 4},
		{"above", 50, 10},
		{"below", -3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := int8(5)
			edit(t, probe.Number(&v).Range(0, 10), func(h *probetest.Harness, f *probetest.Frame) {
				h.SetValue(onlyDrag(t, f), tt.set)
			})
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestNumberTypeBounds(t *testing.T) {
	u := uint8(3)
	edit(t, probe.Number(&u), func(h *probetest.Harness, f *probetest.Frame) {
		h.SetValue(onlyDrag(t, f), -20)
	})
	assert.Equal(t, uint8(0), u)

	i := int16(0)
	edit(t, probe.Number(&i), func(h *probetest.Harness, f *probetest.Frame) {
		h.SetValue(onlyDrag(t, f), 1e9)
	})
	assert.Equal(t, int16(math.MaxInt16), i)
}

func TestNumberOutOfRangeIsShownAsIs(t *testing.T) {
	v := 200
	h := probetest.New()
	f := h.Frame(show("value", probe.Number(&v).Range(0, 100)))

	assert.Equal(t, float64(200), onlyDrag(t, f).Value)
	assert.True(t, f.Has(probetest.KindWeakLabel, "0..=100"))
	assert.Equal(t, 200, v)
}

func TestNumberStep(t *testing.T) {
	v := float32(1)
	f := edit(t, probe.Number(&v).Step(0.5), func(h *probetest.Harness, f *probetest.Frame) {
		h.SetValue(onlyDrag(t, f), 2.5)
	})
	assert.Equal(t, float32(2.5), v)
	assert.Empty(t, f.All(probetest.KindWeakLabel), "unranged number shows a range")
}

func TestBoolEditors(t *testing.T) {
	v := false
	edit(t, probe.Bool(&v), func(h *probetest.Harness, f *probetest.Frame) {
		h.Click(f.All(probetest.KindCheckbox)[0])
	})
	assert.True(t, v)

	toggles := probe.DefaultStyle()
	toggles.Boolean = probe.BooleanToggleSwitch
	f := edit(t, probe.Bool(&v), func(h *probetest.Harness, f *probetest.Frame) {
		h.Click(f.All(probetest.KindToggle)[0])
	}, probe.WithStyle(toggles))
	assert.False(t, v)
	assert.Empty(t, f.All(probetest.KindCheckbox))

	f = edit(t, probe.Toggle(&v), func(*probetest.Harness, *probetest.Frame) {})
	assert.Len(t, f.All(probetest.KindToggle), 1)
}

func TestString(t *testing.T) {
	v := "ocean drive"
	edit(t, probe.String(&v), func(h *probetest.Harness, f *probetest.Frame) {
		h.SetText(f.Widget(t, probetest.KindTextEdit, "ocean drive"), "vice city")
	})
	assert.Equal(t, "vice city", v)
}

func TestOption(t *testing.T) {
	var v *int
	opt := probe.Option(&v, func(n *int) probe.Prober { return probe.Number(n) })

	f := edit(t, opt, func(h *probetest.Harness, f *probetest.Frame) {
		assert.True(t, f.Widget(t, probetest.KindSelectable, "None").Checked)
		assert.Empty(t, f.All(probetest.KindDrag))
		h.Click(f.Widget(t, probetest.KindSelectable, "Some"))
	})
	require.NotNil(t, v)
	assert.Equal(t, 0, *v)
	assert.Len(t, f.All(probetest.KindDrag), 1, "editor of the new value is missing")

	edit(t, opt, func(h *probetest.Harness, f *probetest.Frame) {
		h.Click(f.Widget(t, probetest.KindSelectable, "None"))
	})
	assert.Nil(t, v)

	edit(t, probe.OptionDefault(&v, func(n *int) probe.Prober { return probe.Number(n) }, 42),
		func(h *probetest.Harness, f *probetest.Frame) {
			h.Click(f.Widget(t, probetest.KindSelectable, "Some"))
		})
	require.NotNil(t, v)
	assert.Equal(t, 42, *v)
}

func stringElem(v *string) probe.Prober { return probe.String(v) }

func TestSliceAdd(t *testing.T) {
	var tags []string
	f := edit(t, probe.Slice(&tags, stringElem, func() string { return "new" }), func(h *probetest.Harness, f *probetest.Frame) {
		assert.True(t, f.Has(probetest.KindWeakLabel, "[0]"))
		h.Click(f.Widget(t, probetest.KindButton, "+"))
	})
	assert.Equal(t, []string{"new"}, tags)
	assert.Len(t, f.All(probetest.KindTextEdit), 0, "rows drawn before the tree had a header")
}

func TestSliceRemoveKeepsOrder(t *testing.T) {
	tags := []string{"a", "b", "c"}
	h := probetest.New()
	openRoot(t, h, "tags")
	fn := show("tags", probe.Slice(&tags, stringElem, nil))

	f := h.Frame(fn)
	removes := f.All(probetest.KindButton)
	require.Len(t, removes, 4, "one add and three remove buttons:\n%s", f)
	assert.Equal(t, "-", removes[2].Text)
	h.Click(removes[2])
	h.Frame(fn)

	assert.Equal(t, []string{"a", "c"}, tags)
}

func TestFrozenSliceEditsInPlace(t *testing.T) {
	arr := [3]int{1, 2, 3}
	h := probetest.New()
	openRoot(t, h, "arr")
	fn := show("arr", probe.Array(arr[:], func(v *int) probe.Prober { return probe.Number(v) }))

	f := h.Frame(fn)
	assert.Empty(t, f.All(probetest.KindButton))
	h.SetValue(f.Widget(t, probetest.KindDrag, "2"), 20)
	h.Frame(fn)
	assert.Equal(t, [3]int{1, 20, 3}, arr)
}

func TestColors(t *testing.T) {
	t.Run("rgb8", func(t *testing.T) {
		c := [3]uint8{0, 0, 255}
		f := edit(t, probe.RGB8(&c), func(h *probetest.Harness, f *probetest.Frame) {
			assert.True(t, f.Has(probetest.KindWeakLabel, "#0000ff"))
			h.SetColor(f.All(probetest.KindColor)[0], [4]float32{1, 0, 0, 1})
		})
		assert.Equal(t, [3]uint8{255, 0, 0}, c)
		assert.True(t, f.Has(probetest.KindWeakLabel, "#ff0000"))
	})

	t.Run("premultiplied rgba8", func(t *testing.T) {
		c := color.RGBA{R: 128, A: 128}
		edit(t, probe.RGBA8(&c), func(h *probetest.Harness, f *probetest.Frame) {
			got := f.All(probetest.KindColor)[0].Color
			assert.InDelta(t, 1, got[0], 1e-6)
			assert.InDelta(t, 128.0/255, got[3], 1e-6)
			h.SetColor(f.All(probetest.KindColor)[0], [4]float32{0, 1, 0, 0.5})
		})
		assert.Equal(t, color.RGBA{G: 128, A: 128}, c)
	})

	t.Run("premultiplied floats", func(t *testing.T) {
		c := [4]float32{0.25, 0, 0, 0.5}
		edit(t, probe.RGBAPremultiplied(&c), func(h *probetest.Harness, f *probetest.Frame) {
			assert.Equal(t, [4]float32{0.5, 0, 0, 0.5}, f.All(probetest.KindColor)[0].Color)
			h.SetColor(f.All(probetest.KindColor)[0], [4]float32{1, 1, 1, 0.5})
		})
		assert.Equal(t, [4]float32{0.5, 0.5, 0.5, 0.5}, c)
	})

	t.Run("opaque drops alpha", func(t *testing.T) {
		c := colorful.Color{}
		edit(t, probe.Color(&c), func(h *probetest.Harness, f *probetest.Frame) {
			h.SetColor(f.All(probetest.KindColor)[0], [4]float32{0, 0, 1, 0.2})
		})
		assert.Equal(t, colorful.Color{B: 1}, c)
	})

	t.Run("packed", func(t *testing.T) {
		c := gui.RGBA(10, 20, 30, 255)
		f := edit(t, probe.PackedColor(&c), func(h *probetest.Harness, f *probetest.Frame) {
			h.SetColor(f.All(probetest.KindColor)[0], [4]float32{1, 1, 1, 1})
		})
		assert.Equal(t, gui.RGBA(255, 255, 255, 255), c)
		assert.True(t, f.Has(probetest.KindWeakLabel, "#ffffffff"))
	})
}

type weather int

const (
	sunny weather = iota
	rain
	fog
)

var weatherNames = []string{"sunny", "rain", "fog"}

func TestEnumComboBox(t *testing.T) {
	w := sunny
	f := edit(t, probe.Enum(&w, weatherNames, []weather{sunny, rain, fog}), func(h *probetest.Harness, f *probetest.Frame) {
		h.Select(f.Widget(t, probetest.KindComboBox, "sunny"), "rain")
	})
	assert.Equal(t, rain, w)
	assert.Empty(t, f.All(probetest.KindSelectable), "closed combobox drew its items")
}

func TestEnumInlined(t *testing.T) {
	w := sunny
	values := []weather{sunny, rain, fog}
	edit(t, probe.Enum(&w, weatherNames, values).Inlined(), func(h *probetest.Harness, f *probetest.Frame) {
		assert.Empty(t, f.All(probetest.KindComboBox))
		h.Click(f.Widget(t, probetest.KindSelectable, "fog"))
	})
	assert.Equal(t, fog, w)

	inlined := probe.DefaultStyle()
	inlined.Variants = probe.VariantsInlined
	f := edit(t, probe.Enum(&w, weatherNames, values).ComboBox(), func(*probetest.Harness, *probetest.Frame) {}, probe.WithStyle(inlined))
	assert.Len(t, f.All(probetest.KindComboBox), 1, "type override loses to the style")
}

func TestEnumValueOutsideList(t *testing.T) {
	w := weather(42)
	values := []weather{sunny, rain, fog}
	edit(t, probe.Enum(&w, weatherNames, values).Inlined(), func(h *probetest.Harness, f *probetest.Frame) {
		for _, sel := range f.All(probetest.KindSelectable) {
			assert.Falsef(t, sel.Checked, "%q is selected", sel.Text)
		}
		h.Click(f.Widget(t, probetest.KindSelectable, "sunny"))
	})
	assert.Equal(t, sunny, w)

	w = weather(42)
	edit(t, probe.Enum(&w, weatherNames, values).ComboBox(), func(h *probetest.Harness, f *probetest.Frame) {
		h.Select(f.Widget(t, probetest.KindComboBox, ""), "sunny")
	})
	assert.Equal(t, sunny, w)
}

func TestEnumPanicsOnMismatch(t *testing.T) {
	var w weather
	assert.Panics(t, func() { probe.Enum(&w, weatherNames, []weather{sunny}) })
}

func TestAngle(t *testing.T) {
	v := math.Pi
	edit(t, probe.Angle(&v), func(h *probetest.Harness, f *probetest.Frame) {
		d := onlyDrag(t, f)
		assert.InDelta(t, 180, d.Value, 1e-9)
		h.SetValue(d, 90)
	})
	assert.InDelta(t, math.Pi/2, v, 1e-9)
}

func TestWith(t *testing.T) {
	calls := 0
	v := 3
	edit(t, probe.With(&v, func(n *int, s probe.Surface, _ *probe.Style) probe.Response {
		calls++
		if s.SmallButton("double") {
			*n *= 2
			return probe.Response{Changed: true}
		}
		return probe.Response{}
	}), func(h *probetest.Harness, f *probetest.Frame) {
		h.Click(f.Widget(t, probetest.KindButton, "double"))
	})
	assert.Equal(t, 6, v)
	assert.Equal(t, 2, calls)
}

func TestRectCorners(t *testing.T) {
	r := gui.Rect{X: 10, Y: 20, W: 30, H: 40}
	h := probetest.New()
	openRoot(t, h, "rect")
	fn := show("rect", probe.RectOf(&r))

	f, _ := settle(t, h, fn)
	assert.True(t, f.Has(probetest.KindWeakLabel, "30x40 at 10,20"))
	drags := f.All(probetest.KindDrag)
	require.Len(t, drags, 4)
	assert.Equal(t, "x: 40", drags[2].Text)

	h.SetValue(drags[2], 100)
	h.Frame(fn)
	assert.Equal(t, gui.Rect{X: 10, Y: 20, W: 90, H: 40}, r)
}

func TestGUIStyleGroups(t *testing.T) {
	st := gui.DefaultStyle()
	var labels []string
	probe.IterateInner(probe.GUIStyle(&st), nil, func(label string, _ probe.Surface, child probe.Prober) {
		labels = append(labels, label)
		assert.True(t, probe.HasInner(child))
	})
	assert.Equal(t, []string{"colors", "sizes"}, labels)
}
