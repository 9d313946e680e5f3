package probe

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-theft-auto/probe/gui"
	"github.com/lucasb-eyer/go-colorful"
)

// ColorProbe edits a color through a swatch with a channel popup, followed
// by its hex code. Channels are edited unmultiplied in 0..1.
type ColorProbe struct {
	alpha bool
	get   func() [4]float32
	set   func([4]float32)
}

func (c ColorProbe) Probe(s Surface, _ *Style) Response {
	rgba := c.get()
	changed := false
	s.Horizontal(func(row Surface) {
		changed = row.ColorEdit(row.MakeID("color"), &rgba, c.alpha)
		row.WeakLabel(hexCode(rgba, c.alpha))
	})
	if changed {
		c.set(rgba)
	}
	return Response{Changed: changed}
}

func hexCode(rgba [4]float32, alpha bool) string {
	hex := colorful.Color{R: float64(rgba[0]), G: float64(rgba[1]), B: float64(rgba[2])}.Clamped().Hex()
	if alpha {
		hex += fmt.Sprintf("%02x", to8(rgba[3]))
	}
	return hex
}

func to8(v float32) uint8 {
	return uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
}

// Color edits an opaque colorful.Color.
func Color(c *colorful.Color) ColorProbe {
	return ColorProbe{
		get: func() [4]float32 { return [4]float32{float32(c.R), float32(c.G), float32(c.B), 1} },
		set: func(v [4]float32) { *c = colorful.Color{R: float64(v[0]), G: float64(v[1]), B: float64(v[2])} },
	}
}

// RGB edits an opaque color stored as 0..1 floats.
func RGB(c *[3]float32) ColorProbe {
	return ColorProbe{
		get: func() [4]float32 { return [4]float32{c[0], c[1], c[2], 1} },
		set: func(v [4]float32) { *c = [3]float32{v[0], v[1], v[2]} },
	}
}

// RGBA edits an unmultiplied color with alpha stored as 0..1 floats.
func RGBA(c *[4]float32) ColorProbe {
	return ColorProbe{
		alpha: true,
		get:   func() [4]float32 { return *c },
		set:   func(v [4]float32) { *c = v },
	}
}

// RGBAUnmultiplied is RGBA.
func RGBAUnmultiplied(c *[4]float32) ColorProbe { return RGBA(c) }

// RGBAPremultiplied edits a color whose channels are multiplied by alpha.
func RGBAPremultiplied(c *[4]float32) ColorProbe {
	return ColorProbe{
		alpha: true,
		get: func() [4]float32 {
			a := c[3]
			if a == 0 {
				return [4]float32{}
			}
			return [4]float32{c[0] / a, c[1] / a, c[2] / a, a}
		},
		set: func(v [4]float32) {
			a := v[3]
			*c = [4]float32{v[0] * a, v[1] * a, v[2] * a, a}
		},
	}
}

// RGB8 edits an opaque 8-bit color.
func RGB8(c *[3]uint8) ColorProbe {
	return ColorProbe{
		get: func() [4]float32 {
			return [4]float32{float32(c[0]) / 255, float32(c[1]) / 255, float32(c[2]) / 255, 1}
		},
		set: func(v [4]float32) { *c = [3]uint8{to8(v[0]), to8(v[1]), to8(v[2])} },
	}
}

// RGBA8 edits an alpha-premultiplied color.RGBA.
func RGBA8(c *color.RGBA) ColorProbe {
	return ColorProbe{
		alpha: true,
		get: func() [4]float32 {
			// MakeColor undoes the premultiplication.
			cf, ok := colorful.MakeColor(*c)
			if !ok {
				return [4]float32{}
			}
			return [4]float32{float32(cf.R), float32(cf.G), float32(cf.B), float32(c.A) / 255}
		},
		set: func(v [4]float32) {
			a := min(max(v[3], 0), 1)
			*c = color.RGBA{R: to8(v[0] * a), G: to8(v[1] * a), B: to8(v[2] * a), A: to8(a)}
		},
	}
}

// NRGBA8 edits an unmultiplied color.NRGBA.
func NRGBA8(c *color.NRGBA) ColorProbe {
	return ColorProbe{
		alpha: true,
		get: func() [4]float32 {
			return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
		},
		set: func(v [4]float32) { *c = color.NRGBA{R: to8(v[0]), G: to8(v[1]), B: to8(v[2]), A: to8(v[3])} },
	}
}

// PackedColor edits a color packed the way the gui toolkit stores them.
func PackedColor(c *uint32) ColorProbe {
	return ColorProbe{
		alpha: true,
		get: func() [4]float32 {
			r, g, b, a := gui.UnpackRGBA(*c)
			return [4]float32{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
		},
		set: func(v [4]float32) { *c = gui.RGBA(to8(v[0]), to8(v[1]), to8(v[2]), to8(v[3])) },
	}
}
