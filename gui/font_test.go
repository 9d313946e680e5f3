package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontAtlas(t *testing.T) {
	pix := FontAtlas()
	require.Len(t, pix, 128*48)

	// coverage of row y of the glyph for ch, one bit per pixel.
	row := func(ch byte, y int) byte {
		cell := int(ch - 32)
		x0, y0 := cell%16*8, cell/16*8
		var bits byte
		for x := range 8 {
			if pix[(y0+y)*FontAtlasWidth+x0+x] != 0 {
				bits |= 0x80 >> x
			}
		}
		return bits
	}
	for y := range 8 {
		assert.Zero(t, row(' ', y))
		assert.Equal(t, glyphs['A'][y], row('A', y))
		assert.Equal(t, glyphs['~'][y], row('~', y))
	}
	assert.Equal(t, byte(0x7E), row('I', 0))

	// Punctuation drawn in value columns, e.g. "0..=100" and "x: 1".
	for _, ch := range []byte{':', ';', '.', '=', '-'} {
		_, ok := glyphs[ch]
		assert.True(t, ok, "no glyph for %q", ch)
	}
	assert.Equal(t, byte(0x18), row(':', 2))
}

func TestGlyphUV(t *testing.T) {
	uv0, uv1 := glyphUV(' ')
	assert.Equal(t, Vec2{}, uv0)
	assert.Equal(t, Vec2{X: 8.0 / 128, Y: 8.0 / 48}, uv1)

	// 'P' is cell 48: first column of the fourth row.
	uv0, _ = glyphUV('P')
	assert.Equal(t, Vec2{X: 0, Y: 24.0 / 48}, uv0)
}
