package gui_test

import (
	"strings"
	"testing"

	"github.com/go-theft-auto/probe/gui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTheme(t *testing.T) {
	style, err := gui.LoadTheme(strings.NewReader(`
base: gta
colors:
  text: "#102030"
  error: "#ff000080"
sizes:
  font_scale: 2
  animation_time: 0
`))
	require.NoError(t, err)

	want := gui.GTAStyle()
	want.TextColor = gui.RGBA(0x10, 0x20, 0x30, 0xff)
	want.ErrorColor = gui.RGBA(0xff, 0, 0, 0x80)
	want.FontScale = 2
	want.AnimationTime = 0
	assert.Equal(t, want, style)
}

func TestLoadThemeEmpty(t *testing.T) {
	style, err := gui.LoadTheme(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, gui.DefaultStyle(), style)
}

func TestLoadThemeErrors(t *testing.T) {
	tests := []struct {
		name, yaml, want string
	}{
		{"base", "base: neon", `unknown base style "neon"`},
		{"color name", "colors: {glow: '#fff'}", `unknown theme color "glow"`},
		{"color value", "colors: {text: 'red'}", `theme color "text"`},
		{"size name", "sizes: {girth: 3}", `unknown theme size "girth"`},
		{"field", "palette: x", "decoding theme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gui.LoadTheme(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000ff", "#ff8040c8", "#12345600"} {
		c, err := gui.ParseHexColor(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, gui.HexColor(c))
	}
	c, err := gui.ParseHexColor("#abcdef")
	require.NoError(t, err)
	assert.Equal(t, "#abcdefff", gui.HexColor(c))
}
