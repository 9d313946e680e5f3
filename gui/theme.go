package gui

import (
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Theme is the YAML form of a Style: a base style plus overrides.
//
//	base: gta
//	colors:
//	  text: "#f0f0f0"
//	  error: "#ff4040cc"
//	sizes:
//	  font_scale: 1.25
type Theme struct {
	Base   string             `yaml:"base"`
	Colors map[string]string  `yaml:"colors"`
	Sizes  map[string]float32 `yaml:"sizes"`
}

// LoadTheme decodes a theme from YAML and resolves it to a Style.
func LoadTheme(r io.Reader) (Style, error) {
	var t Theme
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Style{}, errors.Wrap(err, "decoding theme")
	}
	return t.Resolve()
}

// Resolve applies the overrides on top of the base style.
func (t Theme) Resolve() (Style, error) {
	s, ok := StyleByName(t.Base)
	if !ok {
		return Style{}, errors.Newf("unknown base style %q", t.Base)
	}
	colors := s.colorFields()
	for name, hex := range t.Colors {
		field, ok := colors[name]
		if !ok {
			return Style{}, errors.Newf("unknown theme color %q", name)
		}
		c, err := ParseHexColor(hex)
		if err != nil {
			return Style{}, errors.Wrapf(err, "theme color %q", name)
		}
		*field = c
	}
	sizes := s.sizeFields()
	for name, v := range t.Sizes {
		field, ok := sizes[name]
		if !ok {
			return Style{}, errors.Newf("unknown theme size %q", name)
		}
		*field = v
	}
	return s, nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" into a packed color.
func ParseHexColor(hex string) (uint32, error) {
	alpha := uint8(255)
	if len(hex) == 9 && strings.HasPrefix(hex, "#") {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return 0, errors.Wrapf(err, "alpha of %q", hex)
		}
		alpha = uint8(a)
		hex = hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %q", hex)
	}
	r, g, b := c.RGB255()
	return RGBA(r, g, b, alpha), nil
}

// HexColor formats a packed color as "#rrggbbaa".
func HexColor(c uint32) string {
	r, g, b, a := UnpackRGBA(c)
	rgb := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	return rgb.Hex() + strconv.FormatUint(uint64(a)|0x100, 16)[1:]
}

func (s *Style) colorFields() map[string]*uint32 {
	return map[string]*uint32{
		"text":             &s.TextColor,
		"text_disabled":    &s.TextDisabledColor,
		"error":            &s.ErrorColor,
		"panel":            &s.PanelColor,
		"extreme_bg":       &s.ExtremeBgColor,
		"button":           &s.ButtonColor,
		"button_hovered":   &s.ButtonHoveredColor,
		"button_active":    &s.ButtonActiveColor,
		"button_disabled":  &s.ButtonDisabledColor,
		"selected_bg":      &s.SelectedBgColor,
		"selected_text":    &s.SelectedTextColor,
		"hovered_bg":       &s.HoveredBgColor,
		"input_bg":         &s.InputBgColor,
		"input_focused_bg": &s.InputFocusedBgColor,
		"input_border":     &s.InputBorderColor,
		"separator":        &s.SeparatorColor,
		"dropdown_bg":      &s.DropdownBgColor,
		"arrow":            &s.ArrowColor,
		"toggle_on":        &s.ToggleOnColor,
		"scrollbar_bg":     &s.ScrollbarBgColor,
		"scrollbar_grab":   &s.ScrollbarGrabColor,
	}
}

func (s *Style) sizeFields() map[string]*float32 {
	return map[string]*float32{
		"font_scale":      &s.FontScale,
		"char_width":      &s.CharWidth,
		"char_height":     &s.CharHeight,
		"item_spacing":    &s.ItemSpacing,
		"panel_padding":   &s.PanelPadding,
		"button_padding":  &s.ButtonPadding,
		"input_padding":   &s.InputPadding,
		"icon_width":      &s.IconWidth,
		"indent_width":    &s.IndentWidth,
		"text_edit_width": &s.TextEditWidth,
		"scrollbar_size":  &s.ScrollbarSize,
		"animation_time":  &s.AnimationTime,
	}
}
