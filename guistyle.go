package probe

import "github.com/go-theft-auto/probe/gui"

// GUIStyleProbe edits the gui toolkit's own style, grouped into colors and
// sizes.
type GUIStyleProbe struct {
	value *gui.Style
}

// GUIStyle edits st.
func GUIStyle(st *gui.Style) GUIStyleProbe { return GUIStyleProbe{value: st} }

func (p GUIStyleProbe) Probe(s Surface, _ *Style) Response {
	s.WeakLabel("Style")
	return Response{}
}

func (p GUIStyleProbe) HasInner() bool { return true }

func (p GUIStyleProbe) IterateInner(s Surface, visit Visit) {
	st := p.value
	visit("colors", s, group{
		{"text", PackedColor(&st.TextColor)},
		{"text_disabled", PackedColor(&st.TextDisabledColor)},
		{"error", PackedColor(&st.ErrorColor)},
		{"panel", PackedColor(&st.PanelColor)},
		{"extreme_bg", PackedColor(&st.ExtremeBgColor)},
		{"button", PackedColor(&st.ButtonColor)},
		{"button_hovered", PackedColor(&st.ButtonHoveredColor)},
		{"button_active", PackedColor(&st.ButtonActiveColor)},
		{"selected_bg", PackedColor(&st.SelectedBgColor)},
		{"hovered_bg", PackedColor(&st.HoveredBgColor)},
		{"input_bg", PackedColor(&st.InputBgColor)},
		{"input_border", PackedColor(&st.InputBorderColor)},
		{"separator", PackedColor(&st.SeparatorColor)},
		{"arrow", PackedColor(&st.ArrowColor)},
		{"toggle_on", PackedColor(&st.ToggleOnColor)},
	})
	visit("sizes", s, group{
		{"font_scale", NonNegative(&st.FontScale).Step(0.25)},
		{"item_spacing", NonNegative(&st.ItemSpacing)},
		{"button_padding", NonNegative(&st.ButtonPadding)},
		{"input_padding", NonNegative(&st.InputPadding)},
		{"indent_width", NonNegative(&st.IndentWidth)},
		{"text_edit_width", NonNegative(&st.TextEditWidth)},
		{"animation_time", NonNegative(&st.AnimationTime).Step(0.01)},
	})
}

// group is a fixed list of labeled children.
type group []struct {
	label string
	value Prober
}

func (g group) Probe(Surface, *Style) Response { return Response{} }

func (g group) HasInner() bool { return len(g) > 0 }

func (g group) IterateInner(s Surface, visit Visit) {
	for _, f := range g {
		visit(f.label, s, f.value)
	}
}
