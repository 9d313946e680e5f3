package probe

// BoolProbe edits a bool with a checkbox or a toggle switch.
type BoolProbe struct {
	value  *bool
	toggle bool
}

// Bool edits v with the editor picked by Style.Boolean.
func Bool(v *bool) BoolProbe { return BoolProbe{value: v} }

// Toggle always edits v with a toggle switch.
func Toggle(v *bool) BoolProbe { return BoolProbe{value: v, toggle: true} }

func (b BoolProbe) Probe(s Surface, style *Style) Response {
	if b.toggle || style.Boolean == BooleanToggleSwitch {
		return Response{Changed: s.ToggleSwitch(s.MakeID("toggle"), b.value)}
	}
	return Response{Changed: s.Checkbox(b.value)}
}
