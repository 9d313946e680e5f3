package probe

import "github.com/go-theft-auto/probe/gui"

// guiSurface draws probes with a gui.Context.
type guiSurface struct {
	ctx *gui.Context
}

// NewSurface returns a Surface drawing into ctx at its current cursor.
func NewSurface(ctx *gui.Context) Surface {
	return guiSurface{ctx: ctx}
}

func (s guiSurface) ID() ID             { return s.ctx.CurrentID() }
func (s guiSurface) MakeID(salt any) ID { return s.ctx.CurrentID().With(salt) }
func (s guiSurface) Cursor() Rect       { return s.ctx.CursorRect() }
func (s guiSurface) MaxRect() Rect      { return s.ctx.MaxRect() }
func (s guiSurface) MinRect() Rect      { return s.ctx.ContentRect() }
func (s guiSurface) ClipRect() Rect     { return s.ctx.ClipRect() }

func (s guiSurface) Child(rect Rect, id ID, clip Rect, fn func(Surface)) Rect {
	return s.ctx.Region(rect, id, clip, func() { fn(s) })
}

func (s guiSurface) Horizontal(fn func(Surface)) Rect {
	return s.ctx.HStack()(func() { fn(s) })
}

func (s guiSurface) Frame(fn func(Surface)) Rect {
	return s.ctx.Frame(func() { fn(s) })
}

func (s guiSurface) AdvanceCursorAfter(r Rect) { s.ctx.AdvanceCursorAfter(r) }
func (s guiSurface) Separator()                { s.ctx.Separator() }
func (s guiSurface) AddSpace(px float32)       { s.ctx.AddSpace(px) }

func (s guiSurface) Label(text string) Rect { return s.ctx.Label(text) }
func (s guiSurface) WeakLabel(text string)  { s.ctx.TextDisabled(text) }

func (s guiSurface) ErrorLabel(text string) {
	s.ctx.TextColored(text, s.ctx.Style().ErrorColor)
}

func (s guiSurface) CollapseIcon(id ID, openness float32) bool {
	return s.ctx.CollapseIcon(id, openness)
}

func (s guiSurface) SmallButton(text string) bool { return s.ctx.SmallButton(text) }

func (s guiSurface) Selectable(selected bool, text string) bool {
	return s.ctx.Selectable(text, selected)
}

func (s guiSurface) Checkbox(value *bool) bool { return s.ctx.Checkbox("", value) }

func (s guiSurface) ToggleSwitch(id ID, value *bool) bool {
	return s.ctx.ToggleSwitch(id, value)
}

func (s guiSurface) TextEdit(id ID, value *string, opts TextEditOptions) bool {
	var o []gui.Option
	if opts.Multiline {
		o = append(o, gui.Multiline())
	}
	if opts.Width > 0 {
		o = append(o, gui.WithWidth(opts.Width))
	}
	if opts.Error {
		o = append(o, gui.WithTextColor(s.ctx.Style().ErrorColor))
	}
	if opts.Hint != "" {
		o = append(o, gui.WithHint(opts.Hint))
	}
	return s.ctx.TextEdit(id, value, o...)
}

func (s guiSurface) DragValue(id ID, value *float64, opts DragOptions) bool {
	o := []gui.Option{gui.WithBounds(gui.RangeValue{
		Min:    opts.Min,
		Max:    opts.Max,
		HasMin: opts.HasMin,
		HasMax: opts.HasMax,
	})}
	if opts.Step > 0 {
		o = append(o, gui.WithStep(opts.Step))
	}
	if opts.Speed > 0 {
		o = append(o, gui.WithDragSpeed(opts.Speed))
	}
	if opts.Integer {
		o = append(o, gui.WithDecimals(0))
	}
	if opts.Prefix != "" {
		o = append(o, gui.WithPrefix(opts.Prefix))
	}
	if opts.Suffix != "" {
		o = append(o, gui.WithSuffix(opts.Suffix))
	}
	return s.ctx.DragValue(id, value, o...)
}

func (s guiSurface) ColorEdit(id ID, rgba *[4]float32, alpha bool) bool {
	return s.ctx.ColorEdit(id, rgba, alpha)
}

func (s guiSurface) ComboBox(id ID, selected string, body func(Surface)) bool {
	return s.ctx.ComboBox(id, selected, func() { body(s) })
}

func (s guiSurface) Memory() StateStore { return s.ctx.Memory() }
func (s guiSurface) RequestRedraw()     { s.ctx.RequestRedraw() }

func (s guiSurface) AnimateBool(id ID, target bool) float32 {
	return s.ctx.AnimateBool(id, target)
}

func (s guiSurface) MeasureText(text string) Vec2 { return s.ctx.MeasureText(text) }

func (s guiSurface) Spacing() Spacing {
	st := s.ctx.Style()
	return Spacing{
		ItemSpacing: st.ItemSpacing,
		IndentWidth: st.IndentWidth,
		IconWidth:   st.IconWidth,
		LineHeight:  s.ctx.LineHeight(),
	}
}
