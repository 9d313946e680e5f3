package gui

// SectionState is the persisted open flag of a Section.
type SectionState struct {
	Open bool
}

// Section creates a collapsible section that can contain any widgets,
// including nested sections. Content is indented by Style.IndentWidth.
//
// Usage:
//
//	ctx.Section("Settings", true)(func() {
//	    ctx.Checkbox("VSync", &vsync)
//	    ctx.Section("Advanced", false)(func() {
//	        ctx.Text("Nested content")
//	    })
//	})
func (ctx *Context) Section(label string, defaultOpen bool) func(func()) {
	return func(contents func()) {
		id := ctx.GetID(label)
		state := GetState(ctx, id, SectionState{Open: defaultOpen})

		var clicked bool
		openness := ctx.AnimateBool(id, state.Open)
		ctx.HStack()(func() {
			clicked = ctx.CollapseIcon(id.With("icon"), openness)
			r := ctx.Label(label)
			clicked = clicked || ctx.isClicked(id, r)
		})
		if clicked {
			state.Open = !state.Open
			SetState(ctx, id, state)
			ctx.RequestRedraw()
		}
		if openness <= 0 {
			return
		}

		ctx.PushID(id)
		ctx.Indent(ctx.style.IndentWidth)
		ctx.VStack()(contents)
		ctx.PopID()
	}
}

// IsSectionOpen reports the persisted state of the section label in the
// current ID scope.
func IsSectionOpen(ctx *Context, label string) bool {
	return GetState(ctx, ctx.GetID(label), SectionState{}).Open
}
