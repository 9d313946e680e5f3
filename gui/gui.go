package gui

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI manages the immediate mode UI system.
type GUI struct {
	renderer   Renderer
	stateStore StateStore
	clipboard  ClipboardProvider
	style      Style
	ctx        *Context
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithStateStore sets a custom state store. A store implementing Cleanable
// is advanced once per frame.
func WithStateStore(store StateStore) GUIOption {
	return func(g *GUI) { g.stateStore = store }
}

// WithClipboard sets the clipboard used by text edits.
func WithClipboard(cp ClipboardProvider) GUIOption {
	return func(g *GUI) { g.clipboard = cp }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer:   renderer,
		stateStore: make(MapStateStore),
		style:      DefaultStyle(),
		ctx:        NewContext(),
	}

	for _, opt := range opts {
		opt(g)
	}

	g.ctx.SetStateStore(g.stateStore)
	g.ctx.SetClipboard(g.clipboard)
	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before drawing any UI.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx
	ctx.Input = input
	ctx.SetStyle(g.style)
	if g.renderer != nil {
		ctx.FontTextureID = g.renderer.FontTextureID()
	}
	ctx.BeginFrame(displaySize, deltaTime)
	return ctx
}

// End finishes the frame and renders the UI.
// Call this after all UI drawing is complete.
func (g *GUI) End() error {
	ctx := g.ctx
	if ctx.DrawList == nil {
		return nil
	}
	defer ctx.EndFrame()

	ctx.DrawList.Finalize()
	ctx.ForegroundDrawList.Finalize()
	if g.renderer == nil {
		return nil
	}

	if err := g.renderer.Render(ctx.DrawList); err != nil {
		return err
	}
	if len(ctx.ForegroundDrawList.CmdBuffer) > 0 {
		return g.renderer.Render(ctx.ForegroundDrawList)
	}
	return nil
}

// NeedsRedraw reports whether the last frame asked for another one, e.g.
// because an animation is still running. Event-driven loops use it to
// decide whether to wait for input.
func (g *GUI) NeedsRedraw() bool {
	return g.ctx.RedrawRequested()
}

// Context returns the current GUI context.
// Only valid between Begin() and End() calls.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle sets the GUI style.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// Resize notifies the GUI of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}

// BeginFrame resets per-frame state and acquires draw lists. It is what
// GUI.Begin does without a renderer, and lets tests and tools drive a
// Context headlessly:
//
//	ctx := gui.NewContext()
//	ctx.Input = gui.NewInputState()
//	ctx.BeginFrame(gui.Vec2{X: 800, Y: 600}, 1.0/60)
//	// ... widgets ...
//	ctx.EndFrame()
func (ctx *Context) BeginFrame(displaySize Vec2, deltaTime float32) {
	if ctx.DrawList == nil {
		ctx.DrawList = AcquireDrawList()
	}
	if ctx.ForegroundDrawList == nil {
		ctx.ForegroundDrawList = AcquireDrawList()
	}
	if c, ok := ctx.stateStore.(Cleanable); ok {
		c.NextFrame()
	}
	ctx.Reset(displaySize, deltaTime)
}

// EndFrame releases the frame's draw lists.
func (ctx *Context) EndFrame() {
	ReleaseDrawList(ctx.DrawList)
	ReleaseDrawList(ctx.ForegroundDrawList)
	ctx.DrawList = nil
	ctx.ForegroundDrawList = nil
}
