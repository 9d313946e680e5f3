package gui

import (
	"log/slog"
	"os"
)

// guiLogger is the logger for GUI context debugging.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel()}))

func guiLogLevel() slog.Level {
	if os.Getenv("GUI_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
type Context struct {
	DrawList           *DrawList
	ForegroundDrawList *DrawList // popups and dropdowns, drawn on top

	style      Style
	styleStack []Style

	cursor      Vec2
	layoutStack []*Layout

	// Input is read-only during the frame.
	Input *InputState

	stateStore StateStore

	idStack []ID

	DisplaySize Vec2
	FrameCount  uint64
	DeltaTime   float32

	focusedID ID // widget with keyboard focus (text edit, drag edit)
	activeID  ID // widget being dragged

	// Popups drawn this frame and last frame. Clicks that land in last
	// frame's popups are not delivered to widgets underneath.
	popupRects     []Rect
	prevPopupRects []Rect
	inPopup        int

	// FontTextureID is the bitmap font texture, set by the renderer.
	FontTextureID uint32

	// Input capture flags for the application.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	redrawRequested bool

	clipboard ClipboardProvider

	textMeasureCache map[string]Vec2
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		style:            DefaultStyle(),
		styleStack:       make([]Style, 0, 8),
		layoutStack:      make([]*Layout, 0, 16),
		idStack:          make([]ID, 0, 32),
		textMeasureCache: make(map[string]Vec2, 64),
		stateStore:       make(MapStateStore),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
	clear(ctx.textMeasureCache)
}

// PushStyle temporarily overrides the style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
	clear(ctx.textMeasureCache)
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
		clear(ctx.textMeasureCache)
	}
}

// SetStateStore replaces the persistent widget state store.
func (ctx *Context) SetStateStore(store StateStore) {
	ctx.stateStore = store
}

// Memory returns the persistent widget state store.
func (ctx *Context) Memory() StateStore {
	return ctx.stateStore
}

// RequestRedraw asks the host loop to render another frame even when no
// input arrives, e.g. while an animation is running.
func (ctx *Context) RequestRedraw() {
	ctx.redrawRequested = true
}

// RedrawRequested reports whether anything asked for another frame.
func (ctx *Context) RedrawRequested() bool {
	return ctx.redrawRequested
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	ctx.cursor = Vec2{}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++

	ctx.prevPopupRects, ctx.popupRects = ctx.popupRects, ctx.prevPopupRects[:0]
	ctx.inPopup = 0

	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false
	ctx.redrawRequested = false

	if ctx.Input != nil && !ctx.Input.MouseDown(MouseButtonLeft) {
		ctx.activeID = 0
	}

	clear(ctx.textMeasureCache)
}

func (ctx *Context) mousePos() Vec2 {
	if ctx.Input == nil {
		return Vec2{-1, -1}
	}
	return Vec2{ctx.Input.MouseX, ctx.Input.MouseY}
}

// blockedByPopup reports whether p is covered by a popup drawn last frame
// while we are drawing underneath it.
func (ctx *Context) blockedByPopup(p Vec2) bool {
	if ctx.inPopup > 0 {
		return false
	}
	for _, r := range ctx.prevPopupRects {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// isHovered returns true if the widget area is under the mouse cursor and
// visible through the current clip rect.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	p := ctx.mousePos()
	if !rect.Contains(p) || ctx.blockedByPopup(p) {
		return false
	}
	if dl := ctx.activeDrawList(); dl != nil && !dl.ClipRect().Contains(p) {
		return false
	}
	return true
}

// IsHovered returns true if the area is under the mouse cursor (public API).
func (ctx *Context) IsHovered(rect Rect) bool {
	return ctx.isHovered(rect)
}

// isClicked returns true if the widget was clicked this frame.
func (ctx *Context) isClicked(id ID, rect Rect) bool {
	if ctx.Input == nil || !ctx.Input.MouseClicked(MouseButtonLeft) {
		return false
	}
	hovered := ctx.isHovered(rect)
	if hovered {
		guiLogger.Debug("click", "id", id, "rect", rect, "mouse", ctx.mousePos())
	}
	return hovered
}

// IsClicked returns true if the area was clicked this frame (public API).
func (ctx *Context) IsClicked(id ID, rect Rect) bool {
	return ctx.isClicked(id, rect)
}

// isPressed returns true if the widget is being held down.
func (ctx *Context) isPressed(rect Rect) bool {
	return ctx.Input != nil && ctx.isHovered(rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// SetFocused gives a widget keyboard focus.
func (ctx *Context) SetFocused(id ID) {
	ctx.focusedID = id
}

// IsFocused returns true if the widget has keyboard focus.
func (ctx *Context) IsFocused(id ID) bool {
	return id != 0 && ctx.focusedID == id
}

// ClearFocus removes keyboard focus.
func (ctx *Context) ClearFocus() {
	ctx.focusedID = 0
}

// lineHeight returns the height of a single line of text.
func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of a single line of text (public API).
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// frameHeight is the height of framed widgets (buttons, inputs).
func (ctx *Context) frameHeight() float32 {
	return ctx.lineHeight() + ctx.style.InputPadding*2
}

// activeDrawList is the foreground list inside popups, the main list otherwise.
func (ctx *Context) activeDrawList() *DrawList {
	if ctx.inPopup > 0 && ctx.ForegroundDrawList != nil {
		return ctx.ForegroundDrawList
	}
	return ctx.DrawList
}

// AddText draws text with the current style into the active draw list.
func (ctx *Context) AddText(pos Vec2, text string, color uint32) {
	dl := ctx.activeDrawList()
	if dl == nil {
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(pos, text, color, ctx.cellSize())
	dl.SetTexture(0)
}

// addRect draws a filled rect into the active draw list.
func (ctx *Context) addRect(r Rect, color uint32) {
	if dl := ctx.activeDrawList(); dl != nil {
		dl.AddRect(r, color)
	}
}

func (ctx *Context) addRectOutline(r Rect, color uint32) {
	if dl := ctx.activeDrawList(); dl != nil {
		dl.AddRectOutline(r, color, 1)
	}
}

func (ctx *Context) addLine(a, b Vec2, color uint32, thickness float32) {
	if dl := ctx.activeDrawList(); dl != nil {
		dl.AddLine(a, b, color, thickness)
	}
}

func (ctx *Context) addTriangle(a, b, c Vec2, color uint32) {
	if dl := ctx.activeDrawList(); dl != nil {
		dl.AddTriangle(a, b, c, color)
	}
}

// ClipRect returns the clip rectangle of the active draw list.
func (ctx *Context) ClipRect() Rect {
	if dl := ctx.activeDrawList(); dl != nil {
		return dl.ClipRect()
	}
	return Everything
}

// PushClipRect narrows clipping for everything drawn until PopClipRect.
func (ctx *Context) PushClipRect(r Rect) {
	if dl := ctx.activeDrawList(); dl != nil {
		dl.PushClipRect(r)
	}
}

// PopClipRect restores the previous clip rectangle.
func (ctx *Context) PopClipRect() {
	if dl := ctx.activeDrawList(); dl != nil {
		dl.PopClipRect()
	}
}
