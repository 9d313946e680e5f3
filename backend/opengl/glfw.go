package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/probe/gui"
)

// Input feeds the events of a GLFW window into a gui.InputState.
type Input struct {
	window *glfw.Window
	state  *gui.InputState
}

// NewInput installs input callbacks on window.
func NewInput(window *glfw.Window) *Input {
	in := &Input{window: window, state: gui.NewInputState()}
	window.SetKeyCallback(in.key)
	window.SetCharCallback(in.char)
	window.SetMouseButtonCallback(in.mouseButton)
	window.SetScrollCallback(in.scroll)
	window.SetCursorPosCallback(in.cursorPos)
	return in
}

// NextFrame returns the input of the frame about to be drawn. Events
// arrive through glfw.PollEvents or glfw.WaitEvents before it is called;
// the per-frame edges are cleared when the frame's input is taken.
func (in *Input) NextFrame(dt float32) *gui.InputState {
	s := in.state
	s.UpdateKeyRepeat(dt)
	x, y := in.window.GetCursorPos()
	s.SetMousePos(float32(x), float32(y))
	pressed := func(a, b glfw.Key) bool {
		return in.window.GetKey(a) == glfw.Press || in.window.GetKey(b) == glfw.Press
	}
	s.ModCtrl = pressed(glfw.KeyLeftControl, glfw.KeyRightControl)
	s.ModShift = pressed(glfw.KeyLeftShift, glfw.KeyRightShift)
	s.ModAlt = pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	s.ModSuper = pressed(glfw.KeyLeftSuper, glfw.KeyRightSuper)
	return s
}

// EndFrame clears the events the last frame consumed.
func (in *Input) EndFrame() { in.state.Reset() }

func (in *Input) key(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k, ok := keys[key]
	if !ok {
		return
	}
	// gui repeats held keys itself; glfw.Repeat is dropped.
	switch action {
	case glfw.Press:
		in.state.SetKey(k, true)
	case glfw.Release:
		in.state.SetKey(k, false)
	}
}

func (in *Input) char(_ *glfw.Window, ch rune) { in.state.AddInputChar(ch) }

func (in *Input) mouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := mouseButtons[button]
	if !ok {
		return
	}
	in.state.SetMouseButton(b, action == glfw.Press)
}

func (in *Input) scroll(_ *glfw.Window, x, y float64) {
	in.state.SetMouseWheel(float32(x), float32(y))
}

func (in *Input) cursorPos(_ *glfw.Window, x, y float64) {
	in.state.SetMousePos(float32(x), float32(y))
}

var keys = map[glfw.Key]gui.Key{
	glfw.KeyTab:       gui.KeyTab,
	glfw.KeyLeft:      gui.KeyLeft,
	glfw.KeyRight:     gui.KeyRight,
	glfw.KeyUp:        gui.KeyUp,
	glfw.KeyDown:      gui.KeyDown,
	glfw.KeyHome:      gui.KeyHome,
	glfw.KeyEnd:       gui.KeyEnd,
	glfw.KeyDelete:    gui.KeyDelete,
	glfw.KeyBackspace: gui.KeyBackspace,
	glfw.KeyEnter:     gui.KeyEnter,
	glfw.KeyKPEnter:   gui.KeyEnter,
	glfw.KeyEscape:    gui.KeyEscape,
	glfw.KeyA:         gui.KeyA,
	glfw.KeyC:         gui.KeyC,
	glfw.KeyV:         gui.KeyV,
	glfw.KeyX:         gui.KeyX,
	glfw.KeyY:         gui.KeyY,
	glfw.KeyZ:         gui.KeyZ,
}

var mouseButtons = map[glfw.MouseButton]gui.MouseButton{
	glfw.MouseButtonLeft:   gui.MouseButtonLeft,
	glfw.MouseButtonRight:  gui.MouseButtonRight,
	glfw.MouseButtonMiddle: gui.MouseButtonMiddle,
}

// Clipboard is the system clipboard of a GLFW window.
type Clipboard struct {
	Window *glfw.Window
}

var _ gui.ClipboardProvider = Clipboard{}

// GetText implements gui.ClipboardProvider.
func (c Clipboard) GetText() string { return c.Window.GetClipboardString() }

// SetText implements gui.ClipboardProvider.
func (c Clipboard) SetText(text string) { c.Window.SetClipboardString(text) }
