package gui

// ClipboardProvider abstracts system clipboard access.
//
// For GLFW:
//
//	type GLFWClipboard struct {
//	    window *glfw.Window
//	}
//
//	func (c *GLFWClipboard) GetText() string {
//	    return c.window.GetClipboardString()
//	}
//
//	func (c *GLFWClipboard) SetText(text string) {
//	    c.window.SetClipboardString(text)
//	}
type ClipboardProvider interface {
	// GetText returns empty string if the clipboard holds no text.
	GetText() string
	SetText(text string)
}

// SetClipboard installs the clipboard used by text edits. Without one,
// copy and paste are no-ops.
func (ctx *Context) SetClipboard(cp ClipboardProvider) {
	ctx.clipboard = cp
}

func (ctx *Context) clipboardGet() string {
	if ctx.clipboard != nil {
		return ctx.clipboard.GetText()
	}
	return ""
}

func (ctx *Context) clipboardSet(text string) {
	if ctx.clipboard != nil {
		ctx.clipboard.SetText(text)
	}
}
