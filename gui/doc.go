/*
Package gui provides an immediate-mode GUI library inspired by Dear ImGui,
designed as idiomatic Go with a dedicated Context type.

# Overview

The UI is rebuilt every frame. Widgets return interaction results directly
and anything that must survive between frames lives in a StateStore keyed by
ID. IDs are derived from a path of salts (ID.With), never from draw order, so
a widget keeps its state when siblings appear or disappear before it.

# Quick Start

	renderer, _ := opengl.NewRenderer(1280, 720)
	in := opengl.NewInput(window)
	ui := gui.New(renderer, gui.WithStyle(gui.GTAStyle()))

	for !window.ShouldClose() {
	    glfw.PollEvents()

	    ctx := ui.Begin(in.NextFrame(deltaTime), gui.Vec2{X: 1280, Y: 720}, deltaTime)
	    ctx.Panel("menu", gui.Padding(12))(func() {
	        ctx.Text("Hello World")
	        if ctx.Button("Click Me") {
	            // ...
	        }
	    })
	    ui.End()
	    in.EndFrame()

	    window.SwapBuffers()
	    if !ui.NeedsRedraw() {
	        glfw.WaitEvents()
	    }
	}

# Regions

Region runs a closure in a vertical layout placed at an explicit rect, with
its own parent ID and clip rect, and returns the rect the closure actually
used. It does not advance the parent; call AdvanceCursorAfter with whatever
part of the returned rect should be reserved. This is the building block for
nested, clipped and animated areas:

	r := ctx.CursorRect()
	used := ctx.Region(r, id, ctx.ClipRect(), func() {
	    ctx.Text("inside")
	})
	ctx.AdvanceCursorAfter(used)

# Animation and redraw

AnimateBool eases toward a boolean target over Style.AnimationTime and
requests a redraw while it moves. Anything else that changes what the next
frame looks like without input (a popup resizing, a panel measuring itself)
calls RequestRedraw. GUI.NeedsRedraw lets event-driven loops sleep otherwise.

# Keyboard Shortcuts

TextEdit:

	Left/Right       Move cursor (Ctrl: by word, Shift: extend selection)
	Up/Down          Move between lines (multiline only)
	Home/End         Jump to line start/end
	Ctrl+A           Select all
	Ctrl+C/X/V       Copy, cut, paste (needs a ClipboardProvider)
	Ctrl+Z           Undo
	Ctrl+Y           Redo (also Ctrl+Shift+Z)
	Enter            Commit and unfocus (newline in multiline)
	Escape           Unfocus

DragValue:

	Click+Drag       Adjust value
	Click (release)  Type a value (if drag distance < 3px)
	Enter            Commit typed value
	Escape           Cancel

ComboBox and ColorEdit:

	Click            Open/close
	Escape           Close
	Mouse Wheel      Scroll long dropdowns

# Widgets

	ctx.Text / Label / TextColored / TextDisabled
	ctx.Button / SmallButton / Selectable
	ctx.Checkbox / ToggleSwitch
	ctx.TextEdit(id, *string, opts...)
	ctx.DragValue(id, *float64, opts...)
	ctx.ComboBox(id, selected, body) / ComboBoxIndex
	ctx.ColorEdit(id, *[4]float32, alpha)
	ctx.CollapseIcon(id, openness)
	ctx.Section(label, defaultOpen)(contents)
	ctx.Scrollable(id, height)(contents)
	ctx.Tooltip(rect, text)

Layout:

	ctx.VStack / HStack / Panel
	ctx.Region(rect, id, clip, contents)
	ctx.AdvanceCursorAfter(rect)
	ctx.AddSpace / Separator / Indent / Unindent

# Widget Options

	WithID(id string)              Explicit ID (use in loops)
	WithDisabled(disabled bool)    Disable interaction
	WithWidth / WithHeight         Fixed size
	WithHint(text)                 Placeholder for empty text edits
	Multiline()                    Multi-line text edit
	WithTextColor(color)           Text edit foreground
	WithStep(step)                 Snap increment for DragValue
	WithRange(min, max)            Clamp for dragged and typed values
	WithDragSpeed(speed)           Value change per pixel dragged
	WithDecimals(n)                Fixed decimals (-1 for shortest)
	WithPrefix / WithSuffix        Decorations around DragValue text
	WithMaxDropdownHeight(h)       Limit ComboBox popup height

# Themes

Styles can be loaded from YAML with LoadTheme: a base style name plus color
(hex) and size overrides.

	base: gta
	colors:
	  text: "#f0f0f0"
	sizes:
	  font_scale: 1.25

# Clipboard Integration

Any ClipboardProvider works; backend/opengl has one for GLFW windows:

	ui := gui.New(renderer, gui.WithClipboard(opengl.Clipboard{Window: window}))

# Headless use

Tests drive a Context without a renderer:

	ctx := gui.NewContext()
	ctx.Input = gui.NewInputState()
	ctx.BeginFrame(gui.Vec2{X: 800, Y: 600}, 1.0/60)
	// widgets
	ctx.EndFrame()

Set GUI_DEBUG=1 to get debug logs of clicks and state changes on stderr.
*/
package gui
