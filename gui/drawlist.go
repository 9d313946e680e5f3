package gui

import (
	"math"
	"sync"
)

// drawListPool reuses DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([]Rect, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for a frame.
// Primitives are batched by texture and clip rect.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    []Rect
	currentClip  Rect
	textureID    uint32
	cmdOffset    uint32 // Vertex offset for current command
	idxCmdOffset uint32 // Index offset for current command
}

// Clear resets the DrawList for a new frame, keeping capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = Everything
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// ClipRect returns the clip rectangle primitives are currently clipped to.
func (dl *DrawList) ClipRect() Rect {
	return dl.currentClip
}

// PushClipRect pushes a clip rectangle. It is intersected with the current
// one so nested regions can only shrink the visible area.
func (dl *DrawList) PushClipRect(r Rect) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = dl.currentClip.Intersect(r)
	dl.splitDraw()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.splitDraw()
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

func clipArray(r Rect) [4]float32 {
	m := r.Max()
	return [4]float32{r.X, r.Y, m.X, m.Y}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     clipArray(dl.currentClip),
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	start := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return start
}

func (dl *DrawList) addQuad(p0, p1, p2, p3 Vec2, uv0, uv1 Vec2, color uint32) {
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{p0.X, p0.Y}, TexCoord: [2]float32{uv0.X, uv0.Y}, Color: color},
		Vertex{Pos: [2]float32{p1.X, p1.Y}, TexCoord: [2]float32{uv1.X, uv0.Y}, Color: color},
		Vertex{Pos: [2]float32{p2.X, p2.Y}, TexCoord: [2]float32{uv1.X, uv1.Y}, Color: color},
		Vertex{Pos: [2]float32{p3.X, p3.Y}, TexCoord: [2]float32{uv0.X, uv1.Y}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(r Rect, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	m := r.Max()
	dl.addQuad(r.Min(), Vec2{m.X, r.Y}, m, Vec2{r.X, m.Y}, Vec2{}, Vec2{}, color)
}

// AddRectPlaceholder adds a filled rect whose bounds are not known yet and
// returns its handle for SetRectAt. Transparent colors add nothing and
// return -1.
func (dl *DrawList) AddRectPlaceholder(color uint32) int {
	if color&0xFF000000 == 0 {
		return -1
	}
	i := len(dl.VtxBuffer)
	dl.AddRect(Rect{}, color)
	return i
}

// SetRectAt moves a rect added with AddRectPlaceholder to r.
func (dl *DrawList) SetRectAt(i int, r Rect) {
	if i < 0 || i+4 > len(dl.VtxBuffer) {
		return
	}
	m := r.Max()
	corners := [4]Vec2{r.Min(), {m.X, r.Y}, m, {r.X, m.Y}}
	for k, c := range corners {
		dl.VtxBuffer[i+k].Pos = [2]float32{c.X, c.Y}
	}
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(r Rect, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.AddRect(Rect{X: r.X, Y: r.Y, W: r.W, H: thickness}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + r.H - thickness, W: r.W, H: thickness}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
	dl.AddRect(Rect{X: r.X + r.W - thickness, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
}

// AddLine draws a line between two points as a quad of the given thickness.
func (dl *DrawList) AddLine(a, b Vec2, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	d := b.Sub(a)
	inv := float32(1)
	if d.X != 0 || d.Y != 0 {
		inv = 1 / float32(math.Sqrt(float64(d.X*d.X+d.Y*d.Y)))
	}
	n := Vec2{-d.Y * inv * thickness * 0.5, d.X * inv * thickness * 0.5}
	dl.addQuad(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n), Vec2{}, Vec2{}, color)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(a, b, c Vec2, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{a.X, a.Y}, Color: color},
		Vertex{Pos: [2]float32{b.X, b.Y}, Color: color},
		Vertex{Pos: [2]float32{c.X, c.Y}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2)
}

// AddText draws text with the built-in 8x8 bitmap font.
// cell is the scaled size of one character cell; wide runes take two cells.
func (dl *DrawList) AddText(pos Vec2, text string, color uint32, cell Vec2) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}

	x := pos.X
	for _, r := range text {
		w := float32(runeCells(r)) * cell.X
		char := unicodeFallback(r)
		if char < 32 || char > 127 {
			char = '?'
		}

		uv0, uv1 := glyphUV(char)
		dl.addQuad(
			Vec2{x, pos.Y}, Vec2{x + w, pos.Y},
			Vec2{x + w, pos.Y + cell.Y}, Vec2{x, pos.Y + cell.Y},
			uv0, uv1, color,
		)
		x += w
	}
}

// unicodeFallback maps common symbols to ASCII for the bitmap font.
func unicodeFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘', '×':
		return 'x'
	case '—', '–', '−':
		return '-'
	case '°':
		return 'o'
	default:
		return r
	}
}

// Finalize closes the last command and drops empty ones.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
