package gui

import "math"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Everything is a rect large enough to never clip anything on screen. It is
// kept small enough that edges computed from it stay exact in float32.
var Everything = Rect{X: -1e5, Y: -1e5, W: 2e5, H: 2e5}

// RectFromMinMax builds a rect from its top-left and bottom-right corners.
// Inverted corners produce an empty rect.
func RectFromMinMax(minPos, maxPos Vec2) Rect {
	return Rect{
		X: minPos.X,
		Y: minPos.Y,
		W: maxf(0, maxPos.X-minPos.X),
		H: maxf(0, maxPos.Y-minPos.Y),
	}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{r.X + r.W, r.Y + r.H} }

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{r.W, r.H} }

// Center returns the middle point.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H/2} }

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Intersect returns the overlapping part of two rects (empty when disjoint).
func (r Rect) Intersect(other Rect) Rect {
	a, b := r.Max(), other.Max()
	return RectFromMinMax(
		Vec2{maxf(r.X, other.X), maxf(r.Y, other.Y)},
		Vec2{minf(a.X, b.X), minf(a.Y, b.Y)},
	)
}

// Union returns the smallest rect containing both rects.
func (r Rect) Union(other Rect) Rect {
	a, b := r.Max(), other.Max()
	return RectFromMinMax(
		Vec2{minf(r.X, other.X), minf(r.Y, other.Y)},
		Vec2{maxf(a.X, b.X), maxf(a.Y, b.Y)},
	)
}

// EverythingBelow returns an unbounded rect covering y and everything under it.
func EverythingBelow(y float32) Rect {
	return RectFromMinMax(Vec2{Everything.X, y}, Everything.Max())
}

// EverythingLeftOf returns an unbounded rect covering everything left of x.
func EverythingLeftOf(x float32) Rect {
	return RectFromMinMax(Everything.Min(), Vec2{x, Everything.Max().Y})
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture and clip rect.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // OpenGL texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorYellow      uint32 = 0xFF00FFFF
	ColorCyan        uint32 = 0xFFFFFF00
	ColorGray        uint32 = 0xFF808080
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf creates a packed color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(
		uint8(clampf(r, 0, 1)*255+0.5),
		uint8(clampf(g, 0, 1)*255+0.5),
		uint8(clampf(b, 0, 1)*255+0.5),
		uint8(clampf(a, 0, 1)*255+0.5),
	)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func absf(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
