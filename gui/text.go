package gui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// runeCells returns how many monospace cells a rune occupies.
// East Asian wide runes take two, combining marks still take one so the
// bitmap font always advances.
func runeCells(r rune) int {
	if w := runewidth.RuneWidth(r); w > 1 {
		return w
	}
	return 1
}

// textCells returns the width of a single line in monospace cells.
func textCells(line string) int {
	n := 0
	for _, r := range line {
		n += runeCells(r)
	}
	return n
}

// MeasureText returns the size of rendered text.
// Multi-line text is as wide as its widest line. Results are cached per frame.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}

	cell := ctx.cellSize()
	lines := strings.Split(text, "\n")
	widest := 0
	for _, line := range lines {
		widest = max(widest, textCells(line))
	}
	result := Vec2{X: float32(widest) * cell.X, Y: float32(len(lines)) * cell.Y}

	if ctx.textMeasureCache != nil {
		ctx.textMeasureCache[text] = result
	}
	return result
}

// cellSize is the scaled size of one bitmap font cell.
func (ctx *Context) cellSize() Vec2 {
	return Vec2{ctx.style.CharWidth * ctx.style.FontScale, ctx.style.CharHeight * ctx.style.FontScale}
}

// TruncateText truncates text to fit within maxWidth, adding ".." if needed.
func TruncateText(ctx *Context, text string, maxWidth float32) string {
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}
	const suffix = ".."
	target := maxWidth - ctx.MeasureText(suffix).X
	cellW := ctx.cellSize().X
	if cellW <= 0 {
		return text
	}
	return runewidth.Truncate(text, int(target/cellW), "") + suffix
}
