package tui

import (
	"github.com/lixenwraith/stui/terminal"
)

// Placeholder drawn by containers that cannot fit their children
const (
	tooSmallLong  = " [ area too small ] "
	tooSmallShort = "[...]"
)

// DrawText writes one line of text starting at origin, changing glyphs only
// Columns left of the canvas are skipped; drawing stops at the canvas edge,
// after limit runes, or at a newline
func DrawText(c *terminal.Canvas, text string, origin terminal.Coord, limit int) {
	if c == nil || origin.Y < 0 || origin.Y >= c.Height() {
		return
	}
	i := 0
	for _, r := range Sanitize(text) {
		if r == '\n' || i >= limit {
			return
		}
		x := origin.X + i
		if x >= c.Width() {
			return
		}
		if x >= 0 {
			c.SetRune(x, origin.Y, r)
		}
		i++
	}
}

// DrawTextWrapped word-wraps text into the box at origin and returns the
// number of lines the full text needs, which may exceed the box height
func DrawTextWrapped(c *terminal.Canvas, text string, origin, box terminal.Coord) int {
	lines := WrapText(text, box.X)
	for i, line := range lines {
		if i >= box.Y {
			break
		}
		DrawText(c, line, terminal.Coord{X: origin.X, Y: origin.Y + i}, box.X)
	}
	return len(lines)
}

// DrawBox outlines a rectangle with heavy box-drawing glyphs, clipped to the canvas
func DrawBox(c *terminal.Canvas, origin, size terminal.Coord) {
	if c == nil || size.X <= 0 || size.Y <= 0 {
		return
	}
	left, right := origin.X, origin.X+size.X-1
	top, bottom := origin.Y, origin.Y+size.Y-1

	for x := left; x <= right; x++ {
		switch x {
		case left:
			c.SetRune(x, top, terminal.GlyphBoxTopLeft)
			c.SetRune(x, bottom, terminal.GlyphBoxBottomLeft)
		case right:
			c.SetRune(x, top, terminal.GlyphBoxTopRight)
			c.SetRune(x, bottom, terminal.GlyphBoxBottomRight)
		default:
			c.SetRune(x, top, terminal.GlyphBoxHorizontal)
			c.SetRune(x, bottom, terminal.GlyphBoxHorizontal)
		}
	}
	for y := top + 1; y < bottom; y++ {
		c.SetRune(left, y, terminal.GlyphBoxVertical)
		c.SetRune(right, y, terminal.GlyphBoxVertical)
	}
}

// DrawHLine draws a horizontal light line across row y
func DrawHLine(c *terminal.Canvas, y int) {
	for x := 0; x < c.Width(); x++ {
		c.SetRune(x, y, terminal.GlyphLightHorizontal)
	}
}

// DrawVLine draws a vertical light line down column x
func DrawVLine(c *terminal.Canvas, x int) {
	for y := 0; y < c.Height(); y++ {
		c.SetRune(x, y, terminal.GlyphLightVertical)
	}
}

// ShowTooSmall centers the "area too small" placeholder in size
func ShowTooSmall(c *terminal.Canvas, size terminal.Coord) {
	if size.Y <= 0 {
		return
	}
	msg := tooSmallLong
	if size.X < len(msg) {
		msg = tooSmallShort
	}
	DrawText(c, msg, terminal.Coord{X: (size.X - len(msg)) / 2, Y: size.Y / 2}, size.X)
}
