// @lixen: #focus{sys[term,io,output]}
// @lixen: #interact{trigger[output,ansi]}
package terminal

import (
	"unicode/utf8"
)

// Encoder turns composited canvases into an ANSI byte stream
// Color state persists across calls so a preamble can establish it before Encode
type Encoder struct {
	buf []byte

	// Active colors, 0 means unset
	fg Color
	bg Color
}

// NewEncoder creates an encoder with a pre-sized buffer
func NewEncoder() *Encoder {
	return &Encoder{
		buf: make([]byte, 0, 131072), // 128KB buffer
	}
}

// Reset discards buffered output and forgets the active colors
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
	e.fg = 0
	e.bg = 0
}

// Bytes returns the buffered stream, valid until the next Reset
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the number of buffered bytes
func (e *Encoder) Len() int {
	return len(e.buf)
}

// WriteRaw appends control bytes verbatim
func (e *Encoder) WriteRaw(p []byte) {
	e.buf = append(e.buf, p...)
}

// MoveCursor appends a cursor positioning sequence (0-indexed)
func (e *Encoder) MoveCursor(x, y int) {
	e.buf = appendCursorPos(e.buf, x, y)
}

// SetColor makes c the active color, emitting only the halves that change
func (e *Encoder) SetColor(c Color) {
	if fg := c.Fg(); fg != 0 && fg != e.fg {
		if code, ok := sgrForeground(c); ok {
			e.buf = appendSGR(e.buf, code)
		}
		e.fg = fg
	}
	if bg := c.Bg(); bg != 0 && bg != e.bg {
		if code, ok := sgrBackground(c); ok {
			e.buf = appendSGR(e.buf, code)
		}
		e.bg = bg
	}
}

// Encode appends every cell of c in row-major order, c being drawn at the screen origin
// Rows after the first start with an explicit cursor move so output does not depend on auto-wrap
func (e *Encoder) Encode(c *Canvas) {
	if c == nil {
		return
	}
	for y := 0; y < c.Height(); y++ {
		if y > 0 {
			e.MoveCursor(0, y)
		}
		for _, cell := range c.Row(y) {
			e.SetColor(cell.Color)
			e.writeRune(cell.Rune)
		}
	}
}

// writeRune appends one glyph as 1-4 UTF-8 bytes
// Control runes would move the cursor, so they print as blanks
func (e *Encoder) writeRune(r rune) {
	switch {
	case r < 0x20 || r == 0x7f:
		e.buf = append(e.buf, ' ')
	case r < utf8.RuneSelf:
		e.buf = append(e.buf, byte(r))
	default:
		e.buf = utf8.AppendRune(e.buf, r)
	}
}
