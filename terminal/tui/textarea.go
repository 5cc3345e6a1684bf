package tui

import (
	"github.com/lixenwraith/stui/terminal"
)

// TextArea shows word-wrapped read-only text with a scroll position
// The rightmost column carries a marker showing where the view sits in the text
type TextArea struct {
	Focus
	Text   string
	Scroll int

	lastHeight int
	lastLines  int
}

// NewTextArea creates a text area scrolled to the top
func NewTextArea(text string) *TextArea {
	return &TextArea{Text: text}
}

// maxScroll is the largest useful scroll for the last rendered layout
func (t *TextArea) maxScroll() int {
	return max(0, t.lastLines-t.lastHeight)
}

func (t *TextArea) Render(c *terminal.Canvas, size terminal.Coord) {
	if size.X < 2 || size.Y < 2 {
		return
	}

	lines := WrapText(t.Text, size.X-1)
	t.lastHeight = size.Y
	t.lastLines = len(lines)
	t.Scroll = max(0, min(t.Scroll, t.maxScroll()))

	for y := 0; y < size.Y && t.Scroll+y < len(lines); y++ {
		DrawText(c, lines[t.Scroll+y], terminal.Coord{Y: y}, size.X-1)
	}

	marker := 0
	if span := t.maxScroll(); span > 0 {
		marker = t.Scroll * (size.Y - 1) / span
	}
	c.Set(size.X-1, marker, terminal.Cell{Rune: '|', Color: t.focusColor()})
}

func (t *TextArea) MinSize() terminal.Coord { return terminal.Coord{X: 3, Y: 3} }

func (t *TextArea) MaxSize() terminal.Coord {
	return terminal.Coord{X: terminal.Unbounded, Y: terminal.Unbounded}
}

func (t *TextArea) Focusable() bool { return true }

func (t *TextArea) HandleInput(ev terminal.KeyEvent) bool {
	if !t.focused {
		return false
	}
	switch ev.Key {
	case terminal.KeyUp:
		if t.Scroll > 0 {
			t.Scroll--
		}
	case terminal.KeyDown:
		if t.Scroll < t.maxScroll() {
			t.Scroll++
		}
	default:
		return false
	}
	return true
}
