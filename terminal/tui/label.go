package tui

import (
	"strings"

	"github.com/lixenwraith/stui/terminal"
)

// Align selects horizontal text placement
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Label displays text; a single line by default, word-wrapped when Wrap is set
type Label struct {
	Text  string
	Align Align
	Wrap  bool
}

// NewLabel creates a single-line label
func NewLabel(text string, align Align) *Label {
	return &Label{Text: text, Align: align}
}

// singleLine sanitizes s and removes line breaks
func singleLine(s string) string {
	return strings.ReplaceAll(Sanitize(s), "\n", "")
}

// alignOffset returns the column a run of length n starts at within width
func alignOffset(align Align, width, n int) int {
	switch align {
	case AlignCenter:
		return (width - n) / 2
	case AlignRight:
		return width - n
	default:
		return 0
	}
}

func (l *Label) Render(c *terminal.Canvas, size terminal.Coord) {
	if size.Y < 1 {
		return
	}
	if !l.Wrap {
		text := singleLine(l.Text)
		n := RuneLen(text)
		DrawText(c, text, terminal.Coord{X: alignOffset(l.Align, size.X, n)}, n)
		return
	}

	for y, line := range WrapText(l.Text, size.X) {
		if y >= size.Y {
			break
		}
		n := RuneLen(line)
		DrawText(c, line, terminal.Coord{X: alignOffset(l.Align, size.X, n), Y: y}, n)
	}
}

func (l *Label) MinSize() terminal.Coord {
	if l.Wrap {
		return terminal.Coord{X: 1, Y: 1}
	}
	return terminal.Coord{X: RuneLen(singleLine(l.Text)), Y: 1}
}

func (l *Label) MaxSize() terminal.Coord {
	if l.Wrap {
		return terminal.Coord{X: terminal.Unbounded, Y: terminal.Unbounded}
	}
	return terminal.Coord{X: terminal.Unbounded, Y: 1}
}

// Banner centers a block of text, one centered line per '\n'-separated line, without wrapping
type Banner struct {
	Text string
}

// NewBanner creates a banner
func NewBanner(text string) *Banner {
	return &Banner{Text: text}
}

func (b *Banner) Render(c *terminal.Canvas, size terminal.Coord) {
	lines := strings.Split(Sanitize(b.Text), "\n")
	y := (size.Y - len(lines)) / 2
	for _, line := range lines {
		x := (size.X - RuneLen(line)) / 2
		DrawText(c, line, terminal.Coord{X: x, Y: y}, size.X)
		y++
	}
}

func (b *Banner) MinSize() terminal.Coord { return terminal.Coord{X: 4, Y: 1} }

func (b *Banner) MaxSize() terminal.Coord {
	return terminal.Coord{X: terminal.Unbounded, Y: terminal.Unbounded}
}
