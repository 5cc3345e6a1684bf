package tui

import (
	"strings"

	"github.com/lixenwraith/stui/terminal"
)

// block is a test widget that fills its canvas with one rune and records its size
type block struct {
	r        rune
	min, max terminal.Coord
	got      terminal.Coord
	renders  int
}

func (b *block) Render(c *terminal.Canvas, size terminal.Coord) {
	b.got = size
	b.renders++
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			c.SetRune(x, y, b.r)
		}
	}
}

func (b *block) MinSize() terminal.Coord { return b.min }
func (b *block) MaxSize() terminal.Coord { return b.max }

// rowText returns the runes of row y as a string
func rowText(c *terminal.Canvas, y int) string {
	var sb strings.Builder
	for _, cell := range c.Row(y) {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

// screenText returns every row joined by newlines
func screenText(c *terminal.Canvas) string {
	rows := make([]string, c.Height())
	for y := range rows {
		rows[y] = rowText(c, y)
	}
	return strings.Join(rows, "\n")
}

// render draws w into a fresh canvas of size
func render(w Widget, size terminal.Coord) *terminal.Canvas {
	c := terminal.NewCanvas(size)
	w.Render(c, size)
	return c
}

// fakeIO is an Output and Input pair backed by memory
type fakeIO struct {
	size     terminal.Coord
	frames   []*terminal.Canvas
	polls    [][]terminal.KeyEvent
	pollErr  error
	writeErr error
}

func (f *fakeIO) Size() terminal.Coord { return f.size }

func (f *fakeIO) Present(c *terminal.Canvas) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.frames = append(f.frames, c)
	return nil
}

func (f *fakeIO) Poll() ([]terminal.KeyEvent, error) {
	if f.pollErr != nil {
		return nil, f.pollErr
	}
	if len(f.polls) == 0 {
		return nil, nil
	}
	batch := f.polls[0]
	f.polls = f.polls[1:]
	return batch, nil
}

// key builds an unmodified key event
func key(k terminal.Key) terminal.KeyEvent {
	return terminal.KeyEvent{Key: k}
}
