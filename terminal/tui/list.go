package tui

import (
	"strconv"

	"github.com/lixenwraith/stui/terminal"
)

// ListView is a scrollable list of strings with one selected row
// Each row shows its index at the right edge; rows cut off above or below are
// signalled by a vertical ellipsis on the edge row
type ListView struct {
	Focus
	Items      []string
	OnActivate func(index int)

	state ScrollState
}

// NewListView creates a list with the first item selected
func NewListView(items ...string) *ListView {
	return &ListView{Items: items}
}

// Selected returns the selected index
func (l *ListView) Selected() int { return l.state.Selection }

// Select moves the selection to idx, clamped to the list
func (l *ListView) Select(idx int) {
	l.state.SetTotal(len(l.Items))
	l.state.Select(idx)
}

// Offset returns the first visible index
func (l *ListView) Offset() int { return l.state.Offset }

func (l *ListView) Render(c *terminal.Canvas, size terminal.Coord) {
	if size.X < 2 || size.Y < 2 {
		return
	}
	n := len(l.Items)
	l.state.SetVisible(size.Y)
	l.state.SetTotal(n)
	l.state.EnsureVisible()

	for row := 0; row < size.Y; row++ {
		idx := l.state.Offset + row
		if idx >= n {
			break
		}
		if (row == 0 && idx != 0) || (row == size.Y-1 && idx != n-1) {
			c.SetRune(0, row, terminal.GlyphEllipsisVertical)
			continue
		}
		DrawText(c, singleLine(l.Items[idx]), terminal.Coord{Y: row}, size.X)
		suffix := " (" + strconv.Itoa(idx) + ")"
		DrawText(c, suffix, terminal.Coord{X: size.X - len(suffix), Y: row}, size.X)
	}

	if n > 0 {
		c.FillColor(l.focusColor(), terminal.Coord{Y: l.state.Selection - l.state.Offset}, terminal.Coord{X: size.X, Y: 1})
	}
}

func (l *ListView) MinSize() terminal.Coord { return terminal.Coord{X: 10, Y: 3} }

func (l *ListView) MaxSize() terminal.Coord {
	return terminal.Coord{X: terminal.Unbounded, Y: terminal.Unbounded}
}

func (l *ListView) Focusable() bool { return true }

func (l *ListView) HandleInput(ev terminal.KeyEvent) bool {
	if !l.focused {
		return false
	}
	l.state.SetTotal(len(l.Items))
	switch ev.Key {
	case terminal.KeyDown:
		return l.state.SelectNext()
	case terminal.KeyUp:
		return l.state.SelectPrev()
	case terminal.KeyEnter:
		if l.OnActivate == nil || len(l.Items) == 0 {
			return false
		}
		l.OnActivate(l.state.Selection)
		return true
	}
	return false
}
