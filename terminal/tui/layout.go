// @focus: #tui { layout }
package tui

import (
	"github.com/lixenwraith/stui/terminal"
)

// Axis selects the packing direction of a Box
type Axis uint8

const (
	Horizontal Axis = iota // Row: children side by side
	Vertical               // Column: children stacked
)

// Distribute negotiates sizes along one axis
// Every entry starts at its minimum; the leftover budget is then handed out one unit
// at a time in index order to entries below their maximum (negative = unbounded),
// until the budget is spent or a full sweep grants nothing
// Returns false when the minimums alone exceed available
func Distribute(mins, maxs []int, available int) ([]int, bool) {
	sizes := make([]int, len(mins))
	budget := available
	for i, m := range mins {
		sizes[i] = m
		budget -= m
	}
	if budget < 0 {
		return nil, false
	}

	for budget > 0 {
		granted := false
		for i := range sizes {
			if budget == 0 {
				break
			}
			if maxs[i] >= 0 && sizes[i] >= maxs[i] {
				continue
			}
			sizes[i]++
			budget--
			granted = true
		}
		if !granted {
			break
		}
	}
	return sizes, true
}

// Box is the linear container behind Row and Column
type Box struct {
	Axis  Axis
	Items []Widget
}

// NewRow lays children out left to right
func NewRow(children ...Widget) *Box {
	return &Box{Axis: Horizontal, Items: children}
}

// NewColumn lays children out top to bottom
func NewColumn(children ...Widget) *Box {
	return &Box{Axis: Vertical, Items: children}
}

// Children returns the contained widgets
func (b *Box) Children() []Widget {
	return b.Items
}

// split returns the packing and cross extents of c
func (b *Box) split(c terminal.Coord) (pack, cross int) {
	if b.Axis == Horizontal {
		return c.X, c.Y
	}
	return c.Y, c.X
}

// join is the inverse of split
func (b *Box) join(pack, cross int) terminal.Coord {
	if b.Axis == Horizontal {
		return terminal.Coord{X: pack, Y: cross}
	}
	return terminal.Coord{X: cross, Y: pack}
}

// MinSize sums minimums along the packing axis and takes the largest across it
func (b *Box) MinSize() terminal.Coord {
	pack, cross := 0, 0
	for _, w := range b.Items {
		p, c := b.split(w.MinSize())
		pack += p
		cross = max(cross, c)
	}
	return b.join(pack, cross)
}

// MaxSize sums maximums along the packing axis and takes the largest across it
// Any unbounded child makes the matching axis unbounded
func (b *Box) MaxSize() terminal.Coord {
	pack, cross := 0, 0
	for _, w := range b.Items {
		p, c := b.split(w.MaxSize())
		if p < 0 || pack < 0 {
			pack = terminal.Unbounded
		} else {
			pack += p
		}
		if c < 0 || cross < 0 {
			cross = terminal.Unbounded
		} else {
			cross = max(cross, c)
		}
	}
	return b.join(pack, cross)
}

// Render negotiates child extents and draws each child into its own cleared sub-view
func (b *Box) Render(c *terminal.Canvas, size terminal.Coord) {
	if len(b.Items) == 0 {
		return
	}

	mins := make([]int, len(b.Items))
	maxs := make([]int, len(b.Items))
	for i, w := range b.Items {
		mins[i], _ = b.split(w.MinSize())
		maxs[i], _ = b.split(w.MaxSize())
	}

	availPack, availCross := b.split(size)
	sizes, ok := Distribute(mins, maxs, availPack)
	if !ok {
		ShowTooSmall(c, size)
		return
	}

	offset := 0
	for i, w := range b.Items {
		_, maxCross := b.split(w.MaxSize())
		cross := ConstrainedSize(availCross, maxCross)
		renderChild(c, w, b.join(offset, 0), b.join(sizes[i], cross))
		offset += sizes[i]
	}
}
