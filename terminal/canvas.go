// @focus: #terminal { canvas }
package terminal

// Canvas is a rectangular window onto a row-major cell buffer
// A canvas from NewCanvas owns its buffer; Sub returns views sharing it
// All coordinates are relative to the canvas origin
type Canvas struct {
	cells  []Cell
	stride int // Width of the backing buffer
	x, y   int // Origin within the backing buffer
	w, h   int
}

// NewCanvas allocates a canvas filled with DefaultCell
// Returns nil if either dimension is not positive
func NewCanvas(size Coord) *Canvas {
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	cells := make([]Cell, size.X*size.Y)
	for i := range cells {
		cells[i] = DefaultCell
	}
	return &Canvas{cells: cells, stride: size.X, w: size.X, h: size.Y}
}

// Size returns the canvas dimensions
func (c *Canvas) Size() Coord {
	return Coord{X: c.w, Y: c.h}
}

// Width returns canvas width
func (c *Canvas) Width() int {
	return c.w
}

// Height returns canvas height
func (c *Canvas) Height() int {
	return c.h
}

// fits reports whether the rectangle at offset lies entirely inside the canvas
func (c *Canvas) fits(offset, size Coord) bool {
	return offset.X >= 0 && offset.Y >= 0 &&
		size.X > 0 && size.Y > 0 &&
		offset.X+size.X <= c.w && offset.Y+size.Y <= c.h
}

func (c *Canvas) index(x, y int) int {
	return (c.y+y)*c.stride + c.x + x
}

// Sub returns a view of the rectangle at offset, sharing this canvas' cells
// Returns nil unless the rectangle fits entirely, it is never clipped
func (c *Canvas) Sub(offset, size Coord) *Canvas {
	if c == nil || !c.fits(offset, size) {
		return nil
	}
	return &Canvas{
		cells:  c.cells,
		stride: c.stride,
		x:      c.x + offset.X,
		y:      c.y + offset.Y,
		w:      size.X,
		h:      size.Y,
	}
}

// At returns the cell at (x, y), or DefaultCell when out of range
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return DefaultCell
	}
	return c.cells[c.index(x, y)]
}

// Set writes a cell with bounds checking
func (c *Canvas) Set(x, y int, cell Cell) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[c.index(x, y)] = cell
}

// SetRune replaces the glyph at (x, y), keeping its color
func (c *Canvas) SetRune(x, y int, r rune) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[c.index(x, y)].Rune = r
}

// Row returns the cells of row y, aliasing the backing buffer
func (c *Canvas) Row(y int) []Cell {
	if y < 0 || y >= c.h {
		return nil
	}
	start := c.index(0, y)
	return c.cells[start : start+c.w]
}

// Fill overwrites every cell
func (c *Canvas) Fill(cell Cell) {
	for y := 0; y < c.h; y++ {
		row := c.Row(y)
		for x := range row {
			row[x] = cell
		}
	}
}

// Clear resets every cell to DefaultCell
func (c *Canvas) Clear() {
	c.Fill(DefaultCell)
}

// FillColor overwrites only the color of a rectangle, clipped to the canvas
func (c *Canvas) FillColor(color Color, origin, size Coord) {
	x0, y0 := max(origin.X, 0), max(origin.Y, 0)
	x1, y1 := min(origin.X+size.X, c.w), min(origin.Y+size.Y, c.h)
	for y := y0; y < y1; y++ {
		row := c.Row(y)
		for x := x0; x < x1; x++ {
			row[x].Color = color
		}
	}
}

// CopyBox copies an area-sized rectangle from src at srcOffset into dst at dstOffset
// Both rectangles must fit entirely inside their canvases, otherwise nothing is copied
// Overlapping copies within one buffer behave as if staged through a temporary
func CopyBox(src *Canvas, srcOffset, area Coord, dst *Canvas, dstOffset Coord) {
	if src == nil || dst == nil {
		return
	}
	if !src.fits(srcOffset, area) || !dst.fits(dstOffset, area) {
		return
	}

	first, last, step := 0, area.Y, 1
	shared := &src.cells[0] == &dst.cells[0]
	if shared && dst.y+dstOffset.Y > src.y+srcOffset.Y {
		// Moving down inside one buffer: walk bottom-up so unread rows stay intact
		first, last, step = area.Y-1, -1, -1
	}

	for row := first; row != last; row += step {
		s := src.index(srcOffset.X, srcOffset.Y+row)
		d := dst.index(dstOffset.X, dstOffset.Y+row)
		copy(dst.cells[d:d+area.X], src.cells[s:s+area.X])
	}
}
