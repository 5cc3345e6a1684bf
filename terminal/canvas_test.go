package terminal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// snapshot copies a canvas into a row-major slice for comparison
func snapshot(c *Canvas) [][]Cell {
	rows := make([][]Cell, c.Height())
	for y := range rows {
		rows[y] = append([]Cell(nil), c.Row(y)...)
	}
	return rows
}

// pattern fills a canvas with distinct runes and colors
func pattern(size Coord) *Canvas {
	c := NewCanvas(size)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			c.Set(x, y, Cell{Rune: rune('a' + (y*size.X+x)%26), Color: Color(x%8+1) | BgBlue})
		}
	}
	return c
}

func TestNewCanvasRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name string
		size Coord
	}{
		{"zero width", Coord{0, 5}},
		{"zero height", Coord{5, 0}},
		{"negative", Coord{-1, 3}},
		{"unbounded sentinel", Coord{Unbounded, Unbounded}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c := NewCanvas(tt.size); c != nil {
				t.Errorf("Expected nil canvas for %v, got %v", tt.size, c.Size())
			}
		})
	}
}

func TestNewCanvasDefaultFilled(t *testing.T) {
	c := NewCanvas(Coord{4, 3})
	if c.Size() != (Coord{4, 3}) {
		t.Fatalf("Expected size 4x3, got %v", c.Size())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := c.At(x, y); got != DefaultCell {
				t.Errorf("Expected default cell at (%d,%d), got %+v", x, y, got)
			}
		}
	}
}

func TestCopyBoxIdentity(t *testing.T) {
	c := pattern(Coord{6, 4})
	before := snapshot(c)

	CopyBox(c, Coord{}, c.Size(), c, Coord{})

	if diff := cmp.Diff(before, snapshot(c)); diff != "" {
		t.Errorf("Self copy changed canvas (-want +got):\n%s", diff)
	}
}

func TestCopyBoxReadBack(t *testing.T) {
	src := pattern(Coord{8, 5})
	dst := NewCanvas(Coord{10, 10})

	CopyBox(src, Coord{2, 1}, Coord{4, 3}, dst, Coord{5, 6})

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := src.At(2+x, 1+y)
			if got := dst.At(5+x, 6+y); got != want {
				t.Errorf("Cell (%d,%d): expected %+v, got %+v", x, y, want, got)
			}
		}
	}
	// Outside the rectangle is untouched
	if got := dst.At(4, 6); got != DefaultCell {
		t.Errorf("Expected untouched cell left of area, got %+v", got)
	}
	if got := dst.At(9, 9); got != DefaultCell {
		t.Errorf("Expected untouched cell at corner, got %+v", got)
	}
}

func TestCopyBoxOutOfRangeIsNoOp(t *testing.T) {
	tests := []struct {
		name      string
		srcOffset Coord
		area      Coord
		dstOffset Coord
	}{
		{"source overflow", Coord{3, 0}, Coord{4, 2}, Coord{0, 0}},
		{"destination overflow", Coord{0, 0}, Coord{4, 2}, Coord{3, 3}},
		{"negative source", Coord{-1, 0}, Coord{2, 2}, Coord{0, 0}},
		{"negative destination", Coord{0, 0}, Coord{2, 2}, Coord{0, -1}},
		{"empty area", Coord{0, 0}, Coord{0, 2}, Coord{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := pattern(Coord{5, 4})
			dst := NewCanvas(Coord{5, 4})
			before := snapshot(dst)

			CopyBox(src, tt.srcOffset, tt.area, dst, tt.dstOffset)

			if diff := cmp.Diff(before, snapshot(dst)); diff != "" {
				t.Errorf("Expected no-op (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCopyBoxOverlappingDown(t *testing.T) {
	c := pattern(Coord{3, 4})
	want := []Cell{c.At(0, 0), c.At(0, 1), c.At(0, 2)}

	// Shift the top three rows down by one inside the same buffer
	CopyBox(c, Coord{0, 0}, Coord{3, 3}, c, Coord{0, 1})

	for i, w := range want {
		if got := c.At(0, i+1); got != w {
			t.Errorf("Row %d: expected %+v, got %+v", i+1, w, got)
		}
	}
}

func TestSubView(t *testing.T) {
	root := NewCanvas(Coord{10, 6})

	if sub := root.Sub(Coord{8, 0}, Coord{3, 1}); sub != nil {
		t.Error("Expected nil for a view extending past the right edge")
	}

	sub := root.Sub(Coord{2, 3}, Coord{4, 2})
	if sub == nil {
		t.Fatal("Expected a view for an in-range rectangle")
	}
	sub.Set(0, 0, Cell{Rune: 'x', Color: FgRed | BgBlack})
	sub.Set(4, 0, Cell{Rune: 'y'}) // Outside the view, dropped

	if got := root.At(2, 3).Rune; got != 'x' {
		t.Errorf("Expected view write at (2,3), got %q", got)
	}
	if got := root.At(6, 3).Rune; got != ' ' {
		t.Errorf("Expected out-of-view write dropped, got %q", got)
	}

	nested := sub.Sub(Coord{1, 1}, Coord{2, 1})
	nested.Fill(Cell{Rune: '#', Color: DefaultColor})
	if got := root.At(3, 4).Rune; got != '#' {
		t.Errorf("Expected nested view write at (3,4), got %q", got)
	}
	if got := root.At(5, 4).Rune; got != ' ' {
		t.Errorf("Expected nested fill bounded at (5,4), got %q", got)
	}
}

func TestFillColorClipsAndKeepsGlyphs(t *testing.T) {
	c := pattern(Coord{4, 4})
	runes := make([]rune, 0, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			runes = append(runes, c.At(x, y).Rune)
		}
	}

	c.FillColor(HighlightColor, Coord{2, -1}, Coord{5, 2})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			cell := c.At(x, y)
			if cell.Rune != runes[y*4+x] {
				t.Errorf("Glyph changed at (%d,%d)", x, y)
			}
			inside := x >= 2 && y == 0
			if inside && cell.Color != HighlightColor {
				t.Errorf("Expected highlight at (%d,%d), got %#x", x, y, cell.Color)
			}
			if !inside && cell.Color == HighlightColor {
				t.Errorf("Unexpected highlight at (%d,%d)", x, y)
			}
		}
	}
}
