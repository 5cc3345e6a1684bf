package tui

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lixenwraith/stui/terminal"
)

func TestDistribute(t *testing.T) {
	tests := []struct {
		name      string
		mins      []int
		maxs      []int
		available int
		want      []int
		ok        bool
	}{
		{"exact minimums", []int{2, 3}, []int{-1, -1}, 5, []int{2, 3}, true},
		{"round robin", []int{0, 0, 0}, []int{-1, -1, -1}, 7, []int{3, 2, 2}, true},
		{"capped child skipped", []int{4, 4}, []int{-1, 4}, 10, []int{6, 4}, true},
		{"all capped leaves budget", []int{1, 1}, []int{2, 3}, 10, []int{2, 3}, true},
		{"under minimum", []int{5, 5}, []int{-1, -1}, 9, nil, false},
		{"no children", nil, nil, 4, []int{}, true},
		{"zero budget", []int{0, 0}, []int{-1, -1}, 0, []int{0, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Distribute(tt.mins, tt.maxs, tt.available)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("sizes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDistributeBoundsAndSum(t *testing.T) {
	mins := []int{1, 0, 3, 2}
	maxs := []int{4, -1, 3, 5}
	for available := 6; available < 30; available++ {
		sizes, ok := Distribute(mins, maxs, available)
		if !ok {
			t.Fatalf("Expected ok for available=%d", available)
		}
		sum := 0
		for i, s := range sizes {
			if s < mins[i] || (maxs[i] >= 0 && s > maxs[i]) {
				t.Errorf("available=%d: size %d of child %d outside [%d,%d]", available, s, i, mins[i], maxs[i])
			}
			sum += s
		}
		if sum != available {
			t.Errorf("available=%d: Expected sizes to sum to available with an unbounded child, got %d", available, sum)
		}
	}
}

func TestRowEndToEndSplit(t *testing.T) {
	a := &block{r: 'a', min: terminal.Coord{X: 4, Y: 1}, max: terminal.Coord{X: terminal.Unbounded, Y: 1}}
	b := &block{r: 'b', min: terminal.Coord{X: 4, Y: 1}, max: terminal.Coord{X: 4, Y: 1}}
	row := NewRow(a, b)

	c := render(row, terminal.Coord{X: 10, Y: 1})

	if a.got != (terminal.Coord{X: 6, Y: 1}) {
		t.Errorf("Expected first child 6x1, got %v", a.got)
	}
	if b.got != (terminal.Coord{X: 4, Y: 1}) {
		t.Errorf("Expected second child 4x1, got %v", b.got)
	}
	if got := rowText(c, 0); got != "aaaaaabbbb" {
		t.Errorf("Expected %q, got %q", "aaaaaabbbb", got)
	}
}

func TestColumnCrossAxis(t *testing.T) {
	narrow := &block{r: 'n', min: terminal.Coord{X: 1, Y: 1}, max: terminal.Coord{X: 3, Y: 1}}
	wide := &block{r: 'w', min: terminal.Coord{X: 1, Y: 1}, max: terminal.Coord{X: terminal.Unbounded, Y: terminal.Unbounded}}
	col := NewColumn(narrow, wide)

	c := render(col, terminal.Coord{X: 5, Y: 3})

	want := "nnn  \nwwwww\nwwwww"
	if got := screenText(c); got != want {
		t.Errorf("Expected\n%s\ngot\n%s", want, got)
	}
}

func TestBoxTooSmallPlaceholder(t *testing.T) {
	a := &block{r: 'a', min: terminal.Coord{X: 15, Y: 1}, max: terminal.Coord{X: 15, Y: 1}}
	b := &block{r: 'b', min: terminal.Coord{X: 15, Y: 1}, max: terminal.Coord{X: 15, Y: 1}}

	tests := []struct {
		name  string
		size  terminal.Coord
		msg   string
		row   int
		start int
	}{
		{"long message", terminal.Coord{X: 24, Y: 3}, tooSmallLong, 1, 2},
		{"short message", terminal.Coord{X: 9, Y: 1}, tooSmallShort, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a.renders, b.renders = 0, 0
			c := render(NewRow(a, b), tt.size)

			if a.renders != 0 || b.renders != 0 {
				t.Errorf("Expected no child renders, got %d and %d", a.renders, b.renders)
			}
			line := rowText(c, tt.row)
			if got := strings.Index(line, tt.msg); got != tt.start {
				t.Errorf("Expected placeholder at column %d of row %d, got %d in %q", tt.start, tt.row, got, line)
			}
		})
	}
}

func TestBoxAggregateSizes(t *testing.T) {
	a := &block{min: terminal.Coord{X: 2, Y: 1}, max: terminal.Coord{X: 5, Y: 2}}
	b := &block{min: terminal.Coord{X: 3, Y: 4}, max: terminal.Coord{X: 6, Y: terminal.Unbounded}}

	row := NewRow(a, b)
	if got := row.MinSize(); got != (terminal.Coord{X: 5, Y: 4}) {
		t.Errorf("Row min: expected {5 4}, got %v", got)
	}
	if got := row.MaxSize(); got != (terminal.Coord{X: 11, Y: terminal.Unbounded}) {
		t.Errorf("Row max: expected {11 -1}, got %v", got)
	}

	col := NewColumn(a, b)
	if got := col.MinSize(); got != (terminal.Coord{X: 3, Y: 5}) {
		t.Errorf("Column min: expected {3 5}, got %v", got)
	}
	if got := col.MaxSize(); got != (terminal.Coord{X: 6, Y: terminal.Unbounded}) {
		t.Errorf("Column max: expected {6 -1}, got %v", got)
	}
}

func TestBoxClearsChildViews(t *testing.T) {
	inner := NewLabel("x", AlignLeft)
	row := NewRow(inner)

	c := terminal.NewCanvas(terminal.Coord{X: 3, Y: 1})
	c.Fill(terminal.Cell{Rune: '#', Color: terminal.FgRed | terminal.BgBlue})
	row.Render(c, c.Size())

	want := []terminal.Cell{
		{Rune: 'x', Color: terminal.DefaultColor},
		terminal.DefaultCell,
		terminal.DefaultCell,
	}
	if diff := cmp.Diff(want, c.Row(0)); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}
