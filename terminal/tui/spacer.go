package tui

import (
	"github.com/lixenwraith/stui/terminal"
)

// Spacer is blank space of a fixed length along its axis and one cell across it
// A negative Length has no minimum and stretches to fill
type Spacer struct {
	Axis   Axis
	Length int
}

// NewHSpacer fills width columns in a Row
func NewHSpacer(width int) *Spacer { return &Spacer{Axis: Horizontal, Length: width} }

// NewVSpacer fills height rows in a Column
func NewVSpacer(height int) *Spacer { return &Spacer{Axis: Vertical, Length: height} }

func (s *Spacer) Render(*terminal.Canvas, terminal.Coord) {}

func (s *Spacer) MinSize() terminal.Coord {
	if s.Axis == Horizontal {
		return terminal.Coord{X: max(s.Length, 0), Y: 1}
	}
	return terminal.Coord{X: 1, Y: max(s.Length, 0)}
}

func (s *Spacer) MaxSize() terminal.Coord {
	if s.Axis == Horizontal {
		return terminal.Coord{X: s.Length, Y: 1}
	}
	return terminal.Coord{X: 1, Y: s.Length}
}

// Divider is a light line separating neighbours: vertical between Row children,
// horizontal between Column children
type Divider struct {
	Axis Axis
}

// NewVDivider draws a vertical line
func NewVDivider() *Divider { return &Divider{Axis: Vertical} }

// NewHDivider draws a horizontal line
func NewHDivider() *Divider { return &Divider{Axis: Horizontal} }

func (d *Divider) Render(c *terminal.Canvas, size terminal.Coord) {
	if d.Axis == Vertical {
		DrawVLine(c, 0)
	} else {
		DrawHLine(c, 0)
	}
}

func (d *Divider) MinSize() terminal.Coord { return terminal.Coord{X: 1, Y: 1} }

func (d *Divider) MaxSize() terminal.Coord {
	if d.Axis == Vertical {
		return terminal.Coord{X: 1, Y: terminal.Unbounded}
	}
	return terminal.Coord{X: terminal.Unbounded, Y: 1}
}
