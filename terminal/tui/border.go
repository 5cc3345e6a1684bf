package tui

import (
	"github.com/lixenwraith/stui/terminal"
)

// BorderedBox frames a child with heavy box-drawing lines and an optional title
type BorderedBox struct {
	Child Widget
	Title string
}

// NewBorderedBox wraps child in a titled frame
func NewBorderedBox(child Widget, title string) *BorderedBox {
	return &BorderedBox{Child: child, Title: title}
}

func (b *BorderedBox) Render(c *terminal.Canvas, size terminal.Coord) {
	if size.X < 3 || size.Y < 3 {
		return
	}
	DrawBox(c, terminal.Coord{}, size)
	if b.Title != "" {
		DrawText(c, singleLine(b.Title), terminal.Coord{X: 3}, size.X-6)
	}
	renderChild(c, b.Child, terminal.Coord{X: 1, Y: 1}, terminal.Coord{X: size.X - 2, Y: size.Y - 2})
}

func (b *BorderedBox) MinSize() terminal.Coord {
	if b.Child == nil {
		return terminal.Coord{X: 2, Y: 2}
	}
	m := b.Child.MinSize()
	return terminal.Coord{X: m.X + 2, Y: m.Y + 2}
}

func (b *BorderedBox) MaxSize() terminal.Coord {
	if b.Child == nil {
		return terminal.Coord{X: 2, Y: 2}
	}
	m := b.Child.MaxSize()
	if m.X >= 0 {
		m.X += 2
	}
	if m.Y >= 0 {
		m.Y += 2
	}
	return m
}

func (b *BorderedBox) Children() []Widget {
	if b.Child == nil {
		return nil
	}
	return []Widget{b.Child}
}

// SizeLimiter caps the maximum size a child reports
// The cap should be at least the child's minimum
type SizeLimiter struct {
	Child Widget
	Max   terminal.Coord
}

// NewSizeLimiter caps child at maxSize; either axis may be terminal.Unbounded
func NewSizeLimiter(child Widget, maxSize terminal.Coord) *SizeLimiter {
	return &SizeLimiter{Child: child, Max: maxSize}
}

func (s *SizeLimiter) Render(c *terminal.Canvas, size terminal.Coord) {
	if s.Child != nil {
		s.Child.Render(c, size)
	}
}

func (s *SizeLimiter) MinSize() terminal.Coord {
	if s.Child == nil {
		return terminal.Coord{}
	}
	return s.Child.MinSize()
}

func (s *SizeLimiter) MaxSize() terminal.Coord { return s.Max }

func (s *SizeLimiter) Children() []Widget {
	if s.Child == nil {
		return nil
	}
	return []Widget{s.Child}
}
