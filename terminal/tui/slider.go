package tui

import (
	"math"

	"github.com/lixenwraith/stui/terminal"
)

// Slider step per arrow press; Shift multiplies it
const (
	sliderStep      = 0.01
	sliderShiftMult = 5
)

// Slider is an adjustable value in 0..1 drawn as "[----]" with a highlighted thumb
type Slider struct {
	Focus
	Value    float64
	OnChange func(value float64)
}

func (s *Slider) Render(c *terminal.Canvas, size terminal.Coord) {
	if size.X < 3 || size.Y < 1 {
		return
	}
	c.SetRune(0, 0, '[')
	c.SetRune(size.X-1, 0, ']')
	for x := 1; x < size.X-1; x++ {
		c.SetRune(x, 0, '-')
	}
	thumb := int(math.Round(s.Value*float64(size.X-3))) + 1
	c.FillColor(s.focusColor(), terminal.Coord{X: thumb}, terminal.Coord{X: 1, Y: 1})
}

func (s *Slider) MinSize() terminal.Coord { return terminal.Coord{X: 5, Y: 1} }

func (s *Slider) MaxSize() terminal.Coord {
	return terminal.Coord{X: terminal.Unbounded, Y: 1}
}

func (s *Slider) Focusable() bool { return true }

func (s *Slider) HandleInput(ev terminal.KeyEvent) bool {
	if !s.focused {
		return false
	}
	var delta float64
	switch ev.Key {
	case terminal.KeyLeft:
		delta = -sliderStep
	case terminal.KeyRight:
		delta = sliderStep
	default:
		return false
	}
	if ev.Mod&terminal.ModShift != 0 {
		delta *= sliderShiftMult
	}
	s.Value = max(0, min(s.Value+delta, 1))
	if s.OnChange != nil {
		s.OnChange(s.Value)
	}
	return true
}
