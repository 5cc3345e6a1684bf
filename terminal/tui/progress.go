package tui

import (
	"math"

	"github.com/lixenwraith/stui/terminal"
)

// ProgressBar fills a row in proportion to Fraction (0..1)
type ProgressBar struct {
	Fraction float64
}

func (p *ProgressBar) Render(c *terminal.Canvas, size terminal.Coord) {
	if size.Y < 1 {
		return
	}
	completed := int(math.Round(float64(size.X) * p.Fraction))
	for x := 0; x < size.X; x++ {
		r := terminal.GlyphLightShade
		if x < completed {
			r = terminal.GlyphBlock
		}
		c.SetRune(x, 0, r)
	}
}

func (p *ProgressBar) MinSize() terminal.Coord { return terminal.Coord{X: 1, Y: 1} }

func (p *ProgressBar) MaxSize() terminal.Coord {
	return terminal.Coord{X: terminal.Unbounded, Y: 1}
}

// Spinner styles
const (
	SpinnerLine = iota
	SpinnerQuadrant
	SpinnerBranch
	SpinnerBlock
)

var spinnerFrames = [4][4]rune{
	SpinnerLine:     {'|', '/', '-', '\\'},
	SpinnerQuadrant: {terminal.GlyphQuadrantLowerLeft, terminal.GlyphQuadrantTopLeft, terminal.GlyphQuadrantTopRight, terminal.GlyphQuadrantLowerRight},
	SpinnerBranch:   {terminal.GlyphLightUp, terminal.GlyphLightUpRight, terminal.GlyphLightUpRightDown, terminal.GlyphLightUpRightDownLeft},
	SpinnerBlock:    {terminal.GlyphBlock1_8, terminal.GlyphBlock3_8, terminal.GlyphBlock6_8, terminal.GlyphBlock},
}

// Spinner is a one-cell activity indicator that advances one frame per render
type Spinner struct {
	State int
	Style int
}

// Frame returns the glyph for the current state
func (s *Spinner) Frame() rune {
	style := ((s.Style % len(spinnerFrames)) + len(spinnerFrames)) % len(spinnerFrames)
	return spinnerFrames[style][(s.State%4+4)%4]
}

func (s *Spinner) Render(c *terminal.Canvas, size terminal.Coord) {
	c.SetRune(0, 0, s.Frame())
	s.State = ((s.State+1)%4 + 4) % 4
}

func (s *Spinner) MinSize() terminal.Coord { return terminal.Coord{X: 1, Y: 1} }
func (s *Spinner) MaxSize() terminal.Coord { return terminal.Coord{X: 1, Y: 1} }
