// Package tcellscreen drives a tcell.Screen with canvases and key events
// from the terminal package, as an alternative to the native ANSI output.
// It is useful on terminals the native backend does not handle and for
// tests built on tcell's simulation screen.
package tcellscreen

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stui/terminal"
)

// Screen adapts a tcell.Screen to the renderer's output and input contracts
type Screen struct {
	screen  tcell.Screen
	resized bool
	started bool
}

// New wraps an existing screen; call Configure before use
func New(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// NewDefault wraps the screen tcell selects for the current terminal
func NewDefault() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create tcell screen: %w", err)
	}
	return New(s), nil
}

// Configure initializes the screen and hides the cursor. Calling it twice is a no-op
func (s *Screen) Configure(title string) error {
	if s.started {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init tcell screen: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()
	s.started = true
	return nil
}

// Restore finalizes the screen. Safe to call multiple times
func (s *Screen) Restore() {
	if !s.started {
		return
	}
	s.screen.Fini()
	s.started = false
}

// Size returns the screen dimensions in cells
func (s *Screen) Size() terminal.Coord {
	w, h := s.screen.Size()
	return terminal.Coord{X: w, Y: h}
}

// Resized reports whether a resize event arrived since the last call
func (s *Screen) Resized() bool {
	r := s.resized
	s.resized = false
	return r
}

// Present copies every cell into the screen and shows it
// Zero color nibbles inherit the previous cell's color, as on the native output
func (s *Screen) Present(c *terminal.Canvas) error {
	if c == nil {
		return nil
	}

	fg, bg := terminal.FgWhite, terminal.BgBlack
	for y := 0; y < c.Height(); y++ {
		for x, cell := range c.Row(y) {
			if f := cell.Color.Fg(); f != 0 {
				fg = f
			}
			if b := cell.Color.Bg(); b != 0 {
				bg = b
			}
			s.screen.SetContent(x, y, cell.Rune, nil, Style(fg|bg))
		}
	}
	s.screen.Show()
	return nil
}

// Poll drains pending tcell events without blocking
func (s *Screen) Poll() ([]terminal.KeyEvent, error) {
	var events []terminal.KeyEvent
	for s.screen.HasPendingEvent() {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if k, ok := ConvertKey(ev); ok {
				events = append(events, k)
			}
		case *tcell.EventResize:
			s.resized = true
			s.screen.Sync()
		case nil:
			return events, fmt.Errorf("tcell screen finalized")
		}
	}
	return events, nil
}
