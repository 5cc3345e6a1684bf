// @focus: #tui { renderer }
package tui

import (
	"fmt"
	"io"
	"log"

	"github.com/lixenwraith/stui/terminal"
)

// Output is a frame sink: the native ANSI terminal or the tcell screen
type Output interface {
	Size() terminal.Coord
	Present(c *terminal.Canvas) error
}

// Input is a non-blocking key event source
type Input interface {
	Poll() ([]terminal.KeyEvent, error)
}

// Renderer composites widget trees into frames and dispatches polled input
type Renderer struct {
	out    Output
	in     Input
	logger *log.Logger
}

// NewRenderer creates a renderer; a nil logger discards
func NewRenderer(out Output, in Input, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Renderer{out: out, in: in, logger: logger}
}

// Logger returns the renderer's logger
func (r *Renderer) Logger() *log.Logger {
	return r.logger
}

// Render draws root into a screen-sized canvas and presents it
// The root gets the whole screen on unbounded axes and its maximum otherwise;
// the area it does not cover stays blank
func (r *Renderer) Render(root Widget) error {
	screen := r.out.Size()
	staging := terminal.NewCanvas(screen)
	if staging == nil {
		return nil
	}

	if root != nil {
		maxSize := root.MaxSize()
		size := terminal.Coord{
			X: ConstrainedSize(screen.X, maxSize.X),
			Y: ConstrainedSize(screen.Y, maxSize.Y),
		}
		if view := staging.Sub(terminal.Coord{}, size); view != nil {
			root.Render(view, size)
		}
	}

	if err := r.out.Present(staging); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

// PollAndDispatch runs one input cycle: poll, fire shortcuts, deliver typed text to focused
// hadInput reports whether any event arrived, consumed or not
func (r *Renderer) PollAndDispatch(focused Widget, shortcuts []Shortcut, ctx *Context) (bool, error) {
	events, err := r.in.Poll()
	if err != nil {
		return false, fmt.Errorf("poll input: %w", err)
	}
	if len(events) == 0 {
		return false, nil
	}

	if ctx == nil {
		ctx = &Context{}
	}
	if ctx.Renderer == nil {
		ctx.Renderer = r
	}

	rest := ProcessShortcuts(events, shortcuts, ctx, r.logger)
	text, _ := TextEvents(rest)

	if h, ok := focused.(InputHandler); ok {
		for _, ev := range text {
			h.HandleInput(ev)
		}
	}
	return true, nil
}
