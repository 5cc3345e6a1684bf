package tui

import (
	"github.com/lixenwraith/stui/terminal"
)

// Widget is a panel that can be laid out and drawn
// Render must not write outside size; the canvas passed in is exactly size and pre-cleared
type Widget interface {
	Render(c *terminal.Canvas, size terminal.Coord)
	// MinSize is never negative
	MinSize() terminal.Coord
	// MaxSize may return terminal.Unbounded on either axis
	MaxSize() terminal.Coord
}

// InputHandler is implemented by widgets that consume key events
// HandleInput reports whether the event was consumed
type InputHandler interface {
	HandleInput(ev terminal.KeyEvent) bool
}

// Focusable is implemented by widgets that can take keyboard focus
type Focusable interface {
	Focusable() bool
	SetFocused(focused bool)
}

// Parent is implemented by containers so the tree can be walked
type Parent interface {
	Children() []Widget
}

// Focus is embedded by widgets to track the focus flag set by Page
type Focus struct {
	focused bool
}

// SetFocused records the focus state
func (f *Focus) SetFocused(focused bool) { f.focused = focused }

// Focused reports whether the widget currently has focus
func (f *Focus) Focused() bool { return f.focused }

// focusColor returns the highlight color when focused and the unfocused color otherwise
func (f *Focus) focusColor() terminal.Color {
	if f.focused {
		return terminal.HighlightColor
	}
	return terminal.UnfocusedColor
}

// ConstrainedSize returns the extent a widget gets along one axis: all of available
// when max is unbounded, otherwise the smaller of the two
func ConstrainedSize(available, maxSize int) int {
	if maxSize < 0 {
		return available
	}
	return min(available, maxSize)
}

// renderChild gives w a cleared sub-view of c at offset and renders into it
// Children whose rectangle does not fit are skipped
func renderChild(c *terminal.Canvas, w Widget, offset, size terminal.Coord) {
	if w == nil {
		return
	}
	view := c.Sub(offset, size)
	if view == nil {
		return
	}
	view.Clear()
	w.Render(view, size)
}
