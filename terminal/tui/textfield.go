package tui

import (
	"slices"

	"github.com/lixenwraith/stui/terminal"
)

// TextInputBox is a single-line text entry field drawn as "> text"
// Left/Right move the cursor, Up/Down jump to the start/end, Backspace and Delete
// remove around the cursor and Enter submits
type TextInputBox struct {
	Focus
	OnSubmit func(text string)
	Disabled bool

	text   []rune
	cursor int
	scroll int
}

// NewTextInputBox creates an input box holding text, cursor at the start
func NewTextInputBox(text string, onSubmit func(string)) *TextInputBox {
	return &TextInputBox{text: []rune(singleLine(text)), OnSubmit: onSubmit}
}

// Text returns the current contents
func (t *TextInputBox) Text() string { return string(t.text) }

// SetText replaces the contents and clamps the cursor
func (t *TextInputBox) SetText(s string) {
	t.text = []rune(singleLine(s))
	t.cursor = min(t.cursor, len(t.text))
}

// Cursor returns the cursor position in runes
func (t *TextInputBox) Cursor() int { return t.cursor }

func (t *TextInputBox) Render(c *terminal.Canvas, size terminal.Coord) {
	if size.Y < 1 {
		return
	}
	t.cursor = min(t.cursor, len(t.text))
	t.scroll = max(0, t.cursor-size.X+3)

	DrawText(c, "> "+string(t.text), terminal.Coord{X: -t.scroll}, len(t.text)+2)
	if !t.Disabled {
		c.FillColor(t.focusColor(), terminal.Coord{X: t.cursor - t.scroll + 2}, terminal.Coord{X: 1, Y: 1})
	}
}

func (t *TextInputBox) MinSize() terminal.Coord { return terminal.Coord{X: 6, Y: 1} }

func (t *TextInputBox) MaxSize() terminal.Coord {
	return terminal.Coord{X: terminal.Unbounded, Y: 1}
}

func (t *TextInputBox) Focusable() bool { return !t.Disabled }

func (t *TextInputBox) HandleInput(ev terminal.KeyEvent) bool {
	if !t.focused || t.Disabled {
		return false
	}

	switch ev.Key {
	case terminal.KeyEnter:
		if t.OnSubmit != nil {
			t.OnSubmit(string(t.text))
		}
	case terminal.KeyLeft:
		if t.cursor > 0 {
			t.cursor--
		}
	case terminal.KeyRight:
		if t.cursor < len(t.text) {
			t.cursor++
		}
	case terminal.KeyUp:
		t.cursor = 0
	case terminal.KeyDown:
		t.cursor = len(t.text)
	case terminal.KeyBackspace:
		if t.cursor > 0 {
			t.text = slices.Delete(t.text, t.cursor-1, t.cursor)
			t.cursor--
		}
	case terminal.KeyDelete:
		if t.cursor < len(t.text) {
			t.text = slices.Delete(t.text, t.cursor, t.cursor+1)
		}
	case terminal.KeyTab:
		return false
	default:
		if ev.Key < 0x20 || ev.Key > 0x7e {
			return false
		}
		t.text = slices.Insert(t.text, t.cursor, rune(ev.Key))
		t.cursor++
	}
	return true
}
