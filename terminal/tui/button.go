package tui

import (
	"github.com/lixenwraith/stui/terminal"
)

// isActivate reports whether ev presses a button: Enter or Space
func isActivate(ev terminal.KeyEvent) bool {
	return ev.Key == terminal.KeyEnter || ev.Key == terminal.KeySpace
}

// Button is a clickable "> text <" control
type Button struct {
	Focus
	Text     string
	OnPress  func()
	Disabled bool
}

// NewButton creates an enabled button
func NewButton(text string, onPress func()) *Button {
	return &Button{Text: text, OnPress: onPress}
}

func (b *Button) Render(c *terminal.Canvas, size terminal.Coord) {
	if size.Y < 1 {
		return
	}
	text := "> " + singleLine(b.Text) + " <"
	n := RuneLen(text)
	origin := terminal.Coord{X: (size.X - n) / 2}
	DrawText(c, text, origin, n)
	if b.focused {
		color := terminal.HighlightColor
		if b.Disabled {
			color = terminal.UnfocusedColor
		}
		c.FillColor(color, origin, terminal.Coord{X: n, Y: 1})
	}
}

func (b *Button) MinSize() terminal.Coord {
	return terminal.Coord{X: RuneLen(singleLine(b.Text)) + 4, Y: 1}
}

func (b *Button) MaxSize() terminal.Coord {
	return terminal.Coord{X: terminal.Unbounded, Y: 1}
}

func (b *Button) Focusable() bool { return !b.Disabled }

func (b *Button) HandleInput(ev terminal.KeyEvent) bool {
	if !b.focused || b.Disabled || b.OnPress == nil || !isActivate(ev) {
		return false
	}
	b.OnPress()
	return true
}

// optionList is the shared highlight and rendering for checkbox-style option lists
type optionList struct {
	Focus
	Disabled    bool
	highlighted int
}

// Highlighted returns the option under the cursor
func (o *optionList) Highlighted() int { return o.highlighted }

// move applies the navigation keys and reports whether ev was one of them
// Up/Down step, Left/Right jump to the first/last option
func (o *optionList) move(ev terminal.KeyEvent, count int) bool {
	switch ev.Key {
	case terminal.KeyUp:
		if o.highlighted > 0 {
			o.highlighted--
		}
	case terminal.KeyDown:
		if o.highlighted+1 < count {
			o.highlighted++
		}
	case terminal.KeyLeft:
		o.highlighted = 0
	case terminal.KeyRight:
		o.highlighted = max(0, count-1)
	default:
		return false
	}
	return true
}

// renderOptions draws "[*] label" rows, marking rows for which checked is true
func (o *optionList) renderOptions(c *terminal.Canvas, size terminal.Coord, labels []string, checked func(int) bool) {
	for line, label := range labels {
		if line >= size.Y {
			break
		}
		DrawText(c, "[ ] "+singleLine(label), terminal.Coord{Y: line}, size.X)
		if checked(line) {
			c.SetRune(1, line, '*')
		}
		if line == o.highlighted && !o.Disabled {
			c.FillColor(o.focusColor(), terminal.Coord{Y: line}, terminal.Coord{X: size.X, Y: 1})
		}
	}
}

// ToggleOption is one entry of a ToggleButton
type ToggleOption struct {
	Label string
	On    bool
}

// ToggleButton is a list of independently checkable options
type ToggleButton struct {
	optionList
	Options []ToggleOption
}

// NewToggleButton creates a toggle list over the given options
func NewToggleButton(options ...ToggleOption) *ToggleButton {
	return &ToggleButton{Options: options}
}

func (t *ToggleButton) Render(c *terminal.Canvas, size terminal.Coord) {
	if size.Y < 1 {
		return
	}
	labels := make([]string, len(t.Options))
	for i, o := range t.Options {
		labels[i] = o.Label
	}
	t.renderOptions(c, size, labels, func(i int) bool { return t.Options[i].On })
}

func (t *ToggleButton) MinSize() terminal.Coord {
	return terminal.Coord{X: 5, Y: len(t.Options)}
}

func (t *ToggleButton) MaxSize() terminal.Coord {
	return terminal.Coord{X: terminal.Unbounded, Y: terminal.Unbounded}
}

func (t *ToggleButton) Focusable() bool { return true }

func (t *ToggleButton) HandleInput(ev terminal.KeyEvent) bool {
	if !t.focused || t.Disabled {
		return false
	}
	if t.move(ev, len(t.Options)) {
		return true
	}
	if isActivate(ev) && t.highlighted < len(t.Options) {
		t.Options[t.highlighted].On = !t.Options[t.highlighted].On
		return true
	}
	return false
}

// RadioButton is a list of options of which exactly one is selected
type RadioButton struct {
	optionList
	Options  []string
	Selected int
	OnSelect func(index int)
}

// NewRadioButton creates a radio group with the given selection
func NewRadioButton(options []string, selected int) *RadioButton {
	return &RadioButton{Options: options, Selected: selected}
}

func (r *RadioButton) Render(c *terminal.Canvas, size terminal.Coord) {
	if size.Y < 1 {
		return
	}
	r.renderOptions(c, size, r.Options, func(i int) bool { return i == r.Selected })
}

func (r *RadioButton) MinSize() terminal.Coord {
	return terminal.Coord{X: 5, Y: len(r.Options)}
}

func (r *RadioButton) MaxSize() terminal.Coord {
	return terminal.Coord{X: terminal.Unbounded, Y: terminal.Unbounded}
}

func (r *RadioButton) Focusable() bool { return true }

func (r *RadioButton) HandleInput(ev terminal.KeyEvent) bool {
	if !r.focused || r.Disabled {
		return false
	}
	if r.move(ev, len(r.Options)) {
		return true
	}
	if isActivate(ev) && r.highlighted < len(r.Options) {
		r.Selected = r.highlighted
		if r.OnSelect != nil {
			r.OnSelect(r.Selected)
		}
		return true
	}
	return false
}
