package tcellscreen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stui/terminal"
)

// palette maps a color nibble to the xterm palette index of its ANSI code
var palette = [16]int{
	terminal.FgBlack:   0,
	terminal.FgRed:     9,
	terminal.FgGreen:   10,
	terminal.FgYellow:  11,
	terminal.FgBlue:    12,
	terminal.FgMagenta: 13,
	terminal.FgCyan:    14,
	terminal.FgGray:    8,
	terminal.FgWhite:   15,
}

// ColorOf returns the tcell color of a foreground nibble, ColorDefault for 0
func ColorOf(nibble terminal.Color) tcell.Color {
	if nibble == 0 || nibble > 0x0f {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(palette[nibble])
}

// Style converts a packed color into a tcell style
func Style(c terminal.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(ColorOf(c.Fg())).
		Background(ColorOf(c.Bg() >> 4))
}

// ConvertKey maps a tcell key event onto the byte-stream key model
// Returns false for keys the model has no code for
func ConvertKey(ev *tcell.EventKey) (terminal.KeyEvent, bool) {
	mod := convertMod(ev.Modifiers())

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if r < 0x20 || r >= 0x7f {
			return terminal.KeyEvent{}, false
		}
		if mod == terminal.ModNone {
			return terminal.Keymap[r], true
		}
		key := terminal.Key(r)
		if mod == terminal.ModCtrl && key >= 'a' && key <= 'z' {
			key -= 'a' - 'A'
		}
		return terminal.KeyEvent{Key: key, Mod: mod}, true
	case k == tcell.KeyUp:
		return terminal.KeyEvent{Key: terminal.KeyUp, Mod: mod}, true
	case k == tcell.KeyDown:
		return terminal.KeyEvent{Key: terminal.KeyDown, Mod: mod}, true
	case k == tcell.KeyLeft:
		return terminal.KeyEvent{Key: terminal.KeyLeft, Mod: mod}, true
	case k == tcell.KeyRight:
		return terminal.KeyEvent{Key: terminal.KeyRight, Mod: mod}, true
	case k == tcell.KeyEnter:
		return terminal.KeyEvent{Key: terminal.KeyEnter}, true
	case k == tcell.KeyTab:
		return terminal.KeyEvent{Key: terminal.KeyTab}, true
	case k == tcell.KeyBacktab:
		return terminal.KeyEvent{Key: terminal.KeyTab, Mod: terminal.ModShift}, true
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return terminal.KeyEvent{Key: terminal.KeyBackspace}, true
	case k == tcell.KeyDelete:
		return terminal.KeyEvent{Key: terminal.KeyDelete}, true
	case k == tcell.KeyEscape:
		return terminal.KeyEvent{Key: terminal.KeyEscape}, true
	case k == tcell.KeyCtrlSpace:
		return terminal.KeyEvent{Key: ' ', Mod: terminal.ModCtrl}, true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return terminal.KeyEvent{Key: terminal.Key('A' + int(k-tcell.KeyCtrlA)), Mod: terminal.ModCtrl}, true
	}
	return terminal.KeyEvent{}, false
}

// convertMod keeps a single modifier, ctrl over shift over alt
func convertMod(m tcell.ModMask) terminal.Modifier {
	switch {
	case m&tcell.ModCtrl != 0:
		return terminal.ModCtrl
	case m&tcell.ModShift != 0:
		return terminal.ModShift
	case m&(tcell.ModAlt|tcell.ModMeta) != 0:
		return terminal.ModAlt
	}
	return terminal.ModNone
}
