package tui

import (
	"log"

	"github.com/lixenwraith/stui/terminal"
)

// Context is handed to shortcut callbacks
// Page is nil when dispatch runs outside a page
type Context struct {
	Page     *Page
	Renderer *Renderer
}

// Shortcut binds a key event to a callback
// A binding should name at most one modifier; multi-modifier bindings never fire
type Shortcut struct {
	Key      terminal.KeyEvent
	Callback func(ctx *Context)
}

// ProcessShortcuts fires the first matching binding for each event and removes that event
// Unmatched events are returned in their original order
func ProcessShortcuts(events []terminal.KeyEvent, shortcuts []Shortcut, ctx *Context, logger *log.Logger) []terminal.KeyEvent {
	for _, s := range shortcuts {
		if s.Key.MultiModifier() && logger != nil {
			logger.Printf("shortcut %s binds several modifiers and will never fire", s.Key)
		}
	}

	rest := make([]terminal.KeyEvent, 0, len(events))
	for _, ev := range events {
		consumed := false
		for _, s := range shortcuts {
			if s.Key.MultiModifier() || !ev.Matches(s.Key) {
				continue
			}
			if s.Callback != nil {
				s.Callback(ctx)
			}
			consumed = true
			break
		}
		if !consumed {
			rest = append(rest, ev)
		}
	}
	return rest
}

// isTextKey reports whether k is deliverable to a focused widget as typed input
func isTextKey(k terminal.Key) bool {
	switch {
	case k >= 32 && k <= 127:
		return true
	case k == terminal.KeyEnter, k == terminal.KeyTab, k == terminal.KeyBackspace:
		return true
	default:
		return k.IsArrow()
	}
}

// TextEvents splits events into typed text (unmodified or shift-only printable keys,
// newline, tab, backspace, delete and arrows) and everything else
func TextEvents(events []terminal.KeyEvent) (text, rest []terminal.KeyEvent) {
	for _, ev := range events {
		if (ev.Mod == terminal.ModNone || ev.Mod == terminal.ModShift) && isTextKey(ev.Key) {
			text = append(text, ev)
		} else {
			rest = append(rest, ev)
		}
	}
	return text, rest
}
