package tui

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lixenwraith/stui/terminal"
)

func TestProcessShortcutsConsumesPerEvent(t *testing.T) {
	var fired []string
	shortcuts := []Shortcut{
		{Key: terminal.KeyEvent{Key: 'Q', Mod: terminal.ModCtrl}, Callback: func(*Context) { fired = append(fired, "quit") }},
		{Key: terminal.KeyEvent{Key: 'q', Mod: terminal.ModCtrl}, Callback: func(*Context) { fired = append(fired, "dup") }},
		{Key: terminal.KeyEvent{Key: terminal.KeyTab}, Callback: func(*Context) { fired = append(fired, "tab") }},
	}
	events := []terminal.KeyEvent{
		{Key: 'a'},
		{Key: 'q', Mod: terminal.ModCtrl},
		{Key: terminal.KeyTab},
		{Key: 'b'},
		{Key: terminal.KeyTab},
	}

	rest := ProcessShortcuts(events, shortcuts, &Context{}, nil)

	if diff := cmp.Diff([]string{"quit", "tab", "tab"}, fired); diff != "" {
		t.Errorf("fired mismatch (-want +got):\n%s", diff)
	}
	want := []terminal.KeyEvent{{Key: 'a'}, {Key: 'b'}}
	if diff := cmp.Diff(want, rest); diff != "" {
		t.Errorf("remaining mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessShortcutsPassesContext(t *testing.T) {
	ctx := &Context{}
	var got *Context
	shortcuts := []Shortcut{{Key: key('x'), Callback: func(c *Context) { got = c }}}
	ProcessShortcuts([]terminal.KeyEvent{key('x')}, shortcuts, ctx, nil)
	if got != ctx {
		t.Errorf("Expected callback to receive the dispatch context")
	}
}

func TestProcessShortcutsMultiModifierNeverFires(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	fired := false
	bad := terminal.KeyEvent{Key: 'S', Mod: terminal.ModCtrl | terminal.ModShift}
	shortcuts := []Shortcut{{Key: bad, Callback: func(*Context) { fired = true }}}

	rest := ProcessShortcuts([]terminal.KeyEvent{bad}, shortcuts, &Context{}, logger)

	if fired {
		t.Error("Expected multi-modifier binding not to fire")
	}
	if len(rest) != 1 {
		t.Errorf("Expected event to survive, got %v", rest)
	}
	if !strings.Contains(buf.String(), "several modifiers") {
		t.Errorf("Expected misuse to be logged, got %q", buf.String())
	}
}

func TestTextEvents(t *testing.T) {
	events := []terminal.KeyEvent{
		{Key: 'a'},
		{Key: 'A', Mod: terminal.ModShift},
		{Key: 'c', Mod: terminal.ModCtrl},
		{Key: terminal.KeyEnter},
		{Key: terminal.KeyUp, Mod: terminal.ModShift},
		{Key: terminal.KeyDelete},
		{Key: 'x', Mod: terminal.ModAlt},
		{Key: terminal.KeyEscape},
		{Key: terminal.KeyBackspace},
	}

	text, rest := TextEvents(events)

	wantText := []terminal.KeyEvent{
		{Key: 'a'},
		{Key: 'A', Mod: terminal.ModShift},
		{Key: terminal.KeyEnter},
		{Key: terminal.KeyUp, Mod: terminal.ModShift},
		{Key: terminal.KeyDelete},
		{Key: terminal.KeyBackspace},
	}
	wantRest := []terminal.KeyEvent{
		{Key: 'c', Mod: terminal.ModCtrl},
		{Key: 'x', Mod: terminal.ModAlt},
		{Key: terminal.KeyEscape},
	}
	if diff := cmp.Diff(wantText, text); diff != "" {
		t.Errorf("text mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantRest, rest); diff != "" {
		t.Errorf("rest mismatch (-want +got):\n%s", diff)
	}
}
