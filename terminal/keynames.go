package terminal

import (
	"fmt"
	"strings"
)

// keyToName maps non-printing Key codes to canonical config string names
var keyToName = map[Key]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyEscape:    "escape",
	KeySpace:     "space",
}

var nameToKey map[string]Key

var modNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "ctrl"},
	{ModShift, "shift"},
	{ModAlt, "alt"},
}

func init() {
	nameToKey = make(map[string]Key, len(keyToName))
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	// Aliases
	nameToKey["esc"] = KeyEscape
	nameToKey["return"] = KeyEnter
	nameToKey["del"] = KeyDelete
}

// KeyName returns the canonical name for a key, or the character itself
func KeyName(k Key) string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	if k > 0x20 && k < 0x7f {
		return string(rune(k))
	}
	return fmt.Sprintf("0x%02x", uint16(k))
}

// KeyByName resolves a canonical name to a Key constant
// Returns KeyNone and false if name is unknown
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

// String renders the event in the "ctrl+q" form accepted by ParseKeyEvent
func (e KeyEvent) String() string {
	var sb strings.Builder
	for _, m := range modNames {
		if e.Mod&m.mod != 0 {
			sb.WriteString(m.name)
			sb.WriteByte('+')
		}
	}
	sb.WriteString(KeyName(e.Key))
	return sb.String()
}

// ParseKeyEvent parses bindings such as "ctrl+s", "shift+up" or "q"
// Letters combined with ctrl or alt are stored upper case, as the byte-stream keymap reports them
func ParseKeyEvent(s string) (KeyEvent, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return KeyEvent{}, fmt.Errorf("empty key binding")
	}

	// Search before the final byte so "ctrl++" binds the plus key
	var mods []string
	last := s
	if i := strings.LastIndex(s[:len(s)-1], "+"); i >= 0 {
		last = s[i+1:]
		if i > 0 {
			mods = strings.Split(s[:i], "+")
		}
	}

	var ev KeyEvent
	for _, p := range mods {
		found := false
		for _, m := range modNames {
			if strings.EqualFold(p, m.name) {
				ev.Mod |= m.mod
				found = true
				break
			}
		}
		if !found {
			return KeyEvent{}, fmt.Errorf("unknown modifier %q in %q", p, s)
		}
	}

	if k, ok := KeyByName(strings.ToLower(last)); ok {
		ev.Key = k
		return ev, nil
	}
	if len(last) != 1 || last[0] < 0x20 || last[0] >= 0x7f {
		return KeyEvent{}, fmt.Errorf("unknown key %q in %q", last, s)
	}

	ev.Key = Key(last[0])
	if ev.Mod&(ModCtrl|ModAlt) != 0 {
		ev.Key = upper(ev.Key)
	}
	return ev, nil
}
