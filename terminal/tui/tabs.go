package tui

import (
	"strconv"

	"github.com/lixenwraith/stui/terminal"
)

// TabDisplay is a strip of "[n - name]" tabs with the current one highlighted
// Left/Right switch tabs while focused
type TabDisplay struct {
	Focus
	Tabs     []string
	Current  int
	OnChange func(index int)
}

// NewTabDisplay creates a tab strip with the first tab current
func NewTabDisplay(tabs ...string) *TabDisplay {
	return &TabDisplay{Tabs: tabs}
}

// tabLabel renders the caption of tab i
func (t *TabDisplay) tabLabel(i int) string {
	return "[" + strconv.Itoa(i+1) + " - " + singleLine(t.Tabs[i]) + "]"
}

func (t *TabDisplay) Render(c *terminal.Canvas, size terminal.Coord) {
	if size.Y < 1 {
		return
	}
	offset := 0
	for i := range t.Tabs {
		label := t.tabLabel(i)
		n := RuneLen(label)
		DrawText(c, label, terminal.Coord{X: offset}, size.X)
		if i == t.Current {
			c.FillColor(t.focusColor(), terminal.Coord{X: offset}, terminal.Coord{X: n, Y: 1})
		}
		offset += n + 1
	}
}

func (t *TabDisplay) MinSize() terminal.Coord { return terminal.Coord{X: 10, Y: 1} }

func (t *TabDisplay) MaxSize() terminal.Coord {
	return terminal.Coord{X: terminal.Unbounded, Y: 1}
}

func (t *TabDisplay) Focusable() bool { return len(t.Tabs) > 0 }

func (t *TabDisplay) HandleInput(ev terminal.KeyEvent) bool {
	if !t.focused || len(t.Tabs) == 0 {
		return false
	}
	next := t.Current
	switch ev.Key {
	case terminal.KeyLeft:
		next--
	case terminal.KeyRight:
		next++
	default:
		return false
	}
	next = ClampCursor(next, len(t.Tabs))
	if next != t.Current {
		t.Current = next
		if t.OnChange != nil {
			t.OnChange(next)
		}
	}
	return true
}
