package main

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/lixenwraith/stui/audio"
	"github.com/lixenwraith/stui/config"
	"github.com/lixenwraith/stui/terminal"
	"github.com/lixenwraith/stui/terminal/tui"
)

// fakeScreen replays queued polls and keeps the last frame
type fakeScreen struct {
	size    terminal.Coord
	polls   [][]terminal.KeyEvent
	frames  int
	last    *terminal.Canvas
	resized bool
}

func (f *fakeScreen) Configure(string) error { return nil }
func (f *fakeScreen) Restore()               {}
func (f *fakeScreen) Size() terminal.Coord   { return f.size }

func (f *fakeScreen) Resized() bool {
	r := f.resized
	f.resized = false
	return r
}

func (f *fakeScreen) Present(c *terminal.Canvas) error {
	f.frames++
	f.last = c
	return nil
}

func (f *fakeScreen) Poll() ([]terminal.KeyEvent, error) {
	if len(f.polls) == 0 {
		return nil, nil
	}
	ev := f.polls[0]
	f.polls = f.polls[1:]
	return ev, nil
}

var (
	ctrlQ = terminal.KeyEvent{Key: 'Q', Mod: terminal.ModCtrl}
	ctrlS = terminal.KeyEvent{Key: 'S', Mod: terminal.ModCtrl}
	tab   = terminal.KeyEvent{Key: terminal.KeyTab}
)

func newTestDemo(scr *fakeScreen) *demo {
	keys := config.Bindings{Quit: ctrlQ, Sound: ctrlS}
	return newDemo(tui.NewRenderer(scr, scr, nil), keys, audio.NewCuePlayer())
}

func runUntilQuit(t *testing.T, d *demo, scr *fakeScreen) {
	t.Helper()
	var fps atomic.Int64
	fps.Store(1000)
	if err := d.run(context.Background(), scr, &fps); err != nil {
		t.Fatalf("run failed: %v", err)
	}
}

func screenText(c *terminal.Canvas) string {
	var sb strings.Builder
	for y := 0; y < c.Height(); y++ {
		for _, cell := range c.Row(y) {
			sb.WriteRune(cell.Rune)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestDemoQuitRendersOnce(t *testing.T) {
	scr := &fakeScreen{size: terminal.Coord{X: 120, Y: 40}, polls: [][]terminal.KeyEvent{{ctrlQ}}}
	d := newTestDemo(scr)
	runUntilQuit(t, d, scr)

	if scr.frames < 1 {
		t.Fatal("Expected at least one frame")
	}
	text := screenText(scr.last)
	for _, want := range []string{"stui widget catalog", "[1 - Controls]", "Controls", "Browse", "Notes", "> Press <"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected frame to contain %q", want)
		}
	}
}

func TestDemoTabMovesFocus(t *testing.T) {
	scr := &fakeScreen{size: terminal.Coord{X: 120, Y: 40}, polls: [][]terminal.KeyEvent{{tab}, {tab}, {ctrlQ}}}
	d := newTestDemo(scr)
	runUntilQuit(t, d, scr)

	if got := d.page.FocusIndex(); got != 2 {
		t.Errorf("Expected focus index 2, got %d", got)
	}
}

func TestDemoSoundToggleUpdatesStatus(t *testing.T) {
	scr := &fakeScreen{size: terminal.Coord{X: 120, Y: 40}, polls: [][]terminal.KeyEvent{{ctrlS}, {ctrlQ}}}
	d := newTestDemo(scr)
	runUntilQuit(t, d, scr)

	if d.status.Text != "sound on" && d.status.Text != "sound off" {
		t.Errorf("Expected sound status, got %q", d.status.Text)
	}
	if !strings.Contains(screenText(scr.last), d.status.Text) {
		t.Errorf("Expected status %q on screen", d.status.Text)
	}
}

func TestDemoTypedTextReachesFocusedInput(t *testing.T) {
	// Focus order: tabs, button, toggles, radio, input
	polls := [][]terminal.KeyEvent{{tab, tab, tab, tab}, {{Key: 'h'}, {Key: 'i'}}, {{Key: terminal.KeyEnter}}, {ctrlQ}}
	scr := &fakeScreen{size: terminal.Coord{X: 120, Y: 40}, polls: polls}
	d := newTestDemo(scr)
	runUntilQuit(t, d, scr)

	if d.status.Text != `submitted "hi"` {
		t.Errorf("Expected submitted status, got %q", d.status.Text)
	}
}

func TestDemoRegistry(t *testing.T) {
	scr := &fakeScreen{size: terminal.Coord{X: 80, Y: 24}}
	d := newTestDemo(scr)

	if got := d.page.Get("status"); got != tui.Widget(d.status) {
		t.Errorf("Expected status label registered by name")
	}
	if !d.page.IsRegistered(d.progress) {
		t.Error("Expected progress bar discovered in the tree")
	}
}

func TestDemoRedrawsOnlyWhenDirty(t *testing.T) {
	scr := &fakeScreen{size: terminal.Coord{X: 80, Y: 24}}
	d := newTestDemo(scr)

	var fps atomic.Int64
	fps.Store(1000)
	ctx, cancel := context.WithCancel(context.Background())

	d.dirty = false
	d.lastTick = d.lastTick.Add(animationStep * 1000)
	if err := d.step(d.lastTick); err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if d.dirty {
		t.Error("Expected idle step to leave the page clean")
	}

	cancel()
	if err := d.run(ctx, scr, &fps); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if scr.frames != 0 {
		t.Errorf("Expected no frame after cancellation, got %d", scr.frames)
	}
}
