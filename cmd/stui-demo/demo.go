package main

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/stui/audio"
	"github.com/lixenwraith/stui/config"
	"github.com/lixenwraith/stui/terminal"
	"github.com/lixenwraith/stui/terminal/tui"
)

// animationStep is how often the progress bar and spinners move on their own
const animationStep = 250 * time.Millisecond

const notes = `stui draws a tree of panels into one terminal-sized canvas and writes it
in a single frame. Rows and columns hand every child its minimum size, then
share what is left one cell at a time.

Keys arrive without blocking. Shortcuts fire first, printable text goes to the
focused widget.`

// demo is the widget catalog page and its loop state
type demo struct {
	page     *tui.Page
	cues     *audio.CuePlayer
	status   *tui.Label
	progress *tui.ProgressBar
	lastTick time.Time
	quit     bool
	dirty    bool
}

func newDemo(r *tui.Renderer, keys config.Bindings, cues *audio.CuePlayer) *demo {
	d := &demo{
		page:     tui.NewPage(r),
		cues:     cues,
		progress: &tui.ProgressBar{},
		lastTick: time.Now(),
	}
	d.status = tui.NewLabel(fmt.Sprintf("tab: focus  %s: sound  %s: quit", keys.Sound, keys.Quit), tui.AlignLeft)

	tabs := tui.NewTabDisplay("Controls", "Browse", "Notes")
	tabs.OnChange = func(i int) { d.setStatus("tab %d: %s", i, tabs.Tabs[i]) }

	button := tui.NewButton("Press", func() { d.setStatus("button pressed") })
	toggles := tui.NewToggleButton(
		tui.ToggleOption{Label: "wrap text"},
		tui.ToggleOption{Label: "show hidden", On: true},
	)
	radio := tui.NewRadioButton([]string{"small", "medium", "large"}, 1)
	radio.OnSelect = func(i int) { d.setStatus("size: %s", radio.Options[i]) }
	input := tui.NewTextInputBox("", func(text string) { d.setStatus("submitted %q", text) })
	slider := &tui.Slider{Value: 0.5}
	slider.OnChange = func(v float64) { d.setStatus("slider %.2f", v) }

	spinners := tui.NewRow(
		&tui.Spinner{Style: tui.SpinnerLine}, tui.NewHSpacer(1),
		&tui.Spinner{Style: tui.SpinnerQuadrant}, tui.NewHSpacer(1),
		&tui.Spinner{Style: tui.SpinnerBranch}, tui.NewHSpacer(1),
		&tui.Spinner{Style: tui.SpinnerBlock}, tui.NewHSpacer(-1),
	)

	controls := tui.NewColumn(
		tui.NewLabel("left", tui.AlignLeft),
		tui.NewLabel("center", tui.AlignCenter),
		tui.NewLabel("right", tui.AlignRight),
		tui.NewHDivider(),
		button,
		toggles,
		radio,
		input,
		slider,
		d.progress,
		spinners,
		tui.NewVSpacer(-1),
	)

	list := tui.NewListView("alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel")
	list.OnActivate = func(i int) { d.setStatus("activated %s", list.Items[i]) }
	tree := tui.NewTreeView(&tui.TreeNode{
		Name:     "stui",
		Expanded: true,
		Children: []*tui.TreeNode{
			{Name: "terminal", Children: []*tui.TreeNode{{Name: "canvas"}, {Name: "encoder"}, {Name: "decode"}}},
			{Name: "tui", Children: []*tui.TreeNode{{Name: "layout"}, {Name: "page"}, {Name: "widgets"}}},
			{Name: "audio"},
			{Name: "config"},
		},
	})
	browse := tui.NewColumn(list, tui.NewHDivider(), tree)

	area := tui.NewTextArea(notes)

	body := tui.NewRow(
		tui.NewBorderedBox(controls, "Controls"),
		tui.NewVDivider(),
		tui.NewBorderedBox(browse, "Browse"),
		tui.NewVDivider(),
		tui.NewSizeLimiter(tui.NewBorderedBox(area, "Notes"), terminal.Coord{X: 44, Y: terminal.Unbounded}),
	)

	d.page.Register(d.status, "status")
	d.page.SetRoot(tui.NewColumn(
		tui.NewBanner("stui widget catalog"),
		tabs,
		tui.NewHDivider(),
		body,
		tui.NewHDivider(),
		d.status,
	))
	d.page.FocusOrder = []tui.Widget{tabs, button, toggles, radio, input, slider, list, tree, area}

	d.page.Shortcuts = []tui.Shortcut{
		{Key: keys.Quit, Callback: func(*tui.Context) { d.quit = true }},
		{Key: keys.Sound, Callback: func(*tui.Context) {
			if d.cues.ToggleMute() {
				d.setStatus("sound off")
				return
			}
			d.cues.PlayClick()
			d.setStatus("sound on")
		}},
	}
	return d
}

func (d *demo) setStatus(format string, args ...any) {
	d.status.Text = fmt.Sprintf(format, args...)
	d.dirty = true
}

// step handles one poll and advances the animations
func (d *demo) step(now time.Time) error {
	before := d.page.FocusIndex()
	had, err := d.page.CheckInput()
	if err != nil {
		return err
	}
	if had {
		d.dirty = true
	}
	if d.page.FocusIndex() != before {
		d.cues.PlayFocus()
	}

	if now.Sub(d.lastTick) >= animationStep {
		d.lastTick = now
		d.progress.Fraction += 0.02
		if d.progress.Fraction > 1 {
			d.progress.Fraction = 0
		}
		d.dirty = true
	}
	return nil
}

// run paces the page and redraws only when something changed
func (d *demo) run(ctx context.Context, scr screen, fps *atomic.Int64) error {
	d.dirty = true
	for !d.quit {
		if ctx.Err() != nil {
			return nil
		}
		d.page.Framerate(int(fps.Load()))

		if err := d.step(time.Now()); err != nil {
			return err
		}
		if scr.Resized() {
			d.dirty = true
		}
		if d.dirty {
			if err := d.page.Render(); err != nil {
				return err
			}
			d.dirty = false
		}
	}
	return nil
}
