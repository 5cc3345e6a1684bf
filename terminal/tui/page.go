// @focus: #tui { page }
package tui

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/lixenwraith/stui/terminal"
)

// ErrNotRegistered is returned when a name has no widget in the page registry
var ErrNotRegistered = errors.New("no widget registered with that name")

// noFocus marks a page where nothing can take focus
const noFocus = -1

// Page owns a widget tree, its focus order, page-level shortcuts and a name registry
type Page struct {
	Shortcuts  []Shortcut
	FocusOrder []Widget

	renderer   *Renderer
	root       Widget
	registry   map[string]Widget
	focusIndex int
	lastFrame  time.Time
}

// NewPage creates an empty page rendering through r
func NewPage(r *Renderer) *Page {
	return &Page{
		renderer:  r,
		registry:  make(map[string]Widget),
		lastFrame: now(),
	}
}

// SetRoot registers w, makes it the root and syncs the registry with the new tree
func (p *Page) SetRoot(w Widget) {
	p.Register(w, "")
	p.root = w
	p.EnsureIntegrity()
}

// Root returns the root widget
func (p *Page) Root() Widget {
	return p.root
}

// Renderer returns the renderer the page draws through
func (p *Page) Renderer() *Renderer {
	return p.renderer
}

// Focused returns the widget holding focus, nil when none
func (p *Page) Focused() Widget {
	if p.root == nil || p.focusIndex < 0 || p.focusIndex >= len(p.FocusOrder) {
		return nil
	}
	return p.FocusOrder[p.focusIndex]
}

// FocusIndex returns the focused position in FocusOrder, -1 when none
func (p *Page) FocusIndex() int {
	if p.focusIndex >= len(p.FocusOrder) {
		return noFocus
	}
	return p.focusIndex
}

// CheckInput polls once and dispatches through the page shortcuts, with Tab advancing focus
func (p *Page) CheckInput() (bool, error) {
	shortcuts := make([]Shortcut, 0, len(p.Shortcuts)+1)
	shortcuts = append(shortcuts, p.Shortcuts...)
	shortcuts = append(shortcuts, Shortcut{
		Key:      terminal.KeyEvent{Key: terminal.KeyTab},
		Callback: func(ctx *Context) { ctx.Page.AdvanceFocus() },
	})

	return p.renderer.PollAndDispatch(p.Focused(), shortcuts, &Context{Page: p, Renderer: p.renderer})
}

// AdvanceFocus moves focus to the next focusable entry of FocusOrder, wrapping
// If no entry is focusable, nothing keeps focus
func (p *Page) AdvanceFocus() {
	n := len(p.FocusOrder)
	if n == 0 {
		return
	}

	start := p.focusIndex % n
	if start < 0 {
		start = n - 1
	}
	idx := start
	found := false
	for {
		idx = (idx + 1) % n
		if f, ok := p.FocusOrder[idx].(Focusable); ok && f.Focusable() {
			found = true
			break
		}
		if idx == start {
			break
		}
	}

	if found {
		p.focusIndex = idx
	} else {
		p.focusIndex = noFocus
	}
	p.updateFocus()
}

// updateFocus pushes the focus flag to every entry of FocusOrder
func (p *Page) updateFocus() {
	for i, w := range p.FocusOrder {
		if f, ok := w.(Focusable); ok {
			f.SetFocused(i == p.focusIndex)
		}
	}
}

// Render updates focus flags and draws the tree
func (p *Page) Render() error {
	if p.root == nil {
		return nil
	}
	p.updateFocus()
	return p.renderer.Render(p.root)
}

// Framerate paces the page's render loop to fps
func (p *Page) Framerate(fps int) FrameTiming {
	timing := TargetFramerate(fps, &p.lastFrame)
	if fps > 0 && timing.Elapsed > 0 && timing.Elapsed*float64(fps) > 1.5 {
		p.renderer.Logger().Printf("frame overran: %.1fms at %d fps", timing.Elapsed*1000, fps)
	}
	return timing
}

// Register adds w under name and returns the name used
// An empty or taken name is replaced by a generated one
func (p *Page) Register(w Widget, name string) string {
	if name == "" || p.registry[name] != nil {
		name = p.uniqueName(w)
	}
	p.registry[name] = w
	return name
}

// Get returns the widget registered under name, nil when absent
func (p *Page) Get(name string) Widget {
	return p.registry[name]
}

// Unregister removes name from the registry and returns its widget
func (p *Page) Unregister(name string) (Widget, error) {
	w, ok := p.registry[name]
	if !ok {
		return nil, fmt.Errorf("unregister %q: %w", name, ErrNotRegistered)
	}
	delete(p.registry, name)
	return w, nil
}

// IsRegistered reports whether w is in the registry under any name
func (p *Page) IsRegistered(w Widget) bool {
	if !trackable(w) {
		return false
	}
	for _, r := range p.registry {
		if trackable(r) && r == w {
			return true
		}
	}
	return false
}

// Len returns the number of registered widgets
func (p *Page) Len() int {
	return len(p.registry)
}

// trackable reports whether w can serve as a map key and be compared
// Value widgets holding slices, maps or funcs cannot
func trackable(w Widget) bool {
	return w != nil && reflect.ValueOf(w).Comparable()
}

// EnsureIntegrity walks the tree from the root, registers widgets missing from the
// registry under generated names and drops entries no longer in the tree
// Widgets that are not trackable are walked for children but never registered
// automatically; entries registered for them by name are kept as is
func (p *Page) EnsureIntegrity() {
	if p.root == nil {
		clear(p.registry)
		p.renderer.Logger().Printf("registry cleared: page has no root")
		return
	}

	discovered := make(map[Widget]bool)
	var order []Widget
	queue := []Widget{p.root}
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]
		if w == nil {
			continue
		}
		if !trackable(w) {
			p.renderer.Logger().Printf("registry skipped %T: value is not comparable, use a pointer widget", w)
		} else {
			if discovered[w] {
				continue
			}
			discovered[w] = true
			order = append(order, w)
		}
		if parent, ok := w.(Parent); ok {
			queue = append(queue, parent.Children()...)
		}
	}

	known := make(map[Widget]bool, len(p.registry))
	removed := 0
	for name, w := range p.registry {
		if !trackable(w) {
			continue
		}
		if !discovered[w] {
			delete(p.registry, name)
			removed++
			continue
		}
		known[w] = true
	}

	added := 0
	for _, w := range order {
		if !known[w] {
			p.Register(w, "")
			added++
		}
	}

	p.renderer.Logger().Printf("registry synced: %d added, %d removed, %d total", added, removed, len(p.registry))
}

// uniqueName generates "__<Type>_<n>" with the first free n
func (p *Page) uniqueName(w Widget) string {
	typ := fmt.Sprintf("%T", w)
	if i := strings.LastIndexByte(typ, '.'); i >= 0 {
		typ = typ[i+1:]
	}
	for i := 0; ; i++ {
		name := fmt.Sprintf("__%s_%d", typ, i)
		if _, taken := p.registry[name]; !taken {
			return name
		}
	}
}
