package tui

// TreeState manages cursor and scroll over the flattened visible rows of a tree
// The last row becomes a continuation marker while rows remain below it
type TreeState struct {
	Cursor  int
	Scroll  int
	Visible int // Viewport height
}

// --- Cursor movement ---

// MoveCursor adjusts cursor position by delta
func (t *TreeState) MoveCursor(delta, total int) {
	t.Cursor = ClampCursor(t.Cursor+delta, total)
	t.AdjustScroll(total)
}

// AdjustScroll scrolls the minimum amount that keeps the cursor off the marker row
func (t *TreeState) AdjustScroll(total int) {
	t.Cursor = ClampCursor(t.Cursor, total)
	if t.Visible <= 0 {
		return
	}
	if t.Cursor < t.Scroll {
		t.Scroll = t.Cursor
	}
	if t.Cursor >= t.Scroll+t.Visible-1 && t.Scroll+t.Visible < total {
		t.Scroll = t.Cursor - t.Visible + 2
	}
	t.Scroll = ClampScroll(t.Scroll, t.Visible, total)
}

// SetVisible updates viewport height
func (t *TreeState) SetVisible(visible int) {
	t.Visible = visible
}
