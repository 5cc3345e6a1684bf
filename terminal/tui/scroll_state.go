package tui

// ScrollState tracks the selection and first visible row of a scrolling list
// When rows are hidden past an edge, that edge row shows a continuation marker,
// so the selection is kept off such rows
type ScrollState struct {
	Offset    int // First visible item index
	Total     int // Total item count
	Visible   int // Visible item count (viewport height)
	Selection int // Currently selected item
}

// --- State updates ---

// SetTotal updates total count and reclamps
func (s *ScrollState) SetTotal(total int) {
	s.Total = total
	s.Selection = ClampCursor(s.Selection, total)
	s.Clamp()
}

// SetVisible updates visible count and reclamps
func (s *ScrollState) SetVisible(visible int) {
	s.Visible = visible
	s.Clamp()
}

// Clamp ensures offset is within valid range
func (s *ScrollState) Clamp() {
	s.Offset = ClampScroll(s.Offset, s.Visible, s.Total)
}

// --- Position queries ---

// HiddenAbove reports whether items precede the first visible row
func (s *ScrollState) HiddenAbove() bool {
	return s.Offset > 0
}

// HiddenBelow reports whether items follow the last visible row
func (s *ScrollState) HiddenBelow() bool {
	return s.Offset+s.Visible < s.Total
}

// --- Selection management ---

// Select sets selection and ensures it's visible
func (s *ScrollState) Select(idx int) {
	s.Selection = ClampCursor(idx, s.Total)
	s.EnsureVisible()
}

// SelectNext moves selection down, reporting whether it moved
func (s *ScrollState) SelectNext() bool {
	if s.Selection >= s.Total-1 {
		return false
	}
	s.Selection++
	s.EnsureVisible()
	return true
}

// SelectPrev moves selection up, reporting whether it moved
func (s *ScrollState) SelectPrev() bool {
	if s.Selection <= 0 {
		return false
	}
	s.Selection--
	s.EnsureVisible()
	return true
}

// EnsureVisible scrolls the minimum amount that keeps the selection on a content row
func (s *ScrollState) EnsureVisible() {
	if s.Visible <= 0 {
		return
	}
	if s.Selection-s.Offset < 1 && s.Offset > 0 {
		s.Offset = max(0, s.Selection-1)
	}
	if s.Selection-s.Offset >= s.Visible-1 && s.HiddenBelow() {
		s.Offset = s.Selection - s.Visible + 2
	}
	s.Clamp()
}

// ClampScroll ensures scroll offset is within valid range
func ClampScroll(scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	maxScroll := total - visible
	if scroll < 0 {
		return 0
	}
	if scroll > maxScroll {
		return maxScroll
	}
	return scroll
}

// ClampCursor ensures cursor is within valid range
func ClampCursor(cursor, total int) int {
	if total <= 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= total {
		return total - 1
	}
	return cursor
}
