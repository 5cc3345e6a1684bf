package tui

import (
	"strconv"

	"github.com/lixenwraith/stui/terminal"
)

// TreeNode is one entry of a TreeView; children are shown only while Expanded
type TreeNode struct {
	Name     string
	ID       uint32
	Expanded bool
	Children []*TreeNode
}

// treeRow is a visible node with its depth and parent row (-1 for the root)
type treeRow struct {
	node   *TreeNode
	depth  int
	parent int
}

// flatten lists the visible nodes in display order
func flatten(root *TreeNode) []treeRow {
	if root == nil {
		return nil
	}
	var rows []treeRow
	var walk func(n *TreeNode, depth, parent int)
	walk = func(n *TreeNode, depth, parent int) {
		self := len(rows)
		rows = append(rows, treeRow{node: n, depth: depth, parent: parent})
		if !n.Expanded {
			return
		}
		for _, child := range n.Children {
			walk(child, depth+1, self)
		}
	}
	walk(root, 0, -1)
	return rows
}

// TreeView shows a hierarchy of expandable nodes with one selected row
// Up/Down move between visible rows, Right expands, Left collapses or moves to the
// parent of a collapsed node, Enter toggles
type TreeView struct {
	Focus
	Root *TreeNode

	state TreeState
}

// NewTreeView creates a view over root with the root selected
func NewTreeView(root *TreeNode) *TreeView {
	return &TreeView{Root: root}
}

// Selected returns the node under the cursor, nil for an empty tree
func (t *TreeView) Selected() *TreeNode {
	rows := flatten(t.Root)
	if len(rows) == 0 {
		return nil
	}
	return rows[ClampCursor(t.state.Cursor, len(rows))].node
}

// Scroll returns the first visible row
func (t *TreeView) Scroll() int { return t.state.Scroll }

func (t *TreeView) Render(c *terminal.Canvas, size terminal.Coord) {
	if size.X < 2 || size.Y < 2 {
		return
	}
	if t.Root == nil {
		c.FillColor(t.focusColor(), terminal.Coord{}, terminal.Coord{X: size.X, Y: 1})
		return
	}

	rows := flatten(t.Root)
	t.state.SetVisible(size.Y)
	t.state.AdjustScroll(len(rows))

	for y := 0; y < size.Y; y++ {
		idx := t.state.Scroll + y
		if idx >= len(rows) {
			break
		}
		if y == size.Y-1 && idx < len(rows)-1 {
			c.SetRune(0, y, terminal.GlyphEllipsisVertical)
		} else {
			t.renderRow(c, size, y, rows[idx])
		}
		if idx == t.state.Cursor {
			c.FillColor(t.focusColor(), terminal.Coord{Y: y}, terminal.Coord{X: size.X, Y: 1})
		}
	}
}

func (t *TreeView) renderRow(c *terminal.Canvas, size terminal.Coord, y int, row treeRow) {
	n := row.node
	prefix := "> "
	if n.Expanded {
		prefix = "  "
	}
	DrawText(c, prefix+singleLine(n.Name), terminal.Coord{X: row.depth, Y: y}, size.X-2-row.depth)
	for x := 0; x < row.depth; x++ {
		c.SetRune(x, y, '|')
	}
	if n.Expanded {
		c.SetRune(row.depth, y, terminal.GlyphNot)
	}
	count := " [" + strconv.Itoa(len(n.Children)) + "]"
	DrawText(c, count, terminal.Coord{X: size.X - len(count), Y: y}, len(count))
}

func (t *TreeView) MinSize() terminal.Coord { return terminal.Coord{X: 10, Y: 3} }

func (t *TreeView) MaxSize() terminal.Coord {
	return terminal.Coord{X: terminal.Unbounded, Y: terminal.Unbounded}
}

func (t *TreeView) Focusable() bool { return true }

func (t *TreeView) HandleInput(ev terminal.KeyEvent) bool {
	if !t.focused {
		return false
	}
	rows := flatten(t.Root)
	if len(rows) == 0 {
		return false
	}
	cur := ClampCursor(t.state.Cursor, len(rows))
	node := rows[cur].node

	switch ev.Key {
	case terminal.KeyDown:
		t.state.MoveCursor(1, len(rows))
	case terminal.KeyUp:
		t.state.MoveCursor(-1, len(rows))
	case terminal.KeyRight:
		node.Expanded = true
	case terminal.KeyLeft:
		if node.Expanded && len(node.Children) > 0 {
			node.Expanded = false
		} else if p := rows[cur].parent; p >= 0 {
			t.state.Cursor = p
			t.state.AdjustScroll(len(rows))
		}
	case terminal.KeyEnter:
		node.Expanded = !node.Expanded
	default:
		return false
	}
	t.state.AdjustScroll(len(flatten(t.Root)))
	return true
}
