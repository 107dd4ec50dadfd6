package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	selectedRowStyle = lipgloss.NewStyle().Reverse(true)
	markedRowStyle   = lipgloss.NewStyle().Bold(true)
)

// cursorList is the shared scrolling-selection state every browser-like
// pane (queue, library browsers, playlists, search results) builds on: a
// row count, a cursor, a scroll offset, and an optional multi-select mark
// set, rendered as plain styled rows rather than through bubbles/list so
// it composes with the action-routing cursor movement (Up/Down/Top/Bottom/
// PageUp/PageDown/...) instead of a second, competing key-handling layer.
type cursorList struct {
	cursor int
	offset int
	marks  map[int]bool
}

func newCursorList() cursorList {
	return cursorList{marks: map[int]bool{}}
}

func (c *cursorList) clampCursor(n int) {
	if n == 0 {
		c.cursor = 0

		return
	}

	if c.cursor < 0 {
		c.cursor = 0
	}

	if c.cursor >= n {
		c.cursor = n - 1
	}
}

func (c *cursorList) moveBy(delta, n int) {
	c.cursor += delta
	c.clampCursor(n)
}

func (c *cursorList) moveTop()        { c.cursor = 0 }
func (c *cursorList) moveBottom(n int) { c.cursor = n - 1; c.clampCursor(n) }

func (c *cursorList) toggleMark() {
	if c.marks[c.cursor] {
		delete(c.marks, c.cursor)
	} else {
		c.marks[c.cursor] = true
	}
}

func (c *cursorList) invertMarks(n int) {
	for i := 0; i < n; i++ {
		if c.marks[i] {
			delete(c.marks, i)
		} else {
			c.marks[i] = true
		}
	}
}

// visibleWindow returns [start, end) rows to render for a viewport height,
// adjusting the scroll offset to keep the cursor visible.
func (c *cursorList) visibleWindow(n, height int) (start, end int) {
	if height <= 0 {
		return 0, 0
	}

	if c.cursor < c.offset {
		c.offset = c.cursor
	}

	if c.cursor >= c.offset+height {
		c.offset = c.cursor - height + 1
	}

	if c.offset < 0 {
		c.offset = 0
	}

	end = c.offset + height
	if end > n {
		end = n
	}

	return c.offset, end
}

// renderRows draws rows[start:end] with the cursor/mark styling applied,
// padded/clipped to width.
func renderRows(rows []string, start, end, cursor int, marks map[int]bool, width int) string {
	var sb strings.Builder

	for i := start; i < end; i++ {
		if i > start {
			sb.WriteByte('\n')
		}

		row := padOrClip(rows[i], width)

		switch {
		case i == cursor:
			sb.WriteString(selectedRowStyle.Render(row))
		case marks[i]:
			sb.WriteString(markedRowStyle.Render(row))
		default:
			sb.WriteString(row)
		}
	}

	return sb.String()
}

func padOrClip(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}

	return s + strings.Repeat(" ", width-len(runes))
}
