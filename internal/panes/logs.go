package panes

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"mpctui/internal/action"
	"mpctui/internal/logging"
	"mpctui/internal/uimodel"
)

// Logs tails the process-wide log ring buffer in a scrollable viewport,
// grounded on the teacher's own viewport-based scrolling pane.
type Logs struct {
	uimodel.BasePane

	vp   viewport.Model
	wrap bool
}

func NewLogs() *Logs {
	return &Logs{vp: viewport.New(0, 0), wrap: true}
}

func (l *Logs) Resize(a uimodel.Area) {
	l.Area = a
	l.vp.Width = a.W
	l.vp.Height = a.H
}

func (l *Logs) Render() string {
	text := strings.Join(logging.Tail.Lines(), "")
	if !l.wrap {
		text = truncateLines(text, l.Area.W)
	}

	l.vp.SetContent(text)
	l.vp.GotoBottom()

	return lipgloss.NewStyle().Width(l.Area.W).Height(l.Area.H).Render(l.vp.View())
}

func truncateLines(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if len(ln) > width {
			lines[i] = ln[:width]
		}
	}

	return strings.Join(lines, "\n")
}

func (l *Logs) HandleAction(e *action.Event) {
	a, ok := e.ClaimLogs()
	if !ok {
		return
	}

	switch a {
	case action.LogsClear:
		logging.Tail.Clear()
	case action.LogsToggleWrap:
		l.wrap = !l.wrap
	}
}
