package modals

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"mpctui/internal/action"
	"mpctui/internal/uimodel"
)

// InfoList is a read-only scrollable key/value listing (current song info,
// decoder details); it has no callback, only Close.
type InfoList struct {
	stack     *uimodel.ModalStack
	replaceID string
	Title     string
	Rows      []string

	offset int
}

func NewInfoList(stack *uimodel.ModalStack, replaceID, title string, rows []string) *InfoList {
	return &InfoList{stack: stack, replaceID: replaceID, Title: title, Rows: rows}
}

func (l *InfoList) ID() string { return l.replaceID }

func (l *InfoList) Render(a uimodel.Area) string {
	visible := l.Rows
	maxRows := a.H - 4

	if maxRows > 0 && len(visible) > maxRows {
		end := l.offset + maxRows
		if end > len(visible) {
			end = len(visible)
		}

		visible = visible[l.offset:end]
	}

	body := modalTitleStyle.Render(l.Title) + "\n\n" + strings.Join(visible, "\n")

	return modalBorderStyle.Width(a.W - 2).Render(body)
}

func (l *InfoList) Resize(a uimodel.Area) {}

func (l *InfoList) HandleAction(e *action.Event) {
	c, ok := e.ClaimCommon()
	if !ok {
		return
	}

	switch c.Action {
	case action.Up:
		if l.offset > 0 {
			l.offset--
		}
	case action.Down:
		if l.offset < len(l.Rows)-1 {
			l.offset++
		}
	case action.Close, action.Confirm:
		l.stack.PopID(l.replaceID)
	default:
		e.Abandon()
	}
}

func (l *InfoList) HandleKey(msg tea.KeyMsg) bool {
	if msg.String() == "esc" || msg.String() == "q" {
		l.stack.PopID(l.replaceID)

		return true
	}

	return false
}

func (l *InfoList) OnClose() {}
