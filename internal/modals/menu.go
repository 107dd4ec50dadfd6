package modals

import (
	tea "github.com/charmbracelet/bubbletea"

	"mpctui/internal/action"
	"mpctui/internal/uimodel"
)

// MenuEntry is one selectable row of a Menu.
type MenuEntry struct {
	Label  string
	Choose func()
}

// Menu is a generic labeled-entries popup, used for per-row context menus
// raised by action.ContextMenu.
type Menu struct {
	stack   *uimodel.ModalStack
	Title   string
	Entries []MenuEntry

	cursor int
}

func NewMenu(stack *uimodel.ModalStack, title string, entries []MenuEntry) *Menu {
	return &Menu{stack: stack, Title: title, Entries: entries}
}

func (m *Menu) ID() string { return "menu" }

func (m *Menu) Render(a uimodel.Area) string {
	body := ""
	if m.Title != "" {
		body += modalTitleStyle.Render(m.Title) + "\n\n"
	}

	for i, e := range m.Entries {
		line := e.Label
		if i == m.cursor {
			line = choiceSelected.Render(line)
		} else {
			line = choiceStyle.Render(line)
		}

		body += line + "\n"
	}

	return modalBorderStyle.Width(a.W - 2).Render(body)
}

func (m *Menu) Resize(a uimodel.Area) {}

func (m *Menu) HandleAction(e *action.Event) {
	c, ok := e.ClaimCommon()
	if !ok {
		return
	}

	switch c.Action {
	case action.Up:
		if m.cursor > 0 {
			m.cursor--
		}
	case action.Down:
		if m.cursor < len(m.Entries)-1 {
			m.cursor++
		}
	case action.Confirm:
		m.choose()
	case action.Close:
		m.stack.PopID("menu")
	default:
		e.Abandon()
	}
}

func (m *Menu) choose() {
	if m.cursor < 0 || m.cursor >= len(m.Entries) {
		return
	}

	entry := m.Entries[m.cursor]
	m.stack.PopID("menu")

	if entry.Choose != nil {
		entry.Choose()
	}
}

func (m *Menu) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc":
		m.stack.PopID("menu")

		return true
	case "enter":
		m.choose()

		return true
	}

	return false
}

func (m *Menu) OnClose() {}
