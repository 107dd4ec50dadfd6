package modals

import (
	tea "github.com/charmbracelet/bubbletea"

	"mpctui/internal/action"
	"mpctui/internal/uimodel"
)

// Select is a single-choice list dialog (duplicate-handling mode, output
// device, decoder info pick, ...). OnChoose fires with the chosen index.
type Select struct {
	stack     *uimodel.ModalStack
	replaceID string
	Title     string
	Choices   []string
	OnChoose  func(index int)

	cursor int
}

func NewSelect(stack *uimodel.ModalStack, replaceID, title string, choices []string, onChoose func(int)) *Select {
	return &Select{stack: stack, replaceID: replaceID, Title: title, Choices: choices, OnChoose: onChoose}
}

func (s *Select) ID() string { return s.replaceID }

func (s *Select) Render(a uimodel.Area) string {
	body := modalTitleStyle.Render(s.Title) + "\n\n"

	for i, c := range s.Choices {
		if i == s.cursor {
			body += choiceSelected.Render(c) + "\n"
		} else {
			body += choiceStyle.Render(c) + "\n"
		}
	}

	return modalBorderStyle.Width(a.W - 2).Render(body)
}

func (s *Select) Resize(a uimodel.Area) {}

func (s *Select) HandleAction(e *action.Event) {
	c, ok := e.ClaimCommon()
	if !ok {
		return
	}

	switch c.Action {
	case action.Up:
		if s.cursor > 0 {
			s.cursor--
		}
	case action.Down:
		if s.cursor < len(s.Choices)-1 {
			s.cursor++
		}
	case action.Confirm:
		if s.OnChoose != nil {
			s.OnChoose(s.cursor)
		}

		s.stack.PopID(s.replaceID)
	case action.Close:
		s.stack.PopID(s.replaceID)
	default:
		e.Abandon()
	}
}

func (s *Select) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc":
		s.stack.PopID(s.replaceID)

		return true
	}

	return false
}

func (s *Select) OnClose() {}
