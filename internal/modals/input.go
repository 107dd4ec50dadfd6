package modals

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mpctui/internal/action"
	"mpctui/internal/uimodel"
)

// Input is a single-line text entry dialog (rename, save-playlist-as,
// search-by-tag, ...). OnSubmit fires with the final value; Esc cancels
// without calling it.
type Input struct {
	stack     *uimodel.ModalStack
	replaceID string
	Title     string
	ti        textinput.Model
	OnSubmit  func(value string)
}

func NewInput(stack *uimodel.ModalStack, replaceID, title, placeholder, initial string, onSubmit func(string)) *Input {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(initial)
	ti.Focus()

	return &Input{stack: stack, replaceID: replaceID, Title: title, ti: ti, OnSubmit: onSubmit}
}

func (i *Input) ID() string { return i.replaceID }

func (i *Input) Render(a uimodel.Area) string {
	body := modalTitleStyle.Render(i.Title) + "\n\n" + i.ti.View()

	return modalBorderStyle.Width(a.W - 2).Render(body)
}

func (i *Input) Resize(a uimodel.Area) {}

func (i *Input) HandleAction(e *action.Event) {
	if _, ok := e.ClaimCommon(); ok {
		i.stack.PopID(i.replaceID)
	}
}

func (i *Input) HandleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEnter:
		if i.OnSubmit != nil {
			i.OnSubmit(i.ti.Value())
		}

		i.stack.PopID(i.replaceID)

		return true
	case tea.KeyEsc:
		i.stack.PopID(i.replaceID)

		return true
	}

	var cmd tea.Cmd
	i.ti, cmd = i.ti.Update(msg)
	_ = cmd

	return true
}

func (i *Input) OnClose() {}
