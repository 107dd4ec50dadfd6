// Package modals implements every transient overlay that can sit on top of
// uimodel.ModalStack: confirmation dialogs, text input prompts, select
// lists, read-only info lists, the keybind help sheet, and the small
// command-oriented dialogs (add-random, outputs, decoders, the right-click
// context menu).
package modals

import (
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"

	"mpctui/internal/action"
	"mpctui/internal/uimodel"
)

var (
	modalBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	modalTitleStyle  = lipgloss.NewStyle().Bold(true)
	choiceStyle      = lipgloss.NewStyle()
	choiceSelected   = lipgloss.NewStyle().Reverse(true)
)

// Confirm is a yes/no dialog; OnConfirm fires once, on Confirm only (not on
// Close/Esc), matching the teacher's one-shot callback pattern for
// destructive actions.
type Confirm struct {
	stack     *uimodel.ModalStack
	replaceID string
	Title     string
	Message   string
	OnConfirm func()

	cursor int // 0 = Yes, 1 = No
}

// NewConfirm builds a confirm dialog. replaceID lets the caller coalesce
// repeated confirms for the same logical action (e.g. "confirm_delete")
// instead of stacking duplicates. stack is the owning ModalStack, which the
// dialog pops itself from once answered.
func NewConfirm(stack *uimodel.ModalStack, replaceID, title, message string, onConfirm func()) *Confirm {
	return &Confirm{stack: stack, replaceID: replaceID, Title: title, Message: message, OnConfirm: onConfirm}
}

func (c *Confirm) ID() string { return c.replaceID }

func (c *Confirm) Render(a uimodel.Area) string {
	yes, no := choiceStyle.Render("Yes"), choiceStyle.Render("No")
	if c.cursor == 0 {
		yes = choiceSelected.Render("Yes")
	} else {
		no = choiceSelected.Render("No")
	}

	body := modalTitleStyle.Render(c.Title) + "\n\n" + c.Message + "\n\n" + yes + "   " + no

	return modalBorderStyle.Width(a.W - 2).Render(body)
}

func (c *Confirm) Resize(a uimodel.Area) {}

func (c *Confirm) HandleAction(e *action.Event) {
	ce, ok := e.ClaimCommon()
	if !ok {
		return
	}

	switch ce.Action {
	case action.Left, action.Right:
		c.cursor = 1 - c.cursor
	case action.Confirm:
		if c.cursor == 0 && c.OnConfirm != nil {
			c.OnConfirm()
		}

		c.stack.PopID(c.replaceID)
	case action.Close:
		c.stack.PopID(c.replaceID)
	default:
		e.Abandon()
	}
}

func (c *Confirm) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "y", "enter":
		if (msg.String() == "y" || c.cursor == 0) && c.OnConfirm != nil {
			c.OnConfirm()
		}

		c.stack.PopID(c.replaceID)

		return true
	case "n", "esc":
		c.stack.PopID(c.replaceID)

		return true
	}

	return false
}

func (c *Confirm) OnClose() {}
