package modals

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"mpctui/internal/action"
	"mpctui/internal/keyseq"
	"mpctui/internal/uimodel"
)

// Keybinds renders every binding across all scopes, grouped by scope name,
// for the "show help" global action.
type Keybinds struct {
	stack *uimodel.ModalStack
	rows  []string

	offset int
}

func NewKeybinds(stack *uimodel.ModalStack, scopes map[string]*keyseq.Map) *Keybinds {
	names := make([]string, 0, len(scopes))
	for name := range scopes {
		names = append(names, name)
	}

	sort.Strings(names)

	var rows []string

	for _, name := range names {
		rows = append(rows, modalTitleStyle.Render(name+":"))

		seqs := make([]string, 0, len(scopes[name].Bindings))
		for seq := range scopes[name].Bindings {
			seqs = append(seqs, seq)
		}

		sort.Strings(seqs)

		for _, seq := range seqs {
			b := scopes[name].Bindings[seq]
			rows = append(rows, fmt.Sprintf("  %-12s %v", seq, b.Action))
		}
	}

	return &Keybinds{stack: stack, rows: rows}
}

func (k *Keybinds) ID() string { return "keybinds" }

func (k *Keybinds) Render(a uimodel.Area) string {
	visible := k.rows

	maxRows := a.H - 4
	if maxRows > 0 && len(visible) > maxRows {
		end := k.offset + maxRows
		if end > len(visible) {
			end = len(visible)
		}

		visible = visible[k.offset:end]
	}

	return modalBorderStyle.Width(a.W - 2).Render(strings.Join(visible, "\n"))
}

func (k *Keybinds) Resize(a uimodel.Area) {}

func (k *Keybinds) HandleAction(e *action.Event) {
	c, ok := e.ClaimCommon()
	if !ok {
		return
	}

	switch c.Action {
	case action.Up:
		if k.offset > 0 {
			k.offset--
		}
	case action.Down:
		if k.offset < len(k.rows)-1 {
			k.offset++
		}
	case action.Close:
		k.stack.PopID("keybinds")
	default:
		e.Abandon()
	}
}

func (k *Keybinds) HandleKey(msg tea.KeyMsg) bool {
	if msg.String() == "esc" || msg.String() == "q" || msg.String() == "?" {
		k.stack.PopID("keybinds")

		return true
	}

	return false
}

func (k *Keybinds) OnClose() {}
