package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mpctui/internal/action"
	"mpctui/internal/uimodel"
)

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true)
)

// Tabs renders the tab bar. NextTab/PreviousTab are global actions handled
// by the global handler, so this pane claims no action; it just reflects
// ctx.ActiveTab.
type Tabs struct {
	uimodel.BasePane

	ctx *uimodel.Ctx
}

func NewTabs(ctx *uimodel.Ctx) *Tabs {
	return &Tabs{ctx: ctx}
}

func (t *Tabs) Render() string {
	var parts []string

	for i, tab := range t.ctx.Tabs {
		style := inactiveTabStyle
		if i == t.ctx.ActiveTab {
			style = activeTabStyle
		}

		parts = append(parts, style.Render(tab.Name))
	}

	return lipgloss.NewStyle().Width(t.Area.W).Render(strings.Join(parts, "  "))
}

func (t *Tabs) HandleAction(e *action.Event) {}
