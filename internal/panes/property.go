package panes

import (
	"github.com/charmbracelet/lipgloss"

	tm "mpctui/internal/mpd"
	"mpctui/internal/uimodel"
)

// Property is a generic single-line pane that renders one arbitrary
// formatting-DSL template against the current (song, status) — the
// escape hatch for a theme that wants a custom readout the builtin panes
// don't cover, declared under [panes] with a "template" parameter.
type Property struct {
	uimodel.BasePane

	ctx      *uimodel.Ctx
	template compiledTemplate
}

func NewProperty(ctx *uimodel.Ctx, template string) *Property {
	return &Property{ctx: ctx, template: compileTemplate(template)}
}

func (p *Property) Render() string {
	text := p.template.Render(p.ctx.CurrentSong, p.ctx.Status, p.ctx.PropertyCtx)

	return lipgloss.NewStyle().Width(p.Area.W).Render(text)
}

func (p *Property) OnEvent(sub tm.Subsystem) {}
