package panes

import (
	"github.com/charmbracelet/lipgloss"

	"mpctui/internal/action"
	tm "mpctui/internal/mpd"
	"mpctui/internal/uimodel"
)

// Header renders the current song's title line plus the small playback
// states widget (repeat/random/consume/single), rendered from the pane's
// "template" parameter, or from a fixed title/artist/states template when
// none is given.
type Header struct {
	uimodel.BasePane

	ctx      *uimodel.Ctx
	template compiledTemplate
}

// NewHeader constructs the header pane. template defaults to a
// title/artist/states summary line when params carries none.
func NewHeader(ctx *uimodel.Ctx, template string) *Header {
	if template == "" {
		template = `$title{fg:white} - $artist{fg:gray}  [ $states ]`
	}

	return &Header{ctx: ctx, template: compileTemplate(template)}
}

func (h *Header) Render() string {
	text := h.template.Render(h.ctx.CurrentSong, h.ctx.Status, h.ctx.PropertyCtx)

	return lipgloss.NewStyle().Width(h.Area.W).Bold(true).Render(text)
}

func (h *Header) HandleAction(e *action.Event) {}

func (h *Header) OnEvent(sub tm.Subsystem) {}
