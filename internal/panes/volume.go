package panes

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	tm "mpctui/internal/mpd"
	"mpctui/internal/property"
	"mpctui/internal/uimodel"
)

// Volume renders the ASCII volume bar widget plus the numeric percentage.
type Volume struct {
	uimodel.BasePane

	ctx *uimodel.Ctx
}

func NewVolume(ctx *uimodel.Ctx) *Volume {
	return &Volume{ctx: ctx}
}

func (v *Volume) Render() string {
	bar := property.Eval(
		property.Node{Kind: property.NodeProperty, Leaf: property.Leaf{Kind: property.LeafWidget, Widget: property.WidgetVolume}},
		nil, v.ctx.Status, v.ctx.PropertyCtx,
	).String()

	return lipgloss.NewStyle().Width(v.Area.W).Render(fmt.Sprintf("[%s] %d%%", bar, v.ctx.Status.Volume))
}

func (v *Volume) OnEvent(sub tm.Subsystem) {}
