package panes

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"mpctui/internal/uimodel"
)

// FrameCount is a small debug widget showing the event loop's monotonic
// render-frame counter, useful for confirming the FPS cap is holding
// steady without relying on wall-clock timestamps.
type FrameCount struct {
	uimodel.BasePane

	ctx *uimodel.Ctx
}

func NewFrameCount(ctx *uimodel.Ctx) *FrameCount {
	return &FrameCount{ctx: ctx}
}

func (f *FrameCount) Render() string {
	return lipgloss.NewStyle().Width(f.Area.W).Faint(true).Render(fmt.Sprintf("frame %d", f.ctx.Frame))
}
