package panes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	tm "mpctui/internal/mpd"
	"mpctui/internal/uimodel"
)

// ProgressBar draws the elapsed/duration track position as a themed bar
// with a thumb glyph, plus the mm:ss / mm:ss counters at each end.
type ProgressBar struct {
	uimodel.BasePane

	ctx *uimodel.Ctx
}

func NewProgressBar(ctx *uimodel.Ctx) *ProgressBar {
	return &ProgressBar{ctx: ctx}
}

func (p *ProgressBar) Render() string {
	st := p.ctx.Status
	theme := p.ctx.Config.Theme.ProgressBar

	elapsed := fmtDuration(st.Elapsed)

	total := "--:--"
	if st.HasDuration {
		total = fmtDuration(st.Duration)
	}

	barWidth := p.Area.W - len(elapsed) - len(total) - 2
	if barWidth < 1 {
		barWidth = 1
	}

	frac := 0.0
	if st.HasDuration && st.Duration > 0 {
		frac = st.Elapsed.Seconds() / st.Duration.Seconds()
	}

	filled := int(frac * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}

	var sb strings.Builder
	sb.WriteString(elapsed)
	sb.WriteByte(' ')

	for i := 0; i < barWidth; i++ {
		switch {
		case i < filled-1:
			sb.WriteString(theme.Filled)
		case i == filled-1:
			sb.WriteString(theme.Thumb)
		default:
			sb.WriteString(theme.Empty)
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(total)

	return lipgloss.NewStyle().Width(p.Area.W).Render(sb.String())
}

func fmtDuration(d interface{ Seconds() float64 }) string {
	total := int(d.Seconds())
	m := total / 60
	s := total % 60

	return fmt.Sprintf("%02d:%02d", m, s)
}

func (p *ProgressBar) OnEvent(sub tm.Subsystem) {}
