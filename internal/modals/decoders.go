package modals

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"mpctui/internal/action"
	"mpctui/internal/mpd"
	"mpctui/internal/uimodel"
)

// Decoders is a read-only listing of the daemon's decoder plugins and the
// suffixes/MIME types each handles.
type Decoders struct {
	stack *uimodel.ModalStack
	rows  []string

	offset int
}

func NewDecoders(stack *uimodel.ModalStack, client mpd.Client) *Decoders {
	decs, err := client.Decoders()
	if err != nil {
		log.Error().Err(err).Msg("modals: list decoders")
	}

	rows := make([]string, 0, len(decs))

	for _, d := range decs {
		rows = append(rows, fmt.Sprintf("%s: %s (%s)", d.Plugin,
			strings.Join(d.Suffixes, ", "), strings.Join(d.MIMETypes, ", ")))
	}

	return &Decoders{stack: stack, rows: rows}
}

func (d *Decoders) ID() string { return "decoders" }

func (d *Decoders) Render(a uimodel.Area) string {
	visible := d.rows

	maxRows := a.H - 4
	if maxRows > 0 && len(visible) > maxRows {
		end := d.offset + maxRows
		if end > len(visible) {
			end = len(visible)
		}

		visible = visible[d.offset:end]
	}

	body := modalTitleStyle.Render("Decoders") + "\n\n" + strings.Join(visible, "\n")

	return modalBorderStyle.Width(a.W - 2).Render(body)
}

func (d *Decoders) Resize(a uimodel.Area) {}

func (d *Decoders) HandleAction(e *action.Event) {
	c, ok := e.ClaimCommon()
	if !ok {
		return
	}

	switch c.Action {
	case action.Up:
		if d.offset > 0 {
			d.offset--
		}
	case action.Down:
		if d.offset < len(d.rows)-1 {
			d.offset++
		}
	case action.Close:
		d.stack.PopID("decoders")
	default:
		e.Abandon()
	}
}

func (d *Decoders) HandleKey(msg tea.KeyMsg) bool {
	if msg.String() == "esc" || msg.String() == "q" {
		d.stack.PopID("decoders")

		return true
	}

	return false
}

func (d *Decoders) OnClose() {}
