package modals

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"mpctui/internal/action"
	"mpctui/internal/mpd"
	"mpctui/internal/uimodel"
)

// Outputs lists the daemon's audio outputs and toggles them on Confirm.
type Outputs struct {
	stack  *uimodel.ModalStack
	client mpd.Client

	outputs []mpd.Output
	cursor  int
}

func NewOutputs(stack *uimodel.ModalStack, client mpd.Client) *Outputs {
	o := &Outputs{stack: stack, client: client}

	outs, err := client.Outputs()
	if err != nil {
		log.Error().Err(err).Msg("modals: list outputs")
	}

	o.outputs = outs

	return o
}

func (o *Outputs) ID() string { return "outputs" }

func (o *Outputs) Render(a uimodel.Area) string {
	body := modalTitleStyle.Render("Outputs") + "\n\n"

	for i, out := range o.outputs {
		state := "off"
		if out.Enabled {
			state = "on"
		}

		line := fmt.Sprintf("[%s] %s (%s)", state, out.Name, out.Plugin)
		if i == o.cursor {
			line = choiceSelected.Render(line)
		}

		body += line + "\n"
	}

	return modalBorderStyle.Width(a.W - 2).Render(body)
}

func (o *Outputs) Resize(a uimodel.Area) {}

func (o *Outputs) HandleAction(e *action.Event) {
	c, ok := e.ClaimCommon()
	if !ok {
		return
	}

	switch c.Action {
	case action.Up:
		if o.cursor > 0 {
			o.cursor--
		}
	case action.Down:
		if o.cursor < len(o.outputs)-1 {
			o.cursor++
		}
	case action.Confirm:
		o.toggle()
	case action.Close:
		o.stack.PopID("outputs")
	default:
		e.Abandon()
	}
}

func (o *Outputs) toggle() {
	if o.cursor < 0 || o.cursor >= len(o.outputs) {
		return
	}

	out := &o.outputs[o.cursor]

	var err error
	if out.Enabled {
		err = o.client.DisableOutput(out.ID)
	} else {
		err = o.client.EnableOutput(out.ID)
	}

	if err != nil {
		log.Error().Err(err).Int("output", out.ID).Msg("modals: toggle output")

		return
	}

	out.Enabled = !out.Enabled
}

func (o *Outputs) HandleKey(msg tea.KeyMsg) bool {
	if msg.String() == "esc" {
		o.stack.PopID("outputs")

		return true
	}

	return false
}

func (o *Outputs) OnClose() {}
