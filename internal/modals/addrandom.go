package modals

import (
	"math/rand"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"mpctui/internal/action"
	"mpctui/internal/mpd"
	"mpctui/internal/uimodel"
)

// AddRandom prompts for a song count and queues that many songs picked
// uniformly at random from the whole library.
type AddRandom struct {
	stack  *uimodel.ModalStack
	client mpd.Client
	ti     textinput.Model
	errMsg string
}

func NewAddRandom(stack *uimodel.ModalStack, client mpd.Client) *AddRandom {
	ti := textinput.New()
	ti.Placeholder = "how many songs?"
	ti.Focus()

	return &AddRandom{stack: stack, client: client, ti: ti}
}

func (a *AddRandom) ID() string { return "add_random" }

func (a *AddRandom) Render(area uimodel.Area) string {
	body := modalTitleStyle.Render("Add Random") + "\n\n" + a.ti.View()
	if a.errMsg != "" {
		body += "\n" + a.errMsg
	}

	return modalBorderStyle.Width(area.W - 2).Render(body)
}

func (a *AddRandom) Resize(area uimodel.Area) {}

func (a *AddRandom) HandleAction(e *action.Event) {
	if _, ok := e.ClaimCommon(); ok {
		a.stack.PopID("add_random")
	}
}

func (a *AddRandom) HandleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEnter:
		a.submit()

		return true
	case tea.KeyEsc:
		a.stack.PopID("add_random")

		return true
	}

	var cmd tea.Cmd
	a.ti, cmd = a.ti.Update(msg)
	_ = cmd

	return true
}

func (a *AddRandom) submit() {
	n, err := strconv.Atoi(a.ti.Value())
	if err != nil || n <= 0 {
		a.errMsg = "enter a positive number"

		return
	}

	all, err := a.client.ListAllInfo("")
	if err != nil {
		log.Error().Err(err).Msg("modals: list library for random add")
		a.errMsg = "could not read library"

		return
	}

	if n > len(all) {
		n = len(all)
	}

	perm := rand.Perm(len(all))

	for _, idx := range perm[:n] {
		if err := a.client.Add(all[idx].File); err != nil {
			log.Error().Err(err).Msg("modals: add random song")
		}
	}

	a.stack.PopID("add_random")
}

func (a *AddRandom) OnClose() {}
