package modals

import (
	"mpctui/internal/keyseq"
	"mpctui/internal/mpd"
	"mpctui/internal/uimodel"
)

// Factory implements uimodel.ModalFactory, giving the event loop's global
// action handler a way to open the built-in modals without uimodel itself
// depending on this package.
type Factory struct {
	Stack  *uimodel.ModalStack
	Client mpd.Client
	Scopes map[string]*keyseq.Map
}

func (f *Factory) Keybinds() uimodel.Modal { return NewKeybinds(f.Stack, f.Scopes) }

func (f *Factory) AddRandom() uimodel.Modal { return NewAddRandom(f.Stack, f.Client) }

func (f *Factory) Outputs() uimodel.Modal { return NewOutputs(f.Stack, f.Client) }

func (f *Factory) Decoders() uimodel.Modal { return NewDecoders(f.Stack, f.Client) }

func (f *Factory) SongInfo(title string, rows []string) uimodel.Modal {
	return NewInfoList(f.Stack, "song_info", title, rows)
}

func (f *Factory) Command(title string, onSwitchTab func(string)) uimodel.Modal {
	return NewInput(f.Stack, "command", title, "tab name", "", onSwitchTab)
}
