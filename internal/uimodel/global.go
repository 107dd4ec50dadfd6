// ABOUTME: Global action handler: the last stop in the claim/abandon
// ABOUTME: dispatch chain, for actions no modal or pane claimed

package uimodel

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"mpctui/internal/action"
	"mpctui/internal/mpd"
)

// seekStep is the amount a single SeekForward/SeekBack action moves the
// playback position.
const seekStep = 5 * time.Second

// toggleTri flips a TriState between off and on, dropping a one-shot back
// to off rather than re-arming it.
func toggleTri(t mpd.TriState) mpd.TriState {
	if t == mpd.TriOff {
		return mpd.TriOn
	}

	return mpd.TriOff
}

// togglePause flips play/pause: a stopped queue starts playing from its
// first entry, a playing one pauses, a paused one resumes.
func togglePause(c *Ctx) error {
	switch c.Status.State {
	case mpd.StatePlaying:
		return c.Client.Pause(true)
	case mpd.StatePaused:
		return c.Client.Pause(false)
	default:
		return c.Client.Play(0)
	}
}

// handleGlobal attempts to claim and act on e as a GlobalEvent. It's the
// terminal consumer in the dispatch chain (modal stack -> panes ->
// global), so it always claims whatever global action it recognizes.
func (m *Model) handleGlobal(e *action.Event) {
	g, ok := e.ClaimGlobal()
	if !ok {
		return
	}

	c := m.ctx

	switch g.Action {
	case action.Quit:
		m.quitRequested = true
		close(m.stopDaemon)
	case action.TogglePause:
		logErr(togglePause(c))
	case action.NextTrack:
		logErr(c.Client.Next())
	case action.PreviousTrack:
		logErr(c.Client.Previous())
	case action.Stop:
		logErr(c.Client.Stop())
	case action.VolumeUp:
		logErr(c.Client.SetVolume(clampVolume(c.Status.Volume + c.Config.VolumeStep)))
	case action.VolumeDown:
		logErr(c.Client.SetVolume(clampVolume(c.Status.Volume - c.Config.VolumeStep)))
	case action.ToggleRepeat:
		logErr(c.Client.SetRepeat(!c.Status.Repeat))
	case action.ToggleRandom:
		logErr(c.Client.SetRandom(!c.Status.Random))
	case action.NextTab:
		c.ActiveTab = (c.ActiveTab + 1) % max1(len(c.Tabs))
		m.onTabChanged()
	case action.PreviousTab:
		c.ActiveTab = (c.ActiveTab - 1 + len(c.Tabs)) % max1(len(c.Tabs))
		m.onTabChanged()
	case action.SwitchToTab:
		for i, t := range c.Tabs {
			if t.Name == g.Arg {
				c.ActiveTab = i
				m.onTabChanged()

				break
			}
		}
	case action.ToggleConsume:
		logErr(c.Client.SetConsume(toggleTri(c.Status.Consume)))
	case action.ToggleSingle:
		logErr(c.Client.SetSingle(toggleTri(c.Status.Single)))
	case action.SeekForward:
		logErr(c.Client.SeekCur(seekStep, true))
	case action.SeekBack:
		logErr(c.Client.SeekCur(-seekStep, true))
	case action.Update:
		_, err := c.Client.Update("")
		logErr(err)
	case action.Rescan:
		_, err := c.Client.Rescan("")
		logErr(err)
	case action.ShowHelp:
		if c.Modals != nil {
			c.ModalStack.Push(c.Modals.Keybinds())
		}
	case action.AddRandom:
		if c.Modals != nil {
			c.ModalStack.Push(c.Modals.AddRandom())
		}
	case action.ShowOutputs:
		if c.Modals != nil {
			c.ModalStack.Push(c.Modals.Outputs())
		}
	case action.ShowDecoders:
		if c.Modals != nil {
			c.ModalStack.Push(c.Modals.Decoders())
		}
	case action.ShowCurrentSongInfo:
		if c.Modals != nil {
			c.ModalStack.Push(c.Modals.SongInfo("Current Song", songInfoRows(c.CurrentSong)))
		}
	case action.CommandMode:
		if c.Modals != nil {
			c.ModalStack.Push(c.Modals.Command("Switch to tab", func(name string) {
				for i, t := range c.Tabs {
					if t.Name == name {
						c.ActiveTab = i
						m.onTabChanged()

						break
					}
				}
			}))
		}
	}
}

// songInfoRows formats every tag of song as one "Key: value" row for the
// ShowCurrentSongInfo modal.
func songInfoRows(song *mpd.Song) []string {
	if song == nil {
		return []string{"nothing playing"}
	}

	rows := []string{fmt.Sprintf("File: %s", song.File)}

	for tag, values := range song.Tags {
		for _, v := range values {
			rows = append(rows, fmt.Sprintf("%s: %s", tag, v))
		}
	}

	if song.HasDur {
		rows = append(rows, fmt.Sprintf("Duration: %s", song.Duration))
	}

	return rows
}

func (m *Model) onTabChanged() {
	for _, p := range m.ctx.Tabs[m.ctx.ActiveTab].Panes {
		p.BeforeShow()
	}

	m.relayout()
}

func max1(n int) int {
	if n < 1 {
		return 1
	}

	return n
}

func clampVolume(v int) int {
	if v < 0 {
		return 0
	}

	if v > 100 {
		return 100
	}

	return v
}

func logErr(err error) {
	if err != nil {
		log.Warn().Err(err).Msg("daemon command failed")
	}
}
