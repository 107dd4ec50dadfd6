package panes

import (
	"github.com/rs/zerolog/log"

	"mpctui/internal/action"
	tm "mpctui/internal/mpd"
	"mpctui/internal/modals"
	"mpctui/internal/uimodel"
)

// Playlists lists stored playlists and, once one is selected, its
// contents, mirroring the browser pane's two-level drill pattern but fixed
// to exactly one extra level deep.
type Playlists struct {
	uimodel.BasePane

	ctx *uimodel.Ctx
	id  string

	names   []string
	viewing string // non-empty once a playlist's contents are shown
	songs   []tm.Song

	list    cursorList
	loading bool
}

func NewPlaylists(ref string, ctx *uimodel.Ctx) *Playlists {
	p := &Playlists{ctx: ctx, id: ref, list: newCursorList()}
	p.reload()

	return p
}

func (p *Playlists) BeforeShow() {
	if p.names == nil && !p.loading {
		p.reload()
	}
}

func (p *Playlists) reload() {
	p.loading = true

	if p.viewing == "" {
		p.ctx.Queries.Issue(uimodel.QueryKey{Originator: p.id, ID: "names"}, func() (any, error) {
			return p.ctx.Client.ListPlaylists()
		})

		return
	}

	name := p.viewing

	p.ctx.Queries.Issue(uimodel.QueryKey{Originator: p.id, ID: "contents"}, func() (any, error) {
		return p.ctx.Client.PlaylistContents(name)
	})
}

func (p *Playlists) OnQueryFinished(q uimodel.QueryResult) {
	p.loading = false

	if q.Err != nil {
		log.Error().Err(q.Err).Str("pane", p.id).Msg("playlists: query failed")

		return
	}

	switch q.Key.ID {
	case "names":
		p.names, _ = q.Value.([]string)
	case "contents":
		p.songs, _ = q.Value.([]tm.Song)
	}

	p.list.cursor = 0
	p.list.offset = 0
}

func (p *Playlists) rowCount() int {
	if p.viewing == "" {
		return len(p.names)
	}

	return len(p.songs)
}

func (p *Playlists) Render() string {
	if p.loading {
		return "loading..."
	}

	n := p.rowCount()
	start, end := p.list.visibleWindow(n, p.Area.H)

	rows := make([]string, n)

	if p.viewing == "" {
		copy(rows[start:end], p.names[start:end])
	} else {
		for i := start; i < end; i++ {
			title, ok := p.songs[i].Tag("title")
			if !ok {
				title = p.songs[i].File
			}

			rows[i] = title
		}
	}

	if end <= start {
		return ""
	}

	return renderRows(rows, start, end, p.list.cursor, p.list.marks, p.Area.W)
}

func (p *Playlists) HandleAction(e *action.Event) {
	c, ok := e.ClaimCommon()
	if !ok {
		return
	}

	n := p.rowCount()

	switch c.Action {
	case action.Up:
		p.list.moveBy(-1, n)
	case action.Down:
		p.list.moveBy(1, n)
	case action.PageUp:
		p.list.moveBy(-p.Area.H, n)
	case action.PageDown:
		p.list.moveBy(p.Area.H, n)
	case action.Top:
		p.list.moveTop()
	case action.Bottom:
		p.list.moveBottom(n)
	case action.Right, action.Confirm:
		p.drillDown()
	case action.Left:
		p.drillUp()
	case action.Add:
		p.addSelectionToQueue()
	case action.Delete:
		p.deleteSelected()
	case action.ShowInfo:
		p.showSelectedInfo()
	case action.ContextMenu:
		p.openContextMenu()
	case action.CopyToClipboard:
		copySongToClipboard(p.selectedSong(), c.ClipboardKind)
	case action.Rate:
		cycleRating(p.ctx.Client, p.selectedSong(), c)
	default:
		e.Abandon()
	}
}

// selectedSong returns the song under the cursor while viewing a playlist's
// contents, or nil while browsing the list of playlist names.
func (p *Playlists) selectedSong() *tm.Song {
	if p.viewing == "" || p.list.cursor < 0 || p.list.cursor >= len(p.songs) {
		return nil
	}

	return &p.songs[p.list.cursor]
}

func (p *Playlists) showSelectedInfo() {
	if p.ctx.Modals == nil {
		return
	}

	p.ctx.ModalStack.Push(p.ctx.Modals.SongInfo("Playlist entry", songInfoRows(p.selectedSong())))
}

func (p *Playlists) openContextMenu() {
	entries := []modals.MenuEntry{
		{Label: "Add to queue", Choose: p.addSelectionToQueue},
		{Label: "Delete", Choose: p.deleteSelected},
	}

	if p.selectedSong() != nil {
		entries = append(entries, modals.MenuEntry{Label: "Show info", Choose: p.showSelectedInfo})
	}

	p.ctx.ModalStack.Push(modals.NewMenu(p.ctx.ModalStack, "Playlist", entries))
}

func (p *Playlists) drillDown() {
	if p.viewing != "" {
		if p.list.cursor >= 0 && p.list.cursor < len(p.songs) {
			if err := p.ctx.Client.Add(p.songs[p.list.cursor].File); err != nil {
				log.Error().Err(err).Msg("playlists: queue song")
			}
		}

		return
	}

	if p.list.cursor < 0 || p.list.cursor >= len(p.names) {
		return
	}

	p.viewing = p.names[p.list.cursor]
	p.reload()
}

func (p *Playlists) drillUp() {
	if p.viewing == "" {
		return
	}

	p.viewing = ""
	p.songs = nil
	p.reload()
}

func (p *Playlists) addSelectionToQueue() {
	if p.viewing == "" {
		if p.list.cursor >= 0 && p.list.cursor < len(p.names) {
			for _, s := range p.playlistContentsCached() {
				if err := p.ctx.Client.Add(s.File); err != nil {
					log.Error().Err(err).Msg("playlists: add whole playlist")
				}
			}
		}

		return
	}

	if p.list.cursor >= 0 && p.list.cursor < len(p.songs) {
		if err := p.ctx.Client.Add(p.songs[p.list.cursor].File); err != nil {
			log.Error().Err(err).Msg("playlists: add song")
		}
	}
}

// playlistContentsCached fetches a playlist's songs synchronously for the
// "add whole playlist to queue" action; small, infrequent, and simpler than
// routing a second async query through OnQueryFinished for a one-shot bulk
// add.
func (p *Playlists) playlistContentsCached() []tm.Song {
	if p.list.cursor < 0 || p.list.cursor >= len(p.names) {
		return nil
	}

	songs, err := p.ctx.Client.PlaylistContents(p.names[p.list.cursor])
	if err != nil {
		log.Error().Err(err).Msg("playlists: fetch contents for bulk add")

		return nil
	}

	return songs
}

func (p *Playlists) deleteSelected() {
	if p.viewing == "" {
		if p.list.cursor >= 0 && p.list.cursor < len(p.names) {
			if err := p.ctx.Client.PlaylistDelete(p.names[p.list.cursor]); err != nil {
				log.Error().Err(err).Msg("playlists: delete playlist")
			}

			p.reload()
		}

		return
	}

	if p.list.cursor >= 0 && p.list.cursor < len(p.songs) {
		if err := p.ctx.Client.PlaylistRemove(p.viewing, p.songs[p.list.cursor].Pos); err != nil {
			log.Error().Err(err).Msg("playlists: remove entry")
		}

		p.reload()
	}
}

func (p *Playlists) OnEvent(sub tm.Subsystem) {
	if sub == tm.SubsystemStoredPl {
		p.reload()
	}
}
