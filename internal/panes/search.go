package panes

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/rs/zerolog/log"

	"mpctui/internal/action"
	tm "mpctui/internal/mpd"
	"mpctui/internal/modals"
	"mpctui/internal/uimodel"
)

// searchTags lists the tag a query is matched against. runQuery searches
// with the first entry only ("any", which matches every tag), so a plain
// search box needs no tag choice; later entries are not tried.
var searchTags = []string{"any"}

// Search is a free-text query box over the library, built on
// bubbles/textinput for the input itself and the query scheduler for the
// (potentially slow) Find call every keystroke triggers.
type Search struct {
	uimodel.BasePane

	ctx *uimodel.Ctx
	id  string

	input   textinput.Model
	active  bool
	results []tm.Song
	list    cursorList
}

func NewSearch(ref string, ctx *uimodel.Ctx) *Search {
	ti := textinput.New()
	ti.Placeholder = "search..."

	return &Search{ctx: ctx, id: ref, input: ti, list: newCursorList()}
}

func (s *Search) Render() string {
	box := s.input.View()

	n := len(s.results)
	start, end := s.list.visibleWindow(n, s.Area.H-1)

	rows := make([]string, n)
	for i := start; i < end; i++ {
		title, ok := s.results[i].Tag("title")
		if !ok {
			title = s.results[i].File
		}

		rows[i] = title
	}

	body := ""
	if end > start {
		body = renderRows(rows, start, end, s.list.cursor, s.list.marks, s.Area.W)
	}

	if body == "" {
		return box
	}

	return box + "\n" + body
}

func (s *Search) HandleAction(e *action.Event) {
	c, ok := e.ClaimCommon()
	if !ok {
		return
	}

	switch c.Action {
	case action.EnterSearch, action.FocusInput:
		s.active = true
		s.input.Focus()
	case action.NextResult:
		s.list.moveBy(1, len(s.results))
	case action.PreviousResult:
		s.list.moveBy(-1, len(s.results))
	case action.Confirm:
		if s.list.cursor >= 0 && s.list.cursor < len(s.results) {
			if err := s.ctx.Client.Add(s.results[s.list.cursor].File); err != nil {
				log.Error().Err(err).Msg("search: add result")
			}
		}
	case action.Close:
		s.active = false
		s.input.Blur()
	case action.ShowInfo:
		s.showSelectedInfo()
	case action.ContextMenu:
		s.openContextMenu()
	case action.CopyToClipboard:
		copySongToClipboard(s.selectedSong(), c.ClipboardKind)
	case action.Rate:
		cycleRating(s.ctx.Client, s.selectedSong(), c)
	default:
		e.Abandon()
	}
}

func (s *Search) selectedSong() *tm.Song {
	if s.list.cursor < 0 || s.list.cursor >= len(s.results) {
		return nil
	}

	return &s.results[s.list.cursor]
}

func (s *Search) showSelectedInfo() {
	if s.ctx.Modals == nil {
		return
	}

	s.ctx.ModalStack.Push(s.ctx.Modals.SongInfo("Search result", songInfoRows(s.selectedSong())))
}

func (s *Search) openContextMenu() {
	song := s.selectedSong()
	if song == nil {
		return
	}

	s.ctx.ModalStack.Push(modals.NewMenu(s.ctx.ModalStack, "Search result", []modals.MenuEntry{
		{Label: "Add to queue", Choose: func() {
			if err := s.ctx.Client.Add(song.File); err != nil {
				log.Error().Err(err).Msg("search: add result")
			}
		}},
		{Label: "Show info", Choose: s.showSelectedInfo},
	}))
}

func (s *Search) HandleInsertMode(msg tea.KeyMsg) bool {
	if !s.active {
		return false
	}

	if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
		s.active = false
		s.input.Blur()

		return true
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	_ = cmd

	s.runQuery()

	return true
}

func (s *Search) runQuery() {
	text := s.input.Value()
	if text == "" {
		s.results = nil

		return
	}

	args := []string{searchTags[0], text}

	s.ctx.Queries.Issue(uimodel.QueryKey{Originator: s.id, ID: "search"}, func() (any, error) {
		return s.ctx.Client.Find(args...)
	})
}

func (s *Search) OnQueryFinished(q uimodel.QueryResult) {
	if q.Key.ID != "search" {
		return
	}

	if q.Err != nil {
		log.Error().Err(q.Err).Msg("search: find failed")

		return
	}

	s.results, _ = q.Value.([]tm.Song)
	s.list.cursor = 0
	s.list.offset = 0
}

func (s *Search) OnEvent(sub tm.Subsystem) {}
