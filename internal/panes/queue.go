package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"mpctui/internal/action"
	"mpctui/internal/config"
	tm "mpctui/internal/mpd"
	"mpctui/internal/modals"
	"mpctui/internal/uimodel"
)

// Queue renders the play queue using the configured song-format columns,
// highlighting the currently playing entry and the cursor row, and claims
// QueueAction plus the shared navigation CommonActions.
type Queue struct {
	uimodel.BasePane

	ctx     *uimodel.Ctx
	columns []compiledTemplate
	list    cursorList
}

func NewQueue(ctx *uimodel.Ctx) *Queue {
	cols := make([]compiledTemplate, len(ctx.Config.SongFormat))
	for i, col := range ctx.Config.SongFormat {
		cols[i] = compileTemplate(col.Template)
	}

	return &Queue{ctx: ctx, columns: cols, list: newCursorList()}
}

func (q *Queue) Render() string {
	n := len(q.ctx.Queue)

	start, end := q.list.visibleWindow(n, q.Area.H)

	rows := make([]string, n)
	for i := start; i < end; i++ {
		rows[i] = q.renderRow(q.ctx.Queue[i])
	}

	if end <= start {
		return ""
	}

	return renderRows(rows, start, end, q.list.cursor, q.list.marks, q.Area.W)
}

func (q *Queue) renderRow(song tm.Song) string {
	widths := columnWidths(q.ctx.Config.SongFormat, q.Area.W)

	var sb strings.Builder

	for i, col := range q.columns {
		text := col.Render(&song, q.ctx.Status, q.ctx.PropertyCtx)
		sb.WriteString(padOrClip(text, widths[i]))
	}

	row := sb.String()

	if q.ctx.CurrentSong != nil && song.HasQueueID && q.ctx.CurrentSong.HasQueueID &&
		song.QueueID == q.ctx.CurrentSong.QueueID {
		return lipgloss.NewStyle().Bold(true).Render(row)
	}

	return row
}

func columnWidths(cols []config.Column, total int) []int {
	widths := make([]int, len(cols))

	for i, c := range cols {
		widths[i] = total * c.WidthPercent / 100
	}

	return widths
}

func (q *Queue) HandleAction(e *action.Event) {
	if a, ok := e.ClaimQueue(); ok {
		q.handleQueueAction(a)

		return
	}

	if c, ok := e.ClaimCommon(); ok {
		if !q.handleCommon(c) {
			e.Abandon()
		}
	}
}

func (q *Queue) handleQueueAction(a action.QueueAction) {
	n := len(q.ctx.Queue)

	switch a {
	case action.QueuePlaySelected:
		if q.list.cursor >= 0 && q.list.cursor < n {
			song := q.ctx.Queue[q.list.cursor]
			if song.HasQueueID {
				if err := q.ctx.Client.PlayID(song.QueueID); err != nil {
					log.Error().Err(err).Msg("queue: play selected")
				}
			}
		}
	case action.QueueRemoveSelected:
		if q.list.cursor >= 0 && q.list.cursor < n {
			song := q.ctx.Queue[q.list.cursor]
			if song.HasQueueID {
				if err := q.ctx.Client.DeleteID(song.QueueID); err != nil {
					log.Error().Err(err).Msg("queue: remove selected")
				}
			}
		}
	case action.QueueCenterCursor:
		q.list.offset = q.list.cursor - q.Area.H/2
	case action.QueueJumpToCurrent:
		if q.ctx.CurrentSong != nil && q.ctx.CurrentSong.HasQueueID {
			for i, s := range q.ctx.Queue {
				if s.HasQueueID && s.QueueID == q.ctx.CurrentSong.QueueID {
					q.list.cursor = i

					break
				}
			}
		}
	}
}

func (q *Queue) handleCommon(c action.CommonEvent) bool {
	n := len(q.ctx.Queue)

	switch c.Action {
	case action.Up:
		q.list.moveBy(-1, n)
	case action.Down:
		q.list.moveBy(1, n)
	case action.PageUp:
		q.list.moveBy(-q.Area.H, n)
	case action.PageDown:
		q.list.moveBy(q.Area.H, n)
	case action.UpHalf:
		q.list.moveBy(-q.Area.H/2, n)
	case action.DownHalf:
		q.list.moveBy(q.Area.H/2, n)
	case action.Top:
		q.list.moveTop()
	case action.Bottom:
		q.list.moveBottom(n)
	case action.Select:
		q.list.toggleMark()
	case action.InvertSelection:
		q.list.invertMarks(n)
	case action.Delete:
		q.handleQueueAction(action.QueueRemoveSelected)
	case action.Confirm:
		q.handleQueueAction(action.QueuePlaySelected)
	case action.ShowInfo:
		q.showSelectedInfo()
	case action.ContextMenu:
		q.openContextMenu()
	case action.CopyToClipboard:
		copySongToClipboard(q.selectedSong(), c.ClipboardKind)
	case action.Rate:
		cycleRating(q.ctx.Client, q.selectedSong(), c)
	default:
		return false
	}

	return true
}

func (q *Queue) selectedSong() *tm.Song {
	if q.list.cursor < 0 || q.list.cursor >= len(q.ctx.Queue) {
		return nil
	}

	return &q.ctx.Queue[q.list.cursor]
}

func (q *Queue) showSelectedInfo() {
	if q.ctx.Modals == nil {
		return
	}

	q.ctx.ModalStack.Push(q.ctx.Modals.SongInfo("Queue entry", songInfoRows(q.selectedSong())))
}

func (q *Queue) openContextMenu() {
	song := q.selectedSong()
	if song == nil {
		return
	}

	q.ctx.ModalStack.Push(modals.NewMenu(q.ctx.ModalStack, "Queue entry", []modals.MenuEntry{
		{Label: "Play", Choose: func() { q.handleQueueAction(action.QueuePlaySelected) }},
		{Label: "Remove from queue", Choose: func() { q.handleQueueAction(action.QueueRemoveSelected) }},
		{Label: "Show info", Choose: q.showSelectedInfo},
	}))
}

func (q *Queue) OnEvent(sub tm.Subsystem) {
	if sub == tm.SubsystemPlaylist {
		songs, err := q.ctx.Client.PlaylistInfo()
		if err != nil {
			log.Error().Err(err).Msg("queue: refresh playlistinfo")

			return
		}

		q.ctx.Queue = songs
		q.list.clampCursor(len(songs))
	}
}
