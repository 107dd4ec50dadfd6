package panes

import (
	"strings"

	"github.com/rs/zerolog/log"

	"mpctui/internal/action"
	"mpctui/internal/config"
	tm "mpctui/internal/mpd"
	"mpctui/internal/modals"
	"mpctui/internal/uimodel"
)

// tagHierarchies maps a browser's configured root_tag to the sequence of
// MPD tags drilled through before reaching a song listing.
var tagHierarchies = map[string][]string{
	"artist":       {"artist", "album"},
	"album_artist": {"albumartist", "album"},
	"album":        {"album"},
	"genre":        {"genre", "artist", "album"},
}

// browserCrumb is one level the user has drilled into: the tag that was
// listed and the value picked from it.
type browserCrumb struct {
	tag   string
	value string
}

// Browser lists directories, or artists/albums/genres one tag at a time,
// narrowing by the chosen value at each level until it lists matching
// songs. root_tag (from PaneParams) selects which hierarchy or "directory"
// for a plain filesystem walk. Every level change issues a query through
// the shared scheduler rather than blocking the render loop.
type Browser struct {
	uimodel.BasePane

	ctx    *uimodel.Ctx
	id     string
	rootTag string
	hierarchy []string

	crumbs []browserCrumb

	tagItems []string
	dirItems []dirEntry
	songs    []tm.Song
	atSongs  bool

	list    cursorList
	loading bool
}

type dirEntry struct {
	name  string
	isDir bool
	song  tm.Song
}

func NewBrowser(ref string, params config.PaneParams, ctx *uimodel.Ctx) *Browser {
	b := &Browser{
		ctx:     ctx,
		id:      ref,
		rootTag: params.RootTag,
		list:    newCursorList(),
	}

	if h, ok := tagHierarchies[b.rootTag]; ok {
		b.hierarchy = h
	}

	b.reload()

	return b
}

func (b *Browser) BeforeShow() {
	if b.dirItems == nil && b.tagItems == nil && b.songs == nil && !b.loading {
		b.reload()
	}
}

// reload issues the query for the current level (depth = len(b.crumbs)).
func (b *Browser) reload() {
	b.loading = true

	if b.rootTag == "directory" {
		dir := b.currentDir()

		b.ctx.Queries.Issue(uimodel.QueryKey{Originator: b.id, ID: "list"}, func() (any, error) {
			return b.ctx.Client.ListAllInfo(dir)
		})

		return
	}

	depth := len(b.crumbs)

	if depth >= len(b.hierarchy) {
		args := b.findArgs()

		b.ctx.Queries.Issue(uimodel.QueryKey{Originator: b.id, ID: "songs"}, func() (any, error) {
			return b.ctx.Client.Find(args...)
		})

		return
	}

	tag := b.hierarchy[depth]
	args := b.findArgs()

	b.ctx.Queries.Issue(uimodel.QueryKey{Originator: b.id, ID: "tags"}, func() (any, error) {
		return b.ctx.Client.ListTags(tag, args...)
	})
}

func (b *Browser) findArgs() []string {
	args := make([]string, 0, len(b.crumbs)*2)
	for _, c := range b.crumbs {
		args = append(args, c.tag, c.value)
	}

	return args
}

func (b *Browser) currentDir() string {
	if len(b.crumbs) == 0 {
		return ""
	}

	return b.crumbs[len(b.crumbs)-1].value
}

func (b *Browser) OnQueryFinished(q uimodel.QueryResult) {
	b.loading = false

	if q.Err != nil {
		log.Error().Err(q.Err).Str("pane", b.id).Msg("browser: query failed")

		return
	}

	switch q.Key.ID {
	case "tags":
		b.tagItems, _ = q.Value.([]string)
		b.dirItems = nil
		b.songs = nil
		b.atSongs = false
	case "songs":
		b.songs, _ = q.Value.([]tm.Song)
		b.tagItems = nil
		b.dirItems = nil
		b.atSongs = true
	case "list":
		all, _ := q.Value.([]tm.Song)
		b.dirItems = directChildren(all, b.currentDir())
		b.tagItems = nil
		b.songs = nil
		b.atSongs = false
	}

	b.list.cursor = 0
	b.list.offset = 0
}

// directChildren reduces a full ListAllInfo(dir) result to the immediate
// children of dir: one collapsed directory entry per distinct next path
// segment, plus any song directly inside dir.
func directChildren(all []tm.Song, dir string) []dirEntry {
	seen := map[string]bool{}

	var out []dirEntry

	for _, s := range all {
		rel := strings.TrimPrefix(s.File, dir)
		rel = strings.TrimPrefix(rel, "/")

		parts := strings.SplitN(rel, "/", 2)
		if len(parts) == 2 {
			if !seen[parts[0]] {
				seen[parts[0]] = true

				out = append(out, dirEntry{name: parts[0], isDir: true})
			}

			continue
		}

		out = append(out, dirEntry{name: parts[0], song: s})
	}

	return out
}

func (b *Browser) rowCount() int {
	switch {
	case b.rootTag == "directory":
		return len(b.dirItems)
	case b.atSongs:
		return len(b.songs)
	default:
		return len(b.tagItems)
	}
}

func (b *Browser) Render() string {
	if b.loading {
		return "loading..."
	}

	n := b.rowCount()
	start, end := b.list.visibleWindow(n, b.Area.H)

	rows := make([]string, n)

	switch {
	case b.rootTag == "directory":
		for i := start; i < end; i++ {
			e := b.dirItems[i]
			if e.isDir {
				rows[i] = e.name + "/"
			} else {
				title, ok := e.song.Tag("title")
				if !ok {
					title = e.name
				}

				rows[i] = title
			}
		}
	case b.atSongs:
		for i := start; i < end; i++ {
			title, ok := b.songs[i].Tag("title")
			if !ok {
				title = b.songs[i].File
			}

			rows[i] = title
		}
	default:
		for i := start; i < end; i++ {
			rows[i] = b.tagItems[i]
		}
	}

	if end <= start {
		return ""
	}

	return renderRows(rows, start, end, b.list.cursor, b.list.marks, b.Area.W)
}

func (b *Browser) HandleAction(e *action.Event) {
	c, ok := e.ClaimCommon()
	if !ok {
		return
	}

	n := b.rowCount()

	switch c.Action {
	case action.Up:
		b.list.moveBy(-1, n)
	case action.Down:
		b.list.moveBy(1, n)
	case action.PageUp:
		b.list.moveBy(-b.Area.H, n)
	case action.PageDown:
		b.list.moveBy(b.Area.H, n)
	case action.Top:
		b.list.moveTop()
	case action.Bottom:
		b.list.moveBottom(n)
	case action.Right, action.Confirm:
		b.drillDown()
	case action.Left:
		b.drillUp()
	case action.Add:
		b.addSelectionToQueue(false)
	case action.AddAll:
		b.addSelectionToQueue(true)
	case action.Select:
		b.list.toggleMark()
	case action.InvertSelection:
		b.list.invertMarks(n)
	case action.ShowInfo:
		b.showSelectedInfo()
	case action.ContextMenu:
		b.openContextMenu()
	case action.CopyToClipboard:
		copySongToClipboard(b.selectedSong(), c.ClipboardKind)
	case action.Rate:
		cycleRating(b.ctx.Client, b.selectedSong(), c)
	default:
		e.Abandon()
	}
}

// selectedSong returns the song under the cursor, or nil when the cursor is
// on a directory or tag-value row rather than a leaf song.
func (b *Browser) selectedSong() *tm.Song {
	switch {
	case b.rootTag == "directory":
		if b.list.cursor < 0 || b.list.cursor >= len(b.dirItems) {
			return nil
		}

		e := b.dirItems[b.list.cursor]
		if e.isDir {
			return nil
		}

		return &e.song
	case b.atSongs:
		if b.list.cursor < 0 || b.list.cursor >= len(b.songs) {
			return nil
		}

		return &b.songs[b.list.cursor]
	default:
		return nil
	}
}

func (b *Browser) showSelectedInfo() {
	if b.ctx.Modals == nil {
		return
	}

	b.ctx.ModalStack.Push(b.ctx.Modals.SongInfo("Song info", songInfoRows(b.selectedSong())))
}

func (b *Browser) openContextMenu() {
	entries := []modals.MenuEntry{
		{Label: "Add to queue", Choose: func() { b.addSelectionToQueue(false) }},
		{Label: "Add all to queue", Choose: func() { b.addSelectionToQueue(true) }},
	}

	if b.selectedSong() != nil {
		entries = append(entries, modals.MenuEntry{Label: "Show info", Choose: b.showSelectedInfo})
	}

	b.ctx.ModalStack.Push(modals.NewMenu(b.ctx.ModalStack, "Browser", entries))
}

func (b *Browser) drillDown() {
	if b.rootTag == "directory" {
		if b.list.cursor < 0 || b.list.cursor >= len(b.dirItems) {
			return
		}

		e := b.dirItems[b.list.cursor]
		if !e.isDir {
			return
		}

		joined := e.name
		if dir := b.currentDir(); dir != "" {
			joined = dir + "/" + e.name
		}

		b.crumbs = append(b.crumbs, browserCrumb{tag: "directory", value: joined})
		b.reload()

		return
	}

	if b.atSongs {
		return
	}

	if b.list.cursor < 0 || b.list.cursor >= len(b.tagItems) {
		return
	}

	depth := len(b.crumbs)
	if depth >= len(b.hierarchy) {
		return
	}

	b.crumbs = append(b.crumbs, browserCrumb{tag: b.hierarchy[depth], value: b.tagItems[b.list.cursor]})
	b.reload()
}

func (b *Browser) drillUp() {
	if len(b.crumbs) == 0 {
		return
	}

	b.crumbs = b.crumbs[:len(b.crumbs)-1]
	b.reload()
}

func (b *Browser) addSelectionToQueue(all bool) {
	var uris []string

	switch {
	case b.rootTag == "directory" && b.list.cursor < len(b.dirItems):
		if !all {
			e := b.dirItems[b.list.cursor]
			if !e.isDir {
				uris = []string{e.song.File}
			}
		}
	case b.atSongs:
		if all {
			for _, s := range b.songs {
				uris = append(uris, s.File)
			}
		} else if b.list.cursor < len(b.songs) {
			uris = []string{b.songs[b.list.cursor].File}
		}
	}

	for _, uri := range uris {
		if err := b.ctx.Client.Add(uri); err != nil {
			log.Error().Err(err).Str("uri", uri).Msg("browser: add to queue")
		}
	}
}

func (b *Browser) OnEvent(sub tm.Subsystem) {
	if sub == tm.SubsystemDatabase {
		b.reload()
	}
}
