package panes

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"mpctui/internal/lyricsindex"
	tm "mpctui/internal/mpd"
	"mpctui/internal/uimodel"
)

var activeLyricStyle = lipgloss.NewStyle().Bold(true).Reverse(true)

// Lyrics shows an LRC file's lines synced to the current song's elapsed
// time, loaded from <LyricsDir>/<file-without-ext>.lrc beside the queue
// entry being played.
type Lyrics struct {
	uimodel.BasePane

	ctx   *uimodel.Ctx
	index lyricsindex.Index

	forFile string
	lines   []lrcLine
	missing bool
}

func NewLyrics(ctx *uimodel.Ctx) *Lyrics {
	l := &Lyrics{ctx: ctx}

	if idx, err := lyricsindex.Load(filepath.Join(ctx.Config.CacheDir, "lyrics_index.json")); err == nil {
		l.index = idx
	}

	return l
}

// lyricsPath resolves song to an LRC file: the artist/title index built by
// the `indexlrc` CLI command first (handles LRC archives named after the
// printed song title rather than the file layout), falling back to the
// filename convention <LyricsDir>/<file-without-ext>.lrc.
func (l *Lyrics) lyricsPath(song *tm.Song) string {
	if l.index != nil {
		artist, _ := song.Tag("artist")
		title, _ := song.Tag("title")

		if p, ok := l.index.Lookup(artist, title); ok {
			return p
		}
	}

	base := strings.TrimSuffix(filepath.Base(song.File), filepath.Ext(song.File))

	return filepath.Join(l.ctx.Config.LyricsDir, base+".lrc")
}

func (l *Lyrics) Render() string {
	song := l.ctx.CurrentSong
	if song == nil {
		return ""
	}

	if song.File != l.forFile {
		l.load(song)
	}

	if l.missing {
		return lipgloss.NewStyle().Faint(true).Render("no lyrics found")
	}

	if len(l.lines) == 0 {
		return ""
	}

	active := activeLine(l.lines, l.ctx.Status.Elapsed)

	var sb strings.Builder

	for i, ln := range l.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}

		if i == active {
			sb.WriteString(activeLyricStyle.Render(ln.Text))
		} else {
			sb.WriteString(ln.Text)
		}
	}

	return sb.String()
}

func (l *Lyrics) load(song *tm.Song) {
	l.forFile = song.File

	path := l.lyricsPath(song)

	data, err := os.ReadFile(path)
	if err != nil {
		l.missing = true
		l.lines = nil

		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("lyrics: read failed")
		}

		return
	}

	l.missing = false
	l.lines = parseLRC(string(data), l.ctx.Config.LyricsOffset())
}

func (l *Lyrics) OnEvent(sub tm.Subsystem) {}
