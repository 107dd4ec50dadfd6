package panes

import (
	"github.com/rs/zerolog/log"

	"mpctui/internal/imagery"
	tm "mpctui/internal/mpd"
	"mpctui/internal/uimodel"
)

// assumedCellPx is the fallback terminal cell pixel size used to convert a
// pane's cell-based Area into the pixel budget the image layout engine
// needs; real cell pixel dimensions aren't queryable without a terminal
// round trip, so this mirrors common monospace font metrics (the 10x20
// figure used in the layout engine's own worked example).
const (
	assumedCellPxW = 10
	assumedCellPxH = 20
	maxImagePx     = 1200
)

// AlbumArt displays the current song's cover art using whichever terminal
// image protocol imagery.Detect found, refetching whenever the current
// song's file changes.
type AlbumArt struct {
	uimodel.BasePane

	ctx     *uimodel.Ctx
	backend imagery.Backend

	forFile string
	loading bool
	decoded string // pre-rendered escape sequence / block art for the last fetched art
}

func NewAlbumArt(ctx *uimodel.Ctx) *AlbumArt {
	return &AlbumArt{ctx: ctx, backend: imagery.Resolve(ctx.Config.Theme.AlbumArt)}
}

func (a *AlbumArt) Render() string {
	if a.backend == imagery.BackendNone {
		return ""
	}

	song := a.ctx.CurrentSong
	if song == nil {
		return ""
	}

	if song.File != a.forFile && !a.loading {
		a.fetch(song.File)
	}

	return a.decoded
}

func (a *AlbumArt) fetch(file string) {
	a.loading = true
	a.forFile = file

	a.ctx.Queries.Issue(uimodel.QueryKey{Originator: "album_art", ID: file}, func() (any, error) {
		data, err := a.ctx.Client.ReadPicture(file)
		if (err != nil || len(data) == 0) && err == nil {
			data, err = a.ctx.Client.AlbumArt(file)
		}

		return data, err
	})
}

func (a *AlbumArt) OnQueryFinished(q uimodel.QueryResult) {
	if q.Key.Originator != "album_art" {
		return
	}

	a.loading = false

	if q.Err != nil {
		log.Debug().Err(q.Err).Msg("albumart: fetch failed")

		return
	}

	data, _ := q.Value.([]byte)
	if len(data) == 0 {
		a.decoded = ""

		return
	}

	img, err := imagery.Decode(data)
	if err != nil {
		log.Warn().Err(err).Msg("albumart: decode failed")

		return
	}

	bounds := img.Bounds()
	placement := imagery.CreateAlignedArea(
		bounds.Dx(), bounds.Dy(), a.Area.W, a.Area.H,
		assumedCellPxW, assumedCellPxH, maxImagePx, maxImagePx,
		imagery.AlignCenter,
	)

	seq, err := imagery.Render(a.backend, img, placement.ClampedCols, placement.ClampedRows)
	if err != nil {
		log.Warn().Err(err).Msg("albumart: render failed")

		return
	}

	a.decoded = seq
}

func (a *AlbumArt) OnEvent(sub tm.Subsystem) {}
