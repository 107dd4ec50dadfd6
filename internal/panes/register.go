package panes

import (
	"mpctui/internal/config"
	"mpctui/internal/uimodel"
)

// RegisterBuiltins installs a Factory for every config.PaneKind into r. The
// cmd package calls this once at startup before uimodel.NewCtx instantiates
// any tab's layout tree.
func RegisterBuiltins(r *uimodel.Registry) {
	r.Register(config.PaneQueue, func(ref string, params config.PaneParams, c *uimodel.Ctx) (uimodel.Pane, error) {
		return NewQueue(c), nil
	})

	r.Register(config.PaneBrowser, func(ref string, params config.PaneParams, c *uimodel.Ctx) (uimodel.Pane, error) {
		return NewBrowser(ref, params, c), nil
	})

	r.Register(config.PanePlaylists, func(ref string, params config.PaneParams, c *uimodel.Ctx) (uimodel.Pane, error) {
		return NewPlaylists(ref, c), nil
	})

	r.Register(config.PaneSearch, func(ref string, params config.PaneParams, c *uimodel.Ctx) (uimodel.Pane, error) {
		return NewSearch(ref, c), nil
	})

	r.Register(config.PaneAlbumArt, func(ref string, params config.PaneParams, c *uimodel.Ctx) (uimodel.Pane, error) {
		return NewAlbumArt(c), nil
	})

	r.Register(config.PaneLyrics, func(ref string, params config.PaneParams, c *uimodel.Ctx) (uimodel.Pane, error) {
		return NewLyrics(c), nil
	})

	r.Register(config.PaneProgressBar, func(ref string, params config.PaneParams, c *uimodel.Ctx) (uimodel.Pane, error) {
		return NewProgressBar(c), nil
	})

	r.Register(config.PaneHeader, func(ref string, params config.PaneParams, c *uimodel.Ctx) (uimodel.Pane, error) {
		return NewHeader(c, params.Template), nil
	})

	r.Register(config.PaneTabs, func(ref string, params config.PaneParams, c *uimodel.Ctx) (uimodel.Pane, error) {
		return NewTabs(c), nil
	})

	r.Register(config.PaneFrameCount, func(ref string, params config.PaneParams, c *uimodel.Ctx) (uimodel.Pane, error) {
		return NewFrameCount(c), nil
	})

	r.Register(config.PaneVolume, func(ref string, params config.PaneParams, c *uimodel.Ctx) (uimodel.Pane, error) {
		return NewVolume(c), nil
	})

	r.Register(config.PaneProperty, func(ref string, params config.PaneParams, c *uimodel.Ctx) (uimodel.Pane, error) {
		return NewProperty(c, params.Template), nil
	})

	r.Register(config.PaneCava, func(ref string, params config.PaneParams, c *uimodel.Ctx) (uimodel.Pane, error) {
		return NewCava(c.Config.CavaFIFO), nil
	})

	r.Register(config.PaneLogs, func(ref string, params config.PaneParams, c *uimodel.Ctx) (uimodel.Pane, error) {
		return NewLogs(), nil
	})
}
