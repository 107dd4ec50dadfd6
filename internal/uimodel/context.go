// ABOUTME: Central context: the one mutable struct every pane, modal, and
// ABOUTME: the event loop itself read and mutate through, passed by pointer

package uimodel

import (
	"mpctui/internal/action"
	"mpctui/internal/config"
	"mpctui/internal/keyseq"
	"mpctui/internal/mpd"
	"mpctui/internal/property"
	"mpctui/internal/workerpool"
)

// Ctx is the single shared mutable state container. Every pane and modal is
// constructed with a pointer to it rather than copies of the pieces it
// needs, so a status update delivered by the event loop is immediately
// visible everywhere without an explicit broadcast step. This mirrors the
// teacher's central-context pattern (a pointer threaded through
// constructors rather than duplicated fields) generalized from genetic
// algorithm run state to UI session state.
type Ctx struct {
	Config *config.Config

	Client mpd.Client
	Pool   *workerpool.Pool
	Queries *Scheduler

	Registry   *Registry
	ModalStack *ModalStack

	// Modals builds the built-in modals (keybind help, add-random, outputs,
	// decoders, song info, command entry). It's satisfied by
	// internal/modals.Factory and wired in by main, which can import both
	// packages without uimodel itself depending on modals.
	Modals ModalFactory

	Status      mpd.Status
	CurrentSong *mpd.Song
	Queue       []mpd.Song

	Scopes map[string]*keyseq.Map

	PropertyCtx property.Context

	ActiveTab int
	Tabs      []Tab

	Frame int
}

// Tab is one instantiated top-level tab: its declared name and the live
// panes its layout tree resolved to.
type Tab struct {
	Name  string
	Root  config.SizedPaneOrSplit
	Panes map[string]Pane // keyed by layout reference string
}

// NewCtx builds the context's static pieces (config, client, pool,
// registry) and instantiates every tab's panes from cfg.Tabs. It does not
// start the event loop.
func NewCtx(cfg *config.Config, client mpd.Client, registry *Registry) (*Ctx, error) {
	pool := workerpool.New(0, 64)

	c := &Ctx{
		Config:     cfg,
		Client:     client,
		Pool:       pool,
		Queries:    NewScheduler(pool),
		Registry:   registry,
		ModalStack: NewModalStack(),
		Scopes:     map[string]*keyseq.Map{},
	}

	maps, err := config.ComposeAll(cfg.Keys)
	if err != nil {
		return nil, err
	}

	if err := action.ResolveScopes(maps); err != nil {
		return nil, err
	}

	c.Scopes = maps

	c.PropertyCtx = property.Context{
		Stickers: mpd.StickerLookupFunc(client),
		VolStep:  cfg.VolumeStep,
	}

	for _, tabDef := range cfg.Tabs {
		tab := Tab{Name: tabDef.Name, Root: tabDef.Root, Panes: map[string]Pane{}}

		for _, leaf := range Compute(tabDef.Root, Area{}) {
			pane, err := registry.Build(leaf.Ref, cfg, c)
			if err != nil {
				return nil, err
			}

			tab.Panes[leaf.Ref] = pane
		}

		c.Tabs = append(c.Tabs, tab)
	}

	return c, nil
}

// ActiveTabLayout resolves the currently active tab's panes against area.
func (c *Ctx) ActiveTabLayout(area Area) []Leaf {
	if c.ActiveTab < 0 || c.ActiveTab >= len(c.Tabs) {
		return nil
	}

	return Compute(c.Tabs[c.ActiveTab].Root, area)
}

// Close releases background resources (worker pool, daemon connection).
func (c *Ctx) Close() {
	c.Pool.Close()
	c.Client.Close()
}
