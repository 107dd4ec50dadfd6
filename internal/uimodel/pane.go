// ABOUTME: Pane lifecycle interface: every tab leaf implements this to
// ABOUTME: participate in layout, rendering, and action/event dispatch

package uimodel

import (
	tea "github.com/charmbracelet/bubbletea"

	"mpctui/internal/action"
	"mpctui/internal/mpd"
)

// Area is a pane's allotted screen rectangle in cells, computed by the
// layout engine from its parent split's direction and size percentages.
type Area struct {
	X, Y, W, H int
}

// Pane is implemented by every leaf of a tab's layout tree: the queue,
// library browsers, playlists, search, album art, lyrics, and the small
// status widgets (progress bar, header, tabs, volume, frame count).
//
// Lifecycle: BeforeShow is called on the panes of a newly active tab; the
// event loop does not call OnHide. Resize is called whenever the layout
// engine recomputes this pane's Area (on terminal resize or tab switch).
// Render produces the pane's content for its last-assigned Area; some panes
// also start a lazy load or adjust their scroll offset while rendering.
type Pane interface {
	// BeforeShow prepares state for the pane becoming visible (first paint
	// since its tab was entered).
	BeforeShow()
	// OnHide releases anything that only makes sense while visible (e.g. an
	// open search input).
	OnHide()

	// Resize records a and recomputes any area-dependent state (column
	// widths, visible row count). Called before the next Render.
	Resize(a Area)
	// Render draws the pane's last-assigned area.
	Render() string

	// HandleAction attempts to claim and act on e. A pane that doesn't
	// recognize any of e's candidate actions must leave it unclaimed.
	HandleAction(e *action.Event)
	// HandleMouseEvent reports whether it claimed the mouse event.
	HandleMouseEvent(msg tea.MouseMsg) bool
	// HandleInsertMode is only called while a modal or pane-owned text input
	// has focus; it reports whether it consumed the keystroke as text input
	// rather than a binding.
	HandleInsertMode(msg tea.KeyMsg) bool

	// OnEvent notifies the pane a daemon subsystem changed, so it can
	// invalidate cached data and issue a refresh query.
	OnEvent(sub mpd.Subsystem)
	// OnQueryFinished delivers the result of a query this pane previously
	// issued through the scheduler.
	OnQueryFinished(q QueryResult)
}

// BasePane implements every Pane method as a no-op so concrete panes can
// embed it and override only what they need, matching the teacher's
// adapter-interface pattern of small, mostly-empty default implementations.
type BasePane struct {
	Area Area
}

func (b *BasePane) BeforeShow()                              {}
func (b *BasePane) OnHide()                                  {}
func (b *BasePane) Resize(a Area)                             { b.Area = a }
func (b *BasePane) HandleAction(e *action.Event)              {}
func (b *BasePane) HandleMouseEvent(msg tea.MouseMsg) bool    { return false }
func (b *BasePane) HandleInsertMode(msg tea.KeyMsg) bool      { return false }
func (b *BasePane) OnEvent(sub mpd.Subsystem)                 {}
func (b *BasePane) OnQueryFinished(q QueryResult)             {}
