// ABOUTME: Shared helper: parse-once, evaluate-per-render template support

// Package panes implements every leaf of a tab's layout tree: the queue,
// library browsers, playlists, search, album art, lyrics, and the small
// status widgets. Each pane is grounded on the teacher's adapter-interface
// style (small structs implementing a narrow lifecycle interface). List
// panes scroll through the shared cursorList; the logs pane uses the
// bubbles viewport component.
package panes

import (
	"mpctui/internal/dsl"
	"mpctui/internal/mpd"
	"mpctui/internal/property"
)

// compiledTemplate parses a format string once and re-evaluates it cheaply
// per render, since property.Eval is pure and fast but dsl.Parse walks the
// whole grammar.
type compiledTemplate struct {
	src  string
	node property.Node
	err  error
}

func compileTemplate(src string) compiledTemplate {
	node, err := dsl.Parse(src)

	return compiledTemplate{src: src, node: node, err: err}
}

// Render evaluates the compiled template, returning the plain concatenated
// text. A parse error (already logged at config load time) degrades to the
// literal source so a broken template never blanks the whole pane.
func (t compiledTemplate) Render(song *mpd.Song, status mpd.Status, ctx property.Context) string {
	if t.err != nil {
		return t.src
	}

	return property.Eval(t.node, song, status, ctx).String()
}

// Fragments evaluates the compiled template and returns its styled
// fragments, for panes that render through lipgloss rather than plain text.
func (t compiledTemplate) Fragments(song *mpd.Song, status mpd.Status, ctx property.Context) []property.Fragment {
	if t.err != nil {
		return []property.Fragment{{Text: t.src}}
	}

	return property.Eval(t.node, song, status, ctx).Frags
}
