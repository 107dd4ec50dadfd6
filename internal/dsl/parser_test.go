package dsl

import (
	"testing"

	"mpctui/internal/mpd"
	"mpctui/internal/property"
)

func TestParseTextLiteral(t *testing.T) {
	n, err := Parse(`"hello\nworld"`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	got := property.Eval(n, nil, mpd.Status{}, property.Context{}).String()
	if got != "hello\nworld" {
		t.Fatalf("got %q", got)
	}
}

func TestParseGroupConcatenation(t *testing.T) {
	n, err := Parse(`["a" "b" "c"]`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	got := property.Eval(n, nil, mpd.Status{}, property.Context{}).String()
	if got != "abc" {
		t.Fatalf("got %q, want abc", got)
	}
}

func TestParsePropertyWithFallback_ScenarioC(t *testing.T) {
	n, err := Parse(`$track{fg:red}|$file`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	song := &mpd.Song{File: "song.flac", Tags: map[string][]string{}}

	res := property.Eval(n, song, mpd.Status{}, property.Context{})
	if res.String() != "song.flac" {
		t.Fatalf("got %q", res.String())
	}

	if len(res.Frags) != 1 || res.Frags[0].Style.Fg.IsSet() {
		t.Fatalf("fallback fragment should carry no inline color, got %+v", res.Frags)
	}
}

func TestParseReplaceTransform_ScenarioD(t *testing.T) {
	n, err := Parse(`%replace(content: $state, replacements: {"playing": "play", "paused": "pause"})`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	got := property.Eval(n, nil, mpd.Status{State: mpd.StatePlaying}, property.Context{}).String()
	if got != "play" {
		t.Fatalf("got %q", got)
	}
}

func TestParseTruncateTransform(t *testing.T) {
	n, err := Parse(`%truncate(content: "hello world", length: 5, from_start: false)`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	got := property.Eval(n, nil, mpd.Status{}, property.Context{}).String()
	if got != "hello" {
		t.Fatalf("got %q", got)
	}
}

func TestParseErrorReportsByteOffset(t *testing.T) {
	_, err := Parse(`"ab"$nope_not_a_real_property`)
	if err == nil {
		t.Fatal("expected error for unknown property")
	}

	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}

	if pe.Pos != 4 {
		t.Errorf("expected byte offset 4 of the '$', got %d", pe.Pos)
	}
}

func TestParseUnterminatedGroupReportsError(t *testing.T) {
	_, err := Parse(`[$title`)
	if err == nil {
		t.Fatal("expected error for unterminated group")
	}
}

func TestParseStickerNode(t *testing.T) {
	n, err := Parse(`$sticker(name: "rating")`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if n.Kind != property.NodeSticker || n.StickerName != "rating" {
		t.Fatalf("got %+v", n)
	}
}
