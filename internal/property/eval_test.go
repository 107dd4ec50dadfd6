package property

import (
	"testing"

	"mpctui/internal/mpd"
	"mpctui/internal/style"
)

func TestFormatterFallback(t *testing.T) {
	// A tree whose only leaf (song title) resolves to None against a song
	// with no title tag must fall back to its Default.
	n := Node{
		Kind: NodeProperty,
		Leaf: Leaf{Kind: LeafSong, Song: SongTitle},
	}.WithDefault(Text("untitled"))

	song := &mpd.Song{Tags: map[string][]string{}}

	got := Eval(n, song, mpd.Status{}, Context{})
	if got.String() != "untitled" {
		t.Fatalf("got %q, want fallback %q", got.String(), "untitled")
	}
}

func TestFormatterFallbackNoneWhenNoDefault(t *testing.T) {
	n := Node{Kind: NodeProperty, Leaf: Leaf{Kind: LeafSong, Song: SongTitle}}
	song := &mpd.Song{Tags: map[string][]string{}}

	got := Eval(n, song, mpd.Status{}, Context{})
	if got.OK {
		t.Fatalf("expected None, got %q", got.String())
	}
}

func TestFormatterGrouping(t *testing.T) {
	g := Node{Kind: NodeGroup, Children: []Node{
		Text("a"), Text("b"), Text("c"),
	}}

	got := Eval(g, nil, mpd.Status{}, Context{})
	if got.String() != "abc" {
		t.Fatalf("got %q, want %q", got.String(), "abc")
	}
}

func TestFormatterGroupAnyNoneMakesGroupNone(t *testing.T) {
	g := Node{Kind: NodeGroup, Children: []Node{
		Text("a"),
		{Kind: NodeProperty, Leaf: Leaf{Kind: LeafSong, Song: SongTitle}},
	}}

	song := &mpd.Song{}

	got := Eval(g, song, mpd.Status{}, Context{})
	if got.OK {
		t.Fatalf("expected group to resolve to None, got %q", got.String())
	}
}

func TestFormatFallbackChain_ScenarioC(t *testing.T) {
	// $track{fg:red}|$file against a song missing track: expected
	// resolved fragment is song.file styled with the *default* style
	// (the {fg:red} only applies to the primary).
	red, _ := style.ParseColor("red")

	primary := Node{
		Kind: NodeProperty,
		Leaf: Leaf{Kind: LeafSong, Song: SongTrack},
	}.WithStyle(style.Spec{Fg: red})

	fallback := Node{Kind: NodeProperty, Leaf: Leaf{Kind: LeafSong, Song: SongFile}}
	primary = primary.WithDefault(fallback)

	song := &mpd.Song{File: "song.flac", Tags: map[string][]string{}}

	got := Eval(primary, song, mpd.Status{}, Context{})
	if got.String() != "song.flac" {
		t.Fatalf("got %q, want %q", got.String(), "song.flac")
	}

	if len(got.Frags) != 1 || got.Frags[0].Style.Fg.IsSet() {
		t.Fatalf("expected fallback fragment with no color, got %+v", got.Frags)
	}
}

func TestReplaceTransform_ScenarioD(t *testing.T) {
	content := Node{Kind: NodeProperty, Leaf: Leaf{Kind: LeafStatus, Status: StatusState}}

	repl := Node{
		Kind: NodeReplace,
		Content: &content,
		Replacements: map[string]Node{
			"playing": Text("▶"),
			"paused":  Text("⏸"),
		},
	}

	got := Eval(repl, nil, mpd.Status{State: mpd.StatePlaying}, Context{})
	if got.String() != "▶" {
		t.Fatalf("playing: got %q", got.String())
	}

	got = Eval(repl, nil, mpd.Status{State: mpd.StateStopped}, Context{})
	if got.String() != "stopped" {
		t.Fatalf("stopped (unmapped): got %q, want literal state string", got.String())
	}
}

func TestTruncateIdempotence(t *testing.T) {
	content := Text("hello world")

	full := Node{Kind: NodeTruncate, Content: &content, Length: len("hello world")}
	if got := Eval(full, nil, mpd.Status{}, Context{}).String(); got != "hello world" {
		t.Fatalf("truncate(c, len(s)) = %q, want unchanged", got)
	}

	empty := Node{Kind: NodeTruncate, Content: &content, Length: 0}
	if got := Eval(empty, nil, mpd.Status{}, Context{}).String(); got != "" {
		t.Fatalf("truncate(c, 0) = %q, want empty", got)
	}
}

func TestTruncateFromEnd(t *testing.T) {
	content := Node{Kind: NodeGroup, Children: []Node{
		Text("abc"),
		Text("def"),
	}}

	tr := Node{Kind: NodeTruncate, Content: &content, Length: 4, FromStart: false}
	if got := Eval(tr, nil, mpd.Status{}, Context{}).String(); got != "abcd" {
		t.Fatalf("got %q, want %q", got, "abcd")
	}

	trStart := Node{Kind: NodeTruncate, Content: &content, Length: 4, FromStart: true}
	if got := Eval(trStart, nil, mpd.Status{}, Context{}).String(); got != "cdef" {
		t.Fatalf("got %q, want %q", got, "cdef")
	}
}

func TestStatusSingleConsumeLeaves(t *testing.T) {
	single := Node{Kind: NodeProperty, Leaf: Leaf{Kind: LeafStatus, Status: StatusSingle}}
	consume := Node{Kind: NodeProperty, Leaf: Leaf{Kind: LeafStatus, Status: StatusConsume}}

	st := mpd.Status{Single: mpd.TriOneShot, Consume: mpd.TriOn}

	if got := Eval(single, nil, st, Context{}).String(); got != "oneshot" {
		t.Fatalf("single: got %q, want %q", got, "oneshot")
	}

	if got := Eval(consume, nil, st, Context{}).String(); got != "on" {
		t.Fatalf("consume: got %q, want %q", got, "on")
	}
}
