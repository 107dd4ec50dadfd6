package lyricsindex

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.json")

	entries := []Entry{
		{Artist: "Boards of Canada", Title: "Roygbiv", Path: "/lyrics/bg.lrc"},
	}

	if err := Save(path, entries); err != nil {
		t.Fatalf("Save: %v", err)
	}

	idx, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	p, ok := idx.Lookup("boards of canada", "ROYGBIV")
	if !ok || p != "/lyrics/bg.lrc" {
		t.Fatalf("Lookup case/whitespace-insensitive: got (%q,%v)", p, ok)
	}

	if _, ok := idx.Lookup("nobody", "nothing"); ok {
		t.Fatalf("unexpected hit for unindexed pair")
	}
}

func TestBuildSkipsUntaggableFiles(t *testing.T) {
	lib := t.TempDir()
	lyrics := t.TempDir()

	if err := os.WriteFile(filepath.Join(lyrics, "track.lrc"), []byte("[00:00.00]hi\n"), 0o644); err != nil {
		t.Fatalf("write lrc: %v", err)
	}

	// Build() skips files it can't parse tags from (including this
	// placeholder, which is not a real audio container); confirm it
	// degrades to an empty, non-error result rather than failing the walk.
	if err := os.WriteFile(filepath.Join(lib, "track.mp3"), []byte("not real audio"), 0o644); err != nil {
		t.Fatalf("write fake audio: %v", err)
	}

	entries, err := Build(lib, lyrics)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(entries) != 0 {
		t.Fatalf("expected no entries for untaggable files, got %d", len(entries))
	}
}
