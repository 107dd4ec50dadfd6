// Package lyricsindex builds and serves an artist/title -> LRC file lookup,
// since an LRC file's name rarely matches the daemon's library path
// exactly (most publicly shared lyrics archives name files after the
// printed artist/title rather than the ripper's file layout). The index is
// built offline by reading each local audio file's own tags with
// dhowden/tag rather than asking the daemon, so it works against tracks
// the daemon hasn't necessarily scanned yet.
package lyricsindex

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Entry maps one (artist, title) pair to the LRC file found for it.
type Entry struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
	Path   string `json:"path"`
}

// key normalises an artist/title pair for case- and whitespace-insensitive
// lookup.
func key(artist, title string) string {
	return strings.ToLower(strings.TrimSpace(artist)) + "\x1f" + strings.ToLower(strings.TrimSpace(title))
}

// Index is the loaded lookup table, keyed by normalised artist/title.
type Index map[string]string

// Lookup returns the LRC path for (artist, title), if indexed.
func (idx Index) Lookup(artist, title string) (string, bool) {
	p, ok := idx[key(artist, title)]

	return p, ok
}

// Build walks libraryRoot for audio files, reads each one's artist/title
// tags, and for every audio file that has a same-named .lrc file
// somewhere under lyricsDir, records the mapping. Audio files whose tags
// can't be read are skipped, not fatal.
func Build(libraryRoot, lyricsDir string) ([]Entry, error) {
	lrcByBase := map[string]string{}

	err := filepath.Walk(lyricsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !strings.EqualFold(filepath.Ext(path), ".lrc") {
			return nil
		}

		base := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		lrcByBase[base] = path

		return nil
	})
	if err != nil {
		return nil, err
	}

	var entries []Entry

	walkErr := filepath.Walk(libraryRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		f, openErr := os.Open(path)
		if openErr != nil {
			return nil
		}
		defer f.Close()

		meta, tagErr := tag.ReadFrom(f)
		if tagErr != nil {
			return nil
		}

		artist := meta.Artist()
		title := meta.Title()

		if artist == "" || title == "" {
			return nil
		}

		base := strings.ToLower(filepath.Base(strings.TrimSuffix(path, filepath.Ext(path))))
		if lrc, ok := lrcByBase[base]; ok {
			entries = append(entries, Entry{Artist: artist, Title: title, Path: lrc})

			return nil
		}

		guess := strings.ToLower(artist + " - " + title)
		if lrc, ok := lrcByBase[guess]; ok {
			entries = append(entries, Entry{Artist: artist, Title: title, Path: lrc})
		}

		return nil
	})

	return entries, walkErr
}

// Save writes entries as JSON to path.
func Save(path string, entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Load reads an Index previously written by Save.
func Load(path string) (Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	idx := make(Index, len(entries))
	for _, e := range entries {
		idx[key(e.Artist, e.Title)] = e.Path
	}

	return idx, nil
}
