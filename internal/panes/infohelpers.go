package panes

import (
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"

	"mpctui/internal/action"
	tm "mpctui/internal/mpd"
)

// songInfoRows formats a song's tags into the line-per-tag layout the
// song-info modal expects. Mirrors the current-track variant the global
// action handler builds for ShowCurrentSongInfo, but for an arbitrary song
// picked from a pane's cursor.
func songInfoRows(song *tm.Song) []string {
	if song == nil {
		return []string{"no song selected"}
	}

	rows := []string{fmt.Sprintf("File: %s", song.File)}

	for tag, values := range song.Tags {
		for _, v := range values {
			rows = append(rows, fmt.Sprintf("%s: %s", tag, v))
		}
	}

	if song.HasDur {
		rows = append(rows, fmt.Sprintf("Duration: %s", song.Duration))
	}

	return rows
}

// copySongToClipboard writes the selected song's file path to the system
// clipboard, or its title when kind is "title". An empty/unrecognized kind
// falls back to the file path, which every song has.
func copySongToClipboard(song *tm.Song, kind string) {
	if song == nil {
		return
	}

	text := song.File

	if kind == "title" {
		if t, ok := song.Tag("title"); ok {
			text = t
		}
	}

	if err := clipboard.WriteAll(text); err != nil {
		log.Error().Err(err).Msg("clipboard: write")
	}
}

// cycleRating advances song's rating sticker by one, clearing it back to
// unrated once it passes ev.RateMax (5 when unset). MPD's sticker database
// only has a "song" type, so ev.RateKind doesn't change which sticker
// namespace is used, only that a rating applies to this particular file.
func cycleRating(client tm.Client, song *tm.Song, ev action.CommonEvent) {
	if song == nil {
		return
	}

	max := ev.RateMax
	if max <= 0 {
		max = 5
	}

	current, _ := client.StickerGet("song", song.File, tm.RatingStickerName)

	n, _ := strconv.Atoi(current)
	n++

	if n > max {
		if err := client.StickerDelete("song", song.File, tm.RatingStickerName); err != nil {
			log.Error().Err(err).Msg("rate: clear sticker")
		}

		return
	}

	if err := client.StickerSet("song", song.File, tm.RatingStickerName, strconv.Itoa(n)); err != nil {
		log.Error().Err(err).Msg("rate: set sticker")
	}
}
