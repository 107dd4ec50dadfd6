package mpd

// RatingStickerName is the sticker key used for the supplemented
// sticker-backed rating feature.
const RatingStickerName = "rating"

// StickerLookupFunc adapts a Client into the narrow lookup signature
// internal/property.Context.Stickers expects, so the evaluator never
// depends on the daemon client directly. Callers are expected to wrap this
// with their own caching: every format-string evaluation would otherwise
// issue a sticker round trip per song per render frame.
func StickerLookupFunc(c Client) func(song *Song, key string) (string, bool) {
	return func(song *Song, key string) (string, bool) {
		if song == nil {
			return "", false
		}

		v, err := c.StickerGet("song", song.File, key)
		if err != nil || v == "" {
			return "", false
		}

		return v, true
	}
}
