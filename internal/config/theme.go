package config

import "fmt"

// BorderSet names the eight glyphs used to draw a bordered pane: four
// corners and four edges. A pane may instead declare Inherited=true to
// reuse whatever set its parent split uses, avoiding repetition in the
// common case of a uniform theme.
type BorderSet struct {
	Inherited bool `toml:"inherit"`

	TopLeft     string `toml:"top_left"`
	TopRight    string `toml:"top_right"`
	BottomLeft  string `toml:"bottom_left"`
	BottomRight string `toml:"bottom_right"`
	Top         string `toml:"top"`
	Bottom      string `toml:"bottom"`
	Left        string `toml:"left"`
	Right       string `toml:"right"`
}

// complete reports whether every non-inherited glyph field is populated.
func (b BorderSet) complete() bool {
	if b.Inherited {
		return true
	}

	return b.TopLeft != "" && b.TopRight != "" && b.BottomLeft != "" &&
		b.BottomRight != "" && b.Top != "" && b.Bottom != "" &&
		b.Left != "" && b.Right != ""
}

var builtinBorderSets = map[string]BorderSet{
	"single": {
		TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
		Top: "─", Bottom: "─", Left: "│", Right: "│",
	},
	"double": {
		TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝",
		Top: "═", Bottom: "═", Left: "║", Right: "║",
	},
	"rounded": {
		TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
		Top: "─", Bottom: "─", Left: "│", Right: "│",
	},
	"none": {
		TopLeft: " ", TopRight: " ", BottomLeft: " ", BottomRight: " ",
		Top: " ", Bottom: " ", Left: " ", Right: " ",
	},
}

// ResolveBorderSet looks up name among the builtin sets first, then the
// user's custom declarations, applying Inherited by substituting parent.
func ResolveBorderSet(name string, custom map[string]BorderSet, parent BorderSet) (BorderSet, error) {
	if name == "" {
		return parent, nil
	}

	if b, ok := builtinBorderSets[name]; ok {
		return b, nil
	}

	b, ok := custom[name]
	if !ok {
		return BorderSet{}, fmt.Errorf("config: unknown border set %q", name)
	}

	if b.Inherited {
		return parent, nil
	}

	if !b.complete() {
		return BorderSet{}, fmt.Errorf("config: border set %q is missing glyphs", name)
	}

	return b, nil
}

// ProgressBarTheme configures the playback progress bar's glyphs and
// colours.
type ProgressBarTheme struct {
	Filled   string `toml:"filled"`
	Thumb    string `toml:"thumb"`
	Empty    string `toml:"empty"`
	FgColor  string `toml:"fg"`
	BgColor  string `toml:"bg"`
}

// ScrollbarTheme configures the list scrollbar indicator.
type ScrollbarTheme struct {
	Track string `toml:"track"`
	Thumb string `toml:"thumb"`
}

// AlbumArtPolicy governs whether and how album art is displayed.
type AlbumArtPolicy string

const (
	AlbumArtAuto    AlbumArtPolicy = "auto"
	AlbumArtAlways  AlbumArtPolicy = "always"
	AlbumArtDisabled AlbumArtPolicy = "disabled"
)

// Symbols holds the small glyph set used for playback state and widget
// decoration, e.g. in pane headers and the status widget.
type Symbols struct {
	Playing string `toml:"playing"`
	Paused  string `toml:"paused"`
	Stopped string `toml:"stopped"`
	Track   string `toml:"track"`
}

// Theme is the full visual configuration: borders, bars, scrollbars,
// album-art policy and small glyph set. Colour resolution for any
// particular foreground/background pairing is delegated to internal/style.
type Theme struct {
	BorderSets map[string]BorderSet `toml:"border_sets"`
	DefaultBorder string             `toml:"default_border"`

	ProgressBar ProgressBarTheme `toml:"progress_bar"`
	Scrollbar   ScrollbarTheme   `toml:"scrollbar"`

	AlbumArt AlbumArtPolicy `toml:"album_art"`

	Symbols Symbols `toml:"symbols"`

	DefaultFg string `toml:"fg"`
	DefaultBg string `toml:"bg"`
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		BorderSets:    map[string]BorderSet{},
		DefaultBorder: "rounded",
		ProgressBar: ProgressBarTheme{
			Filled: "─", Thumb: "●", Empty: "─",
			FgColor: "blue", BgColor: "black",
		},
		Scrollbar: ScrollbarTheme{Track: "│", Thumb: "┃"},
		AlbumArt:  AlbumArtAuto,
		Symbols: Symbols{
			Playing: "▶", Paused: "⏸", Stopped: "⏹", Track: "♪",
		},
		DefaultFg: "white",
		DefaultBg: "reset",
	}
}

func validateTheme(t Theme) error {
	if _, err := ResolveBorderSet(t.DefaultBorder, t.BorderSets, BorderSet{}); err != nil {
		return fmt.Errorf("config: theme.default_border: %w", err)
	}

	for name, set := range t.BorderSets {
		if set.Inherited {
			continue
		}

		if !set.complete() {
			return fmt.Errorf("config: theme.border_sets[%q] is missing one or more glyphs", name)
		}
	}

	switch t.AlbumArt {
	case AlbumArtAuto, AlbumArtAlways, AlbumArtDisabled:
	default:
		return fmt.Errorf("config: theme.album_art: unknown policy %q", t.AlbumArt)
	}

	return nil
}
