// ABOUTME: Top-level configuration struct, TOML loading, and validation
// ABOUTME: Lowers user-authored config into the runtime form the rest of

// Package config implements the two-stage configuration pipeline (C3):
// parsing a declarative TOML file, validating its cross-references, and
// lowering it into the runtime Config snapshot consumed read-only by the
// rest of the system.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"mpctui/internal/pathutil"
)

// Column is one field of a song-format template: a formatting-DSL template
// string and the percentage of the row's width it claims.
type Column struct {
	Template      string `toml:"template"`
	WidthPercent  int    `toml:"width_percent"`
}

// SortOptions controls library browser ordering.
type SortOptions struct {
	IgnoreLeadingThe bool `toml:"ignore_leading_the"`
	GroupByType      bool `toml:"group_by_type"`
	Reverse          bool `toml:"reverse"`
	FoldCase         bool `toml:"fold_case"`
}

// Config is the fully validated, lowered runtime configuration snapshot.
// It is owned exclusively by the central context and replaced wholesale on
// reload; nothing mutates it in place.
type Config struct {
	Address  string `toml:"address"`
	Password string `toml:"password"`

	CacheDir   string `toml:"cache_dir"`
	LyricsDir  string `toml:"lyrics_dir"`
	LyricsOffsetMS int `toml:"lyrics_offset_ms"`
	CavaFIFO   string `toml:"cava_fifo"`

	VolumeStep int `toml:"volume_step"`
	MaxFPS     int `toml:"max_fps"`
	MouseEnabled bool `toml:"mouse_enabled"`

	SongFormat []Column `toml:"song_format"`
	Sort       SortOptions `toml:"sort"`

	Theme Theme `toml:"theme"`

	Tabs  []TabDef          `toml:"tabs"`
	Panes map[string]PaneParams `toml:"panes"`

	Keys KeyBindingsConfig `toml:"keys"`
}

// TabDef is one top-level tab: a name and the root of its nested split
// tree.
type TabDef struct {
	Name string          `toml:"name"`
	Root SizedPaneOrSplit `toml:"root"`
}

// Default returns the built-in configuration used when no config file is
// present, or as the base that reload falls back to on a parse error.
func Default() Config {
	return Config{
		Address:      "127.0.0.1:6600",
		CacheDir:     "~/.cache/mpctui",
		LyricsDir:    "~/.local/share/mpctui/lyrics",
		VolumeStep:   5,
		MaxFPS:       60,
		MouseEnabled: true,
		SongFormat: []Column{
			{Template: `$track `, WidthPercent: 5},
			{Template: `$title{fg:white}|$file`, WidthPercent: 55},
			{Template: `$artist{fg:gray}`, WidthPercent: 25},
			{Template: `%truncate(content: $duration, length: 8)`, WidthPercent: 15},
		},
		Sort: SortOptions{IgnoreLeadingThe: true, FoldCase: true},
		Theme: DefaultTheme(),
		Tabs:  DefaultTabs(),
		Panes: map[string]PaneParams{},
		Keys:  DefaultKeyBindingsConfig(),
	}
}

// LyricsOffset converts the configured millisecond offset to a Duration.
func (c Config) LyricsOffset() time.Duration {
	return time.Duration(c.LyricsOffsetMS) * time.Millisecond
}

// EffectiveFPS clamps the configured render rate so the repaint period is
// never shorter than 33ms, which caps the rate at 30 FPS; an unset or
// non-positive MaxFPS also yields 30.
func (c Config) EffectiveFPS() int {
	if c.MaxFPS <= 0 {
		return 30
	}

	period := time.Second / time.Duration(c.MaxFPS)
	if period < 33*time.Millisecond {
		return int(time.Second / (33 * time.Millisecond))
	}

	return c.MaxFPS
}

// Load reads and parses path, expands its path-valued fields, validates
// cross-references, and returns the lowered runtime Config. On a missing
// file it returns Default() with no error (first-run convenience); on a
// parse/validation error it is the caller's responsibility to fall back to
// the previous good config (initial load: Default(); reload: the live
// config), per §7's parse-error policy.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, &ParseError{Path: path, Err: err}
	}

	cfg = lower(cfg)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseError wraps a TOML decode failure with the offending file path, for
// the byte-range-style diagnostic policy in §7 (toml.Decode's own error
// already carries a line:column, which is byte-range enough for a config
// file).
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// lower expands ~ and $VAR in every path-valued field.
func lower(cfg Config) Config {
	cfg.CacheDir = pathutil.Expand(cfg.CacheDir)
	cfg.LyricsDir = pathutil.Expand(cfg.LyricsDir)

	if cfg.CavaFIFO != "" {
		cfg.CavaFIFO = pathutil.Expand(cfg.CavaFIFO)
	}

	return cfg
}

// DefaultPath returns the config file location under XDG_CONFIG_HOME (or
// ~/.config) first, matching the search order convention of the ambient
// CLI tools in the retrieved pack.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mpctui", "config.toml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./mpctui.toml"
	}

	return filepath.Join(home, ".config", "mpctui", "config.toml")
}
