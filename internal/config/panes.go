package config

import "fmt"

// PaneKind names one of the builtin pane types a tab's layout tree can
// place. User-defined parameterised variants (e.g. a browser rooted at a
// particular tag) are declared under the "panes" table and referenced by
// their custom name instead.
type PaneKind string

const (
	PaneQueue       PaneKind = "queue"
	PaneBrowser     PaneKind = "browser"
	PanePlaylists   PaneKind = "playlists"
	PaneSearch      PaneKind = "search"
	PaneAlbumArt    PaneKind = "album_art"
	PaneLyrics      PaneKind = "lyrics"
	PaneProgressBar PaneKind = "progress_bar"
	PaneHeader      PaneKind = "header"
	PaneTabs        PaneKind = "tabs"
	PaneFrameCount  PaneKind = "frame_count"
	PaneVolume      PaneKind = "volume"
	PaneProperty    PaneKind = "property"
	PaneCava        PaneKind = "cava"
	PaneLogs        PaneKind = "logs"
)

var builtinPaneKinds = map[PaneKind]bool{
	PaneQueue: true, PaneBrowser: true, PanePlaylists: true, PaneSearch: true,
	PaneAlbumArt: true, PaneLyrics: true, PaneProgressBar: true, PaneHeader: true,
	PaneTabs: true, PaneFrameCount: true, PaneVolume: true, PaneProperty: true,
	PaneCava: true, PaneLogs: true,
}

// PaneParams is a user-declared parameterised pane variant: a builtin Kind
// plus the extra parameters that particular kind accepts (root_tag for
// browser, template for property). Declared once under "panes" and
// referenced by name from any tab's layout tree.
type PaneParams struct {
	Kind     PaneKind `toml:"kind"`
	RootTag  string   `toml:"root_tag"`
	Template string   `toml:"template"`
	Border   string   `toml:"border"`
}

// Direction a Split lays its children out along.
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// Split is one interior node of a tab's layout tree: a direction and a list
// of sized children, each either a leaf pane reference or a nested split.
type Split struct {
	Direction Direction          `toml:"direction"`
	Children  []SizedPaneOrSplit `toml:"children"`
}

// SizedPaneOrSplit is one sized node of the layout tree: exactly one of
// PaneRef or Split is set, each claiming SizePercent of its parent's space
// along the split direction.
type SizedPaneOrSplit struct {
	SizePercent int `toml:"size_percent"`

	PaneRef string `toml:"pane"`
	Split   *Split `toml:"split"`
}

func (n SizedPaneOrSplit) isLeaf() bool { return n.Split == nil }

// DefaultTabs returns the compiled-in tab layout: a Queue tab and a Library
// browser tab, each with a header; only the Queue tab has a progress bar.
func DefaultTabs() []TabDef {
	return []TabDef{
		{
			Name: "Queue",
			Root: SizedPaneOrSplit{
				SizePercent: 100,
				Split: &Split{
					Direction: Vertical,
					Children: []SizedPaneOrSplit{
						{SizePercent: 10, PaneRef: "header"},
						{SizePercent: 80, PaneRef: "queue"},
						{SizePercent: 10, PaneRef: "progress_bar"},
					},
				},
			},
		},
		{
			Name: "Library",
			Root: SizedPaneOrSplit{
				SizePercent: 100,
				Split: &Split{
					Direction: Vertical,
					Children: []SizedPaneOrSplit{
						{SizePercent: 10, PaneRef: "header"},
						{SizePercent: 90, PaneRef: "browser"},
					},
				},
			},
		},
	}
}

// resolvePaneKind resolves a pane reference (builtin name or custom
// declaration) to its underlying PaneKind, erroring if it names neither.
func resolvePaneKind(ref string, custom map[string]PaneParams) (PaneKind, error) {
	if builtinPaneKinds[PaneKind(ref)] {
		return PaneKind(ref), nil
	}

	if p, ok := custom[ref]; ok {
		if !builtinPaneKinds[p.Kind] {
			return "", fmt.Errorf("config: panes[%q] has unknown kind %q", ref, p.Kind)
		}

		return p.Kind, nil
	}

	return "", fmt.Errorf("config: pane reference %q is neither a builtin pane nor declared under [panes]", ref)
}

// validateTree walks a tab's layout tree, checking every pane reference
// resolves and every split's children size percentages sum to ≤100.
func validateTree(n SizedPaneOrSplit, custom map[string]PaneParams) error {
	if n.isLeaf() {
		if n.PaneRef == "" {
			return fmt.Errorf("config: layout node has neither pane nor split")
		}

		_, err := resolvePaneKind(n.PaneRef, custom)

		return err
	}

	total := 0
	for _, child := range n.Split.Children {
		total += child.SizePercent

		if err := validateTree(child, custom); err != nil {
			return err
		}
	}

	if total > 100 {
		return fmt.Errorf("config: split children size_percent sums to %d, must be ≤100", total)
	}

	return nil
}

func validatePanes(tabs []TabDef, custom map[string]PaneParams) error {
	if len(tabs) == 0 {
		return fmt.Errorf("config: at least one tab is required")
	}

	seen := map[string]bool{}

	for _, tab := range tabs {
		if tab.Name == "" {
			return fmt.Errorf("config: tab with empty name")
		}

		if seen[tab.Name] {
			return fmt.Errorf("config: duplicate tab name %q", tab.Name)
		}

		seen[tab.Name] = true

		if err := validateTree(tab.Root, custom); err != nil {
			return fmt.Errorf("config: tab %q: %w", tab.Name, err)
		}
	}

	return nil
}
