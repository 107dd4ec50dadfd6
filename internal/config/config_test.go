package config

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestValidateRejectsOverbudgetSongFormat(t *testing.T) {
	cfg := Default()
	cfg.SongFormat = []Column{
		{Template: "$title", WidthPercent: 60},
		{Template: "$artist", WidthPercent: 60},
	}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for song_format widths summing over 100")
	}
}

func TestValidateRejectsUnknownPaneReference(t *testing.T) {
	cfg := Default()
	cfg.Tabs = []TabDef{
		{
			Name: "Bad",
			Root: SizedPaneOrSplit{SizePercent: 100, PaneRef: "not_a_pane"},
		},
	}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for unresolvable pane reference")
	}
}

func TestValidateAcceptsCustomParameterisedPane(t *testing.T) {
	cfg := Default()
	cfg.Panes = map[string]PaneParams{
		"artists": {Kind: PaneBrowser, RootTag: "artist"},
	}
	cfg.Tabs = []TabDef{
		{
			Name: "Artists",
			Root: SizedPaneOrSplit{SizePercent: 100, PaneRef: "artists"},
		},
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("expected custom pane to validate, got %v", err)
	}
}

func TestValidateRejectsSplitOverbudget(t *testing.T) {
	cfg := Default()
	cfg.Tabs = []TabDef{
		{
			Name: "Bad",
			Root: SizedPaneOrSplit{
				SizePercent: 100,
				Split: &Split{
					Direction: Vertical,
					Children: []SizedPaneOrSplit{
						{SizePercent: 70, PaneRef: "queue"},
						{SizePercent: 70, PaneRef: "header"},
					},
				},
			},
		},
	}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for split children overbudget")
	}
}

func TestValidateRejectsIncompleteBorderSet(t *testing.T) {
	cfg := Default()
	cfg.Theme.BorderSets["partial"] = BorderSet{TopLeft: "+"}
	cfg.Theme.DefaultBorder = "partial"

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for incomplete border set")
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load("/nonexistent/path/mpctui-test-config.toml")
	if err != nil {
		t.Fatalf("unexpected error for missing file: %v", err)
	}

	if cfg.Address != Default().Address {
		t.Fatalf("expected default config for missing file")
	}
}
