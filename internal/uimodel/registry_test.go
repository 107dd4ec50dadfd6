package uimodel

import (
	"testing"

	"mpctui/internal/config"
)

type stubPane struct{ BasePane }

func (s *stubPane) Render() string { return "stub" }

func TestRegistryBuildsBuiltinPane(t *testing.T) {
	r := NewRegistry()
	r.Register(config.PaneQueue, func(ref string, params config.PaneParams, c *Ctx) (Pane, error) {
		return &stubPane{}, nil
	})

	cfg := config.Default()

	p, err := r.Build("queue", &cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Render() != "stub" {
		t.Fatalf("expected stub render")
	}
}

func TestRegistryBuildsParameterisedPane(t *testing.T) {
	r := NewRegistry()

	var gotRootTag string

	r.Register(config.PaneBrowser, func(ref string, params config.PaneParams, c *Ctx) (Pane, error) {
		gotRootTag = params.RootTag

		return &stubPane{}, nil
	})

	cfg := config.Default()
	cfg.Panes = map[string]config.PaneParams{
		"artists": {Kind: config.PaneBrowser, RootTag: "artist"},
	}

	_, err := r.Build("artists", &cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotRootTag != "artist" {
		t.Fatalf("expected root_tag 'artist' to reach the factory, got %q", gotRootTag)
	}
}

func TestRegistryUnknownKindErrors(t *testing.T) {
	r := NewRegistry()
	cfg := config.Default()

	if _, err := r.Build("nonexistent", &cfg, nil); err == nil {
		t.Fatalf("expected error for unregistered pane kind")
	}
}
