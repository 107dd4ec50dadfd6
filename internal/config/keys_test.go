package config

import "testing"

func TestComposeBindingsLayersOnDefaults(t *testing.T) {
	m, err := ComposeBindings("navigation", ScopeBindings{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := m.Bindings["j"]; !ok {
		t.Fatalf("expected default 'j' binding to survive with no overrides")
	}
}

func TestComposeBindingsClearDropsDefaults(t *testing.T) {
	m, err := ComposeBindings("navigation", ScopeBindings{Clear: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m.Bindings) != 0 {
		t.Fatalf("expected clear=true to drop every default binding, got %d", len(m.Bindings))
	}
}

func TestComposeBindingsOverrideWinsOverDefault(t *testing.T) {
	m, err := ComposeBindings("navigation", ScopeBindings{
		Entries: []BindingEntry{{Seq: "j", Action: "CustomDown"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := m.Bindings["j"]
	if b.Action != "CustomDown" {
		t.Fatalf("expected user override to win, got %v", b.Action)
	}
}

// TestComposeAllRemovesCrossScopeConflict covers §8 property 2: a sequence
// rebound into a higher-priority scope is not left live in its old scope.
func TestComposeAllRemovesCrossScopeConflict(t *testing.T) {
	cfg := KeyBindingsConfig{
		Global: ScopeBindings{
			Entries: []BindingEntry{{Seq: "j", Action: "GlobalOverride"}},
		},
	}

	maps, err := ComposeAll(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := maps["navigation"].Bindings["j"]; ok {
		t.Fatalf("expected 'j' removed from navigation once claimed by global")
	}

	b, ok := maps["global"].Bindings["j"]
	if !ok || b.Action != "GlobalOverride" {
		t.Fatalf("expected 'j' bound to GlobalOverride in global scope, got %+v ok=%v", b, ok)
	}
}

func TestComposeAllNoConflictLeavesBothScopesIntact(t *testing.T) {
	cfg := DefaultKeyBindingsConfig()

	maps, err := ComposeAll(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := maps["navigation"].Bindings["j"]; !ok {
		t.Fatalf("expected navigation 'j' to survive with no overrides")
	}

	if _, ok := maps["global"].Bindings["q"]; !ok {
		t.Fatalf("expected global 'q' to survive with no overrides")
	}
}
