package config

import (
	"mpctui/internal/keyseq"
)

// BindingEntry is one user-authored key binding: a sequence string (parsed
// with keyseq.ParseSequence) paired with the name of the action it fires.
// Action names are resolved against each scope's fixed vocabulary at
// compose time, not here, so this package stays independent of
// internal/action.
type BindingEntry struct {
	Seq    string `toml:"seq"`
	Action string `toml:"action"`
}

// ScopeBindings is one scope's (global, navigation, queue, logs, ...)
// override declaration. Clear=true means "discard every default binding in
// this scope before applying Entries"; Clear=false (the default) means the
// entries are layered on top of — and take priority over — the built-in
// defaults for the same scope.
type ScopeBindings struct {
	Clear   bool           `toml:"clear"`
	Entries []BindingEntry `toml:"entries"`
}

// KeyBindingsConfig is the full keys section of the config file: one
// ScopeBindings per named scope.
type KeyBindingsConfig struct {
	Global     ScopeBindings `toml:"global"`
	Navigation ScopeBindings `toml:"navigation"`
	Queue      ScopeBindings `toml:"queue"`
	Logs       ScopeBindings `toml:"logs"`
}

// DefaultKeyBindingsConfig returns an empty override set: every scope
// layers zero entries on top of the compiled-in defaults.
func DefaultKeyBindingsConfig() KeyBindingsConfig {
	return KeyBindingsConfig{}
}

// DefaultBindings returns the compiled-in default Map for one scope. These
// mirror the example set named in the action package; the action values
// are stored as their String()-able names so this package need not import
// internal/action.
func DefaultBindings(scope string) *keyseq.Map {
	m := keyseq.NewMap(scope)

	switch scope {
	case "global":
		mustBind(m, "q", "Quit")
		mustBind(m, "space", "TogglePause")
		mustBind(m, ">", "NextTrack")
		mustBind(m, "<", "PreviousTrack")
		mustBind(m, "s", "Stop")
		mustBind(m, "ctrl+right", "SeekForward")
		mustBind(m, "ctrl+left", "SeekBack")
		mustBind(m, "+", "VolumeUp")
		mustBind(m, "-", "VolumeDown")
		mustBind(m, "tab", "NextTab")
		mustBind(m, "backtab", "PreviousTab")
		mustBind(m, "ctrl+h", "ShowHelp")
		mustBind(m, ":", "CommandMode")
	case "navigation":
		mustBind(m, "j", "Down")
		mustBind(m, "k", "Up")
		mustBind(m, "h", "Left")
		mustBind(m, "l", "Right")
		mustBind(m, "g g", "Top")
		mustBind(m, "G", "Bottom")
		mustBind(m, "ctrl+d", "DownHalf")
		mustBind(m, "ctrl+u", "UpHalf")
		mustBind(m, "enter", "Confirm")
		mustBind(m, "a", "Add")
		mustBind(m, "A", "AddAll")
		mustBind(m, "d", "Delete")
		mustBind(m, "r", "Rename")
		mustBind(m, "/", "EnterSearch")
		mustBind(m, "n", "NextResult")
		mustBind(m, "N", "PreviousResult")
		mustBind(m, "esc", "Close")
	case "queue":
		mustBind(m, "enter", "QueuePlaySelected")
		mustBind(m, "d", "QueueRemoveSelected")
		mustBind(m, "c", "QueueCenterCursor")
		mustBind(m, "C", "QueueJumpToCurrent")
	case "logs":
		mustBind(m, "c", "LogsClear")
		mustBind(m, "w", "LogsToggleWrap")
	}

	return m
}

func mustBind(m *keyseq.Map, seq, action string) {
	s, err := keyseq.ParseSequence(seq)
	if err != nil {
		panic("config: invalid built-in binding " + seq + ": " + err.Error())
	}

	m.Bind(s, action)
}

// ComposeBindings implements §4.3/§8 property 2's override composition: if
// cfg.Clear, start empty; otherwise start from the compiled-in defaults.
// Then layer cfg.Entries on top, with a later entry for the same sequence
// overwriting an earlier one (defaults included). The caller is
// responsible for stripping an overridden sequence out of every OTHER
// scope before this map is installed, matching the single-global-map
// override semantics described in §4.3 (done by ComposeAll below, not
// here, since it needs every scope's result at once).
func ComposeBindings(scope string, cfg ScopeBindings) (*keyseq.Map, error) {
	var m *keyseq.Map
	if cfg.Clear {
		m = keyseq.NewMap(scope)
	} else {
		m = DefaultBindings(scope)
	}

	for _, e := range cfg.Entries {
		seq, err := keyseq.ParseSequence(e.Seq)
		if err != nil {
			return nil, err
		}

		m.Bind(seq, e.Action)
	}

	return m, nil
}

// ComposeAll composes every scope's map and then removes any binding that a
// later (higher-priority) scope also declares, so the same physical
// sequence is never live in two scopes at once. scopeOrder gives ascending
// priority: earlier scopes lose their binding to later ones on conflict.
func ComposeAll(cfg KeyBindingsConfig) (map[string]*keyseq.Map, error) {
	scopeOrder := []struct {
		name string
		cfg  ScopeBindings
	}{
		{"logs", cfg.Logs},
		{"queue", cfg.Queue},
		{"navigation", cfg.Navigation},
		{"global", cfg.Global},
	}

	maps := make(map[string]*keyseq.Map, len(scopeOrder))

	for _, s := range scopeOrder {
		m, err := ComposeBindings(s.name, s.cfg)
		if err != nil {
			return nil, err
		}

		maps[s.name] = m
	}

	claimed := map[string]string{}

	for _, s := range scopeOrder {
		m := maps[s.name]

		for key := range m.Bindings {
			if owner, ok := claimed[key]; ok && owner != s.name {
				delete(maps[owner].Bindings, key)
			}

			claimed[key] = s.name
		}
	}

	return maps, nil
}
