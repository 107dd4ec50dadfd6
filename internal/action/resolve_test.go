package action

import (
	"testing"

	"mpctui/internal/keyseq"
)

func bindString(t *testing.T, m *keyseq.Map, seq, name string) {
	t.Helper()

	s, err := keyseq.ParseSequence(seq)
	if err != nil {
		t.Fatalf("ParseSequence(%q): %v", seq, err)
	}

	m.Bind(s, name)
}

func TestResolveScopeReplacesStringWithTypedAction(t *testing.T) {
	m := keyseq.NewMap("navigation")
	bindString(t, m, "j", "Down")
	bindString(t, m, "enter", "Confirm")

	if err := ResolveScope(m); err != nil {
		t.Fatalf("ResolveScope: %v", err)
	}

	for key, want := range map[string]CommonAction{"j": Down, "enter": Confirm} {
		b, ok := m.Bindings[key]
		if !ok {
			t.Fatalf("missing binding for %q after resolve", key)
		}

		got, ok := b.Action.(CommonAction)
		if !ok {
			t.Fatalf("binding %q: Action is %T, want CommonAction", key, b.Action)
		}

		if got != want {
			t.Errorf("binding %q: got %v, want %v", key, got, want)
		}
	}
}

func TestResolveScopeUnknownActionNameErrors(t *testing.T) {
	m := keyseq.NewMap("global")
	bindString(t, m, "x", "NotARealAction")

	if err := ResolveScope(m); err == nil {
		t.Fatalf("expected an error for an unbound action name")
	}
}

func TestResolveScopeUnknownScopeErrors(t *testing.T) {
	m := keyseq.NewMap("not-a-scope")
	bindString(t, m, "x", "Quit")

	if err := ResolveScope(m); err == nil {
		t.Fatalf("expected an error for a scope with no vocabulary")
	}
}

func TestResolveScopesCoversEveryScope(t *testing.T) {
	global := keyseq.NewMap("global")
	bindString(t, global, "q", "Quit")

	queue := keyseq.NewMap("queue")
	bindString(t, queue, "enter", "QueuePlaySelected")

	logs := keyseq.NewMap("logs")
	bindString(t, logs, "c", "LogsClear")

	scopes := map[string]*keyseq.Map{"global": global, "queue": queue, "logs": logs}

	if err := ResolveScopes(scopes); err != nil {
		t.Fatalf("ResolveScopes: %v", err)
	}

	if a, _ := global.Bindings["q"].Action.(GlobalAction); a != Quit {
		t.Errorf("global scope not resolved: %+v", global.Bindings["q"])
	}

	if a, _ := queue.Bindings["enter"].Action.(QueueAction); a != QueuePlaySelected {
		t.Errorf("queue scope not resolved: %+v", queue.Bindings["enter"])
	}

	if a, _ := logs.Bindings["c"].Action.(LogsAction); a != LogsClear {
		t.Errorf("logs scope not resolved: %+v", logs.Bindings["c"])
	}
}

func TestActionStringersRoundTripNames(t *testing.T) {
	if got := Quit.String(); got != "Quit" {
		t.Errorf("GlobalAction.String() = %q, want %q", got, "Quit")
	}

	if got := Down.String(); got != "Down" {
		t.Errorf("CommonAction.String() = %q, want %q", got, "Down")
	}

	if got := QueuePlaySelected.String(); got != "QueuePlaySelected" {
		t.Errorf("QueueAction.String() = %q, want %q", got, "QueuePlaySelected")
	}

	if got := LogsClear.String(); got != "LogsClear" {
		t.Errorf("LogsAction.String() = %q, want %q", got, "LogsClear")
	}
}
