package keyseq

import "testing"

func mustSeq(t *testing.T, s string) Sequence {
	t.Helper()

	seq, err := ParseSequence(s)
	if err != nil {
		t.Fatalf("ParseSequence(%q): %v", s, err)
	}

	return seq
}

func TestKeyParsePrintInverse(t *testing.T) {
	cases := []string{"a", "ctrl+a", "alt+ctrl+shift+a", "tab", "backtab", "pageup", "enter", "f5"}

	for _, c := range cases {
		k, err := ParseKey(c)
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", c, err)
		}

		k2, err := ParseKey(k.String())
		if err != nil {
			t.Fatalf("ParseKey(String()) round trip failed for %q: %v", c, err)
		}

		if !k.Equal(k2) {
			t.Errorf("round trip mismatch for %q: %+v != %+v", c, k, k2)
		}
	}
}

// TestSequencerScenarioB covers §8 scenario B: g -> NextTab (alone), g g ->
// Top, with the longer sequence winning when completed within the window.
func TestSequencerScenarioB(t *testing.T) {
	nav := NewMap("navigation")
	nav.Bind(mustSeq(t, "g"), "NextTab")
	nav.Bind(mustSeq(t, "g g"), "Top")

	seq := NewSequencer(nav)

	// "g" alone: no immediate fire (g could extend to "g g"), times out to
	// NextTab.
	_, waiting := seq.Feed(mustSeq(t, "g")[0])
	if !waiting {
		t.Fatalf("expected g to buffer waiting for possible extension")
	}

	r := seq.Timeout()
	if r == nil || r.Action != "NextTab" {
		t.Fatalf("expected timeout to fire NextTab, got %+v", r)
	}

	if seq.State() != StateEmpty {
		t.Fatalf("expected sequencer to reset after timeout fire")
	}

	// "g g" within the window: Top fires immediately on the second key,
	// NextTab never fires.
	_, waiting = seq.Feed(mustSeq(t, "g")[0])
	if !waiting {
		t.Fatalf("expected first g to buffer")
	}

	r2, waiting2 := seq.Feed(mustSeq(t, "g")[0])
	if waiting2 {
		t.Fatalf("expected second g to resolve immediately, not keep waiting")
	}

	if r2 == nil || r2.Action != "Top" {
		t.Fatalf("expected Top to fire, got %+v", r2)
	}
}

// TestSequencerDeterminism covers §8 property 3: the fired-action sequence
// is a function of (keys, map) alone.
func TestSequencerDeterminism(t *testing.T) {
	nav := NewMap("navigation")
	nav.Bind(mustSeq(t, "g g"), "Top")
	nav.Bind(mustSeq(t, "G"), "Bottom")

	run := func() []any {
		seq := NewSequencer(nav)

		var fired []any

		for _, k := range mustSeq(t, "g g G") {
			r, waiting := seq.Feed(k)
			if r != nil {
				fired = append(fired, r.Action)
			}

			_ = waiting
		}

		return fired
	}

	a := run()
	b := run()

	if len(a) != len(b) || len(a) != 2 {
		t.Fatalf("expected deterministic two fires, got %v and %v", a, b)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic result at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSequencerNoMatchFlushes(t *testing.T) {
	nav := NewMap("navigation")
	nav.Bind(mustSeq(t, "g g"), "Top")

	seq := NewSequencer(nav)

	_, _ = seq.Feed(mustSeq(t, "z")[0])

	if seq.State() != StateEmpty {
		t.Fatalf("expected sequencer to flush on unmatchable key")
	}
}

// TestBindingOverrideSemantics covers §8 property 2 at the map level:
// removing a key from one scope and installing it in another leaves
// exactly one occurrence across scopes.
func TestBindingOverrideSemantics(t *testing.T) {
	navigation := NewMap("navigation")
	navigation.Bind(mustSeq(t, "space"), "Select")

	global := NewMap("global")

	// Simulate override: user rebinds space globally, so it's removed
	// from navigation first.
	navigation.Unbind(mustSeq(t, "space"))
	global.Bind(mustSeq(t, "space"), "TogglePause")

	if _, ok := navigation.Bindings[mustSeq(t, "space").String()]; ok {
		t.Fatalf("expected space removed from navigation scope")
	}

	b, ok := global.Bindings[mustSeq(t, "space").String()]
	if !ok || b.Action != "TogglePause" {
		t.Fatalf("expected space bound to TogglePause in global scope")
	}
}
