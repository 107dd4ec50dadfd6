package action

import "testing"

type fakeConsumer struct {
	claims bool
	called bool
}

func (f *fakeConsumer) Handle(e *Event) error {
	f.called = true

	if f.claims {
		e.ClaimGlobal()
	}

	return nil
}

func TestClaimIsSingleConsumer(t *testing.T) {
	e := NewGlobalEvent(GlobalEvent{Action: Quit})

	_, ok := e.ClaimGlobal()
	if !ok {
		t.Fatalf("expected first claim to succeed")
	}

	if !e.Handled() {
		t.Fatalf("expected event marked handled after claim")
	}

	_, ok = e.ClaimGlobal()
	if ok {
		t.Fatalf("expected second claim to fail while already handled")
	}
}

func TestAbandonResetsHandled(t *testing.T) {
	e := NewGlobalEvent(GlobalEvent{Action: Quit})

	e.ClaimGlobal()
	e.Abandon()

	if e.Handled() {
		t.Fatalf("expected handled reset after Abandon")
	}

	_, ok := e.ClaimGlobal()
	if !ok {
		t.Fatalf("expected claim to succeed again after Abandon")
	}
}

func TestDispatchStopsAtFirstClaim(t *testing.T) {
	e := NewGlobalEvent(GlobalEvent{Action: Quit})

	first := &fakeConsumer{claims: true}
	second := &fakeConsumer{claims: true}

	if err := Dispatch(e, first, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !first.called {
		t.Fatalf("expected first consumer to run")
	}

	if second.called {
		t.Fatalf("expected dispatch to stop before second consumer")
	}
}

func TestDispatchFallsThroughWhenUnclaimed(t *testing.T) {
	e := NewGlobalEvent(GlobalEvent{Action: Quit})

	first := &fakeConsumer{claims: false}
	second := &fakeConsumer{claims: true}

	if err := Dispatch(e, first, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !first.called || !second.called {
		t.Fatalf("expected both consumers to run when first doesn't claim")
	}

	if !e.Handled() {
		t.Fatalf("expected event handled by second consumer")
	}
}
