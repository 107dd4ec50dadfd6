package uimodel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"mpctui/internal/action"
)

type fakeModal struct {
	id     string
	closed bool
}

func (f *fakeModal) ID() string                         { return f.id }
func (f *fakeModal) Render(a Area) string                { return f.id }
func (f *fakeModal) Resize(a Area)                       {}
func (f *fakeModal) HandleAction(e *action.Event)        {}
func (f *fakeModal) HandleKey(msg tea.KeyMsg) bool        { return false }
func (f *fakeModal) OnClose()                            { f.closed = true }

func TestModalStackPushPop(t *testing.T) {
	s := NewModalStack()
	a := &fakeModal{id: "a"}
	b := &fakeModal{id: "b"}

	s.Push(a)
	s.Push(b)

	if s.Top() != Modal(b) {
		t.Fatalf("expected b on top")
	}

	s.Pop()

	if !b.closed {
		t.Fatalf("expected b closed after pop")
	}

	if s.Top() != Modal(a) {
		t.Fatalf("expected a on top after popping b")
	}
}

func TestModalStackReplacementCoalescing(t *testing.T) {
	s := NewModalStack()

	first := &fakeModal{id: "confirm"}
	s.Push(first)

	second := &fakeModal{id: "confirm"}
	s.Push(second)

	if s.Len() != 1 {
		t.Fatalf("expected replacement to coalesce into one entry, got %d", s.Len())
	}

	if !first.closed {
		t.Fatalf("expected replaced modal to receive OnClose")
	}

	if s.Top() != Modal(second) {
		t.Fatalf("expected second instance to be on top")
	}
}

func TestModalStackPopIDRemovesSpecific(t *testing.T) {
	s := NewModalStack()

	a := &fakeModal{id: "a"}
	b := &fakeModal{id: "b"}
	s.Push(a)
	s.Push(b)

	s.PopID("a")

	if !a.closed {
		t.Fatalf("expected a closed")
	}

	if s.Len() != 1 || s.Top() != Modal(b) {
		t.Fatalf("expected only b remaining on top")
	}
}
