// ABOUTME: Modal lifecycle interface and the LIFO stack that owns modal
// ABOUTME: input priority, with replacement-id coalescing (C8)

package uimodel

import (
	tea "github.com/charmbracelet/bubbletea"

	"mpctui/internal/action"
)

// Modal is a transient overlay (confirm dialog, text input, select list,
// info list, keybind help, ...) that sits above the pane stack and gets
// first refusal on every action and keystroke while open.
type Modal interface {
	// ID identifies this modal instance for replacement coalescing; two
	// pushes with the same non-empty ID replace one another instead of
	// stacking.
	ID() string

	Render(a Area) string
	Resize(a Area)

	HandleAction(e *action.Event)
	HandleKey(msg tea.KeyMsg) bool

	// OnClose fires when the modal is popped, whether by its own Close
	// action or because a later push replaced it.
	OnClose()
}

// ModalFactory builds the handful of built-in modals the global action
// handler opens. It exists only to break the import cycle that would
// otherwise come from uimodel depending on the modals package while every
// modal depends on uimodel for the Modal interface and Area type.
type ModalFactory interface {
	Keybinds() Modal
	AddRandom() Modal
	Outputs() Modal
	Decoders() Modal
	SongInfo(title string, rows []string) Modal
	Command(title string, onSwitchTab func(string)) Modal
}

// ModalStack is a LIFO stack of open modals. Only the top modal receives
// input, and only the top modal is drawn: Model.View overlays Top() and
// lower modals stay hidden until it is popped.
type ModalStack struct {
	stack []Modal
}

// NewModalStack returns an empty stack.
func NewModalStack() *ModalStack { return &ModalStack{} }

// Push opens m. If a modal already on the stack shares m's non-empty ID, it
// is popped (with OnClose) and replaced in place rather than stacking a
// duplicate on top.
func (s *ModalStack) Push(m Modal) {
	if m.ID() != "" {
		for i, existing := range s.stack {
			if existing.ID() == m.ID() {
				existing.OnClose()
				s.stack[i] = m

				return
			}
		}
	}

	s.stack = append(s.stack, m)
}

// Pop closes and removes the top modal, if any.
func (s *ModalStack) Pop() {
	if len(s.stack) == 0 {
		return
	}

	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	top.OnClose()
}

// PopID closes and removes the modal with the given id, wherever it sits in
// the stack, leaving the rest in place. Used when a background event (e.g.
// a query finishing) should dismiss a specific modal without disturbing
// others opened after it.
func (s *ModalStack) PopID(id string) {
	for i, m := range s.stack {
		if m.ID() == id {
			m.OnClose()
			s.stack = append(s.stack[:i], s.stack[i+1:]...)

			return
		}
	}
}

// Top returns the topmost modal, or nil if the stack is empty.
func (s *ModalStack) Top() Modal {
	if len(s.stack) == 0 {
		return nil
	}

	return s.stack[len(s.stack)-1]
}

// Len reports how many modals are open.
func (s *ModalStack) Len() int { return len(s.stack) }

// All returns the stack bottom-to-top, for rendering.
func (s *ModalStack) All() []Modal { return s.stack }

// HandleAction dispatches e to the top modal only, matching the modal
// priority described by the action routing order (modal stack top first).
func (s *ModalStack) HandleAction(e *action.Event) {
	if top := s.Top(); top != nil {
		top.HandleAction(e)
	}
}
