// ABOUTME: Live key sequencer: buffers a prefix, resolves against layered
// ABOUTME: scope maps, arms/expires an inactivity timeout (C5 state machine)

package keyseq

import "time"

// DefaultTimeout is the inactivity timeout armed while a prefix is pending
// and could still extend into a longer bound sequence.
const DefaultTimeout = 1000 * time.Millisecond

// Binding pairs a bound sequence with its resolved action. Action is left
// as `any` here because each scope has its own action enum type; callers
// type-assert on Scope.Name to interpret it.
type Binding struct {
	Seq    Sequence
	Action any
}

// Map is one scope's key sequence -> action table.
type Map struct {
	Name     string
	Bindings map[string]Binding // keyed by Sequence.String()
}

// NewMap creates an empty binding map for the named scope.
func NewMap(name string) *Map {
	return &Map{Name: name, Bindings: map[string]Binding{}}
}

// Bind installs seq -> action, replacing any existing binding for seq.
func (m *Map) Bind(seq Sequence, action any) {
	m.Bindings[seq.String()] = Binding{Seq: seq, Action: action}
}

// Unbind removes seq from the map, if present.
func (m *Map) Unbind(seq Sequence) {
	delete(m.Bindings, seq.String())
}

// FireResult is what Feed/Timeout return when a sequence resolves.
type FireResult struct {
	Scope  string
	Action any
	Seq    Sequence
}

// State is the sequencer's current buffering state.
type State int

const (
	StateEmpty State = iota
	StatePending
)

// Sequencer buffers keystrokes and resolves them against scope maps in
// caller-supplied priority order (highest priority first).
type Sequencer struct {
	scopes  []*Map
	pending Sequence
	state   State
}

// NewSequencer creates a sequencer that resolves against scopes in the
// given priority order (first match wins).
func NewSequencer(scopes ...*Map) *Sequencer {
	return &Sequencer{scopes: scopes}
}

// State reports the current buffering state.
func (s *Sequencer) State() State { return s.state }

// Pending returns the current prefix buffer (nil when Empty).
func (s *Sequencer) Pending() Sequence { return s.pending }

// Feed appends key to the prefix buffer and attempts resolution.
//
// Returns (result, waiting): if waiting is true, some scope's sequence
// could still extend the new prefix (even if the prefix is itself bound),
// so the caller should (re)arm the inactivity timeout; Timeout then fires
// the bound prefix if no longer sequence completes. If result is non-nil,
// a scope matched exactly, nothing longer could match, and the buffer has
// been reset. If both are zero/false, no scope could ever match this
// prefix: the buffer is reset and the key is dropped.
func (s *Sequencer) Feed(k Key) (result *FireResult, waiting bool) {
	prefix := append(append(Sequence{}, s.pending...), k)

	if s.couldExtend(prefix) {
		s.pending = prefix
		s.state = StatePending

		return nil, true
	}

	if r := s.exactMatch(prefix); r != nil {
		s.reset()

		return r, false
	}

	s.reset()

	return nil, false
}

// Timeout fires on inactivity-timer expiration while Pending: it attempts
// a best-effort match against the longest completed prefix of the current
// buffer (which may be shorter than the full buffer), or drops if none of
// the buffer's prefixes are bound.
func (s *Sequencer) Timeout() *FireResult {
	defer s.reset()

	for n := len(s.pending); n >= 1; n-- {
		if r := s.exactMatch(s.pending[:n]); r != nil {
			return r
		}
	}

	return nil
}

func (s *Sequencer) reset() {
	s.pending = nil
	s.state = StateEmpty
}

func (s *Sequencer) exactMatch(prefix Sequence) *FireResult {
	key := prefix.String()

	for _, scope := range s.scopes {
		if b, ok := scope.Bindings[key]; ok {
			return &FireResult{Scope: scope.Name, Action: b.Action, Seq: prefix}
		}
	}

	return nil
}

func (s *Sequencer) couldExtend(prefix Sequence) bool {
	for _, scope := range s.scopes {
		for _, b := range scope.Bindings {
			if len(b.Seq) > len(prefix) && prefix.IsPrefixOf(b.Seq) {
				return true
			}
		}
	}

	return false
}
