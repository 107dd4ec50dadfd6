package logging

import "sync"

// Ring is a fixed-capacity in-memory log tail, written to alongside the
// file sink so the in-app logs pane can show recent entries without
// re-opening the log file.
type Ring struct {
	mu    sync.Mutex
	lines []string
	cap   int
}

// NewRing returns a ring buffer holding at most capacity lines.
func NewRing(capacity int) *Ring {
	return &Ring{cap: capacity}
}

// Write implements io.Writer, storing each call's bytes as one entry
// (newline included, not split) and keeping only the most recent Ring.cap
// entries. zerolog issues one Write per record.
func (r *Ring) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = append(r.lines, string(p))
	if len(r.lines) > r.cap {
		r.lines = r.lines[len(r.lines)-r.cap:]
	}

	return len(p), nil
}

// Lines returns a snapshot of the buffered lines, oldest first.
func (r *Ring) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.lines))
	copy(out, r.lines)

	return out
}

// Clear empties the buffer.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = nil
}
