// ABOUTME: Query scheduler: at most one outstanding query per
// ABOUTME: (originator, id), with a fresh issue superseding any in flight (C10)

package uimodel

import "mpctui/internal/workerpool"

// QueryKey identifies one logical, repeatable query: which pane asked
// (Originator) and which of that pane's queries this is (ID, e.g.
// "list_albums" vs "album_art"). A pane issuing the same QueryKey again
// before the first finishes supersedes it rather than running both.
type QueryKey struct {
	Originator string
	ID         string
}

// QueryResult is delivered back to the originating pane via
// Pane.OnQueryFinished once its job completes, unless it was superseded
// first (superseded results are dropped silently).
type QueryResult struct {
	Key   QueryKey
	Value any
	Err   error
}

// queryJob wraps a caller's worker job so the scheduler can recognize its
// own jobs coming back off the pool.
type queryJob struct {
	key QueryKey
	gen uint64
	run func() (any, error)
}

func (j queryJob) Run() any {
	v, err := j.run()

	return QueryResult{Key: j.key, Value: v, Err: err}
}

// Scheduler enforces "at most one outstanding query per (originator, id)":
// issuing a query for a key that already has one in flight bumps that key's
// generation, so the earlier job's result is recognized as stale and
// dropped when it eventually arrives.
type Scheduler struct {
	pool       *workerpool.Pool
	generation map[QueryKey]uint64
}

// NewScheduler wraps pool.
func NewScheduler(pool *workerpool.Pool) *Scheduler {
	return &Scheduler{pool: pool, generation: map[QueryKey]uint64{}}
}

// Issue submits run under key, superseding any query already in flight for
// the same key.
func (s *Scheduler) Issue(key QueryKey, run func() (any, error)) {
	s.generation[key]++
	gen := s.generation[key]

	s.pool.Submit(queryJob{key: key, gen: gen, run: run})
}

// Accept reports whether a completed result is still current (true) or was
// superseded by a later Issue for the same key and should be discarded
// (false). Call once per workerpool.Result as it arrives.
func (s *Scheduler) Accept(key QueryKey, resultGen uint64) bool {
	return s.generation[key] == resultGen
}

// Dispatch converts a raw workerpool.Result into a QueryResult if it
// originated from this scheduler and is still current, reporting ok=false
// for anything else (including stale generations, which are dropped).
func (s *Scheduler) Dispatch(r workerpool.Result) (QueryResult, bool) {
	job, ok := r.Job.(queryJob)
	if !ok {
		return QueryResult{}, false
	}

	if !s.Accept(job.key, job.gen) {
		return QueryResult{}, false
	}

	qr, ok := r.Value.(QueryResult)

	return qr, ok
}
