package uimodel

import (
	"testing"
	"time"

	"mpctui/internal/workerpool"
)

func TestSchedulerDropsSupersededResult(t *testing.T) {
	pool := workerpool.New(1, 4)
	defer pool.Close()

	sched := NewScheduler(pool)
	key := QueryKey{Originator: "browser", ID: "list_albums"}

	block := make(chan struct{})

	sched.Issue(key, func() (any, error) {
		<-block

		return "stale", nil
	})

	// Supersede before the first job can finish.
	sched.Issue(key, func() (any, error) {
		return "fresh", nil
	})

	close(block)

	var got []string

	for i := 0; i < 2; i++ {
		select {
		case r := <-pool.Results:
			if qr, ok := sched.Dispatch(r); ok {
				got = append(got, qr.Value.(string))
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for results")
		}
	}

	if len(got) != 1 || got[0] != "fresh" {
		t.Fatalf("expected only the fresh result to be accepted, got %v", got)
	}
}

func TestSchedulerAcceptsSingleNonSupersededResult(t *testing.T) {
	pool := workerpool.New(1, 4)
	defer pool.Close()

	sched := NewScheduler(pool)
	key := QueryKey{Originator: "playlists", ID: "list"}

	sched.Issue(key, func() (any, error) { return 42, nil })

	r := <-pool.Results

	qr, ok := sched.Dispatch(r)
	if !ok {
		t.Fatalf("expected single issue to be accepted")
	}

	if qr.Value.(int) != 42 {
		t.Fatalf("expected value 42, got %v", qr.Value)
	}
}
