package workerpool

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsSubmittedJobs(t *testing.T) {
	p := New(4, 16)
	defer p.Close()

	const n = 50

	var sum int64

	for i := 0; i < n; i++ {
		i := i
		p.Submit(JobFunc(func() any {
			atomic.AddInt64(&sum, int64(i))

			return i
		}))
	}

	seen := map[int]bool{}

	for len(seen) < n {
		select {
		case r := <-p.Results:
			seen[r.Value.(int)] = true
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for results, got %d/%d", len(seen), n)
		}
	}

	want := int64(n * (n - 1) / 2)
	if sum != want {
		t.Fatalf("expected sum %d, got %d", want, sum)
	}
}

func TestTrySubmitDoesNotBlockWhenFull(t *testing.T) {
	p := New(1, 1)
	defer p.Close()

	block := make(chan struct{})
	p.Submit(JobFunc(func() any {
		<-block

		return nil
	}))

	// Queue depth 1: this second job fills the buffered channel.
	ok := p.TrySubmit(JobFunc(func() any { return nil }))
	if !ok {
		t.Fatalf("expected second submit to fit the queue buffer")
	}

	// Third should not fit (worker busy, buffer full) and must not block.
	done := make(chan bool, 1)

	go func() { done <- p.TrySubmit(JobFunc(func() any { return nil })) }()

	select {
	case ok := <-done:
		if ok {
			t.Fatalf("expected TrySubmit to report false when queue is full")
		}
	case <-time.After(time.Second):
		t.Fatalf("TrySubmit blocked instead of returning false")
	}

	close(block)
}
