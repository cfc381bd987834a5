package worker

import (
	"sync/atomic"
	"testing"
)

type countJob struct {
	id      string
	counter *atomic.Int64
}

func (j *countJob) Execute() error {
	j.counter.Add(1)
	return nil
}

func (j *countJob) ID() string { return j.id }

func TestPoolRunsAllJobs(t *testing.T) {
	var counter atomic.Int64
	p := NewPool(4, 16)
	for i := 0; i < 10; i++ {
		if !p.Submit(&countJob{id: "job", counter: &counter}) {
			t.Fatalf("submission %d rejected", i)
		}
	}
	p.Stop()

	if got := counter.Load(); got != 10 {
		t.Errorf("expected 10 executions, got %d", got)
	}
}

func TestPoolRejectsWhenQueueFull(t *testing.T) {
	var counter atomic.Int64
	// No workers: the queue fills and further submissions are refused.
	p := NewPool(0, 1)
	if !p.Submit(&countJob{id: "a", counter: &counter}) {
		t.Fatal("first submission should fit the queue")
	}
	if p.Submit(&countJob{id: "b", counter: &counter}) {
		t.Error("expected rejection when queue is full")
	}
}
