package utils

import (
	"sync"
	"time"
)

// Timer holds at most one pending task. It is guarded by its owner's lock:
// Schedule, Stop and Pending must be called with that lock held, and the task
// runs with it held. A task that fires after being stopped or replaced is dropped.
type Timer struct {
	mu  sync.Locker
	t   *time.Timer
	gen uint64
}

func NewTimer(mu sync.Locker) *Timer {
	return &Timer{mu: mu}
}

// Schedule cancels the pending task, if any, and runs task after d.
func (t *Timer) Schedule(d time.Duration, task func()) {
	t.Stop()
	gen := t.gen
	t.t = time.AfterFunc(d, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.gen != gen {
			return
		}
		t.t = nil
		task()
	})
}

func (t *Timer) Stop() {
	t.gen++
	if t.t != nil {
		t.t.Stop()
		t.t = nil
	}
}

func (t *Timer) Pending() bool {
	return t.t != nil
}
