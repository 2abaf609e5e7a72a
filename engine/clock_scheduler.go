package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/starblaster/core"
)

// TaskStats reports a periodic task's run history
type TaskStats struct {
	Name    string
	Period  time.Duration
	Runs    uint64
	Skipped uint64
}

type periodicTask struct {
	name   string
	period time.Duration
	next   time.Time
	fn     func()

	runs    uint64
	skipped uint64
}

// Scheduler runs fixed-period tasks on the caller's goroutine
// Poll is called between frame updates, so tasks never preempt a frame
type Scheduler struct {
	clock core.Clock
	tasks []*periodicTask
}

// NewScheduler creates an empty scheduler reading time from clock
func NewScheduler(clock core.Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// Every registers fn to run once per period, first run one period from now
func (s *Scheduler) Every(name string, period time.Duration, fn func()) error {
	if period <= 0 {
		return fmt.Errorf("task %q: period must be positive, got %v", name, period)
	}
	s.tasks = append(s.tasks, &periodicTask{
		name:   name,
		period: period,
		next:   s.clock.Now().Add(period),
		fn:     fn,
	})
	return nil
}

// Poll runs each due task at most once, in registration order, and returns the run count
// A task that fell a full period behind drops the missed ticks and re-anchors at now
func (s *Scheduler) Poll() int {
	now := s.clock.Now()
	ran := 0

	for _, t := range s.tasks {
		if now.Before(t.next) {
			continue
		}

		t.fn()
		t.runs++
		ran++

		t.next = t.next.Add(t.period)
		if !now.Before(t.next) {
			missed := uint64(now.Sub(t.next)/t.period) + 1
			t.skipped += missed
			t.next = now.Add(t.period)
		}
	}

	return ran
}

// Rearm restarts every task's period from now, discarding pending ticks
func (s *Scheduler) Rearm() {
	now := s.clock.Now()
	for _, t := range s.tasks {
		t.next = now.Add(t.period)
	}
}

// Stats returns per-task counters in registration order
func (s *Scheduler) Stats() []TaskStats {
	out := make([]TaskStats, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = TaskStats{Name: t.name, Period: t.period, Runs: t.runs, Skipped: t.skipped}
	}
	return out
}
