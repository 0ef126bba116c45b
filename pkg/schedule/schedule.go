// Package schedule provides a small interval-based task scheduler.
//
// Usage:
//
//	sched := schedule.New()
//	sched.Every(5*time.Second).Name("stats-refresh").Run(refreshStats)
//	sched.Start(ctx)
//
// It replaces the old dashboard's Swing refresh timer: tasks fire on a
// fixed interval, never overlap themselves, and a panicking task is logged
// instead of killing the process.
package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shashiranjanraj/laundro/pkg/logger"
)

// Task is the function signature for a scheduled task.
type Task func()

type entry struct {
	id       string
	interval time.Duration
	task     Task
	lastRun  time.Time
	running  bool // overlap guard
	mu       sync.Mutex
}

// Scheduler owns a set of interval tasks. Construct one per process and
// pass it down; there is no global registry.
type Scheduler struct {
	mu      sync.Mutex
	entries []*entry
}

func New() *Scheduler {
	return &Scheduler{}
}

// Builder is the fluent handle for a single task before registration.
type Builder struct {
	s *Scheduler
	e *entry
}

// Every starts a builder for a task firing on the given interval.
func (s *Scheduler) Every(interval time.Duration) *Builder {
	return &Builder{s: s, e: &entry{interval: interval}}
}

// Name gives the entry a human-readable identifier for logging.
func (b *Builder) Name(id string) *Builder {
	b.e.id = id
	return b
}

// Run registers the task. Call Start to begin dispatching.
func (b *Builder) Run(fn Task) {
	b.e.task = fn
	b.s.mu.Lock()
	if b.e.id == "" {
		b.e.id = fmt.Sprintf("task-%d", len(b.s.entries)+1)
	}
	b.s.entries = append(b.s.entries, b.e)
	b.s.mu.Unlock()
}

// Start begins the scheduler loop in the background. It ticks every second
// and dispatches due tasks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go s.run(ctx)
	logger.Info("schedule: scheduler started")
}

func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("schedule: scheduler stopped")
			return
		case now := <-ticker.C:
			s.mu.Lock()
			current := make([]*entry, len(s.entries))
			copy(current, s.entries)
			s.mu.Unlock()

			for _, e := range current {
				if isDue(e, now) {
					dispatch(e)
				}
			}
		}
	}
}

func isDue(e *entry, now time.Time) bool {
	if e.lastRun.IsZero() {
		return true // first run
	}
	return now.Sub(e.lastRun) >= e.interval
}

func dispatch(e *entry) {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		logger.Warn("schedule: skipping overlapping task", "id", e.id)
		return
	}
	e.running = true
	e.lastRun = time.Now()
	e.mu.Unlock()

	go func() {
		defer func() {
			e.mu.Lock()
			e.running = false
			e.mu.Unlock()
			if r := recover(); r != nil {
				logger.Error("schedule: task panicked", "id", e.id, "panic", r)
			}
		}()

		e.task()
	}()
}
