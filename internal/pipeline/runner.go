// Package pipeline runs batches of independent per-article tasks over a
// worker pool. One bad article must never abort a batch: every task failure
// is caught, logged, counted, and the pool moves on.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Task is one unit of work, typically a single article.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Stats counts the outcome of a batch.
type Stats struct {
	Done    int64
	Failed  int64
	Skipped int64
}

// Runner drains task channels with a fixed pool of workers.
type Runner struct {
	workers int
	log     *slog.Logger
}

func NewRunner(workers int, log *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{workers: workers, log: log}
}

// Run processes tasks until the channel closes or the context is canceled,
// then returns the batch stats. Task panics and errors are isolated per
// task.
func (r *Runner) Run(ctx context.Context, tasks <-chan Task, progress *Progress) Stats {
	var stats Stats
	var wg sync.WaitGroup

	for range r.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case task, ok := <-tasks:
					if !ok {
						return
					}
					if err := r.runOne(ctx, task); err != nil {
						if err == ErrSkipped {
							atomic.AddInt64(&stats.Skipped, 1)
						} else {
							r.log.Error("task failed", "task", task.Name, "error", err)
							atomic.AddInt64(&stats.Failed, 1)
						}
					} else {
						atomic.AddInt64(&stats.Done, 1)
					}
					if progress != nil {
						progress.Tick()
					}
				}
			}
		}()
	}

	wg.Wait()
	return stats
}

// ErrSkipped marks a task that found its work already done.
var ErrSkipped = fmt.Errorf("skipped")

func (r *Runner) runOne(ctx context.Context, task Task) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return task.Run(ctx)
}
