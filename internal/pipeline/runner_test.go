package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func feed(tasks ...Task) <-chan Task {
	ch := make(chan Task, len(tasks))
	for _, t := range tasks {
		ch <- t
	}
	close(ch)
	return ch
}

func TestRunner_CountsOutcomes(t *testing.T) {
	tasks := feed(
		Task{Name: "ok-1", Run: func(context.Context) error { return nil }},
		Task{Name: "ok-2", Run: func(context.Context) error { return nil }},
		Task{Name: "bad", Run: func(context.Context) error { return fmt.Errorf("boom") }},
		Task{Name: "skip", Run: func(context.Context) error { return ErrSkipped }},
	)

	stats := NewRunner(2, discardLogger()).Run(context.Background(), tasks, nil)
	if stats.Done != 2 || stats.Failed != 1 || stats.Skipped != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestRunner_PanicIsIsolated(t *testing.T) {
	var after atomic.Int64
	tasks := feed(
		Task{Name: "panics", Run: func(context.Context) error { panic("bad article") }},
		Task{Name: "ok", Run: func(context.Context) error { after.Add(1); return nil }},
	)

	stats := NewRunner(1, discardLogger()).Run(context.Background(), tasks, nil)
	if stats.Failed != 1 {
		t.Errorf("panic should count as a failure, got %+v", stats)
	}
	if stats.Done != 1 || after.Load() != 1 {
		t.Error("a panicking task must not stop the worker")
	}
}

func TestRunner_AllTasksProcessed(t *testing.T) {
	const n = 200
	var ran atomic.Int64
	ch := make(chan Task)
	go func() {
		for i := 0; i < n; i++ {
			ch <- Task{Name: fmt.Sprintf("t-%d", i), Run: func(context.Context) error {
				ran.Add(1)
				return nil
			}}
		}
		close(ch)
	}()

	progress := NewProgress(discardLogger(), "test batch", n)
	stats := NewRunner(4, discardLogger()).Run(context.Background(), ch, progress)
	if stats.Done != n || ran.Load() != n {
		t.Errorf("expected %d done, got %+v (ran %d)", n, stats, ran.Load())
	}
	if progress.Count() != n {
		t.Errorf("expected %d progress ticks, got %d", n, progress.Count())
	}
}

func TestRunner_ContextCancelStopsWorkers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan Task)

	done := make(chan Stats, 1)
	go func() {
		done <- NewRunner(2, discardLogger()).Run(ctx, ch, nil)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop after cancel")
	}
}

func TestRunner_ClampsWorkerCount(t *testing.T) {
	stats := NewRunner(0, discardLogger()).Run(context.Background(),
		feed(Task{Name: "only", Run: func(context.Context) error { return nil }}), nil)
	if stats.Done != 1 {
		t.Errorf("runner with clamped worker count must still run tasks: %+v", stats)
	}
}
