package pipeline

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// Progress logs batch throughput every interval ticks, with a rate and a
// rough ETA when the total is known. Safe for concurrent Tick calls.
type Progress struct {
	log      *slog.Logger
	label    string
	total    int64
	interval int64
	count    atomic.Int64
	start    time.Time
}

func NewProgress(log *slog.Logger, label string, total int64) *Progress {
	interval := int64(1000)
	if total > 0 && total < 10_000 {
		interval = 100
	}
	return &Progress{
		log:      log,
		label:    label,
		total:    total,
		interval: interval,
		start:    time.Now(),
	}
}

// Tick records one finished unit and logs on interval boundaries.
func (p *Progress) Tick() {
	n := p.count.Add(1)
	if n%p.interval != 0 && n != p.total {
		return
	}
	elapsed := time.Since(p.start)
	rate := float64(n) / elapsed.Seconds()

	attrs := []any{"done", n, "rate_per_sec", int64(rate)}
	if p.total > 0 {
		attrs = append(attrs, "total", p.total)
		if rate > 0 {
			eta := time.Duration(float64(p.total-n)/rate) * time.Second
			attrs = append(attrs, "eta", eta.Round(time.Second).String())
		}
	}
	p.log.Info(p.label, attrs...)
}

// Count returns the number of ticks so far.
func (p *Progress) Count() int64 {
	return p.count.Load()
}
