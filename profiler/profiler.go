// Package profiler tracks per-operation wall times and process memory for the
// command line tools.
package profiler

import (
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Profiler aggregates operation timings. It is safe for concurrent use.
type Profiler struct {
	mu    sync.Mutex
	log   zerolog.Logger
	start time.Time
	ops   map[string]*timing
	order []string
}

type timing struct {
	total time.Duration
	min   time.Duration
	max   time.Duration
	count int64
}

// New returns a profiler reporting through the given logger.
func New(log zerolog.Logger) *Profiler {
	return &Profiler{
		log:   log,
		start: time.Now(),
		ops:   make(map[string]*timing),
	}
}

// StartOperation begins timing a named operation and returns the function that
// stops it.
//
// Arguments:
// - name: The name of the operation to track.
//
// Returns:
// - A function to call when the operation completes.
func (p *Profiler) StartOperation(name string) func() {
	start := time.Now()
	return func() {
		p.record(name, time.Since(start))
	}
}

func (p *Profiler) record(name string, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tr, ok := p.ops[name]
	if !ok {
		tr = &timing{min: d, max: d}
		p.ops[name] = tr
		p.order = append(p.order, name)
	}
	tr.total += d
	tr.count++
	if d < tr.min {
		tr.min = d
	}
	if d > tr.max {
		tr.max = d
	}
}

// Report logs one line per tracked operation plus a memory summary, in the
// order operations were first seen.
func (p *Profiler) Report() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, name := range p.order {
		tr := p.ops[name]
		avg := tr.total / time.Duration(tr.count)
		p.log.Info().
			Str("operation", name).
			Dur("avg", avg).
			Dur("min", tr.min).
			Dur("max", tr.max).
			Int64("count", tr.count).
			Msg("operation timing")
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	p.log.Info().
		Dur("uptime", time.Since(p.start)).
		Uint64("heap_alloc", mem.HeapAlloc).
		Uint64("total_alloc", mem.TotalAlloc).
		Uint32("gc_cycles", mem.NumGC).
		Msg("runtime summary")
}
