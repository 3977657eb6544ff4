// Package tickprof is a lightweight in-process latency profiler.
//
// Callers bracket a unit of work with Start/Stop (or hand two raw
// timestamps to Track) and the profiler accumulates a frequency
// histogram of observed durations, keyed by exact duration value.
// From the histogram it answers total/average time, event counts and
// percentile queries, both by occurrence and by duration range.
//
// The engine is source-agnostic: durations are raw 64-bit tick values
// in whatever unit the configured clock.Source reports (CPU cycles or
// nanoseconds). Conversion to time units lives in the clock package.
package tickprof

import (
	"math"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/hotloop/tickprof/clock"
)

// Profiler accumulates a histogram of event durations.
//
// All methods are safe for concurrent use. Memory grows with the
// number of distinct duration values observed, not with the number of
// recorded events.
type Profiler struct {
	src clock.Source

	mu      sync.Mutex
	buckets map[uint64]uint64
	keys    []uint64 // ascending once sorted
	sorted  bool

	// Incremented under mu, readable without it.
	total atomic.Uint64
}

// New creates an empty Profiler reading timestamps from src.
//
// src may be nil when the caller captures timestamps itself and only
// uses Track and the statistics queries; Start and Stop require a
// non-nil source.
func New(src clock.Source) *Profiler {
	return &Profiler{
		src:     src,
		buckets: make(map[uint64]uint64),
	}
}

// Diff returns the elapsed ticks between two raw timestamps.
//
// When end < start the counter is assumed to have wrapped past its
// maximum exactly once and the distance is computed as
// (MaxUint64 - end) + start with wrapping arithmetic. Multiple wraps
// are not detected; a 64-bit counter does not wrap twice within a
// realistic program lifetime.
func Diff(end, start uint64) uint64 {
	if end >= start {
		return end - start
	}

	return (math.MaxUint64 - end) + start
}

// Start returns a begin-timestamp token to be passed to Stop.
func (p *Profiler) Start() uint64 {
	return p.src.Now()
}

// Stop captures the current timestamp, records the duration since
// start and returns it.
func (p *Profiler) Stop(start uint64) uint64 {
	return p.Track(p.src.Now(), start)
}

// Track records the duration between two already-captured timestamps
// and returns it.
func (p *Profiler) Track(end, start uint64) uint64 {
	d := Diff(end, start)

	p.mu.Lock()

	if _, ok := p.buckets[d]; ok {
		p.buckets[d]++
	} else {
		p.buckets[d] = 1
		p.keys = append(p.keys, d)
		p.sorted = false
	}

	p.total.Add(1)

	p.mu.Unlock()

	return d
}

// Clear resets the profiler to its initial empty state.
func (p *Profiler) Clear() {
	p.mu.Lock()

	p.buckets = make(map[uint64]uint64)
	p.keys = p.keys[:0]
	p.sorted = true
	p.total.Store(0)

	p.mu.Unlock()
}

// Snapshot returns a copy of the duration histogram, mapping each
// distinct duration value to its occurrence count.
func (p *Profiler) Snapshot() map[uint64]uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make(map[uint64]uint64, len(p.buckets))
	for d, n := range p.buckets {
		out[d] = n
	}

	return out
}

// sortKeysLocked orders the key slice ascending. Inserts only append;
// the sort is deferred to the queries that need ordered iteration.
// Callers must hold mu.
func (p *Profiler) sortKeysLocked() {
	if !p.sorted {
		slices.Sort(p.keys)
		p.sorted = true
	}
}
