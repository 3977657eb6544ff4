// Package clock provides the raw timestamp sources consumed by the
// profiler engine, hardware counter capability detection and
// tick-to-time conversion helpers.
package clock

// Source produces raw 64-bit timestamps in a source-defined unit.
type Source interface {
	// Now returns the current raw counter value. It increases
	// monotonically within one wrap cycle of the counter.
	Now() uint64
	// Frequency returns the counter rate in ticks per second,
	// or 0 when unknown.
	Frequency() uint64
}
