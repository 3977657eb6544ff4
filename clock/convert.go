package clock

import "time"

// Conversion helpers from raw tick values to time units, given the
// source frequency in ticks per second. The float helpers follow
// IEEE division: a zero frequency yields +Inf (or NaN for zero
// ticks) rather than panicking.

// Seconds converts ticks to seconds.
func Seconds(ticks float64, hz uint64) float64 {
	return ticks / float64(hz)
}

// Milliseconds converts ticks to milliseconds.
func Milliseconds(ticks float64, hz uint64) float64 {
	return ticks * 1e3 / float64(hz)
}

// Microseconds converts ticks to microseconds.
func Microseconds(ticks float64, hz uint64) float64 {
	return ticks * 1e6 / float64(hz)
}

// Nanoseconds converts ticks to nanoseconds.
func Nanoseconds(ticks float64, hz uint64) float64 {
	return ticks * 1e9 / float64(hz)
}

// Picoseconds converts ticks to picoseconds. Sub-nanosecond
// granularity matters for cycle counters above 1GHz, where one tick
// is a fraction of a nanosecond.
func Picoseconds(ticks float64, hz uint64) float64 {
	return ticks * 1e12 / float64(hz)
}

// Duration converts a tick count to a time.Duration. Returns 0 when
// the frequency is unknown.
func Duration(ticks, hz uint64) time.Duration {
	if hz == 0 {
		return 0
	}

	return time.Duration(1e9 * float64(ticks) / float64(hz))
}
