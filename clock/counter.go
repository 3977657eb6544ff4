package clock

import (
	"fmt"
	"runtime"
)

// CounterInfo describes the hardware cycle counter on this machine.
type CounterInfo struct {
	// Available reports whether the counter can be read at all.
	Available bool
	// Invariant reports whether the counter advances at the same
	// fixed rate on every core, making timestamps taken on
	// different cores comparable.
	Invariant bool
	// FrequencyHz is the counter rate in ticks per second, 0 when
	// it could not be determined.
	FrequencyHz uint64
}

// Detect probes the hardware cycle counter and reports its
// capabilities. The probe may take tens of milliseconds when the
// frequency has to be calibrated against the wall clock; callers
// should invoke it once and keep the result.
func Detect() CounterInfo {
	return detect()
}

// Counter is the hardware cycle counter source.
//
// Timestamps taken on different cores are only comparable when the
// counter is invariant; check Detect before sharing one Counter
// across goroutines that may migrate between cores.
type Counter struct {
	freq uint64
}

var _ Source = (*Counter)(nil)

// NewCounter returns a hardware counter source, or an error when the
// counter is unavailable on this machine. Callers are expected to
// fall back to Wall.
func NewCounter() (*Counter, error) {
	info := detect()
	if !info.Available {
		return nil, fmt.Errorf(
			"hardware cycle counter unavailable on %s/%s",
			runtime.GOOS, runtime.GOARCH,
		)
	}

	return &Counter{freq: info.FrequencyHz}, nil
}

func (c *Counter) Now() uint64 {
	return readCounter()
}

func (c *Counter) Frequency() uint64 {
	return c.freq
}
