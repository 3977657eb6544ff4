package clock

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConversions(t *testing.T) {
	// One full second of ticks at a 3.4GHz counter.
	const hz = 3_400_000_000

	assert.InDelta(t, 1.0, Seconds(hz, hz), 1e-9)
	assert.InDelta(t, 1_000.0, Milliseconds(hz, hz), 1e-6)
	assert.InDelta(t, 1_000_000.0, Microseconds(hz, hz), 1e-3)
	assert.InDelta(t, 1_000_000_000.0, Nanoseconds(hz, hz), 1)
	assert.InDelta(t, 1_000_000_000_000.0, Picoseconds(hz, hz), 1e3)
}

func TestConversions_SingleTick(t *testing.T) {
	// One tick of a 3.4GHz counter is ~0.294ns, or ~294ps.
	const hz = 3_400_000_000

	assert.InDelta(t, 0.294, Nanoseconds(1, hz), 0.001)
	assert.InDelta(t, 294.1, Picoseconds(1, hz), 0.1)
}

func TestConversions_ZeroFrequency(t *testing.T) {
	assert.True(t, math.IsInf(Seconds(1, 0), 1))
	assert.True(t, math.IsNaN(Nanoseconds(0, 0)))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, time.Second, Duration(2_200, 2_200))
	assert.Equal(t, 500*time.Millisecond, Duration(1_100, 2_200))
	assert.Equal(t, time.Duration(0), Duration(123, 0))
}

func TestWall(t *testing.T) {
	w := NewWall()

	assert.Equal(t, uint64(1_000_000_000), w.Frequency())

	a := w.Now()
	b := w.Now()
	assert.GreaterOrEqual(t, b, a)
}
