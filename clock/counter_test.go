package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_ConsistentWithNewCounter(t *testing.T) {
	info := Detect()

	c, err := NewCounter()
	if !info.Available {
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unavailable")

		return
	}

	require.NoError(t, err)
	assert.Equal(t, info.FrequencyHz, c.Frequency())
}

func TestCounter_Advances(t *testing.T) {
	c, err := NewCounter()
	if err != nil {
		t.Skipf("no hardware counter: %v", err)
	}

	a := c.Now()
	b := c.Now()

	// Back-to-back reads on the same core never wrap a 64-bit
	// counter, so the second read is at or past the first.
	assert.GreaterOrEqual(t, b, a)
}
