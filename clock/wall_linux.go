//go:build linux

package clock

import (
	"time"

	"golang.org/x/sys/unix"
)

// wallNow reads CLOCK_MONOTONIC_RAW, the raw hardware-backed kernel
// clock unaffected by NTP frequency adjustment.
func wallNow() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC_RAW, &ts); err != nil {
		return uint64(time.Now().UnixNano())
	}

	return uint64(ts.Nano())
}
