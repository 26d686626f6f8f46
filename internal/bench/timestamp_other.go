//go:build !windows

package bench

import "time"

// Timestamp is a relative point in time with the highest resolution the runtime system offers.
// Timestamps are only comparable within one run of a program.
type Timestamp = time.Time

// Now returns the current Timestamp.
func Now() Timestamp {
	return time.Now()
}

// Since returns the nanoseconds elapsed between earlier and later.
// The result is negative if later is before earlier.
func Since(earlier, later Timestamp) int64 {
	return later.Sub(earlier).Nanoseconds()
}
