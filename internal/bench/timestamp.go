package bench

import (
	"math"
	"sync"
)

var (
	calibrationRounds = 10_000_000

	// precision caches the smallest positive difference between two Now() calls in nanoseconds.
	precision     int64
	precisionOnce sync.Once
)

// Precision returns the resolution of timestamps obtained via Now() in nanoseconds.
// Expect 100ns on Windows and typically between 20ns and 100ns on Linux and macOS.
// The first call calibrates and takes a moment. It is safe for concurrent use.
func Precision() int64 {
	precisionOnce.Do(func() {
		precision = calibrate(calibrationRounds)
	})
	return precision
}

func calibrate(rounds int) int64 {
	minDiff := int64(math.MaxInt64)
	for range rounds {
		t1 := Now()
		t2 := Now()
		diff := Since(t1, t2)
		if diff > 0 && diff < minDiff {
			minDiff = diff
		}
	}
	return minDiff
}
