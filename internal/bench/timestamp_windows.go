//go:build windows

package bench

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Timestamp is a relative point in time with the highest resolution the runtime system offers.
// On Windows it is a raw QueryPerformanceCounter reading, only comparable within one run of a program.
type Timestamp = int64

var (
	kernel32    = windows.NewLazySystemDLL("kernel32.dll")
	procFreq    = kernel32.NewProc("QueryPerformanceFrequency")
	procCounter = kernel32.NewProc("QueryPerformanceCounter")

	ticksPerSecond = counterFrequency()
)

func counterFrequency() int64 {
	var freq int64
	r1, _, err := procFreq.Call(uintptr(unsafe.Pointer(&freq)))
	if r1 == 0 {
		panic(fmt.Sprintf("QueryPerformanceFrequency failed: %v", err))
	}
	return freq
}

// Now returns the current Timestamp.
func Now() Timestamp {
	var ticks int64
	procCounter.Call(uintptr(unsafe.Pointer(&ticks)))
	return ticks
}

// Since returns the nanoseconds elapsed between earlier and later.
// The result is negative if later is before earlier.
func Since(earlier, later Timestamp) int64 {
	d := later - earlier
	d *= int64(1_000_000_000)
	d /= ticksPerSecond
	return d
}
