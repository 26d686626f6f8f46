package bench

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSince(t *testing.T) {
	t1 := Now()
	t1a := time.Now()
	time.Sleep(1*time.Second + 30*time.Millisecond)
	t2 := Now()
	t2a := time.Now()

	diff := Since(t1, t2)
	diffa := t2a.Sub(t1a)
	assert.True(t, FloatsEqualWithTolerance(float64(diff), float64(diffa), 0.5),
		"values diverge too much: %v vs. %v", time.Duration(diff), diffa)
	assert.Negative(t, Since(t2, t1))
}

func TestCalibrate(t *testing.T) {
	minDiff := calibrate(1_000_000)
	t.Logf("calibrate result: %d ns", minDiff)
	assert.GreaterOrEqual(t, minDiff, int64(1))
	assert.Less(t, minDiff, int64(1_000_000))
	if runtime.GOOS == "windows" {
		assert.Equal(t, int64(100), minDiff, "QueryPerformanceCounter ticks at 10MHz")
	}
}

func TestPrecisionIsCached(t *testing.T) {
	prevRounds := calibrationRounds
	defer func() {
		calibrationRounds = prevRounds
		precisionOnce = sync.Once{}
	}()
	precisionOnce = sync.Once{}
	calibrationRounds = 10_000

	first := Precision()
	assert.GreaterOrEqual(t, first, int64(1))
	precision = 123456
	assert.Equal(t, int64(123456), Precision(), "Precision must return the cached value without recalibration")
}

func TestPrecisionConcurrentCallers(t *testing.T) {
	prevRounds := calibrationRounds
	defer func() {
		calibrationRounds = prevRounds
		precisionOnce = sync.Once{}
	}()
	precisionOnce = sync.Once{}
	calibrationRounds = 10_000

	const callers = 8
	got := make([]int64, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = Precision()
		}()
	}
	wg.Wait()
	for i := range got {
		assert.Equal(t, got[0], got[i], "caller %d saw a different calibration", i)
	}
	assert.GreaterOrEqual(t, got[0], int64(1))
}
