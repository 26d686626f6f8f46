package bench

import (
	"math"
	"math/bits"
	"slices"
)

// Source is a stream of uniformly distributed 64-bit words.
// *xorshift.Generator and both xorshift engines satisfy it.
type Source interface {
	Uint64() uint64
}

// intN returns a value in [0,n) by multiply-shift reduction; n must be positive.
func intN(rng Source, n uint64) uint64 {
	hi, _ := bits.Mul64(rng.Uint64(), n)
	return hi
}

// Median returns the median of data without modifying it. It averages the two middle values
// for an even number of elements and returns 0 for empty input.
func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)

	l := len(sorted)
	if l%2 == 0 {
		return (sorted[l/2-1] + sorted[l/2]) / 2
	}
	return sorted[l/2]
}

// Statistics returns the population mean, variance and standard deviation of data.
// Variance and standard deviation are -1 for empty input.
func Statistics(data []float64) (mean, variance, stddev float64) {
	if len(data) == 0 {
		return 0, -1, -1
	}

	var sum float64
	n := float64(len(data))
	for _, v := range data {
		sum += v
	}
	mean = sum / n

	for _, v := range data {
		variance += (v - mean) * (v - mean)
	}
	variance /= n
	stddev = math.Sqrt(variance)
	return
}

// FloatsEqualWithTolerance reports whether f1 and f2 differ by at most tolerancePercentage
// percent of either value.
func FloatsEqualWithTolerance(f1, f2, tolerancePercentage float64) bool {
	absTol1 := math.Abs(f1 * tolerancePercentage / 100)
	if f1-absTol1 <= f2 && f1+absTol1 >= f2 {
		return true
	}
	absTol2 := math.Abs(f2 * tolerancePercentage / 100)
	return f2-absTol2 <= f1 && f2+absTol2 >= f1
}

// partition rearranges xs[low..high] around xs[high] and returns the pivot's final index.
func partition(xs []float64, low, high int) int {
	pivot := xs[high]
	i := low
	for j := low; j < high; j++ {
		if xs[j] < pivot {
			xs[i], xs[j] = xs[j], xs[i]
			i++
		}
	}
	xs[i], xs[high] = xs[high], xs[i]
	return i
}

// quickselect returns the k-th smallest element (0-based) in expected O(n) time.
// Pivots are drawn from rng. See https://en.wikipedia.org/wiki/Quickselect
func quickselect(xs []float64, k int, rng Source) float64 {
	low, high := 0, len(xs)-1
	for low < high {
		pivot := low + int(intN(rng, uint64(high-low+1)))
		xs[pivot], xs[high] = xs[high], xs[pivot]
		p := partition(xs, low, high)
		switch {
		case p == k:
			return xs[p]
		case p < k:
			low = p + 1
		default:
			high = p - 1
		}
	}
	return xs[k]
}

// QuickMedian returns the median of xs in expected O(n) time, or NaN for empty input.
// For an even number of elements it returns the higher of the two middle ones.
// It reorders xs; pass a copy to keep the original order.
func QuickMedian(xs []float64, rng Source) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return quickselect(xs, len(xs)/2, rng)
}
