package bench

import (
	"fmt"
	"math"
	"slices"

	"github.com/TomTonic/xorshift"
)

// MinimumDataPoints is the smallest sample size Compare accepts for each side.
const MinimumDataPoints = 11

// Comparison holds the confidence that sample A is faster than sample B by at least Speedup,
// a relative value such as 0.1 for ten percent.
type Comparison struct {
	Speedup    float64
	Confidence float64
}

// Compare estimates, for each relative speedup in speedups, the confidence that the runtimes in
// a are faster than those in b by at least that much. It runs reps bootstrap replicates drawn from
// a xoroshiro128+ generator seeded with seed, or with operating system entropy if seed is omitted.
// The results are ordered by ascending speedup. An empty speedups list tests 0.
func Compare(a, b []float64, speedups []float64, reps uint64, seed ...uint64) ([]Comparison, error) {
	if len(a) < MinimumDataPoints || len(b) < MinimumDataPoints {
		return nil, fmt.Errorf("not enough data points: need at least %d runtimes for each of A and B, got %d and %d",
			MinimumDataPoints, len(a), len(b))
	}
	thresholds := slices.Clone(speedups)
	if len(thresholds) == 0 {
		thresholds = []float64{0.0}
	}
	slices.Sort(thresholds)

	rng := xorshift.New(xorshift.Xoroshiro128Plus, xorshift.View, seed...)
	conf := BootstrapConfidence(a, b, thresholds, reps, rng)

	result := make([]Comparison, 0, len(thresholds))
	for _, t := range thresholds {
		result = append(result, Comparison{Speedup: t, Confidence: conf[t]})
	}
	return result, nil
}

// bootstrapSample fills dst with len(dst) values drawn from xs with replacement.
// xs must not be empty unless dst is.
func bootstrapSample(dst, xs []float64, rng Source) []float64 {
	n := uint64(len(xs))
	for i := range dst {
		dst[i] = xs[intN(rng, n)]
	}
	return dst
}

// relativeSpeedup returns 1 - medA/medB. NaN medians give NaN and equal medians give 0.
// A medB that vanishes relative to medA is replaced by 1e-12·|medA| so the ratio stays finite.
func relativeSpeedup(medA, medB float64) float64 {
	switch {
	case math.IsNaN(medA) || math.IsNaN(medB):
		return math.NaN()
	case medA == medB:
		return 0.0
	}
	denom := medB
	eps := math.Max(math.Abs(medA)*1e-12, 1e-300)
	if !math.IsInf(medA, 0) && math.Abs(medB) < eps {
		denom = eps
	}
	return 1.0 - medA/denom
}

// BootstrapConfidence estimates the probability that the relative speedup of A over B,
// 1 - median(A)/median(B), meets or exceeds each threshold.
//
// Every replicate resamples A and B with replacement, takes both medians and counts the thresholds
// the resulting speedup reaches. Replicates with a NaN median count for no threshold. The returned
// map holds the fraction of replicates per threshold, or NaN for every threshold if reps is zero.
//
// All replicates share rng, so a freshly seeded rng reproduces the result.
func BootstrapConfidence(A, B []float64, thresholds []float64, reps uint64, rng Source) map[float64]float64 {
	confidence := make(map[float64]float64, len(thresholds))
	if reps == 0 {
		for _, t := range thresholds {
			confidence[t] = math.NaN()
		}
		return confidence
	}

	counts := make(map[float64]uint64, len(thresholds))
	sampleA := make([]float64, len(A))
	sampleB := make([]float64, len(B))
	for range reps {
		medA := QuickMedian(bootstrapSample(sampleA, A, rng), rng)
		medB := QuickMedian(bootstrapSample(sampleB, B, rng), rng)
		delta := relativeSpeedup(medA, medB)
		for _, t := range thresholds {
			if delta >= t {
				counts[t]++
			}
		}
	}

	for _, t := range thresholds {
		confidence[t] = float64(counts[t]) / float64(reps)
	}
	return confidence
}
