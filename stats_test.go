package xorshift

import "math"

// moments returns the population mean and variance of xs.
func moments[T int64 | float64](xs []T) (mean, variance float64) {
	if len(xs) == 0 {
		return 0, -1
	}
	n := float64(len(xs))
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	mean = sum / n
	for _, x := range xs {
		d := float64(x) - mean
		variance += d * d
	}
	variance /= n
	return mean, variance
}

// chiSquare computes the Pearson chi-square statistic Σ (observed_i - expected_i)^2 / expected_i.
func chiSquare(counts []int, expected []float64) float64 {
	var x2 float64
	for i, o := range counts {
		diff := float64(o) - expected[i]
		x2 += (diff * diff) / expected[i]
	}
	return x2
}

// chiSquarePValueEven computes the upper-tail p-value P(χ² ≥ x2) for an even number of
// degrees of freedom df = 2m with the closed-form series
//
//	P(χ² ≥ x2) = e^{-x2/2} * sum_{j=0}^{m-1} (x2/2)^j / j!
func chiSquarePValueEven(x2 float64, df int) float64 {
	m := df / 2
	t := math.Exp(-x2 / 2.0)
	sum := 1.0 // j = 0
	term := 1.0
	for j := 1; j < m; j++ {
		term *= x2 / (2.0 * float64(j))
		sum += term
	}
	return t * sum
}

// chiSquarePValueApprox approximates the upper-tail p-value with the Wilson–Hilferty
// cube-root transform and the standard normal tail via math.Erf.
func chiSquarePValueApprox(x2 float64, df int) float64 {
	nu := float64(df)
	z := (math.Pow(x2/nu, 1.0/3.0) - (1.0 - 2.0/(9.0*nu))) / math.Sqrt(2.0/(9.0*nu))
	Phi := 0.5 * (1.0 + math.Erf(z/math.Sqrt2))
	return 1.0 - Phi
}

// p-value of the chi-squared distribution: exact series for even df, otherwise approximation
func chiSquarePValue(x2 float64, df int) float64 {
	if df <= 0 {
		return 1.0
	}
	if df%2 == 0 {
		return chiSquarePValueEven(x2, df)
	}
	return chiSquarePValueApprox(x2, df)
}

// binomialPMF returns P(X = k) for X ~ Binomial(n, p), 0 < p < 1.
func binomialPMF(n, k int64, p float64) float64 {
	lgn, _ := math.Lgamma(float64(n + 1))
	lgk, _ := math.Lgamma(float64(k + 1))
	lgnk, _ := math.Lgamma(float64(n - k + 1))
	return math.Exp(lgn - lgk - lgnk + float64(k)*math.Log(p) + float64(n-k)*math.Log(1-p))
}
