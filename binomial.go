package xorshift

import (
	"fmt"
	"math"
)

const (
	// bernoulliMaxTrials is the largest number of trials that is sampled by counting successes directly.
	bernoulliMaxTrials = 16
	// inversionMaxMean is the largest n*min(p,1-p) that is sampled by inversion. Above it BTPE is used,
	// its envelope constants are tuned for means beyond this value.
	inversionMaxMean = 30.0
)

type binomialStrategy uint8

const (
	binomialConstant binomialStrategy = iota
	binomialBernoulli
	binomialInversion
	binomialBTPE
)

func (s binomialStrategy) String() string {
	switch s {
	case binomialConstant:
		return "constant"
	case binomialBernoulli:
		return "bernoulli"
	case binomialInversion:
		return "inversion"
	case binomialBTPE:
		return "btpe"
	}
	return fmt.Sprintf("binomialStrategy(%d)", uint8(s))
}

func checkBinomial(n int64, p float64) error {
	if n < 0 {
		return fmt.Errorf("%w: number of trials must not be negative, got %d", ErrInvalidParameter, n)
	}
	if !(p >= 0.0 && p <= 1.0) { // also catches NaN
		return fmt.Errorf("%w: probability must be in [0,1], got %v", ErrInvalidParameter, p)
	}
	return nil
}

func chooseBinomialStrategy(n int64, p float64) binomialStrategy {
	if n == 0 || p == 0.0 || p == 1.0 {
		return binomialConstant
	}
	if n <= bernoulliMaxTrials {
		return binomialBernoulli
	}
	if float64(n)*min(p, 1.0-p) <= inversionMaxMean {
		return binomialInversion
	}
	return binomialBTPE
}

// fillBinomial writes one Binomial(n,p) sample per element of out.
// n and p must have been validated by checkBinomial.
func fillBinomial[E bitSource](e E, n int64, p float64, out []int64) {
	r := min(p, 1.0-p)
	mirrored := p > 0.5

	switch chooseBinomialStrategy(n, p) {
	case binomialConstant:
		v := int64(0)
		if p == 1.0 {
			v = n
		}
		for i := range out {
			out[i] = v
		}

	case binomialBernoulli:
		for i := range out {
			var k int64
			for range n {
				if Float64FromBits(e.Uint64()) < p {
					k++
				}
			}
			out[i] = k
		}

	case binomialInversion:
		inv := newInversionTable(n, r)
		for i := range out {
			k := inversionSample(e, &inv)
			if mirrored {
				k = n - k
			}
			out[i] = k
		}

	case binomialBTPE:
		env := newBTPEEnvelope(n, r)
		for i := range out {
			k := btpeSample(e, &env)
			if mirrored {
				k = n - k
			}
			out[i] = k
		}
	}
}

// inversionTable holds the per-request constants of the sequential search inversion.
// Valid for p <= 0.5 and small n*p only: q^n must not underflow.
type inversionTable struct {
	n     int64
	p, q  float64
	qn    float64 // P(X = 0)
	bound float64 // restart the search beyond this many successes
}

func newInversionTable(n int64, p float64) inversionTable {
	q := 1.0 - p
	np := float64(n) * p
	return inversionTable{
		n:     n,
		p:     p,
		q:     q,
		qn:    math.Exp(float64(n) * math.Log(q)),
		bound: min(float64(n), np+10.0*math.Sqrt(np*q+1)),
	}
}

// inversionSample walks the probability mass function from 0 upwards, subtracting each
// mass from a single uniform until it falls below the current mass.
func inversionSample[E bitSource](e E, t *inversionTable) int64 {
	var x int64
	px := t.qn
	u := Float64FromBits(e.Uint64())
	for u > px {
		x++
		if float64(x) > t.bound {
			x = 0
			px = t.qn
			u = Float64FromBits(e.Uint64())
			continue
		}
		u -= px
		px = float64(t.n-x+1) * t.p * px / (float64(x) * t.q)
	}
	return x
}

// btpeEnvelope holds the setup of the BTPE algorithm (Kachitvichyanukul & Schmeiser,
// "Binomial random variate generation", CACM 31(2), 1988) for p <= 0.5.
// The envelope consists of a triangle centered at the mode, two parallelograms at
// its sides and two exponential tails. Areas are cumulated in p1..p4.
type btpeEnvelope struct {
	n          int64
	m          int64 // mode
	r, q, nrq  float64
	fm, xm     float64
	xl, xr     float64
	c          float64
	laml, lamr float64
	p1, p2     float64
	p3, p4     float64
}

func newBTPEEnvelope(n int64, r float64) btpeEnvelope {
	nf := float64(n)
	q := 1.0 - r
	fm := nf*r + r
	m := int64(math.Floor(fm))
	p1 := math.Floor(2.195*math.Sqrt(nf*r*q)-4.6*q) + 0.5
	xm := float64(m) + 0.5
	xl := xm - p1
	xr := xm + p1
	c := 0.134 + 20.5/(15.3+float64(m))
	a := (fm - xl) / (fm - xl*r)
	laml := a * (1.0 + a/2.0)
	a = (xr - fm) / (xr * q)
	lamr := a * (1.0 + a/2.0)
	p2 := p1 * (1.0 + 2.0*c)
	p3 := p2 + c/laml
	p4 := p3 + c/lamr
	return btpeEnvelope{
		n: n, m: m,
		r: r, q: q, nrq: nf * r * q,
		fm: fm, xm: xm,
		xl: xl, xr: xr,
		c:    c,
		laml: laml, lamr: lamr,
		p1: p1, p2: p2, p3: p3, p4: p4,
	}
}

// btpeSample draws candidates from the envelope until one is accepted.
// Each candidate costs two raw words; the expected number of candidates is bounded
// independently of n.
func btpeSample[E bitSource](e E, b *btpeEnvelope) int64 {
	nf := float64(b.n)
	for {
		u := Float64FromBits(e.Uint64()) * b.p4
		v := Float64FromBits(e.Uint64())

		var y int64
		switch {
		case u <= b.p1:
			// triangle, always accepted
			return int64(math.Floor(b.xm - b.p1*v + u))

		case u <= b.p2:
			x := b.xl + (u-b.p1)/b.c
			v = v*b.c + 1.0 - math.Abs(float64(b.m)-x+0.5)/b.p1
			if v > 1.0 {
				continue
			}
			y = int64(math.Floor(x))

		case u <= b.p3:
			// left exponential tail
			yf := math.Floor(b.xl + math.Log(v)/b.laml)
			if yf < 0 || v == 0.0 {
				continue
			}
			y = int64(yf)
			v = v * (u - b.p2) * b.laml

		default:
			// right exponential tail
			yf := math.Floor(b.xr - math.Log(v)/b.lamr)
			if yf > nf || v == 0.0 {
				continue
			}
			y = int64(yf)
			v = v * (u - b.p3) * b.lamr
		}

		if b.accept(y, v) {
			return y
		}
	}
}

// accept compares v against f(y)/f(m). Close to the mode the ratio is evaluated by the
// recursion f(i)/f(i-1) = (n-i+1)p / (iq); further out a squeeze on log f(y)/f(m) decides
// most candidates and only the rest need Stirling's approximation.
func (b *btpeEnvelope) accept(y int64, v float64) bool {
	nf := float64(b.n)
	k := y - b.m
	if k < 0 {
		k = -k
	}
	kf := float64(k)

	if k <= 20 || kf >= b.nrq/2.0-1.0 {
		s := b.r / b.q
		a := s * (nf + 1.0)
		f := 1.0
		if b.m < y {
			for i := b.m + 1; i <= y; i++ {
				f *= a/float64(i) - s
			}
		} else if b.m > y {
			for i := y + 1; i <= b.m; i++ {
				f /= a/float64(i) - s
			}
		}
		return v <= f
	}

	rho := (kf / b.nrq) * ((kf*(kf/3.0+0.625)+0.1666666666666)/b.nrq + 0.5)
	t := -kf * kf / (2.0 * b.nrq)
	alv := math.Log(v)
	if alv < t-rho {
		return true
	}
	if alv > t+rho {
		return false
	}

	x1 := float64(y + 1)
	f1 := float64(b.m + 1)
	z := nf + 1.0 - float64(b.m)
	w := nf - float64(y) + 1.0
	bound := b.xm*math.Log(f1/x1) +
		(nf-float64(b.m)+0.5)*math.Log(z/w) +
		float64(y-b.m)*math.Log(w*b.r/(x1*b.q)) +
		stirlingCorrection(f1) + stirlingCorrection(z) +
		stirlingCorrection(x1) + stirlingCorrection(w)
	return alv <= bound
}

// stirlingCorrection is the tail of Stirling's series for log(x!), good to about 1e-12 for x >= 20.
func stirlingCorrection(x float64) float64 {
	x2 := x * x
	return (13860.0 - (462.0-(132.0-(99.0-140.0/x2)/x2)/x2)/x2) / x / 166320.0
}
