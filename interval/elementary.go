package interval

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// Elementary functions with verified enclosures. Transcendental values are
// evaluated with bigfloat at elemPrec bits and converted to float64 with a
// one-ULP outward nudge: the 2^-96 relative evaluation error is absorbed by
// the nudge, so the true value is always contained.

const elemPrec = 96

func bigArg(x float64) *big.Float {
	return new(big.Float).SetPrec(elemPrec).SetFloat64(x)
}

func transDown(f func(*big.Float) *big.Float, x float64) float64 {
	v, _ := f(bigArg(x)).Float64()
	return nextDown(v)
}

func transUp(f func(*big.Float) *big.Float, x float64) float64 {
	v, _ := f(bigArg(x)).Float64()
	return nextUp(v)
}

// Sqrt returns an enclosure of the square root of x.
// It fails with ErrOutOfDomain if x extends below zero.
func (x Interval) Sqrt() (Interval, error) {
	if x.lo < 0 {
		return Interval{}, fmt.Errorf("%w: sqrt of %v", ErrOutOfDomain, x)
	}
	return Interval{lo: sqrtDown(x.lo), hi: sqrtUp(x.hi)}, nil
}

// math.Sqrt is correctly rounded; the exact FMA residual s*s - a decides on
// which side of the true root it landed.
func sqrtDown(a float64) float64 {
	if math.IsInf(a, 1) {
		return math.Inf(1)
	}
	s := math.Sqrt(a)
	if r := math.FMA(s, s, -a); r > 0 {
		return nextDown(s)
	}
	return s
}

func sqrtUp(a float64) float64 {
	if math.IsInf(a, 1) {
		return math.Inf(1)
	}
	s := math.Sqrt(a)
	if r := math.FMA(s, s, -a); r < 0 {
		return nextUp(s)
	}
	return s
}

// Exp returns an enclosure of e^x.
func (x Interval) Exp() Interval {
	return Interval{lo: expDown(x.lo), hi: expUp(x.hi)}
}

func expDown(a float64) float64 {
	switch {
	case a == 0:
		return 1
	case math.IsInf(a, -1):
		return 0
	case math.IsInf(a, 1):
		return math.Inf(1)
	}
	return transDown(bigfloat.Exp, a)
}

func expUp(a float64) float64 {
	switch {
	case a == 0:
		return 1
	case math.IsInf(a, -1):
		return 0
	case math.IsInf(a, 1):
		return math.Inf(1)
	}
	return transUp(bigfloat.Exp, a)
}

// Log returns an enclosure of the natural logarithm of x.
// It fails with ErrOutOfDomain if x extends to zero or below.
func (x Interval) Log() (Interval, error) {
	if x.lo <= 0 {
		return Interval{}, fmt.Errorf("%w: log of %v", ErrOutOfDomain, x)
	}
	return Interval{lo: logDown(x.lo), hi: logUp(x.hi)}, nil
}

func logDown(a float64) float64 {
	switch {
	case a == 1:
		return 0
	case math.IsInf(a, 1):
		return math.Inf(1)
	}
	return transDown(bigfloat.Log, a)
}

func logUp(a float64) float64 {
	switch {
	case a == 1:
		return 0
	case math.IsInf(a, 1):
		return math.Inf(1)
	}
	return transUp(bigfloat.Log, a)
}

// Pow returns an enclosure of x^y for strictly positive x, computed as
// exp(y*log(x)). For integer exponents of arbitrary-sign bases use PowInt.
func (x Interval) Pow(y Interval) (Interval, error) {
	lx, err := x.Log()
	if err != nil {
		return Interval{}, err
	}
	return lx.Mul(y).Exp(), nil
}

// PowInt returns an enclosure of x^n. Even exponents collapse the sign
// ambiguity, so e.g. [-2, 1]^2 = [0, 4].
func (x Interval) PowInt(n int) (Interval, error) {
	switch {
	case n == 0:
		return Point(1), nil
	case n < 0:
		p, err := x.PowInt(-n)
		if err != nil {
			return Interval{}, err
		}
		return Point(1).Div(p)
	case n%2 == 0:
		lo := 0.0
		if !x.ContainsZero() {
			lo = intPowDown(x.Mig(), n)
		}
		return Interval{lo: lo, hi: intPowUp(x.Mag(), n)}, nil
	default:
		return Interval{lo: intPowDown(x.lo, n), hi: intPowUp(x.hi, n)}, nil
	}
}

// intPow computes a^n exactly in big.Float (53*n significand bits suffice)
// before the directed float64 conversion.
func intPow(a float64, n int) *big.Float {
	prec := uint(53*n + 64)
	if prec > 4096 {
		prec = 4096
	}
	v := new(big.Float).SetPrec(prec).SetFloat64(a)
	p := new(big.Float).SetPrec(prec).SetInt64(1)
	for i := 0; i < n; i++ {
		p.Mul(p, v)
	}
	return p
}

func intPowDown(a float64, n int) float64 {
	if math.IsInf(a, 0) {
		return math.Pow(a, float64(n))
	}
	return floatDown(intPow(a, n))
}

func intPowUp(a float64, n int) float64 {
	if math.IsInf(a, 0) {
		return math.Pow(a, float64(n))
	}
	return floatUp(intPow(a, n))
}
