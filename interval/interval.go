// Package interval implements closed real intervals with outward-rounded
// arithmetic and dense interval vectors and matrices.
//
// Every operation returns an interval guaranteed to contain the exact image
// of the operation over all choices of operands within the inputs. Rounding
// is directed per endpoint without touching the global floating-point
// rounding mode, so the package is safe for concurrent use.
package interval

import (
	"fmt"
	"math"
)

// Interval is a closed real interval [lo, hi] with lo <= hi.
// The zero value is the degenerate interval [0, 0].
type Interval struct {
	lo, hi float64
}

// New returns the interval [lo, hi].
// It fails with ErrInvalidInterval if lo > hi or either bound is NaN.
func New(lo, hi float64) (Interval, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return Interval{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidInterval, lo, hi)
	}
	return Interval{lo: lo, hi: hi}, nil
}

// Must is like New but panics on an invalid bound pair.
// Intended for statically known literals.
func Must(lo, hi float64) Interval {
	x, err := New(lo, hi)
	if err != nil {
		panic(err)
	}
	return x
}

// Point returns the degenerate interval [x, x].
func Point(x float64) Interval {
	return Must(x, x)
}

// FromMidRad returns an interval containing [mid-rad, mid+rad].
func FromMidRad(mid, rad float64) (Interval, error) {
	if rad < 0 || math.IsNaN(rad) {
		return Interval{}, fmt.Errorf("%w: negative radius %v", ErrInvalidInterval, rad)
	}
	return New(subDown(mid, rad), addUp(mid, rad))
}

// Entire returns the interval [-Inf, +Inf].
func Entire() Interval {
	return Interval{lo: math.Inf(-1), hi: math.Inf(1)}
}

// Inf returns the lower bound.
func (x Interval) Inf() float64 { return x.lo }

// Sup returns the upper bound.
func (x Interval) Sup() float64 { return x.hi }

// Mid returns the midpoint of x, rounded to nearest.
// The midpoint of an unbounded interval is clamped to a finite value.
func (x Interval) Mid() float64 {
	switch {
	case x.lo == math.Inf(-1) && x.hi == math.Inf(1):
		return 0
	case x.lo == math.Inf(-1):
		return -math.MaxFloat64
	case x.hi == math.Inf(1):
		return math.MaxFloat64
	}
	if m := x.lo + (x.hi-x.lo)/2; !math.IsInf(m, 0) {
		return m
	}
	// hi - lo overflowed; halving first cannot.
	return x.lo/2 + x.hi/2
}

// Rad returns a radius r such that [mid-r, mid+r] contains x,
// with r rounded up.
func (x Interval) Rad() float64 {
	m := x.Mid()
	return math.Max(subUp(m, x.lo), subUp(x.hi, m))
}

// Width returns hi - lo, rounded up.
func (x Interval) Width() float64 {
	return subUp(x.hi, x.lo)
}

// Mag returns the magnitude max{|t| : t in x}.
func (x Interval) Mag() float64 {
	return math.Max(math.Abs(x.lo), math.Abs(x.hi))
}

// Mig returns the mignitude min{|t| : t in x}, which is zero
// whenever x contains zero.
func (x Interval) Mig() float64 {
	if x.ContainsZero() {
		return 0
	}
	return math.Min(math.Abs(x.lo), math.Abs(x.hi))
}

// IsPoint reports whether x is degenerate.
func (x Interval) IsPoint() bool { return x.lo == x.hi }

// IsFinite reports whether both bounds are finite.
func (x Interval) IsFinite() bool {
	return !math.IsInf(x.lo, 0) && !math.IsInf(x.hi, 0)
}

// Contains reports whether the real t lies in x.
func (x Interval) Contains(t float64) bool {
	return x.lo <= t && t <= x.hi
}

// ContainsZero reports whether 0 lies in x.
func (x Interval) ContainsZero() bool {
	return x.lo <= 0 && 0 <= x.hi
}

// In reports whether x is a subset of y.
func (x Interval) In(y Interval) bool {
	return y.lo <= x.lo && x.hi <= y.hi
}

// StrictlyIn reports whether x lies in the interior of y.
func (x Interval) StrictlyIn(y Interval) bool {
	return y.lo < x.lo && x.hi < y.hi
}

// Equal reports whether x and y have identical bounds.
func (x Interval) Equal(y Interval) bool {
	return x.lo == y.lo && x.hi == y.hi
}

func (x Interval) String() string {
	return fmt.Sprintf("[%v, %v]", x.lo, x.hi)
}

// Neg returns -x.
func (x Interval) Neg() Interval {
	return Interval{lo: -x.hi, hi: -x.lo}
}

// Abs returns {|t| : t in x}.
func (x Interval) Abs() Interval {
	if x.lo >= 0 {
		return x
	}
	if x.hi <= 0 {
		return x.Neg()
	}
	return Interval{lo: 0, hi: x.Mag()}
}

// Add returns x + y with outward rounding.
func (x Interval) Add(y Interval) Interval {
	return Interval{lo: addDown(x.lo, y.lo), hi: addUp(x.hi, y.hi)}
}

// Sub returns x - y with outward rounding.
func (x Interval) Sub(y Interval) Interval {
	return Interval{lo: subDown(x.lo, y.hi), hi: subUp(x.hi, y.lo)}
}

// Mul returns x * y with outward rounding.
func (x Interval) Mul(y Interval) Interval {
	lo := math.Min(
		math.Min(mulDown(x.lo, y.lo), mulDown(x.lo, y.hi)),
		math.Min(mulDown(x.hi, y.lo), mulDown(x.hi, y.hi)),
	)
	hi := math.Max(
		math.Max(mulUp(x.lo, y.lo), mulUp(x.lo, y.hi)),
		math.Max(mulUp(x.hi, y.lo), mulUp(x.hi, y.hi)),
	)
	return Interval{lo: lo, hi: hi}
}

// MulFloat returns x * t with outward rounding.
func (x Interval) MulFloat(t float64) Interval {
	return x.Mul(Point(t))
}

// Div returns x / y with outward rounding.
// It fails with ErrDivisionByZeroInterval if y contains zero.
func (x Interval) Div(y Interval) (Interval, error) {
	if y.ContainsZero() {
		return Interval{}, fmt.Errorf("%w: divisor %v", ErrDivisionByZeroInterval, y)
	}
	lo := math.Min(
		math.Min(divDown(x.lo, y.lo), divDown(x.lo, y.hi)),
		math.Min(divDown(x.hi, y.lo), divDown(x.hi, y.hi)),
	)
	hi := math.Max(
		math.Max(divUp(x.lo, y.lo), divUp(x.lo, y.hi)),
		math.Max(divUp(x.hi, y.lo), divUp(x.hi, y.hi)),
	)
	return Interval{lo: lo, hi: hi}, nil
}

// Intersect returns the intersection of x and y.
// It fails with ErrEmptyIntersection if the intervals are disjoint.
func (x Interval) Intersect(y Interval) (Interval, error) {
	lo := math.Max(x.lo, y.lo)
	hi := math.Min(x.hi, y.hi)
	if lo > hi {
		return Interval{}, fmt.Errorf("%w: %v and %v", ErrEmptyIntersection, x, y)
	}
	return Interval{lo: lo, hi: hi}, nil
}

// HullWith returns the convex hull of x and y.
func (x Interval) HullWith(y Interval) Interval {
	return Interval{lo: math.Min(x.lo, y.lo), hi: math.Max(x.hi, y.hi)}
}

// Mince partitions x into n contiguous sub-intervals of equal width.
// The union of the pieces reconstructs x exactly and consecutive pieces
// share only their common endpoint. It fails with ErrInvalidMince if
// n < 1 or x is unbounded.
func (x Interval) Mince(n int) ([]Interval, error) {
	if n < 1 || !x.IsFinite() {
		return nil, fmt.Errorf("%w: n=%d, x=%v", ErrInvalidMince, n, x)
	}
	cuts := make([]float64, n+1)
	cuts[0] = x.lo
	cuts[n] = x.hi
	w := x.hi - x.lo
	for k := 1; k < n; k++ {
		c := x.lo + w*float64(k)/float64(n)
		// Cut points must be non-decreasing for the pieces to tile x.
		if c < cuts[k-1] {
			c = cuts[k-1]
		}
		if c > x.hi {
			c = x.hi
		}
		cuts[k] = c
	}
	pieces := make([]Interval, n)
	for k := 0; k < n; k++ {
		pieces[k] = Interval{lo: cuts[k], hi: cuts[k+1]}
	}
	return pieces, nil
}
