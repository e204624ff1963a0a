package interval

import (
	"math"
	"math/big"
)

// Directed-rounding primitives. No global rounding-mode state is touched:
// error-free transformations (TwoSum, FMA residuals) decide whether the
// nearest-rounded result sits above or below the exact one, and the endpoint
// is nudged by one ULP only when it sits on the wrong side. Exact results are
// kept exact.

const minNormal = 0x1p-1022

func nextUp(x float64) float64 {
	if math.IsInf(x, 1) {
		return x
	}
	return math.Nextafter(x, math.Inf(1))
}

func nextDown(x float64) float64 {
	if math.IsInf(x, -1) {
		return x
	}
	return math.Nextafter(x, math.Inf(-1))
}

func isSubnormal(x float64) bool {
	return x != 0 && math.Abs(x) < minNormal
}

// twoSumErr returns the exact rounding error of s = fl(a+b) (Knuth).
func twoSumErr(s, a, b float64) float64 {
	bv := s - a
	av := s - bv
	return (a - av) + (b - bv)
}

func addDown(a, b float64) float64 {
	s := a + b
	if math.IsInf(s, 1) && !math.IsInf(a, 1) && !math.IsInf(b, 1) {
		return math.MaxFloat64
	}
	if math.IsInf(s, 0) {
		return s
	}
	if e := twoSumErr(s, a, b); e < 0 || math.IsNaN(e) {
		return nextDown(s)
	}
	return s
}

func addUp(a, b float64) float64 {
	s := a + b
	if math.IsInf(s, -1) && !math.IsInf(a, -1) && !math.IsInf(b, -1) {
		return -math.MaxFloat64
	}
	if math.IsInf(s, 0) {
		return s
	}
	if e := twoSumErr(s, a, b); e > 0 || math.IsNaN(e) {
		return nextUp(s)
	}
	return s
}

func subDown(a, b float64) float64 { return addDown(a, -b) }
func subUp(a, b float64) float64   { return addUp(a, -b) }

// mulDown returns a*b rounded toward -Inf, with the convention 0*Inf = 0.
func mulDown(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p == 0 {
		// Underflow to zero: the exact product is nonzero.
		if (a > 0) == (b > 0) {
			return 0
		}
		return -math.SmallestNonzeroFloat64
	}
	if math.IsInf(p, 1) && !math.IsInf(a, 0) && !math.IsInf(b, 0) {
		return math.MaxFloat64
	}
	if math.IsInf(p, 0) {
		return p
	}
	e := math.FMA(a, b, -p)
	// The FMA residual is exact unless the product underflows, hence the
	// unconditional nudge in the subnormal range.
	if e < 0 || math.IsNaN(e) || isSubnormal(p) {
		return nextDown(p)
	}
	return p
}

func mulUp(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p == 0 {
		if (a > 0) == (b > 0) {
			return math.SmallestNonzeroFloat64
		}
		return 0
	}
	if math.IsInf(p, -1) && !math.IsInf(a, 0) && !math.IsInf(b, 0) {
		return -math.MaxFloat64
	}
	if math.IsInf(p, 0) {
		return p
	}
	e := math.FMA(a, b, -p)
	if e > 0 || math.IsNaN(e) || isSubnormal(p) {
		return nextUp(p)
	}
	return p
}

// divDown returns a/b rounded toward -Inf for b != 0.
func divDown(a, b float64) float64 {
	if a == 0 {
		return 0
	}
	q := a / b
	if math.IsInf(q, 1) && !math.IsInf(a, 0) {
		return math.MaxFloat64
	}
	if math.IsInf(q, 0) {
		return q
	}
	// a = q*b + r with r exact; the sign of r/b tells on which side of the
	// exact quotient q landed.
	r := math.FMA(q, b, -a)
	if math.IsNaN(r) || math.IsInf(r, 0) || isSubnormal(q) {
		return nextDown(q)
	}
	if r != 0 && (r > 0) == (b > 0) {
		return nextDown(q)
	}
	return q
}

func divUp(a, b float64) float64 {
	if a == 0 {
		return 0
	}
	q := a / b
	if math.IsInf(q, -1) && !math.IsInf(a, 0) {
		return -math.MaxFloat64
	}
	if math.IsInf(q, 0) {
		return q
	}
	r := math.FMA(q, b, -a)
	if math.IsNaN(r) || math.IsInf(r, 0) || isSubnormal(q) {
		return nextUp(q)
	}
	if r != 0 && (r > 0) != (b > 0) {
		return nextUp(q)
	}
	return q
}

// floatDown converts v to the largest float64 not exceeding it.
func floatDown(v *big.Float) float64 {
	f, acc := v.Float64()
	if acc == big.Above {
		return nextDown(f)
	}
	return f
}

// floatUp converts v to the smallest float64 not below it.
func floatUp(v *big.Float) float64 {
	f, acc := v.Float64()
	if acc == big.Below {
		return nextUp(f)
	}
	return f
}
