package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/verinum/ilsolve/interval"
)

// Uint64 reads a random value between 0 and 0xFFFFFFFFFFFFFFFF from r.
func Uint64(r io.Reader) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := r.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// Float64 reads a random float between min and max from r. The convex
// combination min*(1-f) + max*f never overflows, even when max-min does not
// fit in a float64; rounding is clamped back into [min, max].
func Float64(r io.Reader, min, max float64) float64 {
	f := float64(Uint64(r)) / 1.8446744073709552e+19
	v := min*(1-f) + max*f
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// FromInterval samples a real uniformly from the interval x.
// Unbounded endpoints are clamped to the largest finite float.
func FromInterval(r io.Reader, x interval.Interval) float64 {
	lo, hi := x.Inf(), x.Sup()
	if math.IsInf(lo, -1) {
		lo = -math.MaxFloat64
	}
	if math.IsInf(hi, 1) {
		hi = math.MaxFloat64
	}
	if lo == hi {
		return lo
	}
	return Float64(r, lo, hi)
}

// Instance samples a real matrix A in the interval matrix bounds and a real
// vector b in the interval vector bounds, uniformly and elementwise. The
// pair (A, b) is one concrete member of the interval system.
func Instance(r io.Reader, a *interval.Matrix, b interval.Vector) (*mat.Dense, *mat.VecDense, error) {
	rows, cols := a.Dims()
	if rows != len(b) {
		return nil, nil, fmt.Errorf("%w: %dx%d matrix and vector of length %d", interval.ErrDimensionMismatch, rows, cols, len(b))
	}
	ad := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			ad.Set(i, j, FromInterval(r, a.At(i, j)))
		}
	}
	bd := mat.NewVecDense(len(b), nil)
	for i := range b {
		bd.SetVec(i, FromInterval(r, b[i]))
	}
	return ad, bd, nil
}
