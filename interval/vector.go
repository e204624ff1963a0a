package interval

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Vector is a dense vector of intervals (a box in R^n).
type Vector []Interval

// NewVector returns a vector of n degenerate zero intervals.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// EntireVector returns the unbounded box [-Inf, +Inf]^n.
func EntireVector(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = Entire()
	}
	return v
}

// VectorFromDense returns the degenerate box whose coordinates are the
// entries of x.
func VectorFromDense(x *mat.VecDense) Vector {
	v := make(Vector, x.Len())
	for i := range v {
		v[i] = Point(x.AtVec(i))
	}
	return v
}

// CopyNew returns a deep copy of the vector.
func (v Vector) CopyNew() Vector {
	w := make(Vector, len(v))
	copy(w, v)
	return w
}

// Mid returns the midpoint vector.
func (v Vector) Mid() *mat.VecDense {
	m := mat.NewVecDense(len(v), nil)
	for i := range v {
		m.SetVec(i, v[i].Mid())
	}
	return m
}

// Rad returns the radius vector, rounded up so that Mid ± Rad contains v
// elementwise.
func (v Vector) Rad() *mat.VecDense {
	r := mat.NewVecDense(len(v), nil)
	for i := range v {
		r.SetVec(i, v[i].Rad())
	}
	return r
}

// Mag returns the elementwise magnitudes.
func (v Vector) Mag() []float64 {
	m := make([]float64, len(v))
	for i := range v {
		m[i] = v[i].Mag()
	}
	return m
}

// Add returns v + w.
func (v Vector) Add(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, len(v), len(w))
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i].Add(w[i])
	}
	return out, nil
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, len(v), len(w))
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i].Sub(w[i])
	}
	return out, nil
}

// Intersect returns the elementwise intersection of v and w.
// It fails with ErrEmptyIntersection if any coordinate is disjoint.
func (v Vector) Intersect(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, len(v), len(w))
	}
	out := make(Vector, len(v))
	for i := range v {
		var err error
		if out[i], err = v[i].Intersect(w[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Contains reports whether the real point x lies in the box v.
func (v Vector) Contains(x []float64) bool {
	if len(v) != len(x) {
		return false
	}
	for i := range v {
		if !v[i].Contains(x[i]) {
			return false
		}
	}
	return true
}

// In reports whether v is an elementwise subset of w.
func (v Vector) In(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if !v[i].In(w[i]) {
			return false
		}
	}
	return true
}

// StrictlyIn reports whether v lies in the interior of w.
func (v Vector) StrictlyIn(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if !v[i].StrictlyIn(w[i]) {
			return false
		}
	}
	return true
}

// MaxDist returns the largest per-coordinate Hausdorff distance between the
// boxes v and w, used as the convergence metric of iterative solvers.
func (v Vector) MaxDist(w Vector) float64 {
	d := 0.0
	for i := range v {
		d = math.Max(d, math.Abs(v[i].Inf()-w[i].Inf()))
		d = math.Max(d, math.Abs(v[i].Sup()-w[i].Sup()))
	}
	return d
}

// Hull returns the interval hull of a collection of equally sized boxes:
// the smallest box containing all of them.
func Hull(boxes ...Vector) (Vector, error) {
	if len(boxes) == 0 {
		return nil, fmt.Errorf("%w: empty collection", ErrDimensionMismatch)
	}
	n := len(boxes[0])
	out := boxes[0].CopyNew()
	for _, b := range boxes[1:] {
		if len(b) != n {
			return nil, fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, n, len(b))
		}
		for i := range out {
			out[i] = out[i].HullWith(b[i])
		}
	}
	return out, nil
}
