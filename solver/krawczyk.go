package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/verinum/ilsolve/interval"
	"github.com/verinum/ilsolve/utils"
)

// krawczyk runs the Krawczyk fixed-point iteration. The operator is built
// around the inverse midpoint C of the system it receives (for an already
// inverse-midpoint-preconditioned system C is close to the identity): with
// E = I - C*A and x~ the midpoint of the current box,
//
//	K(x) = x~ + C*(b - A*x~) + E*(x - x~)
//
// and the next box is K(x) intersected with x, so iterates are nested. The
// iteration is seeded around the approximate midpoint solution x^ with the
// radius bound ||mag(C*(b - A*x^))||_inf / (1 - ||mag(E)||_inf), which
// requires ||mag(E)||_inf < 1; otherwise the contraction cannot be
// established and the call fails with ErrPossiblySingular.
func krawczyk(a *interval.Matrix, b interval.Vector, opts Options) (interval.Vector, error) {
	n := len(b)

	c, err := inverseMidpoint(a)
	if err != nil {
		return interval.EntireVector(n), ErrPossiblySingular
	}
	ca, err := interval.MulDenseMat(c, a)
	if err != nil {
		return nil, err
	}
	e, err := interval.Identity(n).Sub(ca)
	if err != nil {
		return nil, err
	}
	norm := magNormInf(e)
	if norm >= 1 {
		return interval.EntireVector(n), ErrPossiblySingular
	}

	// Approximate midpoint solution.
	var xhat mat.VecDense
	if err := xhat.SolveVec(a.Mid(), b.Mid()); err != nil {
		return interval.EntireVector(n), ErrPossiblySingular
	}
	xpoint := interval.VectorFromDense(&xhat)

	res, err := residual(c, a, b, xpoint)
	if err != nil {
		return nil, err
	}
	q, derr := interval.Point(utils.MaxSlice(res.Mag())).Div(interval.Point(1 - norm))
	if derr != nil {
		return interval.EntireVector(n), ErrPossiblySingular
	}
	r := math.Nextafter(q.Sup(), math.Inf(1))

	x := make(interval.Vector, n)
	for i := range x {
		x[i] = xpoint[i].Add(interval.Must(-r, r))
	}

	for it := 0; it < opts.MaxIterations; it++ {
		mid := interval.VectorFromDense(x.Mid())
		update, err := residual(c, a, b, mid)
		if err != nil {
			return nil, err
		}
		offset, err := x.Sub(mid)
		if err != nil {
			return nil, err
		}
		eo, err := e.MulVec(offset)
		if err != nil {
			return nil, err
		}
		k, err := mid.Add(update)
		if err != nil {
			return nil, err
		}
		if k, err = k.Add(eo); err != nil {
			return nil, err
		}
		next, err := k.Intersect(x)
		if err != nil {
			return interval.EntireVector(n), ErrPossiblySingular
		}
		d := x.MaxDist(next)
		x = next
		if converged(d, x, opts.Tolerance) {
			return x, nil
		}
	}
	return x, ErrNoConvergence
}

// residual returns C*(b - A*x) with outward rounding.
func residual(c *mat.Dense, a *interval.Matrix, b interval.Vector, x interval.Vector) (interval.Vector, error) {
	ax, err := a.MulVec(x)
	if err != nil {
		return nil, err
	}
	d, err := b.Sub(ax)
	if err != nil {
		return nil, err
	}
	return interval.MulDenseVec(c, d)
}

// VerifyRegularity attempts to certify that every real matrix within a is
// invertible. It preconditions with the inverse midpoint and applies the
// Krawczyk contraction criterion ||mag(I - CA)||_inf < 1, a sufficient
// condition: a false result means regularity was not established, not that
// a is singular.
func VerifyRegularity(a *interval.Matrix) (bool, error) {
	rows, cols := a.Dims()
	if rows != cols {
		return false, interval.ErrDimensionMismatch
	}
	c, err := inverseMidpoint(a)
	if err != nil {
		return false, err
	}
	ca, err := interval.MulDenseMat(c, a)
	if err != nil {
		return false, err
	}
	e, err := interval.Identity(rows).Sub(ca)
	if err != nil {
		return false, err
	}
	return magNormInf(e) < 1, nil
}

// magNormInf returns the infinity norm of the magnitude matrix, with the row
// sums accumulated upward.
func magNormInf(m *interval.Matrix) float64 {
	rows, cols := m.Dims()
	norm := 0.0
	for i := 0; i < rows; i++ {
		row := interval.Interval{}
		for j := 0; j < cols; j++ {
			row = row.Add(interval.Must(0, m.At(i, j).Mag()))
		}
		norm = math.Max(norm, row.Sup())
	}
	return norm
}
