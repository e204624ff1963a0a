// Package exact implements the Oettli-Prager characterization of the united
// solution set of an interval linear system: the set of all x with
// |mid(A)x - mid(b)| <= rad(A)|x| + rad(b), a union of one convex polytope
// per sign orthant.
//
// The construction enumerates all 2^n orthants and its vertex enumeration is
// combinatorial, so the package is a reference oracle for small systems
// (dimension at most MaxDim), not a solve path.
package exact

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/verinum/ilsolve/interval"
)

// MaxDim is the largest dimension the oracle accepts. Orthant enumeration is
// 2^n and vertex enumeration is C(3n, n) basis solves; beyond n = 8 the cost
// stops being a test-scale one.
const MaxDim = 8

// ErrDimensionTooLarge is returned for systems of dimension above MaxDim.
var ErrDimensionTooLarge = errors.New("exact: dimension exceeds the oracle bound")

// ErrEmptySolutionSet is returned by Hull when no orthant polytope has a
// feasible vertex.
var ErrEmptySolutionSet = errors.New("exact: empty solution set")

// Polytope is a convex polyhedron {x : G x <= h}, the portion of the
// solution set lying in one sign orthant.
type Polytope struct {
	G *mat.Dense
	H []float64
	// Orthant holds the sign pattern, one of {-1, +1} per coordinate.
	Orthant []int
}

func checkDims(a *interval.Matrix, b interval.Vector) (int, error) {
	rows, cols := a.Dims()
	if rows != cols {
		return 0, fmt.Errorf("%w: matrix is %dx%d, want square", interval.ErrDimensionMismatch, rows, cols)
	}
	if len(b) != rows {
		return 0, fmt.Errorf("%w: matrix is %dx%d, vector has length %d", interval.ErrDimensionMismatch, rows, cols, len(b))
	}
	if rows > MaxDim {
		return 0, fmt.Errorf("%w: n=%d, max %d", ErrDimensionTooLarge, rows, MaxDim)
	}
	return rows, nil
}

// SolutionSet returns one polytope per sign orthant. Within the orthant with
// signs s, |x_i| = s_i*x_i, so the Oettli-Prager inequality becomes the
// linear system
//
//	( mid(A) - rad(A)*Ds) x <=  mid(b) + rad(b)
//	(-mid(A) - rad(A)*Ds) x <= -mid(b) + rad(b)
//	          -s_i x_i      <=  0
//
// with Ds = diag(s). Polytopes may be empty; Vertices filters feasibility.
func SolutionSet(a *interval.Matrix, b interval.Vector) ([]Polytope, error) {
	n, err := checkDims(a, b)
	if err != nil {
		return nil, err
	}
	ac, ar := a.Mid(), a.Rad()
	bc, br := b.Mid(), b.Rad()

	polys := make([]Polytope, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		s := make([]int, n)
		for i := range s {
			if mask&(1<<i) != 0 {
				s[i] = -1
			} else {
				s[i] = 1
			}
		}

		g := mat.NewDense(3*n, n, nil)
		h := make([]float64, 3*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				g.Set(i, j, ac.At(i, j)-ar.At(i, j)*float64(s[j]))
				g.Set(n+i, j, -ac.At(i, j)-ar.At(i, j)*float64(s[j]))
			}
			h[i] = bc.AtVec(i) + br.AtVec(i)
			h[n+i] = -bc.AtVec(i) + br.AtVec(i)
			g.Set(2*n+i, i, -float64(s[i]))
			h[2*n+i] = 0
		}
		polys = append(polys, Polytope{G: g, H: h, Orthant: s})
	}
	return polys, nil
}

// Contains reports whether x satisfies the Oettli-Prager inequality for the
// system (a, b), up to the absolute tolerance tol per row.
func Contains(a *interval.Matrix, b interval.Vector, x []float64, tol float64) (bool, error) {
	n, err := checkDims(a, b)
	if err != nil {
		return false, err
	}
	if len(x) != n {
		return false, fmt.Errorf("%w: point has length %d, want %d", interval.ErrDimensionMismatch, len(x), n)
	}
	ac, ar := a.Mid(), a.Rad()
	bc, br := b.Mid(), b.Rad()
	for i := 0; i < n; i++ {
		var lhs, rhs float64
		for j := 0; j < n; j++ {
			lhs += ac.At(i, j) * x[j]
			rhs += ar.At(i, j) * math.Abs(x[j])
		}
		if math.Abs(lhs-bc.AtVec(i)) > rhs+br.AtVec(i)+tol {
			return false, nil
		}
	}
	return true, nil
}
