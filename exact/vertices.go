package exact

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/verinum/ilsolve/interval"
)

// feasTol is the feasibility slack used when classifying candidate vertices.
// The basis solves are floating point, so exact boundary membership cannot
// be tested.
const feasTol = 1e-9

// Vertices enumerates the vertices of the polytope: every choice of n of
// its m facets defines a candidate basic point, kept when the basis is
// nonsingular, the point feasible, and not a duplicate.
func (p *Polytope) Vertices() [][]float64 {
	m, n := p.G.Dims()
	var verts [][]float64

	basis := make([]int, n)
	gs := mat.NewDense(n, n, nil)
	hs := mat.NewVecDense(n, nil)

	var rec func(start, k int)
	rec = func(start, k int) {
		if k == n {
			for r, row := range basis {
				for c := 0; c < n; c++ {
					gs.Set(r, c, p.G.At(row, c))
				}
				hs.SetVec(r, p.H[row])
			}
			var x mat.VecDense
			if err := x.SolveVec(gs, hs); err != nil {
				return
			}
			pt := make([]float64, n)
			for i := range pt {
				pt[i] = x.AtVec(i)
				if math.IsNaN(pt[i]) || math.IsInf(pt[i], 0) {
					return
				}
			}
			if !p.feasible(pt) {
				return
			}
			for _, v := range verts {
				if samePoint(v, pt) {
					return
				}
			}
			verts = append(verts, pt)
			return
		}
		for i := start; i <= m-(n-k); i++ {
			basis[k] = i
			rec(i+1, k+1)
		}
	}
	rec(0, 0)
	return verts
}

func (p *Polytope) feasible(x []float64) bool {
	m, n := p.G.Dims()
	for i := 0; i < m; i++ {
		s := 0.0
		for j := 0; j < n; j++ {
			s += p.G.At(i, j) * x[j]
		}
		if s > p.H[i]+feasTol {
			return false
		}
	}
	return true
}

func samePoint(a, b []float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > feasTol*(1+math.Abs(a[i])) {
			return false
		}
	}
	return true
}

// Hull returns the exact interval hull of the solution set: the bounding
// box of the vertices of all orthant polytopes. Valid for regular interval
// matrices, whose solution set is bounded; an empty vertex collection
// yields ErrEmptySolutionSet.
func Hull(a *interval.Matrix, b interval.Vector) (interval.Vector, error) {
	polys, err := SolutionSet(a, b)
	if err != nil {
		return nil, err
	}
	n := len(b)
	lo := make([]float64, n)
	hi := make([]float64, n)
	for i := range lo {
		lo[i] = math.Inf(1)
		hi[i] = math.Inf(-1)
	}
	found := false
	for i := range polys {
		for _, v := range polys[i].Vertices() {
			found = true
			for j := 0; j < n; j++ {
				lo[j] = math.Min(lo[j], v[j])
				hi[j] = math.Max(hi[j], v[j])
			}
		}
	}
	if !found {
		return nil, ErrEmptySolutionSet
	}
	hull := make(interval.Vector, n)
	for j := 0; j < n; j++ {
		var err error
		if hull[j], err = interval.New(lo[j], hi[j]); err != nil {
			return nil, err
		}
	}
	return hull, nil
}
