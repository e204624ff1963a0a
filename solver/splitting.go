package solver

import (
	"github.com/verinum/ilsolve/interval"
	"github.com/verinum/ilsolve/utils"
)

// Shared machinery of the Jacobi and Gauss-Seidel splitting iterations.
//
// Both iterations need a starting box that already encloses the solution
// set. Strict diagonal dominance gives one: with the row slack
// s_i = mig(A_ii) - sum_{j != i} mag(A_ij) > 0, every solution satisfies
// |x|_inf <= max_i mag(b_i) / min_i s_i. Without strict dominance the
// iterations are not guaranteed to contract and the seed fails with
// ErrPossiblySingular.
func dominanceSeed(a *interval.Matrix, b interval.Vector) (interval.Vector, error) {
	n := len(b)
	slacks := make([]float64, n)
	for i := 0; i < n; i++ {
		s := a.At(i, i).Mig()
		for j := 0; j < n; j++ {
			if j != i {
				s -= a.At(i, j).Mag()
			}
		}
		slacks[i] = s
	}
	minSlack := utils.MinSlice(slacks)
	if minSlack <= 0 {
		return nil, ErrPossiblySingular
	}
	q, err := interval.Point(utils.MaxSlice(b.Mag())).Div(interval.Point(minSlack))
	if err != nil {
		return nil, ErrPossiblySingular
	}
	r := q.Sup()
	seed := interval.Must(-r, r)
	box := make(interval.Vector, n)
	for i := range box {
		box[i] = seed
	}
	return box, nil
}

// converged reports whether the step distance d is below the
// absolute-plus-relative tolerance for the current box.
func converged(d float64, box interval.Vector, tol float64) bool {
	scale := 1.0
	if len(box) > 0 {
		if m := utils.MaxSlice(box.Mag()); m > scale {
			scale = m
		}
	}
	return d <= tol*scale
}
