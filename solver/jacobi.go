package solver

import (
	"github.com/verinum/ilsolve/interval"
)

// jacobi runs the interval Jacobi iteration: every coordinate of the next
// box is computed from the previous box and intersected with it, so the
// iterates are nested and never expand. Strict diagonal dominance is
// required to seed the iteration; exhausting the iteration budget before
// the step distance drops below tolerance returns the last box together
// with ErrNoConvergence.
func jacobi(a *interval.Matrix, b interval.Vector, opts Options) (interval.Vector, error) {
	n := len(b)
	x, err := dominanceSeed(a, b)
	if err != nil {
		return interval.EntireVector(n), err
	}

	for it := 0; it < opts.MaxIterations; it++ {
		next := make(interval.Vector, n)
		for i := 0; i < n; i++ {
			s := b[i]
			for j := 0; j < n; j++ {
				if j != i {
					s = s.Sub(a.At(i, j).Mul(x[j]))
				}
			}
			q, err := s.Div(a.At(i, i))
			if err != nil {
				return interval.EntireVector(n), ErrPossiblySingular
			}
			if next[i], err = q.Intersect(x[i]); err != nil {
				return interval.EntireVector(n), ErrPossiblySingular
			}
		}
		d := x.MaxDist(next)
		x = next
		if converged(d, x, opts.Tolerance) {
			return x, nil
		}
	}
	return x, ErrNoConvergence
}
