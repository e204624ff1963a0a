package solver

import (
	"github.com/verinum/ilsolve/interval"
)

// gaussSeidel runs the interval Gauss-Seidel iteration. Unlike Jacobi, each
// coordinate update immediately uses the already-updated coordinates of the
// current sweep, which converges faster and to a tighter box on diagonally
// dominant systems.
func gaussSeidel(a *interval.Matrix, b interval.Vector, opts Options) (interval.Vector, error) {
	n := len(b)
	x, err := dominanceSeed(a, b)
	if err != nil {
		return interval.EntireVector(n), err
	}

	for it := 0; it < opts.MaxIterations; it++ {
		prev := x.CopyNew()
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
			if x[i], err = q.Intersect(x[i]); err != nil {
				return interval.EntireVector(n), ErrPossiblySingular
			}
		}
		if converged(prev.MaxDist(x), x, opts.Tolerance) {
			return x, nil
		}
	}
	return x, ErrNoConvergence
}
