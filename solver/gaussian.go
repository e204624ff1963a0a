package solver

import (
	"github.com/verinum/ilsolve/interval"
)

// gaussianElimination is the interval analogue of classical elimination with
// partial pivoting. The pivot row maximizes the mignitude of the pivot
// candidate: an interval whose mignitude is zero contains zero and may make
// the matrix singular, so a column with no nonzero-mignitude candidate
// aborts with ErrPossiblySingular and the entire box.
func gaussianElimination(a *interval.Matrix, b interval.Vector) (interval.Vector, error) {
	n := len(b)
	a = a.CopyNew()
	b = b.CopyNew()

	for k := 0; k < n; k++ {
		p, best := k, a.At(k, k).Mig()
		for i := k + 1; i < n; i++ {
			if m := a.At(i, k).Mig(); m > best {
				p, best = i, m
			}
		}
		if best == 0 {
			return interval.EntireVector(n), ErrPossiblySingular
		}
		if p != k {
			a.SwapRows(k, p)
			b[k], b[p] = b[p], b[k]
		}

		for i := k + 1; i < n; i++ {
			if a.At(i, k).Equal(interval.Interval{}) {
				continue
			}
			m, err := a.At(i, k).Div(a.At(k, k))
			if err != nil {
				return interval.EntireVector(n), ErrPossiblySingular
			}
			a.Set(i, k, interval.Interval{})
			for j := k + 1; j < n; j++ {
				a.Set(i, j, a.At(i, j).Sub(m.Mul(a.At(k, j))))
			}
			b[i] = b[i].Sub(m.Mul(b[k]))
		}
	}

	x := interval.NewVector(n)
	for i := n - 1; i >= 0; i-- {
		s := b[i]
		for j := i + 1; j < n; j++ {
			s = s.Sub(a.At(i, j).Mul(x[j]))
		}
		xi, err := s.Div(a.At(i, i))
		if err != nil {
			return interval.EntireVector(n), ErrPossiblySingular
		}
		x[i] = xi
	}
	return x, nil
}
