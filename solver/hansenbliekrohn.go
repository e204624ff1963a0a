package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/verinum/ilsolve/interval"
)

// hansenBliekRohn evaluates the closed-form Hansen-Bliek-Rohn bound.
//
// Let <A> be the Ostrowski comparison matrix (mignitudes on the diagonal,
// negated magnitudes off it). When <A> is inverse-nonnegative, A is an
// H-matrix and with B = <A>^-1, u = B*mag(b), d_i = B_ii,
//
//	alpha_i = <A>_ii - 1/d_i
//	beta_i  = u_i/d_i - mag(b_i)
//	x_i     = (b_i + [-beta_i, beta_i]) / (A_ii + [-alpha_i, alpha_i])
//
// is an enclosure of the solution set, and the hull when the system was
// preconditioned with the inverse midpoint. The floating-point inverse is
// not verified, so alpha and beta are widened upward by one ULP; enlarging
// either only enlarges the resulting quotient set.
func hansenBliekRohn(a *interval.Matrix, b interval.Vector) (interval.Vector, error) {
	n := len(b)

	comp := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				comp.Set(i, j, a.At(i, j).Mig())
			} else {
				comp.Set(i, j, -a.At(i, j).Mag())
			}
		}
	}

	var inv mat.Dense
	if err := inv.Inverse(comp); err != nil {
		return interval.EntireVector(n), ErrPossiblySingular
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if inv.At(i, j) < 0 {
				// Not inverse-nonnegative: the H-matrix property fails.
				return interval.EntireVector(n), ErrPossiblySingular
			}
		}
	}

	magb := mat.NewVecDense(n, b.Mag())
	var u mat.VecDense
	u.MulVec(&inv, magb)

	x := interval.NewVector(n)
	for i := 0; i < n; i++ {
		d := inv.At(i, i)
		if d <= 0 {
			return interval.EntireVector(n), ErrPossiblySingular
		}
		alpha := math.Max(0, comp.At(i, i)-1/d)
		beta := math.Max(0, u.AtVec(i)/d-magb.AtVec(i))
		alpha = math.Nextafter(alpha, math.Inf(1))
		beta = math.Nextafter(beta, math.Inf(1))

		den := a.At(i, i).Add(interval.Must(-alpha, alpha))
		num := b[i].Add(interval.Must(-beta, beta))
		xi, err := num.Div(den)
		if err != nil {
			return interval.EntireVector(n), ErrPossiblySingular
		}
		x[i] = xi
	}
	return x, nil
}
