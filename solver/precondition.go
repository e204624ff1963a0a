package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/verinum/ilsolve/interval"
)

// applyPrecondition returns the system the chosen strategy hands to the
// algorithm. NoPrecondition passes the inputs through untouched, which makes
// the identity-preconditioner equivalence bit-for-bit. InverseMidpoint
// multiplies by C = inverse(mid(A)) with outward rounding; the resulting
// enclosure is that of (CA)x = Cb, a superset of the original solution set
// whenever CA is regular.
func applyPrecondition(a *interval.Matrix, b interval.Vector, p Precondition) (*interval.Matrix, interval.Vector, error) {
	switch p {
	case NoPrecondition:
		return a, b, nil
	case InverseMidpoint:
		c, err := inverseMidpoint(a)
		if err != nil {
			return nil, nil, err
		}
		ca, err := interval.MulDenseMat(c, a)
		if err != nil {
			return nil, nil, err
		}
		cb, err := interval.MulDenseVec(c, b)
		if err != nil {
			return nil, nil, err
		}
		return ca, cb, nil
	default:
		return nil, nil, fmt.Errorf("solver: unknown precondition %v", p)
	}
}

// inverseMidpoint computes the floating-point inverse of the midpoint
// matrix. It fails with ErrSingularMidpoint if the midpoint is numerically
// singular.
func inverseMidpoint(a *interval.Matrix) (*mat.Dense, error) {
	var c mat.Dense
	if err := c.Inverse(a.Mid()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularMidpoint, err)
	}
	return &c, nil
}
