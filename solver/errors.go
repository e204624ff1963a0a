package solver

import "errors"

var (
	// ErrSingularMidpoint is returned when the InverseMidpoint
	// preconditioner is requested but the midpoint matrix is numerically
	// singular.
	ErrSingularMidpoint = errors.New("solver: midpoint matrix is numerically singular")

	// ErrPossiblySingular is returned when regularity of the interval
	// matrix could not be established. It is a diagnostic: the
	// accompanying enclosure is the unbounded (entire) box.
	ErrPossiblySingular = errors.New("solver: regularity could not be established, matrix may be singular")

	// ErrNoConvergence is returned when an iterative algorithm exhausts
	// its iteration budget without contracting below tolerance. The
	// accompanying enclosure is the last computed, uncertified box.
	ErrNoConvergence = errors.New("solver: iteration budget exhausted without convergence")
)
