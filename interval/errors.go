package interval

import "errors"

var (
	// ErrInvalidInterval is returned when constructing an interval whose
	// lower bound exceeds its upper bound, or whose bounds are NaN.
	// Bounds are never silently swapped.
	ErrInvalidInterval = errors.New("interval: lower bound greater than upper bound or NaN")

	// ErrDivisionByZeroInterval is returned when dividing by an interval
	// that contains zero.
	ErrDivisionByZeroInterval = errors.New("interval: division by an interval containing zero")

	// ErrOutOfDomain is returned by elementary functions evaluated on an
	// interval that extends outside their real domain.
	ErrOutOfDomain = errors.New("interval: argument outside the function domain")

	// ErrEmptyIntersection is returned when intersecting disjoint intervals.
	ErrEmptyIntersection = errors.New("interval: empty intersection")

	// ErrInvalidMince is returned by Mince for a non-positive piece count
	// or an unbounded receiver.
	ErrInvalidMince = errors.New("interval: mince requires n >= 1 and finite bounds")

	// ErrDimensionMismatch is returned when operand dimensions are
	// incompatible: non-rectangular input, mismatched vector lengths or a
	// non-square system matrix.
	ErrDimensionMismatch = errors.New("interval: dimension mismatch")
)
