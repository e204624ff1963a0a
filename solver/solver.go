// Package solver implements enclosure algorithms for dense interval linear
// systems Ax = b, together with preconditioning strategies and a dispatcher
// with a deterministic fallback policy.
//
// All algorithms return a box guaranteed to contain the united solution set
// {x : Ax = b, A in 𝐀, b in 𝐛} of the system they are handed. When a
// preconditioner C is applied, the enclosure is that of the transformed
// system (CA)x = Cb, a superset of the original solution set.
package solver

import (
	"errors"
	"fmt"

	"github.com/verinum/ilsolve/interval"
)

// Algorithm selects the enclosure method. The set is closed and dispatched
// by switch; the zero value lets the dispatcher choose.
type Algorithm int

const (
	// AlgorithmAuto lets the dispatcher choose (Gaussian elimination,
	// with a HansenBliekRohn fallback under the Auto precondition).
	AlgorithmAuto Algorithm = iota
	// GaussianElimination is interval Gaussian elimination with
	// mignitude-maximizing partial pivoting.
	GaussianElimination
	// GaussSeidel is the interval Gauss-Seidel splitting iteration.
	GaussSeidel
	// Jacobi is the interval Jacobi splitting iteration.
	Jacobi
	// HansenBliekRohn is the closed-form Hansen-Bliek-Rohn bound, optimal
	// for inverse-midpoint-preconditioned H-matrices.
	HansenBliekRohn
	// Krawczyk is the Krawczyk fixed-point iteration.
	Krawczyk
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmAuto:
		return "Auto"
	case GaussianElimination:
		return "GaussianElimination"
	case GaussSeidel:
		return "GaussSeidel"
	case Jacobi:
		return "Jacobi"
	case HansenBliekRohn:
		return "HansenBliekRohn"
	case Krawczyk:
		return "Krawczyk"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Precondition selects the preconditioning strategy.
type Precondition int

const (
	// PreconditionAuto tries NoPrecondition first and falls back to
	// InverseMidpoint if regularity or convergence cannot be established.
	PreconditionAuto Precondition = iota
	// NoPrecondition solves the system as given. No multiplication is
	// performed, so the result is bit-identical to an identity
	// preconditioner.
	NoPrecondition
	// InverseMidpoint multiplies the system by the inverse of the
	// midpoint matrix.
	InverseMidpoint
)

func (p Precondition) String() string {
	switch p {
	case PreconditionAuto:
		return "Auto"
	case NoPrecondition:
		return "NoPrecondition"
	case InverseMidpoint:
		return "InverseMidpoint"
	default:
		return fmt.Sprintf("Precondition(%d)", int(p))
	}
}

const (
	defaultMaxIterations = 100
	defaultTolerance     = 1e-12
)

// Options configures a solve. The zero value selects the dispatcher
// defaults: AlgorithmAuto, PreconditionAuto, 100 iterations, 1e-12
// tolerance.
type Options struct {
	Algorithm     Algorithm
	Precondition  Precondition
	MaxIterations int
	// Tolerance is the absolute-plus-relative threshold under which the
	// convergence metric of iterative algorithms is considered stable.
	// Interval endpoints are floats, so exact equality is never used.
	Tolerance float64
}

func (o Options) withDefaults() Options {
	if o.MaxIterations <= 0 {
		o.MaxIterations = defaultMaxIterations
	}
	if o.Tolerance <= 0 {
		o.Tolerance = defaultTolerance
	}
	return o
}

// Solve returns an enclosure of the united solution set of Ax = b using the
// default policy: Gaussian elimination, NoPrecondition first, retrying with
// InverseMidpoint (and finally HansenBliekRohn + InverseMidpoint) if
// regularity or convergence cannot be established. The policy is
// deterministic: identical inputs produce bit-identical outputs.
func Solve(a *interval.Matrix, b interval.Vector) (interval.Vector, error) {
	return SolveWith(a, b, Options{})
}

// SolveWith returns an enclosure of the united solution set of Ax = b with
// explicit options. An explicitly requested (Algorithm, Precondition) pair
// is honored without fallback: diagnostics such as ErrPossiblySingular and
// ErrNoConvergence surface directly, together with a best-effort box.
func SolveWith(a *interval.Matrix, b interval.Vector, opts Options) (interval.Vector, error) {
	rows, cols := a.Dims()
	if rows != cols {
		return nil, fmt.Errorf("%w: matrix is %dx%d, want square", interval.ErrDimensionMismatch, rows, cols)
	}
	if len(b) != rows {
		return nil, fmt.Errorf("%w: matrix is %dx%d, vector has length %d", interval.ErrDimensionMismatch, rows, cols, len(b))
	}
	opts = opts.withDefaults()

	alg := opts.Algorithm
	if alg == AlgorithmAuto {
		alg = GaussianElimination
	}

	switch opts.Precondition {
	case NoPrecondition, InverseMidpoint:
		return solvePreconditioned(alg, a, b, opts.Precondition, opts)
	case PreconditionAuto:
		x, err := solvePreconditioned(alg, a, b, NoPrecondition, opts)
		if err == nil || !recoverable(err) {
			return x, err
		}
		if x2, err2 := solvePreconditioned(alg, a, b, InverseMidpoint, opts); err2 == nil {
			return x2, nil
		}
		if opts.Algorithm == AlgorithmAuto && alg != HansenBliekRohn {
			if x3, err3 := solvePreconditioned(HansenBliekRohn, a, b, InverseMidpoint, opts); err3 == nil {
				return x3, nil
			}
		}
		// Every fallback failed: surface the original diagnostic with its
		// best-effort box.
		return x, err
	default:
		return nil, fmt.Errorf("solver: unknown precondition %v", opts.Precondition)
	}
}

// recoverable reports whether the dispatcher may retry with a different
// precondition/algorithm combination.
func recoverable(err error) bool {
	return errors.Is(err, ErrPossiblySingular) || errors.Is(err, ErrNoConvergence)
}

func solvePreconditioned(alg Algorithm, a *interval.Matrix, b interval.Vector, p Precondition, opts Options) (interval.Vector, error) {
	pa, pb, err := applyPrecondition(a, b, p)
	if err != nil {
		return nil, err
	}
	return runAlgorithm(alg, pa, pb, opts)
}

func runAlgorithm(alg Algorithm, a *interval.Matrix, b interval.Vector, opts Options) (interval.Vector, error) {
	switch alg {
	case GaussianElimination:
		return gaussianElimination(a, b)
	case GaussSeidel:
		return gaussSeidel(a, b, opts)
	case Jacobi:
		return jacobi(a, b, opts)
	case HansenBliekRohn:
		return hansenBliekRohn(a, b)
	case Krawczyk:
		return krawczyk(a, b, opts)
	default:
		return nil, fmt.Errorf("solver: unknown algorithm %v", alg)
	}
}
