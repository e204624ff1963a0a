package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/verinum/ilsolve/exact"
	"github.com/verinum/ilsolve/interval"
	"github.com/verinum/ilsolve/utils/sampling"
)

// runningExample is the Barth-Nuding 2x2 system used throughout.
func runningExample(t *testing.T) (*interval.Matrix, interval.Vector) {
	t.Helper()
	a, err := interval.NewMatrixFrom([][]interval.Interval{
		{interval.Must(2, 4), interval.Must(-2, 1)},
		{interval.Must(-1, 2), interval.Must(2, 4)},
	})
	require.NoError(t, err)
	return a, interval.Vector{interval.Must(-2, 2), interval.Must(-2, 2)}
}

// chainSystem is the lower-triangular all-ones matrix with degenerate
// entries; only b carries uncertainty. Its exact solution is
// [-2,2], [-2,2], 0, ..., 0.
func chainSystem(n int) (*interval.Matrix, interval.Vector) {
	a := interval.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			a.Set(i, j, interval.Point(1))
		}
	}
	b := interval.NewVector(n)
	b[0] = interval.Must(-2, 2)
	return a, b
}

// dominantSystem is strictly diagonally dominant, so every algorithm
// including the splitting iterations applies without preconditioning.
func dominantSystem(t *testing.T) (*interval.Matrix, interval.Vector) {
	t.Helper()
	a, err := interval.NewMatrixFrom([][]interval.Interval{
		{interval.Must(4, 5), interval.Must(-1, 1)},
		{interval.Must(0, 1), interval.Must(5, 6)},
	})
	require.NoError(t, err)
	return a, interval.Vector{interval.Must(-2, 2), interval.Must(1, 3)}
}

// requireContainsSamples solves draws random real instances of (a, b) and
// requires every true solution to lie in the enclosure. Containment is a
// soundness property: a single escape is a bug, not a statistic.
func requireContainsSamples(t *testing.T, a *interval.Matrix, b interval.Vector, box interval.Vector, draws int, key string) {
	t.Helper()
	prng, err := sampling.NewKeyedPRNG([]byte(key))
	require.NoError(t, err)
	n := len(b)
	for k := 0; k < draws; k++ {
		am, bv, err := sampling.Instance(prng, a, b)
		require.NoError(t, err)
		var x mat.VecDense
		if err := x.SolveVec(am, bv); err != nil {
			continue // singular draw, not a solution of any instance
		}
		pt := make([]float64, n)
		for i := range pt {
			pt[i] = x.AtVec(i)
		}
		require.True(t, box.Contains(pt), "draw %d: solution %v escapes %v", k, pt, box)
	}
}

func TestGaussianRunningExample(t *testing.T) {
	a, b := runningExample(t)
	box, err := SolveWith(a, b, Options{
		Algorithm:    GaussianElimination,
		Precondition: NoPrecondition,
	})
	require.NoError(t, err)

	requireContainsSamples(t, a, b, box, 100000, "running-example")

	// Every sampled solution also satisfies the Oettli-Prager inequality.
	prng, err := sampling.NewKeyedPRNG([]byte("running-example"))
	require.NoError(t, err)
	for k := 0; k < 1000; k++ {
		am, bv, err := sampling.Instance(prng, a, b)
		require.NoError(t, err)
		var x mat.VecDense
		if err := x.SolveVec(am, bv); err != nil {
			continue
		}
		in, err := exact.Contains(a, b, []float64{x.AtVec(0), x.AtVec(1)}, 1e-9)
		require.NoError(t, err)
		require.True(t, in)
	}

	// The enclosure must contain the exact hull. The hull endpoints come out
	// of floating-point vertex solves, so allow a small slack at shared
	// boundaries.
	hull, err := exact.Hull(a, b)
	require.NoError(t, err)
	for i := range hull {
		require.GreaterOrEqual(t, hull[i].Inf(), box[i].Inf()-1e-9)
		require.LessOrEqual(t, hull[i].Sup(), box[i].Sup()+1e-9)
	}
}

func TestContainmentAllAlgorithms(t *testing.T) {
	a, b := dominantSystem(t)
	for _, alg := range []Algorithm{GaussianElimination, GaussSeidel, Jacobi, HansenBliekRohn, Krawczyk} {
		for _, p := range []Precondition{NoPrecondition, InverseMidpoint} {
			t.Run(alg.String()+"/"+p.String(), func(t *testing.T) {
				box, err := SolveWith(a, b, Options{Algorithm: alg, Precondition: p})
				require.NoError(t, err)
				requireContainsSamples(t, a, b, box, 2000, "all-algorithms")
			})
		}
	}
}

func TestPreconditioningNecessity(t *testing.T) {
	const n = 5
	a, b := chainSystem(n)

	loose, err := SolveWith(a, b, Options{
		Algorithm:    GaussianElimination,
		Precondition: NoPrecondition,
	})
	require.NoError(t, err)
	// The dependency problem doubles the width down the chain.
	require.GreaterOrEqual(t, loose[n-1].Width(), 16.0)

	want := interval.Vector{
		interval.Must(-2, 2), interval.Must(-2, 2),
		interval.Point(0), interval.Point(0), interval.Point(0),
	}
	tight, err := SolveWith(a, b, Options{
		Algorithm:    GaussianElimination,
		Precondition: InverseMidpoint,
	})
	require.NoError(t, err)
	for i := range want {
		require.InDelta(t, want[i].Inf(), tight[i].Inf(), 1e-12)
		require.InDelta(t, want[i].Sup(), tight[i].Sup(), 1e-12)
	}

	hbr, err := SolveWith(a, b, Options{
		Algorithm:    HansenBliekRohn,
		Precondition: InverseMidpoint,
	})
	require.NoError(t, err)
	for i := range want {
		require.InDelta(t, want[i].Inf(), hbr[i].Inf(), 1e-9)
		require.InDelta(t, want[i].Sup(), hbr[i].Sup(), 1e-9)
	}
}

var intervalCmp = cmp.Comparer(func(a, b interval.Interval) bool { return a.Equal(b) })

func TestNoPreconditionIdempotence(t *testing.T) {
	a, b := runningExample(t)
	id := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	ia, err := interval.MulDenseMat(id, a)
	require.NoError(t, err)
	ib, err := interval.MulDenseVec(id, b)
	require.NoError(t, err)

	x1, err := SolveWith(a, b, Options{Algorithm: GaussianElimination, Precondition: NoPrecondition})
	require.NoError(t, err)
	x2, err := SolveWith(ia, ib, Options{Algorithm: GaussianElimination, Precondition: NoPrecondition})
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(x1, x2, intervalCmp))
}

func TestDeterminism(t *testing.T) {
	a, b := runningExample(t)
	x1, err := Solve(a, b)
	require.NoError(t, err)
	x2, err := Solve(a, b)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(x1, x2, intervalCmp))

	for _, alg := range []Algorithm{GaussSeidel, Jacobi, HansenBliekRohn, Krawczyk} {
		y1, err1 := SolveWith(a, b, Options{Algorithm: alg, Precondition: InverseMidpoint})
		y2, err2 := SolveWith(a, b, Options{Algorithm: alg, Precondition: InverseMidpoint})
		require.Equal(t, err1, err2)
		require.Empty(t, cmp.Diff(y1, y2, intervalCmp))
	}
}

func TestDimensionMismatch(t *testing.T) {
	a := interval.NewMatrix(2, 3)
	_, err := Solve(a, interval.NewVector(2))
	require.ErrorIs(t, err, interval.ErrDimensionMismatch)

	sq := interval.NewMatrix(2, 2)
	_, err = Solve(sq, interval.NewVector(3))
	require.ErrorIs(t, err, interval.ErrDimensionMismatch)
}

func TestPossiblySingular(t *testing.T) {
	a, err := interval.NewMatrixFrom([][]interval.Interval{{interval.Must(-1, 1)}})
	require.NoError(t, err)
	b := interval.Vector{interval.Must(0, 1)}

	box, serr := SolveWith(a, b, Options{Algorithm: GaussianElimination, Precondition: NoPrecondition})
	require.ErrorIs(t, serr, ErrPossiblySingular)
	require.False(t, box[0].IsFinite())

	// The Auto dispatcher cannot recover (the midpoint is singular too) and
	// surfaces the original diagnostic with the best-effort box.
	box, serr = Solve(a, b)
	require.ErrorIs(t, serr, ErrPossiblySingular)
	require.False(t, box[0].IsFinite())
}

func TestSingularMidpoint(t *testing.T) {
	a, err := interval.NewMatrixFrom([][]interval.Interval{
		{interval.Point(1), interval.Point(1)},
		{interval.Point(1), interval.Point(1)},
	})
	require.NoError(t, err)
	b := interval.NewVector(2)
	_, serr := SolveWith(a, b, Options{Algorithm: GaussianElimination, Precondition: InverseMidpoint})
	require.ErrorIs(t, serr, ErrSingularMidpoint)
}

func TestNoConvergenceSurfacesLastBox(t *testing.T) {
	a, b := dominantSystem(t)
	box, err := SolveWith(a, b, Options{
		Algorithm:     Jacobi,
		Precondition:  NoPrecondition,
		MaxIterations: 1,
		Tolerance:     1e-300,
	})
	require.ErrorIs(t, err, ErrNoConvergence)
	require.NotNil(t, box)
	// The uncertified box is still an enclosure: iterates only shrink.
	requireContainsSamples(t, a, b, box, 500, "no-convergence")
}

func TestAutoFallsBackToInverseMidpoint(t *testing.T) {
	// Not diagonally dominant, so the splitting seed fails without
	// preconditioning; the Auto policy must recover via InverseMidpoint.
	a, err := interval.NewMatrixFrom([][]interval.Interval{
		{interval.Must(1.9, 2.1), interval.Must(3.9, 4.1)},
		{interval.Must(0.9, 1.1), interval.Must(-0.1, 0.1)},
	})
	require.NoError(t, err)
	b := interval.Vector{interval.Must(0.9, 1.1), interval.Must(0.9, 1.1)}

	_, serr := SolveWith(a, b, Options{Algorithm: GaussSeidel, Precondition: NoPrecondition})
	require.ErrorIs(t, serr, ErrPossiblySingular)

	box, err := SolveWith(a, b, Options{Algorithm: GaussSeidel, Precondition: PreconditionAuto})
	require.NoError(t, err)
	requireContainsSamples(t, a, b, box, 2000, "auto-fallback")
}

func TestSplittingTightensOnDominantSystems(t *testing.T) {
	a, b := dominantSystem(t)
	jac, err := SolveWith(a, b, Options{Algorithm: Jacobi, Precondition: NoPrecondition})
	require.NoError(t, err)
	gs, err := SolveWith(a, b, Options{Algorithm: GaussSeidel, Precondition: NoPrecondition})
	require.NoError(t, err)
	// Gauss-Seidel reuses updated coordinates within a sweep and never ends
	// up looser than Jacobi here.
	for i := range gs {
		require.LessOrEqual(t, gs[i].Width(), jac[i].Width()+1e-12)
	}
}

func TestHansenBliekRohnNearHull(t *testing.T) {
	a, b := runningExample(t)
	box, err := SolveWith(a, b, Options{Algorithm: HansenBliekRohn, Precondition: InverseMidpoint})
	require.NoError(t, err)

	hull, err := exact.Hull(a, b)
	require.NoError(t, err)
	require.True(t, hull.In(box))
	// The preconditioned system's hull is wider than the original's, but
	// not unboundedly so on this well-conditioned example.
	for i := range box {
		require.LessOrEqual(t, box[i].Width(), 4*hull[i].Width())
	}
}

func TestTriangularEliminationIsHullOptimal(t *testing.T) {
	// Upper-triangular with each coefficient entering exactly one solution
	// component, so elimination suffers no dependency overestimation and
	// must reproduce the exact hull.
	a, err := interval.NewMatrixFrom([][]interval.Interval{
		{interval.Must(2, 3), interval.Must(1, 2)},
		{interval.Point(0), interval.Must(2, 3)},
	})
	require.NoError(t, err)
	b := interval.Vector{interval.Must(1, 2), interval.Must(2, 3)}

	box, err := SolveWith(a, b, Options{Algorithm: GaussianElimination, Precondition: NoPrecondition})
	require.NoError(t, err)
	hull, err := exact.Hull(a, b)
	require.NoError(t, err)
	for i := range box {
		require.InDelta(t, hull[i].Inf(), box[i].Inf(), 1e-9)
		require.InDelta(t, hull[i].Sup(), box[i].Sup(), 1e-9)
	}
}

func TestVerifyRegularity(t *testing.T) {
	a, _ := runningExample(t)
	ok, err := VerifyRegularity(a)
	require.NoError(t, err)
	require.True(t, ok)

	s, err := interval.NewMatrixFrom([][]interval.Interval{{interval.Must(-1, 1)}})
	require.NoError(t, err)
	_, err = VerifyRegularity(s)
	require.ErrorIs(t, err, ErrSingularMidpoint)

	w, err := interval.NewMatrixFrom([][]interval.Interval{{interval.Must(0.5, 1.5)}})
	require.NoError(t, err)
	ok, err = VerifyRegularity(w)
	require.NoError(t, err)
	require.True(t, ok)

	// Contains the zero matrix among its members, so it cannot be regular;
	// the midpoint is still invertible and the criterion must come back false.
	u, err := interval.NewMatrixFrom([][]interval.Interval{
		{interval.Must(0, 2), interval.Must(0, 2)},
		{interval.Must(0, 2), interval.Must(-2, 0)},
	})
	require.NoError(t, err)
	ok, err = VerifyRegularity(u)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEnumStrings(t *testing.T) {
	require.Equal(t, "GaussianElimination", GaussianElimination.String())
	require.Equal(t, "HansenBliekRohn", HansenBliekRohn.String())
	require.Equal(t, "NoPrecondition", NoPrecondition.String())
	require.Equal(t, "Auto", PreconditionAuto.String())
}
