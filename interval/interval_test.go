package interval

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

var testPoints = []float64{
	0, 1, -1, 0.5, -0.5, 1.0 / 3.0, -2.0 / 3.0, 0.1, -0.1,
	3.141592653589793, -2.718281828459045,
	1e-300, -1e-300, 1e300, -1e300,
	math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
}

func TestNew(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		x, err := New(-1, 2)
		require.NoError(t, err)
		require.Equal(t, -1.0, x.Inf())
		require.Equal(t, 2.0, x.Sup())
	})
	t.Run("Swapped", func(t *testing.T) {
		_, err := New(2, -1)
		require.ErrorIs(t, err, ErrInvalidInterval)
	})
	t.Run("NaN", func(t *testing.T) {
		_, err := New(math.NaN(), 1)
		require.ErrorIs(t, err, ErrInvalidInterval)
		_, err = New(0, math.NaN())
		require.ErrorIs(t, err, ErrInvalidInterval)
	})
	t.Run("Point", func(t *testing.T) {
		require.True(t, Point(3).IsPoint())
	})
	t.Run("FromMidRad", func(t *testing.T) {
		x, err := FromMidRad(1, 0.5)
		require.NoError(t, err)
		require.True(t, x.Contains(0.5))
		require.True(t, x.Contains(1.5))
		_, err = FromMidRad(1, -0.5)
		require.ErrorIs(t, err, ErrInvalidInterval)
	})
}

// requireEncloses checks that the exact value of op(a, b), computed in
// 200-bit arithmetic, lies within [lo, hi].
func requireEncloses(t *testing.T, lo, hi float64, op func(z, x, y *big.Float) *big.Float, a, b float64) {
	t.Helper()
	x := new(big.Float).SetPrec(200).SetFloat64(a)
	y := new(big.Float).SetPrec(200).SetFloat64(b)
	z := op(new(big.Float).SetPrec(200), x, y)
	require.LessOrEqual(t, new(big.Float).SetFloat64(lo).Cmp(z), 0, "lower bound %v above exact %v for (%v, %v)", lo, z, a, b)
	require.GreaterOrEqual(t, new(big.Float).SetFloat64(hi).Cmp(z), 0, "upper bound %v below exact %v for (%v, %v)", hi, z, a, b)
}

func TestArithmeticContainment(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		for _, a := range testPoints {
			for _, b := range testPoints {
				s := Point(a).Add(Point(b))
				requireEncloses(t, s.Inf(), s.Sup(), (*big.Float).Add, a, b)
			}
		}
	})
	t.Run("Sub", func(t *testing.T) {
		for _, a := range testPoints {
			for _, b := range testPoints {
				s := Point(a).Sub(Point(b))
				requireEncloses(t, s.Inf(), s.Sup(), (*big.Float).Sub, a, b)
			}
		}
	})
	t.Run("Mul", func(t *testing.T) {
		for _, a := range testPoints {
			for _, b := range testPoints {
				s := Point(a).Mul(Point(b))
				requireEncloses(t, s.Inf(), s.Sup(), (*big.Float).Mul, a, b)
			}
		}
	})
	t.Run("Div", func(t *testing.T) {
		for _, a := range testPoints {
			for _, b := range testPoints {
				if b == 0 {
					continue
				}
				s, err := Point(a).Div(Point(b))
				require.NoError(t, err)
				requireEncloses(t, s.Inf(), s.Sup(), (*big.Float).Quo, a, b)
			}
		}
	})
}

func TestAddExactStaysExact(t *testing.T) {
	s := Point(1).Add(Point(2))
	require.Equal(t, Point(3), s)
	s = Point(0.5).Add(Point(0.25))
	require.Equal(t, Point(0.75), s)
}

func TestMulSigns(t *testing.T) {
	x := Must(-2, 1)
	y := Must(-3, 4)
	p := x.Mul(y)
	// {ac, ad, bc, bd} = {6, -8, -3, 4}
	require.LessOrEqual(t, p.Inf(), -8.0)
	require.GreaterOrEqual(t, p.Sup(), 6.0)
	require.GreaterOrEqual(t, p.Inf(), nextDown(-8.0))
	require.LessOrEqual(t, p.Sup(), nextUp(6.0))
}

func TestDivByZeroInterval(t *testing.T) {
	_, err := Point(1).Div(Must(-1, 1))
	require.ErrorIs(t, err, ErrDivisionByZeroInterval)
	_, err = Point(1).Div(Must(0, 2))
	require.ErrorIs(t, err, ErrDivisionByZeroInterval)
	_, err = Point(1).Div(Must(-2, 0))
	require.ErrorIs(t, err, ErrDivisionByZeroInterval)
}

func TestMidRadReconstruct(t *testing.T) {
	for _, lo := range testPoints {
		for _, hi := range testPoints {
			if lo > hi {
				continue
			}
			x := Must(lo, hi)
			m, r := x.Mid(), x.Rad()
			require.LessOrEqual(t, subDown(m, r), lo, "mid-rad must reach the lower bound of %v", x)
			require.GreaterOrEqual(t, addUp(m, r), hi, "mid+rad must reach the upper bound of %v", x)
		}
	}
}

func TestMagMig(t *testing.T) {
	require.Equal(t, 2.0, Must(-2, 1).Mag())
	require.Equal(t, 0.0, Must(-2, 1).Mig())
	require.Equal(t, 1.0, Must(-2, -1).Mig())
	require.Equal(t, 3.0, Must(2, 3).Mag())
	require.Equal(t, 2.0, Must(2, 3).Mig())
}

func TestIntersectHull(t *testing.T) {
	x, err := Must(0, 2).Intersect(Must(1, 3))
	require.NoError(t, err)
	require.Equal(t, Must(1, 2), x)

	_, err = Must(0, 1).Intersect(Must(2, 3))
	require.ErrorIs(t, err, ErrEmptyIntersection)

	require.Equal(t, Must(0, 3), Must(0, 1).HullWith(Must(2, 3)))
}

func TestMince(t *testing.T) {
	t.Run("Reconstructs", func(t *testing.T) {
		x := Must(-1, 2)
		for _, n := range []int{1, 2, 3, 7, 100} {
			pieces, err := x.Mince(n)
			require.NoError(t, err)
			require.Len(t, pieces, n)
			require.Equal(t, x.Inf(), pieces[0].Inf())
			require.Equal(t, x.Sup(), pieces[n-1].Sup())
			for k := 1; k < n; k++ {
				// Contiguous: consecutive pieces share exactly one endpoint.
				require.Equal(t, pieces[k-1].Sup(), pieces[k].Inf())
			}
		}
	})
	t.Run("Invalid", func(t *testing.T) {
		_, err := Must(0, 1).Mince(0)
		require.ErrorIs(t, err, ErrInvalidMince)
		_, err = Entire().Mince(2)
		require.ErrorIs(t, err, ErrInvalidMince)
	})
}

func TestPredicates(t *testing.T) {
	require.True(t, Must(0, 1).In(Must(-1, 2)))
	require.False(t, Must(-2, 1).In(Must(-1, 2)))
	require.True(t, Must(0, 1).StrictlyIn(Must(-1, 2)))
	require.False(t, Must(-1, 1).StrictlyIn(Must(-1, 2)))
	require.True(t, Must(-1, 1).ContainsZero())
	require.False(t, Must(1, 2).ContainsZero())
	require.True(t, Entire().Contains(1e308))
	require.False(t, Entire().IsFinite())
}

func TestNegAbs(t *testing.T) {
	require.Equal(t, Must(-2, 1), Must(-1, 2).Neg())
	require.Equal(t, Must(0, 2), Must(-2, 1).Abs())
	require.Equal(t, Must(1, 2), Must(-2, -1).Abs())
	require.Equal(t, Must(1, 2), Must(1, 2).Abs())
}
