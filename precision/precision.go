// Package precision reports how tight an enclosure is relative to a
// reference box, typically the exact hull or a tighter method's output.
package precision

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/verinum/ilsolve/interval"
)

// ErrDegenerateReference is returned when a reference coordinate has zero
// radius while the compared coordinate does not; the overestimation ratio
// is unbounded there.
var ErrDegenerateReference = errors.New("precision: zero-radius reference coordinate")

// Stats summarizes the per-coordinate overestimation ratios
// rad(got_i)/rad(want_i) of an enclosure against a reference. A ratio of 1
// everywhere means the enclosure is the reference (typically the hull);
// containment soundness requires every ratio to be at least 1 up to
// rounding.
type Stats struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Std    float64
}

// Compare computes overestimation statistics of got against want. The boxes
// must have equal lengths; coordinates where both radii are zero contribute
// a ratio of 1.
func Compare(got, want interval.Vector) (Stats, error) {
	if len(got) != len(want) {
		return Stats{}, fmt.Errorf("%w: %d and %d", interval.ErrDimensionMismatch, len(got), len(want))
	}
	ratios := make([]float64, len(got))
	for i := range got {
		rg, rw := got[i].Rad(), want[i].Rad()
		switch {
		case rw == 0 && rg == 0:
			ratios[i] = 1
		case rw == 0:
			return Stats{}, fmt.Errorf("%w: coordinate %d", ErrDegenerateReference, i)
		default:
			ratios[i] = rg / rw
		}
	}

	var s Stats
	var err error
	if s.Min, err = stats.Min(ratios); err != nil {
		return Stats{}, err
	}
	if s.Max, err = stats.Max(ratios); err != nil {
		return Stats{}, err
	}
	if s.Mean, err = stats.Mean(ratios); err != nil {
		return Stats{}, err
	}
	if s.Median, err = stats.Median(ratios); err != nil {
		return Stats{}, err
	}
	if s.Std, err = stats.StandardDeviation(ratios); err != nil {
		return Stats{}, err
	}
	return s, nil
}

func (s Stats) String() string {
	return fmt.Sprintf(`
┌──────────────┬─────────┐
│ Ratio        │  Value  │
├──────────────┼─────────┤
│ MIN          │ %7.3f │
│ MAX          │ %7.3f │
│ MEAN         │ %7.3f │
│ MEDIAN       │ %7.3f │
│ STD          │ %7.3f │
└──────────────┴─────────┘
`, s.Min, s.Max, s.Mean, s.Median, s.Std)
}
