package tween

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/tphakala/go-tween/internal/mathutil"
	"github.com/tphakala/go-tween/internal/simdops"
)

// grid returns n evenly spaced progress values covering [0, 1], both ends included.
func grid(n int) ([]float64, error) {
	if n < minSamples {
		return nil, fmt.Errorf("%w: need at least %d samples, got %d", ErrInvalidSampleCount, minSamples, n)
	}
	return floats.Span(make([]float64, n), 0, 1), nil
}

// Sample evaluates t at n evenly spaced points on [0, 1], both ends included.
func Sample(t Tweener, n int) ([]float64, error) {
	xs, err := grid(n)
	if err != nil {
		return nil, err
	}
	for i, x := range xs {
		xs[i] = t.Tween(x)
	}
	return xs, nil
}

// Table is a precomputed lookup table approximating another Tweener by
// piecewise-linear interpolation. Useful when the source curve is expensive
// or when many attributes are driven by the same curve each frame.
type Table struct {
	values []float64
	last   float64 // len(values) - 1, as float
}

// NewTable samples t at n points and returns the resulting table.
func NewTable(t Tweener, n int) (*Table, error) {
	values, err := Sample(t, n)
	if err != nil {
		return nil, err
	}
	return &Table{
		values: values,
		last:   float64(len(values) - 1),
	}, nil
}

// Len returns the number of stored samples.
func (tb *Table) Len() int {
	return len(tb.values)
}

// Tween interpolates the stored samples. Outside [0, 1] the first and last
// segments are extended linearly.
func (tb *Table) Tween(percent float64) float64 {
	if math.IsNaN(percent) {
		return percent
	}

	pos := percent * tb.last
	i := int(mathutil.Clamp(math.Floor(pos), 0, tb.last-1))
	frac := pos - float64(i)

	switch frac {
	case 0:
		return tb.values[i]
	case 1:
		return tb.values[i+1]
	}
	return mathutil.Lerp(tb.values[i], tb.values[i+1], frac)
}

// Profile summarizes the shape of a curve over [0, 1].
type Profile struct {
	// Start and End are the values at p = 0 and p = 1.
	Start, End float64

	// Min and Max are the extremes over the sampled grid.
	Min, Max float64

	// Overshoot is how far the curve rises above 1 (0 if never).
	Overshoot float64

	// Undershoot is how far the curve dips below 0 (0 if never).
	Undershoot float64

	// Mean is the average sampled value.
	Mean float64

	// Area is the trapezoidal integral over [0, 1]. Linear gives 0.5;
	// lower values mean the curve lags behind linear progress.
	Area float64

	// Monotonic reports whether the samples never decrease.
	Monotonic bool

	// Samples is the grid size the profile was computed from.
	Samples int
}

// Bounded reports whether the curve stayed within [0, 1].
func (p Profile) Bounded() bool {
	return p.Overshoot == 0 && p.Undershoot == 0
}

// Analyze samples t at n points and summarizes the result.
func Analyze(t Tweener, n int) (Profile, error) {
	xs, err := grid(n)
	if err != nil {
		return Profile{}, err
	}

	ys := make([]float64, n)
	monotonic := true
	for i, x := range xs {
		ys[i] = t.Tween(x)
		if i > 0 && ys[i] < ys[i-1] {
			monotonic = false
		}
	}

	minVal := floats.Min(ys)
	maxVal := floats.Max(ys)

	return Profile{
		Start:      ys[0],
		End:        ys[n-1],
		Min:        minVal,
		Max:        maxVal,
		Overshoot:  max(0, maxVal-1),
		Undershoot: max(0, -minVal),
		Mean:       simdops.Float64Ops().Sum(ys) / float64(n),
		Area:       integrate.Trapezoidal(xs, ys),
		Monotonic:  monotonic,
		Samples:    n,
	}, nil
}
