// Package testutil provides reusable assertions for curve tests.
package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for curve tests.
const (
	DefaultTolerance  = 1e-9
	BoundaryTolerance = 1e-9
)

// TB is the subset of testing.TB the assertions need.
type TB interface {
	Helper()
	Errorf(format string, args ...any)
}

// Grid returns progress values from 0 to 1 inclusive in the given step.
// The last value is always exactly 1.
func Grid(step float64) []float64 {
	n := int(math.Round(1/step)) + 1
	g := make([]float64, n)
	for i := range g {
		g[i] = float64(i) / float64(n-1)
	}
	return g
}

// Eval applies fn to every value of xs.
func Eval(fn func(float64) float64, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = fn(x)
	}
	return ys
}

// AssertEndpoints verifies fn(0) == 0 and fn(1) == 1 within tolerance.
func AssertEndpoints(t TB, fn func(float64) float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	ok := assert.InDelta(t, 0.0, fn(0), tolerance, msgAndArgs...)
	return assert.InDelta(t, 1.0, fn(1), tolerance, msgAndArgs...) && ok
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t TB, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("s[%d] is NaN", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("s[%d] is Inf", i), msgAndArgs...)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t TB, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t,
				fmt.Sprintf("s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal), msgAndArgs...)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice never decreases.
func AssertMonotonic(t TB, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t,
				fmt.Sprintf("not monotonic: s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertBitIdentical verifies that two slices hold exactly the same bits.
func AssertBitIdentical(t TB, expected, actual []float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if math.Float64bits(expected[i]) != math.Float64bits(actual[i]) {
			return assert.Fail(t,
				fmt.Sprintf("index %d: %v (%#x) != %v (%#x)", i,
					expected[i], math.Float64bits(expected[i]),
					actual[i], math.Float64bits(actual[i])), msgAndArgs...)
		}
	}
	return true
}
