package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestGrid(t *testing.T) {
	g := Grid(0.25)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, g)
	assert.Len(t, Grid(0.01), 101)
	assert.Equal(t, 1.0, Grid(0.001)[1000])
}

func TestAssertions_Pass(t *testing.T) {
	r := &recorder{}
	assert.True(t, AssertEndpoints(r, func(p float64) float64 { return p }, DefaultTolerance))
	assert.True(t, AssertNoNaNOrInf(r, []float64{0, 1}))
	assert.True(t, AssertAllInRange(r, []float64{0, 0.5, 1}, 0, 1))
	assert.True(t, AssertMonotonic(r, []float64{0, 0, 1}))
	assert.True(t, AssertBitIdentical(r, []float64{0.1, 1}, []float64{0.1, 1}))
	assert.Empty(t, r.failures)
}

// TestAssertions_ReportLabel verifies caller labels reach the failure output.
func TestAssertions_ReportLabel(t *testing.T) {
	tests := []struct {
		name  string
		check func(r *recorder) bool
	}{
		{"NaN", func(r *recorder) bool {
			return AssertNoNaNOrInf(r, []float64{0, math.NaN()}, "bounces %d", 4)
		}},
		{"Inf", func(r *recorder) bool {
			return AssertNoNaNOrInf(r, []float64{math.Inf(1)}, "bounces %d", 4)
		}},
		{"Range", func(r *recorder) bool {
			return AssertAllInRange(r, []float64{0, 1.5}, 0, 1, "bounces %d", 4)
		}},
		{"Monotonic", func(r *recorder) bool {
			return AssertMonotonic(r, []float64{0, 1, 0.5}, "bounces %d", 4)
		}},
		{"BitIdentical", func(r *recorder) bool {
			return AssertBitIdentical(r, []float64{0}, []float64{math.Copysign(0, -1)}, "bounces %d", 4)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			assert.False(t, tt.check(r))
			if assert.Len(t, r.failures, 1) {
				assert.Contains(t, r.failures[0], "bounces 4")
			}
		})
	}
}
