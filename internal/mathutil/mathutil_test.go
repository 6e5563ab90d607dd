package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		expected float64
	}{
		{"Below", 0.5, 1.0},
		{"Lower bound", 1.0, 1.0},
		{"Inside", 3.0, 3.0},
		{"Upper bound", 6.0, 6.0},
		{"Above", 10.0, 6.0},
		{"Negative", -4.0, 1.0},
		{"Positive infinity", math.Inf(1), 6.0},
		{"Negative infinity", math.Inf(-1), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.v, 1, 6))
		})
	}
}

func TestClamp_NaN(t *testing.T) {
	assert.True(t, math.IsNaN(Clamp(math.NaN(), 1, 6)))
}

func TestLerp(t *testing.T) {
	assert.InDelta(t, 10.0, Lerp(10, 20, 0), 1e-15)
	assert.InDelta(t, 20.0, Lerp(10, 20, 1), 1e-15)
	assert.InDelta(t, 15.0, Lerp(10, 20, 0.5), 1e-15)
	assert.InDelta(t, 22.0, Lerp(10, 20, 1.2), 1e-12, "t > 1 extrapolates")
	assert.InDelta(t, 8.0, Lerp(10, 20, -0.2), 1e-12, "t < 0 extrapolates")
	assert.InDelta(t, 5.0, Lerp(10, 0, 0.5), 1e-15, "descending range")
}

func TestUnlerp(t *testing.T) {
	assert.InDelta(t, 0.25, Unlerp(0, 4, 1), 1e-15)
	assert.InDelta(t, 0.5, Unlerp(-1, 1, 0), 1e-15)
	assert.Equal(t, 0.0, Unlerp(3, 3, 7), "degenerate range")

	for _, v := range []float64{0, 0.1, 0.5, 0.9, 1} {
		assert.InDelta(t, v, Unlerp(2, 8, Lerp(2, 8, v)), 1e-12)
	}
}

func TestTwoPi(t *testing.T) {
	assert.InDelta(t, 0.0, math.Sin(TwoPi), 1e-15)
	assert.InDelta(t, 1.0, math.Cos(TwoPi), 1e-15)
}

func BenchmarkClamp(b *testing.B) {
	v := 3.5
	for b.Loop() {
		_ = Clamp(v, 1, 6)
	}
}
