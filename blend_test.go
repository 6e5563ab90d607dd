package tween

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-tween/internal/testutil"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		eased      float64
		expected   float64
	}{
		{"Start", 10, 20, 0, 10},
		{"End", 10, 20, 1, 20},
		{"Middle", 10, 20, 0.5, 15},
		{"Descending", 100, 0, 0.25, 75},
		{"Overshoot", 0, 10, 1.5, 15},
		{"Undershoot", 0, 10, -0.5, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Lerp(tt.start, tt.end, tt.eased), testutil.DefaultTolerance)
		})
	}
}

func TestInterpolate(t *testing.T) {
	assert.InDelta(t, 100.0, Interpolate(EaseIn, 100, 200, 0), testutil.DefaultTolerance)
	assert.InDelta(t, 200.0, Interpolate(EaseIn, 100, 200, 1), testutil.DefaultTolerance)
	assert.InDelta(t, 100+100*0.015625, Interpolate(EaseIn, 100, 200, 0.5), testutil.DefaultTolerance)
	assert.InDelta(t, 150.0, Interpolate(EaseInOut, 100, 200, 0.5), testutil.DefaultTolerance)

	// Elastic overshoots the end value mid-animation
	assert.Greater(t, Interpolate(Elastic, 0, 10, 1.0/3.0), 10.0)
}

func TestNewBlender_LengthMismatch(t *testing.T) {
	_, err := NewBlender([]float64{1, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestBlender_At(t *testing.T) {
	start := []float64{0, 10, -5, 255, 1}
	end := []float64{100, 10, 5, 0, 0.5}

	b, err := NewBlender(start, end)
	require.NoError(t, err)
	assert.Equal(t, len(start), b.Len())

	dst := make([]float64, len(start))
	for _, eased := range []float64{0, 0.25, 0.5, 1, 1.4} {
		require.NoError(t, b.At(dst, eased))
		for i := range start {
			assert.InDelta(t, Lerp(start[i], end[i], eased), dst[i], 1e-9,
				"eased=%v, attribute %d", eased, i)
		}
	}
}

func TestBlender_CopiesInputs(t *testing.T) {
	start := []float64{0, 0}
	end := []float64{10, 20}
	b, err := NewBlender(start, end)
	require.NoError(t, err)

	start[0], end[1] = 99, 99

	dst := make([]float64, 2)
	require.NoError(t, b.At(dst, 1))
	assert.InDelta(t, 10.0, dst[0], 1e-12)
	assert.InDelta(t, 20.0, dst[1], 1e-12)
}

func TestBlender_DstMismatch(t *testing.T) {
	b, err := NewBlender([]float64{0, 0, 0}, []float64{1, 1, 1})
	require.NoError(t, err)

	err = b.At(make([]float64, 2), 0.5)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestBlender_Float32(t *testing.T) {
	b, err := NewBlender([]float32{0, 1, 2}, []float32{1, 0, 4})
	require.NoError(t, err)

	dst := make([]float32, 3)
	require.NoError(t, b.Tween(dst, Linear, 0.5))
	assert.InDelta(t, 0.5, float64(dst[0]), 1e-6)
	assert.InDelta(t, 0.5, float64(dst[1]), 1e-6)
	assert.InDelta(t, 3.0, float64(dst[2]), 1e-6)
}

func TestBlender_Tween(t *testing.T) {
	b, err := NewBlender([]float64{0, 50}, []float64{200, 100})
	require.NoError(t, err)

	dst := make([]float64, 2)
	require.NoError(t, b.Tween(dst, EaseOut, 0.5))
	assert.InDelta(t, 200*0.984375, dst[0], 1e-9)
	assert.InDelta(t, 50+50*0.984375, dst[1], 1e-9)
}

func TestBlender_Empty(t *testing.T) {
	b, err := NewBlender([]float64{}, []float64{})
	require.NoError(t, err)
	require.NoError(t, b.At([]float64{}, 0.5))
}

func TestBlender_Concurrent(t *testing.T) {
	const attrs = 64
	start := make([]float64, attrs)
	end := make([]float64, attrs)
	for i := range attrs {
		start[i] = float64(i)
		end[i] = float64(i) * 3
	}
	b, err := NewBlender(start, end)
	require.NoError(t, err)

	const workers = 8
	out := make([][]float64, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			out[worker] = make([]float64, attrs)
			_ = b.Tween(out[worker], Bounce, 0.6)
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		testutil.AssertBitIdentical(t, out[0], out[w], "worker %d", w)
	}
}

func BenchmarkBlender_At(b *testing.B) {
	const attrs = 256
	start := make([]float64, attrs)
	end := make([]float64, attrs)
	for i := range attrs {
		end[i] = float64(i)
	}
	bl, err := NewBlender(start, end)
	if err != nil {
		b.Fatal(err)
	}
	dst := make([]float64, attrs)

	b.ReportAllocs()
	for b.Loop() {
		_ = bl.At(dst, 0.42)
	}
}
