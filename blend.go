package tween

import (
	"fmt"

	"github.com/tphakala/go-tween/internal/mathutil"
	"github.com/tphakala/go-tween/internal/simdops"
)

// Lerp blends a single attribute: start + eased*(end-start).
// Eased values outside [0, 1] (elastic, bounce) overshoot the range.
func Lerp(start, end, eased float64) float64 {
	return mathutil.Lerp(start, end, eased)
}

// Interpolate eases percent with t and blends start toward end.
func Interpolate(t Tweener, start, end, percent float64) float64 {
	return Lerp(start, end, t.Tween(percent))
}

// Float is the element type accepted by Blender.
type Float = simdops.Float

// Blender interpolates a fixed pair of attribute vectors, e.g. the
// x, y, width, height and color channels of a shape.
// A Blender is read-only after construction and may be shared between goroutines
// as long as each call writes to its own destination slice.
type Blender[F Float] struct {
	start []F
	delta []F
	ops   *simdops.Ops[F]
}

// NewBlender returns a Blender moving from start to end.
// Both slices are copied.
func NewBlender[F Float](start, end []F) (*Blender[F], error) {
	if len(start) != len(end) {
		return nil, fmt.Errorf("%w: start has %d values, end has %d", ErrLengthMismatch, len(start), len(end))
	}

	b := &Blender[F]{
		start: make([]F, len(start)),
		delta: make([]F, len(start)),
		ops:   simdops.For[F](),
	}
	copy(b.start, start)
	for i := range start {
		b.delta[i] = end[i] - start[i]
	}
	return b, nil
}

// Len returns the number of attributes blended.
func (b *Blender[F]) Len() int {
	return len(b.start)
}

// At writes start + eased*(end-start) into dst.
func (b *Blender[F]) At(dst []F, eased float64) error {
	if len(dst) != len(b.start) {
		return fmt.Errorf("%w: dst has %d values, want %d", ErrLengthMismatch, len(dst), len(b.start))
	}

	b.ops.Scale(dst, b.delta, F(eased))
	for i, s := range b.start {
		dst[i] += s
	}
	return nil
}

// Tween eases percent with t and writes the blended attributes into dst.
func (b *Blender[F]) Tween(dst []F, t Tweener, percent float64) error {
	return b.At(dst, t.Tween(percent))
}
