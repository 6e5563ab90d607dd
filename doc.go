// Package tween provides easing curves for attribute animation in pure Go.
//
// A curve maps linear animation progress p in [0, 1] to an eased value.
// An animation driver computes p from elapsed time, evaluates the curve and
// blends each attribute as start + eased*(end-start).
//
// # Quick Start
//
//	eased := tween.EaseOut.Tween(0.25)
//	x := tween.Lerp(startX, endX, eased)
//
// Or in one call:
//
//	x := tween.Interpolate(tween.EaseOut, startX, endX, 0.25)
//
// # Curves
//
// Six families are built in, each with a shared preset and a constructor
// for custom parameters:
//
//   - [Linear], [NewLinear]: p
//   - [EaseIn], [NewEaseIn]: p^(2s), strength s clamped to [1, 6]
//   - [EaseOut], [NewEaseOut]: 1 - (1-p)^(2s), strength s clamped to [1, 6]
//   - [EaseInOut], [NewEaseInOut]: p - sin(2πp)/(2π)
//   - [Elastic], [NewElastic]: (1 - cos(pπn))(1-p) + p for n passes
//   - [Bounce], [NewBounce]: Elastic with values above 1 reflected to 2 - e
//
// Linear and the ease curves stay within [0, 1] and hit 0 and 1 exactly at
// the ends. Elastic overshoots past 1 before settling; Bounce never exceeds 1.
//
// Strength outside [1, 6] is silently clamped. Progress outside [0, 1] is not
// validated: the formulas are simply extrapolated.
//
// Any func(float64) float64 can be used through [Func] or named with [NewCurve].
//
// # Names and Specs
//
// [Parse] builds a curve from a short spec such as "ease-out:2.5" or
// "bounce:4". [Lookup] and [Names] expose the built-in families plus the
// Penner curves from github.com/fogleman/ease ("in-quad", "out-back", ...).
//
// # Blending, Sampling and Analysis
//
//   - [Blender] interpolates whole attribute vectors using SIMD kernels from
//     github.com/tphakala/simd.
//   - [Sample] and [Table] precompute a curve on an even grid.
//   - [Analyze] reports overshoot, monotonicity and area of a curve.
//
// # Thread Safety
//
// Curves, Tables and Blenders are immutable after construction and safe for
// concurrent use. Blender.At may be called concurrently as long as each
// caller passes its own destination slice.
package tween
