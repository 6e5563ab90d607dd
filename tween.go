package tween

import (
	"errors"
	"math"
	"strconv"

	"github.com/tphakala/go-tween/internal/mathutil"
)

// Tweener maps linear animation progress to eased progress.
//
// Percent is expected in [0, 1]; callers clamp it. Values outside that range
// are not rejected and simply extrapolate the underlying formula.
type Tweener interface {
	Tween(percent float64) float64
}

// Func adapts a plain function to the Tweener interface.
type Func func(percent float64) float64

// Tween calls f(percent).
func (f Func) Tween(percent float64) float64 {
	return f(percent)
}

// Kind identifies the family a Curve was built from.
type Kind int

const (
	// KindLinear is the identity curve.
	KindLinear Kind = iota

	// KindEaseIn accelerates from rest: p^(2s).
	KindEaseIn

	// KindEaseOut decelerates to rest: 1 - (1-p)^(2s).
	KindEaseOut

	// KindEaseInOut accelerates then decelerates: p - sin(2πp)/(2π).
	KindEaseInOut

	// KindElastic oscillates around the linear ramp and settles at 1.
	KindElastic

	// KindBounce is Elastic with every overshoot reflected below 1.
	KindBounce

	// KindCustom is any curve built with NewCurve.
	KindCustom
)

var kindNames = [...]string{
	KindLinear:    "linear",
	KindEaseIn:    "ease-in",
	KindEaseOut:   "ease-out",
	KindEaseInOut: "ease-in-out",
	KindElastic:   "elastic",
	KindBounce:    "bounce",
	KindCustom:    "custom",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Common errors returned by the package.
var (
	// ErrUnknownCurve indicates a curve name that is not registered.
	ErrUnknownCurve = errors.New("unknown curve")

	// ErrInvalidSpec indicates a malformed curve spec string.
	ErrInvalidSpec = errors.New("invalid curve spec")

	// ErrInvalidSampleCount indicates fewer than two samples were requested.
	ErrInvalidSampleCount = errors.New("invalid sample count")

	// ErrLengthMismatch indicates vectors of different lengths were combined.
	ErrLengthMismatch = errors.New("length mismatch")
)

// Curve is a named, immutable easing function.
// Curves are plain values: copy them freely and call them from any goroutine.
// The zero Curve behaves like Linear.
type Curve struct {
	kind  Kind
	name  string
	param float64
	fn    Func
}

// Tween returns the eased value for percent.
func (c Curve) Tween(percent float64) float64 {
	if c.fn == nil {
		return percent
	}
	return c.fn(percent)
}

// Name returns the curve name, e.g. "ease-in" or "in-out-quad".
func (c Curve) Name() string {
	if c.name == "" {
		return c.kind.String()
	}
	return c.name
}

// Kind returns the family the curve belongs to.
func (c Curve) Kind() Kind {
	return c.kind
}

// Param returns the parameter captured at construction: the clamped strength
// for ease-in/ease-out, the pass count for elastic/bounce, 0 otherwise.
func (c Curve) Param() float64 {
	return c.param
}

// String returns the form of the curve accepted by Parse. For built-in families and
// names listed by Names the result parses back to an equivalent curve.
func (c Curve) String() string {
	switch c.kind {
	case KindEaseIn, KindEaseOut:
		return c.Name() + paramSeparator + strconv.FormatFloat(c.param, 'g', -1, paramBitSize)
	case KindElastic, KindBounce:
		return c.Name() + paramSeparator + strconv.Itoa(int(c.param))
	default:
		return c.Name()
	}
}

// NewCurve wraps fn as a named custom curve.
func NewCurve(name string, fn Func) Curve {
	return Curve{kind: KindCustom, name: name, fn: fn}
}

// NewLinear returns the identity curve.
func NewLinear() Curve {
	return Curve{
		kind: KindLinear,
		fn:   func(p float64) float64 { return p },
	}
}

// NewEaseIn returns a curve that starts slowly and accelerates: p^(2·strength).
// Strength is silently clamped to [1, 6].
func NewEaseIn(strength float64) Curve {
	s := mathutil.Clamp(strength, minStrength, maxStrength)
	exp := strengthFactor * s
	return Curve{
		kind:  KindEaseIn,
		param: s,
		fn:    func(p float64) float64 { return math.Pow(p, exp) },
	}
}

// NewEaseOut returns a curve that starts quickly and decelerates:
// 1 - (1-p)^(2·strength). Strength is silently clamped to [1, 6].
func NewEaseOut(strength float64) Curve {
	s := mathutil.Clamp(strength, minStrength, maxStrength)
	exp := strengthFactor * s
	return Curve{
		kind:  KindEaseOut,
		param: s,
		fn:    func(p float64) float64 { return 1 - math.Pow(1-p, exp) },
	}
}

// NewEaseInOut returns the fixed sinusoidal ease-in-out curve.
func NewEaseInOut() Curve {
	return Curve{
		kind: KindEaseInOut,
		fn: func(p float64) float64 {
			return p - math.Sin(mathutil.TwoPi*p)/mathutil.TwoPi
		},
	}
}

// NewElastic returns a curve oscillating passes times around the linear ramp
// with an amplitude that decays to zero at p = 1. Intermediate values may
// exceed 1.
func NewElastic(passes int) Curve {
	return Curve{
		kind:  KindElastic,
		param: float64(passes),
		fn:    elastic(passes),
	}
}

// NewBounce returns the elastic curve with the same pass count, reflecting
// any value above 1 back below it.
func NewBounce(bounces int) Curve {
	e := elastic(bounces)
	return Curve{
		kind:  KindBounce,
		param: float64(bounces),
		fn: func(p float64) float64 {
			v := e(p)
			if v <= 1 {
				return v
			}
			return bounceMirror - v
		},
	}
}

func elastic(passes int) Func {
	n := float64(passes)
	return func(p float64) float64 {
		return (1-math.Cos(p*math.Pi*n))*(1-p) + p
	}
}

// Shared presets. Build a new curve with the New* functions for other parameters.
var (
	Linear    = NewLinear()
	EaseIn    = NewEaseIn(DefaultStrength)
	EaseOut   = NewEaseOut(DefaultStrength)
	EaseInOut = NewEaseInOut()
	Elastic   = NewElastic(DefaultPasses)
	Bounce    = NewBounce(DefaultPasses)
)
