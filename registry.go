package tween

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/fogleman/ease"
)

// presets maps the built-in family names to their default curves.
var presets = map[string]Curve{
	KindLinear.String():    Linear,
	KindEaseIn.String():    EaseIn,
	KindEaseOut.String():   EaseOut,
	KindEaseInOut.String(): EaseInOut,
	KindElastic.String():   Elastic,
	KindBounce.String():    Bounce,
}

// extended holds the Penner-style curves from github.com/fogleman/ease.
// They take no parameter and are exposed as custom curves.
var extended = map[string]Func{
	"in-quad":        ease.InQuad,
	"out-quad":       ease.OutQuad,
	"in-out-quad":    ease.InOutQuad,
	"in-cubic":       ease.InCubic,
	"out-cubic":      ease.OutCubic,
	"in-out-cubic":   ease.InOutCubic,
	"in-quart":       ease.InQuart,
	"out-quart":      ease.OutQuart,
	"in-out-quart":   ease.InOutQuart,
	"in-quint":       ease.InQuint,
	"out-quint":      ease.OutQuint,
	"in-out-quint":   ease.InOutQuint,
	"in-sine":        ease.InSine,
	"out-sine":       ease.OutSine,
	"in-out-sine":    ease.InOutSine,
	"in-expo":        ease.InExpo,
	"out-expo":       ease.OutExpo,
	"in-out-expo":    ease.InOutExpo,
	"in-circ":        ease.InCirc,
	"out-circ":       ease.OutCirc,
	"in-out-circ":    ease.InOutCirc,
	"in-elastic":     ease.InElastic,
	"out-elastic":    ease.OutElastic,
	"in-out-elastic": ease.InOutElastic,
	"in-back":        ease.InBack,
	"out-back":       ease.OutBack,
	"in-out-back":    ease.InOutBack,
	"in-bounce":      ease.InBounce,
	"out-bounce":     ease.OutBounce,
	"in-out-bounce":  ease.InOutBounce,
}

// Names returns every name accepted by Lookup, sorted.
func Names() []string {
	names := slices.Collect(maps.Keys(presets))
	names = slices.AppendSeq(names, maps.Keys(extended))
	slices.Sort(names)
	return names
}

// Lookup returns the curve registered under name. Built-in families return
// their default preset.
func Lookup(name string) (Curve, error) {
	name = normalizeName(name)
	if c, ok := presets[name]; ok {
		return c, nil
	}
	if fn, ok := extended[name]; ok {
		return NewCurve(name, fn), nil
	}
	return Curve{}, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

// MustLookup is like Lookup but panics on an unknown name.
// Intended for package-level variables.
func MustLookup(name string) Curve {
	c, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse builds a curve from a spec string of the form name[:param].
//
//	ease-in          preset, strength 3
//	ease-out:2.5     strength 2.5 (clamped to [1, 6])
//	elastic:5        5 passes
//	bounce:2         2 bounces
//	in-out-quad      extended curve, no parameter
//
// Names are case-insensitive and surrounding whitespace is ignored.
func Parse(spec string) (Curve, error) {
	name, param, hasParam := strings.Cut(spec, paramSeparator)
	name = normalizeName(name)
	if name == "" {
		return Curve{}, fmt.Errorf("%w: empty name in %q", ErrInvalidSpec, spec)
	}
	if !hasParam {
		return Lookup(name)
	}

	param = strings.TrimSpace(param)
	switch name {
	case KindEaseIn.String(), KindEaseOut.String():
		strength, err := strconv.ParseFloat(param, paramBitSize)
		if err != nil {
			return Curve{}, fmt.Errorf("%w: strength %q for %s: %w", ErrInvalidSpec, param, name, err)
		}
		if math.IsNaN(strength) {
			return Curve{}, fmt.Errorf("%w: strength %q for %s is not a number", ErrInvalidSpec, param, name)
		}
		if name == KindEaseIn.String() {
			return NewEaseIn(strength), nil
		}
		return NewEaseOut(strength), nil

	case KindElastic.String(), KindBounce.String():
		passes, err := strconv.Atoi(param)
		if err != nil {
			return Curve{}, fmt.Errorf("%w: pass count %q for %s: %w", ErrInvalidSpec, param, name, err)
		}
		if name == KindElastic.String() {
			return NewElastic(passes), nil
		}
		return NewBounce(passes), nil
	}

	if _, err := Lookup(name); err != nil {
		return Curve{}, err
	}
	return Curve{}, fmt.Errorf("%w: %s takes no parameter", ErrInvalidSpec, name)
}

// MustParse is like Parse but panics on error.
func MustParse(spec string) Curve {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
