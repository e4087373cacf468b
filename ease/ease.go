// Package ease provides the timeline scheduler's easing functions: pure
// functions of a normalized progression and an elasticity factor.
//
// Most of the family wraps github.com/tanema/gween/ease. gween's
// functions have the shape func(t, begin, change, duration float32) float32
// and carry no elasticity parameter, so FromGween evaluates them at
// begin=0, change=1, duration=1 and ignores elasticity. The elastic family
// has no gween equivalent with a tunable amplitude, so it is implemented
// natively here.
package ease

import (
	"math"

	gweenease "github.com/tanema/gween/ease"
)

// Func is the shape every easing function in this package satisfies:
// progression is in [0, 1] (elapsed/duration), elasticity is a tunable
// bounce/overshoot factor consumed only by the elastic family.
type Func func(progression, elasticity float64) float64

// FromGween adapts a gween ease.TweenFunc into a Func. The wrapped function
// ignores elasticity.
func FromGween(fn gweenease.TweenFunc) Func {
	return func(progression, _ float64) float64 {
		return float64(fn(float32(progression), 0, 1, 1))
	}
}

// Linear is the identity easing: output equals progression.
var Linear = FromGween(gweenease.Linear)

// InQuad, OutQuad, InOutQuad are quadratic eases with no overshoot.
var (
	InQuad    = FromGween(gweenease.InQuad)
	OutQuad   = FromGween(gweenease.OutQuad)
	InOutQuad = FromGween(gweenease.InOutQuad)
)

// InCubic, OutCubic, InOutCubic are cubic eases.
var (
	InCubic    = FromGween(gweenease.InCubic)
	OutCubic   = FromGween(gweenease.OutCubic)
	InOutCubic = FromGween(gweenease.InOutCubic)
)

// OutBounce is a bounce ease with no elasticity parameter of its own.
var OutBounce = FromGween(gweenease.OutBounce)

const (
	defaultAmplitude = 1.0
	defaultPeriod    = 0.3
)

// OutElastic overshoots and settles, with elasticity controlling the
// oscillation amplitude (the amplitude is 1 + elasticity, so 0 gives the
// standard elastic curve and larger values overshoot further). This is
// the package default, matching the
// scheduler's default settings record.
func OutElastic(progression, elasticity float64) float64 {
	if progression <= 0 {
		return 0
	}
	if progression >= 1 {
		return 1
	}
	amplitude := defaultAmplitude + elasticity
	period := defaultPeriod
	s := period / (2 * math.Pi) * asinRatio(1/amplitude)
	return amplitude*pow2(-10*progression)*sinTerm(progression, s, period) + 1
}

// InElastic is the time-reversed mirror of OutElastic.
func InElastic(progression, elasticity float64) float64 {
	return 1 - OutElastic(1-progression, elasticity)
}

// InOutElastic splices InElastic and OutElastic at the midpoint.
func InOutElastic(progression, elasticity float64) float64 {
	if progression < 0.5 {
		return InElastic(progression*2, elasticity) / 2
	}
	return OutElastic(progression*2-1, elasticity)/2 + 0.5
}
