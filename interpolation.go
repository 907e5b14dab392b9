package canopy

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Interpolation maps an action's linear progress in [0, 1] to an eased
// fraction with f(0) = 0 and f(1) = 1. A nil Interpolation is linear.
// Overshooting curves (back, elastic) may leave [0, 1] between the ends.
type Interpolation func(t float64) float64

// FromEase adapts a gween easing function to an Interpolation.
func FromEase(fn ease.TweenFunc) Interpolation {
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// apply evaluates f at t, treating nil as linear.
func (f Interpolation) apply(t float64) float64 {
	if f == nil {
		return t
	}
	return f(t)
}

// Common curves.
var (
	Linear      Interpolation = func(t float64) float64 { return t }
	Smoothstep  Interpolation = func(t float64) float64 { return t * t * (3 - 2*t) }
	QuadIn                    = FromEase(ease.InQuad)
	QuadOut                   = FromEase(ease.OutQuad)
	QuadInOut                 = FromEase(ease.InOutQuad)
	CubicIn                   = FromEase(ease.InCubic)
	CubicOut                  = FromEase(ease.OutCubic)
	CubicInOut                = FromEase(ease.InOutCubic)
	SineIn                    = FromEase(ease.InSine)
	SineOut                   = FromEase(ease.OutSine)
	SineInOut                 = FromEase(ease.InOutSine)
	ExpoOut                   = FromEase(ease.OutExpo)
	BackIn                    = FromEase(ease.InBack)
	BackOut                   = FromEase(ease.OutBack)
	BounceOut                 = FromEase(ease.OutBounce)
	ElasticOut                = FromEase(ease.OutElastic)
)

var interpolationsByName = map[string]Interpolation{
	"linear":     Linear,
	"smoothstep": Smoothstep,
	"quadIn":     QuadIn,
	"quadOut":    QuadOut,
	"quadInOut":  QuadInOut,
	"cubicIn":    CubicIn,
	"cubicOut":   CubicOut,
	"cubicInOut": CubicInOut,
	"sineIn":     SineIn,
	"sineOut":    SineOut,
	"sineInOut":  SineInOut,
	"expoOut":    ExpoOut,
	"backIn":     BackIn,
	"backOut":    BackOut,
	"bounceOut":  BounceOut,
	"elasticOut": ElasticOut,
}

// LookupInterpolation returns the named curve. The empty name is linear.
func LookupInterpolation(name string) (Interpolation, bool) {
	if name == "" {
		return Linear, true
	}
	f, ok := interpolationsByName[name]
	return f, ok
}

// CubicBezier returns a curve matching CSS cubic-bezier(x1, y1, x2, y2).
func CubicBezier(x1, y1, x2, y2 float64) Interpolation {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Newton-Raphson, with bisection when the slope flattens out.
		u := t
		for range 8 {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezierSample(y1, y2, clamp01(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		lo, hi := 0.0, 1.0
		u = clamp01(u)
		for range 12 {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return bezierSample(y1, y2, u)
	}
}

func bezierSample(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}
