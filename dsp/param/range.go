package param

import (
	"math"

	"github.com/cwbudde/erode/dsp/core"
)

// Range describes the plain-value domain of a parameter.
//
// Skew shapes the normalized mapping: normalized = ((v-Min)/(Max-Min))^Skew.
// Values below 1 spend more of the normalized travel on the low end. A
// non-positive skew is treated as 1. Step > 0 snaps plain values to
// multiples of Step above Min.
type Range struct {
	Min, Max float64
	Step     float64
	Skew     float64
}

// Linear returns a range with no skew and no step.
func Linear(min, max float64) Range {
	return Range{Min: min, Max: max, Skew: 1}
}

// Clamp limits v to [Min, Max] and applies Step. NaN maps to Min.
func (r Range) Clamp(v float64) float64 {
	v = core.ClampFinite(v, r.Min, r.Max, r.Min)
	if r.Step > 0 {
		v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
		v = core.Clamp(v, r.Min, r.Max)
	}

	return v
}

// Normalize maps a plain value into [0, 1].
func (r Range) Normalize(v float64) float64 {
	if r.Max <= r.Min {
		return 0
	}

	n := (r.Clamp(v) - r.Min) / (r.Max - r.Min)
	if s := r.skew(); s != 1 && n > 0 {
		n = math.Pow(n, s)
	}

	return n
}

// Denormalize maps n in [0, 1] to a plain value.
func (r Range) Denormalize(n float64) float64 {
	n = core.ClampFinite(n, 0, 1, 0)
	if s := r.skew(); s != 1 && n > 0 {
		n = math.Exp(math.Log(n) / s)
	}

	return r.Clamp(r.Min + (r.Max-r.Min)*n)
}

func (r Range) skew() float64 {
	if r.Skew <= 0 || math.IsNaN(r.Skew) {
		return 1
	}

	return r.Skew
}
