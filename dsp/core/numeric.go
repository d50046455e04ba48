package core

import "math"

const (
	defaultEpsilon = 1e-12
	denormalLimit  = 1e-30
)

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ClampFinite is Clamp with NaN mapped to fallback.
func ClampFinite(value, min, max, fallback float64) float64 {
	if math.IsNaN(value) {
		return fallback
	}
	return Clamp(value, min, max)
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// Go offers no FTZ/DAZ control, so recursive filter state is flushed
// explicitly once per block instead.
func FlushDenormals(x float64) float64 {
	if x > -denormalLimit && x < denormalLimit {
		return 0
	}

	return x
}

// SoftClip bounds x to (-1, 1) with a hyperbolic tangent.
func SoftClip(x float64) float64 {
	return math.Tanh(x)
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// GainToDB converts linear amplitude to dB, never returning less than floorDB.
func GainToDB(linear, floorDB float64) float64 {
	if linear <= 0 {
		return floorDB
	}

	return math.Max(floorDB, 20*math.Log10(linear))
}
