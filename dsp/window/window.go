// Package window generates analysis window coefficients for the spectrum
// analyzer.
package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

var typeNames = map[Type]string{
	TypeRectangular: "rectangular",
	TypeHann:        "hann",
	TypeHamming:     "hamming",
	TypeBlackman:    "blackman",
}

// String returns the lower-case window name.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType resolves a window name as produced by [Type.String].
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}

	return TypeRectangular, fmt.Errorf("unknown window %q", name)
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic selects the periodic (DFT-even) form. The default is the
// symmetric form, whose first and last coefficients match.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns length coefficients for window t, or nil for a
// non-positive length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length, cfg.periodic))
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// ApplyCoefficientsInPlace multiplies samples with precomputed coefficients.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return fmt.Errorf("window: samples and coefficients must have same length: %d != %d",
			len(samples), len(coeffs))
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// CoherentGain returns the mean coefficient value, the amplitude a
// bin-centred sine loses to the window.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs))
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return cosineSum(x, 0.5, 0.5)
	case TypeHamming:
		return cosineSum(x, 0.54, 0.46)
	case TypeBlackman:
		return cosineSum(x, 0.42, 0.5, 0.08)
	default:
		return 1
	}
}

// cosineSum evaluates a0 - a1*cos(2pi x) + a2*cos(4pi x) - ...
func cosineSum(x float64, coeffs ...float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	sign := 1.0
	for k, c := range coeffs {
		sum += sign * c * math.Cos(float64(k)*phase)
		sign = -sign
	}

	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}
