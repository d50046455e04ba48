package biquad

import (
	"math"
	"math/cmplx"
)

// Response returns the transfer function H(z) evaluated on the unit circle
// at freqHz.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	z1 := cmplx.Rect(1, -2*math.Pi*freqHz/sampleRate)
	z2 := z1 * z1

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2

	return num / den
}

// MagnitudeSquared returns |H(f)|^2 with real arithmetic only.
func (c Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	w := 2 * math.Pi * freqHz / sampleRate
	cos1, cos2 := math.Cos(w), math.Cos(2*w)

	num := c.B0*c.B0 + c.B1*c.B1 + c.B2*c.B2 +
		2*(c.B0*c.B1+c.B1*c.B2)*cos1 + 2*c.B0*c.B2*cos2
	den := 1 + c.A1*c.A1 + c.A2*c.A2 +
		2*(c.A1+c.A1*c.A2)*cos1 + 2*c.A2*cos2

	return num / den
}

// MagnitudeDB returns the gain at freqHz in decibels. A zero of the
// transfer function reads as -Inf.
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	m := c.MagnitudeSquared(freqHz, sampleRate)
	if m <= 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(m)
}

// ResponseDB writes MagnitudeDB for each of freqs into dst and returns the
// number of values written.
func (c Coefficients) ResponseDB(dst, freqs []float64, sampleRate float64) int {
	n := min(len(dst), len(freqs))
	for i := range n {
		dst[i] = c.MagnitudeDB(freqs[i], sampleRate)
	}

	return n
}
