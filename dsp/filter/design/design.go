package design

import (
	"math"

	"github.com/cwbudde/erode/dsp/filter/biquad"
)

// DefaultQ is the Butterworth quality factor 1/sqrt(2).
const DefaultQ = 1 / math.Sqrt2

// Highpass designs an RBJ highpass biquad at freq (Hz) with quality factor q.
func Highpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := (1 + cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// HighpassFirstOrder designs a one-pole highpass at freq (Hz). B2 and A2 are
// zero so it runs on the same biquad section.
func HighpassFirstOrder(freq, sampleRate float64) biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}

func bilinearK(freq, sampleRate float64) (float64, bool) {
	if _, ok := normalizedW0(freq, sampleRate); !ok {
		return 0, false
	}

	return math.Tan(math.Pi * freq / sampleRate), true
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return DefaultQ
	}

	return q
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Identity()
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
