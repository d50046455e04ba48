// Package svf implements a topology-preserving-transform state variable
// filter with simultaneous lowpass, bandpass and highpass outputs.
//
// The integrators are trapezoidal, so the filter stays stable under
// per-block cutoff and Q changes. Coefficients are recomputed only in
// [Filter.SetParams] and [Filter.Tune]; the per-sample step is branch free.
package svf

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/erode/dsp/core"
)

// MaxCutoffRatio bounds the cutoff relative to the sample rate so that
// tan(pi*f/fs) stays finite.
const MaxCutoffRatio = 0.49

// ErrInvalidSampleRate is returned by [Filter.SetParams] for a non-positive
// or non-finite sample rate.
var ErrInvalidSampleRate = errors.New("svf: invalid sample rate")

// Filter is a single-channel TPT state variable filter.
type Filter struct {
	sampleRate float64
	g, r2, h   float64
	s1, s2     float64
}

// New returns a filter configured with the given cutoff (Hz), quality factor
// and sample rate.
func New(cutoff, q, sampleRate float64) (*Filter, error) {
	f := &Filter{}
	if err := f.SetParams(cutoff, q, sampleRate); err != nil {
		return nil, err
	}

	return f, nil
}

// SetParams recomputes the coefficients. State is preserved. The cutoff is
// clamped to [0, MaxCutoffRatio*sampleRate] and q must be positive; a
// non-positive q falls back to 1/sqrt(2).
func (f *Filter) SetParams(cutoff, q, sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	f.sampleRate = sampleRate
	f.Tune(cutoff, q)

	return nil
}

// Tune recomputes the coefficients at the sample rate accepted by the last
// successful [Filter.SetParams]. Cutoff and q are handled as in SetParams.
// A zero Filter must be configured with SetParams first.
func (f *Filter) Tune(cutoff, q float64) {
	cutoff = core.ClampFinite(cutoff, 0, MaxCutoffRatio*f.sampleRate, 0)
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		q = 1 / math.Sqrt2
	}

	f.g = math.Tan(math.Pi * cutoff / f.sampleRate)
	f.r2 = 1 / q
	f.h = 1 / (1 + f.r2*f.g + f.g*f.g)
}

// SampleRate returns the sample rate the coefficients are computed for.
func (f *Filter) SampleRate() float64 {
	return f.sampleRate
}

// Process advances the filter by one sample and returns all three outputs.
func (f *Filter) Process(x float64) (lp, bp, hp float64) {
	hp = f.h * (x - f.s1*(f.g+f.r2) - f.s2)
	bp = hp*f.g + f.s1
	f.s1 = hp*f.g + bp
	lp = bp*f.g + f.s2
	f.s2 = bp*f.g + lp

	return lp, bp, hp
}

// ProcessBandpass advances the filter by one sample and returns the
// bandpass output.
func (f *Filter) ProcessBandpass(x float64) float64 {
	_, bp, _ := f.Process(x)
	return bp
}

// FlushDenormals zeroes denormal-range integrator state.
func (f *Filter) FlushDenormals() {
	f.s1 = core.FlushDenormals(f.s1)
	f.s2 = core.FlushDenormals(f.s2)
}

// Reset clears the integrator state. Coefficients are kept.
func (f *Filter) Reset() {
	f.s1 = 0
	f.s2 = 0
}

// State returns the integrator state [s1, s2].
func (f *Filter) State() [2]float64 {
	return [2]float64{f.s1, f.s2}
}
