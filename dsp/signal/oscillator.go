package signal

import (
	"fmt"
	"math"
)

const twoPi = 2 * math.Pi

// Oscillator is a phase-accumulator sine LFO.
//
// The phase stays in [0, 2*pi). It is wrapped by a single subtraction, which
// is valid as long as the per-sample increment is below 2*pi, i.e. the
// frequency is below the sample rate.
type Oscillator struct {
	sampleRate float64
	phase      float64
}

// NewOscillator returns an oscillator at phase 0.
func NewOscillator(sampleRate float64) (*Oscillator, error) {
	o := &Oscillator{}
	if err := o.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}
	return o, nil
}

// SetSampleRate updates the sample rate and keeps the current phase.
func (o *Oscillator) SetSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("oscillator sample rate must be > 0 and finite: %f", sampleRate)
	}
	o.sampleRate = sampleRate
	return nil
}

// Next returns sin(phase) and then advances the phase for freqHz.
func (o *Oscillator) Next(freqHz float64) float64 {
	out := math.Sin(o.phase)

	o.phase += twoPi * freqHz / o.sampleRate
	if o.phase >= twoPi {
		o.phase -= twoPi
	}

	return out
}

// Phase returns the current phase in radians.
func (o *Oscillator) Phase() float64 { return o.phase }

// SampleRate returns the sample rate in Hz.
func (o *Oscillator) SampleRate() float64 { return o.sampleRate }

// Reset returns the phase to 0.
func (o *Oscillator) Reset() {
	o.phase = 0
}
