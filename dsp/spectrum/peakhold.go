package spectrum

import "github.com/cwbudde/algo-vecmath"

// DefaultDecay is the per-update peak-hold decay factor.
const DefaultDecay = 0.97

// PeakHold keeps, per bin, the maximum of the fresh magnitude and the
// previous held value scaled by a decay factor.
type PeakHold struct {
	decay  float64
	values []float64
}

// NewPeakHold returns a zeroed envelope of the given bin count. Decay values
// outside [0, 1) fall back to DefaultDecay.
func NewPeakHold(bins int, decay float64) *PeakHold {
	if decay < 0 || decay >= 1 {
		decay = DefaultDecay
	}

	return &PeakHold{decay: decay, values: make([]float64, max(bins, 0))}
}

// Decay returns the decay factor.
func (p *PeakHold) Decay() float64 {
	return p.decay
}

// Update folds fresh magnitudes into the envelope. Extra fresh values are
// ignored; missing ones count as zero.
func (p *PeakHold) Update(fresh []float64) {
	vecmath.ScaleBlock(p.values, p.values, p.decay)

	n := min(len(fresh), len(p.values))
	for i := range n {
		if fresh[i] > p.values[i] {
			p.values[i] = fresh[i]
		}
	}
}

// Values returns the held magnitudes. The slice aliases internal state.
func (p *PeakHold) Values() []float64 {
	return p.values
}

// Reset zeroes the envelope.
func (p *PeakHold) Reset() {
	for i := range p.values {
		p.values[i] = 0
	}
}
