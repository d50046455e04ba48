package biquad

import "github.com/cwbudde/erode/dsp/core"

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Identity returns unity-gain passthrough coefficients.
func Identity() Coefficients {
	return Coefficients{B0: 1}
}

// Stable reports whether both poles lie strictly inside the unit circle
// (stability triangle test).
func (c Coefficients) Stable() bool {
	return c.A2 < 1 && c.A2 > -1 && c.A1 < 1+c.A2 && c.A1 > -(1+c.A2)
}

// Section is a single biquad filter with coefficients and internal state.
type Section struct {
	Coefficients

	d0, d1 float64
}

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// SetCoefficients replaces the coefficients and keeps the delay state.
func (s *Section) SetCoefficients(c Coefficients) {
	s.Coefficients = c
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	d0, d1 := s.d0, s.d1

	for i, x := range buf {
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
}

// FlushDenormals zeroes denormal-range state values.
func (s *Section) FlushDenormals() {
	s.d0 = core.FlushDenormals(s.d0)
	s.d1 = core.FlushDenormals(s.d1)
}

// Reset clears the delay line to zero.
func (s *Section) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// State returns the current delay-line state [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously saved delay-line state.
func (s *Section) SetState(state [2]float64) {
	s.d0 = state[0]
	s.d1 = state[1]
}
