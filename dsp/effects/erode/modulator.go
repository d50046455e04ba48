package erode

import (
	"math"

	"github.com/cwbudde/erode/dsp/core"
	"github.com/cwbudde/erode/dsp/filter/svf"
	"github.com/cwbudde/erode/dsp/signal"
)

// Noise band-pass Q limits. Width 1 gives MinQ, width 0 gives MaxQ.
const (
	MinQ = 0.5
	MaxQ = 30.0
)

// ShapeQ maps width in [0, 1] to the noise band-pass quality factor
// MinQ*(MaxQ/MinQ)^(1-width).
func ShapeQ(width float64) float64 {
	return MinQ * math.Pow(MaxQ/MinQ, 1-width)
}

// NoiseGain is the level applied to the band-passed noise before the
// saturator, width^0.2.
func NoiseGain(width float64) float64 {
	return math.Pow(width, 0.2)
}

// SineAmount is the sine share of the modulation, 1-width^0.7.
func SineAmount(width float64) float64 {
	return 1 - math.Pow(width, 0.7)
}

// Crossfade blends noise and sine by width.
func Crossfade(width, noise, sine float64) float64 {
	s := SineAmount(width)
	return (1-s)*noise + s*sine
}

// Modulator produces the per-sample modulation signal in [-1, 1].
type Modulator struct {
	osc    *signal.Oscillator
	noise  *signal.Noise
	filter *svf.Filter

	sineOnly bool
	freq     float64
	gain     float64
	sine     float64
}

// NewModulator returns a modulator for sampleRate whose noise source is
// seeded with seed. A sineOnly modulator never advances the noise path.
func NewModulator(sampleRate float64, seed int64, sineOnly bool) (*Modulator, error) {
	osc, err := signal.NewOscillator(sampleRate)
	if err != nil {
		return nil, err
	}

	filter, err := svf.New(DefaultParams().Freq, ShapeQ(DefaultParams().Width), sampleRate)
	if err != nil {
		return nil, err
	}

	m := &Modulator{
		osc:      osc,
		noise:    signal.NewNoise(seed),
		filter:   filter,
		sineOnly: sineOnly,
	}
	m.Update(DefaultParams().Freq, DefaultParams().Width)

	return m, nil
}

// Update sets the LFO frequency and the noise band from freq and width.
// Called once per block.
func (m *Modulator) Update(freq, width float64) {
	m.freq = freq
	m.sine = SineAmount(width)
	m.gain = NoiseGain(width)
	m.filter.Tune(freq, ShapeQ(width))
}

// Next returns the next modulation sample.
func (m *Modulator) Next() float64 {
	sine := m.osc.Next(m.freq)
	if m.sineOnly {
		return sine
	}

	return (1-m.sine)*m.shapedNoise() + m.sine*sine
}

// shapedNoise is band-passed white noise, scaled and saturated into (-1, 1).
func (m *Modulator) shapedNoise() float64 {
	return core.SoftClip(m.filter.ProcessBandpass(m.noise.Next()) * m.gain)
}

// Phase returns the LFO phase in radians.
func (m *Modulator) Phase() float64 {
	return m.osc.Phase()
}

// FlushDenormals clears denormal filter state.
func (m *Modulator) FlushDenormals() {
	m.filter.FlushDenormals()
}

// Reset rewinds the LFO, reseeds the noise and clears the filter.
func (m *Modulator) Reset() {
	m.osc.Reset()
	m.noise.Reset()
	m.filter.Reset()
}
