package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/erode/dsp/core"
)

// Generator creates deterministic test signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates a sine wave using the same phase accumulator as the LFO.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if freqHz < 0 || freqHz >= g.cfg.SampleRate {
		return nil, fmt.Errorf("sine frequency must be in [0, %f): %f", g.cfg.SampleRate, freqHz)
	}
	osc, err := NewOscillator(g.cfg.SampleRate)
	if err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = amplitude * osc.Next(freqHz)
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	src := NewNoise(g.seed)
	for i := range out {
		out[i] = src.Next() * amplitude
	}
	return out, nil
}

// Impulse returns a unit impulse of the given amplitude at sample 0.
func (g *Generator) Impulse(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	out[0] = amplitude
	return out, nil
}

// Spread copies mono onto Config().Channels planar channels.
func (g *Generator) Spread(mono []float64) [][]float64 {
	out := make([][]float64, max(g.cfg.Channels, 1))
	for ch := range out {
		out[ch] = make([]float64, len(mono))
		copy(out[ch], mono)
	}
	return out
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
