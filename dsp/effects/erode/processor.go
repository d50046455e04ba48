package erode

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/erode/dsp/buffer"
	"github.com/cwbudde/erode/dsp/core"
	"github.com/cwbudde/erode/dsp/delay"
	"github.com/cwbudde/erode/dsp/filter/biquad"
	"github.com/cwbudde/erode/dsp/interp"
)

// ClassicMix is the fixed wet share of ProfileClassic.
const ClassicMix = 0.5

// Prepare errors.
var (
	ErrInvalidSampleRate = errors.New("erode: invalid sample rate")
	ErrInvalidBlockSize  = errors.New("erode: invalid block size")
	ErrInvalidChannels   = errors.New("erode: invalid channel count")
)

// Processor runs the effect over planar blocks.
type Processor struct {
	cfg    config
	params ParamSource

	sampleRate   float64
	maxBlockSize int
	channels     int
	baseDelay    int
	prepared     bool
	last         Params

	line *delay.Line
	mod  *Modulator
	tone *toneFilter

	input  *buffer.Capture
	output *buffer.Capture
}

// New creates an unprepared processor.
func New(opts ...Option) (*Processor, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.params == nil {
		cfg.params = NewParameters()
	}

	return &Processor{
		cfg:    cfg,
		params: cfg.params,
		last:   cfg.params.Snapshot(),
		input:  buffer.NewCapture(cfg.captureSize),
		output: buffer.NewCapture(cfg.captureSize),
	}, nil
}

// Prepare allocates every buffer for the stream format and clears all
// state. It must be called before processing and again whenever the sample
// rate, block size or channel count changes.
func (p *Processor) Prepare(sampleRate float64, maxBlockSize, channels int) error {
	if sampleRate <= 0 || !finite(sampleRate) {
		return fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}
	if maxBlockSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBlockSize, maxBlockSize)
	}
	if channels <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	// Base and depth are not checked against the buffer: out-of-range
	// read positions wrap.
	length := int(math.Ceil(sampleRate * p.cfg.maxDelaySeconds))
	base := int(sampleRate * p.cfg.baseDelaySeconds)

	line, err := delay.New(channels, length)
	if err != nil {
		return err
	}

	mod, err := NewModulator(sampleRate, p.cfg.seed, p.cfg.profile == ProfileClassic)
	if err != nil {
		return err
	}

	p.sampleRate = sampleRate
	p.maxBlockSize = maxBlockSize
	p.channels = channels
	p.baseDelay = base
	p.line = line
	p.mod = mod
	p.tone = newToneFilter(channels, p.cfg.toneOrder, p.cfg.toneQ)
	p.input.Reset()
	p.output.Reset()
	p.prepared = true

	return nil
}

// ProcessBlock processes buf in place. buf holds one slice per channel, all
// of the same length. Channels beyond the prepared count are zeroed. An
// unprepared processor leaves buf untouched.
func (p *Processor) ProcessBlock(buf [][]float64) {
	if !p.prepared || len(buf) == 0 {
		return
	}

	nch := min(len(buf), p.channels)
	core.ZeroChannels(buf[nch:])

	frames := len(buf[0])
	for ch := 1; ch < nch; ch++ {
		frames = min(frames, len(buf[ch]))
	}

	params := p.params.Snapshot()
	p.last = params

	p.mod.Update(params.Freq, params.Width)

	mode := interp.Linear
	mix := params.Mix
	if p.cfg.profile == ProfileClassic {
		mode = params.Mode.Interp()
		mix = ClassicMix
	} else {
		p.tone.update(params.Cut, p.sampleRate)
	}

	depth := params.Amount * p.cfg.depthSamples
	scale := 1 / float64(nch)

	for i := range frames {
		pos := p.line.ReadPosition(p.baseDelay, p.mod.Next()*depth)

		var drySum, wetSum float64
		for ch := range nch {
			dry := buf[ch][i]
			wet := p.tone.process(ch, p.line.Read(ch, pos, mode))

			p.line.Write(ch, dry)
			buf[ch][i] = Mix(dry, wet, mix)

			drySum += dry
			wetSum += wet
		}
		p.line.Advance()

		p.input.Push(drySum * scale)
		p.output.Push(wetSum * scale)
	}

	p.mod.FlushDenormals()
	p.tone.flushDenormals()
}

// Reset clears delay, modulation, filter and capture state without
// reallocating. The noise generator restarts from its seed.
func (p *Processor) Reset() {
	if !p.prepared {
		return
	}

	p.line.Reset()
	p.mod.Reset()
	p.tone.reset()
	p.input.Reset()
	p.output.Reset()
}

// Input returns the mono capture of the dry input.
func (p *Processor) Input() *buffer.Capture { return p.input }

// Output returns the mono capture of the wet signal after the tone filter.
func (p *Processor) Output() *buffer.Capture { return p.output }

// Params returns the parameter source.
func (p *Processor) Params() ParamSource { return p.params }

// LastParams returns the snapshot used by the most recent block.
func (p *Processor) LastParams() Params { return p.last }

// Profile returns the configured profile.
func (p *Processor) Profile() Profile { return p.cfg.profile }

// Prepared reports whether Prepare has succeeded.
func (p *Processor) Prepared() bool { return p.prepared }

// SampleRate returns the prepared sample rate, or 0.
func (p *Processor) SampleRate() float64 { return p.sampleRate }

// Channels returns the prepared channel count, or 0.
func (p *Processor) Channels() int { return p.channels }

// MaxBlockSize returns the prepared block size hint, or 0.
func (p *Processor) MaxBlockSize() int { return p.maxBlockSize }

// DelaySamples returns the base delay, which is also the latency of the
// wet path.
func (p *Processor) DelaySamples() int { return p.baseDelay }

// BufferLength returns the per-channel delay buffer length, or 0.
func (p *Processor) BufferLength() int {
	if p.line == nil {
		return 0
	}

	return p.line.Len()
}

// ToneResponse writes the tone filter gain in dB at each of freqs for the
// given cut into dst and returns the number of values written. The classic
// profile has no tone filter and reads 0 dB, as does an unprepared
// processor.
func (p *Processor) ToneResponse(dst, freqs []float64, cut float64) int {
	n := min(len(dst), len(freqs))
	var c biquad.Coefficients
	ok := false
	if p.prepared && p.cfg.profile == ProfileTone {
		c, ok = p.tone.coefficients(core.ClampFinite(cut, MinCut, MaxCut, MinCut), p.sampleRate)
	}
	if !ok {
		core.Zero(dst[:n])
		return n
	}

	return c.ResponseDB(dst, freqs, p.sampleRate)
}

// TailSeconds returns how long the effect keeps sounding after the input
// stops.
func (p *Processor) TailSeconds() float64 { return p.cfg.maxDelaySeconds }
