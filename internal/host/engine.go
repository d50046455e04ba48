// Package host connects the erode processor to an audio device.
package host

import (
	"errors"

	"github.com/cwbudde/erode/dsp/buffer"
	"github.com/cwbudde/erode/dsp/core"
	"github.com/cwbudde/erode/dsp/effects/erode"
)

// ErrNotPrepared reports a processor that has not been prepared.
var ErrNotPrepared = errors.New("host: processor not prepared")

// Engine adapts interleaved device buffers to the planar processor. All
// scratch memory is allocated up front; Process does not allocate.
type Engine struct {
	proc     *erode.Processor
	channels int
	block    *buffer.Planar
	view     [][]float64
	scratch  []float64
}

// NewEngine wraps a prepared processor.
func NewEngine(proc *erode.Processor) (*Engine, error) {
	if proc == nil || !proc.Prepared() {
		return nil, ErrNotPrepared
	}

	channels := proc.Channels()
	frames := proc.MaxBlockSize()

	return &Engine{
		proc:     proc,
		channels: channels,
		block:    buffer.NewPlanar(channels, frames),
		view:     make([][]float64, channels),
		scratch:  make([]float64, channels*frames),
	}, nil
}

// Channels returns the interleaved channel count.
func (e *Engine) Channels() int { return e.channels }

// Process runs frames of interleaved float32 input from in through the
// processor and writes the result to out. Blocks longer than the prepared
// maximum are split. Missing input reads as silence.
func (e *Engine) Process(out, in []byte, frames int) {
	maxFrames := e.block.Frames()
	stride := e.channels * bytesPerSample

	for done := 0; done < frames; {
		n := min(frames-done, maxFrames)
		lo, hi := done*stride, (done+n)*stride

		samples := e.scratch[:n*e.channels]
		got := 0
		if lo < len(in) {
			got = DecodeF32(samples, in[lo:min(hi, len(in))])
		}
		core.Zero(samples[got:])

		e.block.Deinterleave(samples)
		for ch, data := range e.block.Channels() {
			e.view[ch] = data[:n]
		}
		e.proc.ProcessBlock(e.view)
		e.block.Interleave(samples, n)

		if lo < len(out) {
			EncodeF32(out[lo:min(hi, len(out))], samples)
		}
		done += n
	}
}
