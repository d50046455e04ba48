// Package delay provides a multichannel circular delay line with a shared
// write cursor and fractional reads.
package delay

import (
	"fmt"

	"github.com/cwbudde/erode/dsp/core"
	"github.com/cwbudde/erode/dsp/interp"
)

// Line is a circular delay line holding one buffer per channel. All
// channels share the write cursor, so one frame is written per channel and
// then [Line.Advance] moves the cursor once.
type Line struct {
	buffers  [][]float64
	writePos int
}

// New returns a delay line with the given channel count and per-channel
// length in samples.
func New(channels, size int) (*Line, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("delay channels must be > 0: %d", channels)
	}
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}

	buffers := make([][]float64, channels)
	for ch := range buffers {
		buffers[ch] = make([]float64, size)
	}

	return &Line{buffers: buffers}, nil
}

// Len returns the per-channel buffer length.
func (d *Line) Len() int {
	return len(d.buffers[0])
}

// Channels returns the number of channel buffers.
func (d *Line) Channels() int {
	return len(d.buffers)
}

// WritePos returns the index the next Write lands on.
func (d *Line) WritePos() int {
	return d.writePos
}

// Wrap folds pos into [0, length) by repeated addition or subtraction of
// length. Positions any number of buffer lengths out of range are
// resolved, not just one.
func Wrap(pos float64, length int) float64 {
	l := float64(length)
	for pos < 0 {
		pos += l
	}
	// A tiny negative plus l can round up to exactly l.
	for pos >= l {
		pos -= l
	}

	return pos
}

// ReadPosition returns the wrapped read position base samples behind the
// write cursor, shifted forward by offset samples.
func (d *Line) ReadPosition(base int, offset float64) float64 {
	return Wrap(float64(d.writePos-base)+offset, d.Len())
}

// Read returns the sample at fractional position pos (already wrapped) of
// channel ch. Linear mode blends the tap at floor(pos) with the next tap,
// wrapping at the end of the buffer; Truncate returns the floor tap only.
func (d *Line) Read(ch int, pos float64, mode interp.Mode) float64 {
	buf := d.buffers[ch]
	i0 := int(pos)
	i1 := i0 + 1
	if i1 >= len(buf) {
		i1 = 0
	}

	return interp.Linear2(mode.Weight(pos-float64(i0)), buf[i0], buf[i1])
}

// Write stores x at the write cursor of channel ch. The cursor does not
// move until Advance.
func (d *Line) Write(ch int, x float64) {
	d.buffers[ch][d.writePos] = x
}

// Advance moves the shared write cursor by one sample.
func (d *Line) Advance() {
	d.writePos++
	if d.writePos >= d.Len() {
		d.writePos = 0
	}
}

// Reset zeroes every channel and rewinds the write cursor.
func (d *Line) Reset() {
	core.ZeroChannels(d.buffers)
	d.writePos = 0
}
