// Package testutil holds deterministic signals and assertions shared by the
// package tests.
package testutil

import (
	"math"
	"math/rand"
)

// Sine returns length samples of amplitude*sin(2*pi*freq*n/sampleRate).
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Noise returns seeded uniform white noise in [-amplitude, amplitude).
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse returns a unit impulse at pos.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Delayed returns x shifted right by n samples, zero-filled at the start,
// with the original length.
func Delayed(x []float64, n int) []float64 {
	out := make([]float64, len(x))
	if n < len(x) {
		copy(out[n:], x[:len(x)-n])
	}
	return out
}

// Planar copies each channel into a fresh planar buffer.
func Planar(channels ...[]float64) [][]float64 {
	out := make([][]float64, len(channels))
	for i, ch := range channels {
		out[i] = append([]float64(nil), ch...)
	}
	return out
}

// InBlocks calls fn on consecutive block-sized windows of buf. The last
// window may be shorter.
func InBlocks(buf [][]float64, block int, fn func([][]float64)) {
	if len(buf) == 0 || block <= 0 {
		return
	}

	view := make([][]float64, len(buf))
	for start := 0; start < len(buf[0]); start += block {
		end := min(start+block, len(buf[0]))
		for ch := range buf {
			view[ch] = buf[ch][start:end]
		}
		fn(view)
	}
}

// Ones returns n samples of 1.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
