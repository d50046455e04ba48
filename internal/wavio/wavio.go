// Package wavio reads and writes PCM WAV files as planar float64 audio.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const formatPCM = 1

var (
	// ErrInvalidFile reports input that is not a readable WAV stream.
	ErrInvalidFile = errors.New("wavio: not a valid wav file")
	// ErrBitDepth reports an unsupported sample width.
	ErrBitDepth = errors.New("wavio: unsupported bit depth")
	// ErrFormat reports a non-PCM encoding such as IEEE float.
	ErrFormat = errors.New("wavio: unsupported sample format")
	// ErrEmpty reports a clip without channels.
	ErrEmpty = errors.New("wavio: clip has no channels")
)

// Clip is decoded audio in planar layout.
type Clip struct {
	SampleRate int
	BitDepth   int
	Data       [][]float64
}

// NewClip allocates a silent clip.
func NewClip(sampleRate, bitDepth, channels, frames int) *Clip {
	data := make([][]float64, channels)
	for ch := range data {
		data[ch] = make([]float64, frames)
	}
	return &Clip{SampleRate: sampleRate, BitDepth: bitDepth, Data: data}
}

// Channels returns the channel count.
func (c *Clip) Channels() int { return len(c.Data) }

// Frames returns the per-channel length.
func (c *Clip) Frames() int {
	if len(c.Data) == 0 {
		return 0
	}
	return len(c.Data[0])
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(c.Frames()) / float64(c.SampleRate)
}

func supported(bitDepth int) bool {
	return bitDepth == 16 || bitDepth == 24 || bitDepth == 32
}

// IntToFloat maps a signed PCM sample to [-1, 1).
func IntToFloat(v, bitDepth int) float64 {
	return float64(v) / float64(int64(1)<<(bitDepth-1))
}

// FloatToInt maps x to a signed PCM sample, clipping to [-1, 1].
func FloatToInt(x float64, bitDepth int) int {
	if math.IsNaN(x) {
		return 0
	}
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	full := float64(int64(1)<<(bitDepth-1)) - 1
	return int(math.Round(x * full))
}

// Read decodes a PCM WAV stream.
func Read(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidFile
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: %d", ErrFormat, dec.WavAudioFormat)
	}

	bitDepth := int(dec.BitDepth)
	if !supported(bitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: decode: %w", err)
	}

	channels := int(dec.NumChans)
	if buf.Format != nil && buf.Format.NumChannels > 0 {
		channels = buf.Format.NumChannels
	}
	if channels <= 0 {
		return nil, ErrEmpty
	}

	clip := NewClip(int(dec.SampleRate), bitDepth, channels, len(buf.Data)/channels)
	for i, v := range buf.Data[:clip.Frames()*channels] {
		clip.Data[i%channels][i/channels] = IntToFloat(v, bitDepth)
	}

	return clip, nil
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavio: open: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Write encodes c as PCM. The clip's BitDepth selects the sample width;
// zero means 16 bit.
func Write(w io.WriteSeeker, c *Clip) error {
	channels := c.Channels()
	if channels == 0 {
		return ErrEmpty
	}

	bitDepth := c.BitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}
	if !supported(bitDepth) {
		return fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
	}

	frames := c.Frames()
	data := make([]int, frames*channels)
	for ch, samples := range c.Data {
		for i := 0; i < frames && i < len(samples); i++ {
			data[i*channels+ch] = FloatToInt(samples[i], bitDepth)
		}
	}

	enc := wav.NewEncoder(w, c.SampleRate, bitDepth, channels, formatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: c.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalize: %w", err)
	}

	return nil
}

// WriteFile encodes c to path, replacing any existing file.
func WriteFile(path string, c *Clip) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: create: %w", err)
	}

	if err := Write(f, c); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
