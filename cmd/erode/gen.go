package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/erode/dsp/core"
	"github.com/cwbudde/erode/dsp/signal"
	"github.com/cwbudde/erode/internal/wavio"
)

func runGen(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	out := fs.String("out", "", "output WAV file")
	kind := fs.String("kind", "sine", "signal kind (sine, noise, impulse)")
	freq := fs.Float64("freq", 440, "sine frequency in Hz")
	seconds := fs.Float64("seconds", 1, "length in seconds")
	rate := fs.Int("rate", 48000, "sample rate in Hz")
	channels := fs.Int("channels", 2, "channel count")
	amp := fs.Float64("amp", 0.5, "peak amplitude")
	seed := fs.Int64("seed", 1, "noise seed")
	bits := fs.Int("bits", 16, "bit depth (16, 24, 32)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return errors.New("gen requires -out")
	}
	if *channels <= 0 {
		return fmt.Errorf("gen: channels must be > 0: %d", *channels)
	}

	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(float64(*rate)), core.WithChannels(*channels)},
		signal.WithSeed(*seed),
	)
	samples, err := generate(gen, *kind, *freq, *amp, *seconds)
	if err != nil {
		return err
	}

	clip := &wavio.Clip{SampleRate: *rate, BitDepth: *bits, Data: gen.Spread(samples)}
	if err := wavio.WriteFile(*out, clip); err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "wrote %s: %s, %d frames\n", *out, *kind, len(samples))
	return err
}

func generate(gen *signal.Generator, kind string, freq, amp, seconds float64) ([]float64, error) {
	n := int(math.Round(seconds * gen.Config().SampleRate))

	switch kind {
	case "sine":
		return gen.Sine(freq, amp, n)
	case "noise":
		return gen.WhiteNoise(amp, n)
	case "impulse":
		return gen.Impulse(amp, n)
	default:
		return nil, fmt.Errorf("gen: unknown kind %q", kind)
	}
}
