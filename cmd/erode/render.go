package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/erode/dsp/core"
	"github.com/cwbudde/erode/dsp/signal"
	"github.com/cwbudde/erode/dsp/spectrum"
	"github.com/cwbudde/erode/internal/wavio"
	"github.com/rs/zerolog"
)

func runRender(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var ef effectFlags
	ef.register(fs)
	in := fs.String("in", "", "input WAV file")
	out := fs.String("out", "", "output WAV file")
	block := fs.Int("block", 0, "processing block size (default from config)")
	tail := fs.Bool("tail", true, "append the delay tail to the output")
	bits := fs.Int("bits", 0, "output bit depth (default: same as input)")
	peak := fs.Float64("normalize", 0, "normalize each output channel to this peak (0 disables)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return errors.New("render requires -in and -out")
	}

	cfg, err := ef.load(fs)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	clip, err := wavio.ReadFile(*in)
	if err != nil {
		return err
	}
	log.Info().
		Str("file", *in).
		Int("rate", clip.SampleRate).
		Int("channels", clip.Channels()).
		Float64("seconds", clip.Duration()).
		Msg("input loaded")

	proc, _, err := newProcessor(cfg)
	if err != nil {
		return err
	}
	stream := core.ApplyProcessorOptions(
		core.WithSampleRate(float64(clip.SampleRate)),
		core.WithBlockSize(cfg.Audio.BlockSize),
		core.WithBlockSize(*block),
		core.WithChannels(clip.Channels()),
	)
	sampleRate := stream.SampleRate
	if err := proc.Prepare(sampleRate, stream.BlockSize, stream.Channels); err != nil {
		return fmt.Errorf("prepare: %w", err)
	}

	frames := clip.Frames()
	if *tail {
		frames += int(math.Ceil(proc.TailSeconds() * sampleRate))
	}
	result := wavio.NewClip(clip.SampleRate, clip.BitDepth, clip.Channels(), frames)
	for ch := range clip.Data {
		core.CopyInto(result.Data[ch], clip.Data[ch])
	}
	if *bits > 0 {
		result.BitDepth = *bits
	}

	view := make([][]float64, result.Channels())
	for start := 0; start < frames; start += stream.BlockSize {
		end := min(start+stream.BlockSize, frames)
		for ch := range view {
			view[ch] = result.Data[ch][start:end]
		}
		proc.ProcessBlock(view)
	}

	if *peak > 0 {
		for ch, data := range result.Data {
			if result.Data[ch], err = signal.Normalize(data, *peak); err != nil {
				return err
			}
		}
	}

	if err := logSpectrum(log, proc.Input(), proc.Output(), sampleRate, cfg.MonitorOptions()); err != nil {
		return err
	}

	if err := wavio.WriteFile(*out, result); err != nil {
		return err
	}
	log.Info().Str("file", *out).Int("frames", frames).Msg("output written")
	_, err = fmt.Fprintf(stdout, "%s -> %s (%d frames)\n", *in, *out, frames)
	return err
}

// logSpectrum runs one analysis over the tail of the captures and logs the
// loudest audible bin of each track.
func logSpectrum(log zerolog.Logger, input, output spectrum.Source, sampleRate float64, opts []spectrum.MonitorOption) error {
	opts = append(opts, spectrum.WithLogger(log))
	mon, err := spectrum.NewMonitor(input, output, sampleRate, opts...)
	if err != nil {
		return err
	}
	if err := mon.Tick(); err != nil {
		return err
	}

	mags := make([]float64, mon.Bins())
	for _, track := range []struct {
		name string
		read func([]float64) int
	}{
		{"input", mon.Input},
		{"output", mon.Output},
	} {
		track.read(mags)
		bin := spectrum.PeakBin(mags, sampleRate, mon.FFTSize())
		if bin < 0 {
			continue
		}
		level := spectrum.LevelNorm(mags[bin], mon.FFTSize(), spectrum.DefaultMinDB, spectrum.DefaultMaxDB)
		log.Info().
			Str("track", track.name).
			Float64("peak_hz", mon.BinFrequency(bin)).
			Float64("level", level).
			Msg("spectrum")
	}
	return nil
}
