package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/cwbudde/erode/dsp/effects/erode"
	"github.com/cwbudde/erode/dsp/param"
	"github.com/cwbudde/erode/dsp/spectrum"
	"github.com/cwbudde/erode/internal/host"
	"github.com/cwbudde/erode/internal/termview"
)

const clearScreen = "\x1b[H\x1b[2J"

func runLive(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("live", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var ef effectFlags
	ef.register(fs)
	fps := fs.Float64("fps", 0, "display refresh rate (default from config)")
	quiet := fs.Bool("quiet", false, "disable the spectrum display")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := ef.load(fs)
	if err != nil {
		return err
	}
	if *fps > 0 {
		cfg.Monitor.FPS = *fps
	}

	log, closeLog, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	proc, params, err := newProcessor(cfg)
	if err != nil {
		return err
	}
	stream := cfg.Stream()
	if err := proc.Prepare(stream.SampleRate, stream.BlockSize, stream.Channels); err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	engine, err := host.NewEngine(proc)
	if err != nil {
		return err
	}

	frames := make(chan struct{}, 1)
	opts := append(cfg.MonitorOptions(),
		spectrum.WithLogger(log),
		spectrum.WithOnFrame(func() {
			select {
			case frames <- struct{}{}:
			default:
			}
		}),
	)
	mon, err := spectrum.NewMonitor(proc.Input(), proc.Output(), stream.SampleRate, opts...)
	if err != nil {
		return err
	}

	device, err := host.Open(host.DeviceConfig{
		SampleRate:   int(stream.SampleRate),
		Channels:     stream.Channels,
		PeriodFrames: stream.BlockSize,
	}, engine, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := device.Close(); err != nil {
			log.Warn().Err(err).Msg("device close")
		}
	}()
	if err := device.Start(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		if err := mon.Run(ctx, cfg.Interval()); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("monitor stopped")
		}
	}()

	log.Info().
		Float64("rate", stream.SampleRate).
		Int("channels", stream.Channels).
		Int("delay_samples", proc.DelaySamples()).
		Msg("running, press Ctrl+C to stop")

	if *quiet {
		<-ctx.Done()
		return nil
	}
	return display(ctx, stdout, mon, params.Set(), frames)
}

// display redraws the spectrum strip after every monitor frame until ctx
// is done.
func display(ctx context.Context, w io.Writer, mon *spectrum.Monitor, params *param.Set, frames <-chan struct{}) error {
	noColor := true
	width := 80
	if f, ok := w.(*os.File); ok {
		noColor = !termview.IsTerminal(f)
		width = termview.TerminalWidth(f, width)
	}

	strip := termview.NewStrip(width-4, mon.FFTSize(), mon.SampleRate(), noColor)
	in := make([]float64, mon.Bins())
	out := make([]float64, mon.Bins())
	resize := time.NewTicker(time.Second)
	defer resize.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-resize.C:
			if f, ok := w.(*os.File); ok {
				if cols := termview.TerminalWidth(f, width) - 4; cols != strip.Width() {
					strip.Resize(cols)
				}
			}
		case <-frames:
			mon.Input(in)
			mon.Output(out)
			freq := params.Get(erode.ParamFreq).Value()
			bandWidth := params.Get(erode.ParamWidth).Value()
			frame := strip.Frame(in, out, freq, bandWidth)
			if _, err := fmt.Fprint(w, clearScreen+frame); err != nil {
				return err
			}
		}
	}
}
