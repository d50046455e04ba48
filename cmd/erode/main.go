// Command erode runs the Erode modulated-delay effect.
//
// Usage:
//
//	erode <command> [flags]
//
// Commands:
//
//	render  process a WAV file offline
//	live    process the default duplex audio device
//	gen     write a test signal to a WAV file
//	params  print the parameter layout
//
// Examples:
//
//	erode gen -out sine.wav -kind sine -freq 440 -seconds 2
//	erode render -in sine.wav -out eroded.wav -width 0.8 -amount 1
//	erode live -config erode.yaml -fps 30
//	erode params
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/erode/dsp/effects/erode"
	"github.com/cwbudde/erode/internal/config"
	"github.com/cwbudde/erode/internal/logger"
	"github.com/cwbudde/erode/internal/termview"
	"github.com/rs/zerolog"
)

type command struct {
	name    string
	summary string
	run     func(args []string, stdout, stderr io.Writer) error
}

var commands = []command{
	{"render", "process a WAV file offline", runRender},
	{"live", "process the default duplex audio device", runLive},
	{"gen", "write a test signal to a WAV file", runGen},
	{"params", "print the parameter layout", runParams},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		err := c.run(args[1:], stdout, stderr)
		switch {
		case err == nil:
			return 0
		case errors.Is(err, flag.ErrHelp):
			return 0
		default:
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	if args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		usage(stdout)
		return 0
	}
	fmt.Fprintf(stderr, "error: unknown command %q\n\n", args[0])
	usage(stderr)
	return 2
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: erode <command> [flags]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-7s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, "\nRun 'erode <command> -h' for command flags.\n")
}

// effectFlags are the parameter and profile overrides shared by render
// and live. Only flags given on the command line replace config values.
type effectFlags struct {
	configPath string
	logLevel   string
	freq       float64
	width      float64
	amount     float64
	mix        float64
	cut        float64
	mode       string
	profile    string
	seed       int64
}

func (f *effectFlags) register(fs *flag.FlagSet) {
	d := config.Default()
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.Float64Var(&f.freq, erode.ParamFreq, d.Params.Freq, "modulation rate / noise band centre in Hz")
	fs.Float64Var(&f.width, erode.ParamWidth, d.Params.Width, "sine to noise blend, 0..1")
	fs.Float64Var(&f.amount, erode.ParamAmount, d.Params.Amount, "modulation depth, 0..1")
	fs.Float64Var(&f.mix, erode.ParamMix, d.Params.Mix, "dry/wet mix, 0..1")
	fs.Float64Var(&f.cut, erode.ParamCut, d.Params.Cut, "output high-pass cutoff in Hz (20 bypasses)")
	fs.StringVar(&f.mode, erode.ParamMode, d.Params.Mode, "delay read mode (rough, smooth)")
	fs.StringVar(&f.profile, "profile", d.Processor.Profile, "processing profile (tone, classic)")
	fs.Int64Var(&f.seed, "seed", d.Processor.Seed, "noise seed")
}

// load reads the config file and applies the explicitly set flags.
func (f *effectFlags) load(fs *flag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "log-level":
			cfg.Log.Level = f.logLevel
		case erode.ParamFreq:
			cfg.Params.Freq = f.freq
		case erode.ParamWidth:
			cfg.Params.Width = f.width
		case erode.ParamAmount:
			cfg.Params.Amount = f.amount
		case erode.ParamMix:
			cfg.Params.Mix = f.mix
		case erode.ParamCut:
			cfg.Params.Cut = f.cut
		case erode.ParamMode:
			cfg.Params.Mode = f.mode
		case "profile":
			cfg.Processor.Profile = f.profile
		case "seed":
			cfg.Processor.Seed = f.seed
		}
	})

	return cfg, cfg.Validate()
}

// newLogger builds the console logger for cfg. The returned closer
// releases the log file, if any.
func newLogger(cfg config.Config, stderr io.Writer) (zerolog.Logger, func(), error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	if cfg.Log.File != "" {
		f, err := logger.OpenFile(cfg.Log.File)
		if err != nil {
			return zerolog.Nop(), func() {}, err
		}
		return logger.New(level, f, true), func() { _ = f.Close() }, nil
	}

	noColor := true
	if f, ok := stderr.(*os.File); ok {
		noColor = !termview.IsTerminal(f)
	}
	return logger.New(level, stderr, noColor), func() {}, nil
}

// newProcessor builds a processor driven by a fresh parameter set seeded
// from cfg.
func newProcessor(cfg config.Config) (*erode.Processor, *erode.Parameters, error) {
	params := erode.NewParameters()
	params.Apply(cfg.EffectParams())

	opts, err := cfg.ProcessorOptions(params)
	if err != nil {
		return nil, nil, err
	}
	proc, err := erode.New(opts...)
	if err != nil {
		return nil, nil, err
	}
	return proc, params, nil
}
