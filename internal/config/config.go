// Package config loads the YAML configuration of the erode command.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cwbudde/erode/dsp/core"
	"github.com/cwbudde/erode/dsp/effects/erode"
	"github.com/cwbudde/erode/dsp/spectrum"
	"github.com/cwbudde/erode/dsp/window"
	"github.com/cwbudde/erode/internal/logger"
	"gopkg.in/yaml.v3"
)

// ErrInvalid reports a configuration value out of range.
var ErrInvalid = errors.New("invalid config")

// Params holds the initial effect parameter values.
type Params struct {
	Freq   float64 `yaml:"freq"`
	Width  float64 `yaml:"width"`
	Amount float64 `yaml:"amount"`
	Mix    float64 `yaml:"mix"`
	Cut    float64 `yaml:"cut"`
	Mode   string  `yaml:"mode"`
}

// Audio describes the stream format.
type Audio struct {
	SampleRate float64 `yaml:"sample_rate"`
	BlockSize  int     `yaml:"block_size"`
	Channels   int     `yaml:"channels"`
}

// Processor holds construction options of the effect.
type Processor struct {
	Profile     string  `yaml:"profile"`
	Seed        int64   `yaml:"seed"`
	MaxDelay    float64 `yaml:"max_delay_seconds"`
	BaseDelay   float64 `yaml:"base_delay_seconds"`
	Depth       float64 `yaml:"depth_samples"`
	ToneOrder   int     `yaml:"tone_order"`
	ToneQ       float64 `yaml:"tone_q"`
	CaptureSize int     `yaml:"capture_size"`
}

// Monitor configures the spectrum monitor.
type Monitor struct {
	FFTSize int     `yaml:"fft_size"`
	FPS     float64 `yaml:"fps"`
	Decay   float64 `yaml:"decay"`
	Window  string  `yaml:"window"`
}

// Log configures logging.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config is the root document.
type Config struct {
	Params    Params    `yaml:"params"`
	Audio     Audio     `yaml:"audio"`
	Processor Processor `yaml:"processor"`
	Monitor   Monitor   `yaml:"monitor"`
	Log       Log       `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	p := erode.DefaultParams()
	return Config{
		Params: Params{
			Freq:   p.Freq,
			Width:  p.Width,
			Amount: p.Amount,
			Mix:    p.Mix,
			Cut:    p.Cut,
			Mode:   p.Mode.String(),
		},
		Audio: Audio{
			SampleRate: 48000,
			BlockSize:  512,
			Channels:   2,
		},
		Processor: Processor{
			Profile:     erode.ProfileTone.String(),
			Seed:        1,
			MaxDelay:    0.1,
			BaseDelay:   0.05,
			Depth:       20,
			ToneOrder:   2,
			ToneQ:       0.707,
			CaptureSize: spectrum.DefaultFFTSize,
		},
		Monitor: Monitor{
			FFTSize: spectrum.DefaultFFTSize,
			FPS:     60,
			Decay:   spectrum.DefaultDecay,
			Window:  window.TypeHann.String(),
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path and overlays it on Default. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Parse decodes YAML data into cfg and validates the result. Keys missing
// from data keep the values already in cfg.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg.Validate()
}

// Marshal encodes cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate checks the values that cannot be clamped silently.
func (c Config) Validate() error {
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate must be > 0", ErrInvalid)
	}
	if c.Audio.BlockSize <= 0 {
		return fmt.Errorf("%w: audio.block_size must be > 0", ErrInvalid)
	}
	if c.Audio.Channels <= 0 {
		return fmt.Errorf("%w: audio.channels must be > 0", ErrInvalid)
	}
	if _, err := erode.ParseMode(c.Params.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := erode.ParseProfile(c.Processor.Profile); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Monitor.FPS <= 0 {
		return fmt.Errorf("%w: monitor.fps must be > 0", ErrInvalid)
	}
	if n := c.Monitor.FFTSize; n < 2 || n&(n-1) != 0 {
		return fmt.Errorf("%w: monitor.fft_size must be a power of two", ErrInvalid)
	}
	if c.Processor.CaptureSize < c.Monitor.FFTSize {
		return fmt.Errorf("%w: processor.capture_size %d is smaller than monitor.fft_size %d",
			ErrInvalid, c.Processor.CaptureSize, c.Monitor.FFTSize)
	}
	if c.Monitor.Decay <= 0 || c.Monitor.Decay >= 1 {
		return fmt.Errorf("%w: monitor.decay must be in (0, 1)", ErrInvalid)
	}
	if _, err := window.ParseType(c.Monitor.Window); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Stream returns the audio stream format as processor settings.
func (c Config) Stream() core.ProcessorConfig {
	return core.ApplyProcessorOptions(
		core.WithSampleRate(c.Audio.SampleRate),
		core.WithBlockSize(c.Audio.BlockSize),
		core.WithChannels(c.Audio.Channels),
	)
}

// EffectParams returns the configured parameter values, clamped.
func (c Config) EffectParams() erode.Params {
	mode, _ := erode.ParseMode(c.Params.Mode)
	return erode.Params{
		Freq:   c.Params.Freq,
		Width:  c.Params.Width,
		Amount: c.Params.Amount,
		Mix:    c.Params.Mix,
		Cut:    c.Params.Cut,
		Mode:   mode,
	}.Clamp()
}

// ProcessorOptions returns the effect construction options. src becomes
// the parameter source when non-nil.
func (c Config) ProcessorOptions(src erode.ParamSource) ([]erode.Option, error) {
	profile, err := erode.ParseProfile(c.Processor.Profile)
	if err != nil {
		return nil, err
	}

	opts := []erode.Option{
		erode.WithProfile(profile),
		erode.WithSeed(c.Processor.Seed),
		erode.WithMaxDelaySeconds(c.Processor.MaxDelay),
		erode.WithBaseDelaySeconds(c.Processor.BaseDelay),
		erode.WithDepthSamples(c.Processor.Depth),
		erode.WithToneOrder(c.Processor.ToneOrder),
		erode.WithToneQ(c.Processor.ToneQ),
		erode.WithCaptureSize(c.Processor.CaptureSize),
	}
	if src != nil {
		opts = append(opts, erode.WithParamSource(src))
	}
	return opts, nil
}

// MonitorOptions returns the spectrum monitor options.
func (c Config) MonitorOptions() []spectrum.MonitorOption {
	opts := []spectrum.MonitorOption{
		spectrum.WithFFTSize(c.Monitor.FFTSize),
		spectrum.WithDecay(c.Monitor.Decay),
	}
	if t, err := window.ParseType(c.Monitor.Window); err == nil {
		opts = append(opts, spectrum.WithAnalysisWindow(t))
	}
	return opts
}

// Interval is the monitor refresh period.
func (c Config) Interval() time.Duration {
	return time.Duration(float64(time.Second) / c.Monitor.FPS)
}
