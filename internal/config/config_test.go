package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cwbudde/erode/dsp/effects/erode"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if got := cfg.EffectParams(); got != erode.DefaultParams() {
		t.Fatalf("EffectParams() = %+v, want %+v", got, erode.DefaultParams())
	}
	opts, err := cfg.ProcessorOptions(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := erode.New(opts...); err != nil {
		t.Fatalf("erode.New(default options): %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "erode.yaml")
	doc := []byte(`
params:
  freq: 250
  mode: smooth
processor:
  profile: classic
monitor:
  fps: 30
`)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Params.Freq != 250 || cfg.Params.Mode != "smooth" {
		t.Fatalf("params not loaded: %+v", cfg.Params)
	}
	if cfg.Params.Width != 0.5 || cfg.Audio.SampleRate != 48000 {
		t.Fatalf("defaults not kept: %+v %+v", cfg.Params, cfg.Audio)
	}
	if cfg.Processor.Profile != "classic" {
		t.Fatalf("profile = %q", cfg.Processor.Profile)
	}
	if got := cfg.Interval(); got != time.Second/30 {
		t.Fatalf("Interval() = %v", got)
	}
	if got := cfg.EffectParams().Mode; got != erode.ModeSmooth {
		t.Fatalf("mode = %v", got)
	}
}

func TestStream(t *testing.T) {
	cfg := Default()
	cfg.Audio = Audio{SampleRate: 44100, BlockSize: 128, Channels: 1}
	got := cfg.Stream()
	if got.SampleRate != 44100 || got.BlockSize != 128 || got.Channels != 1 {
		t.Fatalf("Stream() = %+v", got)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("Load(\"\") differs from Default()")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	cfg := Default()
	if err := Parse([]byte("params: [1, 2"), &cfg); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"sample rate", func(c *Config) { c.Audio.SampleRate = 0 }},
		{"block size", func(c *Config) { c.Audio.BlockSize = -1 }},
		{"channels", func(c *Config) { c.Audio.Channels = 0 }},
		{"mode", func(c *Config) { c.Params.Mode = "gritty" }},
		{"profile", func(c *Config) { c.Processor.Profile = "vintage" }},
		{"fps", func(c *Config) { c.Monitor.FPS = 0 }},
		{"fft size", func(c *Config) { c.Monitor.FFTSize = 1000 }},
		{"capture below fft", func(c *Config) { c.Processor.CaptureSize = 1024 }},
		{"fft above capture", func(c *Config) { c.Monitor.FFTSize = 4096 }},
		{"decay", func(c *Config) { c.Monitor.Decay = 1 }},
		{"window", func(c *Config) { c.Monitor.Window = "kaiser" }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestEffectParamsClamps(t *testing.T) {
	cfg := Default()
	cfg.Params.Freq = 1e6
	cfg.Params.Mix = -3
	p := cfg.EffectParams()
	if p.Freq != erode.MaxFreq || p.Mix != 0 {
		t.Fatalf("EffectParams() = %+v", p)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Params.Freq = 440
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	got := Default()
	if err := Parse(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestProcessorOptionsWithSource(t *testing.T) {
	cfg := Default()
	src := erode.NewParameters()
	opts, err := cfg.ProcessorOptions(src)
	if err != nil {
		t.Fatal(err)
	}
	p, err := erode.New(opts...)
	if err != nil {
		t.Fatal(err)
	}
	if p.Params() != erode.ParamSource(src) {
		t.Fatal("parameter source not wired")
	}
	if len(cfg.MonitorOptions()) != 3 {
		t.Fatalf("MonitorOptions() len = %d", len(cfg.MonitorOptions()))
	}
}
