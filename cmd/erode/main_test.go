package main

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/erode/dsp/core"
	"github.com/cwbudde/erode/dsp/signal"
	"github.com/cwbudde/erode/internal/wavio"
)

func TestRunDispatch(t *testing.T) {
	tests := []struct {
		args []string
		code int
	}{
		{nil, 2},
		{[]string{"bogus"}, 2},
		{[]string{"help"}, 0},
		{[]string{"params", "-h"}, 0},
		{[]string{"render"}, 1},
		{[]string{"gen"}, 1},
	}
	for _, tt := range tests {
		var stdout, stderr bytes.Buffer
		if got := run(tt.args, &stdout, &stderr); got != tt.code {
			t.Fatalf("run(%q) = %d, want %d (stderr %q)", tt.args, got, tt.code, stderr.String())
		}
	}
}

func TestParamsCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"params"}, &stdout, &stderr); code != 0 {
		t.Fatalf("params exit %d: %s", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"freq", "1000 Hz", "20..20000 Hz (skew 0.3)", "rough|smooth", "0.50"} {
		if !strings.Contains(out, want) {
			t.Fatalf("params output missing %q:\n%s", want, out)
		}
	}
}

func TestParamsToneTable(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"params"}, &stdout, &stderr); code != 0 {
		t.Fatalf("params exit %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "tone filter bypassed") {
		t.Fatalf("default cut should bypass the tone filter:\n%s", stdout.String())
	}

	stdout.Reset()
	if code := run([]string{"params", "-cut", "1000"}, &stdout, &stderr); code != 0 {
		t.Fatalf("params -cut exit %d: %s", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"tone high-pass, cut 1000 Hz", "1000 Hz", "-3.01 dB"} {
		if !strings.Contains(out, want) {
			t.Fatalf("tone table missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateKinds(t *testing.T) {
	gen := signal.NewGenerator(core.WithSampleRate(48000))
	for _, kind := range []string{"sine", "noise", "impulse"} {
		got, err := generate(gen, kind, 440, 0.5, 0.01)
		if err != nil {
			t.Fatalf("generate(%s): %v", kind, err)
		}
		if len(got) != 480 {
			t.Fatalf("generate(%s) len = %d", kind, len(got))
		}
	}
	if _, err := generate(gen, "square", 440, 0.5, 0.01); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestGenAndRenderImpulse(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "impulse.wav")
	out := filepath.Join(dir, "eroded.wav")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"gen", "-out", in, "-kind", "impulse", "-seconds", "0.1", "-channels", "1"}, &stdout, &stderr); code != 0 {
		t.Fatalf("gen exit %d: %s", code, stderr.String())
	}

	args := []string{"render", "-in", in, "-out", out, "-mix", "1", "-amount", "0", "-log-level", "error"}
	if code := run(args, &stdout, &stderr); code != 0 {
		t.Fatalf("render exit %d: %s", code, stderr.String())
	}

	clip, err := wavio.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	// 0.1 s of input plus the 0.1 s delay tail.
	if clip.Frames() != 9600 {
		t.Fatalf("frames = %d, want 9600", clip.Frames())
	}
	for i, v := range clip.Data[0] {
		want := 0.0
		if i == 2400 {
			want = 0.5
		}
		if math.Abs(v-want) > 1e-4 {
			t.Fatalf("sample %d = %v, want %v", i, v, want)
		}
	}
}

func TestRenderRejectsBadOverride(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"gen", "-out", in, "-seconds", "0.01"}, &stdout, &stderr); code != 0 {
		t.Fatalf("gen exit %d: %s", code, stderr.String())
	}
	code := run([]string{"render", "-in", in, "-out", filepath.Join(dir, "out.wav"), "-mode", "gritty"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("render with bad mode exit %d", code)
	}
}
