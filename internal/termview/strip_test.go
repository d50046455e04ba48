package termview

import (
	"os"
	"strings"
	"testing"
	"unicode/utf8"
)

const (
	testFFT  = 2048
	testRate = 48000.0
)

func flat(v float64) []float64 {
	mags := make([]float64, testFFT/2)
	for i := range mags {
		mags[i] = v
	}
	return mags
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		level float64
		want  rune
	}{
		{-1, ' '},
		{0, ' '},
		{0.5, '▄'},
		{1, '█'},
		{2, '█'},
	}
	for _, tt := range tests {
		if got := Glyph(tt.level); got != tt.want {
			t.Fatalf("Glyph(%v) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestRowLevels(t *testing.T) {
	s := NewStrip(40, testFFT, testRate, true)

	full := s.Row(flat(testFFT), 1000, 0.5)
	if full != strings.Repeat("█", 40) {
		t.Fatalf("full-scale row = %q", full)
	}
	silent := s.Row(flat(0), 1000, 0.5)
	if silent != strings.Repeat(" ", 40) {
		t.Fatalf("silent row = %q", silent)
	}
}

func TestRowHighlightsBand(t *testing.T) {
	s := NewStrip(100, testFFT, testRate, false)
	row := s.Row(flat(testFFT), 1000, 0)

	// At width 0 the band covers only column 56.
	want := s.bar.Sprint(strings.Repeat("█", 56)) +
		s.band.Sprint("█") +
		s.bar.Sprint(strings.Repeat("█", 43))
	if row != want {
		t.Fatalf("row = %q, want %q", row, want)
	}
	if !strings.Contains(row, "\x1b[") {
		t.Fatalf("expected color escapes in %q", row)
	}
}

func TestLevelsPeaksAtToneColumn(t *testing.T) {
	s := NewStrip(64, testFFT, testRate, true)
	mags := flat(0)
	// Bins 38..47 span roughly 890 Hz to 1.1 kHz.
	for bin := 38; bin <= 47; bin++ {
		mags[bin] = testFFT
	}

	levels := make([]float64, s.Width())
	if err := s.Levels(levels, mags); err != nil {
		t.Fatal(err)
	}
	best := 0
	for c, v := range levels {
		if v > levels[best] {
			best = c
		}
	}
	if best < 34 || best > 38 {
		t.Fatalf("peak column = %d, want near 35", best)
	}
}

func TestFrameHasTwoRows(t *testing.T) {
	s := NewStrip(20, testFFT, testRate, true)
	frame := s.Frame(flat(0), flat(testFFT), 440, 0.2)
	lines := strings.Split(strings.TrimSuffix(frame, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("frame has %d lines", len(lines))
	}
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n != 24 {
			t.Fatalf("line %q has %d runes, want 24", line, n)
		}
	}
}

func TestResizeClampsWidth(t *testing.T) {
	s := NewStrip(0, testFFT, testRate, true)
	if s.Width() != 1 {
		t.Fatalf("Width() = %d", s.Width())
	}
	s.Resize(12)
	if got := utf8.RuneCountInString(s.Row(flat(0), 1000, 0)); got != 12 {
		t.Fatalf("row length = %d", got)
	}
}

func TestTerminalWidthFallback(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Fatal("temp file reported as terminal")
	}
	if got := TerminalWidth(f, 77); got != 77 {
		t.Fatalf("TerminalWidth = %d", got)
	}
}
