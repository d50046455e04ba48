// Package termview draws the spectrum monitor as text.
package termview

import (
	"os"
	"strings"

	"github.com/cwbudde/erode/dsp/spectrum"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var glyphs = []rune(" ▁▂▃▄▅▆▇█")

// Strip renders magnitude arrays onto a fixed number of columns on the
// log-frequency axis.
type Strip struct {
	width      int
	fftSize    int
	minDB      float64
	maxDB      float64
	binFreqs   []float64
	queryFreqs []float64
	levels     []float64

	bar  *color.Color
	band *color.Color
	dim  *color.Color
}

// NewStrip returns a strip of width columns for fftSize/2 bins at
// sampleRate.
func NewStrip(width, fftSize int, sampleRate float64, noColor bool) *Strip {
	s := &Strip{
		fftSize: fftSize,
		minDB:   spectrum.DefaultMinDB,
		maxDB:   spectrum.DefaultMaxDB,
		bar:     color.New(color.FgCyan),
		band:    color.New(color.FgYellow, color.Bold),
		dim:     color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{s.bar, s.band, s.dim} {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}

	bins := fftSize / 2
	s.binFreqs = make([]float64, bins)
	for i := range s.binFreqs {
		s.binFreqs[i] = spectrum.BinFrequency(i, sampleRate, fftSize)
	}
	s.Resize(width)

	return s
}

// Width returns the column count.
func (s *Strip) Width() int { return s.width }

// Resize changes the column count.
func (s *Strip) Resize(width int) {
	s.width = max(width, 1)
	s.queryFreqs = make([]float64, s.width)
	s.levels = make([]float64, s.width)
	for c := range s.queryFreqs {
		s.queryFreqs[c] = spectrum.XToFrequency((float64(c) + 0.5) / float64(s.width))
	}
}

// Levels maps mags onto the columns as normalized levels in [0, 1]. dst
// must hold Width values.
func (s *Strip) Levels(dst, mags []float64) error {
	n := min(len(mags), len(s.binFreqs))
	if err := spectrum.InterpolateLinear(dst, s.binFreqs[:n], mags[:n], s.queryFreqs); err != nil {
		return err
	}
	for c := range s.queryFreqs {
		dst[c] = spectrum.LevelNorm(dst[c], s.fftSize, s.minDB, s.maxDB)
	}
	return nil
}

// Glyph returns the bar character for a level in [0, 1].
func Glyph(level float64) rune {
	i := int(level*float64(len(glyphs)-1) + 0.5)
	i = min(max(i, 0), len(glyphs)-1)
	return glyphs[i]
}

// Row renders one magnitude array. Columns inside the noise band around
// freq with the given width are highlighted.
func (s *Strip) Row(mags []float64, freq, width float64) string {
	if err := s.Levels(s.levels, mags); err != nil {
		return strings.Repeat(" ", s.width)
	}

	left, right := spectrum.BandRegion(freq, width)

	var b strings.Builder
	var run strings.Builder
	inBand := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		c := s.bar
		if inBand {
			c = s.band
		}
		b.WriteString(c.Sprint(run.String()))
		run.Reset()
	}

	for col, level := range s.levels {
		x := (float64(col) + 0.5) / float64(s.width)
		hit := x >= left && x <= right
		if hit != inBand {
			flush()
			inBand = hit
		}
		run.WriteRune(Glyph(level))
	}
	flush()

	return b.String()
}

// Frame renders the input and output rows with labels.
func (s *Strip) Frame(in, out []float64, freq, width float64) string {
	var b strings.Builder
	b.WriteString(s.dim.Sprint(" in "))
	b.WriteString(s.Row(in, freq, width))
	b.WriteByte('\n')
	b.WriteString(s.dim.Sprint("out "))
	b.WriteString(s.Row(out, freq, width))
	b.WriteByte('\n')
	return b.String()
}

// TerminalWidth returns the column count of the terminal on f, or fallback
// when f is not a terminal.
func TerminalWidth(f *os.File, fallback int) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
