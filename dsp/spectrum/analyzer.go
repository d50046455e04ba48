package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/erode/dsp/window"
)

// DefaultFFTSize is the analysis frame length.
const DefaultFFTSize = 2048

// ErrInvalidSize is returned for FFT sizes that are not a power of two of at
// least 2.
var ErrInvalidSize = errors.New("spectrum: fft size must be a power of two >= 2")

// Source yields the most recent samples of a stream, oldest first, and
// returns how many were copied. [buffer.Capture] satisfies it.
type Source interface {
	Snapshot(dst []float64) int
}

// AnalyzerOption configures an [Analyzer].
type AnalyzerOption func(*analyzerConfig)

type analyzerConfig struct {
	window    window.Type
	normalize bool
}

// WithWindow selects the analysis window. The default is Hann.
func WithWindow(t window.Type) AnalyzerOption {
	return func(c *analyzerConfig) {
		c.window = t
	}
}

// WithUnnormalizedWindow keeps the raw window coefficients. By default they
// are scaled to a mean of one so that a full-scale bin-centred sine reads
// fftSize/2 regardless of the window.
func WithUnnormalizedWindow() AnalyzerOption {
	return func(c *analyzerConfig) {
		c.normalize = false
	}
}

// Analyzer computes magnitude spectra of fixed-size frames. It is not safe
// for concurrent use; [Monitor] serializes access.
type Analyzer struct {
	size   int
	window []float64
	frame  []float64
	in     []complex128
	out    []complex128
	re, im []float64
	plan   *algofft.Plan[complex128]
}

// NewAnalyzer allocates an analyzer with all scratch buffers and the FFT
// plan for the given size.
func NewAnalyzer(size int, opts ...AnalyzerOption) (*Analyzer, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	cfg := analyzerConfig{window: window.TypeHann, normalize: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	win := window.Generate(cfg.window, size)
	if cfg.normalize {
		if gain := window.CoherentGain(win); gain > 0 {
			for i := range win {
				win[i] /= gain
			}
		}
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum init fft plan: %w", err)
	}

	bins := size / 2

	return &Analyzer{
		size:   size,
		window: win,
		frame:  make([]float64, size),
		in:     make([]complex128, size),
		out:    make([]complex128, size),
		re:     make([]float64, bins),
		im:     make([]float64, bins),
		plan:   plan,
	}, nil
}

// Size returns the FFT length.
func (a *Analyzer) Size() int {
	return a.size
}

// Bins returns the number of magnitude bins produced, Size()/2.
func (a *Analyzer) Bins() int {
	return a.size / 2
}

// Analyze snapshots src and writes the magnitude spectrum into dst, which
// must hold at least Bins() values. A source shorter than the frame is
// zero-padded at the end.
func (a *Analyzer) Analyze(dst []float64, src Source) error {
	n := src.Snapshot(a.frame)
	for i := n; i < a.size; i++ {
		a.frame[i] = 0
	}

	return a.analyze(dst)
}

// AnalyzeFrame writes the magnitude spectrum of frame into dst. frame must
// have exactly Size() samples and is not modified.
func (a *Analyzer) AnalyzeFrame(dst, frame []float64) error {
	if len(frame) != a.size {
		return fmt.Errorf("spectrum: frame length %d, want %d", len(frame), a.size)
	}
	copy(a.frame, frame)

	return a.analyze(dst)
}

func (a *Analyzer) analyze(dst []float64) error {
	bins := a.Bins()
	if len(dst) < bins {
		return fmt.Errorf("spectrum: dst length %d, want at least %d", len(dst), bins)
	}

	if err := window.ApplyCoefficientsInPlace(a.frame, a.window); err != nil {
		return err
	}

	for i, x := range a.frame {
		a.in[i] = complex(x, 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return fmt.Errorf("spectrum forward fft: %w", err)
	}

	for i := range bins {
		a.re[i] = real(a.out[i])
		a.im[i] = imag(a.out[i])
	}

	MagnitudeFromParts(dst[:bins], a.re, a.im)

	return nil
}
