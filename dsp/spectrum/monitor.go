package spectrum

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/cwbudde/erode/dsp/window"
)

// ErrBusy is returned by [Monitor.Tick] when a previous pass is still
// running.
var ErrBusy = errors.New("spectrum: analysis pass already running")

// State is the monitor's analysis state.
type State int32

const (
	StateIdle State = iota
	StateComputing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateComputing:
		return "computing"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// MonitorOption configures a [Monitor].
type MonitorOption func(*monitorConfig)

type monitorConfig struct {
	fftSize int
	decay   float64
	window  window.Type
	onFrame func()
	logger  zerolog.Logger
}

// WithFFTSize sets the analysis frame length. Default DefaultFFTSize.
func WithFFTSize(n int) MonitorOption {
	return func(c *monitorConfig) {
		c.fftSize = n
	}
}

// WithDecay sets the peak-hold decay factor. Default DefaultDecay.
func WithDecay(d float64) MonitorOption {
	return func(c *monitorConfig) {
		c.decay = d
	}
}

// WithAnalysisWindow selects the analysis window. Default Hann.
func WithAnalysisWindow(t window.Type) MonitorOption {
	return func(c *monitorConfig) {
		c.window = t
	}
}

// WithOnFrame registers a callback invoked after every published frame,
// from the goroutine that ran the tick.
func WithOnFrame(fn func()) MonitorOption {
	return func(c *monitorConfig) {
		c.onFrame = fn
	}
}

// WithLogger sets the monitor logger. Default zerolog.Nop().
func WithLogger(l zerolog.Logger) MonitorOption {
	return func(c *monitorConfig) {
		c.logger = l
	}
}

type track struct {
	source    Source
	fresh     []float64
	hold      *PeakHold
	published []float64
}

// Monitor analyzes an input and an output stream on demand or on a timer.
// Tick may be called from any goroutine; passes never overlap. Readers copy
// the last published frame with Input and Output.
type Monitor struct {
	analyzer   *Analyzer
	tracks     [2]track
	sampleRate atomic.Uint64
	state      atomic.Int32
	frames     atomic.Uint64
	onFrame    func()
	logger     zerolog.Logger

	mu sync.RWMutex
}

// NewMonitor returns a monitor reading from input and output.
func NewMonitor(input, output Source, sampleRate float64, opts ...MonitorOption) (*Monitor, error) {
	if input == nil || output == nil {
		return nil, errors.New("spectrum: monitor sources must not be nil")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("spectrum: monitor sample rate must be > 0: %f", sampleRate)
	}

	cfg := monitorConfig{
		fftSize: DefaultFFTSize,
		decay:   DefaultDecay,
		window:  window.TypeHann,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	analyzer, err := NewAnalyzer(cfg.fftSize, WithWindow(cfg.window))
	if err != nil {
		return nil, err
	}

	m := &Monitor{
		analyzer: analyzer,
		onFrame:  cfg.onFrame,
		logger:   cfg.logger,
	}
	m.SetSampleRate(sampleRate)

	bins := analyzer.Bins()
	for i, src := range []Source{input, output} {
		m.tracks[i] = track{
			source:    src,
			fresh:     make([]float64, bins),
			hold:      NewPeakHold(bins, cfg.decay),
			published: make([]float64, bins),
		}
	}

	return m, nil
}

// Bins returns the number of magnitude bins per track.
func (m *Monitor) Bins() int {
	return m.analyzer.Bins()
}

// FFTSize returns the analysis frame length.
func (m *Monitor) FFTSize() int {
	return m.analyzer.Size()
}

// SampleRate returns the rate used for bin-to-frequency mapping.
func (m *Monitor) SampleRate() float64 {
	return float64FromBits(m.sampleRate.Load())
}

// SetSampleRate updates the rate used for bin-to-frequency mapping.
func (m *Monitor) SetSampleRate(sr float64) {
	m.sampleRate.Store(float64Bits(sr))
}

// BinFrequency returns the centre frequency of bin in Hz.
func (m *Monitor) BinFrequency(bin int) float64 {
	return BinFrequency(bin, m.SampleRate(), m.FFTSize())
}

// State returns the current analysis state.
func (m *Monitor) State() State {
	return State(m.state.Load())
}

// Frames returns the number of frames published so far.
func (m *Monitor) Frames() uint64 {
	return m.frames.Load()
}

// Tick runs one analysis pass over both tracks and publishes the held
// magnitudes. It returns ErrBusy if another pass is in progress.
func (m *Monitor) Tick() error {
	if !m.state.CompareAndSwap(int32(StateIdle), int32(StateComputing)) {
		return ErrBusy
	}
	defer m.state.Store(int32(StateIdle))

	for i := range m.tracks {
		t := &m.tracks[i]
		if err := m.analyzer.Analyze(t.fresh, t.source); err != nil {
			return err
		}
		t.hold.Update(t.fresh)
	}

	m.mu.Lock()
	for i := range m.tracks {
		copy(m.tracks[i].published, m.tracks[i].hold.Values())
	}
	m.mu.Unlock()

	m.frames.Add(1)
	if m.onFrame != nil {
		m.onFrame()
	}

	return nil
}

// Run ticks every interval until ctx is cancelled and returns ctx.Err().
// Failed passes are logged and skipped.
func (m *Monitor) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("spectrum: monitor interval must be > 0: %s", interval)
	}

	m.logger.Debug().
		Int("fft_size", m.FFTSize()).
		Dur("interval", interval).
		Msg("spectrum monitor started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Debug().Uint64("frames", m.Frames()).Msg("spectrum monitor stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := m.Tick(); err != nil {
				m.logger.Warn().Err(err).Msg("spectrum tick skipped")
			}
		}
	}
}

// Input copies the held input magnitudes into dst and returns the count.
func (m *Monitor) Input(dst []float64) int {
	return m.read(0, dst)
}

// Output copies the held output magnitudes into dst and returns the count.
func (m *Monitor) Output(dst []float64) int {
	return m.read(1, dst)
}

// Reset zeroes both envelopes and the published frames. It waits for a
// pass in progress to finish, so it is safe to call while Run is active.
// It must not be called from the OnFrame callback.
func (m *Monitor) Reset() {
	for !m.state.CompareAndSwap(int32(StateIdle), int32(StateComputing)) {
		runtime.Gosched()
	}
	defer m.state.Store(int32(StateIdle))

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tracks {
		m.tracks[i].hold.Reset()
		for j := range m.tracks[i].published {
			m.tracks[i].published[j] = 0
		}
	}
}

func (m *Monitor) read(idx int, dst []float64) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return copy(dst, m.tracks[idx].published)
}
