package erode

import (
	"fmt"
	"strings"

	"github.com/cwbudde/erode/dsp/core"
	"github.com/cwbudde/erode/dsp/interp"
	"github.com/cwbudde/erode/dsp/param"
)

// Parameter IDs.
const (
	ParamFreq   = "freq"
	ParamWidth  = "width"
	ParamAmount = "amount"
	ParamMix    = "mix"
	ParamCut    = "cut"
	ParamMode   = "mode"
)

// Parameter limits.
const (
	MinFreq = 20.0
	MaxFreq = 20000.0
	MinCut  = 20.0
	MaxCut  = 20000.0
)

// Mode selects how the classic profile reads between delay taps.
type Mode int

const (
	// ModeRough reads the integer tap only.
	ModeRough Mode = iota
	// ModeSmooth interpolates linearly between taps.
	ModeSmooth
)

var modeNames = []string{"rough", "smooth"}

// String returns the mode label.
func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode resolves a mode label.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Mode(i), nil
		}
	}

	return ModeRough, fmt.Errorf("erode: unknown mode %q", s)
}

// Interp returns the delay read interpolation for m.
func (m Mode) Interp() interp.Mode {
	if m == ModeSmooth {
		return interp.Linear
	}

	return interp.Truncate
}

// Params is a snapshot of every control, taken once per block.
type Params struct {
	Freq   float64
	Width  float64
	Amount float64
	Mix    float64
	Cut    float64
	Mode   Mode
}

// DefaultParams returns the default control values.
func DefaultParams() Params {
	return Params{
		Freq:   1000,
		Width:  0.5,
		Amount: 0.5,
		Mix:    0.5,
		Cut:    MinCut,
		Mode:   ModeRough,
	}
}

// Clamp returns p with every field limited to its range. NaN fields take
// their defaults.
func (p Params) Clamp() Params {
	d := DefaultParams()
	p.Freq = core.ClampFinite(p.Freq, MinFreq, MaxFreq, d.Freq)
	p.Width = core.ClampFinite(p.Width, 0, 1, d.Width)
	p.Amount = core.ClampFinite(p.Amount, 0, 1, d.Amount)
	p.Mix = core.ClampFinite(p.Mix, 0, 1, d.Mix)
	p.Cut = core.ClampFinite(p.Cut, MinCut, MaxCut, d.Cut)
	if p.Mode != ModeSmooth {
		p.Mode = ModeRough
	}

	return p
}

// Snapshot returns the clamped value, so a fixed Params can serve as a
// ParamSource.
func (p Params) Snapshot() Params {
	return p.Clamp()
}

// ParamSource supplies the control values for a block. Snapshot is called
// on the audio goroutine and must not block.
type ParamSource interface {
	Snapshot() Params
}

// Parameters is the automatable parameter layout. Values may be set from
// any goroutine.
type Parameters struct {
	set    *param.Set
	freq   *param.Parameter
	width  *param.Parameter
	amount *param.Parameter
	mix    *param.Parameter
	cut    *param.Parameter
	mode   *param.Parameter
}

// NewParameters returns the layout at its defaults.
func NewParameters() *Parameters {
	d := DefaultParams()
	unit := param.Range{Min: 0, Max: 1, Step: 0.01, Skew: 1}

	p := &Parameters{
		freq:   param.New(ParamFreq, "Freq", param.Range{Min: MinFreq, Max: MaxFreq, Step: 1, Skew: 0.3}, d.Freq).WithUnit("Hz"),
		width:  param.New(ParamWidth, "Width", unit, d.Width),
		amount: param.New(ParamAmount, "Amount", unit, d.Amount),
		mix:    param.New(ParamMix, "Mix", unit, d.Mix),
		cut:    param.New(ParamCut, "Cut", param.Range{Min: MinCut, Max: MaxCut, Step: 1, Skew: 0.3}, d.Cut).WithUnit("Hz"),
		mode:   param.NewChoice(ParamMode, "Mode", modeNames, int(d.Mode)),
	}
	p.set = param.NewSet(p.freq, p.width, p.amount, p.mix, p.cut, p.mode)

	return p
}

// Set returns the underlying registry.
func (p *Parameters) Set() *param.Set {
	return p.set
}

// Snapshot reads every parameter atomically, one at a time.
func (p *Parameters) Snapshot() Params {
	return Params{
		Freq:   p.freq.Value(),
		Width:  p.width.Value(),
		Amount: p.amount.Value(),
		Mix:    p.mix.Value(),
		Cut:    p.cut.Value(),
		Mode:   Mode(p.mode.Index()),
	}.Clamp()
}

// Apply stores every field of v.
func (p *Parameters) Apply(v Params) {
	p.freq.Set(v.Freq)
	p.width.Set(v.Width)
	p.amount.Set(v.Amount)
	p.mix.Set(v.Mix)
	p.cut.Set(v.Cut)
	p.mode.Set(float64(v.Mode))
}
