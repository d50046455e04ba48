package erode

import (
	"github.com/cwbudde/erode/dsp/filter/biquad"
	"github.com/cwbudde/erode/dsp/filter/design"
)

const maxToneRatio = 0.49

// toneFilter is the per-channel highpass on the wet path. At MinCut it is
// bypassed so the wet signal passes bit-exact.
type toneFilter struct {
	order    int
	q        float64
	sections []*biquad.Section
	active   bool
}

func newToneFilter(channels, order int, q float64) *toneFilter {
	t := &toneFilter{order: order, q: q, sections: make([]*biquad.Section, channels)}
	for ch := range t.sections {
		t.sections[ch] = biquad.NewSection(biquad.Identity())
	}

	return t
}

// coefficients returns the highpass for cut, or false at the bypass cutoff.
func (t *toneFilter) coefficients(cut, sampleRate float64) (biquad.Coefficients, bool) {
	if cut <= MinCut {
		return biquad.Identity(), false
	}

	cut = min(cut, maxToneRatio*sampleRate)
	if t.order == 1 {
		return design.HighpassFirstOrder(cut, sampleRate), true
	}

	return design.Highpass(cut, t.q, sampleRate), true
}

// update recomputes coefficients for cut. Filter state carries over between
// blocks, and is cleared when leaving bypass.
func (t *toneFilter) update(cut, sampleRate float64) {
	c, ok := t.coefficients(cut, sampleRate)
	if !ok {
		t.active = false
		return
	}

	for _, s := range t.sections {
		if !t.active {
			s.Reset()
		}
		s.SetCoefficients(c)
	}
	t.active = true
}

func (t *toneFilter) process(ch int, x float64) float64 {
	if !t.active {
		return x
	}

	return t.sections[ch].ProcessSample(x)
}

func (t *toneFilter) flushDenormals() {
	for _, s := range t.sections {
		s.FlushDenormals()
	}
}

func (t *toneFilter) reset() {
	for _, s := range t.sections {
		s.Reset()
	}
	t.active = false
}
