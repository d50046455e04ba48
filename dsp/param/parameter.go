package param

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
)

// Parameter is a named value with a range and an atomically stored current
// value. Choice parameters carry their labels in Choices and store the
// selected index.
type Parameter struct {
	ID      string
	Name    string
	Unit    string
	Range   Range
	Default float64
	Choices []string

	value atomic.Uint64
}

// New returns a continuous parameter set to def.
func New(id, name string, r Range, def float64) *Parameter {
	p := &Parameter{ID: id, Name: name, Range: r}
	p.Default = r.Clamp(def)
	p.Reset()

	return p
}

// NewChoice returns a discrete parameter over choices, set to index def.
func NewChoice(id, name string, choices []string, def int) *Parameter {
	r := Range{Min: 0, Max: float64(max(len(choices)-1, 0)), Step: 1, Skew: 1}
	p := &Parameter{ID: id, Name: name, Range: r, Choices: choices}
	p.Default = r.Clamp(float64(def))
	p.Reset()

	return p
}

// WithUnit sets the display unit and returns p.
func (p *Parameter) WithUnit(unit string) *Parameter {
	p.Unit = unit
	return p
}

// Value returns the current plain value. Safe for concurrent use.
func (p *Parameter) Value() float64 {
	return math.Float64frombits(p.value.Load())
}

// Index returns the current value rounded to an integer, for choice
// parameters.
func (p *Parameter) Index() int {
	return int(math.Round(p.Value()))
}

// Set stores v after clamping to the range.
func (p *Parameter) Set(v float64) {
	p.value.Store(math.Float64bits(p.Range.Clamp(v)))
}

// Normalized returns the current value in [0, 1].
func (p *Parameter) Normalized() float64 {
	return p.Range.Normalize(p.Value())
}

// SetNormalized stores the plain value for n in [0, 1].
func (p *Parameter) SetNormalized(n float64) {
	p.Set(p.Range.Denormalize(n))
}

// Reset restores the default value.
func (p *Parameter) Reset() {
	p.Set(p.Default)
}

// Format renders the current value for display.
func (p *Parameter) Format() string {
	v := p.Value()
	if len(p.Choices) > 0 {
		return p.Choices[p.Index()]
	}

	var s string
	switch {
	case p.Range.Step >= 1:
		s = strconv.FormatFloat(v, 'f', 0, 64)
	default:
		s = strconv.FormatFloat(v, 'f', 2, 64)
	}
	if p.Unit != "" {
		s += " " + p.Unit
	}

	return s
}

// Parse converts text to a plain value. Choice parameters accept either a
// label (case-insensitive) or an index.
func (p *Parameter) Parse(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if len(p.Choices) > 0 {
		for i, c := range p.Choices {
			if strings.EqualFold(c, text) {
				return float64(i), nil
			}
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(text, " "+p.Unit), 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %s: parse %q: %w", p.ID, text, err)
	}

	return p.Range.Clamp(v), nil
}
