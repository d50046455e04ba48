// Package biquad provides the second-order IIR runtime used by the output
// tone filter.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Coefficients can be swapped
// with [Section.SetCoefficients] between blocks while the delay state is kept,
// which is how block-rate parameter updates are applied.
//
// Coefficient design lives in dsp/filter/design.
package biquad
