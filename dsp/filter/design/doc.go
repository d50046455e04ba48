// Package design provides the digital IIR coefficient designers used by the
// output tone filter.
//
// [Highpass] is the RBJ cookbook second-order highpass and
// [HighpassFirstOrder] is the bilinear-transformed one-pole highpass with a
// prewarped corner. Both return [biquad.Coefficients] for dsp/filter/biquad.
// Inputs outside the valid band (non-positive, at or above Nyquist, non-finite)
// yield passthrough coefficients.
package design
