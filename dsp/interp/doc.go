// Package interp provides interpolation primitives used by delay-based DSP blocks.
//
// Available methods:
//
//   - [Truncate]: integer tap, the fractional part is discarded
//   - [Linear]:   2-point linear interpolation
//
// [Mode] selects between them at read time; see [delay.Line.Read].
package interp
