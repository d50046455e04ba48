// Package param provides automatable parameters that the audio thread can
// read without locks.
//
// A [Parameter] stores its plain value as atomic float bits, so any
// goroutine may Set while the processing path calls Value once per block.
// [Range] maps plain values to and from the normalized [0, 1] domain used
// by controllers, with an optional skew for log-like knobs and an optional
// step. A [Set] keeps parameters in registration order.
package param
