// Package erode implements a modulated fractional-delay effect.
//
// Each sample the delay read position is offset from a fixed base delay by
// a modulation signal scaled by the amount parameter. The modulation
// crossfades between a sine LFO and white noise shaped by a resonant
// band-pass whose centre tracks the LFO frequency and whose Q and level
// follow the width parameter. The delayed signal passes a highpass tone
// filter and is blended with the dry input.
//
// Two profiles are available. [ProfileTone] is the full pipeline above.
// [ProfileClassic] reproduces the original plugin: a pure sine LFO, a fixed
// 50% mix, no tone filter and a rough/smooth mode selecting integer or
// linearly interpolated reads.
//
// A [Processor] follows a prepare/process/reset lifecycle. ProcessBlock
// never allocates, locks or returns an error, and it feeds two lock-free
// capture rings (mono dry input and mono wet signal) that a
// spectrum.Monitor can read from another goroutine.
package erode
