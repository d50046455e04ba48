// Package spectrum turns captured audio into display-ready magnitude
// spectra.
//
// An [Analyzer] windows the most recent frame of a [Source], runs a forward
// FFT and writes the magnitudes of the first N/2 bins. [PeakHold] keeps a
// per-bin envelope that rises instantly and decays geometrically, and
// [Monitor] runs both for an input and an output track on a timer,
// publishing copies that readers fetch without touching the analysis
// buffers.
//
// The display helpers map frequencies onto the 20 Hz to 20 kHz log axis and
// magnitudes onto a clamped decibel range.
package spectrum
