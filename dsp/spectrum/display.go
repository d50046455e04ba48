package spectrum

import (
	"math"

	"github.com/cwbudde/erode/dsp/core"
)

// Display axis limits.
const (
	MinFrequency = 20.0
	MaxFrequency = 20000.0
	DefaultMinDB = -120.0
	DefaultMaxDB = -20.0
)

var decades = math.Log10(MaxFrequency / MinFrequency)

// BinFrequency returns bin*sampleRate/fftSize.
func BinFrequency(bin int, sampleRate float64, fftSize int) float64 {
	if fftSize <= 0 {
		return 0
	}

	return float64(bin) * sampleRate / float64(fftSize)
}

// FrequencyToX maps hz onto the normalized log axis, 0 at 20 Hz and 1 at
// 20 kHz, clamped.
func FrequencyToX(hz float64) float64 {
	if hz <= MinFrequency || math.IsNaN(hz) {
		return 0
	}

	return core.Clamp(math.Log10(hz/MinFrequency)/decades, 0, 1)
}

// XToFrequency is the inverse of FrequencyToX.
func XToFrequency(x float64) float64 {
	return MinFrequency * math.Pow(MaxFrequency/MinFrequency, core.ClampFinite(x, 0, 1, 0))
}

// InAudibleBand reports whether hz lies in [20 Hz, 20 kHz].
func InAudibleBand(hz float64) bool {
	return hz >= MinFrequency && hz <= MaxFrequency
}

// LevelNorm maps a raw FFT magnitude to [0, 1] on a decibel axis. The
// magnitude is divided by fftSize before conversion, so a full-scale
// bin-centred sine reads about -6 dB with the default normalized window.
func LevelNorm(mag float64, fftSize int, minDB, maxDB float64) float64 {
	if fftSize <= 0 || maxDB <= minDB {
		return 0
	}

	db := core.GainToDB(mag/float64(fftSize), minDB)

	return core.Clamp((db-minDB)/(maxDB-minDB), 0, 1)
}

// PeakBin returns the index of the largest magnitude among bins whose
// centre lies in the audible band, or -1 if none do.
func PeakBin(mags []float64, sampleRate float64, fftSize int) int {
	best := -1
	for i, m := range mags {
		if !InAudibleBand(BinFrequency(i, sampleRate, fftSize)) {
			continue
		}
		if best < 0 || m > mags[best] {
			best = i
		}
	}

	return best
}

// BandRegion returns the normalized [left, right] extent of the noise band
// drawn around freq. width in [0, 1] spans 1% to 50% of the axis. The
// region is not clamped, so it may extend past either edge.
func BandRegion(freq, width float64) (left, right float64) {
	center := FrequencyToX(freq)
	span := 0.01 + core.Clamp(width, 0, 1)*0.49

	return center - span/2, center + span/2
}

func float64Bits(f float64) uint64 {
	return math.Float64bits(f)
}

func float64FromBits(b uint64) float64 {
	return math.Float64frombits(b)
}
