package host

import (
	"encoding/binary"
	"math"
)

// bytesPerSample is the width of a 32-bit float device sample.
const bytesPerSample = 4

// DecodeF32 converts little-endian float32 samples in src to dst and
// returns the number of samples converted.
func DecodeF32(dst []float64, src []byte) int {
	n := min(len(dst), len(src)/bytesPerSample)
	for i := range n {
		bits := binary.LittleEndian.Uint32(src[i*bytesPerSample:])
		dst[i] = float64(math.Float32frombits(bits))
	}
	return n
}

// EncodeF32 converts src to little-endian float32 samples in dst and
// returns the number of samples converted.
func EncodeF32(dst []byte, src []float64) int {
	n := min(len(src), len(dst)/bytesPerSample)
	for i := range n {
		binary.LittleEndian.PutUint32(dst[i*bytesPerSample:], math.Float32bits(float32(src[i])))
	}
	return n
}
