package core

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// ZeroChannels zeroes every channel of a planar buffer.
func ZeroChannels(bufs [][]float64) {
	for _, b := range bufs {
		Zero(b)
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}
