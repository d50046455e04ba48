package buffer

// Planar is a channel-major block of samples that is reused across calls.
type Planar struct {
	data     []float64
	channels [][]float64
	frames   int
}

// NewPlanar returns a zeroed block of the given shape.
func NewPlanar(channels, frames int) *Planar {
	p := &Planar{}
	p.Resize(channels, frames)

	return p
}

// Resize sets the shape, reusing the backing array when it is large
// enough. Contents are zeroed.
func (p *Planar) Resize(channels, frames int) {
	channels = max(channels, 0)
	frames = max(frames, 0)

	n := channels * frames
	if n > cap(p.data) {
		p.data = make([]float64, n)
	} else {
		p.data = p.data[:n]
		for i := range p.data {
			p.data[i] = 0
		}
	}

	if channels > cap(p.channels) {
		p.channels = make([][]float64, channels)
	}
	p.channels = p.channels[:channels]
	for ch := range p.channels {
		p.channels[ch] = p.data[ch*frames : (ch+1)*frames : (ch+1)*frames]
	}

	p.frames = frames
}

// Channels returns the per-channel slices. They alias the block.
func (p *Planar) Channels() [][]float64 {
	return p.channels
}

// Frames returns the per-channel length.
func (p *Planar) Frames() int {
	return p.frames
}

// Deinterleave splits frame-major samples into the block. The number of
// frames read is min(len(src)/channels, Frames()) and is returned.
func (p *Planar) Deinterleave(src []float64) int {
	nc := len(p.channels)
	if nc == 0 {
		return 0
	}

	frames := min(len(src)/nc, p.frames)
	for i := range frames {
		for ch := range nc {
			p.channels[ch][i] = src[i*nc+ch]
		}
	}

	return frames
}

// Interleave writes the first frames of the block into dst frame-major and
// returns the number of frames written.
func (p *Planar) Interleave(dst []float64, frames int) int {
	nc := len(p.channels)
	if nc == 0 {
		return 0
	}

	frames = min(frames, p.frames, len(dst)/nc)
	for i := range frames {
		for ch := range nc {
			dst[i*nc+ch] = p.channels[ch][i]
		}
	}

	return frames
}
