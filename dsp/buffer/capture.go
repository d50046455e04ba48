package buffer

import (
	"math"
	"sync/atomic"
)

// Capture is a circular buffer of the most recent samples. Push is intended
// for a single producer; Snapshot may run concurrently from other
// goroutines. Each slot is an atomic word, so a snapshot taken while the
// producer writes can mix samples from adjacent pushes but never observes a
// torn value.
type Capture struct {
	slots  []atomic.Uint64
	cursor atomic.Uint64
}

// NewCapture returns a zero-filled capture of the given size. Sizes below
// one are raised to one.
func NewCapture(size int) *Capture {
	if size < 1 {
		size = 1
	}

	return &Capture{slots: make([]atomic.Uint64, size)}
}

// Len returns the ring size.
func (c *Capture) Len() int {
	return len(c.slots)
}

// Written returns the total number of samples pushed since the last Reset.
func (c *Capture) Written() uint64 {
	return c.cursor.Load()
}

// Push appends one sample, overwriting the oldest once the ring is full.
func (c *Capture) Push(x float64) {
	n := c.cursor.Load()
	c.slots[n%uint64(len(c.slots))].Store(math.Float64bits(x))
	c.cursor.Store(n + 1)
}

// Snapshot copies the ring into dst ordered oldest to newest and returns the
// number of samples copied, which is min(len(dst), Len()). When dst is
// shorter than the ring the newest samples are kept.
func (c *Capture) Snapshot(dst []float64) int {
	size := uint64(len(c.slots))
	n := min(uint64(len(dst)), size)
	end := c.cursor.Load()

	start := end + size - n
	for i := range n {
		dst[i] = math.Float64frombits(c.slots[(start+i)%size].Load())
	}

	return int(n)
}

// Reset zeroes every slot and rewinds the cursor. It must not race with
// Push.
func (c *Capture) Reset() {
	for i := range c.slots {
		c.slots[i].Store(0)
	}
	c.cursor.Store(0)
}
