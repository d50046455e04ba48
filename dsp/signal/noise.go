package signal

import "math/rand"

// Noise is a seedable uniform white-noise source in [-1, 1].
//
// Each instance owns its generator so concurrent pipelines never share
// random state.
type Noise struct {
	seed int64
	rng  *rand.Rand
}

// NewNoise returns a noise source seeded with seed.
func NewNoise(seed int64) *Noise {
	return &Noise{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Next returns the next sample.
func (n *Noise) Next() float64 {
	return n.rng.Float64()*2 - 1
}

// Seed returns the seed this source restarts from on Reset.
func (n *Noise) Seed() int64 { return n.seed }

// Reset restarts the sequence from the original seed without allocating.
func (n *Noise) Reset() {
	n.rng.Seed(n.seed)
}
