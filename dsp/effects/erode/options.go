package erode

import (
	"fmt"
	"math"
	"strings"
)

const (
	defaultMaxDelaySeconds  = 0.1
	defaultBaseDelaySeconds = 0.05
	defaultDepthSamples     = 20.0
	defaultToneQ            = 0.707
	defaultToneOrder        = 2
	defaultCaptureSize      = 2048
	defaultSeed             = 1
)

// Profile selects the processing variant.
type Profile int

const (
	// ProfileTone crossfades noise and sine modulation and applies the mix
	// and cut controls. Reads are always interpolated.
	ProfileTone Profile = iota
	// ProfileClassic uses a pure sine LFO, a fixed 50% mix, no tone filter
	// and the mode control.
	ProfileClassic
)

var profileNames = []string{"tone", "classic"}

// String returns the profile name.
func (p Profile) String() string {
	if p >= 0 && int(p) < len(profileNames) {
		return profileNames[p]
	}

	return fmt.Sprintf("Profile(%d)", int(p))
}

// ParseProfile resolves a profile name.
func ParseProfile(s string) (Profile, error) {
	for i, name := range profileNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Profile(i), nil
		}
	}

	return ProfileTone, fmt.Errorf("erode: unknown profile %q", s)
}

// Option mutates processor construction parameters.
type Option func(*config) error

type config struct {
	profile          Profile
	seed             int64
	maxDelaySeconds  float64
	baseDelaySeconds float64
	depthSamples     float64
	toneQ            float64
	toneOrder        int
	captureSize      int
	params           ParamSource
}

func defaultConfig() config {
	return config{
		profile:          ProfileTone,
		seed:             defaultSeed,
		maxDelaySeconds:  defaultMaxDelaySeconds,
		baseDelaySeconds: defaultBaseDelaySeconds,
		depthSamples:     defaultDepthSamples,
		toneQ:            defaultToneQ,
		toneOrder:        defaultToneOrder,
		captureSize:      defaultCaptureSize,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// WithProfile selects the processing variant.
func WithProfile(p Profile) Option {
	return func(cfg *config) error {
		if p != ProfileTone && p != ProfileClassic {
			return fmt.Errorf("erode profile unknown: %d", int(p))
		}

		cfg.profile = p

		return nil
	}
}

// WithSeed seeds the noise generator.
func WithSeed(seed int64) Option {
	return func(cfg *config) error {
		cfg.seed = seed
		return nil
	}
}

// WithMaxDelaySeconds sets the delay buffer length in seconds.
func WithMaxDelaySeconds(seconds float64) Option {
	return func(cfg *config) error {
		if seconds <= 0 || !finite(seconds) {
			return fmt.Errorf("erode max delay must be > 0 and finite: %f", seconds)
		}

		cfg.maxDelaySeconds = seconds

		return nil
	}
}

// WithBaseDelaySeconds sets the unmodulated delay in seconds.
func WithBaseDelaySeconds(seconds float64) Option {
	return func(cfg *config) error {
		if seconds <= 0 || !finite(seconds) {
			return fmt.Errorf("erode base delay must be > 0 and finite: %f", seconds)
		}

		cfg.baseDelaySeconds = seconds

		return nil
	}
}

// WithDepthSamples sets the modulation excursion at amount 1, in samples.
func WithDepthSamples(samples float64) Option {
	return func(cfg *config) error {
		if samples < 0 || !finite(samples) {
			return fmt.Errorf("erode depth must be >= 0 and finite: %f", samples)
		}

		cfg.depthSamples = samples

		return nil
	}
}

// WithToneQ sets the quality factor of the second-order tone filter.
func WithToneQ(q float64) Option {
	return func(cfg *config) error {
		if q <= 0 || !finite(q) {
			return fmt.Errorf("erode tone Q must be > 0 and finite: %f", q)
		}

		cfg.toneQ = q

		return nil
	}
}

// WithToneOrder selects a one-pole (1) or RBJ two-pole (2) tone filter.
func WithToneOrder(order int) Option {
	return func(cfg *config) error {
		if order != 1 && order != 2 {
			return fmt.Errorf("erode tone order must be 1 or 2: %d", order)
		}

		cfg.toneOrder = order

		return nil
	}
}

// WithCaptureSize sets the length of the input and output capture rings.
func WithCaptureSize(n int) Option {
	return func(cfg *config) error {
		if n < 2 || n&(n-1) != 0 {
			return fmt.Errorf("erode capture size must be a power of two >= 2: %d", n)
		}

		cfg.captureSize = n

		return nil
	}
}

// WithParamSource sets where block parameters come from. The default is a
// fresh [Parameters].
func WithParamSource(src ParamSource) Option {
	return func(cfg *config) error {
		if src == nil {
			return fmt.Errorf("erode param source must not be nil")
		}

		cfg.params = src

		return nil
	}
}
