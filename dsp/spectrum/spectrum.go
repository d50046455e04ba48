package spectrum

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
// All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// InterpolateLinear performs piecewise-linear interpolation at queryX into
// dst. x must be strictly increasing and have the same length as y. Queries
// outside the x range hold the end values.
func InterpolateLinear(dst, x, y, queryX []float64) error {
	if len(x) == 0 || len(y) == 0 {
		return fmt.Errorf("interpolate requires non-empty x and y")
	}
	if len(x) != len(y) {
		return fmt.Errorf("interpolate x/y length mismatch: %d != %d", len(x), len(y))
	}
	if len(dst) < len(queryX) {
		return fmt.Errorf("interpolate dst too short: %d < %d", len(dst), len(queryX))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return fmt.Errorf("interpolate x must be strictly increasing at index %d", i)
		}
	}

	for i, q := range queryX {
		if q <= x[0] {
			dst[i] = y[0]
			continue
		}
		if q >= x[len(x)-1] {
			dst[i] = y[len(y)-1]
			continue
		}

		j := sort.SearchFloat64s(x, q)
		x0, x1 := x[j-1], x[j]
		t := (q - x0) / (x1 - x0)
		dst[i] = y[j-1] + t*(y[j]-y[j-1])
	}

	return nil
}
