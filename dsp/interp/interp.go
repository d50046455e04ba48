package interp

// Mode selects how a fractional read position is resolved.
type Mode int

const (
	// Linear blends the two neighbouring taps.
	Linear Mode = iota
	// Truncate reads the lower integer tap only.
	Truncate
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Truncate:
		return "truncate"
	default:
		return "unknown"
	}
}

// Linear2 interpolates between x0 (t=0) and x1 (t=1).
//
// The weighted form x0*(1-t) + x1*t is used instead of x0 + t*(x1-x0) so
// that t=0 returns x0 bit-exactly.
func Linear2(t, x0, x1 float64) float64 {
	return x0*(1-t) + x1*t
}

// Weight returns the effective fractional weight for mode.
func (m Mode) Weight(frac float64) float64 {
	if m == Truncate {
		return 0
	}
	return frac
}
