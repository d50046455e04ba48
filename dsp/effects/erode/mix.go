package erode

// Mix blends wet and dry linearly. mix 0 returns dry and mix 1 returns wet
// exactly.
func Mix(dry, wet, mix float64) float64 {
	return wet*mix + dry*(1-mix)
}
