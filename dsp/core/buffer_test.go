package core

import "testing"

func TestCopyInto(t *testing.T) {
	dst := make([]float64, 2)

	n := CopyInto(dst, []float64{1, 2, 3})
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}

	if dst[0] != 1 || dst[1] != 2 {
		t.Fatalf("unexpected dst: %#v", dst)
	}
}

func TestZeroChannels(t *testing.T) {
	bufs := [][]float64{{1, 2}, {3}, {}}
	ZeroChannels(bufs)

	for ch, b := range bufs {
		for i, v := range b {
			if v != 0 {
				t.Fatalf("bufs[%d][%d] = %v, want 0", ch, i, v)
			}
		}
	}
}
