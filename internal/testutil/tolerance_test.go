package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil || d != 1 {
		t.Fatalf("MaxAbsDiff = %v, %v", d, err)
	}
	if _, err := MaxAbsDiff([]float64{1}, nil); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestRMS(t *testing.T) {
	if r := RMS(Sine(100, 48000, 1, 48000)); math.Abs(r-1/math.Sqrt2) > 1e-6 {
		t.Fatalf("sine RMS = %v", r)
	}
	if RMS(nil) != 0 {
		t.Fatal("empty RMS should be 0")
	}
}
