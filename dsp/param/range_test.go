package param

import (
	"math"
	"testing"
)

func TestRangeClamp(t *testing.T) {
	r := Range{Min: 0, Max: 1, Step: 0.01}
	tests := []struct {
		in, want float64
	}{
		{in: -1, want: 0},
		{in: 2, want: 1},
		{in: 0.504, want: 0.5},
		{in: 0.706, want: 0.71},
		{in: math.NaN(), want: 0},
	}
	for _, tt := range tests {
		if got := r.Clamp(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRangeSkewRoundTrip(t *testing.T) {
	r := Range{Min: 20, Max: 20000, Skew: 0.3}
	for _, v := range []float64{20, 100, 1000, 5000, 20000} {
		n := r.Normalize(v)
		if n < 0 || n > 1 {
			t.Fatalf("Normalize(%v) = %v out of [0,1]", v, n)
		}
		if got := r.Denormalize(n); math.Abs(got-v) > 1e-9*v {
			t.Errorf("round trip %v -> %v -> %v", v, n, got)
		}
	}
	// Skew 0.3 puts 1 kHz well past the linear position.
	if n := r.Normalize(1000); n < 0.3 {
		t.Fatalf("Normalize(1000) = %v, want skewed above 0.3", n)
	}
}

func TestRangeLinear(t *testing.T) {
	r := Linear(-10, 10)
	if got := r.Normalize(0); got != 0.5 {
		t.Fatalf("Normalize(0) = %v", got)
	}
	if got := r.Denormalize(0.25); got != -5 {
		t.Fatalf("Denormalize(0.25) = %v", got)
	}
	if got := (Range{Min: 1, Max: 1}).Normalize(1); got != 0 {
		t.Fatalf("degenerate range Normalize = %v", got)
	}
}
