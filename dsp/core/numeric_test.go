package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClampFiniteNaN(t *testing.T) {
	if got := ClampFinite(math.NaN(), 0, 1, 0.25); got != 0.25 {
		t.Fatalf("ClampFinite(NaN) = %v, want 0.25", got)
	}
	if got := ClampFinite(math.Inf(1), 0, 1, 0.25); got != 1 {
		t.Fatalf("ClampFinite(+Inf) = %v, want 1", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestFlushDenormals(t *testing.T) {
	if got := FlushDenormals(1e-35); got != 0 {
		t.Fatalf("FlushDenormals(1e-35) = %v, want 0", got)
	}
	if got := FlushDenormals(-1e-35); got != 0 {
		t.Fatalf("FlushDenormals(-1e-35) = %v, want 0", got)
	}
	if got := FlushDenormals(1e-6); got != 1e-6 {
		t.Fatalf("FlushDenormals(1e-6) = %v, want 1e-6", got)
	}
}

func TestSoftClipBounded(t *testing.T) {
	for _, x := range []float64{-1e6, -3, -1, 0, 0.5, 4, 1e9} {
		y := SoftClip(x)
		if y < -1 || y > 1 {
			t.Fatalf("SoftClip(%v) = %v outside [-1, 1]", x, y)
		}
	}
}

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-6)
	db := LinearToDB(linear)
	if !NearlyEqual(db, -6, 1e-10) {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestGainToDBFloor(t *testing.T) {
	if got := GainToDB(0, -120); got != -120 {
		t.Fatalf("GainToDB(0) = %v, want -120", got)
	}
	if got := GainToDB(1e-9, -120); got != -120 {
		t.Fatalf("GainToDB(1e-9) = %v, want floor -120", got)
	}
	if got := GainToDB(1, -120); got != 0 {
		t.Fatalf("GainToDB(1) = %v, want 0", got)
	}
}
