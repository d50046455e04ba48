package window

import (
	"math"
	"testing"
)

func TestGenerateAllTypes(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman} {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}
			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) || v < -1e-12 || v > 1+1e-12 {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}
			// Symmetric form mirrors around the centre.
			for i := range 32 {
				if math.Abs(w[i]-w[63-i]) > 1e-12 {
					t.Fatalf("w[%d]=%v != w[%d]=%v", i, w[i], 63-i, w[63-i])
				}
			}
		})
	}
}

func TestEndpoints(t *testing.T) {
	tests := []struct {
		typ  Type
		edge float64
	}{
		{TypeRectangular, 1},
		{TypeHann, 0},
		{TypeHamming, 0.08},
		{TypeBlackman, 0},
	}
	for _, tt := range tests {
		w := Generate(tt.typ, 33)
		if math.Abs(w[0]-tt.edge) > 1e-12 {
			t.Errorf("%s: w[0]=%v, want %v", tt.typ, w[0], tt.edge)
		}
		if math.Abs(w[16]-1) > 1e-12 {
			t.Errorf("%s: centre=%v, want 1", tt.typ, w[16])
		}
	}
}

func TestGenerateEdgeLengths(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("length 0 should return nil, got %v", w)
	}
	if w := Generate(TypeHann, 1); len(w) != 1 || w[0] != 0 {
		t.Fatalf("length 1 = %v", w)
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman} {
		got, err := ParseType(" " + typ.String())
		if err != nil || got != typ {
			t.Fatalf("ParseType(%q) = %v, %v", typ.String(), got, err)
		}
	}
	if _, err := ParseType("kaiser"); err == nil {
		t.Fatal("expected error for unknown window")
	}
	if got := Type(99).String(); got != "Type(99)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestApplyCoefficientsInPlace(t *testing.T) {
	samples := []float64{2, 2, 2}
	if err := ApplyCoefficientsInPlace(samples, []float64{0, 0.5, 1}); err != nil {
		t.Fatal(err)
	}
	if samples[0] != 0 || samples[1] != 1 || samples[2] != 2 {
		t.Fatalf("samples = %v", samples)
	}
	if err := ApplyCoefficientsInPlace(samples, []float64{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestCoherentGain(t *testing.T) {
	if g := CoherentGain(Generate(TypeHann, 4096, WithPeriodic())); math.Abs(g-0.5) > 1e-9 {
		t.Fatalf("Hann coherent gain = %v, want 0.5", g)
	}
	if g := CoherentGain(nil); g != 0 {
		t.Fatalf("empty coherent gain = %v", g)
	}
}
