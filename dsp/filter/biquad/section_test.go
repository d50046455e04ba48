package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func smoothing() Coefficients {
	return Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	s := NewSection(c)
	if s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}
	if st := s.State(); st != [2]float64{0, 0} {
		t.Fatalf("initial state not zero: %v", st)
	}
}

func TestProcessSample_Identity(t *testing.T) {
	s := NewSection(Identity())
	for i, x := range []float64{1, 0, -1, 0.5, 0.25} {
		if y := s.ProcessSample(x); y != x {
			t.Errorf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestProcessSample_ImpulseTrace(t *testing.T) {
	// n=0: y=0.25, d0=0.55, d1=0.24
	// n=1: y=0.55, d0=0.35, d1=-0.022
	// n=2: y=0.35, d0=0.048, d1=-0.014
	s := NewSection(smoothing())
	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Errorf("sample %d: got %.15f, want %.15f", i, y, w)
		}
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8, -0.1}

	s1 := NewSection(smoothing())
	ref := make([]float64, len(input))
	for i, x := range input {
		ref[i] = s1.ProcessSample(x)
	}

	s2 := NewSection(smoothing())
	block := append([]float64(nil), input...)
	s2.ProcessBlock(block)

	for i := range block {
		if !almostEqual(block[i], ref[i], eps) {
			t.Errorf("sample %d: ProcessBlock=%.15f, ProcessSample=%.15f", i, block[i], ref[i])
		}
	}
	if s1.State() != s2.State() {
		t.Fatalf("state mismatch: %v vs %v", s1.State(), s2.State())
	}
}

func TestSetCoefficientsKeepsState(t *testing.T) {
	s := NewSection(smoothing())
	s.ProcessSample(1)
	before := s.State()

	s.SetCoefficients(Identity())
	if s.State() != before {
		t.Fatalf("state changed on coefficient swap: %v -> %v", before, s.State())
	}
	// Identity has B0=1 and the old d0 still feeds the first output.
	if y := s.ProcessSample(0); !almostEqual(y, before[0], eps) {
		t.Fatalf("first output after swap = %v, want %v", y, before[0])
	}
}

func TestFlushDenormals(t *testing.T) {
	s := NewSection(Identity())
	s.SetState([2]float64{1e-35, 0.5})
	s.FlushDenormals()
	if st := s.State(); st != [2]float64{0, 0.5} {
		t.Fatalf("state after flush = %v, want [0 0.5]", st)
	}
}

func TestReset(t *testing.T) {
	s := NewSection(smoothing())
	s.ProcessSample(1)
	s.ProcessSample(0.5)
	if s.State() == [2]float64{0, 0} {
		t.Fatal("state should be non-zero after processing")
	}
	s.Reset()
	if s.State() != [2]float64{0, 0} {
		t.Fatalf("state after reset = %v", s.State())
	}
}

func TestStable(t *testing.T) {
	tests := []struct {
		name string
		c    Coefficients
		want bool
	}{
		{name: "identity", c: Identity(), want: true},
		{name: "smoothing", c: smoothing(), want: true},
		{name: "pole on circle", c: Coefficients{B0: 1, A2: 1}, want: false},
		{name: "real pole outside", c: Coefficients{B0: 1, A1: -2.5, A2: 0.5}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Stable(); got != tt.want {
				t.Fatalf("Stable() = %v, want %v", got, tt.want)
			}
		})
	}
}
