package signal

import (
	"math"
	"testing"
)

func TestRamp(t *testing.T) {
	g := NewGenerator()

	x, err := g.Ramp(3, 4)
	if err != nil {
		t.Fatalf("Ramp err = %v", err)
	}

	want := []float64{0, 1, 2, 3}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-12 {
			t.Errorf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}

	if _, err := g.Ramp(1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
}

func TestSquare(t *testing.T) {
	g := NewGenerator()

	x, err := g.Square(1, 4, 8)
	if err != nil {
		t.Fatalf("Square err = %v", err)
	}

	want := []float64{1, 1, -1, -1, 1, 1, -1, -1}
	for i := range want {
		if x[i] != want[i] {
			t.Errorf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}

	if _, err := g.Square(1, 1, 8); err == nil {
		t.Fatal("expected error for period < 2")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	a, err := NewGenerator(WithSeed(42)).WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise err = %v", err)
	}

	b, err := NewGenerator(WithSeed(42)).WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise err = %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded noise differs at %d: %v vs %v", i, a[i], b[i])
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("noise sample %d out of range: %v", i, a[i])
		}
	}
}

func TestNormalize(t *testing.T) {
	x, err := Normalize([]float64{-0.5, 0.25, 1}, 0.8)
	if err != nil {
		t.Fatalf("Normalize err = %v", err)
	}

	want := []float64{-0.4, 0.2, 0.8}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-12 {
			t.Errorf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestNormalizeEdgeCases(t *testing.T) {
	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}

	if _, err := Normalize([]float64{1}, -1); err == nil {
		t.Fatal("expected error for negative target peak")
	}

	x, err := Normalize([]float64{0, 0}, 1)
	if err != nil {
		t.Fatalf("Normalize err = %v", err)
	}
	if x[0] != 0 || x[1] != 0 {
		t.Fatalf("all-zero input should stay zero: %v", x)
	}
}
