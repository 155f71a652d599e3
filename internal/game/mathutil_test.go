package game

import "testing"

func TestRandDeterministic(t *testing.T) {
	a := NewRand(99)
	b := NewRand(99)
	for i := 0; i < 16; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestRandRangeF(t *testing.T) {
	r := NewRand(5)
	for i := 0; i < 1000; i++ {
		v := r.RangeF(-5, 5)
		if v < -5 || v >= 5 {
			t.Fatalf("RangeF out of bounds: %v", v)
		}
	}
	if got := r.RangeF(3, 3); got != 3 {
		t.Errorf("empty range = %v, want 3", got)
	}
}

func TestRandIntn(t *testing.T) {
	r := NewRand(11)
	for i := 0; i < 1000; i++ {
		v := r.Intn(5)
		if v < 0 || v >= 5 {
			t.Fatalf("Intn out of bounds: %v", v)
		}
	}
	if got := r.Intn(0); got != 0 {
		t.Errorf("Intn(0) = %v, want 0", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
	if got := clampF(1.5, 0, 1); got != 1 {
		t.Errorf("clampF = %v, want 1", got)
	}
}
