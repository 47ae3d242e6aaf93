package vmath

import (
	"math"
	"testing"
)

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("zero seed produced a stuck generator")
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
		n := r.IntN(6)
		if n < 0 || n >= 6 {
			t.Fatalf("IntN out of range: %d", n)
		}
	}
	if r.IntN(0) != 0 || r.IntN(-3) != 0 {
		t.Error("IntN should return 0 for non-positive n")
	}
}

func TestShufflePermutation(t *testing.T) {
	r := NewFastRand(99)
	s := []int{0, 1, 2, 3, 4, 5}
	Shuffle(r, s)

	seen := make(map[int]bool)
	for _, v := range s {
		seen[v] = true
	}
	if len(seen) != 6 {
		t.Errorf("shuffle lost elements: %v", s)
	}
}

func TestShuffleUniformity(t *testing.T) {
	// Each of the 6 values should land in position 0 roughly 1/6 of the time
	r := NewFastRand(1234)
	const trials = 60000
	var counts [6]int
	for i := 0; i < trials; i++ {
		s := []int{0, 1, 2, 3, 4, 5}
		Shuffle(r, s)
		counts[s[0]]++
	}
	for v, c := range counts {
		ratio := float64(c) / trials
		if math.Abs(ratio-1.0/6) > 0.02 {
			t.Errorf("value %d first with ratio %.3f", v, ratio)
		}
	}
}

func TestVec3FOps(t *testing.T) {
	a := Vec3F{1, 2, 3}
	b := Vec3F{4, 5, 6}

	if got := V3FAdd(a, b); got != (Vec3F{5, 7, 9}) {
		t.Errorf("add: %v", got)
	}
	if got := V3FSub(b, a); got != (Vec3F{3, 3, 3}) {
		t.Errorf("sub: %v", got)
	}
	if got := V3FAddScaled(a, Vec3F{1, 0, 0}, -0.5); got != (Vec3F{0.5, 2, 3}) {
		t.Errorf("add scaled: %v", got)
	}
	if got := V3FDot(a, b); got != 32 {
		t.Errorf("dot: %f", got)
	}
	if got := V3FCross(Vec3F{1, 0, 0}, Vec3F{0, 1, 0}); got != (Vec3F{0, 0, 1}) {
		t.Errorf("cross: %v", got)
	}
	if got := V3FMag(V3FNormalize(b)); math.Abs(got-1) > 1e-12 {
		t.Errorf("normalize magnitude: %f", got)
	}
	if got := V3FNormalize(Vec3F{}); got != (Vec3F{}) {
		t.Errorf("normalize zero: %v", got)
	}
	if got := V3FLerp(a, b, 0.5); got != (Vec3F{2.5, 3.5, 4.5}) {
		t.Errorf("lerp: %v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{2, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 1); got != tt.want {
			t.Errorf("Clamp(%f) = %f, want %f", tt.v, got, tt.want)
		}
	}
}
