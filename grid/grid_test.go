package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Garyljackson/3d-pipes/vmath"
)

func TestInBounds(t *testing.T) {
	g := New(4)
	tests := []struct {
		cell Cell
		want bool
	}{
		{Cell{0, 0, 0}, true},
		{Cell{3, 3, 3}, true},
		{Cell{4, 0, 0}, false},
		{Cell{0, -1, 0}, false},
		{Cell{0, 0, 4}, false},
		{Cell{-1, -1, -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.cell.String(), func(t *testing.T) {
			if got := g.InBounds(tt.cell); got != tt.want {
				t.Errorf("InBounds(%v) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestMarkOccupiedIdempotent(t *testing.T) {
	g := New(4)
	c := Cell{1, 2, 3}

	g.MarkOccupied(c)
	g.MarkOccupied(c)

	if !g.IsOccupied(c) {
		t.Fatal("cell should be occupied")
	}
	if g.Count() != 1 {
		t.Errorf("expected count 1 after double mark, got %d", g.Count())
	}
}

func TestOutOfBoundsQueriesDoNotPanic(t *testing.T) {
	g := New(2)
	out := Cell{5, -3, 9}

	if g.IsOccupied(out) {
		t.Error("out of bounds cell reported occupied")
	}
	g.MarkOccupied(out)
	if g.Count() != 0 {
		t.Errorf("out of bounds mark changed count to %d", g.Count())
	}
	if g.IsFree(out) {
		t.Error("out of bounds cell reported free")
	}
}

func TestFillRatioAndClear(t *testing.T) {
	g := New(2)
	cells := []Cell{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for _, c := range cells {
		g.MarkOccupied(c)
	}
	if got := g.FillRatio(); got != 0.5 {
		t.Errorf("fill ratio = %f, want 0.5", got)
	}

	g.Clear()
	if got := g.FillRatio(); got != 0 {
		t.Errorf("fill ratio after clear = %f, want 0", got)
	}
	for _, c := range cells {
		if g.IsOccupied(c) {
			t.Errorf("cell %v still occupied after clear", c)
		}
	}

	// Clearing twice is harmless
	g.Clear()
	if g.Count() != 0 {
		t.Errorf("count after second clear = %d", g.Count())
	}
}

func TestRandomFreeCellSingleCell(t *testing.T) {
	g := New(1)
	rng := vmath.NewFastRand(3)

	c, ok := g.RandomFreeCell(rng)
	if !ok {
		t.Fatal("expected a free cell in an empty 1-cell grid")
	}
	if c != (Cell{}) {
		t.Errorf("got %v, want origin", c)
	}

	g.MarkOccupied(c)
	if _, ok := g.RandomFreeCell(rng); ok {
		t.Error("full grid should report no free cell")
	}
}

func TestRandomFreeCellReturnsFreeInBounds(t *testing.T) {
	g := New(4)
	rng := vmath.NewFastRand(11)
	for i := 0; i < 40; i++ {
		c, ok := g.RandomFreeCell(rng)
		if !ok {
			t.Fatalf("sampling failed on iteration %d with fill %f", i, g.FillRatio())
		}
		if !g.InBounds(c) || g.IsOccupied(c) {
			t.Fatalf("got unusable cell %v", c)
		}
		g.MarkOccupied(c)
	}
	if g.Count() != 40 {
		t.Errorf("count = %d, want 40", g.Count())
	}
}

func TestCellsSnapshot(t *testing.T) {
	g := New(3)
	g.MarkOccupied(Cell{2, 1, 0})
	g.MarkOccupied(Cell{0, 0, 2})
	g.MarkOccupied(Cell{1, 0, 0})

	want := []Cell{{1, 0, 0}, {2, 1, 0}, {0, 0, 2}}
	if diff := cmp.Diff(want, g.Cells()); diff != "" {
		t.Errorf("Cells() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewClampsSize(t *testing.T) {
	if g := New(0); g.Size() != 1 || g.Volume() != 1 {
		t.Errorf("New(0) size=%d volume=%d", g.Size(), g.Volume())
	}
}
