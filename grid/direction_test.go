package grid

import "testing"

func TestOpposite(t *testing.T) {
	tests := []struct {
		d, want Direction
	}{
		{PosX, NegX},
		{NegX, PosX},
		{PosY, NegY},
		{NegY, PosY},
		{PosZ, NegZ},
		{NegZ, PosZ},
	}
	for _, tt := range tests {
		if got := tt.d.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.d, got, tt.want)
		}
		dx, dy, dz := tt.d.Delta()
		ox, oy, oz := tt.d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 || dz+oz != 0 {
			t.Errorf("%v and its opposite do not sum to zero", tt.d)
		}
	}
}

func TestPerpendicular(t *testing.T) {
	for _, d := range Directions {
		perps := d.Perpendicular()
		seen := make(map[Direction]bool)
		for _, p := range perps {
			if p == d || p == d.Opposite() {
				t.Errorf("%v listed %v as perpendicular", d, p)
			}
			// Integer dot product must be exactly zero
			ax, ay, az := d.Delta()
			bx, by, bz := p.Delta()
			if ax*bx+ay*by+az*bz != 0 {
				t.Errorf("%v . %v != 0", d, p)
			}
			seen[p] = true
		}
		if len(seen) != 4 {
			t.Errorf("%v has %d distinct perpendiculars", d, len(seen))
		}
	}
}

func TestCellStep(t *testing.T) {
	c := Cell{1, 1, 1}
	if got := c.Step(PosX); got != (Cell{2, 1, 1}) {
		t.Errorf("step +x: %v", got)
	}
	if got := c.Step(NegZ); got != (Cell{1, 1, 0}) {
		t.Errorf("step -z: %v", got)
	}
}
