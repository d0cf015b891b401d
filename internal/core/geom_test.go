package core

import "testing"

func TestCenterGridOffsets(t *testing.T) {
	// 4 columns of width 5 on an 80-wide screen: board is 20 wide,
	// so it starts at column 30.
	g := CenterGrid(80, 4, 5, 2, 3)
	if g.OffX != 30 {
		t.Errorf("OffX = %d, want 30", g.OffX)
	}
	if g.OffY != 3 {
		t.Errorf("OffY = %d, want 3", g.OffY)
	}
}

func TestCenterGridNarrowScreen(t *testing.T) {
	// Board wider than the screen clamps to the left edge.
	g := CenterGrid(10, 4, 5, 2, 0)
	if g.OffX != 0 {
		t.Errorf("OffX = %d, want 0", g.OffX)
	}
}

func TestCellOriginRowMajor(t *testing.T) {
	g := CenterGrid(80, 3, 4, 2, 5)

	x, y := g.CellOrigin(0)
	if x != g.OffX || y != g.OffY {
		t.Errorf("cell 0 at (%d,%d), want (%d,%d)", x, y, g.OffX, g.OffY)
	}

	// Cell 4 is row 1, col 1
	x, y = g.CellOrigin(4)
	if x != g.OffX+4 || y != g.OffY+2 {
		t.Errorf("cell 4 at (%d,%d), want (%d,%d)", x, y, g.OffX+4, g.OffY+2)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5) = %d, want 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15) = %d, want 10", got)
	}
	if got := Clamp(7, 0, 10); got != 7 {
		t.Errorf("Clamp(7) = %d, want 7", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)
	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Error("expected corner cells inside")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) {
		t.Error("expected edge-exclusive cells outside")
	}
}
