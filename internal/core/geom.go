// Package core provides fundamental types and utilities for the trainer
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Rect represents an axis-aligned rectangle used for board layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// GridLayout positions a row-major cell board on the screen.
// The board games share it so boards center the same way everywhere.
type GridLayout struct {
	Cols  int
	CellW int
	CellH int
	OffX  int
	OffY  int
}

// CenterGrid lays out a board of cols columns, centered horizontally on a
// screen of the given width, starting at row offY.
func CenterGrid(screenW, cols, cellW, cellH, offY int) GridLayout {
	return GridLayout{
		Cols:  cols,
		CellW: cellW,
		CellH: cellH,
		OffX:  Max(0, (screenW-cols*cellW)/2),
		OffY:  offY,
	}
}

// CellOrigin returns the top-left screen position of cell i (row-major).
func (g GridLayout) CellOrigin(i int) (int, int) {
	row, col := i/g.Cols, i%g.Cols
	return g.OffX + col*g.CellW, g.OffY + row*g.CellH
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
