// Package core provides fundamental types and utilities for the duel platform.
// It contains no Bubble Tea dependency so that game logic stays pure and testable.
package core

// Rect is an axis-aligned area of the screen used for panel layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
// The result never has negative dimensions.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: max(r.W-2*n, 0),
		H: max(r.H-2*n, 0),
	}
}

// SplitColumns divides the rectangle into two side-by-side halves separated
// by gap cells. The left half gets the extra column on odd widths.
func (r Rect) SplitColumns(gap int) (left, right Rect) {
	usable := max(r.W-gap, 0)
	lw := (usable + 1) / 2
	left = Rect{X: r.X, Y: r.Y, W: lw, H: r.H}
	right = Rect{X: r.X + lw + gap, Y: r.Y, W: usable - lw, H: r.H}
	return left, right
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
