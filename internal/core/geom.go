// Package core provides fundamental types and utilities for the game platform.
// It contains no UI dependencies (especially no Bubble Tea or Ebiten) to keep
// game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on a Screen.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Viewport maps continuous canvas coordinates onto a cell grid.
// Terminal cells are taller than wide, so X and Y scale independently.
type Viewport struct {
	CanvasW, CanvasH float64
	CellsW, CellsH   int
}

// ScaleX returns the number of cells per canvas unit horizontally.
func (v Viewport) ScaleX() float64 {
	if v.CanvasW <= 0 {
		return 0
	}
	return float64(v.CellsW) / v.CanvasW
}

// ScaleY returns the number of cells per canvas unit vertically.
func (v Viewport) ScaleY() float64 {
	if v.CanvasH <= 0 {
		return 0
	}
	return float64(v.CellsH) / v.CanvasH
}

// RectToCells converts a canvas rectangle to the cells whose area it covers.
// Edges are rounded so that adjacent rectangles do not overlap or leave seams.
func (v Viewport) RectToCells(x, y, w, h float64) Rect {
	sx, sy := v.ScaleX(), v.ScaleY()
	x0 := int(math.Round(x * sx))
	y0 := int(math.Round(y * sy))
	x1 := int(math.Round((x + w) * sx))
	y1 := int(math.Round((y + h) * sy))
	return NewRect(x0, y0, Max(0, x1-x0), Max(0, y1-y0))
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
