// Package core provides fundamental types and utilities shared by the game
// and its hosts. It contains no external dependencies (especially no Bubble
// Tea or Ebitengine) to keep game logic pure and testable.
package core

import "math"

// Rect is an axis-aligned box in field coordinates.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether r and other overlap. Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	return RectRectOverlap(r, other)
}

// Circle is a circular hitbox given by its center and radius.
type Circle struct {
	X, Y float64
	R    float64
}

// RectCircleOverlap reports whether circle c intersects rectangle r.
//
// The test works on the distance between the two centers: beyond the
// half-extent plus radius on either axis there is no overlap, within the
// half-extent on either axis there is, and otherwise the nearest corner
// decides.
func RectCircleOverlap(r Rect, c Circle) bool {
	rx, ry := r.Center()
	cdx := math.Abs(c.X - rx)
	cdy := math.Abs(c.Y - ry)
	hw, hh := r.W/2, r.H/2

	if cdx > hw+c.R || cdy > hh+c.R {
		return false
	}
	if cdx < hw || cdy < hh {
		return true
	}

	// A degenerate circle sitting exactly on a corner touches nothing.
	if c.R <= 0 {
		return false
	}
	dx := cdx - hw
	dy := cdy - hh
	return dx*dx+dy*dy <= c.R*c.R
}

// RectRectOverlap reports whether two rectangles overlap on both axes.
func RectRectOverlap(a, b Rect) bool {
	acx, acy := a.Center()
	bcx, bcy := b.Center()
	if math.Abs(acx-bcx) >= (a.W+b.W)/2 {
		return false
	}
	return math.Abs(acy-bcy) < (a.H+b.H)/2
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
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
