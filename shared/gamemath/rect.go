package gamemath

import "github.com/solarlune/resolv"

// Rect is an axis-aligned rectangle in world pixels. X,Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether a and b intersect. Touching edges do not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Bounds returns the rectangle covered by a resolv object.
func Bounds(o *resolv.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}
