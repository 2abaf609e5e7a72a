package vmath

// Rect is an axis-aligned bounding box anchored at its top-left corner
type Rect struct {
	X, Y float64
	W, H float64
}

// CenteredRect returns a w×h box centered on c
func CenteredRect(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Intersects reports strict overlap on both axes
// Boxes whose edges only touch do not intersect
func (r Rect) Intersects(o Rect) bool {
	return r.Right() > o.X &&
		r.X < o.Right() &&
		r.Bottom() > o.Y &&
		r.Y < o.Bottom()
}
