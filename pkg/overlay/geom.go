// ABOUTME: Viewport-space geometry primitives: Point, Size, Rect
// ABOUTME: Inflate is the single padding expansion shared by painter and hit tester

package overlay

// Point is a position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Size is a viewport extent.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Inflate grows r symmetrically by pad: the origin shifts by -pad/2 on
// both axes and the size grows by pad on both axes. The cutout path
// builder and the hit tester both call this exact function, so the
// painted holes and the interactive holes cannot diverge.
func (r Rect) Inflate(pad float64) Rect {
	return Rect{X: r.X - pad/2, Y: r.Y - pad/2, W: r.W + pad, H: r.H + pad}
}

// Contains reports whether p lies inside r. All edges are inclusive: a
// point on the boundary of a cutout passes through rather than being
// captured by the scrim.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Empty reports whether r has zero or negative area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
