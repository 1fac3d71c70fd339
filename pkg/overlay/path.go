// ABOUTME: Compound cutout path: viewport base rect plus inflated rounded target rects
// ABOUTME: Even-odd parity turns every non-overlapping target shape into a hole

package overlay

import "math"

// FillRule selects how a compound path decides which points are filled.
type FillRule int

const (
	// FillEvenOdd fills a point when an odd number of shape boundaries
	// enclose it.
	FillEvenOdd FillRule = iota
	// FillWinding is the non-zero winding rule. BuildCutoutPath never
	// emits it; it exists so painters can name their native default.
	FillWinding
)

// RoundedRect is a rectangle with uniformly rounded corners.
type RoundedRect struct {
	Rect
	Radius float64
}

// EffectiveRadius returns the radius actually used for drawing and
// containment: the declared radius clamped to half the shorter side.
func (rr RoundedRect) EffectiveRadius() float64 {
	r := rr.Radius
	if m := math.Min(rr.W, rr.H) / 2; r > m {
		r = m
	}
	if r < 0 {
		r = 0
	}
	return r
}

// Contains reports whether p lies inside the rounded rectangle, corner
// arcs included.
func (rr RoundedRect) Contains(p Point) bool {
	if !rr.Rect.Contains(p) {
		return false
	}
	r := rr.EffectiveRadius()
	if r == 0 {
		return true
	}
	// Clamp p to the inner rectangle that excludes the corner arcs; the
	// clamped point only differs from p inside a corner square, where
	// containment reduces to a distance check against the arc center.
	cx := math.Max(rr.X+r, math.Min(p.X, rr.X+rr.W-r))
	cy := math.Max(rr.Y+r, math.Min(p.Y, rr.Y+rr.H-r))
	dx, dy := p.X-cx, p.Y-cy
	return dx*dx+dy*dy <= r*r
}

// CutoutPath is the compound shape painted as the scrim: the full
// viewport plus one inflated rounded rectangle per target, combined
// under the even-odd rule so each target region reads as a hole. It is a
// pure value derived from (viewport, regions, style) and holds no
// reference to overlay state.
type CutoutPath struct {
	Viewport Size
	Cutouts  []RoundedRect
	Rule     FillRule
}

// BuildCutoutPath builds the scrim shape for one frame. Regions are
// appended in input order, each inflated by style.Padding and rounded by
// style.CornerRadius.
//
// Known limitation: when two inflated regions overlap, the intersection
// is enclosed by three boundaries (base rect plus both shapes), which is
// odd parity, so a filled seam appears inside what should be one
// continuous hole. Callers keep targets disjoint; replacing parity with
// explicit boolean subtraction would change painted output and is
// deliberately not done here.
func BuildCutoutPath(viewport Size, regions []Rect, style Style) CutoutPath {
	path := CutoutPath{Viewport: viewport, Rule: FillEvenOdd}
	if len(regions) == 0 {
		return path
	}
	path.Cutouts = make([]RoundedRect, 0, len(regions))
	for _, r := range regions {
		path.Cutouts = append(path.Cutouts, RoundedRect{
			Rect:   r.Inflate(style.Padding),
			Radius: style.CornerRadius,
		})
	}
	return path
}

// Filled reports the even-odd fill state of p: filled when an odd number
// of the path's shapes enclose it. This is the analytic counterpart of
// the rasterized fill, used to verify that painted holes and interactive
// holes agree.
func (c CutoutPath) Filled(p Point) bool {
	enclosures := 0
	if (Rect{W: c.Viewport.W, H: c.Viewport.H}).Contains(p) {
		enclosures++
	}
	for _, cut := range c.Cutouts {
		if cut.Contains(p) {
			enclosures++
		}
	}
	return enclosures%2 == 1
}
