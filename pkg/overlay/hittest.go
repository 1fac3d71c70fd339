// ABOUTME: Pointer hit-testing against the same inflated rectangles the painter cuts
// ABOUTME: PassThrough inside any hole, Captured on the scrim, PassThrough off-viewport

package overlay

// HitResult classifies a pointer position against the overlay.
type HitResult int

const (
	// PassThrough means the overlay does not consume the event; whatever
	// sits beneath the scrim receives it.
	PassThrough HitResult = iota
	// Captured means the scrim consumes the event.
	Captured
)

// String returns the human-readable label for the result.
func (h HitResult) String() string {
	switch h {
	case PassThrough:
		return "pass-through"
	case Captured:
		return "captured"
	default:
		return "unknown"
	}
}

// TestPoint classifies p against the inflated target regions. Each
// region goes through the same Rect.Inflate call as BuildCutoutPath, so
// hole geometry is identical between painting and hit-testing by
// construction. The first containing region wins; since the outcome is a
// boolean OR over all regions, order cannot change the result.
//
// Hit-testing uses the full inflated rectangle and ignores the corner
// radius: a tap in the sliver between a rounded corner and its bounding
// box still passes through.
func TestPoint(p Point, viewport Size, regions []Rect, padding float64) HitResult {
	for _, r := range regions {
		if r.Inflate(padding).Contains(p) {
			return PassThrough
		}
	}
	if (Rect{W: viewport.W, H: viewport.H}).Contains(p) {
		return Captured
	}
	// Outside the viewport entirely. A full-viewport overlay should never
	// see this; fall back to not consuming the event.
	return PassThrough
}
