// ABOUTME: Scrim styling: color, padding, corner radius with validation
// ABOUTME: Value type; setters compare with Equal to skip redundant repaints

package overlay

import (
	"fmt"
	"image/color"
)

// DefaultStyle is a dark translucent scrim with a modest cutout margin.
var DefaultStyle = Style{
	Scrim:        color.NRGBA{A: 0xb3},
	Padding:      8,
	CornerRadius: 12,
}

// Style describes how the scrim and its cutouts are drawn.
type Style struct {
	// Scrim is the fill color of the overlay, typically translucent.
	Scrim color.NRGBA
	// Padding inflates each target rectangle symmetrically before the
	// hole is cut. See Rect.Inflate.
	Padding float64
	// CornerRadius rounds the corners of each cutout.
	CornerRadius float64
}

// Validate rejects negative numeric fields. A negative padding or radius
// is a programming error and must never reach the path builder, so it
// fails fast at the setter boundary instead of being clamped.
func (s Style) Validate() error {
	if s.Padding < 0 {
		return fmt.Errorf("style: negative padding %v", s.Padding)
	}
	if s.CornerRadius < 0 {
		return fmt.Errorf("style: negative corner radius %v", s.CornerRadius)
	}
	return nil
}

// Equal reports structural equality with o.
func (s Style) Equal(o Style) bool {
	return s == o
}
