// ABOUTME: gg-backed painter: fills the compound cutout path with the scrim color
// ABOUTME: Even-odd fill renders the inflated target shapes as transparent holes

package paint

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/mauromedda/spotlight-go/pkg/overlay"
)

// Canvas paints overlay frames onto an RGBA image. Create one with
// NewCanvas for a standalone scrim layer, or with NewCanvasForRGBA to
// composite the scrim directly over already-rendered host content.
type Canvas struct {
	dc  *gg.Context
	img *image.RGBA
}

// NewCanvas creates a transparent canvas of the given pixel size.
func NewCanvas(w, h int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &Canvas{dc: gg.NewContextForRGBA(img), img: img}
}

// NewCanvasForRGBA wraps an existing image; painting blends the scrim
// over its current pixels.
func NewCanvasForRGBA(img *image.RGBA) *Canvas {
	return &Canvas{dc: gg.NewContextForRGBA(img), img: img}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Context returns the drawing context, so hosts can render their own
// content onto the same surface before the scrim is painted.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Size returns the canvas extent as an overlay viewport size.
func (c *Canvas) Size() overlay.Size {
	return overlay.Size{W: float64(c.dc.Width()), H: float64(c.dc.Height())}
}

// Clear resets every pixel to fully transparent.
func (c *Canvas) Clear() {
	pix := c.img.Pix
	for i := range pix {
		pix[i] = 0
	}
}

// Paint fills path with the scrim color: one base rectangle spanning the
// viewport plus every cutout shape, filled solid under the even-odd rule
// so each non-overlapping cutout lands on even parity and stays
// transparent. Paint holds no state between frames and performs no
// resolution; it is purely (path, color) to pixels.
func (c *Canvas) Paint(path overlay.CutoutPath, style overlay.Style) {
	c.dc.SetFillRule(fillRule(path.Rule))
	c.dc.DrawRectangle(0, 0, path.Viewport.W, path.Viewport.H)
	for _, cut := range path.Cutouts {
		if r := cut.EffectiveRadius(); r > 0 {
			c.dc.DrawRoundedRectangle(cut.X, cut.Y, cut.W, cut.H, r)
		} else {
			c.dc.DrawRectangle(cut.X, cut.Y, cut.W, cut.H)
		}
	}
	c.dc.SetColor(style.Scrim)
	c.dc.Fill()
}

func fillRule(r overlay.FillRule) gg.FillRule {
	if r == overlay.FillWinding {
		return gg.FillRuleWinding
	}
	return gg.FillRuleEvenOdd
}
