// ABOUTME: Pooled scrim layers for hosts that composite the overlay separately
// ABOUTME: Layers are recycled via sync.Pool and cleared on acquisition

package paint

import "sync"

var layerPool = sync.Pool{
	New: func() any { return (*Canvas)(nil) },
}

// AcquireLayer returns a transparent canvas of exactly w by h pixels.
// A pooled canvas is reused when its size matches; otherwise a fresh one
// is allocated. Release the layer once the frame has been consumed.
func AcquireLayer(w, h int) *Canvas {
	c, _ := layerPool.Get().(*Canvas)
	if c == nil || c.img.Bounds().Dx() != w || c.img.Bounds().Dy() != h {
		return NewCanvas(w, h)
	}
	c.Clear()
	return c
}

// ReleaseLayer returns a canvas to the pool.
func ReleaseLayer(c *Canvas) {
	if c == nil {
		return
	}
	layerPool.Put(c)
}
