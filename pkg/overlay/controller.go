// ABOUTME: Overlay controller: visibility state, targets, style, scrim-tap callback
// ABOUTME: Frame = snapshot state, resolve targets fresh, build path, hand to painter

package overlay

import (
	"slices"
	"sync"
)

// Painter consumes one built cutout path per frame and turns it into
// pixels. Implementations hold no overlay state: Paint is purely
// (path, color) in, pixels out.
type Painter interface {
	Paint(path CutoutPath, style Style)
}

// PainterFunc adapts a plain function to the Painter interface.
type PainterFunc func(path CutoutPath, style Style)

// Paint calls f.
func (f PainterFunc) Paint(path CutoutPath, style Style) { f(path, style) }

// Controller owns the overlay state: visibility, the ordered target
// handles, the style, and the scrim-tap callback. It never stores
// resolved rectangles; every frame and every pointer event re-resolves
// the targets against current layout, because the content beneath the
// overlay can move (scroll, animation, relayout) while the controller's
// own state is unchanged. Caching would desynchronize the painted holes
// from the interactive holes.
//
// Hosts drive frames either by calling RenderOnce themselves (pull, the
// usual mode inside an existing render loop) or by calling Start and
// letting the controller's coalescing render loop react to setters
// (push).
type Controller struct {
	resolver Resolver
	painter  Painter

	mu         sync.Mutex
	visible    bool
	viewport   Size
	targets    []Handle
	style      Style
	onScrimTap func()

	renderCh chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	running  bool
}

// New creates a hidden controller with DefaultStyle and no targets.
// painter may be nil for hosts that only hit-test.
func New(resolver Resolver, painter Painter) *Controller {
	return &Controller{
		resolver: resolver,
		painter:  painter,
		style:    DefaultStyle,
		renderCh: make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
	}
}

// Visible reports whether the overlay is currently shown. Hosts read
// this to decide whether to mount the overlay at all.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// SetVisible shows or hides the overlay. Showing with zero targets is a
// supported state: a solid scrim with no holes that captures every tap.
func (c *Controller) SetVisible(v bool) {
	c.mu.Lock()
	if c.visible == v {
		c.mu.Unlock()
		return
	}
	c.visible = v
	c.mu.Unlock()
	c.RequestRender()
}

// SetViewport updates the viewport extent, normally on host resize.
func (c *Controller) SetViewport(s Size) {
	c.mu.Lock()
	if c.viewport == s {
		c.mu.Unlock()
		return
	}
	c.viewport = s
	c.mu.Unlock()
	c.RequestRender()
}

// SetTargets replaces the spotlighted handles. Input order is preserved;
// it is the order cutouts are appended to the path. A slice equal to the
// current one schedules no repaint.
func (c *Controller) SetTargets(targets []Handle) {
	c.mu.Lock()
	if slices.Equal(c.targets, targets) {
		c.mu.Unlock()
		return
	}
	c.targets = slices.Clone(targets)
	c.mu.Unlock()
	c.RequestRender()
}

// SetStyle replaces the scrim style. Negative padding or corner radius
// is rejected with an error before any state changes. A style equal to
// the current one schedules no repaint.
func (c *Controller) SetStyle(s Style) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	if c.style.Equal(s) {
		c.mu.Unlock()
		return nil
	}
	c.style = s
	c.mu.Unlock()
	c.RequestRender()
	return nil
}

// SetOnScrimTap replaces the captured-tap callback. The callback is
// purely behavioral, so this never schedules a repaint. Hosts that want
// tap-to-dismiss wire the callback to SetVisible(false) themselves.
func (c *Controller) SetOnScrimTap(fn func()) {
	c.mu.Lock()
	c.onScrimTap = fn
	c.mu.Unlock()
}

// Style returns the current style.
func (c *Controller) Style() Style {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.style
}

// RequestRender schedules an asynchronous repaint. Multiple calls
// coalesce through a 1-buffered channel; pull-mode hosts that never
// start the loop can ignore the pending signal.
func (c *Controller) RequestRender() {
	select {
	case c.renderCh <- struct{}{}:
	default: // already pending; coalesced
	}
}

// Start begins the push-mode render loop in a goroutine. Call Stop to
// terminate.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.mu.Unlock()

	go c.renderLoop()
}

// Stop terminates the render loop. Safe to call multiple times.
func (c *Controller) Stop() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
		close(c.stopCh)
	})
}

func (c *Controller) renderLoop() {
	for {
		select {
		case <-c.stopCh:
			return
		case <-c.renderCh:
			c.RenderOnce()
		}
	}
}

// RenderOnce resolves every target and paints one frame. State is read
// once under the lock so the frame observes a consistent snapshot of
// targets and style even when setters race with it; resolution then runs
// outside the lock against current layout. Hidden overlays paint
// nothing.
func (c *Controller) RenderOnce() {
	c.mu.Lock()
	visible := c.visible
	viewport := c.viewport
	targets := c.targets
	style := c.style
	c.mu.Unlock()

	if !visible || c.painter == nil {
		return
	}

	regions := c.resolveAll(targets)
	c.painter.Paint(BuildCutoutPath(viewport, regions, style), style)
}

// HandlePointer classifies a pointer position. Hidden overlays pass
// everything through. A captured tap invokes the scrim-tap callback
// exactly once and the event is consumed; pass-through leaves the event
// for the content beneath. Targets are re-resolved at event time rather
// than reusing the geometry of the last painted frame.
func (c *Controller) HandlePointer(p Point) HitResult {
	c.mu.Lock()
	visible := c.visible
	viewport := c.viewport
	targets := c.targets
	padding := c.style.Padding
	onTap := c.onScrimTap
	c.mu.Unlock()

	if !visible {
		return PassThrough
	}

	result := TestPoint(p, viewport, c.resolveAll(targets), padding)
	if result == Captured && onTap != nil {
		onTap()
	}
	return result
}

// resolveAll queries the resolver for each handle, skipping those that
// are not currently live. A missing target contributes no cutout and no
// hit-test hole this frame and rejoins seamlessly once it resolves
// again. Missing targets are never an error.
func (c *Controller) resolveAll(targets []Handle) []Rect {
	if c.resolver == nil || len(targets) == 0 {
		return nil
	}
	regions := make([]Rect, 0, len(targets))
	for _, t := range targets {
		r, ok := c.resolver.Resolve(t)
		if !ok {
			continue
		}
		regions = append(regions, r)
	}
	return regions
}
