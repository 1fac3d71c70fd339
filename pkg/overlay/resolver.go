// ABOUTME: Resolver contract: opaque target handles resolved to live viewport rects
// ABOUTME: Resolution is queried fresh on every frame and every pointer event

package overlay

// Handle is an opaque, host-owned reference to an on-screen element the
// overlay spotlights. The overlay never creates, destroys, or mutates
// handles; it only passes them back to the Resolver. Handles must be
// comparable values (strings, ints, pointers) so the controller can
// detect no-op target updates.
type Handle any

// Resolver resolves a handle to its current viewport rectangle.
//
// ok is false while the referenced element is not on screen: never laid
// out yet, scrolled away, or removed. That is a normal transient
// condition, not an error, and the overlay simply omits the cutout for
// that frame. Resolve must be callable at arbitrary times.
type Resolver interface {
	Resolve(h Handle) (r Rect, ok bool)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(h Handle) (Rect, bool)

// Resolve calls f.
func (f ResolverFunc) Resolve(h Handle) (Rect, bool) { return f(h) }
