// ABOUTME: Typed event bus decoupling tour progression from UI frontends
// ABOUTME: Subscribe returns an unsubscribe func; delivery is synchronous

package eventbus

import "sync"

// Handler is a callback for published events.
type Handler[T any] func(T)

// Bus delivers events of type T to registered handlers.
type Bus[T any] struct {
	mu     sync.RWMutex
	nextID int
	subs   []subscription[T]
}

type subscription[T any] struct {
	id int
	fn Handler[T]
}

// New creates an empty bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers handler and returns its unsubscribe function.
// Unsubscribing twice is harmless.
func (b *Bus[T]) Subscribe(handler Handler[T]) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscription[T]{id: id, fn: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers event to every handler registered at call time, in
// subscription order, synchronously on the caller's goroutine. The
// handler list is snapshotted so handlers may unsubscribe during
// delivery.
func (b *Bus[T]) Publish(event T) {
	b.mu.RLock()
	snapshot := make([]Handler[T], len(b.subs))
	for i, s := range b.subs {
		snapshot[i] = s.fn
	}
	b.mu.RUnlock()

	for _, fn := range snapshot {
		fn(event)
	}
}

// Count returns the number of registered handlers.
func (b *Bus[T]) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
