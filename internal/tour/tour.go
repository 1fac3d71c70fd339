// ABOUTME: Ordered spotlight tour: one target per step, advanced by scrim taps or keys
// ABOUTME: Publishes step changes on a typed bus so frontends stay decoupled

package tour

import (
	"sync"

	"github.com/mauromedda/spotlight-go/internal/eventbus"
)

// Step names a spotlight target and the text shown alongside it.
type Step struct {
	Target string
	Title  string
	Body   string
}

// Event describes the tour position after a transition. Done is true
// once the tour has run past its last step or was stopped; the Step
// field is the zero value in that case.
type Event struct {
	Step  Step
	Index int
	Total int
	Done  bool
}

// Tour walks an ordered list of steps. All methods are safe for
// concurrent use; events fire synchronously on the mutating goroutine.
type Tour struct {
	mu     sync.Mutex
	steps  []Step
	index  int
	active bool

	bus *eventbus.Bus[Event]
}

// New creates an inactive tour over steps.
func New(steps []Step) *Tour {
	return &Tour{steps: steps, bus: eventbus.New[Event]()}
}

// Subscribe registers a handler for step changes and returns its
// unsubscribe function.
func (t *Tour) Subscribe(fn func(Event)) func() {
	return t.bus.Subscribe(fn)
}

// Start activates the tour at its first step. Starting an empty tour
// completes it immediately.
func (t *Tour) Start() {
	t.mu.Lock()
	t.index = 0
	t.active = len(t.steps) > 0
	ev := t.eventLocked()
	t.mu.Unlock()
	t.bus.Publish(ev)
}

// Next advances to the following step; past the last step the tour
// completes.
func (t *Tour) Next() {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}
	t.index++
	if t.index >= len(t.steps) {
		t.active = false
	}
	ev := t.eventLocked()
	t.mu.Unlock()
	t.bus.Publish(ev)
}

// Prev steps back; at the first step it stays put without publishing.
func (t *Tour) Prev() {
	t.mu.Lock()
	if !t.active || t.index == 0 {
		t.mu.Unlock()
		return
	}
	t.index--
	ev := t.eventLocked()
	t.mu.Unlock()
	t.bus.Publish(ev)
}

// Stop dismisses the tour from whatever step it is on.
func (t *Tour) Stop() {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}
	t.active = false
	ev := t.eventLocked()
	t.mu.Unlock()
	t.bus.Publish(ev)
}

// Current returns the active step, its index, and whether the tour is
// running.
func (t *Tour) Current() (Step, int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active {
		return Step{}, 0, false
	}
	return t.steps[t.index], t.index, true
}

// Active reports whether the tour is running.
func (t *Tour) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Len returns the number of steps.
func (t *Tour) Len() int {
	return len(t.steps)
}

func (t *Tour) eventLocked() Event {
	if !t.active {
		return Event{Total: len(t.steps), Done: true}
	}
	return Event{Step: t.steps[t.index], Index: t.index, Total: len(t.steps)}
}
