// Package scripting carries widget and keystroke events from the UI and
// input layers to the host's script handlers. The ui and input packages
// depend only on their own small queue interfaces; this package provides
// the concrete implementation behind all of them.
package scripting

import (
	"sync"

	"github.com/agiangrant/overlay/input"
)

// Event is one queued notification. Broadcast events carry a name and a
// zero Target; targeted events carry the handler id they were queued for.
type Event struct {
	Name   string
	Target int64
	Data   any
}

// KeybindHandler receives the canonical name of a pressed key combination
// and reports whether it consumed the keystroke.
type KeybindHandler func(name string) bool

// Queue is a concurrency-safe FIFO of events, plus the keybind registry
// consulted when the UI declines a keystroke.
type Queue struct {
	mu     sync.Mutex
	events []Event

	keybinds map[string][]keybind
	lastID   int64
}

type keybind struct {
	id      int64
	handler KeybindHandler
}

// NewQueue returns an empty queue with room for capacity events before the
// backing store grows.
func NewQueue(capacity int) *Queue {
	return &Queue{
		events:   make([]Event, 0, capacity),
		keybinds: make(map[string][]keybind),
	}
}

// QueueEvent appends a broadcast event.
func (q *Queue) QueueEvent(name string, data any) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, Event{Name: name, Data: data})
}

// QueueTargetedEvent appends an event addressed to one registered handler.
func (q *Queue) QueueTargetedEvent(target int64, data any) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, Event{Target: target, Data: data})
}

// Next pops the oldest queued event.
func (q *Queue) Next() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

// Drain removes and returns every queued event in order, or nil when the
// queue is empty.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

// Len reports how many events are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// RegisterKeybind adds a handler for a canonical key combination name such
// as "alt-shift-f4". The returned id removes it again.
func (q *Queue) RegisterKeybind(name string, handler KeybindHandler) int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.lastID++
	q.keybinds[name] = append(q.keybinds[name], keybind{id: q.lastID, handler: handler})
	return q.lastID
}

// RemoveKeybind removes the handler registered for name under id.
func (q *Queue) RemoveKeybind(name string, id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.keybinds[name][:0]
	for _, kb := range q.keybinds[name] {
		if kb.id != id {
			kept = append(kept, kb)
		}
	}
	if len(kept) == 0 {
		delete(q.keybinds, name)
		return
	}
	q.keybinds[name] = kept
}

// ProcessKeybinds runs the handlers registered for a pressed combination in
// registration order until one consumes it. Handlers match the bare
// modifier-prefixed name, without the -down/-up suffix; key releases never
// match.
func (q *Queue) ProcessKeybinds(ev *input.KeyboardEvent) bool {
	if !ev.Down {
		return false
	}

	name := ev.Name()

	q.mu.Lock()
	registered := q.keybinds[name]
	handlers := make([]KeybindHandler, len(registered))
	for i, kb := range registered {
		handlers[i] = kb.handler
	}
	q.mu.Unlock()

	for _, h := range handlers {
		if h(name) {
			return true
		}
	}
	return false
}
