// Package notify provides change notification for setting values.
//
// A List is an ordered registry of observers. Subscribing returns a
// Subscription handle that can later be used to unsubscribe. Delivery is
// synchronous and in registration order.
package notify

import "sync"

// Observer is called after a setting value is assigned. The argument is
// always true; it signals that the value was modified.
type Observer func(modified bool)

// Subscription represents an active observer registration.
type Subscription struct {
	id   uint64
	list *List
}

// Unsubscribe removes this subscription. It is safe to call multiple times.
func (s *Subscription) Unsubscribe() {
	if s.list != nil {
		s.list.unsubscribe(s.id)
	}
}

// List manages an ordered set of observers.
type List struct {
	mu      sync.Mutex
	entries []entry
	nextID  uint64
}

type entry struct {
	id uint64
	fn Observer
}

// NewList creates an empty observer list.
func NewList() *List {
	return &List{}
}

// Subscribe appends an observer and returns its subscription handle.
// Observers are notified in the order they were subscribed.
func (l *List) Subscribe(fn Observer) *Subscription {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++
	l.entries = append(l.entries, entry{id: id, fn: fn})

	return &Subscription{id: id, list: l}
}

// Notify calls every observer in registration order. Observers are invoked
// outside the lock; an observer must not mutate the setting it observes
// during delivery.
func (l *List) Notify(modified bool) {
	l.mu.Lock()
	observers := make([]Observer, len(l.entries))
	for i, e := range l.entries {
		observers[i] = e.fn
	}
	l.mu.Unlock()

	for _, fn := range observers {
		fn(modified)
	}
}

// Len returns the number of active observers.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// unsubscribe removes an observer by ID, preserving the order of the rest.
func (l *List) unsubscribe(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}
