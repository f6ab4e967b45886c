// Package binding provides the building blocks for bindable view models:
// a change-notification base, observable properties and lists, and command
// objects exposing an enable/disable contract to the UI layer.
package binding

import (
	"sync"
	"sync/atomic"
)

// Listener receives the name of a property whose value changed.
type Listener func(propertyName string)

// listenerEntry pairs a listener with its removal id.
type listenerEntry struct {
	id uint64
	fn Listener
}

// Bindable is the base for everything that raises property-change
// notifications. Embed it in a view model and declare fields with
// NewProperty/NewAccessor against the embedded value.
//
// The listener registry is an ordered, append-only list with explicit
// removal. Registrations are not deduplicated; a listener added twice is
// invoked twice.
type Bindable struct {
	mu        sync.Mutex
	listeners []listenerEntry
	nextID    atomic.Uint64
}

// OnPropertyChanged registers a listener and returns an id for removal.
func (b *Bindable) OnPropertyChanged(fn Listener) uint64 {
	id := b.nextID.Add(1)

	b.mu.Lock()
	b.listeners = append(b.listeners, listenerEntry{id: id, fn: fn})
	b.mu.Unlock()

	return id
}

// RemovePropertyChanged removes a listener by its registration id.
// Unknown ids are ignored.
func (b *Bindable) RemovePropertyChanged(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, entry := range b.listeners {
		if entry.id == id {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

// RaisePropertyChanged invokes every registered listener, in registration
// order, with the given property name. The listener list is snapshotted
// under the lock and invoked without it, so a listener may re-register or
// remove itself safely.
func (b *Bindable) RaisePropertyChanged(name string) {
	b.mu.Lock()
	snapshot := make([]listenerEntry, len(b.listeners))
	copy(snapshot, b.listeners)
	b.mu.Unlock()

	for _, entry := range snapshot {
		entry.fn(name)
	}
}
