package binding

import "sync"

// Property is an observable value registered on a Bindable owner under an
// explicit name. Writes compare the new value against the current one and
// raise exactly one property-changed notification when they differ; writing
// an equal value performs no store and no notification.
//
// The slot starts unset: Get returns the configured initial value until the
// first differing Set, and Clear returns the property to that state.
type Property[T any] struct {
	owner   *Bindable
	name    string
	initial T
	eq      func(a, b T) bool

	mu    sync.Mutex
	value T
	set   bool
}

// NewProperty declares a property compared with ==.
func NewProperty[T comparable](owner *Bindable, name string, initial T) *Property[T] {
	return NewPropertyFunc(owner, name, initial, func(a, b T) bool { return a == b })
}

// NewPropertyFunc declares a property with a custom equality comparison.
func NewPropertyFunc[T any](owner *Bindable, name string, initial T, eq func(a, b T) bool) *Property[T] {
	return &Property[T]{
		owner:   owner,
		name:    name,
		initial: initial,
		eq:      eq,
	}
}

// Name returns the property name carried in notifications.
func (p *Property[T]) Name() string {
	return p.name
}

// Get returns the stored value, or the initial value if the slot is unset.
func (p *Property[T]) Get() T {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.set {
		return p.initial
	}
	return p.value
}

// Set stores value and notifies the owner if it differs from the current
// value. Equal values are a no-op.
func (p *Property[T]) Set(value T) {
	p.mu.Lock()
	current := p.initial
	if p.set {
		current = p.value
	}
	if p.eq(current, value) {
		p.mu.Unlock()
		return
	}
	p.value = value
	p.set = true
	p.mu.Unlock()

	p.owner.RaisePropertyChanged(p.name)
}

// Clear deletes the slot; subsequent Gets return the initial value.
// No notification is raised.
func (p *Property[T]) Clear() {
	p.mu.Lock()
	var zero T
	p.value = zero
	p.set = false
	p.mu.Unlock()
}
