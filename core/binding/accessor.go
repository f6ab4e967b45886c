package binding

// Accessor is the computed-property counterpart of Property: it wraps a
// getter/setter pair so that assignment through Set follows the same
// compare-then-notify contract. A getter error is treated as "no value yet"
// rather than propagating, so the first successful Set always registers as
// a change.
type Accessor[T any] struct {
	owner *Bindable
	name  string
	get   func() (T, error)
	set   func(T)
	eq    func(a, b T) bool
}

// NewAccessor declares a computed property compared with ==.
func NewAccessor[T comparable](owner *Bindable, name string, get func() (T, error), set func(T)) *Accessor[T] {
	return NewAccessorFunc(owner, name, get, set, func(a, b T) bool { return a == b })
}

// NewAccessorFunc declares a computed property with a custom equality
// comparison.
func NewAccessorFunc[T any](owner *Bindable, name string, get func() (T, error), set func(T), eq func(a, b T) bool) *Accessor[T] {
	return &Accessor[T]{
		owner: owner,
		name:  name,
		get:   get,
		set:   set,
		eq:    eq,
	}
}

// Name returns the property name carried in notifications.
func (a *Accessor[T]) Name() string {
	return a.name
}

// Get returns the computed value, or the zero value if the getter fails.
func (a *Accessor[T]) Get() T {
	v, err := a.get()
	if err != nil {
		var zero T
		return zero
	}
	return v
}

// Set writes through the setter and notifies the owner if the value
// differs from the current one. If the getter fails, the write is always
// treated as a change.
func (a *Accessor[T]) Set(value T) {
	current, err := a.get()
	if err == nil && a.eq(current, value) {
		return
	}
	a.set(value)
	a.owner.RaisePropertyChanged(a.name)
}
