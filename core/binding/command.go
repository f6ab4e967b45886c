package binding

import "sync"

// Command adapts a view-model action to the contract a UI control binds to:
// Execute runs the action, CanExecute reflects enablement, and
// RaiseCanExecuteChanged tells bound controls to re-query enablement.
// Enablement changes are never detected automatically; view-model logic must
// raise them whenever a condition affecting CanExecute changes.
type Command struct {
	execute    func(param any)
	canExecute func() bool

	mu        sync.Mutex
	listeners []commandListener
	nextID    uint64
}

type commandListener struct {
	id uint64
	fn func()
}

// NewCommand creates a command. canExecute may be nil, in which case
// CanExecute always returns true.
func NewCommand(execute func(param any), canExecute func() bool) *Command {
	return &Command{execute: execute, canExecute: canExecute}
}

// Execute invokes the bound action with param.
func (c *Command) Execute(param any) {
	c.execute(param)
}

// CanExecute reports whether the action is currently available.
func (c *Command) CanExecute() bool {
	if c.canExecute == nil {
		return true
	}
	return c.canExecute()
}

// OnCanExecuteChanged registers an enablement listener and returns an id
// for removal.
func (c *Command) OnCanExecuteChanged(fn func()) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	c.listeners = append(c.listeners, commandListener{id: c.nextID, fn: fn})
	return c.nextID
}

// RemoveCanExecuteChanged removes an enablement listener by id.
func (c *Command) RemoveCanExecuteChanged(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, entry := range c.listeners {
		if entry.id == id {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

// RaiseCanExecuteChanged notifies all registered listeners that enablement
// may have changed.
func (c *Command) RaiseCanExecuteChanged() {
	c.mu.Lock()
	snapshot := make([]commandListener, len(c.listeners))
	copy(snapshot, c.listeners)
	c.mu.Unlock()

	for _, entry := range snapshot {
		entry.fn()
	}
}

// CommandSpec binds a handler method to a Command per owning instance, the
// way a descriptor binds a class-level attribute. Declare one spec per
// command at package level and call For(owner) at the binding site: the
// first access mints a Command closing over that owner, and every later
// access returns the identical Command, so UI bindings comparing command
// identity stay valid.
type CommandSpec[O comparable] struct {
	handler    func(owner O, param any)
	canExecute func(owner O) bool

	mu    sync.Mutex
	cache map[O]*Command
}

// NewCommandSpec declares a command bound to a handler method.
func NewCommandSpec[O comparable](handler func(owner O, param any)) *CommandSpec[O] {
	return &CommandSpec[O]{
		handler: handler,
		cache:   make(map[O]*Command),
	}
}

// WithCanExecute attaches the enablement predicate. It returns the spec for
// declaration-site chaining.
func (s *CommandSpec[O]) WithCanExecute(pred func(owner O) bool) *CommandSpec[O] {
	s.canExecute = pred
	return s
}

// For returns the Command bound to owner, creating and caching it on first
// access.
func (s *CommandSpec[O]) For(owner O) *Command {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cmd, ok := s.cache[owner]; ok {
		return cmd
	}

	var canExecute func() bool
	if s.canExecute != nil {
		canExecute = func() bool { return s.canExecute(owner) }
	}
	cmd := NewCommand(func(param any) { s.handler(owner, param) }, canExecute)
	s.cache[owner] = cmd
	return cmd
}

// Forget drops the cached Command for owner. Call it from the owner's
// teardown path so the cache does not pin retired instances.
func (s *CommandSpec[O]) Forget(owner O) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, owner)
}
