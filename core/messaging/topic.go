package messaging

// Topic is a lightweight handle for a named message channel. Identity is the
// Topic pointer itself, not the name: two topics constructed with the same
// name never collide, and the name exists only for logging.
type Topic struct {
	name string
	bus  *Messenger
}

// NewTopic creates a topic bound to a messenger.
func NewTopic(bus *Messenger, name string) *Topic {
	return &Topic{name: name, bus: bus}
}

// Name returns the debug name given at construction.
func (t *Topic) Name() string {
	return t.name
}

// Connect subscribes a handler to this topic. See Messenger.Subscribe.
func (t *Topic) Connect(life *Lifetime, handler Handler) uint64 {
	return t.bus.Subscribe(t, life, handler)
}

// Disconnect removes a subscription made through Connect.
func (t *Topic) Disconnect(id uint64) {
	t.bus.Unsubscribe(id)
}

// Emit queues a message for all connected handlers. Delivery happens on the
// messenger's next tick; a handler connected after Emit but before that tick
// will see the message.
func (t *Topic) Emit(args ...any) {
	t.bus.Publish(t, args...)
}
