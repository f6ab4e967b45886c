// Package messaging provides the message bus used to decouple view models
// from their observers. Messages are queued on publish and delivered in
// batches on a periodic tick, so handlers always run on one consistent
// goroutine regardless of which goroutine published.
package messaging

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTickInterval is the delivery period used when the config does not
// override it.
const DefaultTickInterval = 5 * time.Millisecond

// Handler is a function invoked with the arguments passed to Publish.
type Handler func(args ...any)

// Config holds configuration for a Messenger.
type Config struct {
	// TickInterval is the period of the delivery tick.
	// Zero or negative means DefaultTickInterval.
	TickInterval time.Duration
	// Logger receives per-handler failure reports. Nil means slog.Default().
	Logger *slog.Logger
}

// subscriber is a single registered handler on a topic.
// A subscriber is live only while its lifetime (if any) is alive; dead
// subscribers are skipped during delivery and purged from the topic list.
type subscriber struct {
	id      uint64
	handler Handler
	life    *Lifetime
}

func (s *subscriber) alive() bool {
	return s.life == nil || s.life.Alive()
}

// envelope is one queued message awaiting the next tick.
type envelope struct {
	topic *Topic
	args  []any
}

// Messenger routes published messages to topic subscribers. It is constructed
// once at startup and passed by reference to every consumer; its lifetime is
// the lifetime of the process, though Close exists for tests and orderly
// shutdown.
//
// Publish never contends with subscription bookkeeping: the pending queue has
// its own mutex, separate from the subscriber lock shared by Subscribe,
// Unsubscribe, and the tick drain. The subscriber set used to satisfy a
// drained message is whatever is current as-of tick time.
type Messenger struct {
	logger *slog.Logger

	queueMu sync.Mutex
	queue   []envelope

	mu          sync.Mutex
	subscribers map[*Topic][]*subscriber
	byID        map[uint64]*Topic

	nextID atomic.Uint64
	closed atomic.Bool
	stop   chan struct{}
	wg     sync.WaitGroup
}

// New creates a Messenger and starts its delivery goroutine.
func New(cfg *Config) *Messenger {
	if cfg == nil {
		cfg = &Config{}
	}
	interval := cfg.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := &Messenger{
		logger:      logger,
		subscribers: make(map[*Topic][]*subscriber),
		byID:        make(map[uint64]*Topic),
		stop:        make(chan struct{}),
	}

	m.wg.Add(1)
	go m.run(interval)

	return m
}

// Publish enqueues a message for delivery on the next tick. It is safe to
// call from any goroutine and returns as soon as the message is queued;
// subscriber execution never blocks the caller. After Close it is a no-op.
func (m *Messenger) Publish(topic *Topic, args ...any) {
	if m.closed.Load() {
		return
	}

	m.queueMu.Lock()
	m.queue = append(m.queue, envelope{topic: topic, args: args})
	m.queueMu.Unlock()
}

// Subscribe registers a handler for a topic and returns a subscription ID
// for Unsubscribe. Subscribing the same handler twice is not deduplicated;
// both registrations fire.
//
// If life is non-nil, the subscription is valid only while the lifetime is
// alive; once it ends, the handler is silently skipped and the entry purged.
// A nil life means the subscription lasts until Unsubscribe or Close.
func (m *Messenger) Subscribe(topic *Topic, life *Lifetime, handler Handler) uint64 {
	id := m.nextID.Add(1)

	m.mu.Lock()
	m.subscribers[topic] = append(m.subscribers[topic], &subscriber{
		id:      id,
		handler: handler,
		life:    life,
	})
	m.byID[id] = topic
	m.mu.Unlock()

	return id
}

// Unsubscribe removes a subscription by the ID returned from Subscribe.
// Unknown IDs are ignored.
func (m *Messenger) Unsubscribe(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	topic, ok := m.byID[id]
	if !ok {
		return
	}
	delete(m.byID, id)

	subs := m.subscribers[topic]
	for i, sub := range subs {
		if sub.id == id {
			m.subscribers[topic] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(m.subscribers[topic]) == 0 {
		delete(m.subscribers, topic)
	}
}

// Close stops the delivery goroutine. Messages still queued are dropped.
// Close is idempotent; Publish becomes a no-op afterwards.
func (m *Messenger) Close() {
	if m.closed.Swap(true) {
		return
	}
	close(m.stop)
	m.wg.Wait()
}

// run is the delivery loop. All handler invocations happen here, on this
// one goroutine.
func (m *Messenger) run(interval time.Duration) {
	defer m.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.drain()
		}
	}
}

// drain delivers every message queued since the previous tick.
func (m *Messenger) drain() {
	m.queueMu.Lock()
	batch := m.queue
	m.queue = nil
	m.queueMu.Unlock()

	for _, env := range batch {
		m.deliver(env)
	}
}

// deliver invokes every live subscriber of the envelope's topic, in
// subscription order, purging entries whose lifetime has ended.
func (m *Messenger) deliver(env envelope) {
	m.mu.Lock()
	subs := m.subscribers[env.topic]
	live := make([]*subscriber, 0, len(subs))
	var dead []*subscriber
	for _, sub := range subs {
		if sub.alive() {
			live = append(live, sub)
		} else {
			dead = append(dead, sub)
		}
	}
	if len(dead) > 0 {
		m.subscribers[env.topic] = live
		if len(live) == 0 {
			delete(m.subscribers, env.topic)
		}
		for _, sub := range dead {
			delete(m.byID, sub.id)
		}
	}
	m.mu.Unlock()

	for _, sub := range live {
		// Re-check liveness: the lifetime may have ended between the
		// snapshot and this invocation.
		if !sub.alive() {
			continue
		}
		m.invoke(env.topic, sub, env.args)
	}
}

// invoke calls a single handler, isolating panics so one misbehaving
// subscriber cannot halt delivery to the rest of the queue.
func (m *Messenger) invoke(topic *Topic, sub *subscriber, args []any) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("message handler panicked",
				"topic", topic.Name(),
				"subscription", sub.id,
				"panic", r)
		}
	}()
	sub.handler(args...)
}
