package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Publisher is the sending side of the bus.
type Publisher interface {
	Publish(e Event)
}

// Bus is an in-process publish/subscribe channel with named topics.
type Bus struct {
	mu     sync.RWMutex
	next   uint64
	topics map[Topic]map[uint64]Handler
	all    map[uint64]Handler
}

var _ Publisher = (*Bus)(nil)

func NewBus() *Bus {
	return &Bus{
		topics: make(map[Topic]map[uint64]Handler),
		all:    make(map[uint64]Handler),
	}
}

// Subscribe registers h for one topic. The returned function removes the
// subscription and may be called more than once.
func (b *Bus) Subscribe(topic Topic, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	id := b.next
	if b.topics[topic] == nil {
		b.topics[topic] = make(map[uint64]Handler)
	}
	b.topics[topic][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.topics[topic], id)
	}
}

// SubscribeAll registers h for every topic.
func (b *Bus) SubscribeAll(h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	id := b.next
	b.all[id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.all, id)
	}
}

// Publish delivers e synchronously to a snapshot of the current subscribers.
// ID and Timestamp are filled in when empty.
func (b *Bus) Publish(e Event) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.topics[e.Topic])+len(b.all))
	for _, h := range b.topics[e.Topic] {
		handlers = append(handlers, h)
	}
	for _, h := range b.all {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}
