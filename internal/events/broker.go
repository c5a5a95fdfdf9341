package events

import (
	"log/slog"
	"sync"
	"time"
)

// Broker fans events out to in-process subscribers.
// Slow subscribers lose events rather than stalling the publisher.
type Broker struct {
	mu          sync.Mutex
	subscribers map[int]chan Event
	nextID      int
	sequence    int64
	bufferSize  int
	closed      bool
}

// NewBroker creates a broker whose subscriber channels hold bufferSize events
func NewBroker(bufferSize int) *Broker {
	if bufferSize <= 0 {
		bufferSize = 16
	}
	return &Broker{
		subscribers: make(map[int]chan Event),
		bufferSize:  bufferSize,
	}
}

// SendEvent stamps the event with a sequence number and delivers it
func (b *Broker) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBrokerClosed
	}

	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	var dropped bool
	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			dropped = true
			slog.Debug("dropping event for slow subscriber",
				"subscriber", id,
				"event_type", event.Type,
				"sequence", event.SequenceID)
		}
	}

	if dropped {
		return ErrQueueFull
	}
	return nil
}

// Subscribe registers a listener. The returned func unsubscribes it.
func (b *Broker) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subscribers[id]; ok {
				delete(b.subscribers, id)
				close(sub)
			}
		})
	}
}

// Close closes every subscriber channel. Safe to call more than once.
func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}
	return nil
}
