package events

// EventPublisher defines the interface for sending and receiving events.
// Services depend on this rather than on *Broker so tests can record events.
type EventPublisher interface {
	// SendEvent delivers an event to every subscriber without blocking
	SendEvent(event Event) error

	// Subscribe registers a new listener
	Subscribe() (<-chan Event, func())

	// Close closes every subscriber channel
	Close() error
}

// Compile-time verification that *Broker implements EventPublisher
var _ EventPublisher = (*Broker)(nil)
