package events

import "errors"

var (
	// ErrBrokerClosed is returned when sending on a closed broker
	ErrBrokerClosed = errors.New("event broker closed")

	// ErrQueueFull is returned when at least one subscriber dropped the event
	ErrQueueFull = errors.New("event queue full")
)
