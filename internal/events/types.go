package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventDocumentChanged   EventType = "doc_changed"
	EventDocumentSaved     EventType = "doc_saved"
	EventGenerationChanged EventType = "generation_changed"
)

// Event represents a change notification inside one editing session
type Event struct {
	Type       EventType
	ProjectID  string    // Empty for profile-level changes
	Key        string    // Operation key that caused the change, if any
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
