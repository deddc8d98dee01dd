package events

import "time"

const (
	UserRegistered    = "USER_REGISTERED"
	NotebookCreated   = "NOTEBOOK_CREATED"
	NotebookUpdated   = "NOTEBOOK_UPDATED"
	NotebookDeleted   = "NOTEBOOK_DELETED"
	AnnotationCreated = "ANNOTATION_CREATED"
	AnnotationUpdated = "ANNOTATION_UPDATED"
	AnnotationDeleted = "ANNOTATION_DELETED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "NOTEBOOK_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
