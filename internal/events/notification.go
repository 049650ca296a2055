package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventDebug   EventType = "debug"
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

// Frontend event names.
const (
	Notifications  = "events:notification"
	EntriesChanged = "events:entries:changed"
)

// Notification is a message shown to the user after a command.
type Notification struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func NewNotification(eventType EventType, title, message string) Notification {
	return Notification{
		ID:        uuid.NewString(),
		Type:      eventType,
		Title:     title,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewInfo creates an info Notification.
func NewInfo(title, message string) Notification {
	return NewNotification(EventInfo, title, message)
}

// NewWarn creates a warn Notification.
func NewWarn(title, message string) Notification {
	return NewNotification(EventWarn, title, message)
}

// NewError creates an error Notification.
func NewError(title, message string) Notification {
	return NewNotification(EventError, title, message)
}
