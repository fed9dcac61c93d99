package shared

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=types.go -destination=../../../tests/mock/shared/types.go -package=sharedmock

import (
	"context"
	"time"
)

const (
	EventSyncStarted    = "sync.started"
	EventSyncCompleted  = "sync.completed"
	EventNetworkChanged = "network.changed"
	EventNotification   = "notification"
)

type Event struct {
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
}

type EventPublisher interface {
	Publish(event Event)
}

type NopPublisher struct{}

func (NopPublisher) Publish(Event) {}

type NotificationLevel string

const (
	NotificationLoading NotificationLevel = "loading"
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
	NotificationInfo    NotificationLevel = "info"
)

// Notification is a toast-style message for the operator's screen. A success
// or error with the same ID replaces a preceding loading notification.
type Notification struct {
	ID        string            `json:"id"`
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
