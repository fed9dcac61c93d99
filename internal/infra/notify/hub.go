// Package notify keeps operator notifications and fans events out to
// websocket clients.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"event-sync-service/internal/usecase/shared"
)

const clientBufferSize = 16

// Hub implements shared.Notifier and shared.EventPublisher.
type Hub struct {
	logger *slog.Logger

	mu      sync.Mutex
	history []shared.Notification
	next    int
	full    bool
	clients map[*client]struct{}
	closed  bool
}

func NewHub(historySize int, logger *slog.Logger) *Hub {
	if historySize <= 0 {
		historySize = 100
	}
	return &Hub{
		logger:  logger.With("component", "notify"),
		history: make([]shared.Notification, historySize),
		clients: make(map[*client]struct{}),
	}
}

func (h *Hub) Notify(_ context.Context, n shared.Notification) {
	h.mu.Lock()
	h.history[h.next] = n
	h.next = (h.next + 1) % len(h.history)
	if h.next == 0 {
		h.full = true
	}
	h.mu.Unlock()

	switch n.Level {
	case shared.NotificationError:
		h.logger.Warn("notification", "id", n.ID, "level", n.Level, "message", n.Message)
	default:
		h.logger.Info("notification", "id", n.ID, "level", n.Level, "message", n.Message)
	}

	h.Publish(shared.Event{
		Type: shared.EventNotification,
		Data: map[string]any{
			"id":      n.ID,
			"level":   n.Level,
			"message": n.Message,
		},
		Timestamp: n.Timestamp,
	})
}

// Recent returns up to limit notifications, newest first. limit <= 0 means all.
func (h *Hub) Recent(limit int) []shared.Notification {
	h.mu.Lock()
	defer h.mu.Unlock()

	size := h.next
	if h.full {
		size = len(h.history)
	}
	if limit <= 0 || limit > size {
		limit = size
	}
	out := make([]shared.Notification, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (h.next - i + len(h.history)) % len(h.history)
		out = append(out, h.history[idx])
	}
	return out
}

// Publish never blocks; a client whose buffer is full misses the event.
func (h *Hub) Publish(event shared.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to encode event", "type", event.Type, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			h.logger.Debug("dropping event for slow client", "type", event.Type)
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Close disconnects every client and rejects new ones.
func (h *Hub) Close(_ context.Context) error {
	h.mu.Lock()
	h.closed = true
	clients := h.clients
	h.clients = make(map[*client]struct{})
	for c := range clients {
		close(c.send)
	}
	h.mu.Unlock()
	return nil
}
