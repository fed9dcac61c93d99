//go:build unit

package notify_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"event-sync-service/internal/infra/notify"
	"event-sync-service/internal/usecase/shared"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.DiscardHandler)

func note(id string) shared.Notification {
	return shared.Notification{ID: id, Level: shared.NotificationInfo, Message: "msg " + id, Timestamp: time.Unix(0, 0).UTC()}
}

func ids(notes []shared.Notification) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}

func TestHubHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("newest first with limit", func(t *testing.T) {
		hub := notify.NewHub(5, discard)
		for i := 1; i <= 3; i++ {
			hub.Notify(ctx, note(fmt.Sprint(i)))
		}
		assert.Equal(t, []string{"3", "2", "1"}, ids(hub.Recent(0)))
		assert.Equal(t, []string{"3", "2"}, ids(hub.Recent(2)))
		assert.Equal(t, []string{"3", "2", "1"}, ids(hub.Recent(10)))
	})

	t.Run("ring keeps the latest entries", func(t *testing.T) {
		hub := notify.NewHub(3, discard)
		for i := 1; i <= 7; i++ {
			hub.Notify(ctx, note(fmt.Sprint(i)))
		}
		assert.Equal(t, []string{"7", "6", "5"}, ids(hub.Recent(0)))
	})

	t.Run("empty hub", func(t *testing.T) {
		assert.Empty(t, notify.NewHub(0, discard).Recent(5))
	})
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubWebsocket(t *testing.T) {
	hub := notify.NewHub(10, discard)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.ServeWS(w, r)
	}))
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	t.Run("notifications are streamed as events", func(t *testing.T) {
		hub.Notify(context.Background(), shared.Notification{ID: "n1", Level: shared.NotificationSuccess, Message: "Badge downloaded"})

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)

		var ev shared.Event
		require.NoError(t, json.Unmarshal(raw, &ev))
		assert.Equal(t, shared.EventNotification, ev.Type)
		assert.Equal(t, "n1", ev.Data["id"])
		assert.Equal(t, "Badge downloaded", ev.Data["message"])
	})

	t.Run("sync events are forwarded", func(t *testing.T) {
		hub.Publish(shared.Event{Type: shared.EventSyncCompleted, Data: map[string]any{"success": true}})

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Contains(t, string(raw), shared.EventSyncCompleted)
	})

	t.Run("close disconnects clients", func(t *testing.T) {
		require.NoError(t, hub.Close(context.Background()))
		assert.Zero(t, hub.ClientCount())

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, _, err := conn.ReadMessage()
		assert.Error(t, err)
	})

	t.Run("closed hub turns new clients away", func(t *testing.T) {
		late := dial(t, srv)
		require.NoError(t, late.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, _, err := late.ReadMessage()
		assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
	})
}
