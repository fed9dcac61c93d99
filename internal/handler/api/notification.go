package api

import (
	"net/http"
	"strconv"

	"event-sync-service/internal/handler/httperr"
	"event-sync-service/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type NotificationFeed interface {
	Recent(limit int) []shared.Notification
	ServeWS(w http.ResponseWriter, r *http.Request) error
}

type NotificationHandler struct {
	feed NotificationFeed
}

func NewNotificationHandler(feed NotificationFeed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// @Summary Recent notifications
// @Tags notifications
// @Produce json
// @Param limit query int false "Maximum entries, newest first"
// @Success 200 {array} shared.Notification
// @Router /api/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			if err == nil {
				err = strconv.ErrRange
			}
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, h.feed.Recent(limit))
}

// @Summary Notification and sync event stream
// @Description Websocket; every message is a JSON event with type, data and timestamp
// @Tags notifications
// @Router /api/notifications/ws [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	if err := h.feed.ServeWS(c.Writer, c.Request); err != nil {
		// the upgrader already wrote the HTTP error
		_ = c.Error(err)
		c.Abort()
	}
}
