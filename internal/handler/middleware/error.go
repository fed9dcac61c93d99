package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"event-sync-service/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors attached by handlers that returned without
// writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if len(c.Errors) == 0 {
			if status := c.Writer.Status(); status != http.StatusOK {
				c.Status(status)
				c.Writer.WriteHeaderNow()
			}
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.New(c, http.StatusInternalServerError, "Internal server error", nil))
	}
}

// CustomRecovery turns a handler panic into a 500 and logs the stack with
// the request id.
func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("recovered from panic",
					"error", fmt.Sprint(rec),
					"path", c.Request.URL.Path,
					"request_id", c.GetString(httperr.RequestIDKey),
					"stack", string(debug.Stack()))

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.New(c, http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}

// MaxBodySize rejects request bodies above limit bytes once the handler reads past it.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	}
}
