//go:build unit

package middleware_test

import (
	"errors"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"event-sync-service/internal/handler/httperr"
	"event-sync-service/internal/handler/middleware"
	"event-sync-service/internal/pkg/config"
	"event-sync-service/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.DiscardHandler)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery(discard))
	engine.Use(middleware.RequestLogging(discard, "/health"))
	engine.Use(middleware.ErrorHandler())
	return engine
}

func newRecorder(engine *gin.Engine, req *http.Request) *nethttptest.ResponseRecorder {
	rec := nethttptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRequestLogging(t *testing.T) {
	engine := newEngine()
	var seen string
	engine.GET("/ping", func(c *gin.Context) {
		seen = c.GetString(httperr.RequestIDKey)
		assert.NotNil(t, middleware.LoggerFrom(c, nil))
		c.Status(http.StatusNoContent)
	})

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/ping", nil, "scanner-01")
		id := httptest.AssertRequestID(t, rec)
		assert.Equal(t, id, seen)
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "/ping", nil)
		require.NoError(t, err)
		req.Header.Set(middleware.RequestIDHeader, "kiosk-42")
		rec := newRecorder(engine, req)
		assert.Equal(t, "kiosk-42", rec.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "kiosk-42", seen)
	})
}

func TestLoggerFromOutsideRequest(t *testing.T) {
	c, _ := gin.CreateTestContext(nethttptest.NewRecorder())
	assert.Same(t, discard, middleware.LoggerFrom(c, discard))
}

func TestCustomRecovery(t *testing.T) {
	engine := newEngine()
	engine.GET("/panic", func(c *gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/panic", nil, "")
	resp := httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.NotEmpty(t, resp.RequestID)
}

func TestErrorHandler(t *testing.T) {
	engine := newEngine()
	engine.GET("/public", func(c *gin.Context) {
		// attached but not written, as when a handler returns early
		resp := httperr.New(c, http.StatusConflict, "Sync in progress", nil)
		_ = c.Error(&gin.Error{Err: errors.New("busy"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	engine.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("hidden"))
	})
	engine.GET("/status", func(c *gin.Context) {
		c.Status(http.StatusAccepted)
	})

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/public", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Sync in progress")

	rec = httptest.PerformRequest(t, engine, http.MethodGet, "/private", nil, "")
	resp := httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.NotContains(t, rec.Body.String(), "hidden")
	assert.NotEmpty(t, resp.RequestID)

	rec = httptest.PerformRequest(t, engine, http.MethodGet, "/status", nil, "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestAbortWithErrorAttachesPublicError(t *testing.T) {
	engine := newEngine()
	var attached []*gin.Error
	engine.Use(func(c *gin.Context) {
		c.Next()
		attached = c.Errors.ByType(gin.ErrorTypePublic)
	})
	engine.GET("/busy", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("sync running"), "Sync in progress", nil)
	})

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/busy", nil, "")
	resp := httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Sync in progress")

	require.Len(t, attached, 1)
	assert.EqualError(t, attached[0].Err, "sync running")
	meta, ok := attached[0].Meta.(httperr.Response)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, meta.Status)
	assert.Equal(t, resp.RequestID, meta.RequestID)
}

func TestMaxBodySize(t *testing.T) {
	engine := newEngine()
	engine.POST("/upload", middleware.MaxBodySize(8), func(c *gin.Context) {
		if _, err := c.GetRawData(); err != nil {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Body too large", nil)
			return
		}
		c.Status(http.StatusOK)
	})

	rec := httptest.PerformRawRequest(t, engine, http.MethodPost, "/upload", []byte("tiny"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.PerformRawRequest(t, engine, http.MethodPost, "/upload", []byte(strings.Repeat("x", 64)))
	httptest.AssertErrorResponse(t, rec, http.StatusRequestEntityTooLarge, "Body too large")
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins: []string{"http://kiosk.local"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       time.Hour,
	}, discard))
	engine.POST("/api/offline/meal-scans", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req, err := http.NewRequest(http.MethodOptions, "/api/offline/meal-scans", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://kiosk.local")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "X-Scanner-ID")

	rec := newRecorder(engine, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers")), "x-scanner-id")
}
