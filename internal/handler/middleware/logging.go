package middleware

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"event-sync-service/internal/handler/httperr"
	"event-sync-service/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ScannerIDHeader = "X-Scanner-ID"
	RequestIDHeader = "X-Request-ID"

	loggerKey = "request_logger"
)

type Logger struct {
	logger   *slog.Logger
	timezone *time.Location
}

func NewLogger(cfg config.LogConfig) *Logger {
	var logLevel slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return &Logger{logger: logger, timezone: timezone}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// RequestLogging tags each request with an id (taken from X-Request-ID when
// the kiosk sends one) and logs start and completion. Paths in quiet are
// logged at debug level only.
func RequestLogging(logger *slog.Logger, quiet ...string) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	quietPaths := make(map[string]struct{}, len(quiet))
	for _, p := range quiet {
		quietPaths[p] = struct{}{}
	}

	return func(c *gin.Context) {
		startTime := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(httperr.RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		attrs := []any{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		if scannerID := c.GetHeader(ScannerIDHeader); scannerID != "" {
			attrs = append(attrs, slog.String("scanner_id", scannerID))
		}
		reqLogger := logger.With(attrs...)
		c.Set(loggerKey, reqLogger)

		_, quiet := quietPaths[c.FullPath()]
		if !quiet {
			reqLogger.Info("Request started")
		}

		c.Next()

		statusCode := c.Writer.Status()
		done := []any{
			slog.Int("status_code", statusCode),
			slog.Duration("duration", time.Since(startTime)),
		}
		if size := c.Writer.Size(); size > 0 {
			done = append(done, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			done = append(done, slog.String("errors", c.Errors.String()))
		}

		switch {
		case statusCode >= 500:
			reqLogger.Error("Request completed", done...)
		case statusCode >= 400:
			reqLogger.Warn("Request completed", done...)
		case quiet:
			reqLogger.Debug("Request completed", done...)
		default:
			reqLogger.Info("Request completed", done...)
		}
	}
}

// LoggerFrom returns the request-scoped logger, or fallback outside a request.
func LoggerFrom(c *gin.Context, fallback *slog.Logger) *slog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(*slog.Logger); ok {
			return l
		}
	}
	return fallback
}
