package api

import (
	"log/slog"
	"net/http"

	"event-sync-service/internal/handler/httperr"
	"event-sync-service/internal/handler/middleware"
	"event-sync-service/internal/pkg/errs"
	"event-sync-service/internal/usecase/artifact"

	"github.com/gin-gonic/gin"
)

const stackLogLines = 12

// abortWithMappedError picks the status from the error's sentinel marks.
// Facade failures were already shown to the operator as notifications.
func abortWithMappedError(c *gin.Context, err error, msg string) {
	switch {
	case errs.Is(err, errs.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, err.Error())
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msg, nil)
	case errs.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, msg, err.Error())
	case errs.Is(err, errs.ErrUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, msg, err.Error())
	case errs.Is(err, artifact.ErrClipboardUnsupported):
		httperr.AbortWithError(c, http.StatusNotImplemented, err, "Clipboard not supported", nil)
	case errs.Is(err, artifact.ErrHandledFailure):
		httperr.AbortWithError(c, http.StatusBadGateway, err, msg, err.Error())
	default:
		middleware.LoggerFrom(c, slog.Default()).Error(msg,
			"error", err,
			"stack", errs.ExtractStackLines(err, stackLogLines))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}
