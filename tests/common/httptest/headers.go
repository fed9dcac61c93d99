//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertAttachment checks the response is offered as a download named filename.
func AssertAttachment(t *testing.T, w *httptest.ResponseRecorder, filename, contentType string) {
	t.Helper()
	assert.Equal(t, `attachment; filename="`+filename+`"`, w.Header().Get("Content-Disposition"))
	if contentType != "" {
		assert.Contains(t, w.Header().Get("Content-Type"), contentType)
	}
}

func AssertRequestID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	id := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, id, "missing X-Request-ID")
	return id
}
