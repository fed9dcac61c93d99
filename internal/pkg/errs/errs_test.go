//go:build unit

package errs_test

import (
	"testing"

	"event-sync-service/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errs.New("disk full"), "persist offline data")

	t.Run("message first, then the stack", func(t *testing.T) {
		lines := errs.ExtractStackLines(err, 0)
		require.Greater(t, len(lines), 1)
		assert.Equal(t, "persist offline data: disk full", lines[0])
	})

	t.Run("capped", func(t *testing.T) {
		assert.Len(t, errs.ExtractStackLines(err, 3), 3)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, errs.ExtractStackLines(nil, 3))
	})
}

func TestMarkAll(t *testing.T) {
	base := errs.New("remote timeout")
	err := errs.MarkAll(base, errs.ErrUnavailable, errs.ErrConflict)

	assert.True(t, errs.Is(err, base))
	assert.True(t, errs.Is(err, errs.ErrUnavailable))
	assert.True(t, errs.Is(err, errs.ErrConflict))
	assert.False(t, errs.Is(err, errs.ErrNotFound))
}
