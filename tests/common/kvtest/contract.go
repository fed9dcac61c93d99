//go:build unit || e2e

// Package kvtest holds the behaviour every shared.KeyValueStore backend must share.
package kvtest

import (
	"context"
	"strings"
	"testing"

	"event-sync-service/internal/infra"
	"event-sync-service/internal/pkg/errs"
	"event-sync-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunContract exercises store with keys unique to this run, so backends
// shared between tests can be passed in.
func RunContract(t *testing.T, store shared.KeyValueStore) {
	t.Helper()
	ctx := context.Background()
	prefix := "kvtest_" + uuid.NewString() + "_"

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, prefix+"missing")
		require.Error(t, err)
		assert.True(t, errs.Is(err, shared.ErrKeyNotFound), "got %v", err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("set then get", func(t *testing.T) {
		key := prefix + "doc"
		require.NoError(t, store.Set(ctx, key, `{"registrations":[]}`))

		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, `{"registrations":[]}`, got)
	})

	t.Run("set overwrites", func(t *testing.T) {
		key := prefix + "overwrite"
		require.NoError(t, store.Set(ctx, key, "first"))
		require.NoError(t, store.Set(ctx, key, "second"))

		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("large unicode value", func(t *testing.T) {
		key := prefix + "large"
		value := strings.Repeat("Zoë Ünïcødé 東京 ", 20000)
		require.NoError(t, store.Set(ctx, key, value))

		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, value, got)
	})

	t.Run("empty value is stored", func(t *testing.T) {
		key := prefix + "empty"
		require.NoError(t, store.Set(ctx, key, ""))

		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("remove", func(t *testing.T) {
		key := prefix + "remove"
		require.NoError(t, store.Set(ctx, key, "value"))
		require.NoError(t, store.Remove(ctx, key))

		_, err := store.Get(ctx, key)
		assert.True(t, errs.Is(err, shared.ErrKeyNotFound))

		// removing a missing key is not an error
		require.NoError(t, store.Remove(ctx, key))
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, prefix+"a", "A"))
		require.NoError(t, store.Set(ctx, prefix+"b", "B"))
		require.NoError(t, store.Remove(ctx, prefix+"a"))

		got, err := store.Get(ctx, prefix+"b")
		require.NoError(t, err)
		assert.Equal(t, "B", got)
	})
}
