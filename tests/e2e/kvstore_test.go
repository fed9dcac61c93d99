//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"event-sync-service/internal/infra/kvstore"
	"event-sync-service/tests/common/kvtest"

	"github.com/stretchr/testify/require"
)

func TestPostgresStoreContract(t *testing.T) {
	dbConfig := prepareDatabase(t, startPostgres(t))

	store, err := kvstore.ConnectPostgres(context.Background(), dbConfig.BuildDSN(), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(store.Close)

	// a second migration must be harmless
	require.NoError(t, store.Migrate(context.Background()))

	kvtest.RunContract(t, store)
}

func TestRedisStoreContract(t *testing.T) {
	info := startRedis(t)
	url := fmt.Sprintf("redis://%s:%s/0", info.Host, info.Port.Port())

	store, err := kvstore.ConnectRedis(context.Background(), url, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	kvtest.RunContract(t, store)
}

func TestRedisStoreUnreachable(t *testing.T) {
	_, err := kvstore.ConnectRedis(context.Background(), "redis://127.0.0.1:1/0", slog.New(slog.DiscardHandler))
	require.Error(t, err)
}
