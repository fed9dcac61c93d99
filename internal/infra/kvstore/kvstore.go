// Package kvstore implements shared.KeyValueStore on the supported backends.
// Every backend keeps one string value per key.
package kvstore

import (
	"log/slog"

	"event-sync-service/internal/infra"
	"event-sync-service/internal/usecase/shared"
)

func notFound(logger *slog.Logger, key string) error {
	return infra.WrapErr(logger, infra.KindNotFound, "key "+key+" not found", shared.ErrKeyNotFound)
}

func failure(logger *slog.Logger, msg string, err error) error {
	return infra.WrapErr(logger, infra.KindStoreFailure, msg, err)
}
