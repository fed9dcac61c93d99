package shared

import (
	"context"

	"event-sync-service/internal/pkg/errs"
)

var ErrKeyNotFound = errs.New("key not found")

// KeyValueStore is the durable local document store. Get returns
// ErrKeyNotFound for missing keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// NetworkStatusSource reports connectivity and delivers transitions only
// (the channel never repeats the current state).
type NetworkStatusSource interface {
	IsOnline() bool
	Subscribe() (<-chan bool, func())
}

// NetworkController is the manual override used by kiosks and tests.
type NetworkController interface {
	NetworkStatusSource
	SetOnline(online bool)
}
