package offlinesync

import (
	"context"
	"time"

	"event-sync-service/internal/domain/offline"
	"event-sync-service/internal/pkg/errs"
)

var (
	ErrOffline        = errs.New("cannot sync while offline")
	ErrSyncInProgress = errs.New("sync already in progress")
	ErrInvalidImport  = errs.New("invalid offline data import")
	ErrPersistFailed  = errs.New("failed to persist offline data")
)

const (
	DefaultStorageKey   = "offline_data"
	DefaultMaxRetries   = 3
	DefaultSyncInterval = 30 * time.Second
)

// RegistrationCreator pushes one offline registration to the remote API.
// A nil error means the remote write was confirmed. The returned QR code is
// the server-issued one, empty when the remote did not issue any.
type RegistrationCreator interface {
	CreateRegistration(ctx context.Context, reg offline.Registration) (string, error)
}

// MealAttendanceCreator pushes one offline meal scan to the remote API.
type MealAttendanceCreator interface {
	CreateMealAttendance(ctx context.Context, scan offline.MealScan) error
}

type Stats struct {
	IsOnline             bool      `json:"isOnline"`
	PendingRegistrations int       `json:"pendingRegistrations"`
	PendingScans         int       `json:"pendingScans"`
	TotalPending         int       `json:"totalPending"`
	ExhaustedRecords     int       `json:"exhaustedRecords"`
	LastSync             time.Time `json:"lastSync"`
	SyncInProgress       bool      `json:"syncInProgress"`
}

type SyncResult struct {
	Success             bool     `json:"success"`
	SyncedRegistrations int      `json:"syncedRegistrations"`
	SyncedScans         int      `json:"syncedScans"`
	Errors              []string `json:"errors"`
}

func rejected(reason error) SyncResult {
	return SyncResult{Success: false, Errors: []string{reason.Error()}}
}
