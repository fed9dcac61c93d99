package offlinesync

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=service.go -destination=../../../tests/mock/offlinesync/service.go -package=offlinesyncmock

import (
	"context"

	"event-sync-service/internal/domain/offline"
)

// Service is the offline store and sync API the HTTP layer depends on.
type Service interface {
	StoreOfflineRegistration(ctx context.Context, eventID string, participant offline.ParticipantData, payment *offline.PaymentData) string
	StoreOfflineMealScan(ctx context.Context, qrCode, mealSession, scannerID, scannerUserID string, result offline.ScanResult) string
	GetOfflineStats() Stats
	GetPendingRegistrations() []offline.Registration
	GetPendingMealScans() []offline.MealScan
	SyncOfflineData(ctx context.Context) SyncResult
	ForceSyncNow(ctx context.Context) (SyncResult, error)
	ClearSyncedData(ctx context.Context) int
	ExportOfflineData() (string, error)
	ImportOfflineData(ctx context.Context, raw string) error
	ResetSyncAttempts(ctx context.Context, ids ...string) int
	MaxRetries() int
}

var _ Service = (*Manager)(nil)
