package response

import (
	"time"

	"event-sync-service/internal/domain/offline"
	"event-sync-service/internal/usecase/offlinesync"

	"github.com/jinzhu/copier"
)

type StoredResponse struct {
	ID string `json:"id"`
}

type RegistrationResponse struct {
	ID              string                  `json:"id"`
	Timestamp       time.Time               `json:"timestamp"`
	EventID         string                  `json:"eventId"`
	ParticipantData offline.ParticipantData `json:"participantData"`
	PaymentData     *offline.PaymentData    `json:"paymentData,omitempty"`
	QRCode          string                  `json:"qrCode"`
	Synced          bool                    `json:"synced"`
	SyncAttempts    int                     `json:"syncAttempts"`
	LastSyncAttempt *time.Time              `json:"lastSyncAttempt,omitempty"`
	SyncError       string                  `json:"syncError,omitempty"`
	RetryExhausted  bool                    `json:"retryExhausted"`
}

type MealScanResponse struct {
	ID              string             `json:"id"`
	Timestamp       time.Time          `json:"timestamp"`
	QRCode          string             `json:"qrCode"`
	MealSession     string             `json:"mealSession"`
	ScannerID       string             `json:"scannerId"`
	ScannerUserID   string             `json:"scannerUserId"`
	Result          offline.ScanResult `json:"result"`
	Synced          bool               `json:"synced"`
	SyncAttempts    int                `json:"syncAttempts"`
	LastSyncAttempt *time.Time         `json:"lastSyncAttempt,omitempty"`
	SyncError       string             `json:"syncError,omitempty"`
	RetryExhausted  bool               `json:"retryExhausted"`
}

// FromRegistrations flattens the embedded sync state into each response.
func FromRegistrations(regs []offline.Registration, maxRetries int) ([]RegistrationResponse, error) {
	res := make([]RegistrationResponse, 0, len(regs))
	if err := copier.Copy(&res, &regs); err != nil {
		return nil, err
	}
	for i := range regs {
		res[i].RetryExhausted = regs[i].Exhausted(maxRetries)
	}
	return res, nil
}

func FromMealScans(scans []offline.MealScan, maxRetries int) ([]MealScanResponse, error) {
	res := make([]MealScanResponse, 0, len(scans))
	if err := copier.Copy(&res, &scans); err != nil {
		return nil, err
	}
	for i := range scans {
		res[i].RetryExhausted = scans[i].Exhausted(maxRetries)
	}
	return res, nil
}

type ForceSyncResponse struct {
	offlinesync.SyncResult
	ResetRecords int `json:"resetRecords"`
}

type ClearResponse struct {
	Removed int `json:"removed"`
}

type ResetResponse struct {
	Reset int `json:"reset"`
}

type NetworkResponse struct {
	Online     bool `json:"online"`
	Overridden bool `json:"overridden"`
}
