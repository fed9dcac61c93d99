package offline

import (
	"time"

	"event-sync-service/internal/pkg/ptr"
)

type ParticipantData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Category  string `json:"category,omitempty"`
}

type PaymentData struct {
	ReceiptNumber string        `json:"receiptNumber,omitempty"`
	Amount        float64       `json:"amount,omitempty"`
	Status        PaymentStatus `json:"status,omitempty"`
}

// SyncState is shared by every offline record. Only the sync engine mutates it.
type SyncState struct {
	Synced          bool       `json:"synced"`
	SyncAttempts    int        `json:"syncAttempts"`
	LastSyncAttempt *time.Time `json:"lastSyncAttempt,omitempty"`
	SyncError       string     `json:"syncError,omitempty"`
}

// Eligible reports whether the record may take part in an automatic sync pass.
func (s *SyncState) Eligible(maxRetries int) bool {
	return !s.Synced && s.SyncAttempts < maxRetries
}

// Exhausted reports a pending record that automatic sync no longer retries.
func (s *SyncState) Exhausted(maxRetries int) bool {
	return !s.Synced && s.SyncAttempts >= maxRetries
}

func (s *SyncState) MarkSynced() {
	s.Synced = true
	s.SyncError = ""
}

func (s *SyncState) MarkFailed(at time.Time, reason string) {
	s.SyncAttempts++
	s.LastSyncAttempt = ptr.Of(at.UTC())
	s.SyncError = reason
}

func (s *SyncState) ResetAttempts() {
	s.SyncAttempts = 0
	s.LastSyncAttempt = nil
	s.SyncError = ""
}

type Registration struct {
	ID              string          `json:"id"`
	Timestamp       time.Time       `json:"timestamp"`
	EventID         string          `json:"eventId"`
	ParticipantData ParticipantData `json:"participantData"`
	PaymentData     *PaymentData    `json:"paymentData,omitempty"`
	QRCode          string          `json:"qrCode"`
	SyncState
}

func NewRegistration(id string, now time.Time, eventID string, participant ParticipantData, payment *PaymentData) *Registration {
	return &Registration{
		ID:              id,
		Timestamp:       now.UTC(),
		EventID:         eventID,
		ParticipantData: participant,
		PaymentData:     payment,
		QRCode:          PlaceholderQRPrefix + id,
	}
}

type ScanResult struct {
	Success         bool   `json:"success"`
	ParticipantName string `json:"participantName,omitempty"`
	Error           string `json:"error,omitempty"`
	IsDuplicate     bool   `json:"isDuplicate,omitempty"`
	ManualOverride  bool   `json:"manualOverride,omitempty"`
	OverrideReason  string `json:"overrideReason,omitempty"`
}

type MealScan struct {
	ID            string     `json:"id"`
	Timestamp     time.Time  `json:"timestamp"`
	QRCode        string     `json:"qrCode"`
	MealSession   string     `json:"mealSession"`
	ScannerID     string     `json:"scannerId"`
	ScannerUserID string     `json:"scannerUserId"`
	Result        ScanResult `json:"result"`
	SyncState
}

func NewMealScan(id string, now time.Time, qrCode, mealSession, scannerID, scannerUserID string, result ScanResult) *MealScan {
	return &MealScan{
		ID:            id,
		Timestamp:     now.UTC(),
		QRCode:        qrCode,
		MealSession:   mealSession,
		ScannerID:     scannerID,
		ScannerUserID: scannerUserID,
		Result:        result,
	}
}

func (s SyncState) clone() SyncState {
	if s.LastSyncAttempt != nil {
		s.LastSyncAttempt = ptr.Of(*s.LastSyncAttempt)
	}
	return s
}

// Clone returns a copy that shares no pointers with the stored record.
func (r *Registration) Clone() Registration {
	c := *r
	if r.PaymentData != nil {
		c.PaymentData = ptr.Of(*r.PaymentData)
	}
	c.SyncState = r.SyncState.clone()
	return c
}

func (s *MealScan) Clone() MealScan {
	c := *s
	c.SyncState = s.SyncState.clone()
	return c
}
