package request

import (
	"event-sync-service/internal/domain/offline"
)

type ParticipantRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"omitempty,max=30"`
	Address   string `json:"address" binding:"omitempty,max=255"`
	Category  string `json:"category" binding:"omitempty,max=50"`
}

type PaymentRequest struct {
	ReceiptNumber string  `json:"receiptNumber" binding:"omitempty,max=100"`
	Amount        float64 `json:"amount" binding:"min=0"`
	Status        string  `json:"status" binding:"omitempty,oneof=PENDING APPROVED DECLINED"`
}

type StoreRegistrationRequest struct {
	EventID     string             `json:"eventId" binding:"required"`
	Participant ParticipantRequest `json:"participantData" binding:"required"`
	Payment     *PaymentRequest    `json:"paymentData"`
}

func (r *StoreRegistrationRequest) ToDomain() (offline.ParticipantData, *offline.PaymentData) {
	participant := offline.ParticipantData{
		FirstName: r.Participant.FirstName,
		LastName:  r.Participant.LastName,
		Email:     r.Participant.Email,
		Phone:     r.Participant.Phone,
		Address:   r.Participant.Address,
		Category:  r.Participant.Category,
	}
	if r.Payment == nil {
		return participant, nil
	}
	return participant, &offline.PaymentData{
		ReceiptNumber: r.Payment.ReceiptNumber,
		Amount:        r.Payment.Amount,
		Status:        offline.PaymentStatus(r.Payment.Status),
	}
}

type ScanResultRequest struct {
	Success         bool   `json:"success"`
	ParticipantName string `json:"participantName"`
	Error           string `json:"error"`
	IsDuplicate     bool   `json:"isDuplicate"`
	ManualOverride  bool   `json:"manualOverride"`
	OverrideReason  string `json:"overrideReason" binding:"required_if=ManualOverride true"`
}

type StoreMealScanRequest struct {
	QRCode        string            `json:"qrCode" binding:"required"`
	MealSession   string            `json:"mealSession" binding:"required"`
	ScannerID     string            `json:"scannerId" binding:"required"`
	ScannerUserID string            `json:"scannerUserId" binding:"required"`
	Result        ScanResultRequest `json:"result"`
}

func (r *StoreMealScanRequest) ToDomain() offline.ScanResult {
	return offline.ScanResult{
		Success:         r.Result.Success,
		ParticipantName: r.Result.ParticipantName,
		Error:           r.Result.Error,
		IsDuplicate:     r.Result.IsDuplicate,
		ManualOverride:  r.Result.ManualOverride,
		OverrideReason:  r.Result.OverrideReason,
	}
}

// ResetRetriesRequest resets every exhausted record when IDs is empty.
type ResetRetriesRequest struct {
	IDs []string `json:"ids" binding:"omitempty,dive,required"`
}

// SetNetworkRequest pins the network state; a null Online resumes probing.
type SetNetworkRequest struct {
	Online *bool `json:"online"`
}
