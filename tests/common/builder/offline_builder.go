//go:build unit || e2e

package builder

import (
	"time"

	"event-sync-service/internal/domain/offline"
	reqdto "event-sync-service/internal/handler/dto/request"
)

type RegistrationBuilder struct {
	ID          string
	EventID     string
	Participant offline.ParticipantData
	Payment     *offline.PaymentData
	Timestamp   time.Time
	Synced      bool
	Attempts    int
}

func NewRegistrationBuilder() *RegistrationBuilder {
	return &RegistrationBuilder{
		ID:      "offline_reg_1700000000000_abc123def",
		EventID: "evt-1",
		Participant: offline.ParticipantData{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Category:  "VIP",
		},
		Payment: &offline.PaymentData{
			ReceiptNumber: "R-001",
			Amount:        120,
			Status:        offline.PaymentApproved,
		},
		Timestamp: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (r *RegistrationBuilder) With(mutate func(*RegistrationBuilder)) *RegistrationBuilder {
	mutate(r)
	return r
}

func (r *RegistrationBuilder) BuildDomain() *offline.Registration {
	reg := offline.NewRegistration(r.ID, r.Timestamp, r.EventID, r.Participant, r.Payment)
	reg.Synced = r.Synced
	reg.SyncAttempts = r.Attempts
	return reg
}

func (r *RegistrationBuilder) BuildRequestDTO() reqdto.StoreRegistrationRequest {
	req := reqdto.StoreRegistrationRequest{
		EventID: r.EventID,
		Participant: reqdto.ParticipantRequest{
			FirstName: r.Participant.FirstName,
			LastName:  r.Participant.LastName,
			Email:     r.Participant.Email,
			Phone:     r.Participant.Phone,
			Address:   r.Participant.Address,
			Category:  r.Participant.Category,
		},
	}
	if r.Payment != nil {
		req.Payment = &reqdto.PaymentRequest{
			ReceiptNumber: r.Payment.ReceiptNumber,
			Amount:        r.Payment.Amount,
			Status:        r.Payment.Status.String(),
		}
	}
	return req
}

type MealScanBuilder struct {
	ID            string
	QRCode        string
	MealSession   string
	ScannerID     string
	ScannerUserID string
	Result        offline.ScanResult
	Timestamp     time.Time
	Synced        bool
	Attempts      int
}

func NewMealScanBuilder() *MealScanBuilder {
	return &MealScanBuilder{
		ID:            "offline_scan_1700000000000_xyz789ghi",
		QRCode:        "a1b2c3:d4e5f6",
		MealSession:   "lunch-day1",
		ScannerID:     "scanner-01",
		ScannerUserID: "staff-7",
		Result:        offline.ScanResult{Success: true, ParticipantName: "Ada Lovelace"},
		Timestamp:     time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC),
	}
}

func (m *MealScanBuilder) With(mutate func(*MealScanBuilder)) *MealScanBuilder {
	mutate(m)
	return m
}

func (m *MealScanBuilder) BuildDomain() *offline.MealScan {
	scan := offline.NewMealScan(m.ID, m.Timestamp, m.QRCode, m.MealSession, m.ScannerID, m.ScannerUserID, m.Result)
	scan.Synced = m.Synced
	scan.SyncAttempts = m.Attempts
	return scan
}

func (m *MealScanBuilder) BuildRequestDTO() reqdto.StoreMealScanRequest {
	return reqdto.StoreMealScanRequest{
		QRCode:        m.QRCode,
		MealSession:   m.MealSession,
		ScannerID:     m.ScannerID,
		ScannerUserID: m.ScannerUserID,
		Result: reqdto.ScanResultRequest{
			Success:         m.Result.Success,
			ParticipantName: m.Result.ParticipantName,
			Error:           m.Result.Error,
			IsDuplicate:     m.Result.IsDuplicate,
			ManualOverride:  m.Result.ManualOverride,
			OverrideReason:  m.Result.OverrideReason,
		},
	}
}
