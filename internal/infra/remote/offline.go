package remote

import (
	"context"

	"event-sync-service/internal/domain/offline"
	"event-sync-service/internal/pkg/errs"
)

const createRegistrationMutation = `mutation CreateRegistration($input: CreateRegistrationInput!) {
  createRegistration(input: $input) { id qrCode }
}`

const createMealAttendanceMutation = `mutation CreateMealAttendance($input: CreateMealAttendanceInput!) {
  createMealAttendance(input: $input) { id }
}`

var errNotConfirmed = errs.New("remote did not confirm the write")

func registrationInput(reg offline.Registration) map[string]any {
	input := map[string]any{
		"offlineId": reg.ID,
		"eventId":   reg.EventID,
		"firstName": reg.ParticipantData.FirstName,
		"lastName":  reg.ParticipantData.LastName,
		"email":     reg.ParticipantData.Email,
		"phone":     reg.ParticipantData.Phone,
		"address":   reg.ParticipantData.Address,
		"category":  reg.ParticipantData.Category,
		"createdAt": reg.Timestamp,
	}
	if p := reg.PaymentData; p != nil {
		input["payment"] = map[string]any{
			"receiptNumber": p.ReceiptNumber,
			"amount":        p.Amount,
			"status":        p.Status,
		}
	}
	return input
}

// CreateRegistration returns the QR code the server issued for the
// registration, which replaces the local placeholder.
func (c *Client) CreateRegistration(ctx context.Context, reg offline.Registration) (string, error) {
	var out struct {
		CreateRegistration *struct {
			ID     string `json:"id"`
			QRCode string `json:"qrCode"`
		} `json:"createRegistration"`
	}
	if err := c.do(ctx, "createRegistration", createRegistrationMutation,
		map[string]any{"input": registrationInput(reg)}, &out); err != nil {
		return "", err
	}
	if out.CreateRegistration == nil || out.CreateRegistration.ID == "" {
		return "", errNotConfirmed
	}
	return out.CreateRegistration.QRCode, nil
}

func (c *Client) CreateMealAttendance(ctx context.Context, scan offline.MealScan) error {
	input := map[string]any{
		"offlineId":      scan.ID,
		"qrCode":         scan.QRCode,
		"mealSessionId":  scan.MealSession,
		"scannerId":      scan.ScannerID,
		"scannerUserId":  scan.ScannerUserID,
		"scannedAt":      scan.Timestamp,
		"manualOverride": scan.Result.ManualOverride,
		"overrideReason": scan.Result.OverrideReason,
	}
	var out struct {
		CreateMealAttendance *struct {
			ID string `json:"id"`
		} `json:"createMealAttendance"`
	}
	if err := c.do(ctx, "createMealAttendance", createMealAttendanceMutation,
		map[string]any{"input": input}, &out); err != nil {
		return err
	}
	if out.CreateMealAttendance == nil || out.CreateMealAttendance.ID == "" {
		return errNotConfirmed
	}
	return nil
}
