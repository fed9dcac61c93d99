package remote

import (
	"context"

	"event-sync-service/internal/domain/badge"
)

const qrCodeFields = `qrCode base64Image qrCodeData { registrationId eventId participantName category timestamp checksum }`

const (
	generateQRCodeMutation      = `mutation GenerateQRCode($registrationId: ID!) { generateQRCode(registrationId: $registrationId) { ` + qrCodeFields + ` } }`
	regenerateQRCodeMutation    = `mutation RegenerateQRCode($registrationId: ID!) { regenerateQRCode(registrationId: $registrationId) { ` + qrCodeFields + ` } }`
	bulkGenerateQRCodesMutation = `mutation BulkGenerateQRCodes($registrationIds: [ID!]!) { bulkGenerateQRCodes(registrationIds: $registrationIds) { ` + qrCodeFields + ` } }`
	validateQRCodeQuery         = `query ValidateQRCode($qrCode: String!) { validateQRCode(qrCode: $qrCode) { isValid message registration { registrationId eventId participantName category timestamp checksum } } }`

	generateBadgeMutation      = `mutation GenerateBadge($registrationId: ID!, $format: BadgeFormat, $templateId: ID) { generateBadge(registrationId: $registrationId, format: $format, templateId: $templateId) }`
	regenerateBadgeMutation    = `mutation RegenerateBadge($registrationId: ID!, $format: BadgeFormat, $templateId: ID) { regenerateBadge(registrationId: $registrationId, format: $format, templateId: $templateId) }`
	generateBadgeSheetMutation = `mutation GenerateBadgeSheet($registrationIds: [ID!]!) { generateBadgeSheet(registrationIds: $registrationIds) }`
)

func (c *Client) GenerateQRCode(ctx context.Context, registrationID string) (*badge.QRCodeResult, error) {
	var out struct {
		Result *badge.QRCodeResult `json:"generateQRCode"`
	}
	if err := c.do(ctx, "generateQRCode", generateQRCodeMutation, map[string]any{"registrationId": registrationID}, &out); err != nil {
		return nil, err
	}
	if out.Result == nil {
		return nil, ErrEmptyResult
	}
	return out.Result, nil
}

func (c *Client) RegenerateQRCode(ctx context.Context, registrationID string) (*badge.QRCodeResult, error) {
	var out struct {
		Result *badge.QRCodeResult `json:"regenerateQRCode"`
	}
	if err := c.do(ctx, "regenerateQRCode", regenerateQRCodeMutation, map[string]any{"registrationId": registrationID}, &out); err != nil {
		return nil, err
	}
	if out.Result == nil {
		return nil, ErrEmptyResult
	}
	return out.Result, nil
}

func (c *Client) ValidateQRCode(ctx context.Context, qrCode string) (*badge.QRCodeValidationResult, error) {
	var out struct {
		Result *badge.QRCodeValidationResult `json:"validateQRCode"`
	}
	if err := c.do(ctx, "validateQRCode", validateQRCodeQuery, map[string]any{"qrCode": qrCode}, &out); err != nil {
		return nil, err
	}
	if out.Result == nil {
		return nil, ErrEmptyResult
	}
	return out.Result, nil
}

func (c *Client) BulkGenerateQRCodes(ctx context.Context, registrationIDs []string) ([]badge.QRCodeResult, error) {
	var out struct {
		Results []badge.QRCodeResult `json:"bulkGenerateQRCodes"`
	}
	if err := c.do(ctx, "bulkGenerateQRCodes", bulkGenerateQRCodesMutation, map[string]any{"registrationIds": registrationIDs}, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func badgeVars(registrationID string, format badge.Format, templateID string) map[string]any {
	vars := map[string]any{"registrationId": registrationID, "format": format}
	if templateID != "" {
		vars["templateId"] = templateID
	}
	return vars
}

func (c *Client) GenerateBadge(ctx context.Context, registrationID string, format badge.Format, templateID string) (string, error) {
	var out struct {
		PDF string `json:"generateBadge"`
	}
	if err := c.do(ctx, "generateBadge", generateBadgeMutation, badgeVars(registrationID, format, templateID), &out); err != nil {
		return "", err
	}
	if out.PDF == "" {
		return "", ErrEmptyResult
	}
	return out.PDF, nil
}

func (c *Client) RegenerateBadge(ctx context.Context, registrationID string, format badge.Format, templateID string) (string, error) {
	var out struct {
		PDF string `json:"regenerateBadge"`
	}
	if err := c.do(ctx, "regenerateBadge", regenerateBadgeMutation, badgeVars(registrationID, format, templateID), &out); err != nil {
		return "", err
	}
	if out.PDF == "" {
		return "", ErrEmptyResult
	}
	return out.PDF, nil
}

func (c *Client) GenerateBadgeSheet(ctx context.Context, registrationIDs []string) (string, error) {
	var out struct {
		PDF string `json:"generateBadgeSheet"`
	}
	if err := c.do(ctx, "generateBadgeSheet", generateBadgeSheetMutation, map[string]any{"registrationIds": registrationIDs}, &out); err != nil {
		return "", err
	}
	if out.PDF == "" {
		return "", ErrEmptyResult
	}
	return out.PDF, nil
}
