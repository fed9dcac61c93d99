package request

import (
	"event-sync-service/internal/domain/badge"
	"event-sync-service/internal/usecase/artifact"
)

type RegistrationIDRequest struct {
	RegistrationID string `json:"registrationId" binding:"required"`
}

type QRCodeRequest struct {
	QRCode string `json:"qrCode" binding:"required"`
}

type BulkRegistrationsRequest struct {
	RegistrationIDs []string `json:"registrationIds" binding:"required,min=1,dive,required"`
}

type QRImageRequest struct {
	Base64Image     string `json:"base64Image" binding:"required"`
	ParticipantName string `json:"participantName" binding:"required"`
}

type ClipboardRequest struct {
	Base64Image string `json:"base64Image" binding:"required"`
}

// BadgePDFRequest names the file directly or through the participant and event.
type BadgePDFRequest struct {
	Base64PDF       string `json:"base64Pdf" binding:"required"`
	Filename        string `json:"filename" binding:"required_without=ParticipantName"`
	ParticipantName string `json:"participantName"`
	EventName       string `json:"eventName"`
}

type GenerateBadgeRequest struct {
	RegistrationID     string `json:"registrationId" binding:"required"`
	ParticipantName    string `json:"participantName" binding:"required"`
	EventName          string `json:"eventName" binding:"required"`
	EventDate          string `json:"eventDate"`
	EventVenue         string `json:"eventVenue"`
	Category           string `json:"category"`
	RegistrationNumber string `json:"registrationNumber"`
	Format             string `json:"format" binding:"omitempty,oneof=STANDARD COMPACT LARGE"`
	TemplateID         string `json:"templateId"`
}

func (r *GenerateBadgeRequest) ToUseCase() artifact.BadgeRequest {
	return artifact.BadgeRequest{
		RegistrationID: r.RegistrationID,
		Badge: badge.Data{
			ParticipantName:    r.ParticipantName,
			EventName:          r.EventName,
			EventDate:          r.EventDate,
			EventVenue:         r.EventVenue,
			Category:           r.Category,
			RegistrationNumber: r.RegistrationNumber,
		},
		Format:     badge.Format(r.Format),
		TemplateID: r.TemplateID,
	}
}

type BulkBadgeRequest struct {
	RegistrationIDs []string `json:"registrationIds" binding:"required,min=1,dive,required"`
	EventName       string   `json:"eventName" binding:"required"`
}

type FilenameQuery struct {
	ParticipantName string `form:"participantName"`
	EventName       string `form:"eventName" binding:"required"`
	Count           int    `form:"count" binding:"omitempty,min=1"`
	Date            string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

type CategoryColorQuery struct {
	Category string `form:"category"`
}
