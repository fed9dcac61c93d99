package artifact

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=service.go -destination=../../../tests/mock/artifact/service.go -package=artifactmock

import (
	"context"

	"event-sync-service/internal/domain/badge"
)

// Service is the generation facade the HTTP layer depends on.
type Service interface {
	Generate(ctx context.Context, registrationID string) (*badge.QRCodeResult, error)
	Regenerate(ctx context.Context, registrationID string) (*badge.QRCodeResult, error)
	Validate(ctx context.Context, qrCode string) (*badge.QRCodeValidationResult, error)
	BulkGenerate(ctx context.Context, registrationIDs []string) ([]badge.QRCodeResult, error)
	IsValidQRCodeFormat(code string) bool
	DownloadQRCode(ctx context.Context, base64Image, participantName string) (*Artifact, error)
	PrintQRCode(ctx context.Context, base64Image, participantName string) (*Artifact, error)
	CopyQRCodeToClipboard(ctx context.Context, base64Image string) error

	DownloadBadge(ctx context.Context, base64PDF, filename string) (*Artifact, error)
	PrintBadge(ctx context.Context, base64PDF, filename string) (*Artifact, error)
	PreviewBadge(ctx context.Context, base64PDF, filename string) (*Artifact, error)
	GenerateAndDownloadBadge(ctx context.Context, req BadgeRequest) (*Artifact, error)
	GenerateAndPrintBadge(ctx context.Context, req BadgeRequest) (*Artifact, error)
	GenerateAndConvertToPDF(ctx context.Context, req BadgeRequest) (*Artifact, error)
	BulkGenerateAndDownloadBadges(ctx context.Context, registrationIDs []string, eventName string) (*Artifact, error)
	RegenerateBadge(ctx context.Context, req BadgeRequest) (string, error)
	ValidateRegistrationForBadge(reg badge.Registration) badge.ValidationResult
}

var _ Service = (*Facade)(nil)
