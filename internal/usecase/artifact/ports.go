package artifact

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=ports.go -destination=../../../tests/mock/artifact/ports.go -package=artifactmock

import (
	"context"

	"event-sync-service/internal/domain/badge"
	"event-sync-service/internal/pkg/errs"
)

var (
	// ErrHandledFailure marks an error the operator was already notified about.
	// Callers must not retry or re-report it.
	ErrHandledFailure       = errs.New("failure already reported to the operator")
	ErrClipboardUnsupported = errs.New("clipboard is not supported on this platform")
	ErrInvalidPayload       = errs.New("invalid base64 payload")
	ErrNoRegistrations      = errs.New("no registrations given")
)

const (
	MIMEPNG  = "image/png"
	MIMEPDF  = "application/pdf"
	MIMEHTML = "text/html; charset=utf-8"
)

type QRCodeGenerator interface {
	GenerateQRCode(ctx context.Context, registrationID string) (*badge.QRCodeResult, error)
	RegenerateQRCode(ctx context.Context, registrationID string) (*badge.QRCodeResult, error)
	ValidateQRCode(ctx context.Context, qrCode string) (*badge.QRCodeValidationResult, error)
	BulkGenerateQRCodes(ctx context.Context, registrationIDs []string) ([]badge.QRCodeResult, error)
}

// BadgeGenerator returns badges as base64-encoded PDF documents.
type BadgeGenerator interface {
	GenerateBadge(ctx context.Context, registrationID string, format badge.Format, templateID string) (string, error)
	GenerateBadgeSheet(ctx context.Context, registrationIDs []string) (string, error)
	RegenerateBadge(ctx context.Context, registrationID string, format badge.Format, templateID string) (string, error)
}

type Blob struct {
	Name string
	MIME string
	Data []byte
}

// FileSink turns a blob into a user-visible effect and returns the URL the
// result can be fetched from.
type FileSink interface {
	Download(ctx context.Context, blob Blob) (string, error)
	Print(ctx context.Context, blob Blob) (string, error)
	ObjectURL(ctx context.Context, blob Blob) (string, error)
}

type Clipboard interface {
	WritePNG(ctx context.Context, data []byte) error
}

// Artifact describes a blob after the sink handled it.
// Badge is set for generated badges.
type Artifact struct {
	Name  string      `json:"name"`
	MIME  string      `json:"mime"`
	URL   string      `json:"url"`
	Size  int         `json:"size"`
	Badge *badge.Data `json:"badge,omitempty"`
}
