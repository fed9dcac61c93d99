package artifact

import (
	"context"
	"fmt"

	"event-sync-service/internal/domain/badge"
	"event-sync-service/internal/pkg/errs"
	"event-sync-service/internal/pkg/ptr"
	"event-sync-service/internal/usecase/shared"
)

// BadgeRequest names a badge to generate and the labels its filename uses.
type BadgeRequest struct {
	RegistrationID string
	Badge          badge.Data
	Format         badge.Format
	TemplateID     string
}

func (r BadgeRequest) format() badge.Format {
	if r.Format == "" {
		return badge.FormatStandard
	}
	return r.Format
}

func (f *Facade) pdfBlob(name, base64PDF string) (Blob, error) {
	data, err := decodeBase64(base64PDF)
	if err != nil {
		return Blob{}, err
	}
	return Blob{Name: name, MIME: MIMEPDF, Data: data}, nil
}

func (f *Facade) DownloadBadge(ctx context.Context, base64PDF, filename string) (*Artifact, error) {
	blob, err := f.pdfBlob(filename, base64PDF)
	if err != nil {
		return nil, f.fail(ctx, "", "Failed to download badge", err)
	}
	art, err := f.store(ctx, blob, f.sink.Download)
	if err != nil {
		return nil, f.fail(ctx, "", "Failed to download badge", err)
	}
	f.notify(ctx, "", shared.NotificationSuccess, "Badge downloaded")
	return art, nil
}

func (f *Facade) PrintBadge(ctx context.Context, base64PDF, filename string) (*Artifact, error) {
	blob, err := f.pdfBlob(filename, base64PDF)
	if err != nil {
		return nil, f.fail(ctx, "", "Failed to print badge", err)
	}
	art, err := f.store(ctx, blob, f.sink.Print)
	if err != nil {
		return nil, f.fail(ctx, "", "Failed to print badge", err)
	}
	f.notify(ctx, "", shared.NotificationSuccess, "Badge sent to printer")
	return art, nil
}

func (f *Facade) PreviewBadge(ctx context.Context, base64PDF, filename string) (*Artifact, error) {
	blob, err := f.pdfBlob(filename, base64PDF)
	if err != nil {
		return nil, f.fail(ctx, "", "Failed to preview badge", err)
	}
	art, err := f.store(ctx, blob, f.sink.ObjectURL)
	if err != nil {
		return nil, f.fail(ctx, "", "Failed to preview badge", err)
	}
	return art, nil
}

func (f *Facade) GenerateAndDownloadBadge(ctx context.Context, req BadgeRequest) (*Artifact, error) {
	return f.generateBadgeThen(ctx, req, "Badge downloaded successfully", f.sink.Download)
}

func (f *Facade) GenerateAndPrintBadge(ctx context.Context, req BadgeRequest) (*Artifact, error) {
	return f.generateBadgeThen(ctx, req, "Badge sent to printer", f.sink.Print)
}

// GenerateAndConvertToPDF returns the generated badge as a viewable PDF.
func (f *Facade) GenerateAndConvertToPDF(ctx context.Context, req BadgeRequest) (*Artifact, error) {
	return f.generateBadgeThen(ctx, req, "Badge PDF ready", f.sink.ObjectURL)
}

func (f *Facade) generateBadgeThen(ctx context.Context, req BadgeRequest, done string, write func(context.Context, Blob) (string, error)) (*Artifact, error) {
	id := f.startLoading(ctx, "Generating badge...")

	pdf, err := f.badges.GenerateBadge(ctx, req.RegistrationID, req.format(), req.TemplateID)
	if err != nil {
		return nil, f.fail(ctx, id, "Failed to generate badge", err)
	}
	blob, err := f.pdfBlob(req.Badge.Filename(f.clock.Now().UTC()), pdf)
	if err != nil {
		return nil, f.fail(ctx, id, "Failed to generate badge", err)
	}
	art, err := f.store(ctx, blob, write)
	if err != nil {
		return nil, f.fail(ctx, id, "Failed to generate badge", err)
	}
	art.Badge = ptr.Of(req.Badge.WithCategoryColor())

	f.notify(ctx, id, shared.NotificationSuccess, done)
	return art, nil
}

func (f *Facade) BulkGenerateAndDownloadBadges(ctx context.Context, registrationIDs []string, eventName string) (*Artifact, error) {
	id := f.startLoading(ctx, fmt.Sprintf("Generating %d badges...", len(registrationIDs)))
	if len(registrationIDs) == 0 {
		return nil, f.fail(ctx, id, "Failed to generate badges", errs.Mark(ErrNoRegistrations, errs.ErrInvalidInput))
	}

	pdf, err := f.badges.GenerateBadgeSheet(ctx, registrationIDs)
	if err != nil {
		return nil, f.fail(ctx, id, "Failed to generate badges", err)
	}
	name := badge.GenerateBadgeSheetFilename(eventName, len(registrationIDs), f.clock.Now().UTC())
	blob, err := f.pdfBlob(name, pdf)
	if err != nil {
		return nil, f.fail(ctx, id, "Failed to generate badges", err)
	}
	art, err := f.store(ctx, blob, f.sink.Download)
	if err != nil {
		return nil, f.fail(ctx, id, "Failed to generate badges", err)
	}

	f.notify(ctx, id, shared.NotificationSuccess, fmt.Sprintf("%d badges downloaded successfully", len(registrationIDs)))
	return art, nil
}

// RegenerateBadge asks the generator for a fresh badge without any local side effect.
func (f *Facade) RegenerateBadge(ctx context.Context, req BadgeRequest) (string, error) {
	pdf, err := f.badges.RegenerateBadge(ctx, req.RegistrationID, req.format(), req.TemplateID)
	if err != nil {
		return "", f.fail(ctx, "", "Failed to regenerate badge", err)
	}
	f.notify(ctx, "", shared.NotificationSuccess, "Badge regenerated successfully")
	return pdf, nil
}

func (f *Facade) ValidateRegistrationForBadge(reg badge.Registration) badge.ValidationResult {
	return badge.ValidateRegistrationForBadge(reg)
}
