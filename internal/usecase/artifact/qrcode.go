package artifact

import (
	"context"

	"event-sync-service/internal/domain/badge"
	"event-sync-service/internal/pkg/errs"
	"event-sync-service/internal/usecase/shared"
)

func (f *Facade) Generate(ctx context.Context, registrationID string) (*badge.QRCodeResult, error) {
	res, err := f.qr.GenerateQRCode(ctx, registrationID)
	if err != nil {
		return nil, f.fail(ctx, "", "Failed to generate QR code", err)
	}
	f.notify(ctx, "", shared.NotificationSuccess, "QR code generated successfully")
	return res, nil
}

func (f *Facade) Regenerate(ctx context.Context, registrationID string) (*badge.QRCodeResult, error) {
	res, err := f.qr.RegenerateQRCode(ctx, registrationID)
	if err != nil {
		return nil, f.fail(ctx, "", "Failed to regenerate QR code", err)
	}
	f.notify(ctx, "", shared.NotificationSuccess, "QR code regenerated successfully")
	return res, nil
}

func (f *Facade) Validate(ctx context.Context, qrCode string) (*badge.QRCodeValidationResult, error) {
	res, err := f.qr.ValidateQRCode(ctx, qrCode)
	if err != nil {
		return nil, f.fail(ctx, "", "Failed to validate QR code", err)
	}
	return res, nil
}

func (f *Facade) BulkGenerate(ctx context.Context, registrationIDs []string) ([]badge.QRCodeResult, error) {
	if len(registrationIDs) == 0 {
		return nil, f.fail(ctx, "", "Failed to generate QR codes", errs.Mark(ErrNoRegistrations, errs.ErrInvalidInput))
	}
	res, err := f.qr.BulkGenerateQRCodes(ctx, registrationIDs)
	if err != nil {
		return nil, f.fail(ctx, "", "Failed to generate QR codes", err)
	}
	f.notify(ctx, "", shared.NotificationSuccess, "QR codes generated successfully")
	return res, nil
}

// IsValidQRCodeFormat is a syntactic check only.
func (f *Facade) IsValidQRCodeFormat(code string) bool {
	return badge.IsValidQRCodeFormat(code)
}

func (f *Facade) DownloadQRCode(ctx context.Context, base64Image, participantName string) (*Artifact, error) {
	data, err := decodeBase64(base64Image)
	if err != nil {
		return nil, f.fail(ctx, "", "Failed to download QR code", err)
	}
	art, err := f.store(ctx, Blob{Name: badge.QRCodeFilename(participantName), MIME: MIMEPNG, Data: data}, f.sink.Download)
	if err != nil {
		return nil, f.fail(ctx, "", "Failed to download QR code", err)
	}
	f.notify(ctx, "", shared.NotificationSuccess, "QR code downloaded")
	return art, nil
}

// PrintQRCode spools a print page holding only the QR image and the
// participant name.
func (f *Facade) PrintQRCode(ctx context.Context, base64Image, participantName string) (*Artifact, error) {
	data, err := decodeBase64(base64Image)
	if err != nil {
		return nil, f.fail(ctx, "", "Failed to print QR code", err)
	}
	page, err := renderQRPrintPage(data, participantName, f.opts.QRPrintSize)
	if err != nil {
		return nil, f.fail(ctx, "", "Failed to print QR code", err)
	}
	name := badge.SanitizeFilenamePart(participantName) + "_qr_code_print.html"
	art, err := f.store(ctx, Blob{Name: name, MIME: MIMEHTML, Data: page}, f.sink.Print)
	if err != nil {
		return nil, f.fail(ctx, "", "Failed to print QR code", err)
	}
	f.notify(ctx, "", shared.NotificationSuccess, "QR code sent to printer")
	return art, nil
}

func (f *Facade) CopyQRCodeToClipboard(ctx context.Context, base64Image string) error {
	data, err := decodeBase64(base64Image)
	if err != nil {
		return f.fail(ctx, "", "Failed to copy QR code", err)
	}
	if f.clipboard == nil {
		return f.fail(ctx, "", "Failed to copy QR code", ErrClipboardUnsupported)
	}
	if err := f.clipboard.WritePNG(ctx, data); err != nil {
		if errs.Is(err, ErrClipboardUnsupported) {
			return f.fail(ctx, "", "Clipboard not supported", err)
		}
		return f.fail(ctx, "", "Failed to copy QR code", err)
	}
	f.notify(ctx, "", shared.NotificationSuccess, "QR code copied to clipboard")
	return nil
}
