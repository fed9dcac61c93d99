// Package artifact obtains QR codes and badges from the remote generator and
// hands them to the file sink, reporting every outcome to the operator.
package artifact

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"event-sync-service/internal/pkg/clock"
	"event-sync-service/internal/pkg/errs"
	"event-sync-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type Options struct {
	// QRPrintSize is the edge length in pixels of the QR image on a print page.
	QRPrintSize int
}

type Facade struct {
	qr        QRCodeGenerator
	badges    BadgeGenerator
	sink      FileSink
	clipboard Clipboard
	notifier  shared.Notifier
	clock     clock.Clock
	logger    *slog.Logger
	opts      Options
}

func NewFacade(
	qr QRCodeGenerator,
	badges BadgeGenerator,
	sink FileSink,
	clipboard Clipboard,
	notifier shared.Notifier,
	clk clock.Clock,
	logger *slog.Logger,
	opts Options,
) *Facade {
	if opts.QRPrintSize <= 0 {
		opts.QRPrintSize = 300
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Facade{
		qr:        qr,
		badges:    badges,
		sink:      sink,
		clipboard: clipboard,
		notifier:  notifier,
		clock:     clk,
		logger:    logger.With("component", "artifact"),
		opts:      opts,
	}
}

// fail reports err to the operator and returns it marked as handled.
func (f *Facade) fail(ctx context.Context, id, prefix string, err error) error {
	f.logger.Warn(prefix, "error", err)
	f.notify(ctx, id, shared.NotificationError, prefix+": "+err.Error())
	return errs.Mark(errs.Wrap(err, prefix), ErrHandledFailure)
}

func (f *Facade) notify(ctx context.Context, id string, level shared.NotificationLevel, msg string) {
	if id == "" {
		id = uuid.NewString()
	}
	f.notifier.Notify(ctx, shared.Notification{
		ID:        id,
		Level:     level,
		Message:   msg,
		Timestamp: f.clock.Now(),
	})
}

// startLoading shows a loading notification and returns the id the terminal
// success or error notification reuses.
func (f *Facade) startLoading(ctx context.Context, msg string) string {
	id := uuid.NewString()
	f.notify(ctx, id, shared.NotificationLoading, msg)
	return id
}

func (f *Facade) store(ctx context.Context, blob Blob, write func(context.Context, Blob) (string, error)) (*Artifact, error) {
	url, err := write(ctx, blob)
	if err != nil {
		return nil, err
	}
	return &Artifact{Name: blob.Name, MIME: blob.MIME, URL: url, Size: len(blob.Data)}, nil
}

// decodeBase64 accepts raw base64 or a data URL.
func decodeBase64(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "data:") {
		if i := strings.Index(payload, ","); i >= 0 {
			payload = payload[i+1:]
		}
	}
	if payload == "" {
		return nil, errs.MarkAll(errs.New("empty payload"), ErrInvalidPayload, errs.ErrInvalidInput)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errs.MarkAll(errs.Wrap(err, "failed to decode base64 payload"), ErrInvalidPayload, errs.ErrInvalidInput)
	}
	return data, nil
}
