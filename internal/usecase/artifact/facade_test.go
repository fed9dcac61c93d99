//go:build unit

package artifact_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"testing"
	"time"

	"event-sync-service/internal/domain/badge"
	"event-sync-service/internal/pkg/clock"
	"event-sync-service/internal/pkg/errs"
	"event-sync-service/internal/usecase/artifact"
	"event-sync-service/internal/usecase/shared"
	artifactmock "event-sync-service/tests/mock/artifact"
	sharedmock "event-sync-service/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errRemote = errors.New("remote down")

type FacadeTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	qr        *artifactmock.MockQRCodeGenerator
	badges    *artifactmock.MockBadgeGenerator
	sink      *artifactmock.MockFileSink
	clipboard *artifactmock.MockClipboard
	notifier  *sharedmock.MockNotifier
	notes     []shared.Notification
	clock     *clock.MockClock
	facade    *artifact.Facade
	pngData   []byte
}

func (s *FacadeTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.qr = artifactmock.NewMockQRCodeGenerator(s.mockCtrl)
	s.badges = artifactmock.NewMockBadgeGenerator(s.mockCtrl)
	s.sink = artifactmock.NewMockFileSink(s.mockCtrl)
	s.clipboard = artifactmock.NewMockClipboard(s.mockCtrl)
	s.notifier = sharedmock.NewMockNotifier(s.mockCtrl)

	s.notes = nil
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, n shared.Notification) { s.notes = append(s.notes, n) }).
		AnyTimes()

	s.clock = clock.NewMockClock(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	s.facade = artifact.NewFacade(s.qr, s.badges, s.sink, s.clipboard, s.notifier, s.clock,
		slog.New(slog.DiscardHandler), artifact.Options{QRPrintSize: 64})

	s.pngData = testPNG(s.T())
}

func (s *FacadeTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFacadeSuite(t *testing.T) {
	suite.Run(t, new(FacadeTestSuite))
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x += 2 {
		img.SetGray(x, x, color.Gray{Y: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func b64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func (s *FacadeTestSuite) lastNote() shared.Notification {
	s.Require().NotEmpty(s.notes)
	return s.notes[len(s.notes)-1]
}

func (s *FacadeTestSuite) assertHandled(err error) {
	s.Require().Error(err)
	s.True(errs.Is(err, artifact.ErrHandledFailure))
	s.Equal(shared.NotificationError, s.lastNote().Level)
}

// ================================================================================
// QR codes
// ================================================================================

func (s *FacadeTestSuite) TestGenerate() {
	s.Run("success notifies", func() {
		want := &badge.QRCodeResult{QRCode: "ab:cd"}
		s.qr.EXPECT().GenerateQRCode(gomock.Any(), "reg-1").Return(want, nil)

		got, err := s.facade.Generate(s.ctx, "reg-1")

		s.Require().NoError(err)
		s.Equal(want, got)
		s.Equal(shared.NotificationSuccess, s.lastNote().Level)
		s.Equal("QR code generated successfully", s.lastNote().Message)
	})

	s.Run("failure is reported and marked handled", func() {
		s.qr.EXPECT().GenerateQRCode(gomock.Any(), "reg-1").Return(nil, errRemote)

		got, err := s.facade.Generate(s.ctx, "reg-1")

		s.Nil(got)
		s.assertHandled(err)
		s.True(errors.Is(err, errRemote))
		s.Equal("Failed to generate QR code: remote down", s.lastNote().Message)
	})
}

func (s *FacadeTestSuite) TestValidateFailureNotifies() {
	s.qr.EXPECT().ValidateQRCode(gomock.Any(), "ab:cd").Return(nil, errRemote)

	_, err := s.facade.Validate(s.ctx, "ab:cd")

	s.assertHandled(err)
	s.Equal("Failed to validate QR code: remote down", s.lastNote().Message)
}

func (s *FacadeTestSuite) TestBulkGenerate() {
	s.Run("empty list never reaches the generator", func() {
		_, err := s.facade.BulkGenerate(s.ctx, nil)
		s.assertHandled(err)
		s.True(errs.Is(err, artifact.ErrNoRegistrations))
		s.True(errs.Is(err, errs.ErrInvalidInput))
	})

	s.Run("success", func() {
		s.qr.EXPECT().BulkGenerateQRCodes(gomock.Any(), []string{"a", "b"}).
			Return([]badge.QRCodeResult{{QRCode: "1:1"}, {QRCode: "2:2"}}, nil)

		got, err := s.facade.BulkGenerate(s.ctx, []string{"a", "b"})
		s.Require().NoError(err)
		s.Len(got, 2)
	})
}

func (s *FacadeTestSuite) TestIsValidQRCodeFormat() {
	s.True(s.facade.IsValidQRCodeFormat("abc:123"))
	s.False(s.facade.IsValidQRCodeFormat("not a code"))
}

func (s *FacadeTestSuite) TestDownloadQRCode() {
	s.Run("writes png under the participant filename", func() {
		s.sink.EXPECT().Download(gomock.Any(), artifact.Blob{
			Name: "Ada_Lovelace_qr_code.png",
			MIME: artifact.MIMEPNG,
			Data: s.pngData,
		}).Return("/artifacts/downloads/x/Ada_Lovelace_qr_code.png", nil)

		art, err := s.facade.DownloadQRCode(s.ctx, b64(s.pngData), "Ada Lovelace")

		s.Require().NoError(err)
		s.Equal("/artifacts/downloads/x/Ada_Lovelace_qr_code.png", art.URL)
		s.Equal(len(s.pngData), art.Size)
		s.Equal("QR code downloaded", s.lastNote().Message)
	})

	s.Run("data url prefix is accepted", func() {
		s.sink.EXPECT().Download(gomock.Any(), gomock.Any()).Return("/u", nil)

		_, err := s.facade.DownloadQRCode(s.ctx, "data:image/png;base64,"+b64(s.pngData), "Ada")
		s.NoError(err)
	})

	s.Run("invalid base64 is rejected before the sink", func() {
		_, err := s.facade.DownloadQRCode(s.ctx, "%%%not-base64%%%", "Ada")

		s.assertHandled(err)
		s.True(errs.Is(err, artifact.ErrInvalidPayload))
		s.True(errs.Is(err, errs.ErrInvalidInput))
		s.False(errs.Is(err, artifact.ErrNoRegistrations))
	})

	s.Run("sink failure", func() {
		s.sink.EXPECT().Download(gomock.Any(), gomock.Any()).Return("", errors.New("read-only fs"))

		_, err := s.facade.DownloadQRCode(s.ctx, b64(s.pngData), "Ada")
		s.assertHandled(err)
		s.Equal("Failed to download QR code: read-only fs", s.lastNote().Message)
	})
}

func (s *FacadeTestSuite) TestPrintQRCode() {
	s.Run("renders a self-printing page", func() {
		var printed artifact.Blob
		s.sink.EXPECT().Print(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b artifact.Blob) (string, error) {
				printed = b
				return "/artifacts/print/x/page.html", nil
			})

		_, err := s.facade.PrintQRCode(s.ctx, b64(s.pngData), "Ada <Lovelace>")

		s.Require().NoError(err)
		s.Equal("Ada__Lovelace__qr_code_print.html", printed.Name)
		s.Equal(artifact.MIMEHTML, printed.MIME)
		page := string(printed.Data)
		s.Contains(page, "window.print()")
		s.Contains(page, "Ada &lt;Lovelace&gt;")
		s.Contains(page, "width: 64px")
		s.Contains(page, "data:image/png;base64,")
		s.Equal("QR code sent to printer", s.lastNote().Message)
	})

	s.Run("non-image payload", func() {
		_, err := s.facade.PrintQRCode(s.ctx, b64([]byte("plain text")), "Ada")
		s.assertHandled(err)
		s.True(errs.Is(err, errs.ErrInvalidInput))
	})
}

func (s *FacadeTestSuite) TestCopyQRCodeToClipboard() {
	s.Run("success", func() {
		s.clipboard.EXPECT().WritePNG(gomock.Any(), s.pngData).Return(nil)

		s.NoError(s.facade.CopyQRCodeToClipboard(s.ctx, b64(s.pngData)))
		s.Equal("QR code copied to clipboard", s.lastNote().Message)
	})

	s.Run("unsupported clipboard", func() {
		s.clipboard.EXPECT().WritePNG(gomock.Any(), gomock.Any()).Return(artifact.ErrClipboardUnsupported)

		err := s.facade.CopyQRCodeToClipboard(s.ctx, b64(s.pngData))

		s.assertHandled(err)
		s.True(errs.Is(err, artifact.ErrClipboardUnsupported))
		s.Contains(s.lastNote().Message, "Clipboard not supported")
	})
}

// ================================================================================
// Badges
// ================================================================================

func (s *FacadeTestSuite) TestGenerateAndDownloadBadge() {
	pdf := []byte("%PDF-1.4 badge")
	req := artifact.BadgeRequest{
		RegistrationID: "reg-1",
		Badge:          badge.Data{ParticipantName: "John Doe", EventName: "Tech Summit 2024", Category: "VIP"},
	}

	s.Run("loading then success with the same id", func() {
		s.badges.EXPECT().GenerateBadge(gomock.Any(), "reg-1", badge.FormatStandard, "").Return(b64(pdf), nil)
		s.sink.EXPECT().Download(gomock.Any(), artifact.Blob{
			Name: "badge_John_Doe_Tech_Summit_2024_2024-03-15.pdf",
			MIME: artifact.MIMEPDF,
			Data: pdf,
		}).Return("/artifacts/downloads/x/badge.pdf", nil)

		art, err := s.facade.GenerateAndDownloadBadge(s.ctx, req)

		s.Require().NoError(err)
		s.Equal("badge_John_Doe_Tech_Summit_2024_2024-03-15.pdf", art.Name)
		s.Require().NotNil(art.Badge)
		s.Equal("John Doe", art.Badge.ParticipantName)
		s.Equal(badge.CategoryColor("VIP"), art.Badge.CategoryColor)
		s.Require().Len(s.notes, 2)
		s.Equal(shared.NotificationLoading, s.notes[0].Level)
		s.Equal("Generating badge...", s.notes[0].Message)
		s.Equal(shared.NotificationSuccess, s.notes[1].Level)
		s.Equal(s.notes[0].ID, s.notes[1].ID)
	})

	s.Run("generator failure replaces the loading toast", func() {
		s.notes = nil
		s.badges.EXPECT().GenerateBadge(gomock.Any(), "reg-1", badge.FormatStandard, "").Return("", errRemote)

		_, err := s.facade.GenerateAndDownloadBadge(s.ctx, req)

		s.assertHandled(err)
		s.Require().Len(s.notes, 2)
		s.Equal(s.notes[0].ID, s.notes[1].ID)
		s.Equal("Failed to generate badge: remote down", s.notes[1].Message)
	})
}

func (s *FacadeTestSuite) TestGenerateAndPrintBadgeUsesRequestedFormat() {
	req := artifact.BadgeRequest{
		RegistrationID: "reg-2",
		Badge:          badge.Data{ParticipantName: "A", EventName: "E"},
		Format:         badge.FormatLarge,
		TemplateID:     "tpl-1",
	}
	s.badges.EXPECT().GenerateBadge(gomock.Any(), "reg-2", badge.FormatLarge, "tpl-1").Return(b64([]byte("%PDF")), nil)
	s.sink.EXPECT().Print(gomock.Any(), gomock.Any()).Return("/p", nil)

	_, err := s.facade.GenerateAndPrintBadge(s.ctx, req)
	s.NoError(err)
	s.Equal("Badge sent to printer", s.lastNote().Message)
}

func (s *FacadeTestSuite) TestGenerateAndConvertToPDF() {
	s.badges.EXPECT().GenerateBadge(gomock.Any(), "reg-3", badge.FormatStandard, "").Return(b64([]byte("%PDF")), nil)
	s.sink.EXPECT().ObjectURL(gomock.Any(), gomock.Any()).Return("/artifacts/objects/x/b.pdf", nil)

	art, err := s.facade.GenerateAndConvertToPDF(s.ctx, artifact.BadgeRequest{RegistrationID: "reg-3"})
	s.Require().NoError(err)
	s.Equal(artifact.MIMEPDF, art.MIME)
	s.Equal("/artifacts/objects/x/b.pdf", art.URL)
}

func (s *FacadeTestSuite) TestBadgeFromPayload() {
	pdf := []byte("%PDF-1.7")

	s.sink.EXPECT().Download(gomock.Any(), artifact.Blob{Name: "b.pdf", MIME: artifact.MIMEPDF, Data: pdf}).Return("/d", nil)
	_, err := s.facade.DownloadBadge(s.ctx, b64(pdf), "b.pdf")
	s.NoError(err)

	s.sink.EXPECT().Print(gomock.Any(), gomock.Any()).Return("/p", nil)
	_, err = s.facade.PrintBadge(s.ctx, b64(pdf), "b.pdf")
	s.NoError(err)

	s.sink.EXPECT().ObjectURL(gomock.Any(), gomock.Any()).Return("/o", nil)
	art, err := s.facade.PreviewBadge(s.ctx, b64(pdf), "b.pdf")
	s.NoError(err)
	s.Equal("/o", art.URL)

	_, err = s.facade.PrintBadge(s.ctx, "", "b.pdf")
	s.assertHandled(err)
	s.True(errs.Is(err, artifact.ErrInvalidPayload))
}

func (s *FacadeTestSuite) TestBadgeFilenamesUseUTCDate() {
	// 23:30 in New York is already the next day in UTC
	s.clock.Set(time.Date(2024, 3, 15, 23, 30, 0, 0, time.FixedZone("EDT", -4*60*60)))

	s.badges.EXPECT().GenerateBadge(gomock.Any(), "reg-1", badge.FormatStandard, "").Return(b64([]byte("%PDF")), nil)
	s.sink.EXPECT().Download(gomock.Any(), gomock.Any()).Return("/d", nil)
	art, err := s.facade.GenerateAndDownloadBadge(s.ctx, artifact.BadgeRequest{
		RegistrationID: "reg-1",
		Badge:          badge.Data{ParticipantName: "Ada", EventName: "Conf"},
	})
	s.Require().NoError(err)
	s.Equal("badge_Ada_Conf_2024-03-16.pdf", art.Name)

	s.badges.EXPECT().GenerateBadgeSheet(gomock.Any(), []string{"r1"}).Return(b64([]byte("%PDF")), nil)
	s.sink.EXPECT().Download(gomock.Any(), gomock.Any()).Return("/d", nil)
	sheet, err := s.facade.BulkGenerateAndDownloadBadges(s.ctx, []string{"r1"}, "Conf")
	s.Require().NoError(err)
	s.Equal("badge_sheet_Conf_1_badges_2024-03-16.pdf", sheet.Name)
	s.Nil(sheet.Badge)
}

func (s *FacadeTestSuite) TestBulkGenerateAndDownloadBadges() {
	ids := []string{"r1", "r2", "r3"}
	s.badges.EXPECT().GenerateBadgeSheet(gomock.Any(), ids).Return(b64([]byte("%PDF sheet")), nil)
	s.sink.EXPECT().Download(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b artifact.Blob) (string, error) {
			s.Equal("badge_sheet_Conf_3_badges_2024-03-15.pdf", b.Name)
			return "/d", nil
		})

	_, err := s.facade.BulkGenerateAndDownloadBadges(s.ctx, ids, "Conf")

	s.Require().NoError(err)
	s.Equal("3 badges downloaded successfully", s.lastNote().Message)
	s.Equal(s.notes[0].ID, s.lastNote().ID)
}

func (s *FacadeTestSuite) TestRegenerateBadge() {
	s.badges.EXPECT().RegenerateBadge(gomock.Any(), "reg-1", badge.FormatCompact, "").Return("cGRm", nil)

	pdf, err := s.facade.RegenerateBadge(s.ctx, artifact.BadgeRequest{RegistrationID: "reg-1", Format: badge.FormatCompact})

	s.Require().NoError(err)
	s.Equal("cGRm", pdf)
}

func (s *FacadeTestSuite) TestValidateRegistrationForBadge() {
	res := s.facade.ValidateRegistrationForBadge(badge.Registration{ID: "x"})
	s.False(res.IsValid)
	s.Len(res.Errors, 4)
}
