//go:build e2e

package e2e

import (
	"net/http"
	"testing"

	"event-sync-service/internal/domain/badge"
	resdto "event-sync-service/internal/handler/dto/response"
	"event-sync-service/internal/usecase/artifact"
	"event-sync-service/internal/usecase/shared"
	"event-sync-service/tests/common/httptest"

	"github.com/stretchr/testify/suite"
)

type ArtifactE2ETestSuite struct {
	SharedSuite
}

func TestArtifactE2ETestSuite(t *testing.T) {
	suite.Run(t, new(ArtifactE2ETestSuite))
}

func (s *ArtifactE2ETestSuite) TestGenerateQRCode() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/qr-codes/generate", map[string]string{"registrationId": "reg-1"}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var res badge.QRCodeResult
	s.Require().NoError(httptest.DecodeResponseBody(s.T(), w.Body, &res))
	s.Equal("a1b2c3:d4e5f6", res.QRCode)
	s.Equal("reg-1", res.QRCodeData.RegistrationID)
	s.True(badge.IsValidQRCodeFormat(res.QRCode))
}

func (s *ArtifactE2ETestSuite) TestBadgeDownloadIsServed() {
	body := map[string]string{
		"registrationId":  "reg-1",
		"participantName": "Ada Lovelace",
		"eventName":       "Tech Summit",
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/badges/generate/download", body, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var art resdto.ArtifactResponse
	s.Require().NoError(httptest.DecodeResponseBody(s.T(), w.Body, &art))
	s.Equal(artifact.MIMEPDF, art.MIME)
	s.Equal(len(FakePDF), art.Size)
	s.Regexp(`^badge_Ada_Lovelace_Tech_Summit_\d{4}-\d{2}-\d{2}\.pdf$`, art.Name)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, art.URL, nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(FakePDF, w.Body.Bytes())

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/notifications?limit=1", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	var notes []shared.Notification
	s.Require().NoError(httptest.DecodeResponseBody(s.T(), w.Body, &notes))
	s.Require().Len(notes, 1)
	s.Equal(shared.NotificationSuccess, notes[0].Level)
	s.Equal("Badge downloaded successfully", notes[0].Message)
}

func (s *ArtifactE2ETestSuite) TestRemoteFailureIsReported() {
	s.Remote.Fail.Store(true)

	body := map[string]string{
		"registrationId":  "reg-1",
		"participantName": "Ada Lovelace",
		"eventName":       "Tech Summit",
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/badges/generate/download", body, "")
	resp := httptest.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "Failed to generate badge")
	s.Equal(httptest.AssertRequestID(s.T(), w), resp.RequestID)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/notifications?limit=1", nil, "")
	var notes []shared.Notification
	s.Require().NoError(httptest.DecodeResponseBody(s.T(), w.Body, &notes))
	s.Require().Len(notes, 1)
	s.Equal(shared.NotificationError, notes[0].Level)
}

func (s *ArtifactE2ETestSuite) TestClipboardDisabled() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/qr-codes/clipboard", map[string]string{"base64Image": "cG5n"}, "")
	s.Equal(http.StatusNotImplemented, w.Code, w.Body.String())
}
