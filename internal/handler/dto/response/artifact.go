package response

import (
	"event-sync-service/internal/domain/badge"
	"event-sync-service/internal/usecase/artifact"
)

type ArtifactResponse struct {
	Name  string      `json:"name"`
	MIME  string      `json:"mime"`
	URL   string      `json:"url"`
	Size  int         `json:"size"`
	Badge *badge.Data `json:"badge,omitempty"`
}

func FromArtifact(a *artifact.Artifact) *ArtifactResponse {
	return &ArtifactResponse{Name: a.Name, MIME: a.MIME, URL: a.URL, Size: a.Size, Badge: a.Badge}
}

type FormatCheckResponse struct {
	QRCode string `json:"qrCode"`
	Valid  bool   `json:"valid"`
}

type BadgePDFResponse struct {
	Base64PDF string `json:"base64Pdf"`
}

type FilenameResponse struct {
	Filename string `json:"filename"`
}

type CategoryColorResponse struct {
	Category string            `json:"category"`
	Color    string            `json:"color"`
	Palette  map[string]string `json:"palette"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
