package artifact

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"image/png"

	"event-sync-service/internal/pkg/errs"

	"github.com/disintegration/imaging"
)

var qrPrintPage = template.Must(template.New("qr-print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>QR Code - {{.Name}}</title>
<style>
body { margin: 0; display: flex; flex-direction: column; align-items: center; justify-content: center; min-height: 100vh; font-family: Arial, sans-serif; }
img { width: {{.Size}}px; height: {{.Size}}px; }
h2 { margin-top: 16px; }
@media print { body { min-height: auto; } }
</style>
</head>
<body onload="window.print()">
<img src="{{.Image}}" alt="QR Code">
<h2>{{.Name}}</h2>
</body>
</html>
`))

type qrPrintData struct {
	Name  string
	Size  int
	Image template.URL
}

// renderQRPrintPage scales the QR image to size pixels and embeds it in a page
// that prints itself when opened.
func renderQRPrintPage(pngData []byte, participantName string, size int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, errs.MarkAll(errs.Wrap(err, "failed to decode QR image"), ErrInvalidPayload, errs.ErrInvalidInput)
	}
	// Nearest neighbor keeps module edges sharp for scanners.
	scaled := imaging.Resize(img, size, size, imaging.NearestNeighbor)

	var encoded bytes.Buffer
	if err := imaging.Encode(&encoded, scaled, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return nil, errs.Wrap(err, "failed to encode QR image")
	}

	var page bytes.Buffer
	err = qrPrintPage.Execute(&page, qrPrintData{
		Name:  participantName,
		Size:  size,
		Image: template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(encoded.Bytes())),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to render print page")
	}
	return page.Bytes(), nil
}
