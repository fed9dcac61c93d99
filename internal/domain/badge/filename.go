package badge

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var qrCodeFormat = regexp.MustCompile(`^[0-9a-fA-F]+:[0-9a-fA-F]+$`)

// SanitizeFilenamePart replaces each character outside [A-Za-z0-9] with '_'.
func SanitizeFilenamePart(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

func GenerateBadgeFilename(participantName, eventName string, date time.Time) string {
	return fmt.Sprintf("badge_%s_%s_%s.pdf",
		SanitizeFilenamePart(participantName),
		SanitizeFilenamePart(eventName),
		date.Format(dateLayout),
	)
}

func GenerateBadgeSheetFilename(eventName string, count int, date time.Time) string {
	return fmt.Sprintf("badge_sheet_%s_%d_badges_%s.pdf",
		SanitizeFilenamePart(eventName),
		count,
		date.Format(dateLayout),
	)
}

func QRCodeFilename(participantName string) string {
	return SanitizeFilenamePart(participantName) + "_qr_code.png"
}

// IsValidQRCodeFormat is a syntactic hex:hex check, not a signature check.
func IsValidQRCodeFormat(code string) bool {
	return qrCodeFormat.MatchString(code)
}
