package badge

import "time"

type QRCodeData struct {
	RegistrationID  string    `json:"registrationId"`
	EventID         string    `json:"eventId"`
	ParticipantName string    `json:"participantName"`
	Category        string    `json:"category"`
	Timestamp       time.Time `json:"timestamp"`
	Checksum        string    `json:"checksum"`
}

type QRCodeResult struct {
	QRCode      string     `json:"qrCode"`
	QRCodeData  QRCodeData `json:"qrCodeData"`
	Base64Image string     `json:"base64Image"`
}

type QRCodeValidationResult struct {
	IsValid      bool        `json:"isValid"`
	Registration *QRCodeData `json:"registration,omitempty"`
	Message      string      `json:"message,omitempty"`
}

type Format string

const (
	FormatStandard Format = "STANDARD"
	FormatCompact  Format = "COMPACT"
	FormatLarge    Format = "LARGE"
)

func (f Format) IsValid() bool {
	switch f {
	case FormatStandard, FormatCompact, FormatLarge:
		return true
	default:
		return false
	}
}

// Data carries what a printed badge shows. The badge itself is rendered
// remotely; locally it names the file and tells the UI which color to use.
type Data struct {
	ParticipantName    string `json:"participantName"`
	EventName          string `json:"eventName"`
	EventDate          string `json:"eventDate,omitempty"`
	EventVenue         string `json:"eventVenue,omitempty"`
	Category           string `json:"category"`
	CategoryColor      string `json:"categoryColor,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
}

// WithCategoryColor fills CategoryColor from the fixed table when unset.
func (d Data) WithCategoryColor() Data {
	if d.CategoryColor == "" {
		d.CategoryColor = CategoryColor(d.Category)
	}
	return d
}

func (d Data) Filename(at time.Time) string {
	return GenerateBadgeFilename(d.ParticipantName, d.EventName, at)
}
