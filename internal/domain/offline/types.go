package offline

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentApproved PaymentStatus = "APPROVED"
	PaymentDeclined PaymentStatus = "DECLINED"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentApproved, PaymentDeclined:
		return true
	default:
		return false
	}
}

// Kind names the record collection in sync error strings.
type Kind string

const (
	KindRegistration Kind = "Registration"
	KindMealScan     Kind = "Meal scan"
)

const (
	RegistrationIDPrefix = "offline_reg"
	MealScanIDPrefix     = "offline_scan"
	PlaceholderQRPrefix  = "QR_"
)
