package badge

import "strings"

const PaymentStatusPaid = "PAID"

const (
	MsgParticipantNameRequired = "Participant name is required"
	MsgEventRequired           = "Event information is required"
	MsgCategoryRequired        = "Category is required"
	MsgPaymentRequired         = "Payment must be completed before generating badge"
)

type EventRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Transaction struct {
	ID            string `json:"id,omitempty"`
	PaymentStatus string `json:"paymentStatus"`
}

// Registration is the server-side registration a badge is printed for.
type Registration struct {
	ID                  string        `json:"id"`
	ParticipantFullName string        `json:"participantFullName"`
	Event               *EventRef     `json:"event,omitempty"`
	Category            *CategoryRef  `json:"category,omitempty"`
	Transactions        []Transaction `json:"transactions,omitempty"`
}

type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateRegistrationForBadge reports every unmet precondition, not just the first.
func ValidateRegistrationForBadge(reg Registration) ValidationResult {
	errs := make([]string, 0, 4)

	if strings.TrimSpace(reg.ParticipantFullName) == "" {
		errs = append(errs, MsgParticipantNameRequired)
	}
	if reg.Event == nil {
		errs = append(errs, MsgEventRequired)
	}
	if reg.Category == nil {
		errs = append(errs, MsgCategoryRequired)
	}
	if !hasPaidTransaction(reg.Transactions) {
		errs = append(errs, MsgPaymentRequired)
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

func hasPaidTransaction(txs []Transaction) bool {
	for _, t := range txs {
		if t.PaymentStatus == PaymentStatusPaid {
			return true
		}
	}
	return false
}
