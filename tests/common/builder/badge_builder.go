//go:build unit || e2e

package builder

import (
	"event-sync-service/internal/domain/badge"
)

type BadgeRegistrationBuilder struct {
	ID           string
	FullName     string
	EventName    string
	CategoryName string
	Payments     []string
}

func NewBadgeRegistrationBuilder() *BadgeRegistrationBuilder {
	return &BadgeRegistrationBuilder{
		ID:           "reg-1",
		FullName:     "Ada Lovelace",
		EventName:    "Tech Summit 2024",
		CategoryName: "VIP",
		Payments:     []string{badge.PaymentStatusPaid},
	}
}

func (b *BadgeRegistrationBuilder) With(mutate func(*BadgeRegistrationBuilder)) *BadgeRegistrationBuilder {
	mutate(b)
	return b
}

func (b *BadgeRegistrationBuilder) BuildDomain() badge.Registration {
	reg := badge.Registration{
		ID:                  b.ID,
		ParticipantFullName: b.FullName,
	}
	if b.EventName != "" {
		reg.Event = &badge.EventRef{ID: "evt-1", Name: b.EventName}
	}
	if b.CategoryName != "" {
		reg.Category = &badge.CategoryRef{ID: "cat-1", Name: b.CategoryName}
	}
	for _, p := range b.Payments {
		reg.Transactions = append(reg.Transactions, badge.Transaction{PaymentStatus: p})
	}
	return reg
}
