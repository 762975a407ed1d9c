//go:build unit

package builder

import (
	"club-portal/internal/domain/gear"

	"github.com/google/uuid"
)

type GearItemBuilder struct {
	ID         uuid.UUID
	Name       string
	Size       string
	PriceCents int64
	Inventory  int
}

func NewGearItemBuilder() *GearItemBuilder {
	return &GearItemBuilder{
		ID:         uuid.New(),
		Name:       "Crew Jacket",
		Size:       "M",
		PriceCents: 4500,
		Inventory:  10,
	}
}

func (b *GearItemBuilder) With(mutate func(*GearItemBuilder)) *GearItemBuilder {
	mutate(b)
	return b
}

func (b *GearItemBuilder) Build() gear.Item {
	return gear.Item{
		ID:         b.ID,
		Name:       b.Name,
		Size:       b.Size,
		PriceCents: b.PriceCents,
		Inventory:  b.Inventory,
	}
}

type NotificationBuilder struct {
	InvoiceID     string
	ReceiverEmail string
	AmountCents   int64
	Custom        string
	Status        string
}

// NewNotificationBuilder defaults to a well-formed, completed payment for one
// medium Crew Jacket, addressed to the test merchant account.
func NewNotificationBuilder() *NotificationBuilder {
	return &NotificationBuilder{
		InvoiceID:     uuid.NewString(),
		ReceiverEmail: "treasurer@example.edu",
		AmountCents:   4500,
		Custom:        "Crew Jacket|1|M|",
		Status:        gear.StatusCompleted,
	}
}

func (b *NotificationBuilder) With(mutate func(*NotificationBuilder)) *NotificationBuilder {
	mutate(b)
	return b
}

func (b *NotificationBuilder) Build() gear.Notification {
	return gear.Notification{
		InvoiceID:     b.InvoiceID,
		ReceiverEmail: b.ReceiverEmail,
		AmountCents:   b.AmountCents,
		Custom:        b.Custom,
		Status:        b.Status,
	}
}
