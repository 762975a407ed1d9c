package request

import "club-portal/internal/domain/gear"

type AddCartItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

func (r AddCartItemRequest) Key() gear.ItemKey {
	return gear.ItemKey{Name: r.Name, Size: r.Size}
}

type RemoveCartItemRequest struct {
	Name string `json:"name" binding:"required"`
	Size string `json:"size"`
}

func (r RemoveCartItemRequest) Key() gear.ItemKey {
	return gear.ItemKey{Name: r.Name, Size: r.Size}
}

// PaymentNotificationRequest mirrors the gateway's form-encoded IPN message.
// Amounts arrive as decimal strings and are parsed, never trusted, by the
// payment usecase.
type PaymentNotificationRequest struct {
	Invoice       string `form:"invoice" binding:"required"`
	ReceiverEmail string `form:"receiver_email" binding:"required"`
	Gross         string `form:"mc_gross" binding:"required"`
	Custom        string `form:"custom"`
	PaymentStatus string `form:"payment_status" binding:"required"`
}
