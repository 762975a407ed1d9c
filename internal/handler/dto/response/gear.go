package response

import (
	"club-portal/internal/domain/gear"
	"club-portal/internal/usecase/readmodel"
)

type GearListItemResponse struct {
	Name       string   `json:"name"`
	PriceCents int64    `json:"priceCents"`
	Sizes      []string `json:"sizes,omitempty"`
}

func FromGearListItem(rm *readmodel.GearListItemRM) *GearListItemResponse {
	return &GearListItemResponse{
		Name:       rm.Name,
		PriceCents: rm.PriceCents,
		Sizes:      rm.Sizes,
	}
}

type CartLineResponse struct {
	Name          string `json:"name"`
	Size          string `json:"size"`
	PriceCents    int64  `json:"priceCents"`
	Quantity      int    `json:"quantity"`
	SubtotalCents int64  `json:"subtotalCents"`
}

type CartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	TotalCents int64              `json:"totalCents"`
}

func FromCart(c gear.Cart) *CartResponse {
	lines := make([]CartLineResponse, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = CartLineResponse{
			Name:          l.Name,
			Size:          l.Size,
			PriceCents:    l.PriceCents,
			Quantity:      l.Quantity,
			SubtotalCents: l.SubtotalCents(),
		}
	}
	return &CartResponse{
		Lines:      lines,
		TotalCents: c.TotalCents(),
	}
}

type CheckoutResponse struct {
	Business  string `json:"business"`
	Invoice   string `json:"invoice"`
	ItemName  string `json:"itemName"`
	Amount    string `json:"amount"`
	Custom    string `json:"custom"`
	NotifyURL string `json:"notifyUrl"`
	ReturnURL string `json:"returnUrl"`
	CancelURL string `json:"cancelUrl"`
}

func FromCheckout(rm *readmodel.CheckoutRM) *CheckoutResponse {
	return &CheckoutResponse{
		Business:  rm.Business,
		Invoice:   rm.Invoice,
		ItemName:  rm.ItemName,
		Amount:    rm.Amount,
		Custom:    rm.Custom,
		NotifyURL: rm.NotifyURL,
		ReturnURL: rm.ReturnURL,
		CancelURL: rm.CancelURL,
	}
}

type AppliedItemResponse struct {
	Name     string `json:"name"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

type PaymentResultResponse struct {
	InvoiceID   string                `json:"invoiceId"`
	AmountCents int64                 `json:"amountCents"`
	Items       []AppliedItemResponse `json:"items"`
}

func FromPaymentResult(rm *readmodel.PaymentResultRM) *PaymentResultResponse {
	items := make([]AppliedItemResponse, len(rm.Items))
	for i, it := range rm.Items {
		items[i] = AppliedItemResponse{Name: it.Name, Size: it.Size, Quantity: it.Quantity}
	}
	return &PaymentResultResponse{
		InvoiceID:   rm.InvoiceID,
		AmountCents: rm.AmountCents,
		Items:       items,
	}
}
