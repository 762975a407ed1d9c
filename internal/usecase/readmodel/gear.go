package readmodel

// GearListItemRM is one storefront card: a named product with its in-stock
// size variants collapsed together (the store hides SKUs that are out of
// stock and never repeats a name).
type GearListItemRM struct {
	Name       string
	PriceCents int64
	Sizes      []string
}

// CheckoutRM carries everything the payment form needs for the gateway
// round trip. Amount is a decimal string because that is what the gateway
// consumes.
type CheckoutRM struct {
	Business  string
	Invoice   string
	ItemName  string
	Amount    string
	Custom    string
	NotifyURL string
	ReturnURL string
	CancelURL string
}

type AppliedItemRM struct {
	Name     string
	Size     string
	Quantity int
}

// PaymentResultRM reports a confirmed, applied notification.
type PaymentResultRM struct {
	InvoiceID   string
	AmountCents int64
	Items       []AppliedItemRM
}
