package gear

import "errors"

var (
	ErrPaymentNotCompleted = errors.New("payment status is not completed")
	ErrUntrustedPayee      = errors.New("notification receiver does not match merchant account")
	ErrAmountMismatch      = errors.New("paid amount does not match recomputed price")
)

// StatusCompleted is the gateway's terminal success status.
const StatusCompleted = "Completed"

// Notification is the inbound payment confirmation. Everything in it is
// client-controlled until proven otherwise.
type Notification struct {
	InvoiceID     string
	ReceiverEmail string
	AmountCents   int64
	Custom        string
	Status        string
}

// ValidateNotification runs the trust checks in their required order: the
// payment must have completed, the receiver must be our merchant address
// (the payment form fields can be tampered with before submission), and the
// custom payload must decode. Amount verification happens separately because
// it needs the stored prices.
func ValidateNotification(n Notification, merchantEmail string) ([]PayloadItem, error) {
	if n.Status != StatusCompleted {
		return nil, ErrPaymentNotCompleted
	}
	if n.ReceiverEmail != merchantEmail {
		return nil, ErrUntrustedPayee
	}
	return DecodePayload(n.Custom)
}

// VerifyAmount compares the server-side recomputed total against what the
// gateway says was paid. Prices always come from our own store, never from
// the notification.
func VerifyAmount(expectedCents, paidCents int64) error {
	if expectedCents != paidCents {
		return ErrAmountMismatch
	}
	return nil
}
