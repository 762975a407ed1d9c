package api

import (
	"errors"
	"net/http"

	"club-portal/internal/domain/gear"
	reqdto "club-portal/internal/handler/dto/request"
	resdto "club-portal/internal/handler/dto/response"
	"club-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

// @Summary Payment notification webhook
// @Description Inbound IPN-style confirmation. Rejections answer 200 with a
// @Description reason code so the gateway stops retrying; only store-side
// @Description failures return 5xx.
// @Tags payments
// @Accept x-www-form-urlencoded
// @Produce json
// @Param invoice formData string true "Invoice ID"
// @Param receiver_email formData string true "Receiver account"
// @Param mc_gross formData string true "Paid amount"
// @Param custom formData string false "Cart payload"
// @Param payment_status formData string true "Gateway status"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /payments/notify [post]
func (h *PaymentHandler) Notify(c *gin.Context) {
	var req reqdto.PaymentNotificationRequest
	if bindErr := c.ShouldBind(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid notification format",
		})
		return
	}

	amountCents, err := gear.ParseAmountCents(req.Gross)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid amount",
		})
		return
	}

	notification := gear.Notification{
		InvoiceID:     req.Invoice,
		ReceiverEmail: req.ReceiverEmail,
		AmountCents:   amountCents,
		Custom:        req.Custom,
		Status:        req.PaymentStatus,
	}

	result, err := h.paymentUseCase.ApplyNotification(c.Request.Context(), notification)
	if err != nil {
		if reason, rejected := rejectionReason(err); rejected {
			c.JSON(http.StatusOK, gin.H{
				"status": "rejected",
				"reason": reason,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "applied",
		"result": resdto.FromPaymentResult(result),
	})
}

// rejectionReason distinguishes a validation outcome (the notification is
// bad, the money never moves) from an operational failure worth retrying.
func rejectionReason(err error) (string, bool) {
	switch {
	case errors.Is(err, gear.ErrPaymentNotCompleted):
		return "not_completed", true
	case errors.Is(err, gear.ErrUntrustedPayee):
		return "untrusted_payee", true
	case errors.Is(err, gear.ErrMalformedPayload):
		return "malformed_payload", true
	case errors.Is(err, gear.ErrAmountMismatch):
		return "amount_mismatch", true
	case errors.Is(err, usecase.ErrPaymentItemUnknown):
		return "unknown_item", true
	case errors.Is(err, usecase.ErrDuplicatePayment):
		return "duplicate_invoice", true
	case errors.Is(err, usecase.ErrInventoryConflict):
		return "inventory_conflict", true
	}
	return "", false
}
