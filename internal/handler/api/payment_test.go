//go:build unit

package api_test

import (
	"net/http"
	"net/url"
	"testing"

	"club-portal/internal/domain/gear"
	"club-portal/internal/handler/api"
	"club-portal/internal/usecase"
	"club-portal/internal/usecase/readmodel"
	"club-portal/tests/common/httptest"
	usecasemock "club-portal/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockPayment *usecasemock.MockPaymentUseCase
	handler     *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPayment = usecasemock.NewMockPaymentUseCase(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockPayment)

	s.router.POST("/payments/notify", s.handler.Notify)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func notificationForm() url.Values {
	return url.Values{
		"invoice":        {"inv-1001"},
		"receiver_email": {"treasurer@example.edu"},
		"mc_gross":       {"45.00"},
		"custom":         {"Crew Jacket|1|M|"},
		"payment_status": {"Completed"},
	}
}

func (s *PaymentHandlerTestSuite) TestNotify() {
	target := "/payments/notify"

	s.Run("applied payment echoes the result", func() {
		expected := gear.Notification{
			InvoiceID:     "inv-1001",
			ReceiverEmail: "treasurer@example.edu",
			AmountCents:   4500,
			Custom:        "Crew Jacket|1|M|",
			Status:        "Completed",
		}
		s.mockPayment.EXPECT().ApplyNotification(gomock.Any(), expected).Return(&readmodel.PaymentResultRM{
			InvoiceID:   "inv-1001",
			AmountCents: 4500,
			Items:       []readmodel.AppliedItemRM{{Name: "Crew Jacket", Size: "M", Quantity: 1}},
		}, nil)

		w := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, target, notificationForm())

		s.Equal(http.StatusOK, w.Code)

		var body struct {
			Status string `json:"status"`
			Result struct {
				InvoiceID string `json:"invoiceId"`
			} `json:"result"`
		}
		httptest.DecodeResponseBody(s.T(), w.Body, &body)
		s.Equal("applied", body.Status)
		s.Equal("inv-1001", body.Result.InvoiceID)
	})

	s.Run("missing required field", func() {
		form := notificationForm()
		form.Del("invoice")

		w := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, target, form)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unparseable amount", func() {
		form := notificationForm()
		form.Set("mc_gross", "45.123")

		w := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, target, form)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	rejections := []struct {
		name   string
		err    error
		reason string
	}{
		{"pending payment", gear.ErrPaymentNotCompleted, "not_completed"},
		{"tampered receiver", gear.ErrUntrustedPayee, "untrusted_payee"},
		{"broken payload", gear.ErrMalformedPayload, "malformed_payload"},
		{"price mismatch", gear.ErrAmountMismatch, "amount_mismatch"},
		{"item no longer sold", usecase.ErrPaymentItemUnknown, "unknown_item"},
		{"replayed invoice", usecase.ErrDuplicatePayment, "duplicate_invoice"},
		{"stock ran out since checkout", usecase.ErrInventoryConflict, "inventory_conflict"},
	}
	for _, tt := range rejections {
		s.Run(tt.name, func() {
			s.mockPayment.EXPECT().ApplyNotification(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, target, notificationForm())

			// Rejections still answer 200 so the gateway stops retrying.
			s.Equal(http.StatusOK, w.Code)

			var body struct {
				Status string `json:"status"`
				Reason string `json:"reason"`
			}
			httptest.DecodeResponseBody(s.T(), w.Body, &body)
			s.Equal("rejected", body.Status)
			s.Equal(tt.reason, body.Reason)
		})
	}

	s.Run("operational failure surfaces as 500", func() {
		s.mockPayment.EXPECT().ApplyNotification(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrDatabaseOperationFailed)

		w := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, target, notificationForm())
		s.Equal(http.StatusInternalServerError, w.Code)
	})
}
