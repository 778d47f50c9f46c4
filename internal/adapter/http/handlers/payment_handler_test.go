package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"outfitter_billing/internal/adapter/http/handlers/mocks"
	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func paymentRouter(h *PaymentHandler) *gin.Engine {
	r := testRouter(clientCaller)
	r.GET("/v1/payment-items/:item_id", h.GetItem)
	r.POST("/v1/payment-items/:item_id/pay", h.PayItem)
	return r
}

func TestPaymentHandler_GetItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := paymentRouter(NewPaymentHandler(uc))

	uc.EXPECT().GetItem(gomock.Any(), clientCaller, "pi-9").Return(entities.PaymentItem{}, usecase.ErrNotYours)

	w := doJSON(r, http.MethodGet, "/v1/payment-items/pi-9", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPaymentHandler_PayItem(t *testing.T) {
	t.Run("wrapped payload is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().PayItem(gomock.Any(), clientCaller, "pi-1", gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Caller, _ string, payload json.RawMessage) (entities.PaymentItem, error) {
				if string(payload) != `{"token":"tok_1"}` {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return entities.PaymentItem{ID: "pi-1", Status: entities.PaymentStatusPaid, TotalCents: 420000, AmountPaidCents: 420000, ProviderPaymentID: "mp-77"}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/payment-items/pi-1/pay", `{"mp_payload":{"token":"tok_1"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "paid" || body["balance_usd"] != "0.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid json reaches use case as nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().PayItem(gomock.Any(), clientCaller, "pi-1", gomock.Nil()).
			Return(entities.PaymentItem{}, fmt.Errorf("%w: %w", usecase.ErrValidation, usecase.ErrInvalidMPPayload))

		w := doJSON(r, http.MethodPost, "/v1/payment-items/pi-1/pay", `{"token":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	cases := []struct {
		name string
		err  error
		want int
		code string
	}{
		{"not approved", fmt.Errorf("%w: %w", usecase.ErrCollaborator, usecase.ErrPaymentNotApproved), http.StatusPaymentRequired, "PAYMENT_NOT_APPROVED"},
		{"already paid", fmt.Errorf("%w: %w", usecase.ErrState, usecase.ErrPaymentItemNotPending), http.StatusConflict, "PAYMENT_ITEM_NOT_PENDING"},
		{"provider unauthorized", fmt.Errorf("%w: %w", usecase.ErrCollaborator, usecase.ErrPaymentGatewayUnauthorized), http.StatusBadGateway, "PAYMENT_PROVIDER_UNAUTHORIZED"},
		{"payer missing", fmt.Errorf("%w: %w", usecase.ErrCollaborator, usecase.ErrPaymentGatewayCustomerNotFound), http.StatusBadRequest, "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			r := paymentRouter(NewPaymentHandler(uc))

			uc.EXPECT().PayItem(gomock.Any(), clientCaller, "pi-1", gomock.Any()).Return(entities.PaymentItem{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/payment-items/pi-1/pay", `{"token":"tok_1"}`)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
			var body map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["code"] != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, w.Body.String())
			}
		})
	}
}

func TestReadMPPayload_EmptyBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := paymentRouter(NewPaymentHandler(uc))

	uc.EXPECT().PayItem(gomock.Any(), clientCaller, "pi-1", gomock.Any()).DoAndReturn(
		func(_ any, _ entities.Caller, _ string, payload json.RawMessage) (entities.PaymentItem, error) {
			if string(payload) != "{}" {
				t.Fatalf("expected empty object, got %q", payload)
			}
			return entities.PaymentItem{ID: "pi-1", Status: entities.PaymentStatusPaid}, nil
		})

	w := doJSON(r, http.MethodPost, "/v1/payment-items/pi-1/pay", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
