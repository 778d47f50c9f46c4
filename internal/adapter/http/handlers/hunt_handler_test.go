package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"outfitter_billing/internal/adapter/http/handlers/mocks"
	"outfitter_billing/internal/adapter/http/middleware"
	"outfitter_billing/internal/domain/booking"
	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/domain/pricing"
	"outfitter_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var (
	staffCaller  = entities.Caller{TenantID: "out-1", Email: "guide@example.com", Role: entities.CallerRoleStaff}
	clientCaller = entities.Caller{TenantID: "out-1", Email: "client@example.com", Role: entities.CallerRoleClient}
)

func testRouter(caller entities.Caller) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.WithCaller(caller))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHuntHandler_ListPricingOptions(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewHuntHandler(catalog, nil, nil)

		r := testRouter(clientCaller)
		r.GET("/v1/hunts/:hunt_id/pricing-options", h.ListPricingOptions)

		days := 5
		catalog.EXPECT().ListOptions(gomock.Any(), clientCaller, "hunt-1").Return(usecase.PricingOptions{
			HuntID: "hunt-1",
			Plans:  []entities.PricingItem{{ID: "elk-rifle-5", AmountUSD: 4000, IncludedDays: &days}},
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/hunts/hunt-1/pricing-options", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Plans []struct {
				ID        string `json:"id"`
				AmountUSD string `json:"amount_usd"`
			} `json:"plans"`
			Addons []any `json:"addons"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Plans) != 1 || body.Plans[0].AmountUSD != "4000.00" || body.Addons == nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("someone else's hunt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewHuntHandler(catalog, nil, nil)

		r := testRouter(clientCaller)
		r.GET("/v1/hunts/:hunt_id/pricing-options", h.ListPricingOptions)

		catalog.EXPECT().ListOptions(gomock.Any(), clientCaller, "hunt-9").Return(usecase.PricingOptions{}, usecase.ErrNotYours)

		w := doJSON(r, http.MethodGet, "/v1/hunts/hunt-9/pricing-options", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("no caller", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		h := NewHuntHandler(nil, nil, nil)
		r := gin.New()
		r.GET("/v1/hunts/:hunt_id/pricing-options", h.ListPricingOptions)

		w := doJSON(r, http.MethodGet, "/v1/hunts/hunt-1/pricing-options", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestHuntHandler_Quote(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewHuntHandler(mocks.NewMockICatalogUseCase(ctrl), nil, nil)

		r := testRouter(clientCaller)
		r.POST("/v1/hunts/:hunt_id/quote", h.Quote)

		w := doJSON(r, http.MethodPost, "/v1/hunts/hunt-1/quote", `{"pricing_item_id":"elk-rifle-5","start_date":"09/10/2025"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong span message passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewHuntHandler(catalog, nil, nil)

		r := testRouter(clientCaller)
		r.POST("/v1/hunts/:hunt_id/quote", h.Quote)

		spanErr := fmt.Errorf("%w: %w", usecase.ErrValidation, &booking.SpanError{Kind: booking.ErrWrongDuration, RequiredDays: 6, ActualDays: 5})
		catalog.EXPECT().Quote(gomock.Any(), clientCaller, "hunt-1", gomock.Any()).Return(usecase.PricedSelection{}, spanErr)

		w := doJSON(r, http.MethodPost, "/v1/hunts/hunt-1/quote", `{"pricing_item_id":"elk-rifle-5","start_date":"2025-09-10","end_date":"2025-09-14"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("requires a 6-day span, got 5 days")) {
			t.Fatalf("expected span message, got %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewHuntHandler(catalog, nil, nil)

		r := testRouter(clientCaller)
		r.POST("/v1/hunts/:hunt_id/quote", h.Quote)

		catalog.EXPECT().Quote(gomock.Any(), clientCaller, "hunt-1", gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Caller, _ string, sel usecase.Selection) (usecase.PricedSelection, error) {
				if sel.PricingItemID != "elk-rifle-5" || sel.Addons[entities.AddonExtraDays] != 1 || sel.EndDate != nil {
					t.Fatalf("unexpected selection: %+v", sel)
				}
				return usecase.PricedSelection{
					Plan:         entities.PricingItem{ID: "elk-rifle-5"},
					Quote:        pricing.Quote{SubtotalCents: 450000, PlatformFeeCents: 22500, TotalCents: 472500},
					Span:         booking.Span{Start: time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC), End: time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC), Days: 6},
					RequiredDays: 6,
				}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/hunts/hunt-1/quote", `{"pricing_item_id":"elk-rifle-5","addons":{"extra_days":1},"start_date":"2025-09-10"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_usd"] != "4725.00" || body["end_date"] != "2025-09-15" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestHuntHandler_CompleteBooking(t *testing.T) {
	t.Run("locked by executed contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingUC := mocks.NewMockIBookingUseCase(ctrl)
		h := NewHuntHandler(nil, bookingUC, nil)

		r := testRouter(clientCaller)
		r.POST("/v1/hunts/:hunt_id/booking", h.CompleteBooking)

		bookingUC.EXPECT().CompleteBooking(gomock.Any(), clientCaller, "hunt-1", gomock.Any()).
			Return(usecase.BookingResult{}, fmt.Errorf("%w: %w", usecase.ErrState, usecase.ErrHuntAlreadyExecuted))

		w := doJSON(r, http.MethodPost, "/v1/hunts/hunt-1/booking", `{"pricing_item_id":"elk-rifle-5","start_date":"2025-09-10"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingUC := mocks.NewMockIBookingUseCase(ctrl)
		h := NewHuntHandler(nil, bookingUC, nil)

		r := testRouter(clientCaller)
		r.POST("/v1/hunts/:hunt_id/booking", h.CompleteBooking)

		bookingUC.EXPECT().CompleteBooking(gomock.Any(), clientCaller, "hunt-1", gomock.Any()).Return(usecase.BookingResult{
			Hunt:            entities.Hunt{ID: "hunt-1"},
			Contract:        entities.HuntContract{ID: "c-1", Status: entities.ContractStatusPendingAdminReview},
			ContractCreated: true,
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/hunts/hunt-1/booking", `{"pricing_item_id":"elk-rifle-5","start_date":"2025-09-10"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			ContractCreated bool `json:"contract_created"`
			Contract        struct {
				Status string `json:"status"`
			} `json:"contract"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if !body.ContractCreated || body.Contract.Status != "pending_admin_review" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestHuntHandler_EnsureContract(t *testing.T) {
	cases := []struct {
		name    string
		created bool
		err     error
		want    int
	}{
		{"created", true, nil, http.StatusCreated},
		{"existing", false, nil, http.StatusOK},
		{"store down", false, fmt.Errorf("%w: %w", usecase.ErrCollaborator, errors.New("throttled")), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			contracts := mocks.NewMockIContractUseCase(ctrl)
			h := NewHuntHandler(nil, nil, contracts)

			r := testRouter(staffCaller)
			r.POST("/v1/hunts/:hunt_id/contract", h.EnsureContract)

			contracts.EXPECT().EnsureContractForHunt(gomock.Any(), staffCaller, "hunt-1").
				Return(entities.HuntContract{ID: "c-1", Status: entities.ContractStatusDraft}, tc.created, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/hunts/hunt-1/contract", "")
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}
