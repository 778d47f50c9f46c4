package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"outfitter_billing/internal/adapter/http/dto/response"
	"outfitter_billing/internal/usecase"
	"outfitter_billing/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for collecting payment items.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// GetItem godoc
// @Summary  Get a payment item
// @Tags     payments
// @Produce  json
// @Param    item_id  path  string  true  "Payment item ID"
// @Success  200  {object}  response.PaymentItemResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /payment-items/{item_id} [get]
func (h *PaymentHandler) GetItem(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	itemID := c.Param("item_id")

	it, err := h.usecase.GetItem(c.Request.Context(), caller, itemID)
	if err != nil {
		log.Printf("[payment][handler] get failed item_id=%s err=%v", itemID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentItem(it))
}

// PayItem godoc
// @Summary  Charge the item's balance through Mercado Pago
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    item_id  path  string                  true  "Payment item ID"
// @Param    body     body  request.PayItemRequest  true  "Mercado Pago payload, bare or wrapped in mp_payload"
// @Success  200  {object}  response.PaymentItemResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /payment-items/{item_id}/pay [post]
func (h *PaymentHandler) PayItem(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	itemID := c.Param("item_id")
	log.Printf("[payment][handler] pay start item_id=%s", itemID)

	// An unreadable payload is passed on empty; the use case decides whether
	// mock mode can do without it.
	mpPayload, err := readMPPayload(c)
	if err != nil {
		log.Printf("[payment][handler] payload unreadable item_id=%s err=%v", itemID, err)
		mpPayload = nil
	}

	paid, err := h.usecase.PayItem(c.Request.Context(), caller, itemID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] pay failed item_id=%s err=%v", itemID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	log.Printf("[payment][handler] pay success item_id=%s provider_payment_id=%s status=%s", paid.ID, paid.ProviderPaymentID, paid.Status)
	c.JSON(http.StatusOK, response.FromPaymentItem(paid))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", err.Error(), http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentItemNotPending):
		return pkg.NewDomainErrorSimple("PAYMENT_ITEM_NOT_PENDING", err.Error(), http.StatusConflict)
	default:
		return mapUseCaseError(err, "PAYMENT_STATE")
	}
}
