package handlers

import (
	"errors"
	"log"
	"net/http"

	"outfitter_billing/internal/adapter/http/dto/request"
	"outfitter_billing/internal/adapter/http/dto/response"
	"outfitter_billing/internal/usecase"
	"outfitter_billing/pkg"

	"github.com/gin-gonic/gin"
)

// BillHandler serves the guide-fee bill of a fully executed contract.

type BillHandler struct {
	usecase usecase.IBillUseCase
}

func NewBillHandler(uc usecase.IBillUseCase) *BillHandler {
	return &BillHandler{usecase: uc}
}

// GetBill godoc
// @Summary  Get or create the contract's guide-fee bill
// @Tags     bills
// @Produce  json
// @Param    contract_id  path  string  true  "Contract ID"
// @Success  200  {object}  response.BillResponse
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /contracts/{contract_id}/bill [get]
func (h *BillHandler) GetBill(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	contractID := c.Param("contract_id")

	bill, err := h.usecase.GetOrCreateBill(c.Request.Context(), caller, contractID)
	if err != nil {
		log.Printf("[bill][handler] get failed contract_id=%s err=%v", contractID, err)
		writeError(c, mapBillError(err))
		return
	}
	log.Printf("[bill][handler] get success contract_id=%s mode=%s total_cents=%d balance_cents=%d", contractID, bill.Mode, bill.TotalCents, bill.BalanceCents)
	c.JSON(http.StatusOK, response.FromBill(bill))
}

// CreatePaymentPlan godoc
// @Summary  Split the guide fee into monthly installments
// @Tags     bills
// @Accept   json
// @Produce  json
// @Param    contract_id  path  string                      true  "Contract ID"
// @Param    body         body  request.PaymentPlanRequest  true  "Plan"
// @Success  201  {object}  response.BillResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /contracts/{contract_id}/payment-plan [post]
func (h *BillHandler) CreatePaymentPlan(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	contractID := c.Param("contract_id")

	var req request.PaymentPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	firstDue, err := req.FirstDue()
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest))
		return
	}

	bill, err := h.usecase.CreatePaymentPlan(c.Request.Context(), caller, contractID, req.Installments, firstDue)
	if err != nil {
		log.Printf("[bill][handler] plan failed contract_id=%s installments=%d err=%v", contractID, req.Installments, err)
		writeError(c, mapBillError(err))
		return
	}
	log.Printf("[bill][handler] plan success contract_id=%s installments=%d", contractID, len(bill.Items))
	c.JSON(http.StatusCreated, response.FromBill(bill))
}

func mapBillError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrContractNotFullyExecuted):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_EXECUTED", "Contract is not fully executed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentPlanExists):
		return pkg.NewDomainErrorSimple("PAYMENT_PLAN_EXISTS", "A payment plan already exists for this contract", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyPaid):
		return pkg.NewDomainErrorSimple("ALREADY_PAID", "Guide fee already has payments recorded", http.StatusConflict)
	default:
		return mapUseCaseError(err, "BILL_STATE")
	}
}
