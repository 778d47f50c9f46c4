package handlers

import (
	"context"
	"log"
	"net/http"

	"outfitter_billing/internal/adapter/http/dto/request"
	"outfitter_billing/internal/adapter/http/dto/response"
	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/usecase"
	"outfitter_billing/pkg"

	"github.com/gin-gonic/gin"
)

// ContractHandler handles HTTP requests for the contract lifecycle.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

type contractAction func(ctx context.Context, caller entities.Caller, contractID string) (entities.HuntContract, error)

func (h *ContractHandler) run(c *gin.Context, name string, action contractAction) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	contractID := c.Param("contract_id")
	log.Printf("[contract][handler] %s start contract_id=%s", name, contractID)

	contract, err := action(c.Request.Context(), caller, contractID)
	if err != nil {
		log.Printf("[contract][handler] %s failed contract_id=%s err=%v", name, contractID, err)
		writeError(c, mapContractError(err))
		return
	}
	log.Printf("[contract][handler] %s success contract_id=%s status=%s", name, contract.ID, contract.Status)
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// GetContract godoc
// @Summary  Get a contract
// @Tags     contracts
// @Produce  json
// @Param    contract_id  path  string  true  "Contract ID"
// @Success  200  {object}  response.ContractResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /contracts/{contract_id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	h.run(c, "get", h.usecase.Get)
}

// SendToClient godoc
// @Summary  Send a draft contract to the client for completion
// @Tags     contracts
// @Produce  json
// @Param    contract_id  path  string  true  "Contract ID"
// @Success  200  {object}  response.ContractResponse
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /contracts/{contract_id}/send-to-client [post]
func (h *ContractHandler) SendToClient(c *gin.Context) {
	h.run(c, "send-to-client", h.usecase.SendToClient)
}

// SubmitCompletion godoc
// @Summary  Client submits plan, add-ons and dates
// @Tags     contracts
// @Accept   json
// @Produce  json
// @Param    contract_id  path  string                           true  "Contract ID"
// @Param    body         body  request.SubmitCompletionRequest  true  "Completion"
// @Success  200  {object}  response.ContractResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /contracts/{contract_id}/submit [post]
func (h *ContractHandler) SubmitCompletion(c *gin.Context) {
	var req request.SubmitCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	sel, err := req.ToSelection()
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest))
		return
	}
	h.run(c, "submit", func(ctx context.Context, caller entities.Caller, id string) (entities.HuntContract, error) {
		return h.usecase.SubmitClientCompletion(ctx, caller, id, sel, req.Notes)
	})
}

// Approve godoc
// @Summary  Staff approves the client's completion
// @Tags     contracts
// @Produce  json
// @Param    contract_id  path  string  true  "Contract ID"
// @Success  200  {object}  response.ContractResponse
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /contracts/{contract_id}/approve [post]
func (h *ContractHandler) Approve(c *gin.Context) {
	h.run(c, "approve", h.usecase.Approve)
}

// Reject godoc
// @Summary  Staff returns the contract to the client
// @Tags     contracts
// @Accept   json
// @Produce  json
// @Param    contract_id  path  string                 true  "Contract ID"
// @Param    body         body  request.RejectRequest  true  "Reason"
// @Success  200  {object}  response.ContractResponse
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /contracts/{contract_id}/reject [post]
func (h *ContractHandler) Reject(c *gin.Context) {
	var req request.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.run(c, "reject", func(ctx context.Context, caller entities.Caller, id string) (entities.HuntContract, error) {
		return h.usecase.Reject(ctx, caller, id, req.Reason)
	})
}

// SendForSignature godoc
// @Summary  Send an approved contract to the signature service
// @Tags     contracts
// @Produce  json
// @Param    contract_id  path  string  true  "Contract ID"
// @Success  200  {object}  response.ContractResponse
// @Failure  409  {object}  pkg.HTTPError
// @Failure  502  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /contracts/{contract_id}/send-for-signature [post]
func (h *ContractHandler) SendForSignature(c *gin.Context) {
	h.run(c, "send-for-signature", h.usecase.SendForSignature)
}

// SyncSignature godoc
// @Summary  Pull signature progress from the signature service
// @Tags     contracts
// @Produce  json
// @Param    contract_id  path  string  true  "Contract ID"
// @Success  200  {object}  response.ContractResponse
// @Failure  502  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /contracts/{contract_id}/sync-signature [post]
func (h *ContractHandler) SyncSignature(c *gin.Context) {
	h.run(c, "sync-signature", h.usecase.SyncSignatureStatus)
}

// Cancel godoc
// @Summary  Cancel a contract and its pending payment items
// @Tags     contracts
// @Produce  json
// @Param    contract_id  path  string  true  "Contract ID"
// @Success  200  {object}  response.ContractResponse
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /contracts/{contract_id}/cancel [post]
func (h *ContractHandler) Cancel(c *gin.Context) {
	h.run(c, "cancel", h.usecase.Cancel)
}

func mapContractError(err error) *pkg.AppError {
	return mapUseCaseError(err, "CONTRACT_STATE")
}
