package handlers

import (
	"log"
	"net/http"

	"outfitter_billing/internal/adapter/http/dto/request"
	"outfitter_billing/internal/adapter/http/dto/response"
	"outfitter_billing/internal/usecase"
	"outfitter_billing/pkg"

	"github.com/gin-gonic/gin"
)

// HuntHandler serves the hunt-scoped routes: pricing options, quotes,
// booking completion and contract creation.

type HuntHandler struct {
	catalog   usecase.ICatalogUseCase
	booking   usecase.IBookingUseCase
	contracts usecase.IContractUseCase
}

func NewHuntHandler(catalog usecase.ICatalogUseCase, booking usecase.IBookingUseCase, contracts usecase.IContractUseCase) *HuntHandler {
	return &HuntHandler{catalog: catalog, booking: booking, contracts: contracts}
}

// ListPricingOptions godoc
// @Summary  Guide-fee plans and add-ons matching the hunt
// @Tags     hunts
// @Produce  json
// @Param    hunt_id  path  string  true  "Hunt ID"
// @Success  200  {object}  response.PricingOptionsResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /hunts/{hunt_id}/pricing-options [get]
func (h *HuntHandler) ListPricingOptions(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	huntID := c.Param("hunt_id")

	opts, err := h.catalog.ListOptions(c.Request.Context(), caller, huntID)
	if err != nil {
		log.Printf("[catalog][handler] options failed hunt_id=%s err=%v", huntID, err)
		writeError(c, mapUseCaseError(err, "PRICING_STATE"))
		return
	}
	c.JSON(http.StatusOK, response.FromPricingOptions(opts))
}

// Quote godoc
// @Summary  Price a selection without saving it
// @Tags     hunts
// @Accept   json
// @Produce  json
// @Param    hunt_id  path  string                    true  "Hunt ID"
// @Param    body     body  request.SelectionRequest  true  "Selection"
// @Success  200  {object}  response.QuoteResponse
// @Failure  400  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /hunts/{hunt_id}/quote [post]
func (h *HuntHandler) Quote(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	huntID := c.Param("hunt_id")

	sel, ok := bindSelection(c)
	if !ok {
		return
	}
	priced, err := h.catalog.Quote(c.Request.Context(), caller, huntID, sel)
	if err != nil {
		log.Printf("[catalog][handler] quote failed hunt_id=%s err=%v", huntID, err)
		writeError(c, mapUseCaseError(err, "PRICING_STATE"))
		return
	}
	c.JSON(http.StatusOK, response.FromPricedSelection(priced))
}

// CompleteBooking godoc
// @Summary  Record plan, add-ons and dates on the hunt and ensure its contract
// @Tags     hunts
// @Accept   json
// @Produce  json
// @Param    hunt_id  path  string                    true  "Hunt ID"
// @Param    body     body  request.SelectionRequest  true  "Selection"
// @Success  200  {object}  response.BookingResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /hunts/{hunt_id}/booking [post]
func (h *HuntHandler) CompleteBooking(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	huntID := c.Param("hunt_id")
	log.Printf("[booking][handler] complete start hunt_id=%s", huntID)

	sel, ok := bindSelection(c)
	if !ok {
		return
	}
	res, err := h.booking.CompleteBooking(c.Request.Context(), caller, huntID, sel)
	if err != nil {
		log.Printf("[booking][handler] complete failed hunt_id=%s err=%v", huntID, err)
		writeError(c, mapUseCaseError(err, "BOOKING_LOCKED"))
		return
	}
	log.Printf("[booking][handler] complete success hunt_id=%s contract_id=%s created=%t", huntID, res.Contract.ID, res.ContractCreated)
	c.JSON(http.StatusOK, response.FromBookingResult(res))
}

// EnsureContract godoc
// @Summary  Get or create the hunt's contract
// @Tags     hunts
// @Produce  json
// @Param    hunt_id  path  string  true  "Hunt ID"
// @Success  200  {object}  response.EnsureContractResponse
// @Success  201  {object}  response.EnsureContractResponse
// @Security Bearer
// @Router   /hunts/{hunt_id}/contract [post]
func (h *HuntHandler) EnsureContract(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	huntID := c.Param("hunt_id")

	contract, created, err := h.contracts.EnsureContractForHunt(c.Request.Context(), caller, huntID)
	if err != nil {
		log.Printf("[contract][handler] ensure failed hunt_id=%s err=%v", huntID, err)
		writeError(c, mapUseCaseError(err, "CONTRACT_STATE"))
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, response.EnsureContractResponse{Contract: response.FromContract(contract), Created: created})
}

func bindSelection(c *gin.Context) (usecase.Selection, bool) {
	var req request.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidRequest)
		return usecase.Selection{}, false
	}
	sel, err := req.ToSelection()
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest))
		return usecase.Selection{}, false
	}
	return sel, true
}
