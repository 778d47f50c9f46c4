package routes

import (
	"outfitter_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathHunts        = "/hunts"
	PathContracts    = "/contracts"
	PathPaymentItems = "/payment-items"
)

func addHuntRoutes(rg *gin.RouterGroup, h *handlers.HuntHandler) {
	hunts := rg.Group(PathHunts + "/:hunt_id")
	{
		hunts.GET("/pricing-options", h.ListPricingOptions)
		hunts.POST("/quote", h.Quote)
		hunts.POST("/booking", h.CompleteBooking)
		hunts.POST("/contract", h.EnsureContract)
	}
}

func addContractRoutes(rg *gin.RouterGroup, h *handlers.ContractHandler, bills *handlers.BillHandler) {
	contracts := rg.Group(PathContracts + "/:contract_id")
	{
		contracts.GET("", h.GetContract)
		contracts.POST("/send-to-client", h.SendToClient)
		contracts.POST("/submit", h.SubmitCompletion)
		contracts.POST("/approve", h.Approve)
		contracts.POST("/reject", h.Reject)
		contracts.POST("/send-for-signature", h.SendForSignature)
		contracts.POST("/sync-signature", h.SyncSignature)
		contracts.POST("/cancel", h.Cancel)

		// Guide-fee bill of a fully executed contract.
		contracts.GET("/bill", bills.GetBill)
		contracts.POST("/payment-plan", bills.CreatePaymentPlan)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	items := rg.Group(PathPaymentItems + "/:item_id")
	{
		items.GET("", h.GetItem)
		items.POST("/pay", h.PayItem)
	}
}
