package usecase

import (
	"context"
	"log"
	"time"

	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/domain/pricing"
	"outfitter_billing/internal/usecase/interfaces"
)

// BookingResult is what a completed booking produced: the updated hunt, the
// price of the selection and the hunt's contract.
type BookingResult struct {
	Hunt            entities.Hunt         `json:"hunt"`
	Priced          PricedSelection       `json:"priced"`
	Contract        entities.HuntContract `json:"contract"`
	ContractCreated bool                  `json:"contract_created"`
}

// IBookingUseCase records a client's plan, add-ons and dates on a hunt and
// makes sure the hunt has a contract.
type IBookingUseCase interface {
	CompleteBooking(ctx context.Context, caller entities.Caller, huntID string, sel Selection) (BookingResult, error)
}

type BookingUseCase struct {
	hunts     interfaces.IHuntRepository
	contracts interfaces.IHuntContractRepository
	lifecycle IContractUseCase
	pricer    pricer
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	hunts interfaces.IHuntRepository,
	contracts interfaces.IHuntContractRepository,
	lifecycle IContractUseCase,
	catalog interfaces.IPricingItemRepository,
	rate pricing.FeeRate,
) *BookingUseCase {
	return &BookingUseCase{
		hunts:     hunts,
		contracts: contracts,
		lifecycle: lifecycle,
		pricer:    pricer{catalog: catalog, rate: rate},
	}
}

func (u *BookingUseCase) CompleteBooking(ctx context.Context, caller entities.Caller, huntID string, sel Selection) (BookingResult, error) {
	log.Printf("[booking][usecase] complete start hunt_id=%q plan_id=%q", huntID, sel.PricingItemID)
	h, err := loadHunt(ctx, u.hunts, caller, huntID)
	if err != nil {
		return BookingResult{}, err
	}

	active, err := u.contracts.GetActiveByHuntID(ctx, h.ID)
	if err != nil {
		return BookingResult{}, collaborator("load hunt contract", err)
	}
	if active.Status == entities.ContractStatusFullyExecuted {
		log.Printf("[booking][usecase] hunt locked by executed contract hunt_id=%s contract_id=%s", h.ID, active.ID)
		return BookingResult{}, stateErr(ErrHuntAlreadyExecuted)
	}

	priced, err := u.pricer.priceSelection(ctx, h, sel)
	if err != nil {
		log.Printf("[booking][usecase] selection rejected hunt_id=%s err=%v", h.ID, err)
		return BookingResult{}, err
	}

	updated, err := u.hunts.UpdateBooking(ctx, bookedHunt(h, priced, sel.Addons, time.Now().UTC()))
	if err != nil {
		return BookingResult{}, collaborator("update hunt booking", err)
	}
	log.Printf("[booking][usecase] booking stored hunt_id=%s start=%s end=%s days=%d total_cents=%d",
		updated.ID, priced.Span.Start.Format(time.DateOnly), priced.Span.End.Format(time.DateOnly), priced.Span.Days, priced.Quote.TotalCents)

	c, created, err := u.lifecycle.EnsureContractForHunt(ctx, caller, updated.ID)
	if err != nil {
		return BookingResult{}, err
	}
	return BookingResult{Hunt: updated, Priced: priced, Contract: c, ContractCreated: created}, nil
}
