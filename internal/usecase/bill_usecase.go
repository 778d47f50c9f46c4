package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/domain/installments"
	"outfitter_billing/internal/domain/pricing"
	"outfitter_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IBillUseCase is the single source of truth for what a client owes on a
// fully executed contract.
type IBillUseCase interface {
	GetOrCreateBill(ctx context.Context, caller entities.Caller, contractID string) (entities.Bill, error)
	CreatePaymentPlan(ctx context.Context, caller entities.Caller, contractID string, count int, firstDue time.Time) (entities.Bill, error)
}

type BillUseCase struct {
	contracts interfaces.IHuntContractRepository
	hunts     interfaces.IHuntRepository
	payments  interfaces.IPaymentItemRepository
	pricer    pricer
}

var _ IBillUseCase = (*BillUseCase)(nil)

func NewBillUseCase(
	contracts interfaces.IHuntContractRepository,
	hunts interfaces.IHuntRepository,
	payments interfaces.IPaymentItemRepository,
	catalog interfaces.IPricingItemRepository,
	rate pricing.FeeRate,
) *BillUseCase {
	return &BillUseCase{
		contracts: contracts,
		hunts:     hunts,
		payments:  payments,
		pricer:    pricer{catalog: catalog, rate: rate},
	}
}

// FullItemID is the id of a contract's full-amount guide-fee item. It is
// deterministic so two concurrent first reads cannot both insert one.
func FullItemID(contractID string) string {
	return "gf-" + contractID
}

func (u *BillUseCase) GetOrCreateBill(ctx context.Context, caller entities.Caller, contractID string) (entities.Bill, error) {
	log.Printf("[bill][usecase] get-or-create start contract_id=%q", contractID)
	c, err := u.executedContract(ctx, caller, contractID)
	if err != nil {
		return entities.Bill{}, err
	}
	return u.currentBill(ctx, &c)
}

// CreatePaymentPlan splits the contract total into count monthly installments
// starting at firstDue. The full-amount item is cancelled in the same write.
func (u *BillUseCase) CreatePaymentPlan(ctx context.Context, caller entities.Caller, contractID string, count int, firstDue time.Time) (entities.Bill, error) {
	log.Printf("[bill][usecase] payment-plan start contract_id=%q count=%d first_due=%s", contractID, count, firstDue.Format(time.DateOnly))
	// reject bad input before anything is written
	if _, err := installments.Split(0, count, firstDue); err != nil {
		return entities.Bill{}, validation(err)
	}

	c, err := u.executedContract(ctx, caller, contractID)
	if err != nil {
		return entities.Bill{}, err
	}
	bill, err := u.currentBill(ctx, &c)
	if err != nil {
		return entities.Bill{}, err
	}
	if bill.Mode == entities.BillModeInstallments {
		return entities.Bill{}, stateErr(ErrPaymentPlanExists)
	}
	full := bill.Items[0]
	if full.Status != entities.PaymentStatusPending || full.AmountPaidCents > 0 {
		return entities.Bill{}, stateErr(fmt.Errorf("%w: item %s is %s with %d cents paid", ErrAlreadyPaid, full.ID, full.Status, full.AmountPaidCents))
	}

	parts, err := installments.Split(full.TotalCents, count, firstDue)
	if err != nil {
		return entities.Bill{}, validation(err)
	}
	parts = installments.WithFees(parts, u.pricer.rate)

	now := time.Now().UTC()
	planID := uuid.NewString()
	items := make([]entities.PaymentItem, len(parts))
	for i, p := range parts {
		due := p.DueDate
		items[i] = entities.PaymentItem{
			ID:                fmt.Sprintf("%s-%02d", planID, p.Number),
			OutfitterID:       c.OutfitterID,
			ContractID:        c.ID,
			ClientEmail:       c.ClientEmail,
			ItemType:          entities.PaymentItemGuideFeeInstallment,
			PlanID:            planID,
			InstallmentNumber: p.Number,
			InstallmentCount:  len(parts),
			SubtotalCents:     p.SubtotalCents,
			PlatformFeeCents:  p.PlatformFeeCents,
			TotalCents:        p.AmountCents,
			DueDate:           &due,
			Status:            entities.PaymentStatusPending,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
	}

	created, err := u.payments.ReplaceWithInstallments(ctx, c, []entities.PaymentItem{full}, items)
	if err != nil {
		log.Printf("[bill][usecase] payment-plan write failed contract_id=%s err=%v", c.ID, err)
		return entities.Bill{}, collaborator("create payment plan", err)
	}
	out := entities.NewBill(c.ID, entities.BillModeInstallments, created)
	log.Printf("[bill][usecase] payment-plan created contract_id=%s plan_id=%s count=%d total_cents=%d cancelled_item=%s", c.ID, planID, len(created), out.TotalCents, full.ID)
	return out, nil
}

func (u *BillUseCase) executedContract(ctx context.Context, caller entities.Caller, contractID string) (entities.HuntContract, error) {
	c, err := loadContract(ctx, u.contracts, caller, contractID)
	if err != nil {
		return entities.HuntContract{}, err
	}
	if c.Status != entities.ContractStatusFullyExecuted {
		return entities.HuntContract{}, stateErr(fmt.Errorf("%w: status is %s", ErrContractNotFullyExecuted, c.Status))
	}
	return c, nil
}

// currentBill returns the active arrangement, refreshing or creating the
// full-amount item as needed. Writes bump the contract version, so c is
// advanced in place to keep later compare-and-set writes valid.
func (u *BillUseCase) currentBill(ctx context.Context, c *entities.HuntContract) (entities.Bill, error) {
	bill, found, err := u.activeBill(ctx, c.ID)
	if err != nil {
		return entities.Bill{}, err
	}
	if found && bill.Mode == entities.BillModeInstallments {
		return bill, nil
	}

	h, err := u.hunts.GetByID(ctx, c.HuntID)
	if err != nil {
		return entities.Bill{}, collaborator("load hunt", err)
	}

	if found {
		return u.refresh(ctx, c, h, bill)
	}

	q, err := u.pricer.priceCompletion(ctx, *c, h)
	if err != nil {
		return entities.Bill{}, err
	}
	now := time.Now().UTC()
	item := entities.PaymentItem{
		ID:               FullItemID(c.ID),
		OutfitterID:      c.OutfitterID,
		ContractID:       c.ID,
		ClientEmail:      c.ClientEmail,
		ItemType:         entities.PaymentItemGuideFee,
		SubtotalCents:    q.SubtotalCents,
		PlatformFeeCents: q.PlatformFeeCents,
		TotalCents:       q.TotalCents,
		Status:           entities.PaymentStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created, err := u.payments.CreateFull(ctx, *c, item)
	if errors.Is(err, interfaces.ErrConflict) {
		// lost the race against another first read; use what it wrote
		log.Printf("[bill][usecase] full item created concurrently contract_id=%s", c.ID)
		bill, found, err = u.activeBill(ctx, c.ID)
		if err != nil {
			return entities.Bill{}, err
		}
		if !found {
			return entities.Bill{}, collaborator("create guide fee item", interfaces.ErrConflict)
		}
		return bill, nil
	}
	if err != nil {
		return entities.Bill{}, collaborator("create guide fee item", err)
	}
	c.Version++
	log.Printf("[bill][usecase] full item created contract_id=%s item_id=%s total_cents=%d", c.ID, created.ID, created.TotalCents)
	return entities.NewBill(c.ID, entities.BillModeFull, []entities.PaymentItem{created}), nil
}

// refresh reprices an unpaid full-amount item when the catalog changed since
// it was stored. A plan removed from the catalog keeps the stored value.
func (u *BillUseCase) refresh(ctx context.Context, c *entities.HuntContract, h entities.Hunt, bill entities.Bill) (entities.Bill, error) {
	item := bill.Items[0]
	if item.Status != entities.PaymentStatusPending || item.AmountPaidCents > 0 {
		return bill, nil
	}
	q, err := u.pricer.priceCompletion(ctx, *c, h)
	if err != nil {
		if KindOf(err) == ErrValidation {
			log.Printf("[bill][usecase] drift check skipped contract_id=%s item_id=%s err=%v", c.ID, item.ID, err)
			return bill, nil
		}
		return entities.Bill{}, err
	}
	if q.TotalCents == item.TotalCents && q.SubtotalCents == item.SubtotalCents {
		return bill, nil
	}

	log.Printf("[bill][usecase] drift contract_id=%s item_id=%s stored_total_cents=%d current_total_cents=%d", c.ID, item.ID, item.TotalCents, q.TotalCents)
	item.SubtotalCents = q.SubtotalCents
	item.PlatformFeeCents = q.PlatformFeeCents
	item.TotalCents = q.TotalCents
	item.UpdatedAt = time.Now().UTC()
	updated, err := u.payments.Reprice(ctx, *c, item)
	if err != nil {
		return entities.Bill{}, collaborator("reprice guide fee item", err)
	}
	c.Version++
	out := entities.NewBill(c.ID, entities.BillModeFull, []entities.PaymentItem{updated})
	out.Repriced = true
	return out, nil
}

// activeBill builds the bill from stored active items. Installments win over a
// full-amount item; the repository never leaves both active.
func (u *BillUseCase) activeBill(ctx context.Context, contractID string) (entities.Bill, bool, error) {
	items, err := u.payments.ListByContractID(ctx, contractID)
	if err != nil {
		return entities.Bill{}, false, collaborator("list payment items", err)
	}
	var full []entities.PaymentItem
	var plan []entities.PaymentItem
	for _, it := range items {
		if !it.Active() {
			continue
		}
		switch it.ItemType {
		case entities.PaymentItemGuideFeeInstallment:
			plan = append(plan, it)
		case entities.PaymentItemGuideFee:
			full = append(full, it)
		}
	}
	if len(plan) > 0 {
		sort.Slice(plan, func(i, j int) bool { return plan[i].InstallmentNumber < plan[j].InstallmentNumber })
		return entities.NewBill(contractID, entities.BillModeInstallments, plan), true, nil
	}
	if len(full) > 0 {
		return entities.NewBill(contractID, entities.BillModeFull, full[:1]), true, nil
	}
	return entities.Bill{}, false, nil
}
