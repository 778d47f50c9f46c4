package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/domain/lifecycle"
	"outfitter_billing/internal/domain/pricing"
	"outfitter_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// IContractUseCase drives a hunt contract through its lifecycle.
//
// Every status change goes through lifecycle.Transition and is persisted with
// a compare-and-set on the contract version.
type IContractUseCase interface {
	EnsureContractForHunt(ctx context.Context, caller entities.Caller, huntID string) (entities.HuntContract, bool, error)
	Get(ctx context.Context, caller entities.Caller, contractID string) (entities.HuntContract, error)
	SendToClient(ctx context.Context, caller entities.Caller, contractID string) (entities.HuntContract, error)
	SubmitClientCompletion(ctx context.Context, caller entities.Caller, contractID string, sel Selection, notes string) (entities.HuntContract, error)
	Approve(ctx context.Context, caller entities.Caller, contractID string) (entities.HuntContract, error)
	Reject(ctx context.Context, caller entities.Caller, contractID string, reason string) (entities.HuntContract, error)
	SendForSignature(ctx context.Context, caller entities.Caller, contractID string) (entities.HuntContract, error)
	SyncSignatureStatus(ctx context.Context, caller entities.Caller, contractID string) (entities.HuntContract, error)
	Cancel(ctx context.Context, caller entities.Caller, contractID string) (entities.HuntContract, error)
}

type ContractUseCase struct {
	contracts  interfaces.IHuntContractRepository
	hunts      interfaces.IHuntRepository
	payments   interfaces.IPaymentItemRepository
	templates  interfaces.IContractTemplateSource
	signatures interfaces.ISignatureService
	pricer     pricer

	// ensure coalesces concurrent EnsureContractForHunt calls per hunt inside
	// this process; CreateForHunt still guards across processes.
	ensure singleflight.Group
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(
	contracts interfaces.IHuntContractRepository,
	hunts interfaces.IHuntRepository,
	payments interfaces.IPaymentItemRepository,
	templates interfaces.IContractTemplateSource,
	signatures interfaces.ISignatureService,
	catalog interfaces.IPricingItemRepository,
	rate pricing.FeeRate,
) *ContractUseCase {
	return &ContractUseCase{
		contracts:  contracts,
		hunts:      hunts,
		payments:   payments,
		templates:  templates,
		signatures: signatures,
		pricer:     pricer{catalog: catalog, rate: rate},
	}
}

type ensureResult struct {
	contract entities.HuntContract
	created  bool
}

// EnsureContractForHunt returns the hunt's non-cancelled contract, creating it
// when none exists. A hunt that already carries a valid booking gets its
// contract directly in pending_admin_review with the booking frozen.
// created is true when this call, or one it was coalesced with, wrote the contract.
func (u *ContractUseCase) EnsureContractForHunt(ctx context.Context, caller entities.Caller, huntID string) (entities.HuntContract, bool, error) {
	log.Printf("[contract][usecase] ensure start hunt_id=%q", huntID)
	h, err := loadHunt(ctx, u.hunts, caller, huntID)
	if err != nil {
		return entities.HuntContract{}, false, err
	}

	v, err, shared := u.ensure.Do(h.ID, func() (any, error) {
		c, created, err := u.ensureContract(ctx, h)
		return ensureResult{contract: c, created: created}, err
	})
	if err != nil {
		log.Printf("[contract][usecase] ensure failed hunt_id=%s err=%v", h.ID, err)
		return entities.HuntContract{}, false, err
	}
	res := v.(ensureResult)
	log.Printf("[contract][usecase] ensure success hunt_id=%s contract_id=%s status=%s created=%t shared=%t", h.ID, res.contract.ID, res.contract.Status, res.created, shared)
	return res.contract, res.created, nil
}

func (u *ContractUseCase) ensureContract(ctx context.Context, h entities.Hunt) (entities.HuntContract, bool, error) {
	existing, err := u.contracts.GetActiveByHuntID(ctx, h.ID)
	if err != nil {
		return entities.HuntContract{}, false, collaborator("load hunt contract", err)
	}
	if existing.ID != "" {
		return existing, false, nil
	}

	templateID, err := u.templates.DefaultTemplateID(ctx, h.OutfitterID)
	if err != nil {
		return entities.HuntContract{}, false, collaborator("load contract template", err)
	}

	now := time.Now().UTC()
	c := entities.HuntContract{
		ID:          uuid.NewString(),
		OutfitterID: h.OutfitterID,
		HuntID:      h.ID,
		ClientEmail: h.ClientEmail,
		TemplateID:  templateID,
		Status:      entities.ContractStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if h.HasBooking() {
		priced, err := u.pricer.priceSelection(ctx, h, selectionFromHunt(h))
		switch {
		case err == nil:
			facts := lifecycle.Facts{TemplateAttached: templateID != "", HuntLinked: true, SelectionComplete: true}
			next, terr := lifecycle.Transition(c.Status, lifecycle.EventBookingCompleted, facts)
			if terr != nil {
				return entities.HuntContract{}, false, stateErr(terr)
			}
			c.Status = next
			c.ClientCompletionData = priced.CompletionData(h.AddonSelections, now)
		case KindOf(err) == ErrValidation:
			log.Printf("[contract][usecase] hunt booking no longer valid, contract stays draft hunt_id=%s err=%v", h.ID, err)
		default:
			return entities.HuntContract{}, false, err
		}
	}

	created, wasCreated, err := u.contracts.CreateForHunt(ctx, c)
	if err != nil {
		return entities.HuntContract{}, false, collaborator("create hunt contract", err)
	}
	return created, wasCreated, nil
}

func (u *ContractUseCase) Get(ctx context.Context, caller entities.Caller, contractID string) (entities.HuntContract, error) {
	return loadContract(ctx, u.contracts, caller, contractID)
}

func (u *ContractUseCase) SendToClient(ctx context.Context, caller entities.Caller, contractID string) (entities.HuntContract, error) {
	if err := requireStaff(caller); err != nil {
		return entities.HuntContract{}, err
	}
	c, err := loadContract(ctx, u.contracts, caller, contractID)
	if err != nil {
		return entities.HuntContract{}, err
	}

	templateID := c.TemplateID
	if templateID == "" {
		if templateID, err = u.templates.DefaultTemplateID(ctx, c.OutfitterID); err != nil {
			return entities.HuntContract{}, collaborator("load contract template", err)
		}
	}
	facts := lifecycle.Facts{TemplateAttached: templateID != "", HuntLinked: c.HuntID != ""}
	return u.apply(ctx, c, lifecycle.EventSendToClient, facts, func(c *entities.HuntContract) {
		c.TemplateID = templateID
	})
}

// SubmitClientCompletion validates and prices the client's selection, records
// it on the hunt and freezes it on the contract for admin review. Both records
// are written in one repository call so a lost race leaves the hunt untouched.
func (u *ContractUseCase) SubmitClientCompletion(ctx context.Context, caller entities.Caller, contractID string, sel Selection, notes string) (entities.HuntContract, error) {
	c, err := loadContract(ctx, u.contracts, caller, contractID)
	if err != nil {
		return entities.HuntContract{}, err
	}
	facts := lifecycle.Facts{TemplateAttached: c.TemplateID != "", HuntLinked: c.HuntID != "", SelectionComplete: true}
	if _, err := lifecycle.Transition(c.Status, lifecycle.EventClientSubmit, facts); err != nil {
		return entities.HuntContract{}, stateErr(err)
	}

	h, err := u.hunts.GetByID(ctx, c.HuntID)
	if err != nil {
		return entities.HuntContract{}, collaborator("load hunt", err)
	}
	if h.ID == "" {
		return entities.HuntContract{}, ErrNotYours
	}
	priced, err := u.pricer.priceSelection(ctx, h, sel)
	if err != nil {
		return entities.HuntContract{}, err
	}

	now := time.Now().UTC()
	booked := bookedHunt(h, priced, sel.Addons, now)
	write := func(ctx context.Context, c entities.HuntContract) (entities.HuntContract, error) {
		return u.contracts.UpdateWithBooking(ctx, c, booked)
	}
	return u.applyWith(ctx, c, lifecycle.EventClientSubmit, facts, func(c *entities.HuntContract) {
		c.ClientCompletionData = priced.CompletionData(sel.Addons, now)
		c.ClientCompletionData.Notes = strings.TrimSpace(notes)
		c.ReviewNote = ""
	}, write)
}

func (u *ContractUseCase) Approve(ctx context.Context, caller entities.Caller, contractID string) (entities.HuntContract, error) {
	if err := requireStaff(caller); err != nil {
		return entities.HuntContract{}, err
	}
	c, err := loadContract(ctx, u.contracts, caller, contractID)
	if err != nil {
		return entities.HuntContract{}, err
	}
	return u.apply(ctx, c, lifecycle.EventApprove, lifecycle.Facts{}, nil)
}

// Reject returns the contract to the client for re-submission.
func (u *ContractUseCase) Reject(ctx context.Context, caller entities.Caller, contractID string, reason string) (entities.HuntContract, error) {
	if err := requireStaff(caller); err != nil {
		return entities.HuntContract{}, err
	}
	c, err := loadContract(ctx, u.contracts, caller, contractID)
	if err != nil {
		return entities.HuntContract{}, err
	}
	return u.apply(ctx, c, lifecycle.EventReject, lifecycle.Facts{}, func(c *entities.HuntContract) {
		c.ReviewNote = strings.TrimSpace(reason)
	})
}

// SendForSignature hands the contract to the signature service. A failed call
// leaves the contract untouched; the engine does not retry.
func (u *ContractUseCase) SendForSignature(ctx context.Context, caller entities.Caller, contractID string) (entities.HuntContract, error) {
	if err := requireStaff(caller); err != nil {
		return entities.HuntContract{}, err
	}
	c, err := loadContract(ctx, u.contracts, caller, contractID)
	if err != nil {
		return entities.HuntContract{}, err
	}
	if _, err := lifecycle.Transition(c.Status, lifecycle.EventSendForSignature, lifecycle.Facts{}); err != nil {
		return entities.HuntContract{}, stateErr(err)
	}

	log.Printf("[contract][usecase] calling signature service contract_id=%s", c.ID)
	ref, err := u.signatures.Send(ctx, c)
	if err != nil {
		log.Printf("[contract][usecase] signature service send failed contract_id=%s err=%v", c.ID, err)
		return entities.HuntContract{}, collaborator("send to signature service", err)
	}
	return u.apply(ctx, c, lifecycle.EventSendForSignature, lifecycle.Facts{}, func(c *entities.HuntContract) {
		c.SignatureRef = ref
	})
}

// SyncSignatureStatus polls the signature service and applies the client and
// counter-party signature events it reports, in that order.
func (u *ContractUseCase) SyncSignatureStatus(ctx context.Context, caller entities.Caller, contractID string) (entities.HuntContract, error) {
	c, err := loadContract(ctx, u.contracts, caller, contractID)
	if err != nil {
		return entities.HuntContract{}, err
	}
	switch c.Status {
	case entities.ContractStatusFullyExecuted:
		return c, nil
	case entities.ContractStatusSentToSignatureService, entities.ContractStatusClientSigned:
	default:
		return entities.HuntContract{}, stateErr(fmt.Errorf("%w: status is %s", ErrSignatureNotSent, c.Status))
	}
	if c.SignatureRef == "" {
		return entities.HuntContract{}, stateErr(fmt.Errorf("%w: no tracking reference", ErrSignatureNotSent))
	}

	st, err := u.signatures.GetStatus(ctx, c.SignatureRef)
	if err != nil {
		return entities.HuntContract{}, collaborator("get signature status", err)
	}

	now := time.Now().UTC()
	next := c
	if next.Status == entities.ContractStatusSentToSignatureService && st.ClientSigned {
		if next.Status, err = lifecycle.Transition(next.Status, lifecycle.EventClientSigned, lifecycle.Facts{}); err != nil {
			return entities.HuntContract{}, stateErr(err)
		}
		next.ClientSignedAt = signedAt(st.ClientSignedAt, now)
	}
	if next.Status == entities.ContractStatusClientSigned && st.AdminSigned {
		if next.Status, err = lifecycle.Transition(next.Status, lifecycle.EventCounterpartSigned, lifecycle.Facts{}); err != nil {
			return entities.HuntContract{}, stateErr(err)
		}
		next.AdminSignedAt = signedAt(st.AdminSignedAt, now)
	}
	if next.Status == c.Status {
		return c, nil
	}

	next.UpdatedAt = now
	updated, err := u.contracts.Update(ctx, next)
	if err != nil {
		return entities.HuntContract{}, collaborator("update contract", err)
	}
	log.Printf("[contract][usecase] signature sync contract_id=%s from=%s to=%s", c.ID, c.Status, updated.Status)
	return updated, nil
}

// Cancel cancels the contract and its pending payment items in one write.
// Clients may only withdraw before admin approval.
func (u *ContractUseCase) Cancel(ctx context.Context, caller entities.Caller, contractID string) (entities.HuntContract, error) {
	c, err := loadContract(ctx, u.contracts, caller, contractID)
	if err != nil {
		return entities.HuntContract{}, err
	}
	if !caller.IsStaff() && !clientMayCancel(c.Status) {
		return entities.HuntContract{}, stateErr(fmt.Errorf("%w: status is %s", ErrClientCannotCancel, c.Status))
	}

	next, err := lifecycle.Transition(c.Status, lifecycle.EventCancel, lifecycle.Facts{})
	if err != nil {
		return entities.HuntContract{}, stateErr(err)
	}

	items, err := u.payments.ListByContractID(ctx, c.ID)
	if err != nil {
		return entities.HuntContract{}, collaborator("list payment items", err)
	}
	pending := make([]entities.PaymentItem, 0, len(items))
	for _, it := range items {
		if it.Status == entities.PaymentStatusPending {
			pending = append(pending, it)
		}
	}

	now := time.Now().UTC()
	from := c.Status
	c.Status = next
	c.CancelledAt = &now
	c.UpdatedAt = now
	updated, err := u.contracts.CancelWithItems(ctx, c, pending)
	if err != nil {
		log.Printf("[contract][usecase] cancel failed contract_id=%s err=%v", c.ID, err)
		return entities.HuntContract{}, collaborator("cancel contract", err)
	}
	log.Printf("[contract][usecase] cancelled contract_id=%s from=%s payment_items_cancelled=%d", c.ID, from, len(pending))
	return updated, nil
}

func (u *ContractUseCase) apply(ctx context.Context, c entities.HuntContract, ev lifecycle.Event, facts lifecycle.Facts, mutate func(*entities.HuntContract)) (entities.HuntContract, error) {
	return u.applyWith(ctx, c, ev, facts, mutate, u.contracts.Update)
}

func (u *ContractUseCase) applyWith(ctx context.Context, c entities.HuntContract, ev lifecycle.Event, facts lifecycle.Facts, mutate func(*entities.HuntContract), write func(context.Context, entities.HuntContract) (entities.HuntContract, error)) (entities.HuntContract, error) {
	next, err := lifecycle.Transition(c.Status, ev, facts)
	if err != nil {
		return entities.HuntContract{}, stateErr(err)
	}
	from := c.Status
	c.Status = next
	c.UpdatedAt = time.Now().UTC()
	if mutate != nil {
		mutate(&c)
	}
	updated, err := write(ctx, c)
	if err != nil {
		log.Printf("[contract][usecase] %s failed contract_id=%s err=%v", ev, c.ID, err)
		return entities.HuntContract{}, collaborator("update contract", err)
	}
	log.Printf("[contract][usecase] %s contract_id=%s from=%s to=%s", ev, c.ID, from, updated.Status)
	return updated, nil
}

func clientMayCancel(s entities.ContractStatus) bool {
	switch s {
	case entities.ContractStatusDraft, entities.ContractStatusPendingClientCompletion, entities.ContractStatusPendingAdminReview:
		return true
	}
	return false
}

func signedAt(reported *time.Time, now time.Time) *time.Time {
	if reported != nil && !reported.IsZero() {
		t := reported.UTC()
		return &t
	}
	return &now
}

func bookedHunt(h entities.Hunt, priced PricedSelection, addons map[entities.AddonType]int, now time.Time) entities.Hunt {
	start, end := priced.Span.Start, priced.Span.End
	h.SelectedPricingItemID = priced.Plan.ID
	h.AddonSelections = addons
	h.StartTime = &start
	h.EndTime = &end
	h.UpdatedAt = now
	return h
}
