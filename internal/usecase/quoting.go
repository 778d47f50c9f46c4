package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"maps"
	"strings"
	"time"

	"outfitter_billing/internal/domain/booking"
	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/domain/pricing"
	"outfitter_billing/internal/usecase/interfaces"
)

// Selection is a client's plan, add-on and date choice for a hunt. EndDate may
// be omitted; it is then derived from the plan's day count.
type Selection struct {
	PricingItemID string
	Addons        map[entities.AddonType]int
	StartDate     time.Time
	EndDate       *time.Time
}

// PricedSelection is a validated Selection with its price.
type PricedSelection struct {
	Plan         entities.PricingItem `json:"plan"`
	Quote        pricing.Quote        `json:"quote"`
	Span         booking.Span         `json:"span"`
	RequiredDays int                  `json:"required_days"`
}

// CompletionData freezes a priced selection for the contract.
func (p PricedSelection) CompletionData(addons map[entities.AddonType]int, now time.Time) *entities.CompletionData {
	return &entities.CompletionData{
		PricingItemID:   p.Plan.ID,
		AddonSelections: maps.Clone(addons),
		StartDate:       p.Span.Start,
		EndDate:         p.Span.End,
		CapturedAt:      now,
	}
}

// pricer couples the catalog with the configured platform fee.
type pricer struct {
	catalog interfaces.IPricingItemRepository
	rate    pricing.FeeRate
}

func (p pricer) load(ctx context.Context, outfitterID string) ([]entities.PricingItem, error) {
	items, err := p.catalog.ListByOutfitter(ctx, outfitterID)
	if err != nil {
		return nil, collaborator("load pricing catalog", err)
	}
	return items, nil
}

// priceSelection runs the matcher, date validator and fee calculator for a
// selection against the hunt's current catalog.
func (p pricer) priceSelection(ctx context.Context, h entities.Hunt, sel Selection) (PricedSelection, error) {
	items, err := p.load(ctx, h.OutfitterID)
	if err != nil {
		return PricedSelection{}, err
	}

	plans := pricing.Match(items, h.Species, h.Weapon, pricing.SectionGuideFees)
	id := strings.TrimSpace(sel.PricingItemID)
	if id == "" {
		return PricedSelection{}, validation(fmt.Errorf("%w (options: %s)", ErrPlanNotSelected, itemIDs(plans)))
	}
	plan, ok := pricing.FindByID(plans, id)
	if !ok {
		return PricedSelection{}, validation(fmt.Errorf("%w: %s for %s/%s (options: %s)", ErrPlanNotOffered, id, h.Species, h.Weapon, itemIDs(plans)))
	}

	addons := pricing.Match(items, h.Species, h.Weapon, pricing.SectionAddons)
	required := booking.RequiredDays(&plan, pricing.ExtraDays(sel.Addons))
	span, err := booking.DeriveSpan(sel.StartDate, sel.EndDate, h.SeasonWindow, required)
	if err != nil {
		return PricedSelection{}, validation(err)
	}

	q, err := pricing.Price(&plan, sel.Addons, addons, p.rate)
	if err != nil {
		return PricedSelection{}, validation(err)
	}
	return PricedSelection{Plan: plan, Quote: q, Span: span, RequiredDays: required}, nil
}

// priceCompletion prices a contract's frozen selection at current catalog
// prices. The plan is looked up by id only, and add-ons fall back to the whole
// add-on section, so later edits to the hunt's species or weapon do not orphan
// an executed contract.
func (p pricer) priceCompletion(ctx context.Context, c entities.HuntContract, h entities.Hunt) (pricing.Quote, error) {
	d := c.ClientCompletionData
	if d == nil {
		return pricing.Quote{}, validation(ErrMissingCompletion)
	}
	items, err := p.load(ctx, c.OutfitterID)
	if err != nil {
		return pricing.Quote{}, err
	}

	plans, allAddons := pricing.Split(items)
	plan, ok := pricing.FindByID(plans, d.PricingItemID)
	if !ok {
		return pricing.Quote{}, validation(fmt.Errorf("%w: %s", ErrPlanUnavailable, d.PricingItemID))
	}
	if h.ID != "" {
		matched := pricing.Match(items, h.Species, h.Weapon, pricing.SectionAddons)
		q, err := pricing.Price(&plan, d.AddonSelections, matched, p.rate)
		if err == nil {
			return q, nil
		}
		if !errors.Is(err, pricing.ErrAddonNotOffered) {
			return pricing.Quote{}, validation(err)
		}
		log.Printf("[bill][usecase] add-on no longer matches hunt, pricing from full catalog contract_id=%s hunt_id=%s err=%v", c.ID, h.ID, err)
	}
	q, err := pricing.Price(&plan, d.AddonSelections, allAddons, p.rate)
	if err != nil {
		return pricing.Quote{}, validation(err)
	}
	return q, nil
}

func selectionFromHunt(h entities.Hunt) Selection {
	sel := Selection{PricingItemID: h.SelectedPricingItemID, Addons: h.AddonSelections, EndDate: h.EndTime}
	if h.StartTime != nil {
		sel.StartDate = *h.StartTime
	}
	return sel
}

func itemIDs(items []entities.PricingItem) string {
	if len(items) == 0 {
		return "none"
	}
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return strings.Join(ids, ", ")
}
