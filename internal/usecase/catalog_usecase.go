package usecase

import (
	"context"
	"log"

	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/domain/pricing"
	"outfitter_billing/internal/usecase/interfaces"
)

// PricingOptions are the catalog rows applicable to one hunt. Several plans
// may match; the client picks one.
type PricingOptions struct {
	HuntID string                 `json:"hunt_id"`
	Plans  []entities.PricingItem `json:"plans"`
	Addons []entities.PricingItem `json:"addons"`
}

// ICatalogUseCase exposes the pricing matcher and a side-effect free quote.
type ICatalogUseCase interface {
	ListOptions(ctx context.Context, caller entities.Caller, huntID string) (PricingOptions, error)
	Quote(ctx context.Context, caller entities.Caller, huntID string, sel Selection) (PricedSelection, error)
}

type CatalogUseCase struct {
	hunts  interfaces.IHuntRepository
	pricer pricer
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(hunts interfaces.IHuntRepository, catalog interfaces.IPricingItemRepository, rate pricing.FeeRate) *CatalogUseCase {
	return &CatalogUseCase{hunts: hunts, pricer: pricer{catalog: catalog, rate: rate}}
}

func (u *CatalogUseCase) ListOptions(ctx context.Context, caller entities.Caller, huntID string) (PricingOptions, error) {
	h, err := loadHunt(ctx, u.hunts, caller, huntID)
	if err != nil {
		return PricingOptions{}, err
	}
	items, err := u.pricer.load(ctx, h.OutfitterID)
	if err != nil {
		return PricingOptions{}, err
	}
	opts := PricingOptions{
		HuntID: h.ID,
		Plans:  pricing.Match(items, h.Species, h.Weapon, pricing.SectionGuideFees),
		Addons: pricing.Match(items, h.Species, h.Weapon, pricing.SectionAddons),
	}
	log.Printf("[catalog][usecase] options hunt_id=%s species=%q weapon=%q plans=%d addons=%d", h.ID, h.Species, h.Weapon, len(opts.Plans), len(opts.Addons))
	return opts, nil
}

func (u *CatalogUseCase) Quote(ctx context.Context, caller entities.Caller, huntID string, sel Selection) (PricedSelection, error) {
	h, err := loadHunt(ctx, u.hunts, caller, huntID)
	if err != nil {
		return PricedSelection{}, err
	}
	return u.pricer.priceSelection(ctx, h, sel)
}
