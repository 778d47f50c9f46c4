package interfaces

import (
	"context"
	"outfitter_billing/internal/domain/entities"
)

// IPricingItemRepository reads the outfitter's pricing catalog.
//
// The catalog is written by the admin UI; the billing engine never mutates it.

type IPricingItemRepository interface {
	ListByOutfitter(ctx context.Context, outfitterID string) ([]entities.PricingItem, error)
}
