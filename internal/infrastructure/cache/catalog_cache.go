// Package cache keeps recently read pricing catalogs in process memory.
package cache

import (
	"context"
	"log"
	"slices"
	"time"

	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/usecase/interfaces"

	"github.com/dgraph-io/ristretto/v2"
	"golang.org/x/sync/singleflight"
)

const defaultMaxCost = 10_000

// CatalogCache is a read-through TTL cache in front of a pricing item
// repository. Cost is the number of catalog rows held.
//
// A catalog edit becomes visible after at most ttl, which bounds how long a
// bill can be computed from stale prices.
type CatalogCache struct {
	next  interfaces.IPricingItemRepository
	c     *ristretto.Cache[string, []entities.PricingItem]
	ttl   time.Duration
	loads singleflight.Group
}

var _ interfaces.IPricingItemRepository = (*CatalogCache)(nil)

func NewCatalogCache(next interfaces.IPricingItemRepository, ttl time.Duration, maxCost int64) (*CatalogCache, error) {
	if maxCost <= 0 {
		maxCost = defaultMaxCost
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, []entities.PricingItem]{
		NumCounters:        maxCost * 10,
		MaxCost:            maxCost,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &CatalogCache{next: next, c: c, ttl: ttl}, nil
}

func (cc *CatalogCache) ListByOutfitter(ctx context.Context, outfitterID string) ([]entities.PricingItem, error) {
	if items, ok := cc.c.Get(outfitterID); ok {
		return slices.Clone(items), nil
	}

	v, err, _ := cc.loads.Do(outfitterID, func() (any, error) {
		items, err := cc.next.ListByOutfitter(ctx, outfitterID)
		if err != nil {
			return nil, err
		}
		cc.c.SetWithTTL(outfitterID, items, max(1, int64(len(items))), cc.ttl)
		log.Printf("[catalog][cache] loaded outfitter_id=%s items=%d ttl=%s", outfitterID, len(items), cc.ttl)
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]entities.PricingItem)), nil
}
