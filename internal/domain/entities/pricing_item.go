package entities

import (
	"math"
	"strings"
	"time"
)

// AddonType tags an add-on PricingItem with the kind of extra it charges for.
// An empty value means the catalog row predates the explicit field.
type AddonType string

const (
	AddonExtraDays   AddonType = "extra_days"
	AddonNonHunter   AddonType = "non_hunter"
	AddonSpotter     AddonType = "spotter"
	AddonRifleRental AddonType = "rifle_rental"
)

// AddonTypes lists every known add-on kind in presentation order.
var AddonTypes = []AddonType{AddonExtraDays, AddonNonHunter, AddonSpotter, AddonRifleRental}

func (t AddonType) Valid() bool {
	for _, k := range AddonTypes {
		if k == t {
			return true
		}
	}
	return false
}

// AddonCategory is the catalog category that separates add-ons from guide-fee plans.
const AddonCategory = "Add-ons"

// PricingItem is a priced catalog offering owned by an outfitter.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (outfitter_id-index): outfitter_id
//
// Monetary representation:
//   - AmountUSD is the decimal price as entered by staff. Every computation goes
//     through AmountCents, which rounds once and stays integer afterwards.
type PricingItem struct {
	ID            string    `json:"id"`
	OutfitterID   string    `json:"outfitter_id"`
	Title         string    `json:"title"`
	AmountUSD     float64   `json:"amount_usd"`
	Category      string    `json:"category"`
	AddonType     AddonType `json:"addon_type,omitempty"`
	IncludedDays  *int      `json:"included_days,omitempty"`
	SpeciesFilter []string  `json:"species_filter,omitempty"`
	WeaponFilter  []string  `json:"weapon_filter,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AmountCents converts the stored USD decimal into integer cents.
func (p PricingItem) AmountCents() int64 {
	return int64(math.Round(p.AmountUSD * 100))
}

// IsAddon reports whether the item belongs to the add-on section of the catalog.
func (p PricingItem) IsAddon() bool {
	return strings.EqualFold(strings.TrimSpace(p.Category), AddonCategory)
}

// Days returns the included-day count of a guide-fee plan, or 0 when unset.
func (p PricingItem) Days() int {
	if p.IncludedDays == nil || *p.IncludedDays < 0 {
		return 0
	}
	return *p.IncludedDays
}
