package pricing

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"sort"

	"outfitter_billing/internal/domain/entities"
)

// MinPlatformFeeCents is the floor applied to any non-zero subtotal.
const MinPlatformFeeCents int64 = 50

var (
	ErrUnknownAddon       = errors.New("unknown add-on kind")
	ErrAddonNotOffered    = errors.New("add-on not offered in catalog")
	ErrNegativeQuantity   = errors.New("add-on quantity must not be negative")
	ErrInvalidFeeRate     = errors.New("platform fee percent must be between 0 and 100")
	ErrPlanIsAddon        = errors.New("selected item is an add-on, not a guide-fee plan")
	ErrNegativeAmount     = errors.New("catalog amount must not be negative")
	ErrPlanRequiredForFee = errors.New("a guide-fee plan or at least one add-on is required")
)

// FeeRate is a platform fee percentage in millionths of a percent, so fee
// math never touches floating point.
type FeeRate int64

const (
	feeUnitsPerPercent = 1_000_000
	feeUnitsWhole      = 100 * feeUnitsPerPercent
)

// FeeRateFromPercent converts a configured percentage (e.g. 5 or 2.955).
// Percents finer than a millionth of a percent are rejected rather than rounded.
func FeeRateFromPercent(percent float64) (FeeRate, error) {
	if percent < 0 || percent > 100 || math.IsNaN(percent) {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidFeeRate, percent)
	}
	scaled := percent * feeUnitsPerPercent
	units := math.Round(scaled)
	if math.Abs(scaled-units) > 1e-3 {
		return 0, fmt.Errorf("%w: %v has more than 6 decimal places", ErrInvalidFeeRate, percent)
	}
	return FeeRate(units), nil
}

func (r FeeRate) Percent() float64 {
	return float64(r) / feeUnitsPerPercent
}

// Of returns ceil(cents * percent / 100), in cents.
func (r FeeRate) Of(cents int64) int64 {
	if cents <= 0 || r <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(cents), uint64(r))
	lo, carry := bits.Add64(lo, feeUnitsWhole-1, 0)
	q, _ := bits.Div64(hi+carry, lo, feeUnitsWhole)
	return int64(q)
}

// PlatformFee applies the fee rate with the 50-cent floor. A zero subtotal
// carries no fee.
func PlatformFee(subtotalCents int64, rate FeeRate) int64 {
	if subtotalCents <= 0 {
		return 0
	}
	return max(MinPlatformFeeCents, rate.Of(subtotalCents))
}

// Line is one priced row of a quote.
type Line struct {
	Kind        string      `json:"kind"`
	ItemID      string      `json:"item_id"`
	Title       string      `json:"title"`
	UnitCents   int64       `json:"unit_cents"`
	Quantity    int         `json:"quantity"`
	AmountCents int64       `json:"amount_cents"`
	Source      MatchSource `json:"source,omitempty"`
}

const LineKindPlan = "plan"

// Quote is the Fee Calculator output.
type Quote struct {
	SubtotalCents    int64  `json:"subtotal_cents"`
	PlatformFeeCents int64  `json:"platform_fee_cents"`
	TotalCents       int64  `json:"total_cents"`
	Lines            []Line `json:"lines"`
}

// Price computes subtotal, platform fee and total for a plan plus add-on
// quantities. Add-ons are resolved against addonCatalog by addon_type, with
// the title heuristic as a fallback for untagged rows.
func Price(plan *entities.PricingItem, selections map[entities.AddonType]int, addonCatalog []entities.PricingItem, rate FeeRate) (Quote, error) {
	var q Quote

	if plan != nil {
		if plan.IsAddon() {
			return Quote{}, fmt.Errorf("%w: %q", ErrPlanIsAddon, plan.Title)
		}
		cents := plan.AmountCents()
		if cents < 0 {
			return Quote{}, fmt.Errorf("%w: %q", ErrNegativeAmount, plan.Title)
		}
		q.Lines = append(q.Lines, Line{
			Kind:        LineKindPlan,
			ItemID:      plan.ID,
			Title:       plan.Title,
			UnitCents:   cents,
			Quantity:    1,
			AmountCents: cents,
		})
		q.SubtotalCents += cents
	}

	kinds, err := selectedKinds(selections)
	if err != nil {
		return Quote{}, err
	}
	for _, kind := range kinds {
		qty := selections[kind]
		if qty == 0 {
			continue
		}
		m, ok := ResolveAddon(kind, addonCatalog)
		if !ok {
			return Quote{}, fmt.Errorf("%w: %s", ErrAddonNotOffered, kind)
		}
		unit := m.Item.AmountCents()
		if unit < 0 {
			return Quote{}, fmt.Errorf("%w: %q", ErrNegativeAmount, m.Item.Title)
		}
		amount := unit * int64(qty)
		q.Lines = append(q.Lines, Line{
			Kind:        string(kind),
			ItemID:      m.Item.ID,
			Title:       m.Item.Title,
			UnitCents:   unit,
			Quantity:    qty,
			AmountCents: amount,
			Source:      m.Source,
		})
		q.SubtotalCents += amount
	}

	if len(q.Lines) == 0 {
		return Quote{}, ErrPlanRequiredForFee
	}

	q.PlatformFeeCents = PlatformFee(q.SubtotalCents, rate)
	q.TotalCents = q.SubtotalCents + q.PlatformFeeCents
	return q, nil
}

// selectedKinds validates the selection map and returns its kinds in a stable order.
func selectedKinds(selections map[entities.AddonType]int) ([]entities.AddonType, error) {
	kinds := make([]entities.AddonType, 0, len(selections))
	for kind, qty := range selections {
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: %q (expected one of %v)", ErrUnknownAddon, kind, entities.AddonTypes)
		}
		if qty < 0 {
			return nil, fmt.Errorf("%w: %s=%d", ErrNegativeQuantity, kind, qty)
		}
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return addonOrder(kinds[i]) < addonOrder(kinds[j]) })
	return kinds, nil
}

func addonOrder(kind entities.AddonType) int {
	for i, k := range entities.AddonTypes {
		if k == kind {
			return i
		}
	}
	return len(entities.AddonTypes)
}

// ExtraDays returns the extra_days quantity of a selection, clamped at 0.
func ExtraDays(selections map[entities.AddonType]int) int {
	return max(0, selections[entities.AddonExtraDays])
}
