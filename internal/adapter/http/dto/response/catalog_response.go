package response

import (
	"outfitter_billing/internal/domain/booking"
	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/domain/pricing"
	"outfitter_billing/internal/usecase"
)

type PricingItemResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	AmountCents   int64    `json:"amount_cents"`
	AmountUSD     string   `json:"amount_usd"`
	AddonType     string   `json:"addon_type,omitempty"`
	IncludedDays  *int     `json:"included_days,omitempty"`
	SpeciesFilter []string `json:"species_filter,omitempty"`
	WeaponFilter  []string `json:"weapon_filter,omitempty"`
}

func FromPricingItem(p entities.PricingItem) PricingItemResponse {
	return PricingItemResponse{
		ID:            p.ID,
		Title:         p.Title,
		Category:      p.Category,
		AmountCents:   p.AmountCents(),
		AmountUSD:     USD(p.AmountCents()),
		AddonType:     string(p.AddonType),
		IncludedDays:  p.IncludedDays,
		SpeciesFilter: p.SpeciesFilter,
		WeaponFilter:  p.WeaponFilter,
	}
}

type PricingOptionsResponse struct {
	HuntID string                `json:"hunt_id"`
	Plans  []PricingItemResponse `json:"plans"`
	Addons []PricingItemResponse `json:"addons"`
}

func FromPricingOptions(o usecase.PricingOptions) PricingOptionsResponse {
	res := PricingOptionsResponse{
		HuntID: o.HuntID,
		Plans:  make([]PricingItemResponse, 0, len(o.Plans)),
		Addons: make([]PricingItemResponse, 0, len(o.Addons)),
	}
	for _, p := range o.Plans {
		res.Plans = append(res.Plans, FromPricingItem(p))
	}
	for _, a := range o.Addons {
		res.Addons = append(res.Addons, FromPricingItem(a))
	}
	return res
}

type QuoteLineResponse struct {
	Kind        string `json:"kind"`
	ItemID      string `json:"item_id"`
	Title       string `json:"title"`
	Quantity    int    `json:"quantity"`
	UnitCents   int64  `json:"unit_cents"`
	AmountCents int64  `json:"amount_cents"`
	AmountUSD   string `json:"amount_usd"`
	Source      string `json:"source,omitempty"`
}

type QuoteResponse struct {
	PlanID           string              `json:"plan_id"`
	StartDate        string              `json:"start_date"`
	EndDate          string              `json:"end_date"`
	Days             int                 `json:"days"`
	RequiredDays     int                 `json:"required_days"`
	SubtotalCents    int64               `json:"subtotal_cents"`
	SubtotalUSD      string              `json:"subtotal_usd"`
	PlatformFeeCents int64               `json:"platform_fee_cents"`
	PlatformFeeUSD   string              `json:"platform_fee_usd"`
	TotalCents       int64               `json:"total_cents"`
	TotalUSD         string              `json:"total_usd"`
	Lines            []QuoteLineResponse `json:"lines"`
}

func FromPricedSelection(p usecase.PricedSelection) QuoteResponse {
	res := QuoteResponse{
		PlanID:           p.Plan.ID,
		StartDate:        booking.FormatDate(p.Span.Start),
		EndDate:          booking.FormatDate(p.Span.End),
		Days:             p.Span.Days,
		RequiredDays:     p.RequiredDays,
		SubtotalCents:    p.Quote.SubtotalCents,
		SubtotalUSD:      USD(p.Quote.SubtotalCents),
		PlatformFeeCents: p.Quote.PlatformFeeCents,
		PlatformFeeUSD:   USD(p.Quote.PlatformFeeCents),
		TotalCents:       p.Quote.TotalCents,
		TotalUSD:         USD(p.Quote.TotalCents),
	}
	res.Lines = fromLines(p.Quote.Lines)
	return res
}

func fromLines(lines []pricing.Line) []QuoteLineResponse {
	out := make([]QuoteLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, QuoteLineResponse{
			Kind:        l.Kind,
			ItemID:      l.ItemID,
			Title:       l.Title,
			Quantity:    l.Quantity,
			UnitCents:   l.UnitCents,
			AmountCents: l.AmountCents,
			AmountUSD:   USD(l.AmountCents),
			Source:      string(l.Source),
		})
	}
	return out
}

type BookingResponse struct {
	HuntID          string           `json:"hunt_id"`
	Quote           QuoteResponse    `json:"quote"`
	Contract        ContractResponse `json:"contract"`
	ContractCreated bool             `json:"contract_created"`
}

func FromBookingResult(r usecase.BookingResult) BookingResponse {
	return BookingResponse{
		HuntID:          r.Hunt.ID,
		Quote:           FromPricedSelection(r.Priced),
		Contract:        FromContract(r.Contract),
		ContractCreated: r.ContractCreated,
	}
}
