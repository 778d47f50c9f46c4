package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/usecase"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrUnknownAddonType = errors.New("unknown add-on type")
)

// SelectionRequest is the plan, add-on and date choice for a hunt. end_date
// may be omitted; it is derived from the plan's included days.
type SelectionRequest struct {
	PricingItemID string         `json:"pricing_item_id"`
	Addons        map[string]int `json:"addons"`
	StartDate     string         `json:"start_date"`
	EndDate       string         `json:"end_date,omitempty"`
}

func (r SelectionRequest) ToSelection() (usecase.Selection, error) {
	sel := usecase.Selection{PricingItemID: strings.TrimSpace(r.PricingItemID)}

	if len(r.Addons) > 0 {
		sel.Addons = make(map[entities.AddonType]int, len(r.Addons))
		for k, qty := range r.Addons {
			kind := entities.AddonType(strings.ToLower(strings.TrimSpace(k)))
			if !kind.Valid() {
				return usecase.Selection{}, fmt.Errorf("%w: %q", ErrUnknownAddonType, k)
			}
			sel.Addons[kind] += qty
		}
	}

	if strings.TrimSpace(r.StartDate) != "" {
		start, err := ParseDate(r.StartDate)
		if err != nil {
			return usecase.Selection{}, err
		}
		sel.StartDate = start
	}
	if strings.TrimSpace(r.EndDate) != "" {
		end, err := ParseDate(r.EndDate)
		if err != nil {
			return usecase.Selection{}, err
		}
		sel.EndDate = &end
	}
	return sel, nil
}

// ParseDate accepts a calendar date or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

type SubmitCompletionRequest struct {
	SelectionRequest
	Notes string `json:"notes"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type PaymentPlanRequest struct {
	Installments int    `json:"installments" binding:"required"`
	FirstDueDate string `json:"first_due_date" binding:"required"`
}

func (r PaymentPlanRequest) FirstDue() (time.Time, error) {
	return ParseDate(r.FirstDueDate)
}
