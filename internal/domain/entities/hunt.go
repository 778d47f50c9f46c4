package entities

import "time"

// DateWindow is an inclusive calendar-date range.
type DateWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Hunt is the calendar-event projection the billing engine needs.
//
// Storage model (DynamoDB):
//   - PK: id
//
// StartTime/EndTime stay mutable until the hunt's contract is fully executed.
type Hunt struct {
	ID                    string            `json:"id"`
	OutfitterID           string            `json:"outfitter_id"`
	ClientEmail           string            `json:"client_email"`
	Species               string            `json:"species"`
	Weapon                string            `json:"weapon"`
	HuntCode              string            `json:"hunt_code"`
	SeasonWindow          *DateWindow       `json:"season_window,omitempty"`
	SelectedPricingItemID string            `json:"selected_pricing_item_id,omitempty"`
	AddonSelections       map[AddonType]int `json:"addon_selections,omitempty"`
	StartTime             *time.Time        `json:"start_time,omitempty"`
	EndTime               *time.Time        `json:"end_time,omitempty"`
	UpdatedAt             time.Time         `json:"updated_at"`
}

// HasBooking reports whether a plan and both span endpoints have been recorded.
func (h Hunt) HasBooking() bool {
	return h.SelectedPricingItemID != "" && h.StartTime != nil && h.EndTime != nil
}
