package response

import (
	"time"

	"outfitter_billing/internal/domain/booking"
	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/domain/lifecycle"
)

type CompletionResponse struct {
	PricingItemID   string         `json:"pricing_item_id"`
	AddonSelections map[string]int `json:"addon_selections,omitempty"`
	StartDate       string         `json:"start_date"`
	EndDate         string         `json:"end_date"`
	Notes           string         `json:"notes,omitempty"`
	CapturedAt      time.Time      `json:"captured_at"`
}

type ContractResponse struct {
	ID                   string              `json:"id"`
	OutfitterID          string              `json:"outfitter_id"`
	HuntID               string              `json:"hunt_id,omitempty"`
	ClientEmail          string              `json:"client_email"`
	TemplateID           string              `json:"template_id,omitempty"`
	Status               string              `json:"status"`
	AllowedEvents        []string            `json:"allowed_events"`
	ClientCompletionData *CompletionResponse `json:"client_completion_data,omitempty"`
	SignatureRef         string              `json:"signature_ref,omitempty"`
	ReviewNote           string              `json:"review_note,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
	ClientSignedAt       *time.Time          `json:"client_signed_at,omitempty"`
	AdminSignedAt        *time.Time          `json:"admin_signed_at,omitempty"`
	CancelledAt          *time.Time          `json:"cancelled_at,omitempty"`
	Version              int64               `json:"version"`
}

type EnsureContractResponse struct {
	Contract ContractResponse `json:"contract"`
	Created  bool             `json:"created"`
}

func FromContract(c entities.HuntContract) ContractResponse {
	res := ContractResponse{
		ID:             c.ID,
		OutfitterID:    c.OutfitterID,
		HuntID:         c.HuntID,
		ClientEmail:    c.ClientEmail,
		TemplateID:     c.TemplateID,
		Status:         string(c.Status),
		AllowedEvents:  []string{},
		SignatureRef:   c.SignatureRef,
		ReviewNote:     c.ReviewNote,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		ClientSignedAt: c.ClientSignedAt,
		AdminSignedAt:  c.AdminSignedAt,
		CancelledAt:    c.CancelledAt,
		Version:        c.Version,
	}
	for _, ev := range lifecycle.Allowed(c.Status) {
		res.AllowedEvents = append(res.AllowedEvents, string(ev))
	}
	if cd := c.ClientCompletionData; cd != nil {
		cr := &CompletionResponse{
			PricingItemID: cd.PricingItemID,
			StartDate:     booking.FormatDate(cd.StartDate),
			EndDate:       booking.FormatDate(cd.EndDate),
			Notes:         cd.Notes,
			CapturedAt:    cd.CapturedAt,
		}
		if len(cd.AddonSelections) > 0 {
			cr.AddonSelections = make(map[string]int, len(cd.AddonSelections))
			for k, v := range cd.AddonSelections {
				cr.AddonSelections[string(k)] = v
			}
		}
		res.ClientCompletionData = cr
	}
	return res
}
