package entities

import "time"

// ContractStatus represents the lifecycle of a hunt contract.
//
// Domain notes:
//   - Legal moves between statuses live in internal/domain/lifecycle; nothing else
//     should compare statuses to decide whether a change is allowed.
//   - Only a fully executed contract can be billed.
type ContractStatus string

const (
	ContractStatusDraft                   ContractStatus = "draft"
	ContractStatusPendingClientCompletion ContractStatus = "pending_client_completion"
	ContractStatusPendingAdminReview      ContractStatus = "pending_admin_review"
	ContractStatusReadyForSignature       ContractStatus = "ready_for_signature"
	ContractStatusSentToSignatureService  ContractStatus = "sent_to_signature_service"
	ContractStatusClientSigned            ContractStatus = "client_signed"
	ContractStatusFullyExecuted           ContractStatus = "fully_executed"
	ContractStatusCancelled               ContractStatus = "cancelled"
)

// CompletionData freezes the client's plan/add-on/date selection when the
// contract leaves client completion. Billing always prices from this copy.
type CompletionData struct {
	PricingItemID   string            `json:"pricing_item_id"`
	AddonSelections map[AddonType]int `json:"addon_selections,omitempty"`
	StartDate       time.Time         `json:"start_date"`
	EndDate         time.Time         `json:"end_date"`
	Notes           string            `json:"notes,omitempty"`
	CapturedAt      time.Time         `json:"captured_at"`
}

// HuntContract is the bilateral agreement gating billing for a hunt.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (hunt_id-index): hunt_id
//   - At most one non-cancelled contract per hunt, enforced by a lock row in
//     the contract_hunt_locks table (PK: hunt_id).
type HuntContract struct {
	ID                   string          `json:"id"`
	OutfitterID          string          `json:"outfitter_id"`
	HuntID               string          `json:"hunt_id,omitempty"`
	ClientEmail          string          `json:"client_email"`
	TemplateID           string          `json:"template_id,omitempty"`
	Status               ContractStatus  `json:"status"`
	ClientCompletionData *CompletionData `json:"client_completion_data,omitempty"`
	SignatureRef         string          `json:"signature_ref,omitempty"`
	ReviewNote           string          `json:"review_note,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	ClientSignedAt       *time.Time      `json:"client_signed_at,omitempty"`
	AdminSignedAt        *time.Time      `json:"admin_signed_at,omitempty"`
	CancelledAt          *time.Time      `json:"cancelled_at,omitempty"`
	// Version is bumped by every write to the contract or its billing
	// arrangement; writers compare-and-set on it.
	Version int64 `json:"version"`
}
