package entities

import (
	"encoding/json"
	"time"
)

type PaymentItemType string

const (
	PaymentItemGuideFee            PaymentItemType = "guide_fee"
	PaymentItemGuideFeeInstallment PaymentItemType = "guide_fee_installment"
)

// PaymentStatus represents the collection state of a PaymentItem.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// PaymentItem is a billable unit of a contract's guide fee.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (contract_id-index): contract_id
//
// A contract has either one active guide_fee item or one active set of
// guide_fee_installment items (same PlanID), never both.
//
// Provider payload:
//   - ProviderPayload keeps the payment provider response for audit.
type PaymentItem struct {
	ID                string          `json:"id"`
	OutfitterID       string          `json:"outfitter_id"`
	ContractID        string          `json:"contract_id"`
	ClientEmail       string          `json:"client_email"`
	ItemType          PaymentItemType `json:"item_type"`
	PlanID            string          `json:"plan_id,omitempty"`
	InstallmentNumber int             `json:"installment_number,omitempty"`
	InstallmentCount  int             `json:"installment_count,omitempty"`
	SubtotalCents     int64           `json:"subtotal_cents"`
	PlatformFeeCents  int64           `json:"platform_fee_cents"`
	TotalCents        int64           `json:"total_cents"`
	AmountPaidCents   int64           `json:"amount_paid_cents"`
	DueDate           *time.Time      `json:"due_date,omitempty"`
	Status            PaymentStatus   `json:"status"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	ProviderPayload   json.RawMessage `json:"provider_payload,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
}

// Active reports whether the item still counts toward the contract's bill.
func (p PaymentItem) Active() bool {
	return p.Status != PaymentStatusCancelled
}

func (p PaymentItem) BalanceCents() int64 {
	if b := p.TotalCents - p.AmountPaidCents; b > 0 {
		return b
	}
	return 0
}
