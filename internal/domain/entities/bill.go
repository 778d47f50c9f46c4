package entities

type BillMode string

const (
	BillModeFull         BillMode = "full"
	BillModeInstallments BillMode = "installments"
)

// Bill is the payable view of a contract's guide fee. Items holds the single
// full-amount item or the installment schedule ordered by installment number.
type Bill struct {
	ContractID       string        `json:"contract_id"`
	Mode             BillMode      `json:"mode"`
	SubtotalCents    int64         `json:"subtotal_cents"`
	PlatformFeeCents int64         `json:"platform_fee_cents"`
	TotalCents       int64         `json:"total_cents"`
	AmountPaidCents  int64         `json:"amount_paid_cents"`
	BalanceCents     int64         `json:"balance_cents"`
	Items            []PaymentItem `json:"items"`
	// Repriced is set when the stored full-amount item was refreshed from the
	// current catalog during this read.
	Repriced bool `json:"repriced,omitempty"`
}

// NewBill aggregates the active items of one billing arrangement.
func NewBill(contractID string, mode BillMode, items []PaymentItem) Bill {
	b := Bill{ContractID: contractID, Mode: mode, Items: items}
	for _, it := range items {
		b.SubtotalCents += it.SubtotalCents
		b.PlatformFeeCents += it.PlatformFeeCents
		b.TotalCents += it.TotalCents
		b.AmountPaidCents += it.AmountPaidCents
		b.BalanceCents += it.BalanceCents()
	}
	return b
}
