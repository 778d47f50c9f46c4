package response

import (
	"encoding/json"
	"time"

	"outfitter_billing/internal/domain/booking"
	"outfitter_billing/internal/domain/entities"
)

type PaymentItemResponse struct {
	ID                string          `json:"id"`
	ContractID        string          `json:"contract_id"`
	ItemType          string          `json:"item_type"`
	PlanID            string          `json:"plan_id,omitempty"`
	InstallmentNumber int             `json:"installment_number,omitempty"`
	InstallmentCount  int             `json:"installment_count,omitempty"`
	SubtotalCents     int64           `json:"subtotal_cents"`
	PlatformFeeCents  int64           `json:"platform_fee_cents"`
	TotalCents        int64           `json:"total_cents"`
	TotalUSD          string          `json:"total_usd"`
	AmountPaidCents   int64           `json:"amount_paid_cents"`
	BalanceCents      int64           `json:"balance_cents"`
	BalanceUSD        string          `json:"balance_usd"`
	DueDate           string          `json:"due_date,omitempty"`
	Status            string          `json:"status"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	ProviderPayload   json.RawMessage `json:"provider_payload,omitempty"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
}

func FromPaymentItem(p entities.PaymentItem) PaymentItemResponse {
	res := PaymentItemResponse{
		ID:                p.ID,
		ContractID:        p.ContractID,
		ItemType:          string(p.ItemType),
		PlanID:            p.PlanID,
		InstallmentNumber: p.InstallmentNumber,
		InstallmentCount:  p.InstallmentCount,
		SubtotalCents:     p.SubtotalCents,
		PlatformFeeCents:  p.PlatformFeeCents,
		TotalCents:        p.TotalCents,
		TotalUSD:          USD(p.TotalCents),
		AmountPaidCents:   p.AmountPaidCents,
		BalanceCents:      p.BalanceCents(),
		BalanceUSD:        USD(p.BalanceCents()),
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		PaidAt:            p.PaidAt,
	}
	if p.DueDate != nil {
		res.DueDate = booking.FormatDate(*p.DueDate)
	}
	if json.Valid(p.ProviderPayload) {
		res.ProviderPayload = p.ProviderPayload
	}
	return res
}

type BillResponse struct {
	ContractID       string                `json:"contract_id"`
	Mode             string                `json:"mode"`
	SubtotalCents    int64                 `json:"subtotal_cents"`
	SubtotalUSD      string                `json:"subtotal_usd"`
	PlatformFeeCents int64                 `json:"platform_fee_cents"`
	PlatformFeeUSD   string                `json:"platform_fee_usd"`
	TotalCents       int64                 `json:"total_cents"`
	TotalUSD         string                `json:"total_usd"`
	AmountPaidCents  int64                 `json:"amount_paid_cents"`
	BalanceCents     int64                 `json:"balance_cents"`
	BalanceUSD       string                `json:"balance_usd"`
	Repriced         bool                  `json:"repriced,omitempty"`
	Items            []PaymentItemResponse `json:"items"`
}

func FromBill(b entities.Bill) BillResponse {
	res := BillResponse{
		ContractID:       b.ContractID,
		Mode:             string(b.Mode),
		SubtotalCents:    b.SubtotalCents,
		SubtotalUSD:      USD(b.SubtotalCents),
		PlatformFeeCents: b.PlatformFeeCents,
		PlatformFeeUSD:   USD(b.PlatformFeeCents),
		TotalCents:       b.TotalCents,
		TotalUSD:         USD(b.TotalCents),
		AmountPaidCents:  b.AmountPaidCents,
		BalanceCents:     b.BalanceCents,
		BalanceUSD:       USD(b.BalanceCents),
		Repriced:         b.Repriced,
		Items:            make([]PaymentItemResponse, 0, len(b.Items)),
	}
	for _, it := range b.Items {
		res.Items = append(res.Items, FromPaymentItem(it))
	}
	return res
}
