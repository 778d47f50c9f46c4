package interfaces

import (
	"context"
	"outfitter_billing/internal/domain/entities"
)

// IPaymentItemRepository abstracts persistence for PaymentItem.
//
// Every write that changes the billing arrangement also bumps the owning
// contract's Version (compare-and-set), so a concurrent cancel and a concurrent
// bill write can never both succeed:
//   - CreateFull inserts the full-amount item (attribute_not_exists on its id).
//   - Reprice refreshes the totals of a pending, unpaid full-amount item.
//   - ReplaceWithInstallments cancels the given items and inserts the schedule.
//
// MarkPaid is conditional on the item still being pending.

type IPaymentItemRepository interface {
	GetByID(ctx context.Context, id string) (entities.PaymentItem, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.PaymentItem, error)
	CreateFull(ctx context.Context, c entities.HuntContract, item entities.PaymentItem) (entities.PaymentItem, error)
	Reprice(ctx context.Context, c entities.HuntContract, item entities.PaymentItem) (entities.PaymentItem, error)
	ReplaceWithInstallments(ctx context.Context, c entities.HuntContract, cancel []entities.PaymentItem, installments []entities.PaymentItem) ([]entities.PaymentItem, error)
	MarkPaid(ctx context.Context, item entities.PaymentItem) (entities.PaymentItem, error)
}
