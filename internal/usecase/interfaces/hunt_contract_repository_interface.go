package interfaces

import (
	"context"
	"errors"
	"outfitter_billing/internal/domain/entities"
)

// ErrConflict is returned by repositories when a compare-and-set write lost
// against a concurrent writer. Callers should re-read and decide again.
var ErrConflict = errors.New("conflict: record was modified by another request")

// IHuntContractRepository abstracts persistence for HuntContract.
//
// Guarantees required from implementations:
//   - CreateForHunt is idempotent on HuntID: when a non-cancelled contract already
//     references the hunt, it is returned with created=false and nothing is written.
//     This must hold under concurrent callers (no read-then-write check alone).
//   - Update is compare-and-set on Version and stores Version+1.
//   - UpdateWithBooking is Update plus the hunt's booking fields (as in
//     IHuntRepository.UpdateBooking), written atomically: on conflict neither changes.
//   - CancelWithItems cancels the contract, releases its hunt, and cancels the given
//     pending payment items in one atomic write.

type IHuntContractRepository interface {
	GetByID(ctx context.Context, id string) (entities.HuntContract, error)
	GetActiveByHuntID(ctx context.Context, huntID string) (entities.HuntContract, error)
	CreateForHunt(ctx context.Context, c entities.HuntContract) (contract entities.HuntContract, created bool, err error)
	Update(ctx context.Context, c entities.HuntContract) (entities.HuntContract, error)
	UpdateWithBooking(ctx context.Context, c entities.HuntContract, h entities.Hunt) (entities.HuntContract, error)
	CancelWithItems(ctx context.Context, c entities.HuntContract, items []entities.PaymentItem) (entities.HuntContract, error)
}
