package interfaces

import (
	"context"
	"outfitter_billing/internal/domain/entities"
)

// IHuntRepository abstracts persistence for the hunt calendar projection.
//
// GetByID returns an empty Hunt (ID == "") when the hunt does not exist.

type IHuntRepository interface {
	GetByID(ctx context.Context, id string) (entities.Hunt, error)
	UpdateBooking(ctx context.Context, h entities.Hunt) (entities.Hunt, error)
}
