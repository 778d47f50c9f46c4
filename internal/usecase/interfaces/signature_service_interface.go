package interfaces

import (
	"context"
	"time"

	"outfitter_billing/internal/domain/entities"
)

// SignatureStatus is the signature provider's view of an envelope.
type SignatureStatus struct {
	ClientSigned   bool
	AdminSigned    bool
	ClientSignedAt *time.Time
	AdminSignedAt  *time.Time
}

// ISignatureService abstracts the e-signature provider.
//
// The provider is eventually consistent; the engine polls GetStatus and never
// retries Send on its own.
type ISignatureService interface {
	Send(ctx context.Context, c entities.HuntContract) (trackingRef string, err error)
	GetStatus(ctx context.Context, trackingRef string) (SignatureStatus, error)
}
