package interfaces

import "context"

// IContractTemplateSource resolves the outfitter's default contract template.
// An empty id with a nil error means the outfitter has not configured one yet.
type IContractTemplateSource interface {
	DefaultTemplateID(ctx context.Context, outfitterID string) (string, error)
}
