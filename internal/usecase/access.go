package usecase

import (
	"context"
	"fmt"
	"strings"

	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/domain/lifecycle"
	"outfitter_billing/internal/usecase/interfaces"
)

func loadHunt(ctx context.Context, repo interfaces.IHuntRepository, caller entities.Caller, huntID string) (entities.Hunt, error) {
	huntID = strings.TrimSpace(huntID)
	if huntID == "" {
		return entities.Hunt{}, ErrInvalidHuntID
	}
	h, err := repo.GetByID(ctx, huntID)
	if err != nil {
		return entities.Hunt{}, collaborator("load hunt", err)
	}
	if h.ID == "" || !caller.CanAccess(h.OutfitterID, h.ClientEmail) {
		return entities.Hunt{}, ErrNotYours
	}
	return h, nil
}

func loadContract(ctx context.Context, repo interfaces.IHuntContractRepository, caller entities.Caller, contractID string) (entities.HuntContract, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.HuntContract{}, ErrInvalidContractID
	}
	c, err := repo.GetByID(ctx, contractID)
	if err != nil {
		return entities.HuntContract{}, collaborator("load contract", err)
	}
	if c.ID == "" || !caller.CanAccess(c.OutfitterID, c.ClientEmail) {
		return entities.HuntContract{}, ErrNotYours
	}
	if !lifecycle.Known(c.Status) {
		return entities.HuntContract{}, stateErr(fmt.Errorf("%w: %q", ErrUnknownContractStatus, c.Status))
	}
	return c, nil
}

func requireStaff(caller entities.Caller) error {
	if !caller.IsStaff() {
		return ErrStaffOnly
	}
	return nil
}
