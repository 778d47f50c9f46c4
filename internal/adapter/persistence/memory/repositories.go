package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/usecase/interfaces"
)

func errConflict(kind, id string) error {
	return fmt.Errorf("%w (%s %s)", interfaces.ErrConflict, kind, id)
}

type PricingItemRepository struct{ s *Store }

var _ interfaces.IPricingItemRepository = (*PricingItemRepository)(nil)

func NewPricingItemRepository(s *Store) *PricingItemRepository { return &PricingItemRepository{s: s} }

func (r *PricingItemRepository) ListByOutfitter(_ context.Context, outfitterID string) ([]entities.PricingItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.PricingItem, 0, len(r.s.pricing[outfitterID]))
	for _, it := range r.s.pricing[outfitterID] {
		out = append(out, clonePricingItem(it))
	}
	return out, nil
}

type TemplateSource struct{ s *Store }

var _ interfaces.IContractTemplateSource = (*TemplateSource)(nil)

func NewTemplateSource(s *Store) *TemplateSource { return &TemplateSource{s: s} }

func (t *TemplateSource) DefaultTemplateID(_ context.Context, outfitterID string) (string, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	return t.s.templates[outfitterID], nil
}

type HuntRepository struct{ s *Store }

var _ interfaces.IHuntRepository = (*HuntRepository)(nil)

func NewHuntRepository(s *Store) *HuntRepository { return &HuntRepository{s: s} }

func (r *HuntRepository) GetByID(_ context.Context, id string) (entities.Hunt, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	h, ok := r.s.hunts[id]
	if !ok {
		return entities.Hunt{}, nil
	}
	return cloneHunt(h), nil
}

// UpdateBooking writes only the booking fields of the hunt.
func (r *HuntRepository) UpdateBooking(_ context.Context, h entities.Hunt) (entities.Hunt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.setBooking(h)
}

type HuntContractRepository struct{ s *Store }

var _ interfaces.IHuntContractRepository = (*HuntContractRepository)(nil)

func NewHuntContractRepository(s *Store) *HuntContractRepository {
	return &HuntContractRepository{s: s}
}

func (r *HuntContractRepository) GetByID(_ context.Context, id string) (entities.HuntContract, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.contracts[id]
	if !ok {
		return entities.HuntContract{}, nil
	}
	return cloneContract(c), nil
}

func (r *HuntContractRepository) GetActiveByHuntID(_ context.Context, huntID string) (entities.HuntContract, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.huntLocks[huntID]
	if !ok {
		return entities.HuntContract{}, nil
	}
	return cloneContract(r.s.contracts[id]), nil
}

func (r *HuntContractRepository) CreateForHunt(_ context.Context, c entities.HuntContract) (entities.HuntContract, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if id, ok := r.s.huntLocks[c.HuntID]; ok {
		return cloneContract(r.s.contracts[id]), false, nil
	}
	if _, ok := r.s.contracts[c.ID]; ok {
		return entities.HuntContract{}, false, errConflict("contract", c.ID)
	}
	c.Version = 1
	r.s.contracts[c.ID] = cloneContract(c)
	r.s.huntLocks[c.HuntID] = c.ID
	return cloneContract(c), true, nil
}

func (r *HuntContractRepository) Update(_ context.Context, c entities.HuntContract) (entities.HuntContract, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, err := r.s.checkContract(c); err != nil {
		return entities.HuntContract{}, err
	}
	c.Version++
	r.s.contracts[c.ID] = cloneContract(c)
	return cloneContract(c), nil
}

func (r *HuntContractRepository) UpdateWithBooking(_ context.Context, c entities.HuntContract, h entities.Hunt) (entities.HuntContract, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, err := r.s.checkContract(c); err != nil {
		return entities.HuntContract{}, err
	}
	if _, err := r.s.setBooking(h); err != nil {
		return entities.HuntContract{}, err
	}
	c.Version++
	r.s.contracts[c.ID] = cloneContract(c)
	return cloneContract(c), nil
}

func (r *HuntContractRepository) CancelWithItems(_ context.Context, c entities.HuntContract, items []entities.PaymentItem) (entities.HuntContract, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, err := r.s.checkContract(c); err != nil {
		return entities.HuntContract{}, err
	}
	for _, it := range items {
		stored, ok := r.s.items[it.ID]
		if !ok || stored.Status != entities.PaymentStatusPending {
			return entities.HuntContract{}, errConflict("payment item", it.ID)
		}
	}

	now := c.UpdatedAt
	for _, it := range items {
		stored := r.s.items[it.ID]
		stored.Status = entities.PaymentStatusCancelled
		stored.UpdatedAt = now
		r.s.items[it.ID] = stored
	}
	if r.s.huntLocks[c.HuntID] == c.ID {
		delete(r.s.huntLocks, c.HuntID)
	}
	c.Version++
	r.s.contracts[c.ID] = cloneContract(c)
	return cloneContract(c), nil
}

type PaymentItemRepository struct{ s *Store }

var _ interfaces.IPaymentItemRepository = (*PaymentItemRepository)(nil)

func NewPaymentItemRepository(s *Store) *PaymentItemRepository {
	return &PaymentItemRepository{s: s}
}

func (r *PaymentItemRepository) GetByID(_ context.Context, id string) (entities.PaymentItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	it, ok := r.s.items[id]
	if !ok {
		return entities.PaymentItem{}, nil
	}
	return cloneItem(it), nil
}

func (r *PaymentItemRepository) ListByContractID(_ context.Context, contractID string) ([]entities.PaymentItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.PaymentItem, 0)
	for _, it := range r.s.items {
		if it.ContractID == contractID {
			out = append(out, cloneItem(it))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].InstallmentNumber != out[j].InstallmentNumber {
			return out[i].InstallmentNumber < out[j].InstallmentNumber
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *PaymentItemRepository) CreateFull(_ context.Context, c entities.HuntContract, item entities.PaymentItem) (entities.PaymentItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[item.ID]; ok {
		return entities.PaymentItem{}, errConflict("payment item", item.ID)
	}
	stored, err := r.s.checkContract(c)
	if err != nil {
		return entities.PaymentItem{}, err
	}
	r.s.items[item.ID] = cloneItem(item)
	r.s.bumpContract(stored, item.UpdatedAt)
	return cloneItem(item), nil
}

func (r *PaymentItemRepository) Reprice(_ context.Context, c entities.HuntContract, item entities.PaymentItem) (entities.PaymentItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	contract, err := r.s.checkContract(c)
	if err != nil {
		return entities.PaymentItem{}, err
	}
	stored, ok := r.s.items[item.ID]
	if !ok || stored.Status != entities.PaymentStatusPending || stored.AmountPaidCents != 0 {
		return entities.PaymentItem{}, errConflict("payment item", item.ID)
	}
	stored.SubtotalCents = item.SubtotalCents
	stored.PlatformFeeCents = item.PlatformFeeCents
	stored.TotalCents = item.TotalCents
	stored.UpdatedAt = item.UpdatedAt
	r.s.items[item.ID] = stored
	r.s.bumpContract(contract, item.UpdatedAt)
	return cloneItem(stored), nil
}

func (r *PaymentItemRepository) ReplaceWithInstallments(_ context.Context, c entities.HuntContract, cancel []entities.PaymentItem, installments []entities.PaymentItem) ([]entities.PaymentItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	contract, err := r.s.checkContract(c)
	if err != nil {
		return nil, err
	}
	for _, it := range cancel {
		stored, ok := r.s.items[it.ID]
		if !ok || stored.Status != entities.PaymentStatusPending || stored.AmountPaidCents != 0 {
			return nil, errConflict("payment item", it.ID)
		}
	}
	for _, it := range installments {
		if _, ok := r.s.items[it.ID]; ok {
			return nil, errConflict("payment item", it.ID)
		}
	}

	now := time.Now().UTC()
	for _, it := range cancel {
		stored := r.s.items[it.ID]
		stored.Status = entities.PaymentStatusCancelled
		stored.UpdatedAt = now
		r.s.items[it.ID] = stored
	}
	out := make([]entities.PaymentItem, len(installments))
	for i, it := range installments {
		r.s.items[it.ID] = cloneItem(it)
		out[i] = cloneItem(it)
	}
	r.s.bumpContract(contract, now)
	return out, nil
}

func (r *PaymentItemRepository) MarkPaid(_ context.Context, item entities.PaymentItem) (entities.PaymentItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.items[item.ID]
	if !ok || stored.Status != entities.PaymentStatusPending {
		return entities.PaymentItem{}, errConflict("payment item", item.ID)
	}
	r.s.items[item.ID] = cloneItem(item)
	return cloneItem(item), nil
}
