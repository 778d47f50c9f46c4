// Package memory is a process-local implementation of the billing
// repositories. A single mutex makes every multi-record write atomic, which is
// what the DynamoDB adapter achieves with transactions.
package memory

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"
	"sync"
	"time"

	"outfitter_billing/internal/domain/entities"
)

type Store struct {
	mu        sync.RWMutex
	pricing   map[string][]entities.PricingItem
	hunts     map[string]entities.Hunt
	contracts map[string]entities.HuntContract
	huntLocks map[string]string
	items     map[string]entities.PaymentItem
	templates map[string]string
}

func NewStore() *Store {
	return &Store{
		pricing:   make(map[string][]entities.PricingItem),
		hunts:     make(map[string]entities.Hunt),
		contracts: make(map[string]entities.HuntContract),
		huntLocks: make(map[string]string),
		items:     make(map[string]entities.PaymentItem),
		templates: make(map[string]string),
	}
}

// Seed is the JSON document LoadSeed reads.
type Seed struct {
	PricingItems []entities.PricingItem `json:"pricing_items"`
	Hunts        []entities.Hunt        `json:"hunts"`
	// Templates maps outfitter id to its default contract template id.
	Templates map[string]string `json:"templates"`
}

// LoadSeed fills the store from a JSON file. Used for local runs without
// DynamoDB.
func (s *Store) LoadSeed(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed %s: %w", path, err)
	}
	var seed Seed
	if err := json.Unmarshal(b, &seed); err != nil {
		return fmt.Errorf("decode seed %s: %w", path, err)
	}
	for _, it := range seed.PricingItems {
		s.PutPricingItem(it)
	}
	for _, h := range seed.Hunts {
		s.PutHunt(h)
	}
	for outfitterID, templateID := range seed.Templates {
		s.SetDefaultTemplate(outfitterID, templateID)
	}
	return nil
}

func (s *Store) PutPricingItem(it entities.PricingItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.pricing[it.OutfitterID]
	for i := range list {
		if list[i].ID == it.ID {
			list[i] = clonePricingItem(it)
			return
		}
	}
	s.pricing[it.OutfitterID] = append(list, clonePricingItem(it))
}

func (s *Store) RemovePricingItem(outfitterID, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pricing[outfitterID] = slices.DeleteFunc(s.pricing[outfitterID], func(it entities.PricingItem) bool {
		return it.ID == id
	})
}

func (s *Store) PutHunt(h entities.Hunt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hunts[h.ID] = cloneHunt(h)
}

func (s *Store) SetDefaultTemplate(outfitterID, templateID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[outfitterID] = templateID
}

// checkContract verifies c is the current, non-cancelled version of a stored
// contract. Callers hold the write lock.
func (s *Store) checkContract(c entities.HuntContract) (entities.HuntContract, error) {
	stored, ok := s.contracts[c.ID]
	if !ok {
		return entities.HuntContract{}, fmt.Errorf("contract %s not found", c.ID)
	}
	if stored.Version != c.Version || stored.Status == entities.ContractStatusCancelled {
		return entities.HuntContract{}, errConflict("contract", c.ID)
	}
	return stored, nil
}

func (s *Store) bumpContract(stored entities.HuntContract, now time.Time) {
	stored.Version++
	stored.UpdatedAt = now
	s.contracts[stored.ID] = stored
}

func clonePricingItem(it entities.PricingItem) entities.PricingItem {
	it.SpeciesFilter = slices.Clone(it.SpeciesFilter)
	it.WeaponFilter = slices.Clone(it.WeaponFilter)
	if it.IncludedDays != nil {
		d := *it.IncludedDays
		it.IncludedDays = &d
	}
	return it
}

func cloneHunt(h entities.Hunt) entities.Hunt {
	h.AddonSelections = maps.Clone(h.AddonSelections)
	h.StartTime = cloneTime(h.StartTime)
	h.EndTime = cloneTime(h.EndTime)
	if h.SeasonWindow != nil {
		w := *h.SeasonWindow
		h.SeasonWindow = &w
	}
	return h
}

func cloneContract(c entities.HuntContract) entities.HuntContract {
	if c.ClientCompletionData != nil {
		d := *c.ClientCompletionData
		d.AddonSelections = maps.Clone(d.AddonSelections)
		c.ClientCompletionData = &d
	}
	c.ClientSignedAt = cloneTime(c.ClientSignedAt)
	c.AdminSignedAt = cloneTime(c.AdminSignedAt)
	c.CancelledAt = cloneTime(c.CancelledAt)
	return c
}

func cloneItem(it entities.PaymentItem) entities.PaymentItem {
	it.DueDate = cloneTime(it.DueDate)
	it.PaidAt = cloneTime(it.PaidAt)
	it.ProviderPayload = slices.Clone(it.ProviderPayload)
	return it
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// setBooking copies the booking fields of h onto the stored hunt. Callers hold mu.
func (s *Store) setBooking(h entities.Hunt) (entities.Hunt, error) {
	stored, ok := s.hunts[h.ID]
	if !ok {
		return entities.Hunt{}, fmt.Errorf("hunt %s not found", h.ID)
	}
	in := cloneHunt(h)
	stored.SelectedPricingItemID = in.SelectedPricingItemID
	stored.AddonSelections = in.AddonSelections
	stored.StartTime = in.StartTime
	stored.EndTime = in.EndTime
	stored.UpdatedAt = in.UpdatedAt
	s.hunts[h.ID] = stored
	return cloneHunt(stored), nil
}
