package memory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContract(id, huntID string) entities.HuntContract {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	return entities.HuntContract{
		ID:          id,
		OutfitterID: "out-1",
		HuntID:      huntID,
		ClientEmail: "client@example.com",
		Status:      entities.ContractStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestHuntContractRepository_CreateForHunt(t *testing.T) {
	ctx := context.Background()

	t.Run("second create returns the first contract", func(t *testing.T) {
		repo := NewHuntContractRepository(NewStore())

		first, created, err := repo.CreateForHunt(ctx, newContract("c-1", "h-1"))
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(1), first.Version)

		second, created, err := repo.CreateForHunt(ctx, newContract("c-2", "h-1"))
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "c-1", second.ID)
	})

	t.Run("concurrent creates produce one contract", func(t *testing.T) {
		s := NewStore()
		repo := NewHuntContractRepository(s)

		var wg sync.WaitGroup
		var mu sync.Mutex
		createdCount := 0
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, created, err := repo.CreateForHunt(ctx, newContract(string(rune('a'+i)), "h-1"))
				assert.NoError(t, err)
				if created {
					mu.Lock()
					createdCount++
					mu.Unlock()
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 1, createdCount)
		assert.Len(t, s.contracts, 1)
	})

	t.Run("cancel releases the hunt", func(t *testing.T) {
		repo := NewHuntContractRepository(NewStore())
		c, _, err := repo.CreateForHunt(ctx, newContract("c-1", "h-1"))
		require.NoError(t, err)

		c.Status = entities.ContractStatusCancelled
		_, err = repo.CancelWithItems(ctx, c, nil)
		require.NoError(t, err)

		active, err := repo.GetActiveByHuntID(ctx, "h-1")
		require.NoError(t, err)
		assert.Empty(t, active.ID)

		_, created, err := repo.CreateForHunt(ctx, newContract("c-2", "h-1"))
		require.NoError(t, err)
		assert.True(t, created)
	})
}

func TestHuntContractRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewHuntContractRepository(NewStore())
	c, _, err := repo.CreateForHunt(ctx, newContract("c-1", "h-1"))
	require.NoError(t, err)

	c.Status = entities.ContractStatusPendingClientCompletion
	updated, err := repo.Update(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	// stale version
	_, err = repo.Update(ctx, c)
	assert.True(t, errors.Is(err, interfaces.ErrConflict), "got %v", err)
}

func TestPaymentItemRepository_ReplaceWithInstallments(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	contracts := NewHuntContractRepository(s)
	items := NewPaymentItemRepository(s)

	c, _, err := contracts.CreateForHunt(ctx, newContract("c-1", "h-1"))
	require.NoError(t, err)

	full := entities.PaymentItem{ID: "gf-c-1", ContractID: "c-1", ItemType: entities.PaymentItemGuideFee, TotalCents: 1000, Status: entities.PaymentStatusPending}
	_, err = items.CreateFull(ctx, c, full)
	require.NoError(t, err)
	c.Version++

	t.Run("stale contract version writes nothing", func(t *testing.T) {
		stale := c
		stale.Version--
		_, err := items.ReplaceWithInstallments(ctx, stale, []entities.PaymentItem{full}, []entities.PaymentItem{
			{ID: "p-01", ContractID: "c-1", ItemType: entities.PaymentItemGuideFeeInstallment, TotalCents: 500, Status: entities.PaymentStatusPending},
		})
		assert.True(t, errors.Is(err, interfaces.ErrConflict))

		got, _ := items.GetByID(ctx, "gf-c-1")
		assert.Equal(t, entities.PaymentStatusPending, got.Status)
		missing, _ := items.GetByID(ctx, "p-01")
		assert.Empty(t, missing.ID)
	})

	t.Run("cancels the full item and inserts the plan", func(t *testing.T) {
		plan := []entities.PaymentItem{
			{ID: "p-01", ContractID: "c-1", ItemType: entities.PaymentItemGuideFeeInstallment, InstallmentNumber: 1, TotalCents: 500, Status: entities.PaymentStatusPending},
			{ID: "p-02", ContractID: "c-1", ItemType: entities.PaymentItemGuideFeeInstallment, InstallmentNumber: 2, TotalCents: 500, Status: entities.PaymentStatusPending},
		}
		created, err := items.ReplaceWithInstallments(ctx, c, []entities.PaymentItem{full}, plan)
		require.NoError(t, err)
		assert.Len(t, created, 2)

		all, err := items.ListByContractID(ctx, "c-1")
		require.NoError(t, err)
		active := 0
		for _, it := range all {
			if it.Active() {
				active++
				assert.Equal(t, entities.PaymentItemGuideFeeInstallment, it.ItemType)
			}
		}
		assert.Equal(t, 2, active)

		stored, _ := contracts.GetByID(ctx, "c-1")
		assert.Equal(t, c.Version+1, stored.Version)
	})
}

func TestPaymentItemRepository_MarkPaid(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	contracts := NewHuntContractRepository(s)
	items := NewPaymentItemRepository(s)
	c, _, _ := contracts.CreateForHunt(ctx, newContract("c-1", "h-1"))
	it := entities.PaymentItem{ID: "gf-c-1", ContractID: "c-1", TotalCents: 1000, Status: entities.PaymentStatusPending}
	_, err := items.CreateFull(ctx, c, it)
	require.NoError(t, err)

	it.Status = entities.PaymentStatusPaid
	it.AmountPaidCents = 1000
	_, err = items.MarkPaid(ctx, it)
	require.NoError(t, err)

	_, err = items.MarkPaid(ctx, it)
	assert.True(t, errors.Is(err, interfaces.ErrConflict))
}

func TestHuntRepository_UpdateBookingKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.PutHunt(entities.Hunt{ID: "h-1", OutfitterID: "out-1", Species: "Elk", Weapon: "Rifle"})
	repo := NewHuntRepository(s)

	start := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	got, err := repo.UpdateBooking(ctx, entities.Hunt{ID: "h-1", SelectedPricingItemID: "plan-1", StartTime: &start})
	require.NoError(t, err)
	assert.Equal(t, "Elk", got.Species)
	assert.Equal(t, "plan-1", got.SelectedPricingItemID)

	_, err = repo.UpdateBooking(ctx, entities.Hunt{ID: "missing"})
	assert.Error(t, err)
}

func TestHuntContractRepository_UpdateWithBooking(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	booking := entities.Hunt{ID: "h-1", SelectedPricingItemID: "plan-1", StartTime: &start}

	t.Run("writes both records", func(t *testing.T) {
		s := NewStore()
		s.PutHunt(entities.Hunt{ID: "h-1", OutfitterID: "out-1", Species: "Elk"})
		contracts := NewHuntContractRepository(s)
		c, _, _ := contracts.CreateForHunt(ctx, newContract("c-1", "h-1"))

		c.Status = entities.ContractStatusPendingAdminReview
		got, err := contracts.UpdateWithBooking(ctx, c, booking)
		require.NoError(t, err)
		assert.Equal(t, c.Version+1, got.Version)

		h, _ := NewHuntRepository(s).GetByID(ctx, "h-1")
		assert.Equal(t, "plan-1", h.SelectedPricingItemID)
		assert.Equal(t, "Elk", h.Species)
	})

	t.Run("stale version writes neither", func(t *testing.T) {
		s := NewStore()
		s.PutHunt(entities.Hunt{ID: "h-1", OutfitterID: "out-1"})
		contracts := NewHuntContractRepository(s)
		c, _, _ := contracts.CreateForHunt(ctx, newContract("c-1", "h-1"))
		_, err := contracts.Update(ctx, c)
		require.NoError(t, err)

		c.Status = entities.ContractStatusPendingAdminReview
		_, err = contracts.UpdateWithBooking(ctx, c, booking)
		assert.True(t, errors.Is(err, interfaces.ErrConflict))

		h, _ := NewHuntRepository(s).GetByID(ctx, "h-1")
		assert.Empty(t, h.SelectedPricingItemID)
		assert.Nil(t, h.StartTime)
		stored, _ := contracts.GetByID(ctx, "c-1")
		assert.Equal(t, entities.ContractStatusDraft, stored.Status)
	})

	t.Run("missing hunt writes neither", func(t *testing.T) {
		s := NewStore()
		contracts := NewHuntContractRepository(s)
		c, _, _ := contracts.CreateForHunt(ctx, newContract("c-1", "h-1"))

		c.Status = entities.ContractStatusPendingAdminReview
		_, err := contracts.UpdateWithBooking(ctx, c, booking)
		assert.Error(t, err)

		stored, _ := contracts.GetByID(ctx, "c-1")
		assert.Equal(t, c.Version, stored.Version)
	})
}

func TestStore_LoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	doc := `{
		"pricing_items": [{"id": "plan-1", "outfitter_id": "out-1", "title": "Elk 5 day", "amount_usd": 4000, "category": "General", "included_days": 5}],
		"hunts": [{"id": "h-1", "outfitter_id": "out-1", "client_email": "client@example.com", "species": "Elk", "weapon": "Rifle"}],
		"templates": {"out-1": "tpl-1"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	s := NewStore()
	require.NoError(t, s.LoadSeed(path))

	ctx := context.Background()
	plans, _ := NewPricingItemRepository(s).ListByOutfitter(ctx, "out-1")
	require.Len(t, plans, 1)
	assert.Equal(t, int64(400000), plans[0].AmountCents())

	tpl, _ := NewTemplateSource(s).DefaultTemplateID(ctx, "out-1")
	assert.Equal(t, "tpl-1", tpl)

	h, _ := NewHuntRepository(s).GetByID(ctx, "h-1")
	assert.Equal(t, "Elk", h.Species)
}
