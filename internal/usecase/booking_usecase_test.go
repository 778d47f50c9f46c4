package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"outfitter_billing/internal/domain/booking"
	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/domain/pricing"
	mock_interfaces "outfitter_billing/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingUseCase_CompleteBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("derives the end date and advances the contract", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.bookingUC.CompleteBooking(ctx, client, "hunt-1", elkSelection())
		require.NoError(t, err)
		assert.True(t, res.ContractCreated)
		assert.Equal(t, 6, res.Priced.Span.Days)
		assert.Equal(t, int64(472500), res.Priced.Quote.TotalCents)
		require.NotNil(t, res.Hunt.EndTime)
		assert.Equal(t, "2025-09-15", booking.FormatDate(*res.Hunt.EndTime))
		assert.Equal(t, entities.ContractStatusPendingAdminReview, res.Contract.Status)
	})

	t.Run("rebooking keeps the existing contract", func(t *testing.T) {
		f := newFixture(t)
		first, err := f.bookingUC.CompleteBooking(ctx, client, "hunt-1", elkSelection())
		require.NoError(t, err)

		sel := elkSelection()
		sel.StartDate = date(2025, 9, 20)
		second, err := f.bookingUC.CompleteBooking(ctx, client, "hunt-1", sel)
		require.NoError(t, err)
		assert.False(t, second.ContractCreated)
		assert.Equal(t, first.Contract.ID, second.Contract.ID)
		assert.Equal(t, "2025-09-20", booking.FormatDate(*second.Hunt.StartTime))
	})

	t.Run("wrong duration", func(t *testing.T) {
		f := newFixture(t)
		sel := elkSelection()
		end := date(2025, 9, 17)
		sel.EndDate = &end

		_, err := f.bookingUC.CompleteBooking(ctx, client, "hunt-1", sel)
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorIs(t, err, booking.ErrWrongDuration)
		assert.Contains(t, err.Error(), "requires a 6-day span, got 8 days")

		h, _ := f.hunts.GetByID(ctx, "hunt-1")
		assert.Empty(t, h.SelectedPricingItemID)
	})

	t.Run("outside season window", func(t *testing.T) {
		f := newFixture(t)
		sel := elkSelection()
		sel.StartDate = date(2025, 10, 28)

		_, err := f.bookingUC.CompleteBooking(ctx, client, "hunt-1", sel)
		assert.ErrorIs(t, err, booking.ErrOutsideSeasonWindow)
		assert.Contains(t, err.Error(), "between 2025-09-01 and 2025-10-31")
	})

	t.Run("plan from another species lists the options", func(t *testing.T) {
		f := newFixture(t)
		sel := elkSelection()
		sel.PricingItemID = "deer-3"

		_, err := f.bookingUC.CompleteBooking(ctx, client, "hunt-1", sel)
		assert.ErrorIs(t, err, ErrPlanNotOffered)
		assert.Contains(t, err.Error(), "options: elk-rifle-5")
	})

	t.Run("unknown add-on kind", func(t *testing.T) {
		f := newFixture(t)
		sel := elkSelection()
		sel.Addons = map[entities.AddonType]int{"horse": 1}

		_, err := f.bookingUC.CompleteBooking(ctx, client, "hunt-1", sel)
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorIs(t, err, pricing.ErrUnknownAddon)
	})

	t.Run("locked after execution", func(t *testing.T) {
		f := newFixture(t)
		f.executedContract(t)

		_, err := f.bookingUC.CompleteBooking(ctx, client, "hunt-1", elkSelection())
		assert.ErrorIs(t, err, ErrHuntAlreadyExecuted)
	})

	t.Run("hunt update failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		hunts := mock_interfaces.NewMockIHuntRepository(ctrl)
		contracts := mock_interfaces.NewMockIHuntContractRepository(ctrl)
		catalog := mock_interfaces.NewMockIPricingItemRepository(ctrl)
		rate, _ := pricing.FeeRateFromPercent(5)
		uc := NewBookingUseCase(hunts, contracts, nil, catalog, rate)

		hunts.EXPECT().GetByID(gomock.Any(), "hunt-1").Return(entities.Hunt{ID: "hunt-1", OutfitterID: "out-1", ClientEmail: "client@example.com", Species: "Elk", Weapon: "Rifle"}, nil)
		contracts.EXPECT().GetActiveByHuntID(gomock.Any(), "hunt-1").Return(entities.HuntContract{}, nil)
		catalog.EXPECT().ListByOutfitter(gomock.Any(), "out-1").Return([]entities.PricingItem{
			{ID: "elk-rifle-5", OutfitterID: "out-1", AmountUSD: 4000, Category: "General", IncludedDays: intPtr(5)},
			{ID: "extra-day", OutfitterID: "out-1", AmountUSD: 500, Category: "Add-ons", AddonType: entities.AddonExtraDays},
		}, nil)
		hunts.EXPECT().UpdateBooking(gomock.Any(), gomock.Any()).Return(entities.Hunt{}, errors.New("write failed"))

		_, err := uc.CompleteBooking(ctx, client, "hunt-1", elkSelection())
		assert.ErrorIs(t, err, ErrCollaborator)
	})
}

func TestCatalogUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("options for the hunt", func(t *testing.T) {
		f := newFixture(t)
		opts, err := f.catalogUC.ListOptions(ctx, client, "hunt-1")
		require.NoError(t, err)
		require.Len(t, opts.Plans, 1)
		assert.Equal(t, "elk-rifle-5", opts.Plans[0].ID)
		require.Len(t, opts.Addons, 1)
		assert.Equal(t, "extra-day", opts.Addons[0].ID)
	})

	t.Run("quote has no side effects", func(t *testing.T) {
		f := newFixture(t)
		q, err := f.catalogUC.Quote(ctx, client, "hunt-1", elkSelection())
		require.NoError(t, err)
		assert.Equal(t, int64(450000), q.Quote.SubtotalCents)
		assert.Equal(t, int64(22500), q.Quote.PlatformFeeCents)
		assert.Equal(t, 6, q.RequiredDays)

		h, _ := f.hunts.GetByID(ctx, "hunt-1")
		assert.Nil(t, h.StartTime)
		c, _ := f.contracts.GetActiveByHuntID(ctx, "hunt-1")
		assert.Empty(t, c.ID)
	})

	t.Run("missing plan lists the options", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.catalogUC.Quote(ctx, client, "hunt-1", Selection{StartDate: time.Now()})
		assert.ErrorIs(t, err, ErrPlanNotSelected)
		assert.Contains(t, err.Error(), "elk-rifle-5")
	})
}
