package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"outfitter_billing/internal/adapter/persistence/memory"
	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/domain/lifecycle"
	"outfitter_billing/internal/domain/pricing"
	"outfitter_billing/internal/usecase/interfaces"
	mock_interfaces "outfitter_billing/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestContractUseCase_EnsureContractForHunt(t *testing.T) {
	ctx := context.Background()

	t.Run("sequential calls return the same contract", func(t *testing.T) {
		f := newFixture(t)

		first, created, err := f.contractUC.EnsureContractForHunt(ctx, staff, "hunt-1")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, entities.ContractStatusDraft, first.Status)
		assert.Equal(t, "tpl-1", first.TemplateID)

		second, created, err := f.contractUC.EnsureContractForHunt(ctx, client, " hunt-1 ")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("concurrent calls yield one active contract", func(t *testing.T) {
		f := newFixture(t)

		var wg sync.WaitGroup
		ids := make([]string, 16)
		for i := range ids {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				c, _, err := f.contractUC.EnsureContractForHunt(ctx, staff, "hunt-1")
				assert.NoError(t, err)
				ids[i] = c.ID
			}(i)
		}
		wg.Wait()

		for _, id := range ids {
			assert.Equal(t, ids[0], id)
		}
		active, err := f.contracts.GetActiveByHuntID(ctx, "hunt-1")
		require.NoError(t, err)
		assert.Equal(t, ids[0], active.ID)
	})

	t.Run("hunt with a valid booking starts in admin review", func(t *testing.T) {
		f := newFixture(t)
		start, end := date(2025, 9, 10), date(2025, 9, 15)
		f.store.PutHunt(entities.Hunt{
			ID: "hunt-2", OutfitterID: "out-1", ClientEmail: "client@example.com", Species: "Elk", Weapon: "Rifle",
			SelectedPricingItemID: "elk-rifle-5",
			AddonSelections:       map[entities.AddonType]int{entities.AddonExtraDays: 1},
			StartTime:             &start, EndTime: &end,
		})

		c, created, err := f.contractUC.EnsureContractForHunt(ctx, client, "hunt-2")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, entities.ContractStatusPendingAdminReview, c.Status)
		require.NotNil(t, c.ClientCompletionData)
		assert.Equal(t, "elk-rifle-5", c.ClientCompletionData.PricingItemID)
		assert.Equal(t, 1, c.ClientCompletionData.AddonSelections[entities.AddonExtraDays])
	})

	t.Run("hunt with a stale booking stays draft", func(t *testing.T) {
		f := newFixture(t)
		start, end := date(2025, 9, 10), date(2025, 9, 12)
		f.store.PutHunt(entities.Hunt{
			ID: "hunt-3", OutfitterID: "out-1", ClientEmail: "client@example.com", Species: "Elk", Weapon: "Rifle",
			SelectedPricingItemID: "elk-rifle-5", StartTime: &start, EndTime: &end,
		})

		c, _, err := f.contractUC.EnsureContractForHunt(ctx, client, "hunt-3")
		require.NoError(t, err)
		assert.Equal(t, entities.ContractStatusDraft, c.Status)
		assert.Nil(t, c.ClientCompletionData)
	})

	t.Run("other tenant gets not yours", func(t *testing.T) {
		f := newFixture(t)
		_, _, err := f.contractUC.EnsureContractForHunt(ctx, stranger, "hunt-1")
		assert.ErrorIs(t, err, ErrAuthorization)
	})

	t.Run("missing hunt looks the same as a foreign one", func(t *testing.T) {
		f := newFixture(t)
		_, _, err := f.contractUC.EnsureContractForHunt(ctx, staff, "nope")
		assert.ErrorIs(t, err, ErrNotYours)
	})

	t.Run("empty hunt id", func(t *testing.T) {
		f := newFixture(t)
		_, _, err := f.contractUC.EnsureContractForHunt(ctx, staff, " ")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestContractUseCase_EnsureContractForHunt_CollaboratorErrors(t *testing.T) {
	ctx := context.Background()
	rate, _ := pricing.FeeRateFromPercent(5)
	hunt := entities.Hunt{ID: "hunt-1", OutfitterID: "out-1", ClientEmail: "client@example.com"}

	t.Run("lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIHuntContractRepository(ctrl)
		hunts := mock_interfaces.NewMockIHuntRepository(ctrl)
		uc := NewContractUseCase(contracts, hunts, nil, nil, nil, nil, rate)

		hunts.EXPECT().GetByID(gomock.Any(), "hunt-1").Return(hunt, nil)
		contracts.EXPECT().GetActiveByHuntID(gomock.Any(), "hunt-1").Return(entities.HuntContract{}, errors.New("dynamo down"))

		_, _, err := uc.EnsureContractForHunt(ctx, staff, "hunt-1")
		assert.ErrorIs(t, err, ErrCollaborator)
		assert.Contains(t, err.Error(), "dynamo down")
	})

	t.Run("template source failure writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIHuntContractRepository(ctrl)
		hunts := mock_interfaces.NewMockIHuntRepository(ctrl)
		templates := mock_interfaces.NewMockIContractTemplateSource(ctrl)
		uc := NewContractUseCase(contracts, hunts, nil, templates, nil, nil, rate)

		hunts.EXPECT().GetByID(gomock.Any(), "hunt-1").Return(hunt, nil)
		contracts.EXPECT().GetActiveByHuntID(gomock.Any(), "hunt-1").Return(entities.HuntContract{}, nil)
		templates.EXPECT().DefaultTemplateID(gomock.Any(), "out-1").Return("", errors.New("timeout"))

		_, _, err := uc.EnsureContractForHunt(ctx, staff, "hunt-1")
		assert.ErrorIs(t, err, ErrCollaborator)
	})
}

func TestContractUseCase_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("send to client, submit, reject, resubmit, approve", func(t *testing.T) {
		f := newFixture(t)
		c, _, err := f.contractUC.EnsureContractForHunt(ctx, staff, "hunt-1")
		require.NoError(t, err)

		_, err = f.contractUC.SendToClient(ctx, client, c.ID)
		assert.ErrorIs(t, err, ErrStaffOnly)

		c, err = f.contractUC.SendToClient(ctx, staff, c.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.ContractStatusPendingClientCompletion, c.Status)

		c, err = f.contractUC.SubmitClientCompletion(ctx, client, c.ID, elkSelection(), " bringing my own rifle ")
		require.NoError(t, err)
		assert.Equal(t, entities.ContractStatusPendingAdminReview, c.Status)
		require.NotNil(t, c.ClientCompletionData)
		assert.Equal(t, "bringing my own rifle", c.ClientCompletionData.Notes)
		assert.Equal(t, time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC), c.ClientCompletionData.EndDate)

		h, _ := f.hunts.GetByID(ctx, "hunt-1")
		assert.Equal(t, "elk-rifle-5", h.SelectedPricingItemID)

		c, err = f.contractUC.Reject(ctx, staff, c.ID, "wrong dates")
		require.NoError(t, err)
		assert.Equal(t, entities.ContractStatusPendingClientCompletion, c.Status)
		assert.Equal(t, "wrong dates", c.ReviewNote)

		c, err = f.contractUC.SubmitClientCompletion(ctx, client, c.ID, elkSelection(), "")
		require.NoError(t, err)
		assert.Empty(t, c.ReviewNote)

		c, err = f.contractUC.Approve(ctx, staff, c.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.ContractStatusReadyForSignature, c.Status)
	})

	t.Run("illegal event names the legal ones", func(t *testing.T) {
		f := newFixture(t)
		c, _, _ := f.contractUC.EnsureContractForHunt(ctx, staff, "hunt-1")

		_, err := f.contractUC.Approve(ctx, staff, c.ID)
		assert.ErrorIs(t, err, ErrState)
		var te *lifecycle.TransitionError
		require.ErrorAs(t, err, &te)
		assert.Contains(t, err.Error(), "send_to_client")
	})

	t.Run("submit with a wrong span reports the required days", func(t *testing.T) {
		f := newFixture(t)
		c, _, _ := f.contractUC.EnsureContractForHunt(ctx, staff, "hunt-1")
		c, _ = f.contractUC.SendToClient(ctx, staff, c.ID)

		sel := elkSelection()
		end := date(2025, 9, 14)
		sel.EndDate = &end
		_, err := f.contractUC.SubmitClientCompletion(ctx, client, c.ID, sel, "")
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "requires a 6-day span, got 5 days")
	})

	t.Run("submit that loses a race leaves the hunt unbooked", func(t *testing.T) {
		f := newFixture(t)
		c, _, _ := f.contractUC.EnsureContractForHunt(ctx, staff, "hunt-1")
		c, _ = f.contractUC.SendToClient(ctx, staff, c.ID)

		racing := &interleavedContracts{HuntContractRepository: f.contracts, before: func() {
			stored, err := f.contracts.GetByID(ctx, c.ID)
			require.NoError(t, err)
			_, err = f.contracts.Update(ctx, stored)
			require.NoError(t, err)
		}}
		uc := NewContractUseCase(racing, f.hunts, f.items, memory.NewTemplateSource(f.store), f.signatures, f.catalog, f.contractUC.pricer.rate)

		_, err := uc.SubmitClientCompletion(ctx, client, c.ID, elkSelection(), "")
		assert.ErrorIs(t, err, ErrState)
		assert.ErrorIs(t, err, interfaces.ErrConflict)

		h, _ := f.hunts.GetByID(ctx, "hunt-1")
		assert.Empty(t, h.SelectedPricingItemID)
		assert.Nil(t, h.StartTime)
		stored, _ := f.contracts.GetByID(ctx, c.ID)
		assert.Equal(t, entities.ContractStatusPendingClientCompletion, stored.Status)
		assert.Nil(t, stored.ClientCompletionData)
	})

	t.Run("signature failure leaves status unchanged", func(t *testing.T) {
		f := newFixture(t)
		res, err := f.bookingUC.CompleteBooking(ctx, client, "hunt-1", elkSelection())
		require.NoError(t, err)
		c, err := f.contractUC.Approve(ctx, staff, res.Contract.ID)
		require.NoError(t, err)

		f.signatures.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("503 from provider"))
		_, err = f.contractUC.SendForSignature(ctx, staff, c.ID)
		assert.ErrorIs(t, err, ErrCollaborator)

		stored, _ := f.contracts.GetByID(ctx, c.ID)
		assert.Equal(t, entities.ContractStatusReadyForSignature, stored.Status)
		assert.Equal(t, c.Version, stored.Version)
	})

	t.Run("sync applies client signature without admin", func(t *testing.T) {
		f := newFixture(t)
		res, _ := f.bookingUC.CompleteBooking(ctx, client, "hunt-1", elkSelection())
		_, _ = f.contractUC.Approve(ctx, staff, res.Contract.ID)
		f.signatures.EXPECT().Send(gomock.Any(), gomock.Any()).Return("env-9", nil)
		c, err := f.contractUC.SendForSignature(ctx, staff, res.Contract.ID)
		require.NoError(t, err)
		assert.Equal(t, "env-9", c.SignatureRef)

		f.signatures.EXPECT().GetStatus(gomock.Any(), "env-9").Return(interfaces.SignatureStatus{ClientSigned: true}, nil)
		c, err = f.contractUC.SyncSignatureStatus(ctx, client, c.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.ContractStatusClientSigned, c.Status)
		assert.NotNil(t, c.ClientSignedAt)
		assert.Nil(t, c.AdminSignedAt)

		f.signatures.EXPECT().GetStatus(gomock.Any(), "env-9").Return(interfaces.SignatureStatus{}, nil)
		same, err := f.contractUC.SyncSignatureStatus(ctx, client, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.Version, same.Version)
	})

	t.Run("sync before sending is a state error", func(t *testing.T) {
		f := newFixture(t)
		c, _, _ := f.contractUC.EnsureContractForHunt(ctx, staff, "hunt-1")
		_, err := f.contractUC.SyncSignatureStatus(ctx, staff, c.ID)
		assert.ErrorIs(t, err, ErrSignatureNotSent)
		assert.ErrorIs(t, err, ErrState)
	})
}

func TestContractUseCase_UnrecognisedStatusIsRefused(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, _, err := f.contracts.CreateForHunt(ctx, entities.HuntContract{
		ID: "c-legacy", OutfitterID: "out-1", HuntID: "hunt-1", ClientEmail: "client@example.com", Status: "signed",
	})
	require.NoError(t, err)

	_, err = f.contractUC.Get(ctx, staff, "c-legacy")
	assert.ErrorIs(t, err, ErrState)
	assert.ErrorIs(t, err, ErrUnknownContractStatus)

	_, err = f.contractUC.Cancel(ctx, staff, "c-legacy")
	assert.ErrorIs(t, err, ErrUnknownContractStatus)
	stored, _ := f.contracts.GetByID(ctx, "c-legacy")
	assert.Equal(t, entities.ContractStatus("signed"), stored.Status)
}

func TestContractUseCase_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("client may withdraw before approval", func(t *testing.T) {
		f := newFixture(t)
		c, _, _ := f.contractUC.EnsureContractForHunt(ctx, staff, "hunt-1")

		c, err := f.contractUC.Cancel(ctx, client, c.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.ContractStatusCancelled, c.Status)
		assert.NotNil(t, c.CancelledAt)

		next, created, err := f.contractUC.EnsureContractForHunt(ctx, client, "hunt-1")
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotEqual(t, c.ID, next.ID)
	})

	t.Run("client cannot cancel after approval", func(t *testing.T) {
		f := newFixture(t)
		res, _ := f.bookingUC.CompleteBooking(ctx, client, "hunt-1", elkSelection())
		c, _ := f.contractUC.Approve(ctx, staff, res.Contract.ID)

		_, err := f.contractUC.Cancel(ctx, client, c.ID)
		assert.ErrorIs(t, err, ErrClientCannotCancel)
	})

	t.Run("cancelling an executed contract cancels its pending items", func(t *testing.T) {
		f := newFixture(t)
		c := f.executedContract(t)
		_, err := f.billUC.CreatePaymentPlan(ctx, client, c.ID, 3, date(2025, 3, 1))
		require.NoError(t, err)

		c, err = f.contractUC.Cancel(ctx, staff, c.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.ContractStatusCancelled, c.Status)

		items, _ := f.items.ListByContractID(ctx, c.ID)
		require.NotEmpty(t, items)
		for _, it := range items {
			assert.Equal(t, entities.PaymentStatusCancelled, it.Status, it.ID)
		}

		_, err = f.contractUC.Cancel(ctx, staff, c.ID)
		assert.ErrorIs(t, err, ErrState)
	})

	t.Run("repository failure is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIHuntContractRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentItemRepository(ctrl)
		rate, _ := pricing.FeeRateFromPercent(5)
		uc := NewContractUseCase(contracts, nil, payments, nil, nil, nil, rate)

		c := entities.HuntContract{ID: "c-1", OutfitterID: "out-1", HuntID: "hunt-1", ClientEmail: "client@example.com", Status: entities.ContractStatusFullyExecuted, Version: 4}
		pending := entities.PaymentItem{ID: "gf-c-1", ContractID: "c-1", Status: entities.PaymentStatusPending}
		paid := entities.PaymentItem{ID: "x", ContractID: "c-1", Status: entities.PaymentStatusPaid}

		contracts.EXPECT().GetByID(gomock.Any(), "c-1").Return(c, nil)
		payments.EXPECT().ListByContractID(gomock.Any(), "c-1").Return([]entities.PaymentItem{pending, paid}, nil)
		contracts.EXPECT().CancelWithItems(gomock.Any(), gomock.Any(), []entities.PaymentItem{pending}).
			Return(entities.HuntContract{}, interfaces.ErrConflict)

		_, err := uc.Cancel(ctx, staff, "c-1")
		assert.ErrorIs(t, err, ErrState)
		assert.ErrorIs(t, err, interfaces.ErrConflict)
	})
}

// interleavedContracts runs before ahead of the combined contract and booking
// write, standing in for a concurrent writer.
type interleavedContracts struct {
	*memory.HuntContractRepository
	before func()
}

func (r *interleavedContracts) UpdateWithBooking(ctx context.Context, c entities.HuntContract, h entities.Hunt) (entities.HuntContract, error) {
	r.before()
	return r.HuntContractRepository.UpdateWithBooking(ctx, c, h)
}
