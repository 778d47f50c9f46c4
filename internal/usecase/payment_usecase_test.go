package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"outfitter_billing/internal/domain/entities"
	mock_interfaces "outfitter_billing/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pendingItem() entities.PaymentItem {
	return entities.PaymentItem{
		ID:          "gf-c-1",
		OutfitterID: "out-1",
		ContractID:  "c-1",
		ClientEmail: "client@example.com",
		ItemType:    entities.PaymentItemGuideFee,
		TotalCents:  472500,
		Status:      entities.PaymentStatusPending,
	}
}

func TestPaymentUseCase_PayItem_Validations(t *testing.T) {
	ctx := context.Background()

	t.Run("empty payload outside mock mode", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, PaymentOptions{})
		_, err := uc.PayItem(ctx, client, "gf-c-1", nil)
		assert.ErrorIs(t, err, ErrInvalidMPPayload)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, PaymentOptions{Mock: true})
		_, err := uc.PayItem(ctx, client, "gf-c-1", nil)
		assert.ErrorIs(t, err, ErrPaymentGatewayNotConfigured)
	})

	t.Run("empty item id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gateway, PaymentOptions{Mock: true})
		_, err := uc.PayItem(ctx, client, " ", json.RawMessage(`{}`))
		assert.ErrorIs(t, err, ErrInvalidPaymentItemID)
	})

	t.Run("item not pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentItemRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway, PaymentOptions{Mock: true})

		it := pendingItem()
		it.Status = entities.PaymentStatusCancelled
		repo.EXPECT().GetByID(gomock.Any(), "gf-c-1").Return(it, nil)

		_, err := uc.PayItem(ctx, client, "gf-c-1", json.RawMessage(`{}`))
		assert.ErrorIs(t, err, ErrPaymentItemNotPending)
		assert.ErrorIs(t, err, ErrState)
	})

	t.Run("someone else's item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentItemRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway, PaymentOptions{Mock: true})

		repo.EXPECT().GetByID(gomock.Any(), "gf-c-1").Return(pendingItem(), nil)

		_, err := uc.PayItem(ctx, stranger, "gf-c-1", json.RawMessage(`{}`))
		assert.ErrorIs(t, err, ErrNotYours)
	})

	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentItemRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway, PaymentOptions{})

		repo.EXPECT().GetByID(gomock.Any(), "gf-c-1").Return(pendingItem(), nil)

		_, err := uc.PayItem(ctx, client, "gf-c-1", json.RawMessage(`{"token":"abc"}`))
		assert.ErrorIs(t, err, ErrInvalidMPPayload)
	})
}

func TestPaymentUseCase_PayItem(t *testing.T) {
	ctx := context.Background()

	t.Run("pins amount and reference, marks paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentItemRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway, PaymentOptions{})

		repo.EXPECT().GetByID(gomock.Any(), "gf-c-1").Return(pendingItem(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				require.NoError(t, json.Unmarshal(payload, &req))
				assert.Equal(t, 4725.0, req["transaction_amount"])
				assert.Equal(t, "gf-c-1", req["external_reference"])
				payer := req["payer"].(map[string]any)
				assert.Equal(t, "client@example.com", payer["email"])
				return "123", "approved", json.RawMessage(`{"id":123,"status":"approved"}`), nil
			})
		repo.EXPECT().MarkPaid(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, it entities.PaymentItem) (entities.PaymentItem, error) {
				return it, nil
			})

		paid, err := uc.PayItem(ctx, client, "gf-c-1", json.RawMessage(`{"payment_method_id":"visa","transaction_amount":1}`))
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusPaid, paid.Status)
		assert.Equal(t, int64(472500), paid.AmountPaidCents)
		assert.Equal(t, int64(0), paid.BalanceCents())
		assert.Equal(t, "123", paid.ProviderPaymentID)
		assert.NotNil(t, paid.PaidAt)
	})

	t.Run("sandbox payer email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentItemRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway, PaymentOptions{AccessToken: "TEST-abc", TestPayerEmail: "buyer@testuser.com", TestPayerUserID: "999"})

		repo.EXPECT().GetByID(gomock.Any(), "gf-c-1").Return(pendingItem(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				require.NoError(t, json.Unmarshal(payload, &req))
				payer := req["payer"].(map[string]any)
				assert.Equal(t, "buyer@testuser.com", payer["email"])
				assert.NotContains(t, payer, "id")
				return "1", "approved", nil, nil
			})
		repo.EXPECT().MarkPaid(gomock.Any(), gomock.Any()).Return(entities.PaymentItem{ID: "gf-c-1", Status: entities.PaymentStatusPaid}, nil)

		_, err := uc.PayItem(ctx, client, "gf-c-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"999"}}`))
		require.NoError(t, err)
	})

	t.Run("provider did not approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentItemRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway, PaymentOptions{Mock: true})

		repo.EXPECT().GetByID(gomock.Any(), "gf-c-1").Return(pendingItem(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("2", "rejected", nil, nil)

		_, err := uc.PayItem(ctx, client, "gf-c-1", nil)
		assert.ErrorIs(t, err, ErrPaymentNotApproved)
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want error
			kind error
		}{
			{"bad request", errors.New(`{"error":"bad_request","status":400}`), ErrPaymentGatewayBadRequest, ErrValidation},
			{"unauthorized", errors.New(`{"error":"unauthorized","status":401}`), ErrPaymentGatewayUnauthorized, ErrCollaborator},
			{"invalid users", errors.New(`{"code":2034}`), ErrPaymentGatewayInvalidUsers, ErrValidation},
			{"customer not found", errors.New(`Customer not found`), ErrPaymentGatewayCustomerNotFound, ErrValidation},
			{"other", errors.New("connection reset"), nil, ErrCollaborator},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				repo := mock_interfaces.NewMockIPaymentItemRepository(ctrl)
				gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
				uc := NewPaymentUseCase(repo, gateway, PaymentOptions{Mock: true})

				repo.EXPECT().GetByID(gomock.Any(), "gf-c-1").Return(pendingItem(), nil)
				gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

				_, err := uc.PayItem(ctx, client, "gf-c-1", json.RawMessage(`{}`))
				if tc.want != nil {
					assert.ErrorIs(t, err, tc.want)
				}
				assert.ErrorIs(t, err, tc.kind)
			})
		}
	})

	t.Run("end to end over the memory store", func(t *testing.T) {
		f := newFixture(t)
		c := f.executedContract(t)
		bill, err := f.billUC.CreatePaymentPlan(ctx, client, c.ID, 2, date(2025, 3, 1))
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("77", "approved", json.RawMessage(`{}`), nil)
		uc := NewPaymentUseCase(f.items, gateway, PaymentOptions{Mock: true})

		paid, err := uc.PayItem(ctx, client, bill.Items[0].ID, nil)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusPaid, paid.Status)

		after, err := f.billUC.GetOrCreateBill(ctx, client, c.ID)
		require.NoError(t, err)
		assert.Equal(t, bill.Items[0].TotalCents, after.AmountPaidCents)
		assert.Equal(t, bill.Items[1].TotalCents, after.BalanceCents)
	})
}
