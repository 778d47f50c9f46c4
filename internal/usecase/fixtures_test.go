package usecase

import (
	"context"
	"testing"
	"time"

	"outfitter_billing/internal/adapter/persistence/memory"
	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/domain/pricing"
	"outfitter_billing/internal/usecase/interfaces"
	mock_interfaces "outfitter_billing/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	staff    = entities.Caller{TenantID: "out-1", Email: "guide@outfitter.test", Role: entities.CallerRoleStaff}
	client   = entities.Caller{TenantID: "out-1", Email: "Client@Example.com", Role: entities.CallerRoleClient}
	stranger = entities.Caller{TenantID: "out-2", Email: "client@example.com", Role: entities.CallerRoleStaff}
)

func intPtr(v int) *int { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fixture wires every use case over one in-memory store seeded with an Elk
// rifle hunt, a 5 day plan at $4,000 and an extra day add-on at $500.
type fixture struct {
	store      *memory.Store
	hunts      *memory.HuntRepository
	contracts  *memory.HuntContractRepository
	items      *memory.PaymentItemRepository
	catalog    *memory.PricingItemRepository
	signatures *mock_interfaces.MockISignatureService

	contractUC *ContractUseCase
	bookingUC  *BookingUseCase
	billUC     *BillUseCase
	catalogUC  *CatalogUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	s := memory.NewStore()
	s.SetDefaultTemplate("out-1", "tpl-1")
	s.PutPricingItem(entities.PricingItem{ID: "elk-rifle-5", OutfitterID: "out-1", Title: "Elk Rifle 5 Day", AmountUSD: 4000, Category: "General", IncludedDays: intPtr(5), SpeciesFilter: []string{"Elk"}, WeaponFilter: []string{"Rifle"}})
	s.PutPricingItem(entities.PricingItem{ID: "deer-3", OutfitterID: "out-1", Title: "Deer 3 Day", AmountUSD: 1500, Category: "General", IncludedDays: intPtr(3), SpeciesFilter: []string{"Deer"}})
	s.PutPricingItem(entities.PricingItem{ID: "extra-day", OutfitterID: "out-1", Title: "Extra Day", AmountUSD: 500, Category: "Add-ons", AddonType: entities.AddonExtraDays})
	s.PutHunt(entities.Hunt{
		ID:           "hunt-1",
		OutfitterID:  "out-1",
		ClientEmail:  "client@example.com",
		Species:      "Elk",
		Weapon:       "Rifle",
		HuntCode:     "E-101",
		SeasonWindow: &entities.DateWindow{Start: date(2025, 9, 1), End: date(2025, 10, 31)},
	})

	rate, err := pricing.FeeRateFromPercent(5)
	require.NoError(t, err)

	f := &fixture{
		store:      s,
		hunts:      memory.NewHuntRepository(s),
		contracts:  memory.NewHuntContractRepository(s),
		items:      memory.NewPaymentItemRepository(s),
		catalog:    memory.NewPricingItemRepository(s),
		signatures: mock_interfaces.NewMockISignatureService(ctrl),
	}
	templates := memory.NewTemplateSource(s)
	f.contractUC = NewContractUseCase(f.contracts, f.hunts, f.items, templates, f.signatures, f.catalog, rate)
	f.bookingUC = NewBookingUseCase(f.hunts, f.contracts, f.contractUC, f.catalog, rate)
	f.billUC = NewBillUseCase(f.contracts, f.hunts, f.items, f.catalog, rate)
	f.catalogUC = NewCatalogUseCase(f.hunts, f.catalog, rate)
	return f
}

// elkSelection is the 5 day plan plus one extra day starting 2025-09-10.
func elkSelection() Selection {
	return Selection{
		PricingItemID: "elk-rifle-5",
		Addons:        map[entities.AddonType]int{entities.AddonExtraDays: 1},
		StartDate:     date(2025, 9, 10),
	}
}

// executedContract books the elk hunt and walks its contract to fully_executed.
func (f *fixture) executedContract(t *testing.T) entities.HuntContract {
	t.Helper()
	ctx := context.Background()

	res, err := f.bookingUC.CompleteBooking(ctx, client, "hunt-1", elkSelection())
	require.NoError(t, err)
	require.Equal(t, entities.ContractStatusPendingAdminReview, res.Contract.Status)

	_, err = f.contractUC.Approve(ctx, staff, res.Contract.ID)
	require.NoError(t, err)

	signedAt := time.Date(2025, 8, 1, 15, 0, 0, 0, time.UTC)
	f.signatures.EXPECT().Send(gomock.Any(), gomock.Any()).Return("env-1", nil)
	f.signatures.EXPECT().GetStatus(gomock.Any(), "env-1").Return(interfaces.SignatureStatus{
		ClientSigned: true, AdminSigned: true, ClientSignedAt: &signedAt, AdminSignedAt: &signedAt,
	}, nil)

	_, err = f.contractUC.SendForSignature(ctx, staff, res.Contract.ID)
	require.NoError(t, err)
	c, err := f.contractUC.SyncSignatureStatus(ctx, client, res.Contract.ID)
	require.NoError(t, err)
	require.Equal(t, entities.ContractStatusFullyExecuted, c.Status)
	return c
}
