package food

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/entities"
	"github.com/freshkeep/freshkeep-backend/pkg/store"
)

type fakePruner struct {
	pruned []string
}

func (f *fakePruner) PruneItem(_ context.Context, itemID string) error {
	f.pruned = append(f.pruned, itemID)
	return nil
}

func newTestService(t *testing.T) (*foodService, FoodRepository, *fakePruner) {
	t.Helper()

	repo := NewFoodRepository(store.NewMemoryStore())
	pruner := &fakePruner{}
	svc := NewFoodService(repo, nil, pruner, nil).(*foodService)
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	}

	// Start from an empty pantry so tests control every item.
	require.NoError(t, repo.SaveInventory(context.Background(), []entities.FoodItem{}))
	return svc, repo, pruner
}

func addItem(t *testing.T, svc *foodService, name, category, expiryDate string) domain.FoodItemResponse {
	t.Helper()
	res, err := svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       name,
		Category:   category,
		Quantity:   "1",
		ExpiryDate: expiryDate,
	})
	require.NoError(t, err)
	return res
}

func TestAddFoodItem(t *testing.T) {
	svc, repo, _ := newTestService(t)

	res := addItem(t, svc, "Milk", "Dairy", "2026-03-12")
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "Milk", res.Name)
	assert.Equal(t, 2, res.UrgencyDays)
	assert.True(t, res.Urgent)

	items, err := repo.LoadInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].Name)
}

func TestAddFoodItemValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "Milk", Category: "Dairy", Quantity: "1", ExpiryDate: "12-03-2026",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)

	_, err = svc.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "Milk", Category: "Frozen", Quantity: "1", ExpiryDate: "2026-03-12",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	// "All" is a query wildcard, never a storable category.
	_, err = svc.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "Milk", Category: "All", Quantity: "1", ExpiryDate: "2026-03-12",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestGetFoodItemsFiltering(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	addItem(t, svc, "Milk", "Dairy", "2026-03-15")
	addItem(t, svc, "Almond Milk", "Beverage", "2026-03-20")
	addItem(t, svc, "Spinach", "Produce", "2026-03-11")

	tests := []struct {
		name     string
		search   string
		category string
		want     []string
	}{
		{"no filters returns all sorted by expiry", "", "All", []string{"Spinach", "Milk", "Almond Milk"}},
		{"substring match is case-insensitive", "milk", "All", []string{"Milk", "Almond Milk"}},
		{"search and category combine", "milk", "Dairy", []string{"Milk"}},
		{"category only", "", "Produce", []string{"Spinach"}},
		{"empty category behaves like All", "", "", []string{"Spinach", "Milk", "Almond Milk"}},
		{"no match", "tofu", "All", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := svc.GetFoodItems(ctx, tt.search, tt.category)
			require.NoError(t, err)
			names := make([]string, 0, len(items))
			for _, it := range items {
				names = append(names, it.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestGetFoodItemsSortIsStable(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	// Same expiry date: insertion order must hold.
	addItem(t, svc, "Yogurt", "Dairy", "2026-03-12")
	addItem(t, svc, "Spinach", "Produce", "2026-03-12")
	addItem(t, svc, "Berries", "Produce", "2026-03-12")

	items, err := svc.GetFoodItems(ctx, "", "All")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Yogurt", items[0].Name)
	assert.Equal(t, "Spinach", items[1].Name)
	assert.Equal(t, "Berries", items[2].Name)
}

func TestTwoPhaseDelete(t *testing.T) {
	svc, repo, pruner := newTestService(t)
	ctx := context.Background()

	res := addItem(t, svc, "Milk", "Dairy", "2026-03-12")

	// Confirm without a request is rejected.
	assert.ErrorIs(t, svc.ConfirmDelete(ctx, res.ID), domain.ErrNoPendingDeletion)

	// Request leaves the inventory untouched.
	pending, err := svc.RequestDelete(ctx, res.ID)
	require.NoError(t, err)
	assert.True(t, pending.Pending)
	assert.Equal(t, "Milk", pending.Name)

	items, err := repo.LoadInventory(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	// Confirm removes the item and prunes its read alerts.
	require.NoError(t, svc.ConfirmDelete(ctx, res.ID))
	items, err = repo.LoadInventory(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, []string{res.ID}, pruner.pruned)

	// The pending marker is consumed.
	assert.ErrorIs(t, svc.ConfirmDelete(ctx, res.ID), domain.ErrNoPendingDeletion)
}

func TestCancelDelete(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	res := addItem(t, svc, "Milk", "Dairy", "2026-03-12")

	assert.ErrorIs(t, svc.CancelDelete(ctx, res.ID), domain.ErrNoPendingDeletion)

	_, err := svc.RequestDelete(ctx, res.ID)
	require.NoError(t, err)
	require.NoError(t, svc.CancelDelete(ctx, res.ID))

	// After cancel, confirm is rejected again and the item survives.
	assert.ErrorIs(t, svc.ConfirmDelete(ctx, res.ID), domain.ErrNoPendingDeletion)
	items, err := repo.LoadInventory(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestRequestDeleteUnknownItem(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.RequestDelete(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestRepositorySeedsOnFirstLoad(t *testing.T) {
	repo := NewFoodRepository(store.NewMemoryStore())
	ctx := context.Background()

	items, err := repo.LoadInventory(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, items)

	// The seed is persisted on first load, so IDs stay stable.
	again, err := repo.LoadInventory(ctx)
	require.NoError(t, err)
	require.Equal(t, len(items), len(again))
	for i := range items {
		assert.Equal(t, items[i].ID, again[i].ID)
	}
}

func TestRepositoryRoundTrip(t *testing.T) {
	repo := NewFoodRepository(store.NewMemoryStore())
	ctx := context.Background()

	want := entities.SeedInventory(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))[:3]
	require.NoError(t, repo.SaveInventory(ctx, want))

	got, err := repo.LoadInventory(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.True(t, want[i].ExpiryDate.Equal(got[i].ExpiryDate))
	}
}
