package entities

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedInventory(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	items := SeedInventory(now)

	require.Len(t, items, len(seedItems))

	seen := make(map[uuid.UUID]struct{}, len(items))
	for i, item := range items {
		assert.NotEqual(t, uuid.Nil, item.ID)
		_, dup := seen[item.ID]
		assert.False(t, dup, "duplicate seed ID")
		seen[item.ID] = struct{}{}

		assert.NotEmpty(t, item.Name)
		assert.True(t, ValidCategory(string(item.Category)))
		assert.NotEmpty(t, item.StorageTip)
		assert.True(t, item.AddedDate.Equal(now))

		wantExpiry := now.AddDate(0, 0, seedItems[i].expiryDays)
		assert.True(t, item.ExpiryDate.Equal(wantExpiry), "%s expiry", item.Name)
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, ValidCategory(string(c)))
	}
	assert.False(t, ValidCategory("All"))
	assert.False(t, ValidCategory("Frozen"))
	assert.False(t, ValidCategory(""))
}
