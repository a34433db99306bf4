package food

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/freshkeep/freshkeep-backend/entities"
	"github.com/freshkeep/freshkeep-backend/pkg/store"
)

type (
	// FoodRepository owns the persisted inventory record. The whole list is
	// one serialized blob; inventory is small and bounded, so load-mutate-save
	// beats any incremental scheme in simplicity.
	FoodRepository interface {
		LoadInventory(ctx context.Context) ([]entities.FoodItem, error)
		SaveInventory(ctx context.Context, items []entities.FoodItem) error
	}

	foodRepository struct {
		kv store.KeyValue
	}
)

func NewFoodRepository(kv store.KeyValue) FoodRepository {
	return &foodRepository{kv: kv}
}

// LoadInventory returns the persisted inventory. A missing record is not an
// error: the first run falls back to the seed dataset, which is persisted
// immediately so seeded item IDs stay stable across restarts.
func (r *foodRepository) LoadInventory(ctx context.Context) ([]entities.FoodItem, error) {
	raw, err := r.kv.Get(ctx, store.KeyInventory)
	if errors.Is(err, store.ErrKeyNotFound) {
		seeded := entities.SeedInventory(time.Now())
		if saveErr := r.SaveInventory(ctx, seeded); saveErr != nil {
			return nil, saveErr
		}
		return seeded, nil
	}
	if err != nil {
		return nil, err
	}

	var items []entities.FoodItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *foodRepository) SaveInventory(ctx context.Context, items []entities.FoodItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.kv.Put(ctx, store.KeyInventory, raw)
}
