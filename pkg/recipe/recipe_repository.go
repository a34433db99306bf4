package recipe

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/freshkeep/freshkeep-backend/entities"
	"github.com/freshkeep/freshkeep-backend/pkg/store"
)

type (
	// SavedRecipeRepository owns the persisted saved-recipe record. Only
	// saved recipes are persisted; the working list lives in memory and is
	// replaced wholesale on each generation.
	SavedRecipeRepository interface {
		LoadSaved(ctx context.Context) ([]entities.Recipe, error)
		SaveSaved(ctx context.Context, recipes []entities.Recipe) error
	}

	savedRecipeRepository struct {
		kv store.KeyValue
	}
)

func NewSavedRecipeRepository(kv store.KeyValue) SavedRecipeRepository {
	return &savedRecipeRepository{kv: kv}
}

func (r *savedRecipeRepository) LoadSaved(ctx context.Context) ([]entities.Recipe, error) {
	raw, err := r.kv.Get(ctx, store.KeySavedRecipes)
	if errors.Is(err, store.ErrKeyNotFound) {
		return []entities.Recipe{}, nil
	}
	if err != nil {
		return nil, err
	}

	var recipes []entities.Recipe
	if err := json.Unmarshal(raw, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *savedRecipeRepository) SaveSaved(ctx context.Context, recipes []entities.Recipe) error {
	raw, err := json.Marshal(recipes)
	if err != nil {
		return err
	}
	return r.kv.Put(ctx, store.KeySavedRecipes, raw)
}
