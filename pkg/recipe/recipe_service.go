package recipe

import (
	"context"
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/entities"
	"github.com/freshkeep/freshkeep-backend/pkg/food"
)

type (
	// Generator is the external collaborator that produces recipe content.
	// The application never synthesizes recipes itself.
	Generator interface {
		GenerateRecipes(ctx context.Context, items []entities.FoodItem, dietaryPreference string) ([]entities.Recipe, error)
	}

	RecipeService interface {
		Generate(ctx context.Context, req domain.GenerateRecipesRequest) ([]entities.Recipe, error)
		List() []entities.Recipe
		Shuffle() ([]entities.Recipe, error)
		ToggleSave(ctx context.Context, recipeID string) (domain.ToggleSaveResponse, error)
		Saved(ctx context.Context) ([]entities.Recipe, error)
		Unsave(ctx context.Context, recipeID string) error
	}

	recipeService struct {
		generator      Generator
		savedRepo      SavedRecipeRepository
		foodRepository food.FoodRepository
		logger         *zap.Logger

		mu      sync.Mutex
		current []entities.Recipe
		// generation counts generate requests so a slow response from an
		// older request cannot overwrite the result of a newer one.
		generation uint64
	}
)

func NewRecipeService(generator Generator, savedRepo SavedRecipeRepository, foodRepository food.FoodRepository, logger *zap.Logger) RecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &recipeService{
		generator:      generator,
		savedRepo:      savedRepo,
		foodRepository: foodRepository,
		logger:         logger,
	}
}

// Generate replaces the working list wholesale with freshly generated
// recipes. On failure the previous list is left untouched.
func (s *recipeService) Generate(ctx context.Context, req domain.GenerateRecipesRequest) ([]entities.Recipe, error) {
	items, err := s.foodRepository.LoadInventory(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrNoIngredients
	}

	s.mu.Lock()
	s.generation++
	requestGeneration := s.generation
	s.mu.Unlock()

	recipes, err := s.generator.GenerateRecipes(ctx, items, req.DietaryPreference)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != requestGeneration {
		// A newer request finished (or started) meanwhile; its result wins.
		s.logger.Debug("dropping stale recipe generation result",
			zap.Uint64("request_generation", requestGeneration),
			zap.Uint64("current_generation", s.generation))
		return s.snapshotLocked(), nil
	}
	s.current = recipes
	return s.snapshotLocked(), nil
}

func (s *recipeService) List() []entities.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Shuffle applies a Fisher-Yates permutation to the working list. Cosmetic
// only; the permutation is not persisted.
func (s *recipeService) Shuffle() ([]entities.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.current) == 0 {
		return nil, domain.ErrRecipeNotFound
	}

	for i := len(s.current) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		s.current[i], s.current[j] = s.current[j], s.current[i]
	}
	return s.snapshotLocked(), nil
}

// ToggleSave flips membership of a recipe in the saved collection, keyed by
// the generator-assigned ID. Saving an already-saved recipe unsaves it;
// membership is checked first so the operation is idempotent in effect.
func (s *recipeService) ToggleSave(ctx context.Context, recipeID string) (domain.ToggleSaveResponse, error) {
	saved, err := s.savedRepo.LoadSaved(ctx)
	if err != nil {
		return domain.ToggleSaveResponse{}, err
	}

	for i, r := range saved {
		if r.ID == recipeID {
			saved = append(saved[:i], saved[i+1:]...)
			if err := s.savedRepo.SaveSaved(ctx, saved); err != nil {
				return domain.ToggleSaveResponse{}, err
			}
			return domain.ToggleSaveResponse{ID: recipeID, Saved: false}, nil
		}
	}

	recipe, ok := s.findCurrent(recipeID)
	if !ok {
		return domain.ToggleSaveResponse{}, domain.ErrRecipeNotFound
	}

	saved = append(saved, recipe)
	if err := s.savedRepo.SaveSaved(ctx, saved); err != nil {
		return domain.ToggleSaveResponse{}, err
	}
	return domain.ToggleSaveResponse{ID: recipeID, Saved: true}, nil
}

func (s *recipeService) Saved(ctx context.Context) ([]entities.Recipe, error) {
	return s.savedRepo.LoadSaved(ctx)
}

func (s *recipeService) Unsave(ctx context.Context, recipeID string) error {
	saved, err := s.savedRepo.LoadSaved(ctx)
	if err != nil {
		return err
	}

	for i, r := range saved {
		if r.ID == recipeID {
			return s.savedRepo.SaveSaved(ctx, append(saved[:i], saved[i+1:]...))
		}
	}
	return domain.ErrRecipeNotFound
}

func (s *recipeService) findCurrent(recipeID string) (entities.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.current {
		if r.ID == recipeID {
			return r, true
		}
	}
	return entities.Recipe{}, false
}

func (s *recipeService) snapshotLocked() []entities.Recipe {
	out := make([]entities.Recipe, len(s.current))
	copy(out, s.current)
	return out
}
