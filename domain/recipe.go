package domain

import "errors"

var (
	MessageSuccessGenerateRecipes = "recipes generated successfully"
	MessageSuccessGetRecipes      = "recipes retrieved successfully"
	MessageSuccessShuffleRecipes  = "recipes shuffled"
	MessageSuccessSaveRecipe      = "recipe saved"
	MessageSuccessUnsaveRecipe    = "recipe removed from saved"

	MessageFailedGenerateRecipes = "failed to generate recipes"
	MessageFailedGetRecipes      = "failed to retrieve recipes"
	MessageFailedSaveRecipe      = "failed to save recipe"

	ErrNoIngredients   = errors.New("pantry is empty, nothing to cook with")
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrGeminiAPIFailed = errors.New("gemini returned no usable content")
)

type (
	GenerateRecipesRequest struct {
		// Enforced by the generation collaborator, not validated here.
		DietaryPreference string `json:"dietary_preference"`
	}

	ToggleSaveResponse struct {
		ID    string `json:"id"`
		Saved bool   `json:"saved"`
	}
)
