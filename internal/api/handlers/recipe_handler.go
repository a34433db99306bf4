package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/internal/api/presenters"
	"github.com/freshkeep/freshkeep-backend/pkg/recipe"
)

type (
	RecipeHandler interface {
		GenerateRecipes(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		ShuffleRecipes(c *fiber.Ctx) error
		ToggleSaveRecipe(c *fiber.Ctx) error
		GetSavedRecipes(c *fiber.Ctx) error
		UnsaveRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GenerateRecipes(c *fiber.Ctx) error {
	req := new(domain.GenerateRecipesRequest)

	if err := c.BodyParser(req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	recipes, err := h.recipeService.Generate(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrNoIngredients) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedGenerateRecipes, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGenerateRecipes, err)
	}

	return presenters.SuccessResponse(c, recipes, fiber.StatusOK, domain.MessageSuccessGenerateRecipes)
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.recipeService.List(), fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) ShuffleRecipes(c *fiber.Ctx) error {
	recipes, err := h.recipeService.Shuffle()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, recipes, fiber.StatusOK, domain.MessageSuccessShuffleRecipes)
}

func (h *recipeHandler) ToggleSaveRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.recipeService.ToggleSave(c.Context(), recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSaveRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	message := domain.MessageSuccessSaveRecipe
	if !res.Saved {
		message = domain.MessageSuccessUnsaveRecipe
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, message)
}

func (h *recipeHandler) UnsaveRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	if err := h.recipeService.Unsave(c.Context(), recipeID); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSaveRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnsaveRecipe)
}

func (h *recipeHandler) GetSavedRecipes(c *fiber.Ctx) error {
	saved, err := h.recipeService.Saved(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, saved, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}
