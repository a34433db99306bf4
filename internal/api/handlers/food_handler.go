package handlers

import (
	"errors"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/internal/api/presenters"
	"github.com/freshkeep/freshkeep-backend/pkg/assistant"
	"github.com/freshkeep/freshkeep-backend/pkg/food"
)

type (
	FoodHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		GetFoodItemDetails(c *fiber.Ctx) error
		RequestDelete(c *fiber.Ctx) error
		ConfirmDelete(c *fiber.Ctx) error
		CancelDelete(c *fiber.Ctx) error
		IdentifyFood(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService      food.FoodService
		assistantService assistant.AssistantService
		validator        *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, assistantService assistant.AssistantService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService:      foodService,
		assistantService: assistantService,
		validator:        validator,
	}
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	req := new(domain.AddFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	res, err := h.foodService.AddFoodItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	search := c.Query("search", "")
	category := c.Query("category", "All")

	items, err := h.foodService.GetFoodItems(c.Context(), search, category)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"count": len(items),
	}, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetFoodItemDetails(c *fiber.Ctx) error {
	itemID := c.Params("id")

	item, err := h.foodService.GetFoodItemByID(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFoodItems, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) RequestDelete(c *fiber.Ctx) error {
	itemID := c.Params("id")

	res, err := h.foodService.RequestDelete(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRequestDelete)
}

func (h *foodHandler) ConfirmDelete(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.foodService.ConfirmDelete(c.Context(), itemID); err != nil {
		if errors.Is(err, domain.ErrNoPendingDeletion) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedDeleteItem, err)
		}
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessConfirmDelete)
}

func (h *foodHandler) CancelDelete(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.foodService.CancelDelete(c.Context(), itemID); err != nil {
		if errors.Is(err, domain.ErrNoPendingDeletion) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedDeleteItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancelDelete)
}

func (h *foodHandler) IdentifyFood(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	src, err := file.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	defer src.Close()

	image, err := io.ReadAll(src)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	identified, err := h.assistantService.Identify(c.Context(), image, file.Header.Get("Content-Type"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedIdentifyFood, err)
	}

	return presenters.SuccessResponse(c, identified, fiber.StatusOK, domain.MessageSuccessIdentifyFood)
}
