package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/internal/api/presenters"
	"github.com/freshkeep/freshkeep-backend/pkg/alert"
)

type (
	AlertHandler interface {
		GetAlerts(c *fiber.Ctx) error
		MarkAlertRead(c *fiber.Ctx) error
		MarkAllAlertsRead(c *fiber.Ctx) error
	}

	alertHandler struct {
		alertService alert.AlertService
	}
)

func NewAlertHandler(alertService alert.AlertService) AlertHandler {
	return &alertHandler{alertService: alertService}
}

func (h *alertHandler) GetAlerts(c *fiber.Ctx) error {
	alerts, err := h.alertService.Unread(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAlerts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"alerts": alerts,
		"count":  len(alerts),
	}, fiber.StatusOK, domain.MessageSuccessGetAlerts)
}

func (h *alertHandler) MarkAlertRead(c *fiber.Ctx) error {
	alertID := c.Params("id")

	if err := h.alertService.MarkRead(c.Context(), alertID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkRead)
}

func (h *alertHandler) MarkAllAlertsRead(c *fiber.Ctx) error {
	if err := h.alertService.MarkAllRead(c.Context()); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkAllRead)
}
