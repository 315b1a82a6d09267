package handlers

import (
	"github.com/adchartview/tips-api/internal/repository"
	"github.com/adchartview/tips-api/internal/service"
	"github.com/gofiber/fiber/v2"
)

type SubscriptionHandler struct {
	ent service.EntitlementService
	pl  repository.PlanRepository
}

func NewSubscriptionHandler(ent service.EntitlementService, pl repository.PlanRepository) *SubscriptionHandler {
	return &SubscriptionHandler{ent: ent, pl: pl}
}

// ListActive returns the caller's unexpired, active plan entries.
func (h *SubscriptionHandler) ListActive(c *fiber.Ctx) error {
	userId := GetUserID(c)

	entries, err := h.ent.ActiveEntries(c.Context(), userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list subscriptions",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"activePlans": entries,
	})
}

func (h *SubscriptionHandler) ListPlans(c *fiber.Ctx) error {
	plans, err := h.pl.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list plans",
		})
	}

	return c.Status(fiber.StatusOK).JSON(plans)
}
