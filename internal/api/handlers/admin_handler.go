package handlers

import (
	"github.com/adchartview/tips-api/internal/models"
	"github.com/adchartview/tips-api/internal/service"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	s service.AdminService
}

func NewAdminHandler(service service.AdminService) *AdminHandler {
	return &AdminHandler{s: service}
}

func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	if GetRole(c) != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized",
		})
	}

	stats, err := h.s.DashboardStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to compute stats",
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
