package handlers

import (
	"github.com/adchartview/tips-api/internal/service"
	"github.com/adchartview/tips-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	s service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{s: service}
}

func (h *UserHandler) GetUserInfo(c *fiber.Ctx) error {
	userId := GetUserID(c)

	userInfo, err := h.s.GetUserInfo(c.Context(), userId)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(userInfo)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userId := GetUserID(c)

	var profile transfer.ProfileUpdate
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	if err := h.s.UpdateProfile(c.Context(), userId, &profile); err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *UserHandler) RegisterPushEndpoint(c *fiber.Ctx) error {
	userId := GetUserID(c)

	var registration transfer.PushRegistration
	if err := c.BodyParser(&registration); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	if err := h.s.RegisterPushEndpoint(c.Context(), userId, registration.OneSignalID); err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}
