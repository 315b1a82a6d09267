package handlers

import (
	"github.com/adchartview/tips-api/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	nr repository.NotificationRepository
}

func NewNotificationHandler(nr repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{nr: nr}
}

func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	userId := GetUserID(c)

	notifications, err := h.nr.ListByUserID(c.Context(), userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list notifications",
		})
	}

	return c.Status(fiber.StatusOK).JSON(notifications)
}

func (h *NotificationHandler) MarkSeen(c *fiber.Ctx) error {
	userId := GetUserID(c)
	notificationId := c.QueryInt("id", 0)

	if notificationId == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Notification ID is required",
		})
	}

	marked, err := h.nr.MarkSeen(c.Context(), int64(notificationId), userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to mark notification as seen",
		})
	}
	if !marked {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Notification not found",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
