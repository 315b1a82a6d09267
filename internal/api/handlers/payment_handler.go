package handlers

import (
	"github.com/adchartview/tips-api/internal/service"
	"github.com/adchartview/tips-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	s service.SubscriptionService
}

func NewPaymentHandler(service service.SubscriptionService) *PaymentHandler {
	return &PaymentHandler{s: service}
}

// VerifyPayment is the gateway confirmation endpoint: signature check first,
// then the purchase transaction. A signature mismatch writes nothing.
func (h *PaymentHandler) VerifyPayment(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var pv transfer.PaymentVerification
	if err := c.BodyParser(&pv); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	entry, err := h.s.VerifyAndPurchase(c.Context(), userID, &pv)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"subscription": entry,
	})
}
