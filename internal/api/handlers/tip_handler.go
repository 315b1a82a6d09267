package handlers

import (
	"mime/multipart"
	"strconv"

	"github.com/adchartview/tips-api/internal/service"
	"github.com/adchartview/tips-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type TipHandler struct {
	s service.TipService
}

func NewTipHandler(service service.TipService) *TipHandler {
	return &TipHandler{s: service}
}

func (h *TipHandler) ListTips(c *fiber.Ctx) error {
	userId := GetUserID(c)

	tips, err := h.s.List(c.Context(), userId)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tips)
}

// CreateTip accepts a multipart form so an optional chart image can ride
// along with the tip fields.
func (h *TipHandler) CreateTip(c *fiber.Ctx) error {
	userID := GetUserID(c)

	tc := transfer.TipCreation{
		Category:   c.FormValue("category"),
		StockName:  c.FormValue("stock_name"),
		Action:     c.FormValue("action"),
		Timeframe:  c.FormValue("timeframe"),
		Confidence: c.FormValue("confidence"),
		Note:       c.FormValue("note"),
	}
	tc.EntryPrice, _ = strconv.ParseFloat(c.FormValue("entry_price"), 64)
	tc.TargetPrice, _ = strconv.ParseFloat(c.FormValue("target_price"), 64)
	tc.StopLoss, _ = strconv.ParseFloat(c.FormValue("stop_loss"), 64)
	tc.IsDemo = c.FormValue("is_demo") == "true"

	var chart *multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		if files := form.File["chart"]; len(files) > 0 {
			chart = files[0]
		}
	}

	tip, err := h.s.Create(c.Context(), userID, &tc, chart)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(tip)
}

func (h *TipHandler) UpdateTip(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var tu transfer.TipUpdate
	if err := c.BodyParser(&tu); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	tip, err := h.s.Update(c.Context(), userID, &tu)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tip)
}

func (h *TipHandler) RemoveTip(c *fiber.Ctx) error {
	userID := GetUserID(c)
	tipId := c.QueryInt("id", 0)

	if tipId == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Tip ID is required",
		})
	}

	if err := h.s.Remove(c.Context(), userID, int64(tipId)); err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Tip deleted successfully",
	})
}
