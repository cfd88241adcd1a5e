package handler

import (
	"strconv"

	"go-resto-ops/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	service service.AnalyticsService
}

func NewAnalyticsHandler(s service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: s}
}

// GET /api/analytics?days=N (default 30)
func (h *AnalyticsHandler) GetSalesAnalytics(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "30"))
	if err != nil || days <= 0 {
		days = 30
	}

	analytics, err := h.service.GetSalesAnalytics(days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(analytics)
}
