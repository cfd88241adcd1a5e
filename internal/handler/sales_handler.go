package handler

import (
	"go-resto-ops/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SalesHandler struct {
	service service.SalesService
}

func NewSalesHandler(s service.SalesService) *SalesHandler {
	return &SalesHandler{service: s}
}

// cashierID reads the authenticated user id set by the auth middleware.
func cashierID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("user_id").(uint); ok {
		return id
	}
	return 0
}

// POST /api/sales
func (h *SalesHandler) CreateSale(c *fiber.Ctx) error {
	var req service.SaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sale, err := h.service.CreateSale(&req, cashierID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(sale)
}

// GET /api/sales
func (h *SalesHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.service.GetAllSales()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sales)
}

// GET /api/sales/:id
func (h *SalesHandler) GetSale(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	sale, err := h.service.GetSaleByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}

// GET /api/sales/:id/details
func (h *SalesHandler) GetSaleDetails(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	details, err := h.service.GetSaleDetails(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(details)
}

// PUT /api/sales/:id
func (h *SalesHandler) UpdateSale(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	var req service.SalePatch
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sale, err := h.service.UpdateSale(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}

// DELETE /api/sales/:id
func (h *SalesHandler) DeleteSale(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	if err := h.service.DeleteSale(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(204)
}

// POST /api/operational-costs
func (h *SalesHandler) CreateOperationalCost(c *fiber.Ctx) error {
	var req service.OperationalCostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	cost, err := h.service.CreateOperationalCost(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(cost)
}

// GET /api/operational-costs
func (h *SalesHandler) GetOperationalCosts(c *fiber.Ctx) error {
	costs, err := h.service.GetAllOperationalCosts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(costs)
}

// GET /api/operational-costs/:id
func (h *SalesHandler) GetOperationalCost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid cost ID"})
	}

	cost, err := h.service.GetOperationalCostByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cost)
}

// PUT /api/operational-costs/:id
func (h *SalesHandler) UpdateOperationalCost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid cost ID"})
	}

	var req service.OperationalCostPatch
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	cost, err := h.service.UpdateOperationalCost(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cost)
}

// DELETE /api/operational-costs/:id
func (h *SalesHandler) DeleteOperationalCost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid cost ID"})
	}

	if err := h.service.DeleteOperationalCost(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(204)
}
