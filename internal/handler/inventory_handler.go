package handler

import (
	"strconv"

	"go-resto-ops/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// POST /api/products
func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.CreateProduct(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(product)
}

// GET /api/products
func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// GET /api/products/:id
func (h *InventoryHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// PUT /api/products/:id
func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req service.ProductPatch
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.UpdateProduct(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// DELETE /api/products/:id
func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(204)
}

// GET /api/products/with-margin
func (h *InventoryHandler) GetProductsWithMargin(c *fiber.Ctx) error {
	products, err := h.service.GetProductsWithMargin()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// GET /api/inventory/alerts
func (h *InventoryHandler) GetInventoryAlerts(c *fiber.Ctx) error {
	alerts, err := h.service.GetInventoryAlerts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(alerts)
}

// GET /api/cost-history?productId=
func (h *InventoryHandler) GetCostHistory(c *fiber.Ctx) error {
	var productID *uint
	if raw := c.Query("productId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid productId"})
		}
		id := uint(parsed)
		productID = &id
	}

	entries, err := h.service.GetCostHistory(productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}
