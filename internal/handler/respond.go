package handler

import (
	"errors"
	"strconv"

	"go-resto-ops/internal/repository"
	"go-resto-ops/internal/service"

	"github.com/gofiber/fiber/v2"
)

// parseID reads the :id path segment as an unsigned integer.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// respondError maps service failures onto the three-status taxonomy:
// 404 for missing entities, 400 with field detail for invalid input, 500
// with a generic message for everything else.
func respondError(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(400).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": ve.Fields,
		})
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, service.ErrEmailExists):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}
