package handler

import (
	"go-resto-ops/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// POST /api/ingredients
func (h *CatalogHandler) CreateIngredient(c *fiber.Ctx) error {
	var req service.IngredientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	ingredient, err := h.service.CreateIngredient(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(ingredient)
}

// GET /api/ingredients
func (h *CatalogHandler) GetIngredients(c *fiber.Ctx) error {
	ingredients, err := h.service.GetAllIngredients()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ingredients)
}

// GET /api/ingredients/:id
func (h *CatalogHandler) GetIngredient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ingredient ID"})
	}

	ingredient, err := h.service.GetIngredientByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ingredient)
}

// PUT /api/ingredients/:id
func (h *CatalogHandler) UpdateIngredient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ingredient ID"})
	}

	var req service.IngredientPatch
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	ingredient, err := h.service.UpdateIngredient(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ingredient)
}

// DELETE /api/ingredients/:id
func (h *CatalogHandler) DeleteIngredient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ingredient ID"})
	}

	if err := h.service.DeleteIngredient(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(204)
}

// POST /api/recipes
func (h *CatalogHandler) CreateRecipe(c *fiber.Ctx) error {
	var req service.RecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	recipe, err := h.service.CreateRecipe(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(recipe)
}

// GET /api/recipes
func (h *CatalogHandler) GetRecipes(c *fiber.Ctx) error {
	recipes, err := h.service.GetAllRecipes()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(recipes)
}

// GET /api/recipes/:id
func (h *CatalogHandler) GetRecipe(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid recipe ID"})
	}

	recipe, err := h.service.GetRecipeByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(recipe)
}

// GET /api/recipes/:id/details
func (h *CatalogHandler) GetRecipeDetails(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid recipe ID"})
	}

	details, err := h.service.GetRecipeDetails(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(details)
}

// PUT /api/recipes/:id
func (h *CatalogHandler) UpdateRecipe(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid recipe ID"})
	}

	var req service.RecipePatch
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	recipe, err := h.service.UpdateRecipe(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(recipe)
}

// DELETE /api/recipes/:id
func (h *CatalogHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid recipe ID"})
	}

	if err := h.service.DeleteRecipe(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(204)
}

// GET /api/summary
func (h *CatalogHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.service.GetSummary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
