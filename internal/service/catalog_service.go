package service

import (
	"go-resto-ops/internal/model"
	"go-resto-ops/internal/repository"

	"github.com/shopspring/decimal"
)

// CatalogService owns the recipe cost calculator domain: ingredients,
// recipes with their cached total cost, and the kitchen summary.
type CatalogService interface {
	CreateIngredient(req *IngredientRequest) (*model.Ingredient, error)
	GetAllIngredients() ([]model.Ingredient, error)
	GetIngredientByID(id uint) (*model.Ingredient, error)
	UpdateIngredient(id uint, req *IngredientPatch) (*model.Ingredient, error)
	DeleteIngredient(id uint) error

	CreateRecipe(req *RecipeRequest) (*model.Recipe, error)
	GetAllRecipes() ([]model.Recipe, error)
	GetRecipeByID(id uint) (*model.Recipe, error)
	UpdateRecipe(id uint, req *RecipePatch) (*model.Recipe, error)
	DeleteRecipe(id uint) error
	GetRecipeDetails(id uint) (*RecipeDetails, error)

	GetSummary() (*CatalogSummary, error)
}

type IngredientRequest struct {
	Name        string          `json:"name" validate:"required"`
	Unit        string          `json:"unit"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit" validate:"dgte0"`
	Category    string          `json:"category"`
}

type IngredientPatch struct {
	Name        *string          `json:"name" validate:"omitempty,min=1"`
	Unit        *string          `json:"unit"`
	CostPerUnit *decimal.Decimal `json:"cost_per_unit" validate:"omitempty,dgte0"`
	Category    *string          `json:"category"`
}

type RecipeItemRequest struct {
	IngredientID uint            `json:"ingredient_id" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity" validate:"dgt0"`
}

type RecipeRequest struct {
	Name     string              `json:"name" validate:"required"`
	Category string              `json:"category"`
	Servings int                 `json:"servings" validate:"required,gte=1"`
	Items    []RecipeItemRequest `json:"items" validate:"dive"`
}

type RecipePatch struct {
	Name     *string              `json:"name" validate:"omitempty,min=1"`
	Category *string              `json:"category"`
	Servings *int                 `json:"servings" validate:"omitempty,gte=1"`
	Items    *[]RecipeItemRequest `json:"items" validate:"omitempty,dive"`
}

// RecipeIngredientDetail is one expanded recipe line: the resolved
// ingredient plus the line cost at current prices.
type RecipeIngredientDetail struct {
	Ingredient model.Ingredient `json:"ingredient"`
	Quantity   decimal.Decimal  `json:"quantity"`
	Cost       decimal.Decimal  `json:"cost"`
}

type RecipeDetails struct {
	model.Recipe
	IngredientDetails []RecipeIngredientDetail `json:"ingredient_details"`
	CostPerServing    decimal.Decimal          `json:"cost_per_serving"`
}

type CatalogSummary struct {
	IngredientCount       int                        `json:"ingredient_count"`
	RecipeCount           int                        `json:"recipe_count"`
	TotalRecipeCost       decimal.Decimal            `json:"total_recipe_cost"`
	AverageCostPerServing decimal.Decimal            `json:"average_cost_per_serving"`
	CostByCategory        map[string]decimal.Decimal `json:"cost_by_category"`
}

type catalogService struct {
	ingredientRepo repository.IngredientRepository
	recipeRepo     repository.RecipeRepository
}

func NewCatalogService(ingredientRepo repository.IngredientRepository, recipeRepo repository.RecipeRepository) CatalogService {
	return &catalogService{
		ingredientRepo: ingredientRepo,
		recipeRepo:     recipeRepo,
	}
}

func (s *catalogService) CreateIngredient(req *IngredientRequest) (*model.Ingredient, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ingredient := &model.Ingredient{
		Name:        req.Name,
		Unit:        req.Unit,
		CostPerUnit: req.CostPerUnit,
		Category:    req.Category,
	}
	if err := s.ingredientRepo.Create(ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *catalogService) GetAllIngredients() ([]model.Ingredient, error) {
	return s.ingredientRepo.FindAll()
}

func (s *catalogService) GetIngredientByID(id uint) (*model.Ingredient, error) {
	return s.ingredientRepo.FindByID(id)
}

func (s *catalogService) UpdateIngredient(id uint, req *IngredientPatch) (*model.Ingredient, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ingredient, err := s.ingredientRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		ingredient.Name = *req.Name
	}
	if req.Unit != nil {
		ingredient.Unit = *req.Unit
	}
	if req.CostPerUnit != nil {
		ingredient.CostPerUnit = *req.CostPerUnit
	}
	if req.Category != nil {
		ingredient.Category = *req.Category
	}

	if err := s.ingredientRepo.Update(ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *catalogService) DeleteIngredient(id uint) error {
	removed, err := s.ingredientRepo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return repository.ErrNotFound
	}
	return nil
}

func (s *catalogService) CreateRecipe(req *RecipeRequest) (*model.Recipe, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	items := buildRecipeItems(req.Items)
	totalCost, err := s.computeTotalCost(items)
	if err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		Name:      req.Name,
		Category:  req.Category,
		Servings:  req.Servings,
		TotalCost: totalCost,
		Items:     items,
	}
	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *catalogService) GetAllRecipes() ([]model.Recipe, error) {
	return s.recipeRepo.FindAll()
}

func (s *catalogService) GetRecipeByID(id uint) (*model.Recipe, error) {
	return s.recipeRepo.FindByID(id)
}

// UpdateRecipe merges the patch. TotalCost is recomputed only when the patch
// carries a new item list; otherwise the stored snapshot stands even if
// ingredient prices have moved since.
func (s *catalogService) UpdateRecipe(id uint, req *RecipePatch) (*model.Recipe, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	recipe, err := s.recipeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		recipe.Name = *req.Name
	}
	if req.Category != nil {
		recipe.Category = *req.Category
	}
	if req.Servings != nil {
		recipe.Servings = *req.Servings
	}

	replaceItems := req.Items != nil
	if replaceItems {
		items := buildRecipeItems(*req.Items)
		totalCost, err := s.computeTotalCost(items)
		if err != nil {
			return nil, err
		}
		recipe.Items = items
		recipe.TotalCost = totalCost
	}

	if err := s.recipeRepo.Update(recipe, replaceItems); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *catalogService) DeleteRecipe(id uint) error {
	removed, err := s.recipeRepo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return repository.ErrNotFound
	}
	return nil
}

func (s *catalogService) GetRecipeDetails(id uint) (*RecipeDetails, error) {
	recipe, err := s.recipeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	ingredients, err := s.resolveIngredients(recipe.Items)
	if err != nil {
		return nil, err
	}

	details := &RecipeDetails{
		Recipe:            *recipe,
		IngredientDetails: []RecipeIngredientDetail{},
	}
	for _, item := range recipe.Items {
		ingredient, ok := ingredients[item.IngredientID]
		if !ok {
			// Deleted ingredient: the line disappears from the view.
			continue
		}
		details.IngredientDetails = append(details.IngredientDetails, RecipeIngredientDetail{
			Ingredient: ingredient,
			Quantity:   item.Quantity,
			Cost:       ingredient.CostPerUnit.Mul(item.Quantity).Round(2),
		})
	}

	if recipe.Servings > 0 {
		details.CostPerServing = recipe.TotalCost.DivRound(decimal.NewFromInt(int64(recipe.Servings)), 2)
	}
	return details, nil
}

func (s *catalogService) GetSummary() (*CatalogSummary, error) {
	ingredients, err := s.ingredientRepo.FindAll()
	if err != nil {
		return nil, err
	}
	recipes, err := s.recipeRepo.FindAll()
	if err != nil {
		return nil, err
	}

	summary := &CatalogSummary{
		IngredientCount: len(ingredients),
		RecipeCount:     len(recipes),
		CostByCategory:  map[string]decimal.Decimal{},
	}

	perServingSum := decimal.Zero
	for _, recipe := range recipes {
		summary.TotalRecipeCost = summary.TotalRecipeCost.Add(recipe.TotalCost)
		summary.CostByCategory[recipe.Category] = summary.CostByCategory[recipe.Category].Add(recipe.TotalCost)
		if recipe.Servings > 0 {
			perServingSum = perServingSum.Add(recipe.TotalCost.Div(decimal.NewFromInt(int64(recipe.Servings))))
		}
	}
	if len(recipes) > 0 {
		summary.AverageCostPerServing = perServingSum.DivRound(decimal.NewFromInt(int64(len(recipes))), 2)
	}
	summary.TotalRecipeCost = summary.TotalRecipeCost.Round(2)
	return summary, nil
}

func buildRecipeItems(reqs []RecipeItemRequest) []model.RecipeItem {
	items := make([]model.RecipeItem, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, model.RecipeItem{
			IngredientID: r.IngredientID,
			Quantity:     r.Quantity,
		})
	}
	return items
}

// computeTotalCost sums costPerUnit x quantity over the items whose
// ingredients still exist, rounded to 2 decimal places. Dangling items
// contribute nothing.
func (s *catalogService) computeTotalCost(items []model.RecipeItem) (decimal.Decimal, error) {
	ingredients, err := s.resolveIngredients(items)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, item := range items {
		if ingredient, ok := ingredients[item.IngredientID]; ok {
			total = total.Add(ingredient.CostPerUnit.Mul(item.Quantity))
		}
	}
	return total.Round(2), nil
}

func (s *catalogService) resolveIngredients(items []model.RecipeItem) (map[uint]model.Ingredient, error) {
	if len(items) == 0 {
		return map[uint]model.Ingredient{}, nil
	}
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.IngredientID)
	}
	return s.ingredientRepo.FindByIDs(ids)
}
