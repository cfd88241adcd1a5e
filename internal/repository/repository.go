package repository

import (
	"errors"
	"time"

	"go-resto-ops/internal/model"
)

// ErrNotFound is returned by every backend when an entity id does not
// resolve. Callers should match it with errors.Is so they stay agnostic of
// the storage engine behind the interfaces.
var ErrNotFound = errors.New("record not found")

type IngredientRepository interface {
	Create(ingredient *model.Ingredient) error
	FindAll() ([]model.Ingredient, error)
	FindByID(id uint) (*model.Ingredient, error)
	FindByIDs(ids []uint) (map[uint]model.Ingredient, error)
	Update(ingredient *model.Ingredient) error
	Delete(id uint) (bool, error)
}

type RecipeRepository interface {
	Create(recipe *model.Recipe) error
	FindAll() ([]model.Recipe, error)
	FindByID(id uint) (*model.Recipe, error)
	// Update persists the recipe and, when replaceItems is set, swaps the
	// stored item list for recipe.Items wholesale.
	Update(recipe *model.Recipe, replaceItems bool) error
	Delete(id uint) (bool, error)
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindByIDs(ids []uint) (map[uint]model.Product, error)
	Update(product *model.Product) error
	Delete(id uint) (bool, error)
}

type SaleRepository interface {
	Create(sale *model.Sale) error
	FindAll() ([]model.Sale, error)
	FindByID(id uint) (*model.Sale, error)
	// FindSince returns sales with CreatedAt >= since, items included.
	FindSince(since time.Time) ([]model.Sale, error)
	Update(sale *model.Sale) error
	Delete(id uint) (bool, error)
}

type OperationalCostRepository interface {
	Create(cost *model.OperationalCost) error
	FindAll() ([]model.OperationalCost, error)
	FindByID(id uint) (*model.OperationalCost, error)
	Update(cost *model.OperationalCost) error
	Delete(id uint) (bool, error)
}

type CostHistoryRepository interface {
	Create(entry *model.CostHistory) error
	FindAll() ([]model.CostHistory, error)
	FindByProduct(productID uint) ([]model.CostHistory, error)
}

type UserRepository interface {
	Create(user *model.User) error
	FindAll() ([]model.User, error)
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Update(user *model.User) error
	Delete(id uint) (bool, error)
}

// Store bundles one repository per entity so wiring stays a single value.
// Two constructors exist: NewPostgresStore and NewMemoryStore. Services
// depend only on the interfaces, never on the backing engine.
type Store struct {
	Ingredients      IngredientRepository
	Recipes          RecipeRepository
	Products         ProductRepository
	Sales            SaleRepository
	OperationalCosts OperationalCostRepository
	CostHistory      CostHistoryRepository
	Users            UserRepository
}
