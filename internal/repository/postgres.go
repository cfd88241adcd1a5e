package repository

import (
	"errors"

	"gorm.io/gorm"
)

// NewPostgresStore wires the GORM-backed repositories over one shared
// connection pool.
func NewPostgresStore(db *gorm.DB) *Store {
	return &Store{
		Ingredients:      NewIngredientRepo(db),
		Recipes:          NewRecipeRepo(db),
		Products:         NewProductRepo(db),
		Sales:            NewSaleRepo(db),
		OperationalCosts: NewOperationalCostRepo(db),
		CostHistory:      NewCostHistoryRepo(db),
		Users:            NewUserRepo(db),
	}
}

// wrapNotFound normalizes gorm's miss error to the backend-neutral sentinel.
func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// deleteByID runs a keyed delete and reports whether a row was removed.
func deleteByID(db *gorm.DB, entity interface{}, id uint) (bool, error) {
	res := db.Delete(entity, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
