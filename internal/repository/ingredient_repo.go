package repository

import (
	"go-resto-ops/internal/model"

	"gorm.io/gorm"
)

type ingredientRepo struct {
	db *gorm.DB
}

func NewIngredientRepo(db *gorm.DB) IngredientRepository {
	return &ingredientRepo{db}
}

func (r *ingredientRepo) Create(ingredient *model.Ingredient) error {
	return r.db.Create(ingredient).Error
}

func (r *ingredientRepo) FindAll() ([]model.Ingredient, error) {
	var ingredients []model.Ingredient
	err := r.db.Order("id ASC").Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepo) FindByID(id uint) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	if err := r.db.First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &ingredient, nil
}

func (r *ingredientRepo) FindByIDs(ids []uint) (map[uint]model.Ingredient, error) {
	var ingredients []model.Ingredient
	if err := r.db.Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]model.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		byID[ing.ID] = ing
	}
	return byID, nil
}

func (r *ingredientRepo) Update(ingredient *model.Ingredient) error {
	return r.db.Save(ingredient).Error
}

func (r *ingredientRepo) Delete(id uint) (bool, error) {
	return deleteByID(r.db, &model.Ingredient{}, id)
}
