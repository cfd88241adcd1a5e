package repository

import (
	"go-resto-ops/internal/model"

	"gorm.io/gorm"
)

type recipeRepo struct {
	db *gorm.DB
}

func NewRecipeRepo(db *gorm.DB) RecipeRepository {
	return &recipeRepo{db}
}

func (r *recipeRepo) Create(recipe *model.Recipe) error {
	return r.db.Create(recipe).Error
}

func (r *recipeRepo) FindAll() ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := r.db.Preload("Items").Order("id ASC").Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepo) FindByID(id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.Preload("Items").First(&recipe, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &recipe, nil
}

func (r *recipeRepo) Update(recipe *model.Recipe, replaceItems bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if replaceItems {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&model.RecipeItem{}).Error; err != nil {
				return err
			}
			for i := range recipe.Items {
				recipe.Items[i].ID = 0
				recipe.Items[i].RecipeID = recipe.ID
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: replaceItems}).Save(recipe).Error
	})
}

func (r *recipeRepo) Delete(id uint) (bool, error) {
	var removed bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Recipe{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected > 0
		return nil
	})
	return removed, err
}
