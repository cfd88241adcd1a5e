package model

import "github.com/shopspring/decimal"

type Recipe struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Category string `gorm:"type:varchar(100)" json:"category"`
	Servings int    `gorm:"not null;default:1" json:"servings"`

	// TotalCost is a stored snapshot, recomputed only when the recipe is
	// created or its item list is replaced. Ingredient price changes do not
	// flow into it until the next explicit update.
	TotalCost decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_cost"`

	Items []RecipeItem `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"items"`
}

// RecipeItem links a recipe to one ingredient. The ingredient may be deleted
// later; dangling items are tolerated and skipped in derived views.
type RecipeItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	RecipeID     uint            `gorm:"not null;index" json:"recipe_id"`
	IngredientID uint            `gorm:"not null;index" json:"ingredient_id"`
	Quantity     decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"quantity"`
}
