package model

import "github.com/shopspring/decimal"

type Ingredient struct {
	BaseModel
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Unit        string          `gorm:"type:varchar(20)" json:"unit"` // kg, g, l, ml, pcs
	CostPerUnit decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"cost_per_unit"`
	Category    string          `gorm:"type:varchar(100)" json:"category"`
}
