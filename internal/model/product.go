package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Name     string          `gorm:"type:varchar(255);not null" json:"name"`
	Category string          `gorm:"type:varchar(100)" json:"category"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Cost     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"cost"`
	Stock    int             `gorm:"default:0" json:"stock"`
	Unit     string          `gorm:"type:varchar(20)" json:"unit"`
	Barcode  *string         `gorm:"type:varchar(50)" json:"barcode,omitempty"`
	Supplier *string         `gorm:"type:varchar(255)" json:"supplier,omitempty"`
	MinStock int             `gorm:"default:5" json:"min_stock"`
	IsActive bool            `gorm:"default:true" json:"is_active"`
}
