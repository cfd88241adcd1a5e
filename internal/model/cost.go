package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OperationalCost struct {
	BaseModel
	Type        string          `gorm:"type:varchar(50);not null" json:"type"` // rent, utilities, salary, ...
	Description string          `gorm:"type:text" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Category    string          `gorm:"type:varchar(100)" json:"category"`
	IsRecurring bool            `gorm:"default:false" json:"is_recurring"`
	Frequency   *string         `gorm:"type:varchar(20)" json:"frequency,omitempty"` // daily, weekly, monthly
}

// CostHistory is an append-only audit trail of product cost changes. Rows are
// written when an update changes a product's cost, never on create, and are
// never modified afterwards.
type CostHistory struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ProductID *uint           `gorm:"index" json:"product_id,omitempty"`
	OldCost   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"old_cost"`
	NewCost   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"new_cost"`
	Reason    string          `gorm:"type:varchar(255)" json:"reason,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}
