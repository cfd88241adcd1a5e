package model

import "github.com/shopspring/decimal"

type Sale struct {
	BaseModel
	// Reference is a human-shareable receipt number, generated at creation.
	Reference     string          `gorm:"type:varchar(64);uniqueIndex" json:"reference"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(12,2)" json:"tax_amount"`
	PaymentMethod string          `gorm:"type:varchar(20)" json:"payment_method"` // CASH, CARD, TRANSFER
	CustomerID    *uint           `json:"customer_id,omitempty"`
	CashierID     uint            `gorm:"index" json:"cashier_id"`

	// Items are a price snapshot taken at sale time and never edited
	// afterwards, even if the referenced products change or disappear.
	Items []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items"`
}

type SaleItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	SaleID    uint            `gorm:"not null;index" json:"sale_id"`
	ProductID uint            `gorm:"not null;index" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
}
