package service

import (
	"log"

	"go-resto-ops/internal/model"
	"go-resto-ops/internal/repository"
	"go-resto-ops/internal/ws"

	"github.com/shopspring/decimal"
)

// InventoryService owns the sellable product catalogue: CRUD, the margin
// view, low-stock alerts, and the cost audit trail.
type InventoryService interface {
	CreateProduct(req *ProductRequest) (*model.Product, error)
	GetAllProducts() ([]model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
	UpdateProduct(id uint, req *ProductPatch) (*model.Product, error)
	DeleteProduct(id uint) error

	GetProductsWithMargin() ([]ProductMargin, error)
	GetInventoryAlerts() ([]InventoryAlert, error)
	GetCostHistory(productID *uint) ([]model.CostHistory, error)
}

type ProductRequest struct {
	Name     string          `json:"name" validate:"required"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price" validate:"dgte0"`
	Cost     decimal.Decimal `json:"cost" validate:"dgte0"`
	Stock    int             `json:"stock" validate:"gte=0"`
	Unit     string          `json:"unit"`
	Barcode  *string         `json:"barcode"`
	Supplier *string         `json:"supplier"`
	MinStock *int            `json:"min_stock" validate:"omitempty,gte=0"`
	IsActive *bool           `json:"is_active"`
}

type ProductPatch struct {
	Name     *string          `json:"name" validate:"omitempty,min=1"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price" validate:"omitempty,dgte0"`
	Cost     *decimal.Decimal `json:"cost" validate:"omitempty,dgte0"`
	Stock    *int             `json:"stock"`
	Unit     *string          `json:"unit"`
	Barcode  *string          `json:"barcode"`
	Supplier *string          `json:"supplier"`
	MinStock *int             `json:"min_stock" validate:"omitempty,gte=0"`
	IsActive *bool            `json:"is_active"`
}

type ProductMargin struct {
	model.Product
	Margin           decimal.Decimal `json:"margin"`
	MarginPercentage decimal.Decimal `json:"margin_percentage"`
	IsLowStock       bool            `json:"is_low_stock"`
}

type InventoryAlert struct {
	model.Product
	Severity string `json:"severity"` // "critical" or "low"
}

type inventoryService struct {
	productRepo     repository.ProductRepository
	costHistoryRepo repository.CostHistoryRepository
	wsHub           *ws.Hub
}

func NewInventoryService(productRepo repository.ProductRepository, costHistoryRepo repository.CostHistoryRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo:     productRepo,
		costHistoryRepo: costHistoryRepo,
		wsHub:           hub,
	}
}

func (s *inventoryService) CreateProduct(req *ProductRequest) (*model.Product, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Cost:     req.Cost,
		Stock:    req.Stock,
		Unit:     req.Unit,
		Barcode:  req.Barcode,
		Supplier: req.Supplier,
		MinStock: 5,
		IsActive: true,
	}
	if req.MinStock != nil {
		product.MinStock = *req.MinStock
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	// Creates never write cost history; the audit trail starts with the
	// first cost change.
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *inventoryService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *inventoryService) GetProductByID(id uint) (*model.Product, error) {
	return s.productRepo.FindByID(id)
}

func (s *inventoryService) UpdateProduct(id uint, req *ProductPatch) (*model.Product, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	// A cost change is logged before the update lands. The two writes are
	// best effort, not atomic: a failed history append is logged and the
	// update proceeds.
	if req.Cost != nil && !req.Cost.Equal(product.Cost) {
		entry := &model.CostHistory{
			ProductID: &product.ID,
			OldCost:   product.Cost,
			NewCost:   *req.Cost,
			Reason:    "Manual update",
		}
		if err := s.costHistoryRepo.Create(entry); err != nil {
			log.Printf("Warning: cost history append failed for product %d: %v", product.ID, err)
		}
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Cost != nil {
		product.Cost = *req.Cost
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.Barcode != nil {
		product.Barcode = req.Barcode
	}
	if req.Supplier != nil {
		product.Supplier = req.Supplier
	}
	if req.MinStock != nil {
		product.MinStock = *req.MinStock
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	if s.wsHub != nil {
		s.wsHub.BroadcastEvent("product_updated", product)
		if product.Stock <= product.MinStock {
			s.wsHub.BroadcastEvent("inventory_alert", InventoryAlert{
				Product:  *product,
				Severity: alertSeverity(product.Stock, product.MinStock),
			})
		}
	}
	return product, nil
}

func (s *inventoryService) DeleteProduct(id uint) error {
	removed, err := s.productRepo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return repository.ErrNotFound
	}
	return nil
}

func (s *inventoryService) GetProductsWithMargin() ([]ProductMargin, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	hundred := decimal.NewFromInt(100)
	out := make([]ProductMargin, 0, len(products))
	for _, product := range products {
		margin := product.Price.Sub(product.Cost)
		pct := decimal.Zero
		if product.Cost.IsPositive() {
			pct = margin.Div(product.Cost).Mul(hundred).Round(2)
		}
		out = append(out, ProductMargin{
			Product:          product,
			Margin:           margin,
			MarginPercentage: pct,
			IsLowStock:       product.Stock <= product.MinStock,
		})
	}
	return out, nil
}

func (s *inventoryService) GetInventoryAlerts() ([]InventoryAlert, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	out := []InventoryAlert{}
	for _, product := range products {
		if product.Stock > product.MinStock {
			continue
		}
		out = append(out, InventoryAlert{
			Product:  product,
			Severity: alertSeverity(product.Stock, product.MinStock),
		})
	}
	return out, nil
}

func (s *inventoryService) GetCostHistory(productID *uint) ([]model.CostHistory, error) {
	if productID != nil {
		return s.costHistoryRepo.FindByProduct(*productID)
	}
	return s.costHistoryRepo.FindAll()
}

// alertSeverity compares via 2*stock <= minStock so odd thresholds keep
// their exact half-way point without integer truncation.
func alertSeverity(stock, minStock int) string {
	if 2*stock <= minStock {
		return "critical"
	}
	return "low"
}
