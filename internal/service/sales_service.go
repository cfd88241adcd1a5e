package service

import (
	"time"

	"go-resto-ops/internal/model"
	"go-resto-ops/internal/repository"
	"go-resto-ops/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesService owns the point-of-sale money flows: sales with their item
// snapshots and the operational cost book.
type SalesService interface {
	CreateSale(req *SaleRequest, cashierID uint) (*model.Sale, error)
	GetAllSales() ([]model.Sale, error)
	GetSaleByID(id uint) (*model.Sale, error)
	UpdateSale(id uint, req *SalePatch) (*model.Sale, error)
	DeleteSale(id uint) error
	GetSaleDetails(id uint) (*SaleDetails, error)

	CreateOperationalCost(req *OperationalCostRequest) (*model.OperationalCost, error)
	GetAllOperationalCosts() ([]model.OperationalCost, error)
	GetOperationalCostByID(id uint) (*model.OperationalCost, error)
	UpdateOperationalCost(id uint, req *OperationalCostPatch) (*model.OperationalCost, error)
	DeleteOperationalCost(id uint) error
}

type SaleItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
	// Price overrides the product's current price when set (discounts,
	// manual corrections). Defaults to the product price.
	Price *decimal.Decimal `json:"price" validate:"omitempty,dgte0"`
}

type SaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" validate:"required"`
	TaxAmount     decimal.Decimal   `json:"tax_amount" validate:"dgte0"`
	CustomerID    *uint             `json:"customer_id"`
}

type SalePatch struct {
	PaymentMethod *string `json:"payment_method" validate:"omitempty,min=1"`
	CustomerID    *uint   `json:"customer_id"`
}

type SaleItemDetail struct {
	Product  model.Product   `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}

type SaleDetails struct {
	model.Sale
	ItemDetails []SaleItemDetail `json:"item_details"`
}

type OperationalCostRequest struct {
	Type        string          `json:"type" validate:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" validate:"dgt0"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	IsRecurring *bool           `json:"is_recurring"`
	Frequency   *string         `json:"frequency"`
}

type OperationalCostPatch struct {
	Type        *string          `json:"type" validate:"omitempty,min=1"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,dgt0"`
	Date        *time.Time       `json:"date"`
	Category    *string          `json:"category"`
	IsRecurring *bool            `json:"is_recurring"`
	Frequency   *string          `json:"frequency"`
}

type salesService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	opCostRepo  repository.OperationalCostRepository
	wsHub       *ws.Hub
}

func NewSalesService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, opCostRepo repository.OperationalCostRepository, hub *ws.Hub) SalesService {
	return &salesService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		opCostRepo:  opCostRepo,
		wsHub:       hub,
	}
}

// CreateSale snapshots item prices, stores the sale, then walks the items
// decrementing stock on every product that still exists. Stock may go
// negative: an oversell is recorded, not rejected. The writes are best
// effort with no cross-entity rollback, and the decrement is never reversed
// by later sale edits or deletes.
func (s *salesService) CreateSale(req *SaleRequest, cashierID uint) (*model.Sale, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	products, err := s.resolveProducts(req.Items)
	if err != nil {
		return nil, err
	}

	sale := &model.Sale{
		Reference:     uuid.NewString(),
		TaxAmount:     req.TaxAmount,
		PaymentMethod: req.PaymentMethod,
		CustomerID:    req.CustomerID,
		CashierID:     cashierID,
	}

	itemTotal := decimal.Zero
	for _, item := range req.Items {
		price := decimal.Zero
		if product, ok := products[item.ProductID]; ok {
			price = product.Price
		}
		if item.Price != nil {
			price = *item.Price
		}
		total := price.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		itemTotal = itemTotal.Add(total)
		sale.Items = append(sale.Items, model.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
			Total:     total,
		})
	}
	sale.TotalAmount = itemTotal.Add(req.TaxAmount).Round(2)

	if err := s.saleRepo.Create(sale); err != nil {
		return nil, err
	}

	for _, item := range sale.Items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		product.Stock -= item.Quantity
		if err := s.productRepo.Update(&product); err != nil {
			// Best effort: the sale stands even if a decrement fails.
			continue
		}
		products[item.ProductID] = product
		if s.wsHub != nil {
			s.wsHub.BroadcastEvent("stock_update", map[string]interface{}{
				"product_id": product.ID,
				"name":       product.Name,
				"new_stock":  product.Stock,
				"sale_id":    sale.ID,
			})
		}
	}

	return sale, nil
}

func (s *salesService) GetAllSales() ([]model.Sale, error) {
	return s.saleRepo.FindAll()
}

func (s *salesService) GetSaleByID(id uint) (*model.Sale, error) {
	return s.saleRepo.FindByID(id)
}

// UpdateSale merges scalar fields only. Items and totals are a snapshot
// from sale time; stock is not touched.
func (s *salesService) UpdateSale(id uint, req *SalePatch) (*model.Sale, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.PaymentMethod != nil {
		sale.PaymentMethod = *req.PaymentMethod
	}
	if req.CustomerID != nil {
		sale.CustomerID = req.CustomerID
	}

	if err := s.saleRepo.Update(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// DeleteSale removes the record only. The stock decrement applied at
// creation intentionally stays in place.
func (s *salesService) DeleteSale(id uint) error {
	removed, err := s.saleRepo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return repository.ErrNotFound
	}
	return nil
}

func (s *salesService) GetSaleDetails(id uint) (*SaleDetails, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	products, err := s.resolveProductsFromItems(sale.Items)
	if err != nil {
		return nil, err
	}

	details := &SaleDetails{
		Sale:        *sale,
		ItemDetails: []SaleItemDetail{},
	}
	for _, item := range sale.Items {
		product, ok := products[item.ProductID]
		if !ok {
			// Product deleted since the sale; the line drops out of the view.
			continue
		}
		details.ItemDetails = append(details.ItemDetails, SaleItemDetail{
			Product:  product,
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    item.Total,
		})
	}
	return details, nil
}

func (s *salesService) CreateOperationalCost(req *OperationalCostRequest) (*model.OperationalCost, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	cost := &model.OperationalCost{
		Type:        req.Type,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		Category:    req.Category,
		Frequency:   req.Frequency,
	}
	if cost.Date.IsZero() {
		cost.Date = time.Now()
	}
	if req.IsRecurring != nil {
		cost.IsRecurring = *req.IsRecurring
	}

	if err := s.opCostRepo.Create(cost); err != nil {
		return nil, err
	}
	return cost, nil
}

func (s *salesService) GetAllOperationalCosts() ([]model.OperationalCost, error) {
	return s.opCostRepo.FindAll()
}

func (s *salesService) GetOperationalCostByID(id uint) (*model.OperationalCost, error) {
	return s.opCostRepo.FindByID(id)
}

func (s *salesService) UpdateOperationalCost(id uint, req *OperationalCostPatch) (*model.OperationalCost, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	cost, err := s.opCostRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		cost.Type = *req.Type
	}
	if req.Description != nil {
		cost.Description = *req.Description
	}
	if req.Amount != nil {
		cost.Amount = *req.Amount
	}
	if req.Date != nil {
		cost.Date = *req.Date
	}
	if req.Category != nil {
		cost.Category = *req.Category
	}
	if req.IsRecurring != nil {
		cost.IsRecurring = *req.IsRecurring
	}
	if req.Frequency != nil {
		cost.Frequency = req.Frequency
	}

	if err := s.opCostRepo.Update(cost); err != nil {
		return nil, err
	}
	return cost, nil
}

func (s *salesService) DeleteOperationalCost(id uint) error {
	removed, err := s.opCostRepo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return repository.ErrNotFound
	}
	return nil
}

func (s *salesService) resolveProducts(items []SaleItemRequest) (map[uint]model.Product, error) {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	return s.productRepo.FindByIDs(ids)
}

func (s *salesService) resolveProductsFromItems(items []model.SaleItem) (map[uint]model.Product, error) {
	if len(items) == 0 {
		return map[uint]model.Product{}, nil
	}
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	return s.productRepo.FindByIDs(ids)
}
