package service

import (
	"testing"
	"time"

	"go-resto-ops/internal/model"
	"go-resto-ops/internal/repository"

	"github.com/shopspring/decimal"
)

func newAnalytics(t *testing.T, now time.Time) (AnalyticsService, *repository.Store) {
	t.Helper()
	store := repository.NewMemoryStore()
	svc := NewAnalyticsService(store.Sales, store.Products).(*analyticsService)
	svc.now = func() time.Time { return now }
	return svc, store
}

func seedProduct(t *testing.T, store *repository.Store, name, category, price, cost string) *model.Product {
	t.Helper()
	product := &model.Product{
		Name:     name,
		Category: category,
		Price:    decimal.RequireFromString(price),
		Cost:     decimal.RequireFromString(cost),
		Stock:    100,
		MinStock: 5,
		IsActive: true,
	}
	if err := store.Products.Create(product); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func seedSale(t *testing.T, store *repository.Store, createdAt time.Time, items ...model.SaleItem) *model.Sale {
	t.Helper()
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total)
	}
	sale := &model.Sale{
		Reference:     createdAt.Format(time.RFC3339Nano),
		TotalAmount:   total,
		PaymentMethod: "CASH",
		CashierID:     1,
		Items:         items,
	}
	sale.CreatedAt = createdAt
	if err := store.Sales.Create(sale); err != nil {
		t.Fatalf("seed sale: %v", err)
	}
	return sale
}

func item(productID uint, qty int, price string) model.SaleItem {
	p := decimal.RequireFromString(price)
	return model.SaleItem{
		ProductID: productID,
		Quantity:  qty,
		Price:     p,
		Total:     p.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func TestAnalyticsEmptyWindow(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	svc, _ := newAnalytics(t, now)

	analytics, err := svc.GetSalesAnalytics(7)
	if err != nil {
		t.Fatalf("GetSalesAnalytics: %v", err)
	}
	if !analytics.TotalSales.IsZero() || !analytics.TotalProfit.IsZero() || !analytics.AverageOrderValue.IsZero() {
		t.Fatalf("empty window should be all zero, got %+v", analytics)
	}
	if len(analytics.TopSellingProducts) != 0 {
		t.Fatalf("top products = %v, want empty", analytics.TopSellingProducts)
	}
	if len(analytics.SalesByCategory) != 0 {
		t.Fatalf("categories = %v, want empty", analytics.SalesByCategory)
	}
	if len(analytics.SalesTrend) != 7 {
		t.Fatalf("trend length = %d, want 7", len(analytics.SalesTrend))
	}
	for _, point := range analytics.SalesTrend {
		if !point.Sales.IsZero() || !point.Profit.IsZero() {
			t.Fatalf("trend bucket %s should be zero: %+v", point.Date, point)
		}
	}
}

func TestAnalyticsTotalsAndProfit(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	svc, store := newAnalytics(t, now)

	burger := seedProduct(t, store, "Burger", "food", "8.00", "3.00")

	seedSale(t, store, now.Add(-2*time.Hour), item(burger.ID, 2, "8.00"))

	analytics, err := svc.GetSalesAnalytics(30)
	if err != nil {
		t.Fatalf("GetSalesAnalytics: %v", err)
	}
	if !analytics.TotalSales.Equal(decimal.RequireFromString("16.00")) {
		t.Fatalf("total_sales = %s, want 16.00", analytics.TotalSales)
	}
	// 16.00 - 2*3.00 = 10.00, at the product's current cost
	if !analytics.TotalProfit.Equal(decimal.RequireFromString("10.00")) {
		t.Fatalf("total_profit = %s, want 10.00", analytics.TotalProfit)
	}
	if !analytics.AverageOrderValue.Equal(decimal.RequireFromString("16.00")) {
		t.Fatalf("average_order_value = %s, want 16.00", analytics.AverageOrderValue)
	}
	if !analytics.SalesByCategory["food"].Equal(decimal.RequireFromString("16.00")) {
		t.Fatalf("food category = %s, want 16.00", analytics.SalesByCategory["food"])
	}
}

func TestAnalyticsProfitUsesCurrentCost(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	svc, store := newAnalytics(t, now)

	burger := seedProduct(t, store, "Burger", "food", "8.00", "3.00")
	seedSale(t, store, now.Add(-2*time.Hour), item(burger.ID, 1, "8.00"))

	// Raise the cost after the sale: historical profit drifts with it.
	burger.Cost = decimal.RequireFromString("5.00")
	if err := store.Products.Update(burger); err != nil {
		t.Fatalf("update product: %v", err)
	}

	analytics, _ := svc.GetSalesAnalytics(30)
	if !analytics.TotalProfit.Equal(decimal.RequireFromString("3.00")) {
		t.Fatalf("total_profit = %s, want 3.00 at the new cost", analytics.TotalProfit)
	}
}

func TestAnalyticsWindowFilter(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	svc, store := newAnalytics(t, now)

	burger := seedProduct(t, store, "Burger", "food", "8.00", "3.00")
	seedSale(t, store, now.Add(-2*time.Hour), item(burger.ID, 1, "8.00"))
	seedSale(t, store, now.AddDate(0, 0, -10), item(burger.ID, 1, "8.00")) // outside 7d

	analytics, _ := svc.GetSalesAnalytics(7)
	if !analytics.TotalSales.Equal(decimal.RequireFromString("8.00")) {
		t.Fatalf("total_sales = %s, want 8.00 (stale sale filtered)", analytics.TotalSales)
	}
}

func TestTopSellingProductsRanking(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	svc, store := newAnalytics(t, now)

	burger := seedProduct(t, store, "Burger", "food", "8.00", "3.00")
	fries := seedProduct(t, store, "Fries", "food", "3.00", "1.00")

	// Burger appears first in the stream but Fries outsells it.
	seedSale(t, store, now.Add(-3*time.Hour), item(burger.ID, 5, "8.00"))
	seedSale(t, store, now.Add(-2*time.Hour), item(fries.ID, 9, "3.00"))

	analytics, _ := svc.GetSalesAnalytics(30)
	top := analytics.TopSellingProducts
	if len(top) != 2 {
		t.Fatalf("len(top) = %d, want 2", len(top))
	}
	if top[0].ProductID != fries.ID || top[0].QuantitySold != 9 {
		t.Fatalf("top[0] = %+v, want Fries qty 9", top[0])
	}
	if top[1].ProductID != burger.ID || top[1].QuantitySold != 5 {
		t.Fatalf("top[1] = %+v, want Burger qty 5", top[1])
	}
}

func TestTopSellingTieKeepsFirstSeenOrder(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	svc, store := newAnalytics(t, now)

	burger := seedProduct(t, store, "Burger", "food", "8.00", "3.00")
	fries := seedProduct(t, store, "Fries", "food", "3.00", "1.00")

	seedSale(t, store, now.Add(-3*time.Hour), item(burger.ID, 4, "8.00"))
	seedSale(t, store, now.Add(-2*time.Hour), item(fries.ID, 4, "3.00"))

	analytics, _ := svc.GetSalesAnalytics(30)
	top := analytics.TopSellingProducts
	if top[0].ProductID != burger.ID {
		t.Fatalf("tie should keep first-seen order, got %+v first", top[0])
	}
}

func TestTopSellingLimitsToFive(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	svc, store := newAnalytics(t, now)

	for i := 0; i < 7; i++ {
		p := seedProduct(t, store, "P", "food", "1.00", "0.50")
		seedSale(t, store, now.Add(-time.Hour), item(p.ID, i+1, "1.00"))
	}

	analytics, _ := svc.GetSalesAnalytics(30)
	if len(analytics.TopSellingProducts) != 5 {
		t.Fatalf("len(top) = %d, want 5", len(analytics.TopSellingProducts))
	}
	if analytics.TopSellingProducts[0].QuantitySold != 7 {
		t.Fatalf("top seller qty = %d, want 7", analytics.TopSellingProducts[0].QuantitySold)
	}
}

func TestAnalyticsDeletedProductStillCountsTowardTotal(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	svc, store := newAnalytics(t, now)

	burger := seedProduct(t, store, "Burger", "food", "8.00", "3.00")
	seedSale(t, store, now.Add(-time.Hour), item(burger.ID, 2, "8.00"))

	if _, err := store.Products.Delete(burger.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}

	analytics, _ := svc.GetSalesAnalytics(30)
	// Revenue keeps the orphaned sale; breakdowns drop it.
	if !analytics.TotalSales.Equal(decimal.RequireFromString("16.00")) {
		t.Fatalf("total_sales = %s, want 16.00", analytics.TotalSales)
	}
	if !analytics.TotalProfit.IsZero() {
		t.Fatalf("total_profit = %s, want 0 (no product to cost)", analytics.TotalProfit)
	}
	if len(analytics.TopSellingProducts) != 0 {
		t.Fatalf("top products should drop deleted product: %v", analytics.TopSellingProducts)
	}
	if len(analytics.SalesByCategory) != 0 {
		t.Fatalf("categories should drop deleted product: %v", analytics.SalesByCategory)
	}
}

func TestSalesTrendBuckets(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	svc, store := newAnalytics(t, now)

	burger := seedProduct(t, store, "Burger", "food", "8.00", "3.00")
	seedSale(t, store, now.Add(-time.Hour), item(burger.ID, 1, "8.00"))                            // today
	seedSale(t, store, now.AddDate(0, 0, -2).Add(3*time.Hour), item(burger.ID, 2, "8.00"))        // two days ago
	seedSale(t, store, now.AddDate(0, 0, -8), item(burger.ID, 4, "8.00"))                         // outside trend

	analytics, _ := svc.GetSalesAnalytics(30)
	trend := analytics.SalesTrend
	if len(trend) != 7 {
		t.Fatalf("trend length = %d, want 7", len(trend))
	}
	if trend[0].Date != "2025-03-09" || trend[6].Date != "2025-03-15" {
		t.Fatalf("trend range = %s..%s, want 2025-03-09..2025-03-15", trend[0].Date, trend[6].Date)
	}
	if !trend[6].Sales.Equal(decimal.RequireFromString("8.00")) {
		t.Fatalf("today's bucket = %s, want 8.00", trend[6].Sales)
	}
	if !trend[4].Sales.Equal(decimal.RequireFromString("16.00")) {
		t.Fatalf("bucket for two days ago = %s, want 16.00", trend[4].Sales)
	}
	if !trend[4].Profit.Equal(decimal.RequireFromString("10.00")) {
		t.Fatalf("profit for two days ago = %s, want 10.00", trend[4].Profit)
	}
	if !trend[3].Sales.IsZero() {
		t.Fatalf("empty day should be zero, got %s", trend[3].Sales)
	}
}

func TestAnalyticsDefaultsWindow(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	svc, _ := newAnalytics(t, now)

	analytics, err := svc.GetSalesAnalytics(0)
	if err != nil {
		t.Fatalf("GetSalesAnalytics: %v", err)
	}
	if analytics.Period != 30 {
		t.Fatalf("period = %d, want default 30", analytics.Period)
	}
}
