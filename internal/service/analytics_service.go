package service

import (
	"sort"
	"time"

	"go-resto-ops/internal/model"
	"go-resto-ops/internal/repository"

	"github.com/shopspring/decimal"
)

const defaultAnalyticsWindowDays = 30

// AnalyticsService folds a trailing window of sales into the dashboard
// summary. Everything is computed in Go over the repository's window query
// so both storage backends share one code path.
type AnalyticsService interface {
	GetSalesAnalytics(days int) (*SalesAnalytics, error)
}

type TopProduct struct {
	ProductID    uint            `json:"product_id"`
	Name         string          `json:"name"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

type TrendPoint struct {
	Date   string          `json:"date"` // ISO-8601 local day
	Sales  decimal.Decimal `json:"sales"`
	Profit decimal.Decimal `json:"profit"`
}

type SalesAnalytics struct {
	Period             int                        `json:"period_days"`
	TotalSales         decimal.Decimal            `json:"total_sales"`
	TotalProfit        decimal.Decimal            `json:"total_profit"`
	AverageOrderValue  decimal.Decimal            `json:"average_order_value"`
	TopSellingProducts []TopProduct               `json:"top_selling_products"`
	SalesByCategory    map[string]decimal.Decimal `json:"sales_by_category"`
	SalesTrend         []TrendPoint               `json:"sales_trend"`
}

type analyticsService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository

	// now is swappable so window math can be pinned in tests.
	now func() time.Time
}

func NewAnalyticsService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) AnalyticsService {
	return &analyticsService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		now:         time.Now,
	}
}

func (s *analyticsService) GetSalesAnalytics(days int) (*SalesAnalytics, error) {
	if days <= 0 {
		days = defaultAnalyticsWindowDays
	}
	now := s.now()
	since := now.AddDate(0, 0, -days)

	sales, err := s.saleRepo.FindSince(since)
	if err != nil {
		return nil, err
	}
	products, err := s.resolveProducts(sales)
	if err != nil {
		return nil, err
	}

	analytics := &SalesAnalytics{
		Period:             days,
		TopSellingProducts: []TopProduct{},
		SalesByCategory:    map[string]decimal.Decimal{},
	}

	for _, sale := range sales {
		// A sale whose products were all deleted still counts in full
		// toward total revenue; only the per-product breakdowns drop it.
		analytics.TotalSales = analytics.TotalSales.Add(sale.TotalAmount)
		analytics.TotalProfit = analytics.TotalProfit.Add(saleProfit(sale, products))
	}
	if len(sales) > 0 {
		analytics.AverageOrderValue = analytics.TotalSales.DivRound(decimal.NewFromInt(int64(len(sales))), 2)
	}
	analytics.TotalSales = analytics.TotalSales.Round(2)
	analytics.TotalProfit = analytics.TotalProfit.Round(2)

	analytics.TopSellingProducts = topSellingProducts(sales, products, 5)
	analytics.SalesByCategory = salesByCategory(sales, products)
	analytics.SalesTrend = salesTrend(sales, products, now)

	return analytics, nil
}

// saleProfit is revenue minus product cost per item, priced at the
// product's current cost rather than a cost-at-sale snapshot. Items whose
// product has been deleted contribute nothing.
func saleProfit(sale model.Sale, products map[uint]model.Product) decimal.Decimal {
	profit := decimal.Zero
	for _, item := range sale.Items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		cost := product.Cost.Mul(decimal.NewFromInt(int64(item.Quantity)))
		profit = profit.Add(item.Total.Sub(cost))
	}
	return profit
}

// topSellingProducts ranks by quantity sold, descending. Ties keep the
// order in which products first appeared in the sale stream, which is why
// grouping tracks first-seen order and the sort is stable.
func topSellingProducts(sales []model.Sale, products map[uint]model.Product, limit int) []TopProduct {
	grouped := map[uint]*TopProduct{}
	var order []uint

	for _, sale := range sales {
		for _, item := range sale.Items {
			product, ok := products[item.ProductID]
			if !ok {
				continue
			}
			entry, seen := grouped[item.ProductID]
			if !seen {
				entry = &TopProduct{ProductID: item.ProductID, Name: product.Name}
				grouped[item.ProductID] = entry
				order = append(order, item.ProductID)
			}
			entry.QuantitySold += item.Quantity
			entry.Revenue = entry.Revenue.Add(item.Total)
		}
	}

	ranked := make([]TopProduct, 0, len(order))
	for _, id := range order {
		entry := *grouped[id]
		entry.Revenue = entry.Revenue.Round(2)
		ranked = append(ranked, entry)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].QuantitySold > ranked[j].QuantitySold
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func salesByCategory(sales []model.Sale, products map[uint]model.Product) map[string]decimal.Decimal {
	byCategory := map[string]decimal.Decimal{}
	for _, sale := range sales {
		for _, item := range sale.Items {
			product, ok := products[item.ProductID]
			if !ok {
				continue
			}
			byCategory[product.Category] = byCategory[product.Category].Add(item.Total)
		}
	}
	for category, total := range byCategory {
		byCategory[category] = total.Round(2)
	}
	return byCategory
}

// salesTrend buckets the last seven local days, oldest first. Every bucket
// is emitted even when empty.
func salesTrend(sales []model.Sale, products map[uint]model.Product, now time.Time) []TrendPoint {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	trend := make([]TrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		dayStart := today.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		daySales := decimal.Zero
		dayProfit := decimal.Zero
		for _, sale := range sales {
			if sale.CreatedAt.Before(dayStart) || !sale.CreatedAt.Before(dayEnd) {
				continue
			}
			daySales = daySales.Add(sale.TotalAmount)
			dayProfit = dayProfit.Add(saleProfit(sale, products))
		}
		trend = append(trend, TrendPoint{
			Date:   dayStart.Format("2006-01-02"),
			Sales:  daySales.Round(2),
			Profit: dayProfit.Round(2),
		})
	}
	return trend
}

func (s *analyticsService) resolveProducts(sales []model.Sale) (map[uint]model.Product, error) {
	seen := map[uint]bool{}
	var ids []uint
	for _, sale := range sales {
		for _, item := range sale.Items {
			if !seen[item.ProductID] {
				seen[item.ProductID] = true
				ids = append(ids, item.ProductID)
			}
		}
	}
	if len(ids) == 0 {
		return map[uint]model.Product{}, nil
	}
	return s.productRepo.FindByIDs(ids)
}
