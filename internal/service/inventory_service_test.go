package service

import (
	"testing"

	"go-resto-ops/internal/repository"
)

func newInventory(t *testing.T) (InventoryService, *repository.Store) {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewInventoryService(store.Products, store.CostHistory, nil), store
}

func TestCreateProductDefaults(t *testing.T) {
	svc, _ := newInventory(t)

	product, err := svc.CreateProduct(&ProductRequest{
		Name:  "Espresso",
		Price: dec(t, "3.00"),
		Cost:  dec(t, "0.80"),
		Stock: 100,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if product.MinStock != 5 {
		t.Fatalf("min_stock default = %d, want 5", product.MinStock)
	}
	if !product.IsActive {
		t.Fatal("is_active should default to true")
	}
}

func TestCostHistoryAppendedOnCostChange(t *testing.T) {
	svc, _ := newInventory(t)

	product, _ := svc.CreateProduct(&ProductRequest{
		Name:  "Latte",
		Price: dec(t, "4.00"),
		Cost:  dec(t, "1.00"),
	})

	// Create never writes history.
	entries, err := svc.GetCostHistory(&product.ID)
	if err != nil {
		t.Fatalf("GetCostHistory: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("history after create = %d entries, want 0", len(entries))
	}

	newCost := dec(t, "1.50")
	if _, err := svc.UpdateProduct(product.ID, &ProductPatch{Cost: &newCost}); err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}

	entries, _ = svc.GetCostHistory(&product.ID)
	if len(entries) != 1 {
		t.Fatalf("history after cost change = %d entries, want 1", len(entries))
	}
	entry := entries[0]
	if !entry.OldCost.Equal(dec(t, "1.00")) || !entry.NewCost.Equal(dec(t, "1.50")) {
		t.Fatalf("history entry = %s -> %s, want 1.00 -> 1.50", entry.OldCost, entry.NewCost)
	}
	if entry.Reason != "Manual update" {
		t.Fatalf("reason = %q, want \"Manual update\"", entry.Reason)
	}

	// Updating to the same cost, or updating other fields, appends nothing.
	sameCost := dec(t, "1.50")
	newPrice := dec(t, "4.50")
	svc.UpdateProduct(product.ID, &ProductPatch{Cost: &sameCost})
	svc.UpdateProduct(product.ID, &ProductPatch{Price: &newPrice})

	entries, _ = svc.GetCostHistory(&product.ID)
	if len(entries) != 1 {
		t.Fatalf("history grew without a cost change: %d entries", len(entries))
	}
}

func TestProductsWithMargin(t *testing.T) {
	svc, _ := newInventory(t)

	svc.CreateProduct(&ProductRequest{Name: "Mocha", Price: dec(t, "10.00"), Cost: dec(t, "4.00"), Stock: 3})
	svc.CreateProduct(&ProductRequest{Name: "Water", Price: dec(t, "1.00"), Cost: dec(t, "0"), Stock: 50})

	margins, err := svc.GetProductsWithMargin()
	if err != nil {
		t.Fatalf("GetProductsWithMargin: %v", err)
	}
	if len(margins) != 2 {
		t.Fatalf("got %d products, want 2", len(margins))
	}

	mocha := margins[0]
	if !mocha.Margin.Equal(dec(t, "6.00")) {
		t.Fatalf("margin = %s, want 6.00", mocha.Margin)
	}
	if !mocha.MarginPercentage.Equal(dec(t, "150")) {
		t.Fatalf("margin_percentage = %s, want 150", mocha.MarginPercentage)
	}
	if !mocha.IsLowStock {
		t.Fatal("stock 3 <= min_stock 5 should flag low stock")
	}

	water := margins[1]
	if !water.MarginPercentage.IsZero() {
		t.Fatalf("zero-cost product should report 0%%, got %s", water.MarginPercentage)
	}
	if water.IsLowStock {
		t.Fatal("stock 50 should not flag low stock")
	}
}

func TestInventoryAlertSeverity(t *testing.T) {
	svc, _ := newInventory(t)

	min := 10
	cases := []struct {
		name     string
		stock    int
		want     string // "" means no alert expected
	}{
		{"Critical", 3, "critical"},
		{"Boundary", 5, "critical"}, // 2*5 <= 10
		{"Low", 8, "low"},
		{"AtThreshold", 10, "low"},
		{"Healthy", 11, ""},
	}
	for _, tc := range cases {
		svc.CreateProduct(&ProductRequest{
			Name: tc.name, Price: dec(t, "1"), Cost: dec(t, "0.50"),
			Stock: tc.stock, MinStock: &min,
		})
	}

	alerts, err := svc.GetInventoryAlerts()
	if err != nil {
		t.Fatalf("GetInventoryAlerts: %v", err)
	}

	got := map[string]string{}
	for _, alert := range alerts {
		got[alert.Name] = alert.Severity
	}
	for _, tc := range cases {
		severity, alerted := got[tc.name]
		if tc.want == "" {
			if alerted {
				t.Fatalf("%s: unexpected alert %q", tc.name, severity)
			}
			continue
		}
		if severity != tc.want {
			t.Fatalf("%s: severity = %q, want %q", tc.name, severity, tc.want)
		}
	}
}
