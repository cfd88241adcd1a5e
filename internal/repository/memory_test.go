package repository

import (
	"errors"
	"testing"
	"time"

	"go-resto-ops/internal/model"

	"github.com/shopspring/decimal"
)

func TestMemoryAssignsMonotonicIDs(t *testing.T) {
	store := NewMemoryStore()

	var ids []uint
	for _, name := range []string{"Flour", "Sugar", "Salt"} {
		ingredient := &model.Ingredient{Name: name, CostPerUnit: decimal.New(1, 0)}
		if err := store.Ingredients.Create(ingredient); err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids = append(ids, ingredient.ID)
	}
	if ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("ids = %v, want [1 2 3]", ids)
	}

	// Deleting never recycles an id.
	if removed, _ := store.Ingredients.Delete(2); !removed {
		t.Fatal("delete should report true for an existing id")
	}
	next := &model.Ingredient{Name: "Pepper", CostPerUnit: decimal.New(1, 0)}
	store.Ingredients.Create(next)
	if next.ID != 4 {
		t.Fatalf("id after delete = %d, want 4", next.ID)
	}
}

func TestMemoryDeleteAbsent(t *testing.T) {
	store := NewMemoryStore()

	removed, err := store.Products.Delete(99)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed {
		t.Fatal("delete of absent id should report false")
	}
}

func TestMemoryFindByIDMiss(t *testing.T) {
	store := NewMemoryStore()

	if _, err := store.Products.FindByID(1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.Users.FindByEmail("nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	store := NewMemoryStore()

	recipe := &model.Recipe{
		Name:     "Cake",
		Servings: 2,
		Items:    []model.RecipeItem{{IngredientID: 1, Quantity: decimal.New(1, 0)}},
	}
	if err := store.Recipes.Create(recipe); err != nil {
		t.Fatalf("Create: %v", err)
	}

	fetched, _ := store.Recipes.FindByID(recipe.ID)
	fetched.Name = "Mutated"
	fetched.Items[0].IngredientID = 999

	again, _ := store.Recipes.FindByID(recipe.ID)
	if again.Name != "Cake" || again.Items[0].IngredientID != 1 {
		t.Fatalf("stored recipe aliased by a read: %+v", again)
	}
}

func TestMemorySaleFindSince(t *testing.T) {
	store := NewMemoryStore()

	now := time.Now()
	old := &model.Sale{Reference: "old", TotalAmount: decimal.New(1, 0)}
	old.CreatedAt = now.AddDate(0, 0, -10)
	recent := &model.Sale{Reference: "recent", TotalAmount: decimal.New(2, 0)}
	recent.CreatedAt = now.Add(-time.Hour)

	store.Sales.Create(old)
	store.Sales.Create(recent)

	sales, err := store.Sales.FindSince(now.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("FindSince: %v", err)
	}
	if len(sales) != 1 || sales[0].Reference != "recent" {
		t.Fatalf("FindSince = %+v, want only the recent sale", sales)
	}
}

func TestMemorySaleUpdateKeepsItems(t *testing.T) {
	store := NewMemoryStore()

	sale := &model.Sale{
		Reference:     "r1",
		PaymentMethod: "CASH",
		Items:         []model.SaleItem{{ProductID: 1, Quantity: 2, Price: decimal.New(3, 0), Total: decimal.New(6, 0)}},
	}
	store.Sales.Create(sale)

	patched := *sale
	patched.PaymentMethod = "CARD"
	patched.Items = nil // callers cannot blank the snapshot
	if err := store.Sales.Update(&patched); err != nil {
		t.Fatalf("Update: %v", err)
	}

	fetched, _ := store.Sales.FindByID(sale.ID)
	if fetched.PaymentMethod != "CARD" {
		t.Fatalf("payment_method = %q, want CARD", fetched.PaymentMethod)
	}
	if len(fetched.Items) != 1 {
		t.Fatalf("items lost on update: %+v", fetched.Items)
	}
}

func TestMemoryRecipeUpdateKeepsItemsUnlessReplaced(t *testing.T) {
	store := NewMemoryStore()

	recipe := &model.Recipe{
		Name:     "Cake",
		Servings: 2,
		Items:    []model.RecipeItem{{IngredientID: 1, Quantity: decimal.New(2, 0)}},
	}
	store.Recipes.Create(recipe)

	renamed := *recipe
	renamed.Name = "Torte"
	renamed.Items = nil
	if err := store.Recipes.Update(&renamed, false); err != nil {
		t.Fatalf("Update: %v", err)
	}
	fetched, _ := store.Recipes.FindByID(recipe.ID)
	if len(fetched.Items) != 1 {
		t.Fatalf("items lost without replacement: %+v", fetched.Items)
	}

	replaced := *fetched
	replaced.Items = []model.RecipeItem{
		{IngredientID: 2, Quantity: decimal.New(1, 0)},
		{IngredientID: 3, Quantity: decimal.New(1, 0)},
	}
	if err := store.Recipes.Update(&replaced, true); err != nil {
		t.Fatalf("Update replace: %v", err)
	}
	fetched, _ = store.Recipes.FindByID(recipe.ID)
	if len(fetched.Items) != 2 {
		t.Fatalf("items not replaced: %+v", fetched.Items)
	}
}

func TestMemoryCostHistoryFilter(t *testing.T) {
	store := NewMemoryStore()

	one, two := uint(1), uint(2)
	store.CostHistory.Create(&model.CostHistory{ProductID: &one, OldCost: decimal.New(1, 0), NewCost: decimal.New(2, 0)})
	store.CostHistory.Create(&model.CostHistory{ProductID: &two, OldCost: decimal.New(3, 0), NewCost: decimal.New(4, 0)})
	store.CostHistory.Create(&model.CostHistory{ProductID: &one, OldCost: decimal.New(2, 0), NewCost: decimal.New(5, 0)})

	all, _ := store.CostHistory.FindAll()
	if len(all) != 3 {
		t.Fatalf("FindAll = %d entries, want 3", len(all))
	}

	filtered, _ := store.CostHistory.FindByProduct(one)
	if len(filtered) != 2 {
		t.Fatalf("FindByProduct = %d entries, want 2", len(filtered))
	}
	for _, entry := range filtered {
		if *entry.ProductID != one {
			t.Fatalf("wrong product in filter: %+v", entry)
		}
	}
}
