package repository

import (
	"sort"
	"sync"
	"time"

	"go-resto-ops/internal/model"
)

// memoryState is the map-backed storage engine. One coarse RWMutex guards
// every collection and the ID counters: contention is low and correctness of
// id assignment matters more than write throughput here. Values are copied on
// the way in and out so callers never alias stored state.
type memoryState struct {
	mu  sync.RWMutex
	seq map[string]uint

	ingredients map[uint]model.Ingredient
	recipes     map[uint]model.Recipe
	products    map[uint]model.Product
	sales       map[uint]model.Sale
	opCosts     map[uint]model.OperationalCost
	costHistory map[uint]model.CostHistory
	users       map[uint]model.User
}

// NewMemoryStore builds the in-memory backend. It satisfies the same Store
// contract as NewPostgresStore and is the default when no database is
// configured; it is also what the service tests run against.
func NewMemoryStore() *Store {
	s := &memoryState{
		seq:         make(map[string]uint),
		ingredients: make(map[uint]model.Ingredient),
		recipes:     make(map[uint]model.Recipe),
		products:    make(map[uint]model.Product),
		sales:       make(map[uint]model.Sale),
		opCosts:     make(map[uint]model.OperationalCost),
		costHistory: make(map[uint]model.CostHistory),
		users:       make(map[uint]model.User),
	}
	return &Store{
		Ingredients:      &memIngredientRepo{s},
		Recipes:          &memRecipeRepo{s},
		Products:         &memProductRepo{s},
		Sales:            &memSaleRepo{s},
		OperationalCosts: &memOperationalCostRepo{s},
		CostHistory:      &memCostHistoryRepo{s},
		Users:            &memUserRepo{s},
	}
}

// nextID hands out monotonically increasing ids per entity kind, starting
// at 1. Callers must hold the write lock.
func (s *memoryState) nextID(kind string) uint {
	s.seq[kind]++
	return s.seq[kind]
}

func sortedIDs[V any](m map[uint]V) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func stamp(base *model.BaseModel) {
	now := time.Now()
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
}

func copyRecipe(r model.Recipe) model.Recipe {
	out := r
	out.Items = append([]model.RecipeItem(nil), r.Items...)
	return out
}

func copySale(s model.Sale) model.Sale {
	out := s
	out.Items = append([]model.SaleItem(nil), s.Items...)
	return out
}

// --- ingredients ---

type memIngredientRepo struct{ s *memoryState }

func (r *memIngredientRepo) Create(ingredient *model.Ingredient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ingredient.ID = r.s.nextID("ingredient")
	stamp(&ingredient.BaseModel)
	r.s.ingredients[ingredient.ID] = *ingredient
	return nil
}

func (r *memIngredientRepo) FindAll() ([]model.Ingredient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Ingredient, 0, len(r.s.ingredients))
	for _, id := range sortedIDs(r.s.ingredients) {
		out = append(out, r.s.ingredients[id])
	}
	return out, nil
}

func (r *memIngredientRepo) FindByID(id uint) (*model.Ingredient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ingredient, ok := r.s.ingredients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &ingredient, nil
}

func (r *memIngredientRepo) FindByIDs(ids []uint) (map[uint]model.Ingredient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	byID := make(map[uint]model.Ingredient, len(ids))
	for _, id := range ids {
		if ingredient, ok := r.s.ingredients[id]; ok {
			byID[id] = ingredient
		}
	}
	return byID, nil
}

func (r *memIngredientRepo) Update(ingredient *model.Ingredient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.ingredients[ingredient.ID]; !ok {
		return ErrNotFound
	}
	ingredient.UpdatedAt = time.Now()
	r.s.ingredients[ingredient.ID] = *ingredient
	return nil
}

func (r *memIngredientRepo) Delete(id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.ingredients[id]; !ok {
		return false, nil
	}
	delete(r.s.ingredients, id)
	return true, nil
}

// --- recipes ---

type memRecipeRepo struct{ s *memoryState }

func (r *memRecipeRepo) Create(recipe *model.Recipe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	recipe.ID = r.s.nextID("recipe")
	stamp(&recipe.BaseModel)
	for i := range recipe.Items {
		recipe.Items[i].ID = r.s.nextID("recipe_item")
		recipe.Items[i].RecipeID = recipe.ID
	}
	r.s.recipes[recipe.ID] = copyRecipe(*recipe)
	return nil
}

func (r *memRecipeRepo) FindAll() ([]model.Recipe, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Recipe, 0, len(r.s.recipes))
	for _, id := range sortedIDs(r.s.recipes) {
		out = append(out, copyRecipe(r.s.recipes[id]))
	}
	return out, nil
}

func (r *memRecipeRepo) FindByID(id uint) (*model.Recipe, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	recipe, ok := r.s.recipes[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := copyRecipe(recipe)
	return &out, nil
}

func (r *memRecipeRepo) Update(recipe *model.Recipe, replaceItems bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.recipes[recipe.ID]
	if !ok {
		return ErrNotFound
	}
	if replaceItems {
		for i := range recipe.Items {
			recipe.Items[i].ID = r.s.nextID("recipe_item")
			recipe.Items[i].RecipeID = recipe.ID
		}
	} else {
		recipe.Items = stored.Items
	}
	recipe.UpdatedAt = time.Now()
	r.s.recipes[recipe.ID] = copyRecipe(*recipe)
	return nil
}

func (r *memRecipeRepo) Delete(id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.recipes[id]; !ok {
		return false, nil
	}
	delete(r.s.recipes, id)
	return true, nil
}

// --- products ---

type memProductRepo struct{ s *memoryState }

func (r *memProductRepo) Create(product *model.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	product.ID = r.s.nextID("product")
	stamp(&product.BaseModel)
	r.s.products[product.ID] = *product
	return nil
}

func (r *memProductRepo) FindAll() ([]model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Product, 0, len(r.s.products))
	for _, id := range sortedIDs(r.s.products) {
		out = append(out, r.s.products[id])
	}
	return out, nil
}

func (r *memProductRepo) FindByID(id uint) (*model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	product, ok := r.s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (r *memProductRepo) FindByIDs(ids []uint) (map[uint]model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	byID := make(map[uint]model.Product, len(ids))
	for _, id := range ids {
		if product, ok := r.s.products[id]; ok {
			byID[id] = product
		}
	}
	return byID, nil
}

func (r *memProductRepo) Update(product *model.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return ErrNotFound
	}
	product.UpdatedAt = time.Now()
	r.s.products[product.ID] = *product
	return nil
}

func (r *memProductRepo) Delete(id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return false, nil
	}
	delete(r.s.products, id)
	return true, nil
}

// --- sales ---

type memSaleRepo struct{ s *memoryState }

func (r *memSaleRepo) Create(sale *model.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale.ID = r.s.nextID("sale")
	stamp(&sale.BaseModel)
	for i := range sale.Items {
		sale.Items[i].ID = r.s.nextID("sale_item")
		sale.Items[i].SaleID = sale.ID
	}
	r.s.sales[sale.ID] = copySale(*sale)
	return nil
}

func (r *memSaleRepo) FindAll() ([]model.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Sale, 0, len(r.s.sales))
	for _, id := range sortedIDs(r.s.sales) {
		out = append(out, copySale(r.s.sales[id]))
	}
	return out, nil
}

func (r *memSaleRepo) FindByID(id uint) (*model.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := copySale(sale)
	return &out, nil
}

func (r *memSaleRepo) FindSince(since time.Time) ([]model.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.Sale
	for _, id := range sortedIDs(r.s.sales) {
		sale := r.s.sales[id]
		if !sale.CreatedAt.Before(since) {
			out = append(out, copySale(sale))
		}
	}
	return out, nil
}

func (r *memSaleRepo) Update(sale *model.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.sales[sale.ID]
	if !ok {
		return ErrNotFound
	}
	// Items are immutable after creation; keep the stored snapshot.
	sale.Items = stored.Items
	sale.UpdatedAt = time.Now()
	r.s.sales[sale.ID] = copySale(*sale)
	return nil
}

func (r *memSaleRepo) Delete(id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sales[id]; !ok {
		return false, nil
	}
	delete(r.s.sales, id)
	return true, nil
}

// --- operational costs ---

type memOperationalCostRepo struct{ s *memoryState }

func (r *memOperationalCostRepo) Create(cost *model.OperationalCost) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cost.ID = r.s.nextID("operational_cost")
	stamp(&cost.BaseModel)
	r.s.opCosts[cost.ID] = *cost
	return nil
}

func (r *memOperationalCostRepo) FindAll() ([]model.OperationalCost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.OperationalCost, 0, len(r.s.opCosts))
	for _, id := range sortedIDs(r.s.opCosts) {
		out = append(out, r.s.opCosts[id])
	}
	return out, nil
}

func (r *memOperationalCostRepo) FindByID(id uint) (*model.OperationalCost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	cost, ok := r.s.opCosts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &cost, nil
}

func (r *memOperationalCostRepo) Update(cost *model.OperationalCost) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.opCosts[cost.ID]; !ok {
		return ErrNotFound
	}
	cost.UpdatedAt = time.Now()
	r.s.opCosts[cost.ID] = *cost
	return nil
}

func (r *memOperationalCostRepo) Delete(id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.opCosts[id]; !ok {
		return false, nil
	}
	delete(r.s.opCosts, id)
	return true, nil
}

// --- cost history ---

type memCostHistoryRepo struct{ s *memoryState }

func (r *memCostHistoryRepo) Create(entry *model.CostHistory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	entry.ID = r.s.nextID("cost_history")
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = time.Now()
	}
	r.s.costHistory[entry.ID] = *entry
	return nil
}

func (r *memCostHistoryRepo) FindAll() ([]model.CostHistory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.CostHistory, 0, len(r.s.costHistory))
	for _, id := range sortedIDs(r.s.costHistory) {
		out = append(out, r.s.costHistory[id])
	}
	return out, nil
}

func (r *memCostHistoryRepo) FindByProduct(productID uint) ([]model.CostHistory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.CostHistory
	for _, id := range sortedIDs(r.s.costHistory) {
		entry := r.s.costHistory[id]
		if entry.ProductID != nil && *entry.ProductID == productID {
			out = append(out, entry)
		}
	}
	return out, nil
}

// --- users ---

type memUserRepo struct{ s *memoryState }

func (r *memUserRepo) Create(user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user.ID = r.s.nextID("user")
	stamp(&user.BaseModel)
	r.s.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) FindAll() ([]model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.User, 0, len(r.s.users))
	for _, id := range sortedIDs(r.s.users) {
		out = append(out, r.s.users[id])
	}
	return out, nil
}

func (r *memUserRepo) FindByID(id uint) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *memUserRepo) FindByEmail(email string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range sortedIDs(r.s.users) {
		if r.s.users[id].Email == email {
			user := r.s.users[id]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memUserRepo) Update(user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return ErrNotFound
	}
	user.UpdatedAt = time.Now()
	r.s.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) Delete(id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return false, nil
	}
	delete(r.s.users, id)
	return true, nil
}
