package repository

import (
	"go-resto-ops/internal/model"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &product, nil
}

func (r *productRepo) FindByIDs(ids []uint) (map[uint]model.Product, error) {
	var products []model.Product
	if err := r.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

func (r *productRepo) Update(product *model.Product) error {
	// Save with Select("*") so zero values (stock 0, is_active false) are
	// written instead of being skipped as empty fields.
	return r.db.Model(product).Select("*").Omit("created_at").Updates(product).Error
}

func (r *productRepo) Delete(id uint) (bool, error) {
	return deleteByID(r.db, &model.Product{}, id)
}
