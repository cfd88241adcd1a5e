package repository

import (
	"go-resto-ops/internal/model"

	"gorm.io/gorm"
)

type operationalCostRepo struct {
	db *gorm.DB
}

func NewOperationalCostRepo(db *gorm.DB) OperationalCostRepository {
	return &operationalCostRepo{db}
}

func (r *operationalCostRepo) Create(cost *model.OperationalCost) error {
	return r.db.Create(cost).Error
}

func (r *operationalCostRepo) FindAll() ([]model.OperationalCost, error) {
	var costs []model.OperationalCost
	err := r.db.Order("id ASC").Find(&costs).Error
	return costs, err
}

func (r *operationalCostRepo) FindByID(id uint) (*model.OperationalCost, error) {
	var cost model.OperationalCost
	if err := r.db.First(&cost, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &cost, nil
}

func (r *operationalCostRepo) Update(cost *model.OperationalCost) error {
	return r.db.Model(cost).Select("*").Omit("created_at").Updates(cost).Error
}

func (r *operationalCostRepo) Delete(id uint) (bool, error) {
	return deleteByID(r.db, &model.OperationalCost{}, id)
}

type costHistoryRepo struct {
	db *gorm.DB
}

func NewCostHistoryRepo(db *gorm.DB) CostHistoryRepository {
	return &costHistoryRepo{db}
}

func (r *costHistoryRepo) Create(entry *model.CostHistory) error {
	return r.db.Create(entry).Error
}

func (r *costHistoryRepo) FindAll() ([]model.CostHistory, error) {
	var entries []model.CostHistory
	err := r.db.Order("id ASC").Find(&entries).Error
	return entries, err
}

func (r *costHistoryRepo) FindByProduct(productID uint) ([]model.CostHistory, error) {
	var entries []model.CostHistory
	err := r.db.Where("product_id = ?", productID).Order("id ASC").Find(&entries).Error
	return entries, err
}
