package repository

import (
	"errors"

	"github.com/pricelink/supplier-mapping-service/internal/domain"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/mappers"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSupplierRepository struct {
	db *gorm.DB
}

func NewDefaultSupplierRepository(db *gorm.DB) *DefaultSupplierRepository {
	return &DefaultSupplierRepository{db: db}
}

func (r *DefaultSupplierRepository) CreateSupplier(supplier *domain.Supplier) error {
	return r.db.Create(mappers.ToGORMSupplier(supplier)).Error
}

func (r *DefaultSupplierRepository) UpdateSupplier(supplier *domain.Supplier) error {
	result := r.db.Model(&models.SupplierModel{}).
		Where("id = ?", supplier.ID).
		Updates(map[string]interface{}{
			"name":    supplier.Name,
			"inn":     supplier.INN,
			"kpp":     supplier.KPP,
			"country": supplier.Country,
			"city":    supplier.City,
			"address": supplier.Address,
			"url":     supplier.URL,
			"branch":  supplier.Branch,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrSupplierNotFound
	}
	return nil
}

func (r *DefaultSupplierRepository) DeleteSupplier(supplierID string) error {
	result := r.db.Delete(&models.SupplierModel{}, "id = ?", supplierID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrSupplierNotFound
	}
	return nil
}

func (r *DefaultSupplierRepository) GetSupplierByID(supplierID string) (*domain.Supplier, error) {
	var supplierModel models.SupplierModel
	if err := r.db.First(&supplierModel, "id = ?", supplierID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, err
	}
	return mappers.ToDomainSupplier(&supplierModel), nil
}

func (r *DefaultSupplierRepository) SearchSuppliers(q string) ([]*domain.Supplier, error) {
	query := r.db.Model(&models.SupplierModel{})
	if q != "" {
		pattern := "%" + q + "%"
		query = query.Where("name ILIKE ? OR inn ILIKE ?", pattern, pattern)
	}

	var supplierModels []models.SupplierModel
	if err := query.Order("name asc").Find(&supplierModels).Error; err != nil {
		return nil, err
	}

	suppliers := make([]*domain.Supplier, len(supplierModels))
	for i := range supplierModels {
		suppliers[i] = mappers.ToDomainSupplier(&supplierModels[i])
	}
	return suppliers, nil
}
