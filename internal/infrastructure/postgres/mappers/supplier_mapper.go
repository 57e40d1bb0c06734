package mappers

import (
	"github.com/pricelink/supplier-mapping-service/internal/domain"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/models"
)

func ToDomainSupplier(model *models.SupplierModel) *domain.Supplier {
	return &domain.Supplier{
		ID:        model.ID,
		Name:      model.Name,
		INN:       model.INN,
		KPP:       model.KPP,
		Country:   model.Country,
		City:      model.City,
		Address:   model.Address,
		URL:       model.URL,
		Branch:    model.Branch,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMSupplier(supplier *domain.Supplier) *models.SupplierModel {
	return &models.SupplierModel{
		ID:        supplier.ID,
		Name:      supplier.Name,
		INN:       supplier.INN,
		KPP:       supplier.KPP,
		Country:   supplier.Country,
		City:      supplier.City,
		Address:   supplier.Address,
		URL:       supplier.URL,
		Branch:    supplier.Branch,
		CreatedAt: supplier.CreatedAt,
	}
}
