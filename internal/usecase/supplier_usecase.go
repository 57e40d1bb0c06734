package usecase

import (
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/pricelink/supplier-mapping-service/internal/domain"
)

type SupplierInput struct {
	Name    string
	INN     string
	KPP     string
	Country string
	City    string
	Address string
	URL     string
	Branch  string
}

type SupplierUsecase interface {
	CreateSupplier(input *SupplierInput) (*domain.Supplier, error)
	UpdateSupplier(supplierID string, input *SupplierInput) (*domain.Supplier, error)
	DeleteSupplier(supplierID string) error
	SearchSuppliers(q string) ([]*domain.Supplier, error)
}

type DefaultSupplierUsecase struct {
	supplierRepo domain.SupplierRepository
}

func NewDefaultSupplierUsecase(supplierRepo domain.SupplierRepository) *DefaultSupplierUsecase {
	return &DefaultSupplierUsecase{supplierRepo: supplierRepo}
}

// digitsOnly mirrors the registry-side INN validation: a canonical entry must
// carry a 10 or 12 digit INN. No uniqueness is enforced: branches of one
// company legitimately share an INN.
func digitsOnly(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func (uc *DefaultSupplierUsecase) CreateSupplier(input *SupplierInput) (*domain.Supplier, error) {
	inn := digitsOnly(input.INN)
	if len(inn) != 10 && len(inn) != 12 {
		return nil, domain.ErrInvalidSupplierINN
	}
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	supplier := &domain.Supplier{
		ID:        idGenerator(),
		Name:      input.Name,
		INN:       inn,
		KPP:       input.KPP,
		Country:   input.Country,
		City:      input.City,
		Address:   input.Address,
		URL:       input.URL,
		Branch:    input.Branch,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.supplierRepo.CreateSupplier(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (uc *DefaultSupplierUsecase) UpdateSupplier(supplierID string, input *SupplierInput) (*domain.Supplier, error) {
	supplier, err := uc.supplierRepo.GetSupplierByID(supplierID)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		supplier.Name = input.Name
	}
	if input.INN != "" {
		inn := digitsOnly(input.INN)
		if len(inn) != 10 && len(inn) != 12 {
			return nil, domain.ErrInvalidSupplierINN
		}
		supplier.INN = inn
	}
	supplier.KPP = input.KPP
	supplier.Country = input.Country
	supplier.City = input.City
	supplier.Address = input.Address
	supplier.URL = input.URL
	supplier.Branch = input.Branch

	if err := uc.supplierRepo.UpdateSupplier(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (uc *DefaultSupplierUsecase) DeleteSupplier(supplierID string) error {
	return uc.supplierRepo.DeleteSupplier(supplierID)
}

func (uc *DefaultSupplierUsecase) SearchSuppliers(q string) ([]*domain.Supplier, error) {
	return uc.supplierRepo.SearchSuppliers(q)
}
