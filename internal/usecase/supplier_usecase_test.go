package usecase

import (
	"errors"
	"testing"

	"github.com/pricelink/supplier-mapping-service/internal/domain"
)

func TestCreateSupplierValidatesINN(t *testing.T) {
	uc := NewDefaultSupplierUsecase(&memorySupplierRepo{suppliers: map[string]*domain.Supplier{}})

	tests := []struct {
		name    string
		inn     string
		wantErr bool
		wantINN string
	}{
		{name: "10 digits", inn: "7707083893", wantINN: "7707083893"},
		{name: "12 digits", inn: "500100732259", wantINN: "500100732259"},
		{name: "noise stripped", inn: "77-0708-3893", wantINN: "7707083893"},
		{name: "too short", inn: "12345", wantErr: true},
		{name: "11 digits", inn: "12345678901", wantErr: true},
		{name: "empty", inn: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			supplier, err := uc.CreateSupplier(&SupplierInput{Name: "ООО Тест", INN: tt.inn})
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidSupplierINN) {
					t.Errorf("error = %v, want ErrInvalidSupplierINN", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if supplier.INN != tt.wantINN {
				t.Errorf("inn = %q, want %q", supplier.INN, tt.wantINN)
			}
			if supplier.ID == "" {
				t.Error("id not assigned")
			}
		})
	}
}

func TestSharedINNIsAllowed(t *testing.T) {
	uc := NewDefaultSupplierUsecase(&memorySupplierRepo{suppliers: map[string]*domain.Supplier{}})

	// Branches of one company share an INN; both entries must be accepted.
	if _, err := uc.CreateSupplier(&SupplierInput{Name: "Росско Москва", INN: "7707083893"}); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := uc.CreateSupplier(&SupplierInput{Name: "Росско Казань", INN: "7707083893"}); err != nil {
		t.Fatalf("second: %v", err)
	}
}

func TestUpdateSupplier(t *testing.T) {
	repo := &memorySupplierRepo{suppliers: map[string]*domain.Supplier{}}
	uc := NewDefaultSupplierUsecase(repo)

	created, err := uc.CreateSupplier(&SupplierInput{Name: "ООО Тест", INN: "7707083893", City: "Москва"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := uc.UpdateSupplier(created.ID, &SupplierInput{Name: "ООО Тест 2", City: "Казань"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "ООО Тест 2" || updated.City != "Казань" {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.INN != "7707083893" {
		t.Errorf("empty INN input overwrote stored INN: %q", updated.INN)
	}

	if _, err := uc.UpdateSupplier(created.ID, &SupplierInput{INN: "123"}); !errors.Is(err, domain.ErrInvalidSupplierINN) {
		t.Errorf("bad INN update error = %v, want ErrInvalidSupplierINN", err)
	}

	if _, err := uc.UpdateSupplier("missing", &SupplierInput{Name: "x"}); !errors.Is(err, domain.ErrSupplierNotFound) {
		t.Errorf("missing supplier error = %v, want ErrSupplierNotFound", err)
	}
}
