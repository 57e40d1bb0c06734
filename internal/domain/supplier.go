package domain

import "time"

// Supplier is a canonical registry entry maintained by admins. INN is not
// unique: real registries legitimately carry the same INN at different
// branches.
type Supplier struct {
	ID        string
	Name      string
	INN       string
	KPP       string
	Country   string
	City      string
	Address   string
	URL       string
	Branch    string
	CreatedAt time.Time
}

type SupplierRepository interface {
	CreateSupplier(supplier *Supplier) error
	UpdateSupplier(supplier *Supplier) error
	DeleteSupplier(supplierID string) error
	GetSupplierByID(supplierID string) (*Supplier, error)
	// SearchSuppliers matches q case-insensitively against name and INN,
	// ordered by name. Empty q lists the whole registry.
	SearchSuppliers(q string) ([]*Supplier, error)
}
