package domain

import "time"

// PriceItem is one imported price-list row. Immutable once imported; kept for
// traceability only, the unit sellers act on is the SupplierGroup.
type PriceItem struct {
	ID          string
	OwnerID     string
	PacketID    string
	RawINN      string
	INNNorm     *string
	INNInvalid  bool
	RawSupplier string
	ItemID      string
	CreatedAt   time.Time
}
